package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Contract Capacity API",
        "description": "Instructor contract and capacity planning: workload imports, extra-grade agenda and exports.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "tags": [
        {"name": "Instructors", "description": "Instructor roster, contract and weekly capacity"},
        {"name": "Imports", "description": "Workload sheet upload, preview and confirmation"},
        {"name": "Activities", "description": "Extra-grade activity agenda"},
        {"name": "Calendar", "description": "Month picker layout and date selection"},
        {"name": "Exports", "description": "Capacity sheet and agenda downloads"}
    ],
    "paths": {
        "/instructors": {
            "get": {
                "tags": ["Instructors"],
                "summary": "List instructors",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["ATIVO", "INATIVO"]},
                    {"name": "contract_type", "in": "query", "type": "string", "enum": ["MENSALISTA", "HORISTA"]},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["name", "area", "weekly_hours", "created_at"]},
                    {"name": "order", "in": "query", "type": "string", "enum": ["asc", "desc"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Instructors"],
                "summary": "Register instructor",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateInstructorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/instructors/{id}": {
            "get": {
                "tags": ["Instructors"],
                "summary": "Get instructor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Instructors"],
                "summary": "Update instructor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateInstructorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Instructors"],
                "summary": "Delete instructor",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/instructors/{id}/contract/toggle": {
            "post": {
                "tags": ["Instructors"],
                "summary": "Toggle contract between MENSALISTA and HORISTA",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/instructors/{id}/status/toggle": {
            "post": {
                "tags": ["Instructors"],
                "summary": "Toggle status between ATIVO and INATIVO",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/instructors/{id}/capacity": {
            "put": {
                "tags": ["Instructors"],
                "summary": "Set monthly capacity (stored as monthly / 4)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCapacityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/instructors/{id}/work-shift": {
            "put": {
                "tags": ["Instructors"],
                "summary": "Set base work shift",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateWorkShiftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/instructors/{id}/area": {
            "put": {
                "tags": ["Instructors"],
                "summary": "Set area",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAreaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/imports/workload": {
            "post": {
                "tags": ["Imports"],
                "summary": "Upload workload sheet and build a preview",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Empty input or required column not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Imports"],
                "summary": "Discard every pending import preview",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/imports/workload/{sessionId}": {
            "get": {
                "tags": ["Imports"],
                "summary": "Get import preview",
                "parameters": [
                    {"name": "sessionId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Session not found or expired", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Imports"],
                "summary": "Discard import preview",
                "parameters": [
                    {"name": "sessionId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/imports/workload/{sessionId}/confirm": {
            "post": {
                "tags": ["Imports"],
                "summary": "Apply import preview to instructor capacity",
                "parameters": [
                    {"name": "sessionId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Session not found or expired", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/activities": {
            "get": {
                "tags": ["Activities"],
                "summary": "List activities of a month",
                "parameters": [
                    {"name": "month", "in": "query", "type": "string", "description": "YYYY-MM, defaults to the current month"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/activities/batch": {
            "post": {
                "tags": ["Activities"],
                "summary": "Schedule one activity per selected date",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScheduleBatchRequest"}}
                ],
                "responses": {
                    "200": {"description": "No dates selected, nothing created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/activities/{id}": {
            "delete": {
                "tags": ["Activities"],
                "summary": "Delete activity",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/calendar/grid": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Month picker layout",
                "parameters": [
                    {"name": "month", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calendar/selection/toggle": {
            "post": {
                "tags": ["Calendar"],
                "summary": "Add or remove a date from a selection",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleSelectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/capacity.csv": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download capacity sheet (Windows-1252, ';' delimited)",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}}
                }
            }
        },
        "/exports/agenda.pdf": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download monthly agenda",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "month", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}}
                }
            }
        }
    },
    "definitions": {
        "CreateInstructorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "area": {"type": "string"},
                "contract_type": {"type": "string", "enum": ["MENSALISTA", "HORISTA"]},
                "work_shift": {"type": "string"}
            },
            "required": ["name"]
        },
        "UpdateInstructorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "area": {"type": "string"},
                "contract_type": {"type": "string", "enum": ["MENSALISTA", "HORISTA"]},
                "status": {"type": "string", "enum": ["ATIVO", "INATIVO"]},
                "work_shift": {"type": "string"},
                "monthly_hours": {"type": "number"}
            },
            "required": ["name", "area", "contract_type", "status", "work_shift"]
        },
        "UpdateCapacityRequest": {
            "type": "object",
            "properties": {
                "monthly_hours": {"type": "number"}
            },
            "required": ["monthly_hours"]
        },
        "UpdateWorkShiftRequest": {
            "type": "object",
            "properties": {
                "work_shift": {"type": "string"}
            },
            "required": ["work_shift"]
        },
        "UpdateAreaRequest": {
            "type": "object",
            "properties": {
                "area": {"type": "string"}
            },
            "required": ["area"]
        },
        "ScheduleBatchRequest": {
            "type": "object",
            "properties": {
                "instructor_id": {"type": "string"},
                "code": {"type": "string"},
                "hours": {"type": "number"},
                "shift": {"type": "string", "enum": ["MANHA", "TARDE", "NOITE"]},
                "dates": {"type": "array", "items": {"type": "string", "format": "date"}}
            },
            "required": ["instructor_id", "hours", "shift"]
        },
        "ToggleSelectionRequest": {
            "type": "object",
            "properties": {
                "selected": {"type": "array", "items": {"type": "string", "format": "date"}},
                "date": {"type": "string", "format": "date"}
            },
            "required": ["date"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
