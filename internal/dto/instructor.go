package dto

import (
	"github.com/noah-isme/contract-capacity-api/internal/capacity"
	"github.com/noah-isme/contract-capacity-api/internal/models"
)

// CreateInstructorRequest registers an instructor by hand. Blank optional
// fields take the registration defaults.
type CreateInstructorRequest struct {
	Name         string              `json:"name" validate:"required,max=200"`
	Area         string              `json:"area" validate:"omitempty,max=100"`
	ContractType models.ContractType `json:"contract_type" validate:"omitempty,oneof=MENSALISTA HORISTA"`
	WorkShift    string              `json:"work_shift" validate:"omitempty,max=100"`
}

// UpdateInstructorRequest replaces the editable fields of an instructor.
type UpdateInstructorRequest struct {
	Name         string                  `json:"name" validate:"required,max=200"`
	Area         string                  `json:"area" validate:"required,max=100"`
	ContractType models.ContractType     `json:"contract_type" validate:"required,oneof=MENSALISTA HORISTA"`
	Status       models.InstructorStatus `json:"status" validate:"required,oneof=ATIVO INATIVO"`
	WorkShift    string                  `json:"work_shift" validate:"required,max=100"`
	MonthlyHours *float64                `json:"monthly_hours" validate:"omitempty,gte=0"`
}

// UpdateCapacityRequest sets capacity from a monthly figure.
type UpdateCapacityRequest struct {
	MonthlyHours *float64 `json:"monthly_hours" validate:"required,gte=0"`
}

// UpdateWorkShiftRequest sets the base work shift token.
type UpdateWorkShiftRequest struct {
	WorkShift string `json:"work_shift" validate:"required,max=100"`
}

// UpdateAreaRequest sets the area token.
type UpdateAreaRequest struct {
	Area string `json:"area" validate:"required,max=100"`
}

// InstructorResponse adds the derived monthly capacity to an instructor.
type InstructorResponse struct {
	models.Instructor
	MonthlyHours float64 `json:"monthly_hours"`
}

// NewInstructorResponse wraps inst.
func NewInstructorResponse(inst models.Instructor) InstructorResponse {
	return InstructorResponse{Instructor: inst, MonthlyHours: capacity.MonthlyCapacity(inst)}
}

// NewInstructorResponses wraps every instructor, keeping order.
func NewInstructorResponses(instructors []models.Instructor) []InstructorResponse {
	out := make([]InstructorResponse, 0, len(instructors))
	for _, inst := range instructors {
		out = append(out, NewInstructorResponse(inst))
	}
	return out
}
