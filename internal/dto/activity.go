package dto

import (
	"github.com/noah-isme/contract-capacity-api/internal/capacity"
	"github.com/noah-isme/contract-capacity-api/internal/models"
)

// ScheduleBatchRequest creates one activity per date from a shared template.
// An empty date list is accepted and creates nothing.
type ScheduleBatchRequest struct {
	InstructorID string       `json:"instructor_id" validate:"required"`
	Code         string       `json:"code" validate:"omitempty,max=20"`
	Hours        float64      `json:"hours" validate:"gt=0"`
	Shift        models.Shift `json:"shift" validate:"required,oneof=MANHA TARDE NOITE"`
	Dates        []string     `json:"dates" validate:"omitempty,dive,datetime=2006-01-02"`
}

// ScheduleBatchResponse lists the activities the batch created.
type ScheduleBatchResponse struct {
	Created []models.InstructorActivity `json:"created"`
	Count   int                         `json:"count"`
}

// MonthAgendaResponse is the month's activities ordered by date.
type MonthAgendaResponse struct {
	Month      string                          `json:"month"`
	Prev       string                          `json:"prev"`
	Next       string                          `json:"next"`
	TotalHours float64                         `json:"total_hours"`
	Activities []models.ActivityWithInstructor `json:"activities"`
}

// CalendarGridResponse is a month picker layout with navigation targets.
type CalendarGridResponse struct {
	capacity.MonthGrid
	Prev string `json:"prev"`
	Next string `json:"next"`
}

// ToggleSelectionRequest flips Date in the client's current selection.
type ToggleSelectionRequest struct {
	Selected []string `json:"selected" validate:"omitempty,dive,datetime=2006-01-02"`
	Date     string   `json:"date" validate:"required,datetime=2006-01-02"`
}

// ToggleSelectionResponse is the selection after the toggle, ascending.
type ToggleSelectionResponse struct {
	Selected []string `json:"selected"`
}
