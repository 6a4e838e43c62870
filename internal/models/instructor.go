package models

import "time"

// ContractType governs how an instructor's time is compensated.
type ContractType string

const (
	// ContractSalaried is the salaried-monthly contract.
	ContractSalaried ContractType = "MENSALISTA"
	// ContractHourly is the hourly contract.
	ContractHourly ContractType = "HORISTA"
)

// InstructorStatus flags whether an instructor takes part in planning.
type InstructorStatus string

const (
	InstructorActive   InstructorStatus = "ATIVO"
	InstructorInactive InstructorStatus = "INATIVO"
)

// Defaults applied to manually registered instructors.
const (
	DefaultArea        = "NAO_DEFINIDA"
	DefaultWorkShift   = "MATUTINO_VESPERTINO"
	DefaultWeeklyHours = 40.0
)

// Instructor is a staff member whose capacity is stored per week.
type Instructor struct {
	ID           string           `db:"id" json:"id"`
	Name         string           `db:"name" json:"name"`
	Area         string           `db:"area" json:"area"`
	ContractType ContractType     `db:"contract_type" json:"contract_type"`
	WeeklyHours  float64          `db:"weekly_hours" json:"weekly_hours"`
	Status       InstructorStatus `db:"status" json:"status"`
	WorkShift    string           `db:"work_shift" json:"work_shift"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at" json:"updated_at"`
}

// IsActive reports whether the instructor is active.
func (i Instructor) IsActive() bool {
	return i.Status != InstructorInactive
}

// InstructorFilter captures filtering options for listing instructors.
type InstructorFilter struct {
	Search       string
	Status       InstructorStatus
	ContractType ContractType
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}
