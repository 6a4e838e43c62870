package models

import "time"

// Shift is the coarse time-of-day bucket of an extra-grade activity.
type Shift string

const (
	ShiftMorning   Shift = "MANHA"
	ShiftAfternoon Shift = "TARDE"
	ShiftEvening   Shift = "NOITE"
)

// DefaultActivityCode is preselected when scheduling activities.
const DefaultActivityCode = "PL"

// DateLayout is the ISO calendar date format used for activity dates.
const DateLayout = "2006-01-02"

// InstructorActivity is a date-specific task assigned outside the base schedule.
// InstructorID is a lookup key and may point at a removed instructor.
type InstructorActivity struct {
	ID           string    `db:"id" json:"id"`
	InstructorID string    `db:"instructor_id" json:"instructor_id"`
	Code         string    `db:"code" json:"code"`
	Hours        float64   `db:"hours" json:"hours"`
	Date         string    `db:"activity_date" json:"date"`
	Shift        Shift     `db:"shift" json:"shift"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ActivityTemplate holds the fields shared by every record of a scheduling batch.
type ActivityTemplate struct {
	InstructorID string
	Code         string
	Hours        float64
	Shift        Shift
}

// ActivityWithInstructor is an activity joined with its instructor's name.
// InstructorName is nil when the instructor no longer exists.
type ActivityWithInstructor struct {
	InstructorActivity
	InstructorName *string `db:"instructor_name" json:"instructor_name"`
}
