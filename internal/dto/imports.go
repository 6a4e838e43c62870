package dto

// ConfirmImportResponse reports the instructors a confirmed import changed.
type ConfirmImportResponse struct {
	SessionID   string               `json:"session_id"`
	Updated     int                  `json:"updated"`
	Instructors []InstructorResponse `json:"instructors"`
}
