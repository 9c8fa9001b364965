package types

// StudySession is a persisted row of the study_sessions table.
type StudySession struct {
	ID            string  `json:"id,omitempty"` // <-- omitempty so inserts let the store assign it
	UserID        string  `json:"user_id"`
	AssignmentID  string  `json:"assignment_id"`
	CourseID      *string `json:"course_id,omitempty"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ScheduledDate string  `json:"scheduled_date"`
	Duration      int     `json:"duration"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

type SaveStudySessionsRequest struct {
	AssignmentID string                 `json:"assignmentId"`
	Sessions     []StudySessionProposal `json:"sessions"`
}

type StudySessionsResponse struct {
	Success  bool           `json:"success"`
	Sessions []StudySession `json:"sessions"`
}
