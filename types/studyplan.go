package types

type StudyPlanRequest struct {
	AssignmentID string `json:"assignmentId"`
}

// AssignmentSnapshot is the read-only projection of an assignment row used for prompting.
type AssignmentSnapshot struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	CourseID    string  `json:"course_id"`
}

type MaterialSnapshot struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

type StudySessionProposal struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	ScheduledDate string `json:"scheduled_date"`
	Duration      int    `json:"duration"` // minutes
}

type StudyPlanResponse struct {
	Rationale string                 `json:"rationale"`
	Sessions  []StudySessionProposal `json:"sessions"`
}
