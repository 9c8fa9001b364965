package handlers

import (
	"net/http"

	"studyup/ai-gateway/llm"
	"studyup/ai-gateway/types"
)

// SaveStudySessions persists the sessions of a plan the user accepted.
func (h *Handler) SaveStudySessions(w http.ResponseWriter, r *http.Request) {
	var req types.SaveStudySessionsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.AssignmentID == "" {
		writeError(w, r, types.NewInvalidRequest("Assignment ID is required"))
		return
	}
	if len(req.Sessions) == 0 {
		writeError(w, r, types.NewInvalidRequest("At least one session is required"))
		return
	}
	if err := llm.ValidateStudyPlan(&types.StudyPlanResponse{Sessions: req.Sessions}); err != nil {
		writeError(w, r, types.NewInvalidRequest("Invalid session: "+err.Error()))
		return
	}

	store, userID, err := h.stores(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if userID == "" {
		writeError(w, r, types.NewUnauthorized("Sign in to save study sessions", nil))
		return
	}

	// Confirms the assignment exists and is visible to this user
	assignment, err := store.GetAssignment(req.AssignmentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var courseID *string
	if assignment.CourseID != "" {
		courseID = &assignment.CourseID
	}

	rows := make([]types.StudySession, 0, len(req.Sessions))
	for _, proposal := range req.Sessions {
		rows = append(rows, types.StudySession{
			AssignmentID:  req.AssignmentID,
			CourseID:      courseID,
			Title:         proposal.Title,
			Description:   proposal.Description,
			ScheduledDate: proposal.ScheduledDate,
			Duration:      proposal.Duration,
		})
	}

	saved, err := store.SaveStudySessions(userID, rows)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.StudySessionsResponse{
		Success:  true,
		Sessions: saved,
	})
}

// GetStudySessions lists the caller's planned sessions for an assignment.
func (h *Handler) GetStudySessions(w http.ResponseWriter, r *http.Request) {
	assignmentID := r.URL.Query().Get("assignmentId")
	if assignmentID == "" {
		writeError(w, r, types.NewInvalidRequest("Missing assignmentId"))
		return
	}

	store, userID, err := h.stores(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if userID == "" {
		writeError(w, r, types.NewUnauthorized("Sign in to view study sessions", nil))
		return
	}

	sessions, err := store.GetStudySessions(userID, assignmentID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []types.StudySession{}
	}

	writeJSON(w, http.StatusOK, types.StudySessionsResponse{
		Success:  true,
		Sessions: sessions,
	})
}
