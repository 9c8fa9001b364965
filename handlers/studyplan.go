package handlers

import (
	"net/http"

	"studyup/ai-gateway/config"
	"studyup/ai-gateway/llm"
	"studyup/ai-gateway/types"
)

// StudyPlan asks the model for a study plan built from an assignment and its materials.
func (h *Handler) StudyPlan(w http.ResponseWriter, r *http.Request) {
	var req types.StudyPlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.AssignmentID == "" {
		writeError(w, r, types.NewInvalidRequest("Assignment ID is required"))
		return
	}

	store, _, err := h.stores(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	assignment, err := store.GetAssignment(req.AssignmentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	materials, err := store.GetMaterials(req.AssignmentID, config.MaxMaterials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.requireGenerator(); err != nil {
		writeError(w, r, err)
		return
	}

	prompt := llm.BuildStudyPlanPrompt(assignment, materials, h.now())
	resp, err := h.generator.GenerateContent(r.Context(), llm.NewStudyPlanRequest(prompt))
	if err != nil {
		writeError(w, r, err)
		return
	}

	plan, err := llm.DecodeStudyPlan(resp)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}
