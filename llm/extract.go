package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"studyup/ai-gateway/types"
)

var codeBlockRegex = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

var scheduledDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func blockReason(resp *GenerateResponse) string {
	if resp != nil && resp.PromptFeedback != nil {
		return resp.PromptFeedback.BlockReason
	}
	return ""
}

// ChatAnswer joins the text of every part of the first candidate.
func ChatAnswer(resp *GenerateResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", types.NewGenerationBlocked(blockReason(resp))
	}

	var answer strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		// Non-text parts contribute nothing.
		answer.WriteString(part.Text)
	}
	return answer.String(), nil
}

// DecodeStudyPlan parses the first text part of the first candidate into a plan.
func DecodeStudyPlan(resp *GenerateResponse) (*types.StudyPlanResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, types.NewGenerationBlocked(blockReason(resp))
	}

	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].IsImage() {
		return nil, types.NewSchemaError("AI service returned no study plan", fmt.Errorf("first candidate has no text part"))
	}

	return ParseStudyPlan(parts[0].Text)
}

// ParseStudyPlan decodes and validates a study plan JSON document.
func ParseStudyPlan(text string) (*types.StudyPlanResponse, error) {
	cleaned := stripCodeBlock(text)

	var raw struct {
		Rationale string                        `json:"rationale"`
		Sessions  *[]types.StudySessionProposal `json:"sessions"`
	}
	decoder := json.NewDecoder(strings.NewReader(cleaned))
	if err := decoder.Decode(&raw); err != nil {
		return nil, types.NewSchemaError("AI service returned a malformed study plan", fmt.Errorf("failed to parse JSON response: %w", err))
	}
	if decoder.More() {
		return nil, types.NewSchemaError("AI service returned a malformed study plan", fmt.Errorf("trailing data after JSON object"))
	}
	if raw.Sessions == nil {
		return nil, types.NewSchemaError("AI service returned a malformed study plan", fmt.Errorf("missing sessions array"))
	}

	plan := &types.StudyPlanResponse{Rationale: raw.Rationale, Sessions: *raw.Sessions}
	if err := ValidateStudyPlan(plan); err != nil {
		return nil, types.NewSchemaError("AI service returned a malformed study plan", err)
	}
	return plan, nil
}

// ValidateStudyPlan checks every session has a title, a positive duration and an ISO-8601 date.
func ValidateStudyPlan(plan *types.StudyPlanResponse) error {
	for i, session := range plan.Sessions {
		if strings.TrimSpace(session.Title) == "" {
			return fmt.Errorf("session %d has empty title", i)
		}
		if session.Duration <= 0 {
			return fmt.Errorf("session %d has non-positive duration %d", i, session.Duration)
		}
		if !isISOTimestamp(session.ScheduledDate) {
			return fmt.Errorf("session %d has invalid scheduled_date %q", i, session.ScheduledDate)
		}
	}
	return nil
}

func isISOTimestamp(value string) bool {
	for _, layout := range scheduledDateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// stripCodeBlock removes a ```json fence some models wrap around JSON output.
func stripCodeBlock(text string) string {
	cleaned := strings.TrimSpace(text)
	if matches := codeBlockRegex.FindStringSubmatch(cleaned); len(matches) > 1 {
		return matches[1]
	}
	return cleaned
}
