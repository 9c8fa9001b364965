package llm

import (
	"fmt"
	"strings"
	"time"

	"studyup/ai-gateway/types"
)

// isoLayout matches the millisecond UTC form clients already parse.
const isoLayout = "2006-01-02T15:04:05.000Z"

var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// BuildChatText returns the single text part sent by the chat relay.
func BuildChatText(message, context string) string {
	if context == "" {
		return message
	}
	return fmt.Sprintf("Context:\n%s\n\nUser Question: %s", context, message)
}

// FormatISO renders t in UTC with millisecond precision.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// FormatDueDate normalises a stored due date to ISO-8601. Values that cannot be
// parsed are passed through unchanged.
func FormatDueDate(dueDate *string) string {
	if dueDate == nil || strings.TrimSpace(*dueDate) == "" {
		return noDueDate
	}
	raw := strings.TrimSpace(*dueDate)
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return FormatISO(t)
		}
	}
	return raw
}

func BuildStudyPlanPrompt(assignment types.AssignmentSnapshot, materials []types.MaterialSnapshot, now time.Time) string {
	description := noDescription
	if assignment.Description != nil && strings.TrimSpace(*assignment.Description) != "" {
		description = *assignment.Description
	}

	return fmt.Sprintf(`You are an expert study planner helping a student prepare for an assignment.

ASSIGNMENT:
Title: %s
Description: %s
Due Date: %s
Current Date: %s

COURSE MATERIALS:
%s

Create a study plan that breaks the preparation into focused study sessions scheduled between the current date and the due date.

SCHEDULING RULES:
- Each session must last between 30 and 120 minutes.
- Never schedule a session on the due date itself.
- Spread the sessions across the whole available window instead of clustering them together.
- If no due date is set, spread the sessions over the next two weeks.
- Prefer afternoon or evening start times (between 14:00 and 21:00).
- Base each session on the assignment and the materials above.
- Use full ISO 8601 timestamps for scheduled_date.

Respond with exactly one JSON object and nothing else. It must match this schema:
{
  "rationale": "A short explanation of how the plan is structured",
  "sessions": [
    {
      "title": "Short session title",
      "description": "What to study in this session",
      "scheduled_date": "2024-01-15T15:00:00.000Z",
      "duration": 60
    }
  ]
}`, assignment.Title, description, FormatDueDate(assignment.DueDate), FormatISO(now), BuildMaterialsBlock(materials))
}
