package llm

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"studyup/ai-gateway/types"
)

func strPtr(s string) *string {
	return &s
}

func TestBuildChatText(t *testing.T) {
	assert.Equal(t, "What is entropy?", BuildChatText("What is entropy?", ""))
	assert.Equal(t,
		"Context:\nThermodynamics notes\n\nUser Question: What is entropy?",
		BuildChatText("What is entropy?", "Thermodynamics notes"))
}

func TestExcerptContent(t *testing.T) {
	assert.Equal(t, "No text content available", ExcerptContent(nil))
	assert.Equal(t, "No text content available", ExcerptContent(strPtr("")))
	assert.Equal(t, "short", ExcerptContent(strPtr("short")))

	long := strings.Repeat("é", 2500)
	excerpt := ExcerptContent(&long)
	assert.Equal(t, 2000, len([]rune(excerpt)))
}

func TestBuildMaterialsBlock(t *testing.T) {
	assert.Equal(t, "No materials provided.", BuildMaterialsBlock(nil))

	block := BuildMaterialsBlock([]types.MaterialSnapshot{
		{Title: "Lecture 1", Content: strPtr("Vectors")},
		{Title: "Scan", Content: nil},
	})
	assert.Equal(t,
		"Material: Lecture 1\nContent: Vectors\n\nMaterial: Scan\nContent: No text content available",
		block)
}

func TestFormatDueDate(t *testing.T) {
	tests := []struct {
		name  string
		input *string
		want  string
	}{
		{name: "missing", input: nil, want: "No due date set"},
		{name: "timestamptz", input: strPtr("2024-05-01T23:59:00+02:00"), want: "2024-05-01T21:59:00.000Z"},
		{name: "date only", input: strPtr("2024-05-01"), want: "2024-05-01T00:00:00.000Z"},
		{name: "unparseable", input: strPtr("end of term"), want: "end of term"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDueDate(tt.input))
		})
	}
}

func TestBuildStudyPlanPrompt(t *testing.T) {
	now := time.Date(2024, 4, 20, 9, 30, 0, 0, time.UTC)
	assignment := types.AssignmentSnapshot{
		Title:    "Calculus Midterm",
		DueDate:  strPtr("2024-05-01T12:00:00Z"),
		CourseID: "course-1",
	}

	prompt := BuildStudyPlanPrompt(assignment, nil, now)

	assert.Contains(t, prompt, "Title: Calculus Midterm")
	assert.Contains(t, prompt, "Description: No description provided")
	assert.Contains(t, prompt, "Due Date: 2024-05-01T12:00:00.000Z")
	assert.Contains(t, prompt, "Current Date: 2024-04-20T09:30:00.000Z")
	assert.Contains(t, prompt, "No materials provided.")
	assert.Contains(t, prompt, "between 30 and 120 minutes")
	assert.Contains(t, prompt, "Never schedule a session on the due date itself")
	assert.Contains(t, prompt, `"scheduled_date"`)

	withDescription := assignment
	withDescription.Description = strPtr("Chapters 1-4")
	prompt = BuildStudyPlanPrompt(withDescription, []types.MaterialSnapshot{{Title: "Notes", Content: strPtr("Limits")}}, now)
	assert.Contains(t, prompt, "Description: Chapters 1-4")
	assert.Contains(t, prompt, "Material: Notes\nContent: Limits")
	assert.NotContains(t, prompt, "No materials provided.")
}
