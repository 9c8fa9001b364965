package llm

import (
	"fmt"
	"strings"

	"studyup/ai-gateway/config"
	"studyup/ai-gateway/types"
)

const (
	noMaterials   = "No materials provided."
	noTextContent = "No text content available"
	noDescription = "No description provided"
	noDueDate     = "No due date set"
)

// ExcerptContent truncates material text to MaterialExcerptLength characters.
func ExcerptContent(content *string) string {
	if content == nil || *content == "" {
		return noTextContent
	}
	runes := []rune(*content)
	if len(runes) > config.MaterialExcerptLength {
		return string(runes[:config.MaterialExcerptLength])
	}
	return *content
}

// BuildMaterialsBlock renders the materials section of the study plan prompt.
func BuildMaterialsBlock(materials []types.MaterialSnapshot) string {
	if len(materials) == 0 {
		return noMaterials
	}

	blocks := make([]string, 0, len(materials))
	for _, m := range materials {
		blocks = append(blocks, fmt.Sprintf("Material: %s\nContent: %s", m.Title, ExcerptContent(m.Content)))
	}
	return strings.Join(blocks, "\n\n")
}
