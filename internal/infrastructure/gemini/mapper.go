package gemini

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/projectcart/backend/internal/domain"
)

// jsonArrayRegex extracts the first bracketed JSON array from a response
// that wraps the payload in prose or markdown code fences
var jsonArrayRegex = regexp.MustCompile(`(?s)\[.*\]`)

// buildChecklistPrompt produces the instruction for checklist generation.
// The model is asked for strict JSON; ParseChecklist tolerates fenced output anyway.
func buildChecklistPrompt(projectQuery string) string {
	return fmt.Sprintf(`You are a helpful DIY shopping assistant. A user wants to build/create: %q

Generate a comprehensive checklist of items they will need. Return ONLY a JSON array of objects with this structure:
[
  {
    "name": "item name",
    "category": "category",
    "priority": "essential" or "optional",
    "quantity": "estimated quantity",
    "notes": "brief helpful note"
  }
]

Focus on:
- Physical materials and tools needed
- Be specific but not overwhelming (5-12 items typically)
- Include both obvious and often-forgotten items
- Prioritize essential items first

Return ONLY the JSON array, no other text.`, projectQuery)
}

// ParseChecklist parses the model response into checklist items.
// Tries strict JSON first; if the model wrapped the array in markdown or
// commentary, falls back to extracting the first bracketed array.
func ParseChecklist(text string) ([]domain.ChecklistItem, error) {
	var items []domain.ChecklistItem

	trimmed := strings.TrimSpace(text)
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		match := jsonArrayRegex.FindString(trimmed)
		if match == "" {
			return nil, fmt.Errorf("no JSON array in model response")
		}
		if err := json.Unmarshal([]byte(match), &items); err != nil {
			return nil, fmt.Errorf("malformed checklist JSON: %w", err)
		}
	}

	// Items without a name cannot be searched for; drop them
	valid := make([]domain.ChecklistItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			continue
		}
		valid = append(valid, item)
	}

	if len(valid) == 0 {
		return nil, fmt.Errorf("checklist contained no usable items")
	}

	return valid, nil
}
