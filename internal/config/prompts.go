package config

import (
	"encoding/json"
	"fmt"
	"os"

	"doc-summarizer/internal/models"
)

// LoadPrompts reads the initial and final prompts from a JSON file. Absent
// keys decode to empty prompts, which callers may warn about.
func LoadPrompts(path string) (*models.PromptSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts %s: %w", path, err)
	}

	var set models.PromptSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse prompts %s: %w", path, err)
	}

	if err := set.Initial.Validate(); err != nil {
		return nil, fmt.Errorf("initial_prompt: %w", err)
	}
	if err := set.Final.Validate(); err != nil {
		return nil, fmt.Errorf("final_prompt: %w", err)
	}
	return &set, nil
}
