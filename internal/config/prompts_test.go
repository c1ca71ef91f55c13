package config

import (
	"os"
	"path/filepath"
	"testing"

	"doc-summarizer/internal/models"
)

func writePrompts(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompts.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPrompts(t *testing.T) {
	path := writePrompts(t, `{
  "initial_prompt": [
    {"role": "system", "content": "Summarize this meeting transcript section."},
    {"role": "user", "content": "Keep action items."},
    {"role": "assistant", "content": "Understood."}
  ],
  "final_prompt": [
    {"role": "system", "content": "Merge these partial summaries."}
  ]
}`)

	set, err := LoadPrompts(path)
	if err != nil {
		t.Fatalf("LoadPrompts() error = %v", err)
	}
	if len(set.Initial) != 3 {
		t.Fatalf("len(Initial) = %d, want 3", len(set.Initial))
	}
	if set.Initial[2].Role != models.RoleAssistant || set.Initial[2].Content != "Understood." {
		t.Errorf("Initial[2] = %+v", set.Initial[2])
	}
	if len(set.Final) != 1 || set.Final[0].Content != "Merge these partial summaries." {
		t.Errorf("Final = %+v", set.Final)
	}
}

func TestLoadPromptsMissingKey(t *testing.T) {
	path := writePrompts(t, `{"initial_prompt": [{"role": "system", "content": "x"}]}`)

	set, err := LoadPrompts(path)
	if err != nil {
		t.Fatalf("LoadPrompts() error = %v", err)
	}
	if len(set.Final) != 0 {
		t.Errorf("Final = %+v, want empty", set.Final)
	}
}

func TestLoadPromptsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"initial_prompt": [`},
		{"unknown role in initial", `{"initial_prompt": [{"role": "narrator", "content": "x"}]}`},
		{"unknown role in final", `{"final_prompt": [{"role": "", "content": "x"}]}`},
		{"wrong shape", `{"initial_prompt": "summarize"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPrompts(writePrompts(t, tt.content)); err == nil {
				t.Error("LoadPrompts() should return error")
			}
		})
	}
}

func TestLoadPromptsNonexistent(t *testing.T) {
	if _, err := LoadPrompts(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadPrompts() should return error for nonexistent file")
	}
}
