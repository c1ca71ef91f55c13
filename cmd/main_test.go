package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"doc-summarizer/internal/config"
)

const testPrompts = `{
  "initial_prompt": [{"role": "system", "content": "Summarize this part."}],
  "final_prompt": [{"role": "system", "content": "Combine the summaries."}]
}`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvAPIKey, config.EnvEndpoint, config.EnvDeployment, config.EnvAPIVersion,
		config.EnvFilePath, config.EnvPromptsPath, config.EnvOutputDir, config.EnvLogLevel,
		config.EnvChunkSize, "OPENAI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestRunConfigFailureIsLogged(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("llm: [not: a map"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := run([]string{"-config", path}, &out); code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
	logs := out.String()
	if !strings.Contains(logs, "ERR") || !strings.Contains(logs, "Failed to load config") {
		t.Errorf("config failure not logged as an error line: %q", logs)
	}
}

func TestRunMissingSettings(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	code := run([]string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, &out)
	if code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
	logs := out.String()
	if !strings.Contains(logs, "Missing required environment variables.") {
		t.Errorf("missing settings not logged: %q", logs)
	}
	if !strings.Contains(logs, "Execution completed in") {
		t.Errorf("elapsed time not logged: %q", logs)
	}
}

func TestRunSummarizesDocument(t *testing.T) {
	clearEnv(t)

	var bodies []map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		bodies = append(bodies, body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","object":"chat.completion","created":1,"model":"dep",` +
			`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"A greeting."}}]}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	input := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(input, []byte("Hello world"), 0644); err != nil {
		t.Fatal(err)
	}
	prompts := filepath.Join(dir, "prompts.json")
	if err := os.WriteFile(prompts, []byte(testPrompts), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvAPIKey, "key")
	t.Setenv(config.EnvEndpoint, srv.URL)
	t.Setenv(config.EnvDeployment, "dep")

	var out bytes.Buffer
	args := []string{
		"-config", filepath.Join(dir, "none.yaml"),
		"-file", input,
		"-prompts", prompts,
		"-out", filepath.Join(dir, "out"),
	}
	if code := run(args, &out); code != 0 {
		t.Fatalf("run() = %d, want 0; logs: %s", code, out.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "notes_Summary.txt"))
	if err != nil {
		t.Fatalf("summary not written: %v; logs: %s", err, out.String())
	}
	if string(data) != "A greeting." {
		t.Errorf("summary = %q", data)
	}

	if len(bodies) != 2 {
		t.Fatalf("made %d calls, want 2", len(bodies))
	}
	for i, body := range bodies {
		if string(body["top_p"]) != "0.5" || string(body["max_tokens"]) != "4096" {
			t.Errorf("call %d top_p = %s, max_tokens = %s", i+1, body["top_p"], body["max_tokens"])
		}
	}
}
