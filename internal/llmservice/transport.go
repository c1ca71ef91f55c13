package llmservice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// paramsDoer sits between langchaingo and the HTTP client and fixes up chat
// completion bodies: langchaingo never sends top_p, and it sends the token cap
// as max_completion_tokens, which Azure api versions before
// 2024-09-01-preview reject.
type paramsDoer struct {
	next *http.Client
	topP float64
}

func newParamsDoer(next *http.Client, topP float64) *paramsDoer {
	if next == nil {
		next = http.DefaultClient
	}
	return &paramsDoer{next: next, topP: topP}
}

func (d *paramsDoer) Do(req *http.Request) (*http.Response, error) {
	if req.Body == nil || !strings.HasSuffix(req.URL.Path, "/chat/completions") {
		return d.next.Do(req)
	}

	data, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read chat request: %w", err)
	}
	data, err = rewriteChatBody(data, d.topP)
	if err != nil {
		return nil, err
	}

	req.Body = io.NopCloser(bytes.NewReader(data))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	req.ContentLength = int64(len(data))
	return d.next.Do(req)
}

// rewriteChatBody sets top_p and moves max_completion_tokens to max_tokens.
// Every other field passes through untouched.
func rewriteChatBody(data []byte, topP float64) ([]byte, error) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("decode chat request: %w", err)
	}

	if v, ok := body["max_completion_tokens"]; ok {
		body["max_tokens"] = v
		delete(body, "max_completion_tokens")
	}

	p, err := json.Marshal(topP)
	if err != nil {
		return nil, fmt.Errorf("encode top_p: %w", err)
	}
	body["top_p"] = p

	return json.Marshal(body)
}
