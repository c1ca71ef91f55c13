package models

import "fmt"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged entry of a prompt
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Prompt is the ordered message prefix sent before the text to summarize
type Prompt []Message

// PromptSet holds the two prompts read from prompts.json
type PromptSet struct {
	Initial Prompt `json:"initial_prompt"`
	Final   Prompt `json:"final_prompt"`
}

// Validate rejects roles the chat endpoint does not understand
func (p Prompt) Validate() error {
	for i, m := range p {
		switch m.Role {
		case RoleSystem, RoleUser, RoleAssistant:
		default:
			return fmt.Errorf("message %d: unknown role %q", i, m.Role)
		}
	}
	return nil
}
