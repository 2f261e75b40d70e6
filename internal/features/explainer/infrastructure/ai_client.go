package infrastructure

import (
	"context"
)

// ChatRequest is one chat-completion call: a system instruction, a user
// message, and the model parameters to run it with.
type ChatRequest struct {
	Model       string  `json:"model"`
	System      string  `json:"system"`
	User        string  `json:"user"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// AIClient defines a generic interface for chat-completion services.
type AIClient interface {
	// Complete sends one request and returns the raw text content of the
	// first completion choice. No retries; a failure surfaces immediately.
	Complete(ctx context.Context, req ChatRequest) (string, error)
}
