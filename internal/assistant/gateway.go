// Package assistant defines the external conversational-AI collaborator the
// chat service delegates reply generation to.
package assistant

import (
	"context"
	"fmt"
)

// Message is one prior conversation turn handed to the provider as context.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Gateway produces a single assistant reply for a user message given the
// conversation so far. Implementations perform exactly one attempt; retries,
// if any, are the caller's business.
type Gateway interface {
	Converse(ctx context.Context, systemPrompt string, prior []Message, userMessage string) (string, error)
}

// ProviderError is the single recoverable failure mode of a Gateway.
// Callers fall back on it without branching on sub-causes.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assistant provider: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("assistant provider: %s", e.Op)
}

func (e *ProviderError) Unwrap() error { return e.Err }
