package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenAIGateway talks to an OpenAI-compatible chat-completions endpoint.
// A hung provider is bounded by the client timeout; the expiry surfaces as
// a ProviderError like any other failure.
type OpenAIGateway struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewOpenAIGateway(baseURL, apiKey, model string, timeout time.Duration) *OpenAIGateway {
	return &OpenAIGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type chatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func (g *OpenAIGateway) Converse(ctx context.Context, systemPrompt string, prior []Message, userMessage string) (string, error) {
	msgs := make([]Message, 0, len(prior)+2)
	msgs = append(msgs, Message{Role: "system", Content: systemPrompt})
	msgs = append(msgs, prior...)
	msgs = append(msgs, Message{Role: "user", Content: userMessage})

	body, err := json.Marshal(chatCompletionRequest{Model: g.model, Messages: msgs})
	if err != nil {
		return "", &ProviderError{Op: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &ProviderError{Op: "call provider", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &ProviderError{Op: "call provider", Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(b))}
	}

	var cr chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", &ProviderError{Op: "decode response", Err: err}
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", &ProviderError{Op: "decode response", Err: fmt.Errorf("no choices returned")}
	}
	return cr.Choices[0].Message.Content, nil
}
