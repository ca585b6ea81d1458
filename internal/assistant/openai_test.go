package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIGatewayConverse(t *testing.T) {
	var got chatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hello from Aether"}}]}`))
	}))
	defer srv.Close()

	gw := NewOpenAIGateway(srv.URL, "test-key", "test-model", 5*time.Second)
	prior := []Message{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}
	reply, err := gw.Converse(context.Background(), "you are Aether", prior, "what is AetherX?")
	require.NoError(t, err)
	assert.Equal(t, "Hello from Aether", reply)

	// message order: system, prior turns, then the new user message
	require.Len(t, got.Messages, 4)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "earlier question", got.Messages[1].Content)
	assert.Equal(t, "earlier answer", got.Messages[2].Content)
	assert.Equal(t, "what is AetherX?", got.Messages[3].Content)
	assert.Equal(t, "test-model", got.Model)
}

func TestOpenAIGatewayHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	gw := NewOpenAIGateway(srv.URL, "", "test-model", 5*time.Second)
	_, err := gw.Converse(context.Background(), "sys", nil, "hi")
	require.Error(t, err)
	var pe *ProviderError
	assert.True(t, errors.As(err, &pe), "expected ProviderError, got %T", err)
}

func TestOpenAIGatewayEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	gw := NewOpenAIGateway(srv.URL, "", "test-model", 5*time.Second)
	_, err := gw.Converse(context.Background(), "sys", nil, "hi")
	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
}
