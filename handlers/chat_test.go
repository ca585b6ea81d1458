package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/aetherx/backend/internal/assistant"
	"github.com/aetherx/backend/internal/chat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// in-memory chat repo for handler tests
type chatFakeRepo struct {
	turns map[string][]chat.Turn
}

func (f *chatFakeRepo) Append(ctx context.Context, t *chat.Turn) error {
	if f.turns == nil {
		f.turns = map[string][]chat.Turn{}
	}
	f.turns[t.SessionID] = append(f.turns[t.SessionID], *t)
	return nil
}

func (f *chatFakeRepo) History(ctx context.Context, sessionID string, limit int64) ([]chat.Turn, error) {
	all := f.turns[sessionID]
	if int64(len(all)) > limit {
		all = all[int64(len(all))-limit:]
	}
	out := make([]chat.Turn, len(all))
	copy(out, all)
	return out, nil
}

func (f *chatFakeRepo) Clear(ctx context.Context, sessionID string) (int64, error) {
	n := int64(len(f.turns[sessionID]))
	delete(f.turns, sessionID)
	return n, nil
}

type stubGateway struct {
	reply string
	err   error
}

func (s *stubGateway) Converse(ctx context.Context, systemPrompt string, prior []assistant.Message, userMessage string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newChatRouter(gw assistant.Gateway) (*gin.Engine, *chatFakeRepo) {
	repo := &chatFakeRepo{}
	g := gin.New()
	NewChatHandler(chat.NewService(repo, gw)).Register(g.Group("/api"))
	return g, repo
}

func postJSON(g *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func TestChatExchangeAndHistory(t *testing.T) {
	g, _ := newChatRouter(&stubGateway{reply: "We launch soon!"})

	w := postJSON(g, "/api/chat", `{"session_id":"s1","message":"when?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "We launch soon!", resp["response"])
	assert.Equal(t, "s1", resp["session_id"])

	// history now holds the user turn and the assistant turn, in order
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/s1", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var hist struct {
		History   []chat.Turn `json:"history"`
		SessionID string      `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hist))
	require.Len(t, hist.History, 2)
	assert.Equal(t, chat.RoleUser, hist.History[0].Role)
	assert.Equal(t, "when?", hist.History[0].Content)
	assert.Equal(t, chat.RoleAssistant, hist.History[1].Role)
}

func TestChatGatewayFailureStillReturns200(t *testing.T) {
	gw := &stubGateway{err: &assistant.ProviderError{Op: "call provider", Err: errors.New("down")}}
	g, repo := newChatRouter(gw)

	w := postJSON(g, "/api/chat", `{"session_id":"s2","message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "s2", resp["session_id"])
	assert.NotEmpty(t, resp["response"])
	assert.True(t, slices.Contains(assistant.FallbackReplies, resp["response"]))
	assert.Empty(t, repo.turns, "failed exchanges persist nothing")
}

func TestChatValidation(t *testing.T) {
	g, _ := newChatRouter(&stubGateway{reply: "ok"})

	for _, body := range []string{`{"session_id":"s"}`, `{"message":"hi"}`, `{}`} {
		w := postJSON(g, "/api/chat", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestChatHistoryUnknownSessionEmptyList(t *testing.T) {
	g, _ := newChatRouter(&stubGateway{reply: "ok"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/never-seen", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"history":[]`)
}

func TestChatHistoryDelete(t *testing.T) {
	g, _ := newChatRouter(&stubGateway{reply: "ok"})

	postJSON(g, "/api/chat", `{"session_id":"s3","message":"one"}`)
	postJSON(g, "/api/chat", `{"session_id":"s3","message":"two"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/chat/history/s3", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Deleted   int64  `json:"deleted"`
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 4, resp.Deleted)
	assert.Equal(t, "s3", resp.SessionID)

	// second delete is a no-op
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/chat/history/%s", "s3"), nil)
	g.ServeHTTP(w, req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 0, resp.Deleted)
}
