package chat

import (
	"context"
	"time"

	"github.com/aetherx/backend/internal/assistant"
	"github.com/aetherx/backend/pkg/logger"
	"github.com/aetherx/backend/pkg/metrics"
	"github.com/google/uuid"
)

// systemPrompt is the fixed product prompt for the marketing-site assistant.
// It is static text, not user-configurable.
const systemPrompt = "You are Aether, the guide for AetherX — a platform where " +
	"intelligence meets imagination. AetherX blends generative AI with cinematic " +
	"creative tools and launches soon; visitors can join the waitlist today. " +
	"Answer questions about the product, the team's vision, and the launch. " +
	"Be warm, concise, and a little cosmic. If you don't know something, say so " +
	"and point the visitor to the waitlist for updates."

const (
	// historyWindow is how many of a session's newest turns are fetched
	// per exchange; contextWindow is how many of those are replayed to
	// the provider.
	historyWindow = 20
	contextWindow = 10
)

// Service is the session history store and chat orchestrator. It holds no
// state of its own; everything lives in the repository.
type Service struct {
	repo    Repository
	gateway assistant.Gateway
}

func NewService(r Repository, g assistant.Gateway) *Service {
	return &Service{repo: r, gateway: g}
}

// Append writes a new turn with a fresh id and current timestamp.
func (s *Service) Append(ctx context.Context, sessionID string, role Role, content string) (*Turn, error) {
	t := &Turn{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// History returns the newest limit turns of a session in ascending order.
func (s *Service) History(ctx context.Context, sessionID string, limit int64) ([]Turn, error) {
	return s.repo.History(ctx, sessionID, limit)
}

// Clear deletes all turns of a session and returns the number removed.
func (s *Service) Clear(ctx context.Context, sessionID string) (int64, error) {
	return s.repo.Clear(ctx, sessionID)
}

// Converse turns one incoming user message into a persisted, context-aware
// assistant reply. The gateway gets a single attempt; on any failure the
// visitor receives a canned reply and nothing is persisted — not even the
// user's own message.
func (s *Service) Converse(ctx context.Context, sessionID, message string) string {
	turns, err := s.History(ctx, sessionID, historyWindow)
	if err != nil {
		logger.Warnf("chat: history read failed for session %s: %v", sessionID, err)
		metrics.ChatExchanges.WithLabelValues("fallback").Inc()
		return assistant.FallbackReply()
	}

	if len(turns) > contextWindow {
		turns = turns[len(turns)-contextWindow:]
	}
	prior := make([]assistant.Message, 0, len(turns))
	for _, t := range turns {
		prior = append(prior, assistant.Message{Role: string(t.Role), Content: t.Content})
	}

	reply, err := s.gateway.Converse(ctx, systemPrompt, prior, message)
	if err != nil {
		logger.Warnf("chat: assistant gateway unavailable for session %s: %v", sessionID, err)
		metrics.ChatExchanges.WithLabelValues("fallback").Inc()
		return assistant.FallbackReply()
	}

	// user turn first, then the assistant's; a persistence fault here is
	// logged but the visitor still gets the reply
	if _, err := s.Append(ctx, sessionID, RoleUser, message); err != nil {
		logger.Errorf("chat: failed to persist user turn for session %s: %v", sessionID, err)
	}
	if _, err := s.Append(ctx, sessionID, RoleAssistant, reply); err != nil {
		logger.Errorf("chat: failed to persist assistant turn for session %s: %v", sessionID, err)
	}
	metrics.ChatExchanges.WithLabelValues("reply").Inc()
	return reply
}
