package newsletter

import (
	"context"
	"time"

	"github.com/aetherx/backend/pkg/metrics"
	"github.com/google/uuid"
)

const (
	duplicateMessage = "This email is already on the waitlist!"
	welcomeMessage   = "Welcome to the AetherX waitlist! You'll be the first to know when we launch."
)

// Result is the outcome of a subscribe attempt. A duplicate email is a
// normal outcome (Accepted=false), not an error.
type Result struct {
	Accepted bool
	ID       string
	Message  string
}

// Service wraps repository operations with business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Subscribe registers an email on the waitlist. The existence pre-check and
// the insert are separate store calls; two concurrent subscribes for the
// same unseen email can both land.
func (s *Service) Subscribe(ctx context.Context, email, name string) (*Result, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		metrics.NewsletterSubscribes.WithLabelValues("duplicate").Inc()
		return &Result{Accepted: false, ID: existing.ID, Message: duplicateMessage}, nil
	}

	sub := &Subscription{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		SubscribedAt: time.Now().UTC(),
		Source:       SourceWaitlist,
	}
	if err := s.repo.Insert(ctx, sub); err != nil {
		return nil, err
	}
	metrics.NewsletterSubscribes.WithLabelValues("accepted").Inc()
	return &Result{Accepted: true, ID: sub.ID, Message: welcomeMessage}, nil
}

// Count returns the total number of subscriptions.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Subscribers returns up to limit subscriptions.
func (s *Service) Subscribers(ctx context.Context, limit int64) ([]Subscription, error) {
	return s.repo.List(ctx, limit)
}
