package status

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service wraps repository operations with business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Create records a new status check for the named client.
func (s *Service) Create(ctx context.Context, clientName string) (*StatusCheck, error) {
	check := &StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

// List returns up to limit recorded status checks.
func (s *Service) List(ctx context.Context, limit int64) ([]StatusCheck, error) {
	return s.repo.List(ctx, limit)
}
