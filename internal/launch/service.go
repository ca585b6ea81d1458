package launch

import (
	"context"
	"time"
)

// dateLayout is the wire format for launch dates.
const dateLayout = "2006-01-02"

// defaultOffset is how far in the future the computed default launch date
// lies when nothing has been stored yet.
const defaultOffset = 30 * 24 * time.Hour

// Service wraps repository operations with business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// Get returns the stored config, or a computed default of now + 30 days.
// The default is not persisted by the read; UpdatedAt stays zero for it.
func (s *Service) Get(ctx context.Context) (*Config, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return &Config{LaunchDate: time.Now().UTC().Add(defaultOffset).Format(dateLayout)}, nil
	}
	return cfg, nil
}

// Set overwrites the launch config with the given date.
func (s *Service) Set(ctx context.Context, launchDate string) (*Config, error) {
	cfg := &Config{LaunchDate: launchDate, UpdatedAt: time.Now().UTC()}
	if err := s.repo.Replace(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
