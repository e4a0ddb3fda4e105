package service

import (
	"context"
	"fmt"

	"github.com/creatorclub/cc-backend/internal/events"
	"github.com/creatorclub/cc-backend/internal/settings/domain"
	"github.com/creatorclub/cc-backend/internal/settings/repository"
)

// Service exposes account settings. Changing the display currency fans out
// to subscribers so money-rendering views can refresh.
type Service struct {
	repo *repository.Repository
	hub  *events.Hub
}

// New creates a Service.
func New(repo *repository.Repository, hub *events.Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// Currency returns the active display currency.
func (s *Service) Currency(ctx context.Context) domain.Currency {
	return s.repo.Currency(ctx)
}

// SetCurrency validates and stores the display currency, then notifies
// subscribers.
func (s *Service) SetCurrency(ctx context.Context, c domain.Currency) error {
	if !c.Valid() {
		return fmt.Errorf("unsupported currency %q", c)
	}
	s.repo.SetCurrency(ctx, c)
	s.hub.Publish(ctx, events.TopicCurrencyChanged)
	return nil
}

// FormatAmount renders an amount in the active display currency.
func (s *Service) FormatAmount(ctx context.Context, amount float64) string {
	return domain.FormatAmount(s.repo.Currency(ctx), amount)
}

// Profile returns the user profile.
func (s *Service) Profile(ctx context.Context) domain.UserProfile {
	return s.repo.Profile(ctx)
}

// UpdateProfile stores the user profile. Blank fields keep their current
// values.
func (s *Service) UpdateProfile(ctx context.Context, p domain.UserProfile) domain.UserProfile {
	current := s.repo.Profile(ctx)
	if p.Name != "" {
		current.Name = p.Name
	}
	if p.Tier != "" {
		current.Tier = p.Tier
	}
	if p.AvatarData != "" {
		current.AvatarData = p.AvatarData
	}
	s.repo.SetProfile(ctx, current)
	return current
}
