package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/creatorclub/cc-backend/internal/library/domain"
	"github.com/creatorclub/cc-backend/internal/library/repository"
)

// catalog is the built-in SFX library.
var catalog = []domain.SoundEffect{
	{ID: "vintage-camera", Name: "Vintage Camera Shutter", Duration: "0:02", Size: "79kb", Category: "Vintage", Tier: domain.TierPro},
	{ID: "mouse-click-fast", Name: "Mouse Click Fast", Duration: "0:01", Size: "120kb", Category: "Tech", Tier: domain.TierFree},
	{ID: "whoosh-soft", Name: "Whoosh Soft", Duration: "0:03", Size: "140kb", Category: "Lifestyle", Tier: domain.TierFree},
	{ID: "pop-ui", Name: "UI Pop", Duration: "0:01", Size: "85kb", Category: "Tech", Tier: domain.TierFree},
	{ID: "film-roll", Name: "Film Roll Start", Duration: "0:02", Size: "98kb", Category: "Vintage", Tier: domain.TierPro},
	{ID: "sparkle", Name: "Sparkle Chime", Duration: "0:02", Size: "76kb", Category: "Lifestyle", Tier: domain.TierFree},
}

const (
	fontTileCount  = 12
	ideaVideoCount = 10
)

var ideaCategories = []string{"Fashion", "Lifestyle", "Travel", "Tech", "Beauty", "Fitness"}

// Service exposes the editing-resources library. The catalogs are fixed;
// only the favorite marks are persisted.
type Service struct {
	repo *repository.Repository
}

// New creates a Service.
func New(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// Filter narrows the SFX listing.
type Filter struct {
	Query         string
	Categories    []string
	FavoritesOnly bool
}

// Sounds returns the catalog with favorite marks applied, narrowed by the
// filter. The query matches name or category, case-insensitively.
func (s *Service) Sounds(ctx context.Context, f Filter) []domain.SoundEffect {
	favorites := make(map[string]bool)
	for _, id := range s.repo.Favorites(ctx) {
		favorites[id] = true
	}
	selected := make(map[string]bool, len(f.Categories))
	for _, c := range f.Categories {
		selected[c] = true
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]domain.SoundEffect, 0, len(catalog))
	for _, sfx := range catalog {
		sfx.Favorite = favorites[sfx.ID]
		if f.FavoritesOnly && !sfx.Favorite {
			continue
		}
		if len(selected) > 0 && !selected[sfx.Category] {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(sfx.Name), q) &&
			!strings.Contains(strings.ToLower(sfx.Category), q) {
			continue
		}
		out = append(out, sfx)
	}
	return out
}

// Categories returns the catalog's distinct categories in first-seen
// order.
func (s *Service) Categories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, sfx := range catalog {
		if !seen[sfx.Category] {
			seen[sfx.Category] = true
			out = append(out, sfx.Category)
		}
	}
	return out
}

// ToggleFavorite flips one sound's favorite mark and persists the list.
// It returns the new mark.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	if !inCatalog(id) {
		return false, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	ids := s.repo.Favorites(ctx)
	kept := make([]string, 0, len(ids)+1)
	removed := false
	for _, existing := range ids {
		if existing == id {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		kept = append(kept, id)
	}
	s.repo.SetFavorites(ctx, kept)
	return !removed, nil
}

func inCatalog(id string) bool {
	for _, sfx := range catalog {
		if sfx.ID == id {
			return true
		}
	}
	return false
}

// Fonts returns the placeholder font tiles.
func (s *Service) Fonts() []domain.Font {
	out := make([]domain.Font, 0, fontTileCount)
	for i := 1; i <= fontTileCount; i++ {
		out = append(out, domain.Font{
			ID:   fmt.Sprintf("font-%d", i),
			Name: fmt.Sprintf("Font %d", i),
		})
	}
	return out
}

// Ideas returns the content-inspiration shelves, each with its placeholder
// video slots.
func (s *Service) Ideas() []domain.IdeaShelf {
	out := make([]domain.IdeaShelf, 0, len(ideaCategories))
	for _, c := range ideaCategories {
		videos := make([]string, 0, ideaVideoCount)
		for i := 1; i <= ideaVideoCount; i++ {
			videos = append(videos, fmt.Sprintf("Video %d", i))
		}
		out = append(out, domain.IdeaShelf{Category: c, Videos: videos})
	}
	return out
}
