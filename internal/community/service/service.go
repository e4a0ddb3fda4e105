package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/creatorclub/cc-backend/internal/community/domain"
	"github.com/creatorclub/cc-backend/internal/community/repository"
)

// Service exposes the community forum.
type Service struct {
	repo *repository.Repository
	now  func() time.Time
}

// New creates a Service. now is injectable for ranking tests.
func New(repo *repository.Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// Feed returns one board's posts under the requested ordering. Newest is
// plain reverse-chronological. Hot ranks everything posted in the last 72
// hours ahead of everything older, then by engagement score inside each
// partition; the two-tier split is deliberate, there is no decay curve.
func (s *Service) Feed(category domain.Category, by domain.Sort) ([]domain.Post, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	posts := s.repo.List()
	filtered := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}

	switch by {
	case domain.SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	case domain.SortHot, "":
		cutoff := s.now().Add(-domain.RecentWindow)
		sort.SliceStable(filtered, func(i, j int) bool {
			iRecent := !filtered[i].CreatedAt.Before(cutoff)
			jRecent := !filtered[j].CreatedAt.Before(cutoff)
			if iRecent != jRecent {
				return iRecent
			}
			return filtered[i].Score() > filtered[j].Score()
		})
	default:
		return nil, fmt.Errorf("unknown sort %q", by)
	}
	return filtered, nil
}

// CreateInput carries the fields of a new post.
type CreateInput struct {
	Title    string
	Content  string
	Category domain.Category
}

// Create publishes a new thread authored by the dashboard user; it lands
// at the top of the feed with zeroed counters.
func (s *Service) Create(in CreateInput) (domain.Post, error) {
	if in.Title == "" {
		return domain.Post{}, fmt.Errorf("title is required")
	}
	if !in.Category.Valid() {
		return domain.Post{}, fmt.Errorf("unknown category %q", in.Category)
	}
	p := domain.Post{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Author:    domain.SelfAuthor,
		Content:   in.Content,
		Category:  in.Category,
		CreatedAt: s.now(),
	}
	s.repo.Prepend(p)
	return p, nil
}

// Get returns one thread head.
func (s *Service) Get(id string) (domain.Post, error) {
	return s.repo.Get(id)
}

// Vote applies a single-valued vote toggle. Re-clicking the active
// direction clears the vote; clicking the opposite direction moves it.
// Counters are floored at zero.
func (s *Service) Vote(id string, direction domain.Vote) (domain.Post, error) {
	if direction != domain.VoteUp && direction != domain.VoteDown {
		return domain.Post{}, fmt.Errorf("unknown vote direction %q", direction)
	}
	return s.repo.Mutate(id, func(p *domain.Post) {
		if p.UserVote == direction {
			p.UserVote = domain.VoteNone
			decrement(p, direction)
			return
		}
		if p.UserVote != domain.VoteNone {
			decrement(p, p.UserVote)
		}
		p.UserVote = direction
		if direction == domain.VoteUp {
			p.Upvotes++
		} else {
			p.Downvotes++
		}
	})
}

func decrement(p *domain.Post, direction domain.Vote) {
	if direction == domain.VoteUp {
		if p.Upvotes > 0 {
			p.Upvotes--
		}
		return
	}
	if p.Downvotes > 0 {
		p.Downvotes--
	}
}

// Replies returns a thread's replies in posting order.
func (s *Service) Replies(postID string) ([]domain.Reply, error) {
	if _, err := s.repo.Get(postID); err != nil {
		return nil, err
	}
	return s.repo.Replies(postID), nil
}

// Reply appends a message authored by the dashboard user to a thread.
func (s *Service) Reply(postID string, content string) (domain.Reply, error) {
	if content == "" {
		return domain.Reply{}, fmt.Errorf("reply content is required")
	}
	r := domain.Reply{
		ID:        uuid.NewString(),
		PostID:    postID,
		Author:    domain.SelfAuthor,
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.repo.AppendReply(r); err != nil {
		return domain.Reply{}, err
	}
	return r, nil
}

// Categories lists the boards in display order.
func (s *Service) Categories() []domain.Category {
	return domain.Categories
}
