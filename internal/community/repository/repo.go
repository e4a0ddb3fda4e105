// Package repository keeps the community forum in memory. The forum was
// never part of the persisted store layout; it reseeds on every start.
package repository

import (
	"sync"
	"time"

	"github.com/creatorclub/cc-backend/internal/community/domain"
)

// Repository holds posts and replies behind one mutex. Handlers run on
// separate goroutines, so unlike the store-backed collections this one
// needs its own locking.
type Repository struct {
	mu      sync.RWMutex
	posts   []domain.Post
	replies map[string][]domain.Reply
}

// New creates a repository seeded with the starter threads, with ages
// relative to now.
func New(now time.Time) *Repository {
	r := &Repository{replies: make(map[string][]domain.Reply)}
	r.posts = seedPosts(now)
	for _, p := range r.posts {
		r.replies[p.ID] = seedReplies(p.ID, now)
	}
	return r
}

// List returns a copy of all posts in stored order, newest first.
func (r *Repository) List() []domain.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Post, len(r.posts))
	copy(out, r.posts)
	return out
}

// Get returns one post by id.
func (r *Repository) Get(id string) (domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Post{}, domain.ErrNotFound
}

// Prepend inserts a new post at the head of the feed.
func (r *Repository) Prepend(p domain.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append([]domain.Post{p}, r.posts...)
}

// Mutate applies fn to the post with the given id under the write lock.
func (r *Repository) Mutate(id string, fn func(*domain.Post)) (domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			fn(&r.posts[i])
			return r.posts[i], nil
		}
	}
	return domain.Post{}, domain.ErrNotFound
}

// Replies returns a copy of a thread's replies in posting order.
func (r *Repository) Replies(postID string) []domain.Reply {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rs := r.replies[postID]
	out := make([]domain.Reply, len(rs))
	copy(out, rs)
	return out
}

// AppendReply adds a reply to its thread and bumps the head's count.
func (r *Repository) AppendReply(reply domain.Reply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == reply.PostID {
			r.replies[reply.PostID] = append(r.replies[reply.PostID], reply)
			r.posts[i].ReplyCount++
			return nil
		}
	}
	return domain.ErrNotFound
}
