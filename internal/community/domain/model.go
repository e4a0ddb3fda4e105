// Package domain holds the community forum model.
package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a post id does not exist.
var ErrNotFound = errors.New("post not found")

// SelfAuthor is the handle stamped on posts and replies written from this
// dashboard.
const SelfAuthor = "@you"

// RecentWindow is how long a post counts as recent for the Hot ranking.
const RecentWindow = 72 * time.Hour

// Category is a forum board.
type Category string

const (
	CategoryWorkOpportunities Category = "Work Opportunities"
	CategoryEditingTools      Category = "Editing & Tools"
	CategoryCreativeIdeas     Category = "Creative Ideas"
	CategoryEquipmentGear     Category = "Equipment & Gear"
	CategoryGrowthMarketing   Category = "Growth & Marketing"
	CategoryGeneralChat       Category = "General Chat"
	CategoryShareYourWins     Category = "Share Your Wins"
)

// Categories lists the boards in display order.
var Categories = []Category{
	CategoryWorkOpportunities,
	CategoryEditingTools,
	CategoryCreativeIdeas,
	CategoryEquipmentGear,
	CategoryGrowthMarketing,
	CategoryGeneralChat,
	CategoryShareYourWins,
}

// Valid reports whether c is a known board.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Sort is a feed ordering.
type Sort string

const (
	SortHot    Sort = "Hot"
	SortNewest Sort = "Newest"
)

// Vote is a single-valued user vote direction. Empty means no vote.
type Vote string

const (
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
	VoteNone Vote = ""
)

// Post is one forum thread head.
type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Content    string    `json:"content"`
	Category   Category  `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	UserVote   Vote      `json:"userVote,omitempty"`
	ReplyCount int       `json:"replyCount"`
}

// Score is the engagement score used by the Hot ranking.
func (p Post) Score() int {
	return p.Upvotes - p.Downvotes + p.ReplyCount
}

// Reply is one message inside a thread.
type Reply struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
