package repository

import (
	"fmt"
	"time"

	"github.com/creatorclub/cc-backend/internal/community/domain"
)

// seedPosts returns the starter threads with creation times offset from
// now, so the Hot partition behaves the same on every start.
func seedPosts(now time.Time) []domain.Post {
	return []domain.Post{
		{
			ID:         "1",
			Title:      "Looking for a fashion UGC creator for a paid campaign",
			Author:     "@janeDoe",
			Content:    "Looking for a fashion UGC creator for a paid campaign. Must have experience with lifestyle and fashion content. Budget is £500-£800 per post.",
			Category:   domain.CategoryWorkOpportunities,
			CreatedAt:  now.Add(-2 * time.Hour),
			Upvotes:    12,
			Downvotes:  0,
			ReplyCount: 45,
		},
		{
			ID:         "2",
			Title:      "How to get your first brand deal",
			Author:     "@videoVic",
			Content:    "I've been creating content for 6 months now and have 5K followers. What's the best way to approach brands for my first collaboration?",
			Category:   domain.CategoryWorkOpportunities,
			CreatedAt:  now.Add(-6 * time.Hour),
			Upvotes:    28,
			Downvotes:  2,
			ReplyCount: 32,
		},
		{
			ID:         "3",
			Title:      "Pitching to small brands",
			Author:     "@creativeCarrie",
			Content:    "Has anyone had success pitching to smaller, indie brands? Looking for advice on how to structure my pitch email.",
			Category:   domain.CategoryWorkOpportunities,
			CreatedAt:  now.Add(-24 * time.Hour),
			Upvotes:    15,
			Downvotes:  1,
			ReplyCount: 24,
		},
		{
			ID:         "4",
			Title:      "What's the best way to approach a brand?",
			Author:     "@shotbySam",
			Content:    "Should I reach out via email, Instagram DM, or through their website contact form? What's worked best for you?",
			Category:   domain.CategoryWorkOpportunities,
			CreatedAt:  now.Add(-48 * time.Hour),
			Upvotes:    8,
			Downvotes:  0,
			ReplyCount: 15,
		},
		{
			ID:         "5",
			Title:      "Best editing software for beginners?",
			Author:     "@editEmma",
			Content:    "I'm just starting out and looking for editing software recommendations. What's user-friendly but still has good features?",
			Category:   domain.CategoryEditingTools,
			CreatedAt:  now.Add(-3 * time.Hour),
			Upvotes:    5,
			Downvotes:  0,
			ReplyCount: 18,
		},
		{
			ID:         "6",
			Title:      "Content ideas for lifestyle creators",
			Author:     "@lifestyleLiz",
			Content:    "Running out of content ideas! What are some lifestyle content themes that perform well?",
			Category:   domain.CategoryCreativeIdeas,
			CreatedAt:  now.Add(-5 * time.Hour),
			Upvotes:    3,
			Downvotes:  0,
			ReplyCount: 12,
		},
	}
}

// seedReplies returns the canned replies every starter thread opens with.
func seedReplies(postID string, now time.Time) []domain.Reply {
	return []domain.Reply{
		{
			ID:        fmt.Sprintf("r1_%s", postID),
			PostID:    postID,
			Author:    "@creator1",
			Content:   "Great question! I found that reaching out directly via email works best.",
			CreatedAt: now.Add(-time.Hour),
		},
		{
			ID:        fmt.Sprintf("r2_%s", postID),
			PostID:    postID,
			Author:    "@creator2",
			Content:   "I agree, but also consider using LinkedIn for more professional outreach.",
			CreatedAt: now.Add(-45 * time.Minute),
		},
		{
			ID:        fmt.Sprintf("r3_%s", postID),
			PostID:    postID,
			Author:    "@creator3",
			Content:   "Don't forget to include your portfolio link in the first message!",
			CreatedAt: now.Add(-30 * time.Minute),
		},
	}
}
