package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorclub/cc-backend/internal/community/domain"
	"github.com/creatorclub/cc-backend/internal/community/repository"
)

var seedNow = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

func setup(t *testing.T) *Service {
	t.Helper()
	return New(repository.New(seedNow), func() time.Time { return seedNow })
}

func TestFeed_HotRanksRecentBeforeOlder(t *testing.T) {
	svc := setup(t)

	// Work Opportunities seed: posts 1 (2h, score 57), 2 (6h, score 58),
	// 3 (24h, score 38) and 4 (48h, score 23) are all within 72 hours, so
	// the ordering is purely by score.
	posts, err := svc.Feed(domain.CategoryWorkOpportunities, domain.SortHot)
	require.NoError(t, err)
	require.Len(t, posts, 4)
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(posts))

	t.Run("an older post ranks last regardless of score", func(t *testing.T) {
		// A four-day-old heavyweight loses to every recent post.
		old, err := svc.Create(CreateInput{Title: "Old hit", Category: domain.CategoryWorkOpportunities})
		require.NoError(t, err)
		_, err = svc.repo.Mutate(old.ID, func(p *domain.Post) {
			p.CreatedAt = seedNow.Add(-96 * time.Hour)
			p.Upvotes = 500
		})
		require.NoError(t, err)

		posts, err := svc.Feed(domain.CategoryWorkOpportunities, domain.SortHot)
		require.NoError(t, err)
		require.Len(t, posts, 5)
		assert.Equal(t, old.ID, posts[4].ID)
	})
}

func TestFeed_NewestIsReverseChronological(t *testing.T) {
	svc := setup(t)

	posts, err := svc.Feed(domain.CategoryWorkOpportunities, domain.SortNewest)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(posts))
}

func TestFeed_RejectsUnknownInputs(t *testing.T) {
	svc := setup(t)

	_, err := svc.Feed(domain.Category("Cooking"), domain.SortHot)
	require.Error(t, err)

	_, err = svc.Feed(domain.CategoryGeneralChat, domain.Sort("Top"))
	require.Error(t, err)
}

func TestCreate(t *testing.T) {
	svc := setup(t)

	p, err := svc.Create(CreateInput{Title: "Hello", Content: "First post", Category: domain.CategoryGeneralChat})
	require.NoError(t, err)
	assert.Equal(t, domain.SelfAuthor, p.Author)
	assert.Zero(t, p.Upvotes)
	assert.Zero(t, p.ReplyCount)

	posts, err := svc.Feed(domain.CategoryGeneralChat, domain.SortNewest)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, p.ID, posts[0].ID)
}

func TestVoteToggling(t *testing.T) {
	svc := setup(t)

	t.Run("upvote then re-click clears it", func(t *testing.T) {
		p, err := svc.Vote("1", domain.VoteUp)
		require.NoError(t, err)
		assert.Equal(t, 13, p.Upvotes)
		assert.Equal(t, domain.VoteUp, p.UserVote)

		p, err = svc.Vote("1", domain.VoteUp)
		require.NoError(t, err)
		assert.Equal(t, 12, p.Upvotes)
		assert.Equal(t, domain.VoteNone, p.UserVote)
	})

	t.Run("switching direction moves the vote", func(t *testing.T) {
		p, err := svc.Vote("2", domain.VoteUp)
		require.NoError(t, err)
		assert.Equal(t, 29, p.Upvotes)

		p, err = svc.Vote("2", domain.VoteDown)
		require.NoError(t, err)
		assert.Equal(t, 28, p.Upvotes)
		assert.Equal(t, 3, p.Downvotes)
		assert.Equal(t, domain.VoteDown, p.UserVote)
	})

	t.Run("counters never go negative", func(t *testing.T) {
		fresh, err := svc.Create(CreateInput{Title: "Zero", Category: domain.CategoryGeneralChat})
		require.NoError(t, err)

		p, err := svc.Vote(fresh.ID, domain.VoteDown)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Downvotes)

		// Clearing the vote floors at zero even if the counter started out
		// at zero.
		p, err = svc.Vote(fresh.ID, domain.VoteDown)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Downvotes)
	})

	t.Run("unknown post or direction errors", func(t *testing.T) {
		_, err := svc.Vote("missing", domain.VoteUp)
		require.ErrorIs(t, err, domain.ErrNotFound)

		_, err = svc.Vote("1", domain.Vote("sideways"))
		require.Error(t, err)
	})
}

func TestReplies(t *testing.T) {
	svc := setup(t)

	t.Run("seed threads open with canned replies", func(t *testing.T) {
		rs, err := svc.Replies("1")
		require.NoError(t, err)
		require.Len(t, rs, 3)
		assert.Equal(t, "@creator1", rs[0].Author)
	})

	t.Run("replying appends and bumps the count", func(t *testing.T) {
		before, err := svc.Get("1")
		require.NoError(t, err)

		r, err := svc.Reply("1", "Thanks for sharing!")
		require.NoError(t, err)
		assert.Equal(t, domain.SelfAuthor, r.Author)

		after, err := svc.Get("1")
		require.NoError(t, err)
		assert.Equal(t, before.ReplyCount+1, after.ReplyCount)

		rs, err := svc.Replies("1")
		require.NoError(t, err)
		assert.Equal(t, "Thanks for sharing!", rs[len(rs)-1].Content)
	})

	t.Run("replying to a missing thread errors", func(t *testing.T) {
		_, err := svc.Reply("missing", "hello")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func ids(posts []domain.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}
