package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/internal/goals/domain"
	"github.com/creatorclub/cc-backend/internal/goals/repository"
	projdomain "github.com/creatorclub/cc-backend/internal/projects/domain"
	projrepo "github.com/creatorclub/cc-backend/internal/projects/repository"
	"github.com/creatorclub/cc-backend/internal/storage"
)

var fixedNow = time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, *projrepo.Repository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := storage.NewRedisStore(client)
	log := zap.NewNop()

	projects := projrepo.New(store, log)
	svc := New(repository.New(store, log), projects, func() time.Time { return fixedNow })
	return svc, projects
}

func TestGoals_CRUD(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, CreateInput{Name: "New camera", TargetAmount: 2000, CurrentAmount: 300, Deadline: "2024-06-01"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, g.Status)
	assert.Equal(t, 15, g.ProgressPercent())

	t.Run("create validates input", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateInput{Name: "", TargetAmount: 100})
		require.Error(t, err)
		_, err = svc.Create(ctx, CreateInput{Name: "X", TargetAmount: 0})
		require.Error(t, err)
	})

	t.Run("reaching the target leaves the status alone", func(t *testing.T) {
		amount := 2500.0
		updated, err := svc.Update(ctx, g.ID, domain.Patch{CurrentAmount: &amount})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusActive, updated.Status)
		assert.Equal(t, 100, updated.ProgressPercent())
	})

	t.Run("completion is an explicit status change", func(t *testing.T) {
		completed := domain.StatusCompleted
		updated, err := svc.Update(ctx, g.ID, domain.Patch{Status: &completed})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, updated.Status)
	})

	t.Run("delete removes the goal", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, g.ID))
		_, err := svc.Get(ctx, g.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSummarize(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	t.Run("empty list yields a zero summary", func(t *testing.T) {
		assert.Equal(t, Summary{}, svc.Summarize(ctx))
	})

	camera, err := svc.Create(ctx, CreateInput{Name: "New camera", TargetAmount: 2000, CurrentAmount: 500})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{Name: "Studio fund", TargetAmount: 1000, CurrentAmount: 400})
	require.NoError(t, err)

	t.Run("sums active goals", func(t *testing.T) {
		sum := svc.Summarize(ctx)
		assert.Equal(t, 2, sum.ActiveCount)
		assert.Equal(t, 3000.0, sum.TotalTarget)
		assert.Equal(t, 900.0, sum.TotalProgress)
		assert.Equal(t, 30, sum.Percent)
	})

	t.Run("non-active goals are excluded", func(t *testing.T) {
		paused := domain.StatusPaused
		_, err := svc.Update(ctx, camera.ID, domain.Patch{Status: &paused})
		require.NoError(t, err)

		sum := svc.Summarize(ctx)
		assert.Equal(t, 1, sum.ActiveCount)
		assert.Equal(t, 1000.0, sum.TotalTarget)
		assert.Equal(t, 400.0, sum.TotalProgress)
		assert.Equal(t, 40, sum.Percent)
	})

	t.Run("percent clamps at 100", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateInput{Name: "Mic", TargetAmount: 100, CurrentAmount: 5000})
		require.NoError(t, err)
		assert.Equal(t, 100, svc.Summarize(ctx).Percent)
	})
}

func TestMonthlyTarget(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	t.Run("unset month falls back to the default", func(t *testing.T) {
		assert.Equal(t, domain.DefaultMonthlyTarget, svc.MonthlyTarget(ctx))
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, svc.SetMonthlyTarget(ctx, 2500))
		assert.Equal(t, 2500.0, svc.MonthlyTarget(ctx))
	})

	t.Run("non-positive targets are rejected", func(t *testing.T) {
		require.Error(t, svc.SetMonthlyTarget(ctx, 0))
		require.Error(t, svc.SetMonthlyTarget(ctx, -10))
	})
}

func TestProgress(t *testing.T) {
	svc, projects := setup(t)
	ctx := context.Background()

	// Signed this month, any payment status counts.
	projects.Create(ctx, projdomain.Project{Name: "A", Compensation: 600, SignedDate: "2024-01-05", Status: projdomain.StatusPlanFilm, PaymentStatus: projdomain.PaymentPending})
	projects.Create(ctx, projdomain.Project{Name: "B", Compensation: 300, SignedDate: "2024-01-20", Status: projdomain.StatusCompleted, PaymentStatus: projdomain.PaymentReceived})
	// Signed outside the month, ignored.
	projects.Create(ctx, projdomain.Project{Name: "C", Compensation: 999, SignedDate: "2023-12-20", Status: projdomain.StatusPlanFilm, PaymentStatus: projdomain.PaymentPending})

	t.Run("progress against the default target", func(t *testing.T) {
		p := svc.Progress(ctx)
		assert.Equal(t, 1500.0, p.Target)
		assert.Equal(t, 900.0, p.Completed)
		assert.Equal(t, 60, p.Percent)
		assert.Equal(t, 600.0, p.Remaining)
	})

	t.Run("percent clamps at 100 and remaining floors at zero", func(t *testing.T) {
		require.NoError(t, svc.SetMonthlyTarget(ctx, 500))
		p := svc.Progress(ctx)
		assert.Equal(t, 100, p.Percent)
		assert.Equal(t, 0.0, p.Remaining)
	})
}
