// Package dashboard assembles the home-page widgets from the other
// collections. It owns no storage of its own.
package dashboard

import (
	"context"
	"fmt"
	"time"

	goalsvc "github.com/creatorclub/cc-backend/internal/goals/service"
	"github.com/creatorclub/cc-backend/internal/projects/domain"
	projrepo "github.com/creatorclub/cc-backend/internal/projects/repository"
	"github.com/creatorclub/cc-backend/internal/timeframe"
)

// Periods the KPI cards can compare. Each one has a well-defined previous
// period of the same length.
var Periods = []timeframe.Frame{timeframe.ThisMonth, timeframe.LastMonth, timeframe.ThisYear}

// Service computes the dashboard views.
type Service struct {
	projects *projrepo.Repository
	goals    *goalsvc.Service
	now      func() time.Time
}

// New creates a Service. now is injectable for tests.
func New(projects *projrepo.Repository, goals *goalsvc.Service, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{projects: projects, goals: goals, now: now}
}

// KPI is one headline number with its delta against the previous period.
type KPI struct {
	Value int `json:"value"`
	Delta int `json:"delta"`
}

// KPIs is the headline card row. Overdue counts over all projects
// regardless of period, since an overdue invoice stays relevant whatever
// window the cards compare.
type KPIs struct {
	Total     KPI `json:"total"`
	Active    KPI `json:"active"`
	Completed KPI `json:"completed"`
	Overdue   int `json:"overdue"`
}

// KPIsFor compares the period's signed projects against the previous
// period of the same length.
func (s *Service) KPIsFor(ctx context.Context, period timeframe.Frame) (KPIs, error) {
	supported := false
	for _, p := range Periods {
		if p == period {
			supported = true
			break
		}
	}
	if !supported {
		return KPIs{}, fmt.Errorf("unsupported period %q", period)
	}

	now := s.now()
	current := timeframe.Range(period, now)
	previous := previousWindow(period, now)
	all := s.projects.List(ctx)

	cur := countProjects(all, current)
	prev := countProjects(all, previous)

	overdue := 0
	for _, p := range all {
		if p.Status == domain.StatusCompleted || p.DueDate == "" {
			continue
		}
		if due := domain.ParseDate(p.DueDate); !due.IsZero() && due.Before(now) {
			overdue++
		}
	}

	return KPIs{
		Total:     KPI{Value: cur.total, Delta: cur.total - prev.total},
		Active:    KPI{Value: cur.active, Delta: cur.active - prev.active},
		Completed: KPI{Value: cur.completed, Delta: cur.completed - prev.completed},
		Overdue:   overdue,
	}, nil
}

type counts struct {
	total, active, completed int
}

func countProjects(all []domain.Project, w timeframe.Window) counts {
	var c counts
	for _, p := range all {
		signed := p.SignedTime()
		if signed.IsZero() || !w.Contains(signed) {
			continue
		}
		c.total++
		if p.Status == domain.StatusCompleted {
			c.completed++
		} else {
			c.active++
		}
	}
	return c
}

// previousWindow shifts a period back by its own length: months go back
// one month, the year goes back one year.
func previousWindow(period timeframe.Frame, now time.Time) timeframe.Window {
	switch period {
	case timeframe.ThisMonth:
		return timeframe.Range(timeframe.LastMonth, now)
	case timeframe.LastMonth:
		// Anchor on the first of the month so AddDate cannot normalize
		// across a short month.
		firstOfLast := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		return timeframe.Range(timeframe.LastMonth, firstOfLast)
	default:
		return timeframe.Range(timeframe.ThisYear, now.AddDate(-1, 0, 0))
	}
}

// ChartPoint is one day of the current month's earnings series.
type ChartPoint struct {
	Day    int     `json:"day"`
	Amount float64 `json:"amount"`
}

// Chart is the current month's daily compensation series.
type Chart struct {
	Month  string       `json:"month"`
	Total  float64      `json:"total"`
	Points []ChartPoint `json:"points"`
}

// MonthlyChart sums project compensation per signing day across the
// current month. Every day appears, zero-filled.
func (s *Service) MonthlyChart(ctx context.Context) Chart {
	now := s.now()
	daysInMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, 1, -1).Day()

	daily := make([]float64, daysInMonth)
	for _, p := range s.projects.List(ctx) {
		signed := p.SignedTime()
		if signed.IsZero() || signed.Year() != now.Year() || signed.Month() != now.Month() {
			continue
		}
		daily[signed.Day()-1] += p.Compensation
	}

	chart := Chart{Month: now.Month().String(), Points: make([]ChartPoint, daysInMonth)}
	for i, amount := range daily {
		chart.Points[i] = ChartPoint{Day: i + 1, Amount: amount}
		chart.Total += amount
	}
	return chart
}

// Overview bundles the home page in one response.
type Overview struct {
	KPIs  KPIs                    `json:"kpis"`
	Chart Chart                   `json:"chart"`
	Goal  goalsvc.MonthlyProgress `json:"goal"`
}

// Overview assembles the default home-page view.
func (s *Service) Overview(ctx context.Context) Overview {
	kpis, _ := s.KPIsFor(ctx, timeframe.ThisMonth)
	return Overview{
		KPIs:  kpis,
		Chart: s.MonthlyChart(ctx),
		Goal:  s.goals.Progress(ctx),
	}
}
