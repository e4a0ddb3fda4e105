package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/creatorclub/cc-backend/internal/projects/domain"
)

// Column is one board column with its cards in stored order.
type Column struct {
	Status   domain.Status    `json:"status"`
	Projects []domain.Project `json:"projects"`
}

// Board groups projects into the four columns in display order.
func (s *Service) Board(ctx context.Context) []Column {
	byStatus := make(map[domain.Status][]domain.Project, len(domain.Statuses))
	for _, p := range s.repo.List(ctx) {
		byStatus[p.Status] = append(byStatus[p.Status], p)
	}

	columns := make([]Column, 0, len(domain.Statuses))
	for _, status := range domain.Statuses {
		items := byStatus[status]
		if items == nil {
			items = []domain.Project{}
		}
		columns = append(columns, Column{Status: status, Projects: items})
	}
	return columns
}

// ListView groups projects by status like Board, but sorts each group by
// due date for the table rendering.
func (s *Service) ListView(ctx context.Context) []Column {
	columns := s.Board(ctx)
	for i := range columns {
		items := columns[i].Projects
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].DueDate < items[b].DueDate
		})
	}
	return columns
}

// CalendarView buckets projects by due date for the month grid.
func (s *Service) CalendarView(ctx context.Context) map[string][]domain.Project {
	byDay := make(map[string][]domain.Project)
	for _, p := range s.repo.List(ctx) {
		if p.DueDate == "" {
			continue
		}
		byDay[p.DueDate] = append(byDay[p.DueDate], p)
	}
	return byDay
}

// Summary is the board header line: counts and compensation totals split
// by completion.
type Summary struct {
	ActiveCount    int     `json:"active_count"`
	CompletedCount int     `json:"completed_count"`
	ActiveSum      float64 `json:"active_sum"`
	CompletedSum   float64 `json:"completed_sum"`
}

// Summarize computes the board summary over all projects.
func (s *Service) Summarize(ctx context.Context) Summary {
	var out Summary
	for _, p := range s.repo.List(ctx) {
		if p.Status == domain.StatusCompleted {
			out.CompletedCount++
			out.CompletedSum += p.Compensation
		} else {
			out.ActiveCount++
			out.ActiveSum += p.Compensation
		}
	}
	return out
}

// DueBadge classifies a due date relative to now for the card badge.
type DueBadge struct {
	Days    int    `json:"days"`
	Overdue bool   `json:"overdue"`
	Label   string `json:"label"`
}

// DueBadgeFor computes the badge shown on an uncompleted card.
func DueBadgeFor(dueDate string, now time.Time) DueBadge {
	d := domain.DaysUntil(dueDate, now)
	switch {
	case d < 0:
		return DueBadge{Days: d, Overdue: true, Label: fmt.Sprintf("%d days overdue", -d)}
	case d == 0:
		return DueBadge{Days: 0, Label: "due today"}
	default:
		return DueBadge{Days: d, Label: fmt.Sprintf("%d days", d)}
	}
}
