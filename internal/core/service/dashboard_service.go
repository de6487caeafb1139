package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// DashboardService derives the landing-screen summary.
type DashboardService struct {
	source ports.DashboardSource
}

func NewDashboardService(source ports.DashboardSource) *DashboardService {
	return &DashboardService{source: source}
}

// Stats fetches the four lists concurrently. List reads degrade to empty
// on store failure, so the only error is cancellation of ctx, observed by
// any of the fetches.
func (s *DashboardService) Stats(ctx context.Context, userID int64) (domain.DashboardStats, error) {
	var (
		social []domain.SocialMediaLink
		events []domain.CalendarEvent
		ideas  []domain.ContentIdea
		tasks  []domain.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	fetch := func(read func(context.Context)) {
		g.Go(func() error {
			read(gctx)
			return gctx.Err()
		})
	}
	fetch(func(ctx context.Context) { social = s.source.ListSocialMedia(ctx, userID) })
	fetch(func(ctx context.Context) { events = s.source.ListCalendarEvents(ctx, userID) })
	fetch(func(ctx context.Context) { ideas = s.source.ListContentIdeas(ctx, userID) })
	fetch(func(ctx context.Context) { tasks = s.source.ListTasks(ctx, userID) })
	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}

	completed := 0
	for _, t := range tasks {
		if t.Status == domain.TaskCompleted {
			completed++
		}
	}

	return domain.DashboardStats{
		SocialMediaCount: len(social),
		EventsCount:      len(events),
		TasksCompleted:   completed,
		TasksTotal:       len(tasks),
		IdeasCount:       len(ideas),
	}, nil
}
