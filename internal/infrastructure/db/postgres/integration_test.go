//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/service"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/infrastructure/db/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "vexel_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/vexel_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newStore(t *testing.T) *postgres.Store {
	t.Helper()
	provider := postgres.NewProvider(postgres.Config{DSN: dsn}, zerolog.Nop())
	t.Cleanup(func() { _ = provider.Close() })
	return postgres.NewStore(provider, zerolog.Nop())
}

func createUser(t *testing.T, store *postgres.Store, openID string, role domain.Role) *domain.User {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.UpsertUser(ctx, ports.UserUpsert{OpenID: openID, Role: role, LastSignedIn: time.Now()}))
	u, err := store.FindUserByOpenID(ctx, openID)
	require.NoError(t, err)
	return u
}

// ownedKind drives the same isolation checks through every resource kind.
// update is nil for kinds without an update operation.
type ownedKind struct {
	name   string
	create func(ctx context.Context, s *postgres.Store, userID int64) (int64, error)
	list   func(ctx context.Context, s *postgres.Store, userID int64) []int64
	update func(ctx context.Context, s *postgres.Store, id, userID int64) (int64, error)
	delete func(ctx context.Context, s *postgres.Store, id, userID int64) (int64, error)
}

func ownedIDs[T any](rows []T, owned func(T) domain.Owned) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, owned(r).ID)
	}
	return ids
}

func ownedKinds() []ownedKind {
	title := "renamed"
	return []ownedKind{
		{
			name: "socialMedia",
			create: func(ctx context.Context, s *postgres.Store, uid int64) (int64, error) {
				r, err := s.CreateSocialMedia(ctx, uid, ports.SocialMediaInput{Platform: "YouTube", URL: "https://youtube.com/@a"})
				if err != nil {
					return 0, err
				}
				return r.ID, nil
			},
			list: func(ctx context.Context, s *postgres.Store, uid int64) []int64 {
				return ownedIDs(s.ListSocialMedia(ctx, uid), func(r domain.SocialMediaLink) domain.Owned { return r.Owned })
			},
			update: func(ctx context.Context, s *postgres.Store, id, uid int64) (int64, error) {
				url := "https://evil.example"
				return s.UpdateSocialMedia(ctx, id, uid, ports.SocialMediaPatch{URL: &url})
			},
			delete: (*postgres.Store).DeleteSocialMedia,
		},
		{
			name: "calendar",
			create: func(ctx context.Context, s *postgres.Store, uid int64) (int64, error) {
				r, err := s.CreateCalendarEvent(ctx, uid, ports.CalendarEventInput{Title: "Release", StartDate: time.Now(), Status: domain.EventPlanned})
				if err != nil {
					return 0, err
				}
				return r.ID, nil
			},
			list: func(ctx context.Context, s *postgres.Store, uid int64) []int64 {
				return ownedIDs(s.ListCalendarEvents(ctx, uid), func(r domain.CalendarEvent) domain.Owned { return r.Owned })
			},
			update: func(ctx context.Context, s *postgres.Store, id, uid int64) (int64, error) {
				return s.UpdateCalendarEvent(ctx, id, uid, ports.CalendarEventPatch{Title: &title})
			},
			delete: (*postgres.Store).DeleteCalendarEvent,
		},
		{
			name: "ideas",
			create: func(ctx context.Context, s *postgres.Store, uid int64) (int64, error) {
				r, err := s.CreateContentIdea(ctx, uid, ports.ContentIdeaInput{Title: "Acoustic cover", Status: domain.IdeaStatus("").OrDefault(), Priority: domain.PriorityMedium})
				if err != nil {
					return 0, err
				}
				return r.ID, nil
			},
			list: func(ctx context.Context, s *postgres.Store, uid int64) []int64 {
				return ownedIDs(s.ListContentIdeas(ctx, uid), func(r domain.ContentIdea) domain.Owned { return r.Owned })
			},
			update: func(ctx context.Context, s *postgres.Store, id, uid int64) (int64, error) {
				return s.UpdateContentIdea(ctx, id, uid, ports.ContentIdeaPatch{Title: &title})
			},
			delete: (*postgres.Store).DeleteContentIdea,
		},
		{
			name: "assets",
			create: func(ctx context.Context, s *postgres.Store, uid int64) (int64, error) {
				r, err := s.CreateAsset(ctx, uid, ports.AssetInput{Name: "cover.png", FileURL: "https://cdn.example/cover.png"})
				if err != nil {
					return 0, err
				}
				return r.ID, nil
			},
			list: func(ctx context.Context, s *postgres.Store, uid int64) []int64 {
				return ownedIDs(s.ListAssets(ctx, uid), func(r domain.Asset) domain.Owned { return r.Owned })
			},
			delete: (*postgres.Store).DeleteAsset,
		},
		{
			name: "tasks",
			create: func(ctx context.Context, s *postgres.Store, uid int64) (int64, error) {
				r, err := s.CreateTask(ctx, uid, ports.TaskInput{Title: "Mix track", Status: domain.TaskPending, Priority: domain.PriorityHigh})
				if err != nil {
					return 0, err
				}
				return r.ID, nil
			},
			list: func(ctx context.Context, s *postgres.Store, uid int64) []int64 {
				return ownedIDs(s.ListTasks(ctx, uid), func(r domain.Task) domain.Owned { return r.Owned })
			},
			update: func(ctx context.Context, s *postgres.Store, id, uid int64) (int64, error) {
				return s.ToggleTask(ctx, id, uid, nil)
			},
			delete: (*postgres.Store).DeleteTask,
		},
		{
			name: "apiKeys",
			create: func(ctx context.Context, s *postgres.Store, uid int64) (int64, error) {
				r, err := s.CreateAPIKey(ctx, uid, ports.APIKeyInput{Name: "Spotify", KeyHash: "$2a$10$hash", KeySuffix: "abcd"})
				if err != nil {
					return 0, err
				}
				return r.ID, nil
			},
			list: func(ctx context.Context, s *postgres.Store, uid int64) []int64 {
				return ownedIDs(s.ListAPIKeys(ctx, uid), func(r domain.APIKey) domain.Owned { return r.Owned })
			},
			delete: (*postgres.Store).DeleteAPIKey,
		},
		{
			name: "templates",
			create: func(ctx context.Context, s *postgres.Store, uid int64) (int64, error) {
				r, err := s.CreateTemplate(ctx, uid, ports.TemplateInput{Name: "Press release"})
				if err != nil {
					return 0, err
				}
				return r.ID, nil
			},
			list: func(ctx context.Context, s *postgres.Store, uid int64) []int64 {
				return ownedIDs(s.ListTemplates(ctx, uid), func(r domain.Template) domain.Owned { return r.Owned })
			},
			delete: (*postgres.Store).DeleteTemplate,
		},
		{
			name: "lore",
			create: func(ctx context.Context, s *postgres.Store, uid int64) (int64, error) {
				r, err := s.CreateLoreNote(ctx, uid, ports.LoreNoteInput{Title: "Origin story"})
				if err != nil {
					return 0, err
				}
				return r.ID, nil
			},
			list: func(ctx context.Context, s *postgres.Store, uid int64) []int64 {
				return ownedIDs(s.ListLoreNotes(ctx, uid), func(r domain.LoreNote) domain.Owned { return r.Owned })
			},
			update: func(ctx context.Context, s *postgres.Store, id, uid int64) (int64, error) {
				return s.UpdateLoreNote(ctx, id, uid, ports.LoreNotePatch{Title: &title})
			},
			delete: (*postgres.Store).DeleteLoreNote,
		},
	}
}

func TestStore_TenantIsolation(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	for _, k := range ownedKinds() {
		t.Run(k.name, func(t *testing.T) {
			alice := createUser(t, store, "oid-alice-"+k.name, domain.RoleUser)
			bob := createUser(t, store, "oid-bob-"+k.name, domain.RoleUser)

			id, err := k.create(ctx, store, alice.ID)
			require.NoError(t, err)

			require.Contains(t, k.list(ctx, store, alice.ID), id)
			require.NotContains(t, k.list(ctx, store, bob.ID), id)

			if k.update != nil {
				n, err := k.update(ctx, store, id, bob.ID)
				require.NoError(t, err)
				require.Zero(t, n, "foreign update must affect no rows")

				n, err = k.update(ctx, store, id, alice.ID)
				require.NoError(t, err)
				require.EqualValues(t, 1, n)
			}

			n, err := k.delete(ctx, store, id, bob.ID)
			require.NoError(t, err)
			require.Zero(t, n, "foreign delete must affect no rows")
			require.Contains(t, k.list(ctx, store, alice.ID), id)

			n, err = k.delete(ctx, store, id, alice.ID)
			require.NoError(t, err)
			require.EqualValues(t, 1, n)
			require.NotContains(t, k.list(ctx, store, alice.ID), id)
		})
	}
}

func TestStore_ForeignUpdateLeavesRowUntouched(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	alice := createUser(t, store, "oid-alice-untouched", domain.RoleUser)
	bob := createUser(t, store, "oid-bob-untouched", domain.RoleUser)

	link, err := store.CreateSocialMedia(ctx, alice.ID, ports.SocialMediaInput{Platform: "YouTube", URL: "https://youtube.com/@a"})
	require.NoError(t, err)

	url := "https://evil.example"
	n, err := store.UpdateSocialMedia(ctx, link.ID, bob.ID, ports.SocialMediaPatch{URL: &url})
	require.NoError(t, err)
	require.Zero(t, n)

	got := store.ListSocialMedia(ctx, alice.ID)
	require.Len(t, got, 1)
	require.Equal(t, "https://youtube.com/@a", got[0].URL)
}

func TestStore_TaskLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	u := createUser(t, store, "oid-tasks", domain.RoleUser)

	task, err := store.CreateTask(ctx, u.ID, ports.TaskInput{Title: "Mix track", Status: domain.TaskPending, Priority: domain.PriorityMedium})
	require.NoError(t, err)
	require.Equal(t, domain.TaskPending, task.Status)

	n, err := store.ToggleTask(ctx, task.ID, u.ID, nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	stats, err := service.NewDashboardService(store).Stats(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stats.TasksTotal)
	require.Equal(t, 1, stats.TasksCompleted)

	n, err = store.DeleteTask(ctx, task.ID, u.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	require.Empty(t, store.ListTasks(ctx, u.ID))
}

func TestStore_CalendarOrderedByStartDate(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	u := createUser(t, store, "oid-calendar", domain.RoleUser)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, d := range []int{0, 10, 5} {
		_, err := store.CreateCalendarEvent(ctx, u.ID, ports.CalendarEventInput{
			Title:     fmt.Sprintf("day %d", d),
			StartDate: base.AddDate(0, 0, d),
			Status:    domain.EventPlanned,
		})
		require.NoError(t, err)
	}

	events := store.ListCalendarEvents(ctx, u.ID)
	require.Len(t, events, 3)
	require.Equal(t, "day 10", events[0].Title)
	require.Equal(t, "day 5", events[1].Title)
	require.Equal(t, "day 0", events[2].Title)
}

func TestMigrationService_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	admin := createUser(t, store, "oid-owner", domain.RoleAdmin)
	svc := service.NewMigrationService(store, zerolog.Nop())

	for i := 0; i < 2; i++ {
		res := svc.RunMigration(ctx, admin.ID)
		require.True(t, res.Success, res.Message)
	}

	links := store.ListSocialMedia(ctx, admin.ID)
	require.Len(t, links, 1)
	require.Equal(t, service.DefaultSocialMediaSeed.URL, links[0].URL)
}

func TestUpsertUser_NeverDemotesAdmin(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	createUser(t, store, "oid-demote", domain.RoleAdmin)

	require.NoError(t, store.UpsertUser(ctx, ports.UserUpsert{OpenID: "oid-demote", Role: domain.RoleUser, LastSignedIn: time.Now()}))
	u, err := store.FindUserByOpenID(ctx, "oid-demote")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, u.Role)
}
