package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/handler"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/metrics"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/api/middleware"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
)

// access is the gate placed in front of a procedure.
type access int

const (
	public access = iota
	authenticated
	adminOnly
)

// procedure is one entry of the RPC surface. Queries are served over GET
// with the input in the query string, mutations over POST.
type procedure struct {
	name     string
	mutation bool
	access   access
	handle   echo.HandlerFunc
}

type procedureHandlers struct {
	auth      *handler.AuthHandler
	system    *handler.SystemHandler
	social    *handler.SocialMediaHandler
	calendar  *handler.CalendarHandler
	ideas     *handler.IdeaHandler
	assets    *handler.AssetHandler
	tasks     *handler.TaskHandler
	apiKeys   *handler.APIKeyHandler
	templates *handler.TemplateHandler
	lore      *handler.LoreHandler
	dashboard *handler.DashboardHandler
}

func query(name string, a access, h echo.HandlerFunc) procedure {
	return procedure{name: name, access: a, handle: h}
}

func mutation(name string, a access, h echo.HandlerFunc) procedure {
	return procedure{name: name, mutation: true, access: a, handle: h}
}

// registry lists every callable procedure.
func registry(h procedureHandlers) []procedure {
	return []procedure{
		query("auth.me", public, h.auth.Me),
		mutation("auth.logout", public, h.auth.Logout),

		query("system.health", public, h.system.Health),
		mutation("system.notifyOwner", adminOnly, h.system.NotifyOwner),
		mutation("system.runMigration", adminOnly, h.system.RunMigration),

		query("socialMedia.list", authenticated, h.social.List),
		mutation("socialMedia.create", authenticated, h.social.Create),
		mutation("socialMedia.update", authenticated, h.social.Update),
		mutation("socialMedia.delete", authenticated, h.social.Delete),

		query("calendar.list", authenticated, h.calendar.List),
		mutation("calendar.create", authenticated, h.calendar.Create),
		mutation("calendar.update", authenticated, h.calendar.Update),
		mutation("calendar.delete", authenticated, h.calendar.Delete),

		query("ideas.list", authenticated, h.ideas.List),
		mutation("ideas.create", authenticated, h.ideas.Create),
		mutation("ideas.update", authenticated, h.ideas.Update),
		mutation("ideas.delete", authenticated, h.ideas.Delete),

		query("assets.list", authenticated, h.assets.List),
		mutation("assets.create", authenticated, h.assets.Create),
		mutation("assets.delete", authenticated, h.assets.Delete),

		query("tasks.list", authenticated, h.tasks.List),
		mutation("tasks.create", authenticated, h.tasks.Create),
		mutation("tasks.update", authenticated, h.tasks.Update),
		mutation("tasks.toggle", authenticated, h.tasks.Toggle),
		mutation("tasks.delete", authenticated, h.tasks.Delete),

		query("apiKeys.list", authenticated, h.apiKeys.List),
		mutation("apiKeys.create", authenticated, h.apiKeys.Create),
		mutation("apiKeys.delete", authenticated, h.apiKeys.Delete),

		query("templates.list", authenticated, h.templates.List),
		mutation("templates.create", authenticated, h.templates.Create),
		mutation("templates.delete", authenticated, h.templates.Delete),

		query("lore.list", authenticated, h.lore.List),
		mutation("lore.create", authenticated, h.lore.Create),
		mutation("lore.update", authenticated, h.lore.Update),
		mutation("lore.delete", authenticated, h.lore.Delete),

		query("dashboard.stats", authenticated, h.dashboard.Stats),
	}
}

// mount registers procs under g as /<namespace>.<procedure>.
func mount(g *echo.Group, procs []procedure) {
	for _, p := range procs {
		mws := []echo.MiddlewareFunc{instrument(p.name)}
		switch p.access {
		case authenticated:
			mws = append(mws, middleware.RequireUser())
		case adminOnly:
			mws = append(mws, middleware.RequireRole(domain.RoleAdmin))
		}

		if p.mutation {
			g.POST("/"+p.name, p.handle, mws...)
		} else {
			g.GET("/"+p.name, p.handle, mws...)
		}
	}
}

// instrument records call counts and latency per procedure, including
// calls rejected by the access gate.
func instrument(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			metrics.ProcedureDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
			metrics.ProcedureCallsTotal.WithLabelValues(name, outcome(c, err)).Inc()
			return err
		}
	}
}

func outcome(c echo.Context, err error) string {
	status := c.Response().Status
	if err != nil {
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			status = he.Code
		case errors.Is(err, domain.ErrValidation), middleware.IsAuthError(err):
			status = http.StatusBadRequest
		default:
			status = http.StatusInternalServerError
		}
	}

	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status >= http.StatusBadRequest:
		return "client_error"
	default:
		return "ok"
	}
}
