package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

const readinessTimeout = 3 * time.Second

// Check probes one dependency.
type Check func(ctx context.Context) error

// Dependency is a named readiness check. An Optional dependency that is down
// marks the service degraded but still ready: the app runs without it.
type Dependency struct {
	Name     string
	Check    Check
	Optional bool
}

// Probes serves GET /health (liveness) and GET /health/ready (readiness).
type Probes struct {
	deps    []Dependency
	started time.Time
}

func NewProbes(deps ...Dependency) *Probes {
	return &Probes{deps: deps, started: time.Now()}
}

type livenessResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

type dependencyStatus struct {
	Status   string `json:"status"`
	Optional bool   `json:"optional,omitempty"`
	Error    string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (p *Probes) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, livenessResponse{
		Status: "ok",
		Uptime: time.Since(p.started).Round(time.Second).String(),
	})
}

// Ready runs every check concurrently under a shared timeout.
func (p *Probes) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	var (
		mu   sync.Mutex
		deps = make(map[string]dependencyStatus, len(p.deps))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, d := range p.deps {
		g.Go(func() error {
			st := dependencyStatus{Status: "ok", Optional: d.Optional}
			if err := d.Check(gctx); err != nil {
				st.Status = "unhealthy"
				st.Error = err.Error()
			}
			mu.Lock()
			deps[d.Name] = st
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	status, code := "ok", http.StatusOK
	for _, st := range deps {
		if st.Status == "ok" {
			continue
		}
		if !st.Optional {
			status, code = "unavailable", http.StatusServiceUnavailable
			break
		}
		status = "degraded"
	}

	return c.JSON(code, readinessResponse{Status: status, Dependencies: deps})
}
