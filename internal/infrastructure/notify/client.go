// Package notify delivers owner notifications to the platform notification
// service.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

const (
	sendNotificationPath = "/webdevtoken.v1.WebDevService/SendNotification"
	defaultTimeout       = 15 * time.Second
)

var _ ports.Notifier = (*Client)(nil)

type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client implements ports.Notifier.
type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return &Client{cfg: cfg, http: &http.Client{Timeout: timeout}, log: log}
}

// Send posts the notification. A missing URL or key is a configuration
// error; transport failures and non-2xx responses yield false.
func (c *Client) Send(ctx context.Context, n ports.Notification) (bool, error) {
	if c.cfg.URL == "" || c.cfg.APIKey == "" {
		return false, domain.ErrNotifierNotConfigured
	}

	body, err := json.Marshal(map[string]string{"title": n.Title, "content": n.Content})
	if err != nil {
		return false, fmt.Errorf("notify encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+sendNotificationPath, bytes.NewReader(body))
	if err != nil {
		c.log.Warn().Err(err).Msg("notification request build failed")
		return false, nil
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Connect-Protocol-Version", "1")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("notification delivery failed")
		return false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("detail", string(detail)).
			Msg("notification rejected upstream")
		return false, nil
	}
	return true, nil
}
