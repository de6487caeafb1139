package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

func TestSend_Delivered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, sendNotificationPath, r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		assert.Equal(t, "1", r.Header.Get("Connect-Protocol-Version"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["title"])
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL + "/", APIKey: "key-1"}, zerolog.Nop())
	ok, err := c.Send(context.Background(), ports.Notification{Title: "hello", Content: "world"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSend_RejectedUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	ok, err := NewClient(Config{URL: srv.URL, APIKey: "k"}, zerolog.Nop()).
		Send(context.Background(), ports.Notification{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSend_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	ok, err := NewClient(Config{URL: url, APIKey: "k"}, zerolog.Nop()).
		Send(context.Background(), ports.Notification{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSend_NotConfigured(t *testing.T) {
	_, err := NewClient(Config{URL: "http://x"}, zerolog.Nop()).
		Send(context.Background(), ports.Notification{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, domain.ErrNotifierNotConfigured)
}
