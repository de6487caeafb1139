package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/domain"
	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

const (
	TitleMaxLength   = 1200
	ContentMaxLength = 20000
)

// NotificationService validates and forwards owner notifications.
type NotificationService struct {
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewNotificationService(notifier ports.Notifier, log zerolog.Logger) *NotificationService {
	return &NotificationService{notifier: notifier, log: log}
}

// NotifyOwner trims and validates the payload before any delivery attempt.
func (s *NotificationService) NotifyOwner(ctx context.Context, title, content string) (bool, error) {
	n, err := validateNotification(title, content)
	if err != nil {
		return false, err
	}
	if s.notifier == nil {
		return false, domain.ErrNotifierNotConfigured
	}

	ok, err := s.notifier.Send(ctx, n)
	if err != nil {
		return false, err
	}
	if !ok {
		s.log.Warn().Int("title_len", len(n.Title)).Msg("owner notification not delivered")
	}
	return ok, nil
}

func validateNotification(title, content string) (ports.Notification, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	switch {
	case title == "":
		return ports.Notification{}, fmt.Errorf("%w: notification title is required", domain.ErrValidation)
	case content == "":
		return ports.Notification{}, fmt.Errorf("%w: notification content is required", domain.ErrValidation)
	case utf8.RuneCountInString(title) > TitleMaxLength:
		return ports.Notification{}, fmt.Errorf("%w: notification title must be at most %d characters", domain.ErrValidation, TitleMaxLength)
	case utf8.RuneCountInString(content) > ContentMaxLength:
		return ports.Notification{}, fmt.Errorf("%w: notification content must be at most %d characters", domain.ErrValidation, ContentMaxLength)
	}
	return ports.Notification{Title: title, Content: content}, nil
}
