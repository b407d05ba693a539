package email

import (
	"context"
	"errors"
)

// Sender define la interfaz para avisar al dueño del sitio cuando alguien
// firma el guestbook.
type Sender interface {
	SendGuestMessageNotice(ctx context.Context, name, fromEmail, body string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendGuestMessageNotice(_ context.Context, _ string, _ string, _ string) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
