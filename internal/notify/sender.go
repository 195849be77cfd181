package notify

import (
	"context"
	"log"

	"github.com/Domenick1991/turfbooking/internal/kafka"
)

// Sender delivers a notification event to a user. Implementations are best-effort and
// at-most-once; a failed delivery is reported but never retried here.
type Sender interface {
	Send(ctx context.Context, event kafka.NotificationEvent) error
}

// LogSender writes notifications to the process log. It stands in for the push
// gateway in local and test environments.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, event kafka.NotificationEvent) error {
	log.Printf("[notify] user=%s type=%s event=%s :: %s: %s", event.UserID, event.Type, event.EventID, event.Title, event.Body)
	return nil
}

var _ Sender = (*LogSender)(nil)
