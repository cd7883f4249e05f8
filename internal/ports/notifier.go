package ports

import "context"

// Port: outbound chat message delivery. Fire-and-forget from the
// caller's perspective; failures are logged, never surfaced.
type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}
