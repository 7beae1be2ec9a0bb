package solana

import "context"

// WSClient defines Solana WebSocket subscription interface.
type WSClient interface {
	// SubscribeLogs subscribes to transaction logs mentioning the filter address.
	SubscribeLogs(ctx context.Context, filter LogsFilter) (<-chan LogNotification, error)

	// Close closes the WebSocket connection and all subscription channels.
	Close() error
}

// LogsFilter defines subscription filter for logs.
// The RPC only accepts a single mentioned address per subscription.
type LogsFilter struct {
	Mentions string
}

// LogNotification represents a logs subscription message.
type LogNotification struct {
	Signature string
	Slot      int64
	Err       interface{}
}

// Succeeded reports whether the notified transaction executed without error.
func (n LogNotification) Succeeded() bool {
	return n.Err == nil
}
