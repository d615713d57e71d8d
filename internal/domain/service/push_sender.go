package service

import "context"

// PushSender defines the interface for push notification delivery.
type PushSender interface {
	// SendBatch sends push notifications to multiple device tokens.
	// Returns success count, failure count, the tokens the provider reported
	// as invalid, and error.
	SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingle sends a push notification to a single device token.
	SendSingle(ctx context.Context, token, title, body string, data map[string]string) error
}
