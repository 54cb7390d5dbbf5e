package service

import (
	"context"
)

// ScoreUpdatedEvent is emitted whenever a daily snapshot's scores change, so
// downstream consumers (coaching jobs, analytics) can react without polling.
type ScoreUpdatedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Date      string `json:"date"` // Snapshot day, YYYY-MM-DD
	Nutrition int    `json:"nutrition"`
	Exercise  int    `json:"exercise"`
	Hydration int    `json:"hydration"`
	Sleep     int    `json:"sleep"`
	Weight    int    `json:"weight"`
	Overall   int    `json:"overall"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishScoreUpdated publishes a score-updated event for async processing
	PublishScoreUpdated(ctx context.Context, event *ScoreUpdatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
