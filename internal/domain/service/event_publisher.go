package service

import (
	"context"

	"saferoute/internal/domain/entity"
)

// EventPublisher defines the interface for publishing navigation events to a message queue
type EventPublisher interface {
	// PublishNavigationEvent publishes a navigation milestone
	PublishNavigationEvent(ctx context.Context, event *entity.NavigationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
