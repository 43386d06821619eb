package service

import (
	"context"

	"saferoute/internal/domain/entity"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendAnnouncement pushes a spoken cue to a single device token
	SendAnnouncement(ctx context.Context, token string, a entity.Announcement) error
}
