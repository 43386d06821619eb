package notification

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"saferoute/config"
	"saferoute/internal/domain/entity"
	"saferoute/internal/domain/service"
	"saferoute/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// announcementTTL keeps stale cues from being delivered after the observer moved on
const announcementTTL = 30 * time.Second

// messageSender is the part of messaging.Client the service needs
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendAnnouncement pushes a high priority data message that the client speaks aloud
func (s *firebaseService) SendAnnouncement(ctx context.Context, token string, a entity.Announcement) error {
	ttl := announcementTTL
	message := &messaging.Message{
		Token: token,
		Data: map[string]string{
			"kind":       string(a.Kind),
			"text":       a.Text,
			"locale":     a.Locale,
			"step_index": strconv.Itoa(a.StepIndex),
			"issued_at":  a.IssuedAt.UTC().Format(time.RFC3339),
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			TTL:      &ttl,
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{ContentAvailable: true},
			},
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(err, "device token rejected")
		}

		return errors.Wrap(err, "failed to send announcement")
	}

	return nil
}

// Params holds dependencies for the optional Firebase service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewOptionalFirebaseService returns a nil service when Firebase is not configured
func NewOptionalFirebaseService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push announcements disabled")

		return nil, nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}
