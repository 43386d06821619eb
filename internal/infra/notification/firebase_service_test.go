package notification

import (
	"context"
	"testing"
	"time"

	"saferoute/internal/domain/entity"
	"saferoute/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/test/messages/1", nil
}

func TestFirebaseService_SendAnnouncement(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}
	issued := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)

	err := svc.SendAnnouncement(context.Background(), "device-token", entity.Announcement{
		Text:      "In 60 meters, Turn left onto Main St",
		Locale:    "en-US",
		Kind:      entity.AnnouncementPreAnnouncement,
		StepIndex: 1,
		IssuedAt:  issued,
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "device-token", msg.Token)
	assert.Nil(t, msg.Notification)
	assert.Equal(t, "In 60 meters, Turn left onto Main St", msg.Data["text"])
	assert.Equal(t, "pre_announcement", msg.Data["kind"])
	assert.Equal(t, "1", msg.Data["step_index"])
	assert.Equal(t, "2026-03-01T08:30:00Z", msg.Data["issued_at"])
	assert.Equal(t, "high", msg.Android.Priority)
	require.NotNil(t, msg.Android.TTL)
	assert.Equal(t, announcementTTL, *msg.Android.TTL)
}

func TestFirebaseService_SendAnnouncement_Error(t *testing.T) {
	sender := &fakeSender{err: errors.New("unavailable")}
	svc := &firebaseService{client: sender}

	err := svc.SendAnnouncement(context.Background(), "device-token", entity.Announcement{Text: "Turn left"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send announcement")
}
