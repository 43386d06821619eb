package announce

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"saferoute/internal/domain/entity"
	"saferoute/internal/domain/service"
	"saferoute/internal/errors"
)

// noopAnnouncer discards every cue, for headless environments
type noopAnnouncer struct{}

func (noopAnnouncer) Announce(entity.Announcement) {}

func (noopAnnouncer) Cancel() {}

// logAnnouncer writes cues to the structured log
type logAnnouncer struct {
	logger *slog.Logger
}

// NewLogAnnouncer returns an announcer that logs every cue at Info.
func NewLogAnnouncer(logger *slog.Logger) service.Announcer {
	return &logAnnouncer{logger: logger}
}

func (a *logAnnouncer) Announce(cue entity.Announcement) {
	a.logger.Info("Announcement",
		slog.String("kind", string(cue.Kind)),
		slog.String("text", cue.Text),
		slog.String("locale", cue.Locale),
		slog.Int("step_index", cue.StepIndex),
	)
}

func (a *logAnnouncer) Cancel() {}

// webhookPayload is posted to the configured speech endpoint
type webhookPayload struct {
	SessionID    string              `json:"session_id"`
	Announcement entity.Announcement `json:"announcement"`
}

// webhookSpeaker posts each cue to an HTTP endpoint that performs speech synthesis
type webhookSpeaker struct {
	url        string
	sessionID  string
	httpClient *http.Client
}

func (s *webhookSpeaker) Speak(ctx context.Context, a entity.Announcement) error {
	body, err := json.Marshal(webhookPayload{SessionID: s.sessionID, Announcement: a})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("speech endpoint returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// pushSpeaker sends each cue as a push message to the observer's device
type pushSpeaker struct {
	notifier service.NotificationService
	token    string
}

func (s *pushSpeaker) Speak(ctx context.Context, a entity.Announcement) error {
	return s.notifier.SendAnnouncement(ctx, s.token, a)
}
