package announce

import (
	"log/slog"
	"net/http"
	"time"

	"saferoute/config"
	"saferoute/internal/domain/constants"
	"saferoute/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type factory struct {
	provider   string
	webhookURL string
	timeout    time.Duration
	httpClient *http.Client
	notifier   service.NotificationService
	logger     *slog.Logger
}

// FactoryParams holds dependencies for the AnnouncerFactory, injected by Fx
type FactoryParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier service.NotificationService `optional:"true"`
}

// NewAnnouncerFactory creates an AnnouncerFactory based on configuration
func NewAnnouncerFactory(params FactoryParams) (service.AnnouncerFactory, error) {
	cfg := params.Config.Announcer
	if cfg == nil {
		cfg = &config.AnnouncerConfig{Provider: constants.AnnouncerProviderLog}
	}

	f := &factory{
		provider:   cfg.Provider,
		webhookURL: cfg.WebhookURL,
		timeout:    cfg.Timeout,
		notifier:   params.Notifier,
		logger:     params.Logger,
	}
	if f.timeout <= 0 {
		f.timeout = 5 * time.Second
	}

	switch cfg.Provider {
	case constants.AnnouncerProviderNoop, constants.AnnouncerProviderLog:
	case constants.AnnouncerProviderWebhook:
		if cfg.WebhookURL == "" {
			return nil, errors.New("webhook URL is required for webhook announcer")
		}
		f.httpClient = &http.Client{}
	case constants.AnnouncerProviderFCM:
		if params.Notifier == nil {
			params.Logger.Warn("FCM announcer selected but Firebase is not configured, falling back to log")
			f.provider = constants.AnnouncerProviderLog
		}
	default:
		return nil, errors.Errorf("unknown announcer provider: %s", cfg.Provider)
	}

	params.Logger.Info("Announcer configured", slog.String("provider", f.provider))

	return f, nil
}

// New builds the announcer for one session
func (f *factory) New(sessionID, deviceToken string) service.Announcer {
	logger := f.logger.With(slog.String("session_id", sessionID))

	switch f.provider {
	case constants.AnnouncerProviderNoop:
		return noopAnnouncer{}
	case constants.AnnouncerProviderWebhook:
		return NewSingleSlot(&webhookSpeaker{
			url:        f.webhookURL,
			sessionID:  sessionID,
			httpClient: f.httpClient,
		}, f.timeout, logger)
	case constants.AnnouncerProviderFCM:
		if deviceToken == "" {
			return &logAnnouncer{logger: logger}
		}

		return NewSingleSlot(&pushSpeaker{notifier: f.notifier, token: deviceToken}, f.timeout, logger)
	default:
		return &logAnnouncer{logger: logger}
	}
}

// Module provides the announcer FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAnnouncerFactory),
)
