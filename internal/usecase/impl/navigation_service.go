// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"saferoute/config"
	deliverycontext "saferoute/internal/delivery/context"
	"saferoute/internal/domain/entity"
	domainerrors "saferoute/internal/domain/errors"
	"saferoute/internal/domain/service"
	"saferoute/internal/navigation"
	"saferoute/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// navigationService implements the NavigationUsecase interface.
type navigationService struct {
	cfg        *config.NavigationConfig
	routes     service.RouteProvider
	announcers service.AnnouncerFactory
	publisher  service.EventPublisher
	logger     *slog.Logger
	now        func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

// NavigationServiceParams holds dependencies for the navigation service, injected by Fx
type NavigationServiceParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Routes     service.RouteProvider
	Announcers service.AnnouncerFactory
	Publisher  service.EventPublisher
}

// NewNavigationService is the constructor for navigationService.
func NewNavigationService(params NavigationServiceParams) usecase.NavigationUsecase {
	cfg := params.Config.Navigation
	if cfg == nil {
		params.Config.ApplyDefaults()
		cfg = params.Config.Navigation
	}

	return &navigationService{
		cfg:        cfg,
		routes:     params.Routes,
		announcers: params.Announcers,
		publisher:  params.Publisher,
		logger:     params.Logger,
		now:        time.Now,
		sessions:   make(map[uuid.UUID]*session),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *navigationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession plans routes between two points and opens an idle session.
func (srv *navigationService) CreateSession(ctx context.Context, input *usecase.CreateSessionInput) (*usecase.Session, error) {
	if !input.From.Valid() || !input.To.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("origin and destination must be valid coordinates")
	}

	srv.evictExpired(ctx)
	if srv.sessionCount() >= srv.cfg.MaxSessions {
		return nil, domainerrors.ErrSessionLimitExceeded
	}

	routes, err := srv.routes.Directions(ctx, input.From, input.To)
	if err != nil {
		srv.log(ctx).Warn("Route planning failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "plan routes")
	}

	locale := input.Locale
	if locale == "" {
		locale = srv.cfg.Locale
	}

	id := uuid.New()
	recorder := navigation.NewRecorder(srv.announcers.New(id.String(), input.DeviceToken), srv.cfg.AnnouncementHistory)
	sess := &session{
		id:       id,
		ownerID:  input.OwnerID,
		routes:   routes,
		selected: -1,
		recorder: recorder,
		tracker:  navigation.NewTracker(recorder, navigation.WithLocale(locale), navigation.WithClock(srv.now)),
	}
	sess.touch(srv.now())

	srv.mu.Lock()
	if len(srv.sessions) >= srv.cfg.MaxSessions {
		srv.mu.Unlock()

		return nil, domainerrors.ErrSessionLimitExceeded
	}
	srv.sessions[id] = sess
	srv.mu.Unlock()

	srv.log(ctx).Info("Navigation session created",
		slog.String("session_id", id.String()),
		slog.Int("routes", len(routes)),
		slog.String("locale", locale),
	)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &usecase.Session{
		ID:       id,
		Routes:   routes,
		Progress: srv.progress(sess),
	}, nil
}

// SelectRoute starts navigating the route at index, replacing any previous progress.
func (srv *navigationService) SelectRoute(ctx context.Context, ownerID string, sessionID uuid.UUID, index int) (*usecase.Progress, error) {
	sess, err := srv.lockSession(ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if index < 0 || index >= len(sess.routes) {
		return nil, domainerrors.ErrRouteIndexOutOfRange
	}

	if !sess.tracker.SelectRoute(&sess.routes[index]) {
		sess.selected = -1

		return nil, domainerrors.ErrEmptyRoute
	}
	sess.selected = index
	sess.tracker.RepeatInstruction()

	srv.log(ctx).Info("Route selected",
		slog.String("session_id", sessionID.String()),
		slog.Int("route_index", index),
		slog.Int("steps", len(sess.routes[index].Steps)),
	)
	srv.publish(ctx, sess, entity.NavigationEventRouteSelected, nil)

	return srv.progress(sess), nil
}

// UpdatePosition feeds one observer sample into the session tracker.
func (srv *navigationService) UpdatePosition(ctx context.Context, ownerID string, sessionID uuid.UUID, sample usecase.PositionSample) (*usecase.Progress, error) {
	sess, err := srv.lockSession(ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if sess.tracker.State() == navigation.StateIdle {
		return nil, domainerrors.ErrNoActiveRoute
	}

	position := entity.RoutePoint{Lat: sample.Lat, Lng: sample.Lng}
	update := sess.tracker.OnPositionUpdate(position)

	switch {
	case update.Arrived:
		srv.log(ctx).Info("Destination reached", slog.String("session_id", sessionID.String()))
		srv.publish(ctx, sess, entity.NavigationEventArrived, &position)
	case update.Advanced:
		srv.log(ctx).Debug("Step advanced",
			slog.String("session_id", sessionID.String()),
			slog.Int("step_index", update.StepIndex),
		)
		srv.publish(ctx, sess, entity.NavigationEventStepAdvanced, &position)
	}

	progress := srv.progress(sess)
	progress.Applied = &update.Applied

	return progress, nil
}

// ToggleMute flips the session mute flag, re-announcing the current step on unmute.
func (srv *navigationService) ToggleMute(ctx context.Context, ownerID string, sessionID uuid.UUID) (*usecase.Progress, error) {
	sess, err := srv.lockSession(ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if muted := sess.tracker.ToggleMute(); !muted {
		sess.tracker.RepeatInstruction()
	}

	srv.log(ctx).Debug("Mute toggled",
		slog.String("session_id", sessionID.String()),
		slog.Bool("muted", sess.tracker.Muted()),
	)

	return srv.progress(sess), nil
}

// GetProgress returns the session state and drains pending announcements.
func (srv *navigationService) GetProgress(_ context.Context, ownerID string, sessionID uuid.UUID) (*usecase.Progress, error) {
	sess, err := srv.lockSession(ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	return srv.progress(sess), nil
}

// ClearRoute cancels navigation and returns the session to idle.
func (srv *navigationService) ClearRoute(ctx context.Context, ownerID string, sessionID uuid.UUID) (*usecase.Progress, error) {
	sess, err := srv.lockSession(ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	srv.cancelNavigation(ctx, sess)

	return srv.progress(sess), nil
}

// EndSession cancels navigation and forgets the session.
func (srv *navigationService) EndSession(ctx context.Context, ownerID string, sessionID uuid.UUID) error {
	sess, err := srv.lockSession(ownerID, sessionID)
	if err != nil {
		return err
	}
	srv.cancelNavigation(ctx, sess)
	sess.mu.Unlock()

	srv.mu.Lock()
	delete(srv.sessions, sessionID)
	srv.mu.Unlock()

	srv.log(ctx).Info("Navigation session ended", slog.String("session_id", sessionID.String()))

	return nil
}

// cancelNavigation resets a non-idle tracker. The session must be locked.
func (srv *navigationService) cancelNavigation(ctx context.Context, sess *session) {
	if sess.tracker.State() == navigation.StateIdle {
		return
	}

	sess.tracker.Reset()
	sess.selected = -1
	srv.publish(ctx, sess, entity.NavigationEventCancelled, nil)
}

// lockSession looks up a live session owned by ownerID and returns it locked.
func (srv *navigationService) lockSession(ownerID string, sessionID uuid.UUID) (*session, error) {
	srv.mu.RLock()
	sess, ok := srv.sessions[sessionID]
	srv.mu.RUnlock()

	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}

	now := srv.now()
	if sess.expired(now, srv.cfg.SessionTTL) {
		return nil, domainerrors.ErrSessionNotFound
	}
	if sess.ownerID != "" && sess.ownerID != ownerID {
		return nil, domainerrors.ErrSessionOwnershipViolation
	}

	sess.mu.Lock()
	sess.touch(now)

	return sess, nil
}

func (srv *navigationService) sessionCount() int {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return len(srv.sessions)
}

// evictExpired drops sessions idle for longer than the TTL and silences their announcers.
func (srv *navigationService) evictExpired(ctx context.Context) {
	now := srv.now()

	var expired []*session
	srv.mu.Lock()
	for id, sess := range srv.sessions {
		if sess.expired(now, srv.cfg.SessionTTL) {
			expired = append(expired, sess)
			delete(srv.sessions, id)
		}
	}
	srv.mu.Unlock()

	for _, sess := range expired {
		sess.mu.Lock()
		sess.tracker.Reset()
		sess.mu.Unlock()
	}

	if len(expired) > 0 {
		srv.log(ctx).Info("Evicted expired navigation sessions", slog.Int("count", len(expired)))
	}
}

// publish emits a navigation event. Failures are logged and never reach the caller.
func (srv *navigationService) publish(ctx context.Context, sess *session, eventType entity.NavigationEventType, position *entity.RoutePoint) {
	if srv.publisher == nil {
		return
	}

	event := &entity.NavigationEvent{
		ID:         uuid.New(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		SessionID:  sess.id,
		UserID:     sess.ownerID,
		Type:       eventType,
		StepIndex:  sess.tracker.Snapshot().CurrentIndex,
		Position:   position,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishNavigationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish navigation event",
			slog.String("session_id", sess.id.String()),
			slog.String("type", string(eventType)),
			slog.Any("error", err),
		)
	}
}

// progress builds the observable state and drains recorded announcements. The session must be locked.
func (srv *navigationService) progress(sess *session) *usecase.Progress {
	snap := sess.tracker.Snapshot()

	progress := &usecase.Progress{
		SessionID:          sess.id,
		State:              snap.State.String(),
		CurrentStepIndex:   snap.CurrentIndex,
		DistanceToNextTurn: snap.DistanceToNextTurn,
		RemainingDistance:  sess.tracker.RemainingDistance(),
		RemainingDuration:  sess.tracker.RemainingDuration(),
		LastPosition:       snap.LastPosition,
		Muted:              snap.Muted,
		Arrived:            snap.Arrived,
		Announcements:      sess.recorder.Drain(),
	}
	if progress.Announcements == nil {
		progress.Announcements = []entity.Announcement{}
	}
	if sess.selected >= 0 {
		selected := sess.selected
		progress.SelectedRoute = &selected
	}
	if step, ok := sess.tracker.CurrentStep(); ok {
		progress.CurrentInstruction = step.Instruction
		progress.CurrentManeuver = step.Type.String()
	}
	if point, ok := sess.tracker.NextTurnPoint(); ok {
		progress.NextTurnPoint = &point
	}

	return progress
}
