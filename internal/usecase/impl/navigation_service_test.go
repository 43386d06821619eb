package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"saferoute/config"
	"saferoute/internal/domain/entity"
	domainerrors "saferoute/internal/domain/errors"
	mockService "saferoute/internal/mocks/service"
	"saferoute/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testOrigin      = entity.RoutePoint{Lat: 25.0330, Lng: 121.5654}
	testDestination = entity.RoutePoint{Lat: 25.0362, Lng: 121.5654}
)

const testMetersPerDegree = 6371000.0 * math.Pi / 180

// north returns the point d meters north of testOrigin.
func north(d float64) entity.RoutePoint {
	return entity.RoutePoint{Lat: testOrigin.Lat + d/testMetersPerDegree, Lng: testOrigin.Lng}
}

func testRoutes() []entity.Route {
	return []entity.Route{
		{
			Geometry: []entity.RoutePoint{north(0), north(100), north(300), north(350)},
			Steps: []entity.RouteStep{
				{Instruction: "Head north on Songren Road", Distance: 100, Duration: 72, Type: entity.ManeuverDepart, StartIndex: 0, EndIndex: 1},
				{Instruction: "Turn left onto Xinyi Road", Distance: 200, Duration: 144, Type: entity.ManeuverLeft, StartIndex: 1, EndIndex: 2},
				{Instruction: "Turn right onto Lane 25", Distance: 50, Duration: 36, Type: entity.ManeuverRight, StartIndex: 2, EndIndex: 3},
			},
			Distance: 350,
			Duration: 252,
		},
		{
			Geometry: []entity.RoutePoint{north(0)},
		},
	}
}

type recordingAnnouncer struct {
	mu        sync.Mutex
	announced []string
	cancels   int
}

func (a *recordingAnnouncer) Announce(cue entity.Announcement) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.announced = append(a.announced, cue.Text)
}

func (a *recordingAnnouncer) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancels++
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// navigationServiceFixtures holds all test dependencies for navigation service tests.
type navigationServiceFixtures struct {
	service    usecase.NavigationUsecase
	routes     *mockService.MockRouteProvider
	publisher  *mockService.MockEventPublisher
	announcers *mockService.MockAnnouncerFactory
	announcer  *recordingAnnouncer
	clock      *fakeClock
}

func createTestNavigationService(t *testing.T, mutate ...func(cfg *config.Config)) navigationServiceFixtures {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	for _, m := range mutate {
		m(cfg)
	}

	routes := mockService.NewMockRouteProvider(t)
	publisher := mockService.NewMockEventPublisher(t)
	announcers := mockService.NewMockAnnouncerFactory(t)
	clock := &fakeClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}

	svc := NewNavigationService(NavigationServiceParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Routes:     routes,
		Announcers: announcers,
		Publisher:  publisher,
	})
	svc.(*navigationService).now = clock.Now

	return navigationServiceFixtures{
		service:    svc,
		routes:     routes,
		publisher:  publisher,
		announcers: announcers,
		announcer:  &recordingAnnouncer{},
		clock:      clock,
	}
}

func eventOfType(eventType entity.NavigationEventType) interface{} {
	return mock.MatchedBy(func(e *entity.NavigationEvent) bool {
		return e.Type == eventType
	})
}

// openSession creates a session owned by ownerID with the default test routes.
func (f navigationServiceFixtures) openSession(t *testing.T, ownerID string) *usecase.Session {
	t.Helper()

	f.routes.EXPECT().
		Directions(mock.Anything, testOrigin, testDestination).
		Return(testRoutes(), nil).Once()
	f.announcers.EXPECT().
		New(mock.AnythingOfType("string"), "").
		Return(f.announcer).Once()

	session, err := f.service.CreateSession(context.Background(), &usecase.CreateSessionInput{
		OwnerID: ownerID,
		From:    testOrigin,
		To:      testDestination,
	})
	require.NoError(t, err)

	return session
}

// navigate opens a session and selects the first route.
func (f navigationServiceFixtures) navigate(t *testing.T) uuid.UUID {
	t.Helper()

	session := f.openSession(t, "")
	f.publisher.EXPECT().
		PublishNavigationEvent(mock.Anything, eventOfType(entity.NavigationEventRouteSelected)).
		Return(nil).Once()

	_, err := f.service.SelectRoute(context.Background(), "", session.ID, 0)
	require.NoError(t, err)

	return session.ID
}

func position(p entity.RoutePoint) usecase.PositionSample {
	return usecase.PositionSample{Lat: p.Lat, Lng: p.Lng}
}

func TestNavigationService_CreateSession(t *testing.T) {
	f := createTestNavigationService(t)

	session := f.openSession(t, "")

	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Len(t, session.Routes, 2)
	require.NotNil(t, session.Progress)
	assert.Equal(t, "idle", session.Progress.State)
	assert.Nil(t, session.Progress.SelectedRoute)
	assert.Equal(t, 0.0, session.Progress.RemainingDistance)
	assert.Empty(t, session.Progress.Announcements)
}

func TestNavigationService_CreateSession_InvalidCoordinates(t *testing.T) {
	f := createTestNavigationService(t)

	_, err := f.service.CreateSession(context.Background(), &usecase.CreateSessionInput{
		From: entity.RoutePoint{Lat: math.NaN(), Lng: 0},
		To:   testDestination,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNavigationService_CreateSession_RoutingError(t *testing.T) {
	f := createTestNavigationService(t)

	f.routes.EXPECT().
		Directions(mock.Anything, testOrigin, testDestination).
		Return(nil, domainerrors.ErrNoRouteFound)

	_, err := f.service.CreateSession(context.Background(), &usecase.CreateSessionInput{From: testOrigin, To: testDestination})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NO_ROUTE_FOUND", appErr.ErrorCode())
}

func TestNavigationService_CreateSession_LimitExceeded(t *testing.T) {
	f := createTestNavigationService(t, func(cfg *config.Config) {
		cfg.Navigation.MaxSessions = 1
	})
	f.openSession(t, "")

	_, err := f.service.CreateSession(context.Background(), &usecase.CreateSessionInput{From: testOrigin, To: testDestination})

	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}

func TestNavigationService_CreateSession_EvictsExpired(t *testing.T) {
	f := createTestNavigationService(t, func(cfg *config.Config) {
		cfg.Navigation.MaxSessions = 1
		cfg.Navigation.SessionTTL = time.Minute
	})
	first := f.openSession(t, "")

	f.clock.now = f.clock.now.Add(2 * time.Minute)
	second := f.openSession(t, "")

	assert.NotEqual(t, first.ID, second.ID)
	_, err := f.service.GetProgress(context.Background(), "", first.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestNavigationService_SelectRoute(t *testing.T) {
	f := createTestNavigationService(t)
	session := f.openSession(t, "")

	f.publisher.EXPECT().
		PublishNavigationEvent(mock.Anything, mock.MatchedBy(func(e *entity.NavigationEvent) bool {
			return e.Type == entity.NavigationEventRouteSelected && e.SessionID == session.ID && e.StepIndex == 0
		})).
		Return(nil).Once()

	progress, err := f.service.SelectRoute(context.Background(), "", session.ID, 0)
	require.NoError(t, err)

	assert.Equal(t, "navigating", progress.State)
	require.NotNil(t, progress.SelectedRoute)
	assert.Equal(t, 0, *progress.SelectedRoute)
	assert.Equal(t, 350.0, progress.RemainingDistance)
	assert.Equal(t, 252.0, progress.RemainingDuration)
	assert.Equal(t, "Head north on Songren Road", progress.CurrentInstruction)
	assert.Equal(t, "depart", progress.CurrentManeuver)
	require.NotNil(t, progress.NextTurnPoint)
	assert.Equal(t, north(100), *progress.NextTurnPoint)
	require.Len(t, progress.Announcements, 1)
	assert.Equal(t, "Head north on Songren Road", progress.Announcements[0].Text)
	assert.Equal(t, "en-US", progress.Announcements[0].Locale)
}

func TestNavigationService_SelectRoute_Errors(t *testing.T) {
	f := createTestNavigationService(t)
	session := f.openSession(t, "")

	_, err := f.service.SelectRoute(context.Background(), "", session.ID, 5)
	assert.True(t, errors.Is(err, domainerrors.ErrRouteIndexOutOfRange))

	_, err = f.service.SelectRoute(context.Background(), "", session.ID, -1)
	assert.True(t, errors.Is(err, domainerrors.ErrRouteIndexOutOfRange))

	_, err = f.service.SelectRoute(context.Background(), "", session.ID, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyRoute))

	_, err = f.service.SelectRoute(context.Background(), "", uuid.New(), 0)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestNavigationService_UpdatePosition_RequiresRoute(t *testing.T) {
	f := createTestNavigationService(t)
	session := f.openSession(t, "")

	_, err := f.service.UpdatePosition(context.Background(), "", session.ID, position(testOrigin))

	assert.True(t, errors.Is(err, domainerrors.ErrNoActiveRoute))
}

func TestNavigationService_UpdatePosition_FullJourney(t *testing.T) {
	f := createTestNavigationService(t)
	id := f.navigate(t)
	ctx := context.Background()

	// far from the first maneuver point
	progress, err := f.service.UpdatePosition(ctx, "", id, position(north(-50)))
	require.NoError(t, err)
	require.NotNil(t, progress.Applied)
	assert.True(t, *progress.Applied)
	require.NotNil(t, progress.DistanceToNextTurn)
	assert.Equal(t, 150.0, *progress.DistanceToNextTurn)
	require.NotNil(t, progress.LastPosition)
	assert.Empty(t, progress.Announcements) // drained by route selection

	// pre-announcement band
	progress, err = f.service.UpdatePosition(ctx, "", id, position(north(40)))
	require.NoError(t, err)
	require.Len(t, progress.Announcements, 1)
	assert.Equal(t, "In 60 meters, Turn left onto Xinyi Road", progress.Announcements[0].Text)

	f.publisher.EXPECT().
		PublishNavigationEvent(mock.Anything, mock.MatchedBy(func(e *entity.NavigationEvent) bool {
			return e.Type == entity.NavigationEventStepAdvanced && e.StepIndex == 1 && e.Position != nil
		})).
		Return(nil).Once()

	progress, err = f.service.UpdatePosition(ctx, "", id, position(north(90)))
	require.NoError(t, err)
	assert.Equal(t, 1, progress.CurrentStepIndex)
	assert.Equal(t, 250.0, progress.RemainingDistance)
	require.Len(t, progress.Announcements, 1)
	assert.Equal(t, "Turn left onto Xinyi Road", progress.Announcements[0].Text)

	f.publisher.EXPECT().
		PublishNavigationEvent(mock.Anything, eventOfType(entity.NavigationEventStepAdvanced)).
		Return(nil).Once()
	_, err = f.service.UpdatePosition(ctx, "", id, position(north(295)))
	require.NoError(t, err)

	f.publisher.EXPECT().
		PublishNavigationEvent(mock.Anything, eventOfType(entity.NavigationEventArrived)).
		Return(nil).Once()

	progress, err = f.service.UpdatePosition(ctx, "", id, position(north(345)))
	require.NoError(t, err)
	assert.True(t, progress.Arrived)
	assert.Equal(t, "arrived", progress.State)
	assert.Nil(t, progress.NextTurnPoint)
	assert.Equal(t, 0.0, progress.RemainingDistance)
	require.NotEmpty(t, progress.Announcements)
	assert.Equal(t, "You have arrived at your destination.", progress.Announcements[len(progress.Announcements)-1].Text)

	// terminal state ignores further samples
	progress, err = f.service.UpdatePosition(ctx, "", id, position(north(0)))
	require.NoError(t, err)
	assert.False(t, *progress.Applied)
	assert.True(t, progress.Arrived)
	assert.Empty(t, progress.Announcements)
}

func TestNavigationService_UpdatePosition_InvalidSampleIgnored(t *testing.T) {
	f := createTestNavigationService(t)
	id := f.navigate(t)

	progress, err := f.service.UpdatePosition(context.Background(), "", id, usecase.PositionSample{Lat: 123, Lng: 0})
	require.NoError(t, err)

	assert.False(t, *progress.Applied)
	assert.Nil(t, progress.DistanceToNextTurn)
	assert.Equal(t, 0, progress.CurrentStepIndex)
}

func TestNavigationService_UpdatePosition_PublishFailureIsLogged(t *testing.T) {
	f := createTestNavigationService(t)
	id := f.navigate(t)

	f.publisher.EXPECT().
		PublishNavigationEvent(mock.Anything, eventOfType(entity.NavigationEventStepAdvanced)).
		Return(errors.New("broker down")).Once()

	progress, err := f.service.UpdatePosition(context.Background(), "", id, position(north(95)))
	require.NoError(t, err)
	assert.Equal(t, 1, progress.CurrentStepIndex)
}

func TestNavigationService_ToggleMute(t *testing.T) {
	f := createTestNavigationService(t)
	id := f.navigate(t)
	ctx := context.Background()
	_, _ = f.service.GetProgress(ctx, "", id)

	progress, err := f.service.ToggleMute(ctx, "", id)
	require.NoError(t, err)
	assert.True(t, progress.Muted)
	assert.Empty(t, progress.Announcements)

	// muted samples still move progress
	f.publisher.EXPECT().
		PublishNavigationEvent(mock.Anything, eventOfType(entity.NavigationEventStepAdvanced)).
		Return(nil).Once()
	progress, err = f.service.UpdatePosition(ctx, "", id, position(north(95)))
	require.NoError(t, err)
	assert.Equal(t, 1, progress.CurrentStepIndex)
	assert.Empty(t, progress.Announcements)

	progress, err = f.service.ToggleMute(ctx, "", id)
	require.NoError(t, err)
	assert.False(t, progress.Muted)
	assert.Equal(t, 1, progress.CurrentStepIndex)
	require.Len(t, progress.Announcements, 1)
	assert.Equal(t, "Turn left onto Xinyi Road", progress.Announcements[0].Text)
}

func TestNavigationService_ClearRoute(t *testing.T) {
	f := createTestNavigationService(t)
	id := f.navigate(t)
	cancels := f.announcer.cancels

	f.publisher.EXPECT().
		PublishNavigationEvent(mock.Anything, eventOfType(entity.NavigationEventCancelled)).
		Return(nil).Once()

	progress, err := f.service.ClearRoute(context.Background(), "", id)
	require.NoError(t, err)

	assert.Equal(t, "idle", progress.State)
	assert.Nil(t, progress.SelectedRoute)
	assert.Equal(t, cancels+1, f.announcer.cancels)

	// clearing an idle session publishes nothing
	_, err = f.service.ClearRoute(context.Background(), "", id)
	require.NoError(t, err)
}

func TestNavigationService_EndSession(t *testing.T) {
	f := createTestNavigationService(t)
	id := f.navigate(t)

	f.publisher.EXPECT().
		PublishNavigationEvent(mock.Anything, eventOfType(entity.NavigationEventCancelled)).
		Return(nil).Once()

	require.NoError(t, f.service.EndSession(context.Background(), "", id))

	_, err := f.service.GetProgress(context.Background(), "", id)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
	err = f.service.EndSession(context.Background(), "", id)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestNavigationService_Ownership(t *testing.T) {
	f := createTestNavigationService(t)
	session := f.openSession(t, "alice")

	_, err := f.service.GetProgress(context.Background(), "bob", session.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionOwnershipViolation))

	_, err = f.service.GetProgress(context.Background(), "alice", session.ID)
	assert.NoError(t, err)
}

func TestNavigationService_SessionTTL(t *testing.T) {
	f := createTestNavigationService(t, func(cfg *config.Config) {
		cfg.Navigation.SessionTTL = time.Minute
	})
	session := f.openSession(t, "")

	f.clock.now = f.clock.now.Add(50 * time.Second)
	_, err := f.service.GetProgress(context.Background(), "", session.ID)
	require.NoError(t, err)

	// reads keep the session alive
	f.clock.now = f.clock.now.Add(50 * time.Second)
	_, err = f.service.GetProgress(context.Background(), "", session.ID)
	require.NoError(t, err)

	f.clock.now = f.clock.now.Add(61 * time.Second)
	_, err = f.service.GetProgress(context.Background(), "", session.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestNavigationService_ConcurrentSamples(t *testing.T) {
	f := createTestNavigationService(t)
	id := f.navigate(t)
	f.publisher.EXPECT().PublishNavigationEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(offset float64) {
			defer wg.Done()
			for d := -50.0; d < 400; d += 10 {
				_, _ = f.service.UpdatePosition(context.Background(), "", id, position(north(d+offset)))
			}
		}(float64(i))
	}
	wg.Wait()

	progress, err := f.service.GetProgress(context.Background(), "", id)
	require.NoError(t, err)
	assert.LessOrEqual(t, progress.CurrentStepIndex, 2)
}
