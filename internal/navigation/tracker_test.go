package navigation

import (
	"math"
	"testing"

	"saferoute/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = entity.RoutePoint{Lat: 25.0330, Lng: 121.5654}

const metersPerDegree = EarthRadiusMeters * math.Pi / 180

// along returns the point d meters north of origin.
func along(d float64) entity.RoutePoint {
	return entity.RoutePoint{Lat: origin.Lat + d/metersPerDegree, Lng: origin.Lng}
}

type fakeAnnouncer struct {
	announced []entity.Announcement
	cancels   int
}

func (f *fakeAnnouncer) Announce(a entity.Announcement) {
	f.announced = append(f.announced, a)
}

func (f *fakeAnnouncer) Cancel() {
	f.cancels++
}

func (f *fakeAnnouncer) texts() []string {
	out := make([]string, 0, len(f.announced))
	for _, a := range f.announced {
		out = append(out, a.Text)
	}

	return out
}

// threeStepRoute runs due north with maneuver points at 100 m, 300 m and 350 m.
func threeStepRoute() *entity.Route {
	return &entity.Route{
		Geometry: []entity.RoutePoint{along(0), along(100), along(300), along(350)},
		Steps: []entity.RouteStep{
			{Instruction: "Head north on Xinyi Rd", Distance: 100, Duration: 72, Type: entity.ManeuverDepart, StartIndex: 0, EndIndex: 1},
			{Instruction: "Turn left onto Main St", Distance: 200, Duration: 144, Type: entity.ManeuverLeft, StartIndex: 1, EndIndex: 2},
			{Instruction: "Turn right onto Oak Ave", Distance: 50, Duration: 36, Type: entity.ManeuverRight, StartIndex: 2, EndIndex: 3},
		},
		Distance: 350,
		Duration: 252,
	}
}

func newNavigatingTracker(t *testing.T) (*Tracker, *fakeAnnouncer) {
	t.Helper()

	announcer := &fakeAnnouncer{}
	tracker := NewTracker(announcer, WithLocale("en-US"))
	require.True(t, tracker.SelectRoute(threeStepRoute()))

	return tracker, announcer
}

func TestTracker_SelectRoute(t *testing.T) {
	tracker, announcer := newNavigatingTracker(t)

	snap := tracker.Snapshot()
	assert.Equal(t, StateNavigating, snap.State)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.False(t, snap.Arrived)
	assert.False(t, snap.PreAnnounced)
	assert.Nil(t, snap.DistanceToNextTurn)
	assert.Equal(t, 350.0, tracker.RemainingDistance())
	assert.Equal(t, 252.0, tracker.RemainingDuration())
	assert.Empty(t, announcer.announced)
	assert.Equal(t, 1, announcer.cancels)
}

func TestTracker_SelectRoute_ReplacesProgress(t *testing.T) {
	tracker, _ := newNavigatingTracker(t)

	tracker.OnPositionUpdate(along(90))
	require.Equal(t, 1, tracker.Snapshot().CurrentIndex)

	require.True(t, tracker.SelectRoute(threeStepRoute()))

	snap := tracker.Snapshot()
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.Nil(t, snap.DistanceToNextTurn)
	assert.Nil(t, snap.LastPosition)
	assert.Equal(t, 350.0, tracker.RemainingDistance())
}

func TestTracker_SelectRoute_Empty(t *testing.T) {
	tracker := NewTracker(nil)

	assert.False(t, tracker.SelectRoute(nil))
	assert.False(t, tracker.SelectRoute(&entity.Route{Geometry: []entity.RoutePoint{origin}}))
	assert.Equal(t, StateIdle, tracker.State())

	update := tracker.OnPositionUpdate(origin)
	assert.False(t, update.Applied)
}

func TestTracker_FarPositions_NoTransition(t *testing.T) {
	// distances from the first maneuver point at along(100)
	for _, dist := range []float64{81.2, 95, 150, 1000} {
		tracker, announcer := newNavigatingTracker(t)

		update := tracker.OnPositionUpdate(along(100 - dist))

		assert.True(t, update.Applied, "dist %v", dist)
		assert.False(t, update.PreAnnounced, "dist %v", dist)
		assert.False(t, update.Advanced, "dist %v", dist)
		assert.Equal(t, 0, tracker.Snapshot().CurrentIndex, "dist %v", dist)
		assert.Empty(t, announcer.announced, "dist %v", dist)
		require.NotNil(t, tracker.Snapshot().DistanceToNextTurn)
		assert.Equal(t, math.Round(dist), *tracker.Snapshot().DistanceToNextTurn)
	}
}

func TestTracker_PreAnnounce_OncePerStep(t *testing.T) {
	tracker, announcer := newNavigatingTracker(t)

	for _, dist := range []float64{60, 50, 40, 30, 45} {
		tracker.OnPositionUpdate(along(100 - dist))
	}

	require.Len(t, announcer.announced, 1)
	assert.Equal(t, "In 60 meters, Turn left onto Main St", announcer.announced[0].Text)
	assert.Equal(t, entity.AnnouncementPreAnnouncement, announcer.announced[0].Kind)
	assert.Equal(t, 1, announcer.announced[0].StepIndex)
	assert.Equal(t, "en-US", announcer.announced[0].Locale)
	assert.True(t, tracker.Snapshot().PreAnnounced)
	assert.Equal(t, 0, tracker.Snapshot().CurrentIndex)
}

func TestTracker_Advance_ResetsPreAnnounce(t *testing.T) {
	tracker, announcer := newNavigatingTracker(t)

	tracker.OnPositionUpdate(along(50))
	update := tracker.OnPositionUpdate(along(90))

	assert.True(t, update.Advanced)
	assert.Equal(t, 1, update.StepIndex)
	snap := tracker.Snapshot()
	assert.Equal(t, 1, snap.CurrentIndex)
	assert.False(t, snap.PreAnnounced)
	assert.Equal(t, []string{
		"In 50 meters, Turn left onto Main St",
		"Turn left onto Main St",
	}, announcer.texts())

	// the next step gets its own pre-announcement
	tracker.OnPositionUpdate(along(240))
	assert.Equal(t, "In 60 meters, Turn right onto Oak Ave", announcer.texts()[2])
}

func TestTracker_Advance_SkipsBandWhenJumpingClose(t *testing.T) {
	tracker, announcer := newNavigatingTracker(t)

	update := tracker.OnPositionUpdate(along(99))

	assert.False(t, update.PreAnnounced)
	assert.True(t, update.Advanced)
	assert.Equal(t, []string{"Turn left onto Main St"}, announcer.texts())
}

func TestTracker_FinalStep_NoPreAnnounce(t *testing.T) {
	tracker, announcer := newNavigatingTracker(t)
	tracker.OnPositionUpdate(along(100))
	tracker.OnPositionUpdate(along(300))
	require.Equal(t, 2, tracker.Snapshot().CurrentIndex)
	before := len(announcer.announced)

	update := tracker.OnPositionUpdate(along(300)) // 50 m from the final point

	assert.False(t, update.PreAnnounced)
	assert.Len(t, announcer.announced, before)
}

func TestTracker_Arrival_IsTerminal(t *testing.T) {
	tracker, announcer := newNavigatingTracker(t)
	tracker.OnPositionUpdate(along(100))
	tracker.OnPositionUpdate(along(300))

	update := tracker.OnPositionUpdate(along(340))

	require.True(t, update.Arrived)
	assert.Equal(t, StateArrived, tracker.State())
	assert.Equal(t, ArrivalText, announcer.announced[len(announcer.announced)-1].Text)
	assert.Equal(t, entity.AnnouncementArrival, announcer.announced[len(announcer.announced)-1].Kind)

	before := tracker.Snapshot()
	count := len(announcer.announced)
	for _, p := range []entity.RoutePoint{along(0), along(340), along(5000), {Lat: 10, Lng: 10}} {
		update := tracker.OnPositionUpdate(p)
		assert.False(t, update.Applied)
	}

	assert.Equal(t, before, tracker.Snapshot())
	assert.True(t, tracker.Snapshot().Arrived)
	assert.Len(t, announcer.announced, count)
	_, ok := tracker.NextTurnPoint()
	assert.False(t, ok)
}

func TestTracker_WalkthroughScenario(t *testing.T) {
	tracker, _ := newNavigatingTracker(t)

	// 150 m from the first maneuver point
	update := tracker.OnPositionUpdate(along(-50))
	assert.False(t, update.Advanced)
	assert.Equal(t, 0, tracker.Snapshot().CurrentIndex)
	assert.Equal(t, 350.0, tracker.RemainingDistance())

	// 20 m from the first maneuver point
	update = tracker.OnPositionUpdate(along(80))
	assert.True(t, update.Advanced)
	assert.Equal(t, 1, tracker.Snapshot().CurrentIndex)
	assert.Equal(t, 250.0, tracker.RemainingDistance())

	tracker.OnPositionUpdate(along(295))
	assert.Equal(t, 2, tracker.Snapshot().CurrentIndex)
	assert.Equal(t, 50.0, tracker.RemainingDistance())

	// 10 m from the final point
	update = tracker.OnPositionUpdate(along(340))
	assert.True(t, update.Arrived)
	assert.True(t, tracker.Snapshot().Arrived)
}

func TestTracker_RemainingDistance_NonIncreasing(t *testing.T) {
	tracker, _ := newNavigatingTracker(t)

	prev := tracker.RemainingDistance()
	for d := -100.0; d <= 360; d += 7 {
		tracker.OnPositionUpdate(along(d))
		current := tracker.RemainingDistance()
		assert.LessOrEqual(t, current, prev)
		prev = current
	}
}

func TestTracker_ToggleMute(t *testing.T) {
	tracker, announcer := newNavigatingTracker(t)
	tracker.OnPositionUpdate(along(90))
	before := tracker.Snapshot()

	assert.True(t, tracker.ToggleMute())
	assert.False(t, tracker.ToggleMute())

	after := tracker.Snapshot()
	assert.Equal(t, before.CurrentIndex, after.CurrentIndex)
	assert.Equal(t, before.Arrived, after.Arrived)
	assert.Equal(t, before.DistanceToNextTurn, after.DistanceToNextTurn)
	assert.Equal(t, before.Muted, after.Muted)
	assert.GreaterOrEqual(t, announcer.cancels, 2)
}

func TestTracker_Muted_SuppressesCuesOnly(t *testing.T) {
	tracker, announcer := newNavigatingTracker(t)
	tracker.ToggleMute()

	tracker.OnPositionUpdate(along(50))
	update := tracker.OnPositionUpdate(along(90))

	assert.Empty(t, announcer.announced)
	assert.True(t, update.Advanced)
	assert.Equal(t, 1, tracker.Snapshot().CurrentIndex)

	// band already consumed while muted
	tracker.OnPositionUpdate(along(240))
	assert.True(t, tracker.Snapshot().PreAnnounced)
	tracker.ToggleMute()
	tracker.OnPositionUpdate(along(250))
	assert.Empty(t, announcer.announced)

	require.True(t, tracker.RepeatInstruction())
	assert.Equal(t, []string{"Turn left onto Main St"}, announcer.texts())
}

func TestTracker_InvalidPositions_Ignored(t *testing.T) {
	tracker, announcer := newNavigatingTracker(t)
	tracker.OnPositionUpdate(along(-50))
	before := tracker.Snapshot()

	invalid := []entity.RoutePoint{
		{Lat: 91, Lng: 0},
		{Lat: -91, Lng: 0},
		{Lat: 0, Lng: 181},
		{Lat: 0, Lng: -181},
		{Lat: math.NaN(), Lng: 0},
		{Lat: 0, Lng: math.Inf(1)},
	}
	for _, p := range invalid {
		update := tracker.OnPositionUpdate(p)
		assert.False(t, update.Applied, "position %+v", p)
	}

	assert.Equal(t, before, tracker.Snapshot())
	assert.Empty(t, announcer.announced)
}

func TestTracker_MalformedRoute_Ignored(t *testing.T) {
	route := threeStepRoute()
	route.Steps[1].EndIndex = 42

	tracker := NewTracker(nil)
	require.True(t, tracker.SelectRoute(route))
	tracker.OnPositionUpdate(along(90))
	require.Equal(t, 1, tracker.Snapshot().CurrentIndex)
	before := tracker.Snapshot()

	update := tracker.OnPositionUpdate(along(300))

	assert.False(t, update.Applied)
	assert.Equal(t, before, tracker.Snapshot())
	_, ok := tracker.NextTurnPoint()
	assert.False(t, ok)
}

func TestTracker_NextTurnPoint(t *testing.T) {
	tracker := NewTracker(nil)
	_, ok := tracker.NextTurnPoint()
	assert.False(t, ok)

	route := threeStepRoute()
	tracker.SelectRoute(route)

	point, ok := tracker.NextTurnPoint()
	require.True(t, ok)
	assert.Equal(t, route.Geometry[1], point)

	tracker.OnPositionUpdate(along(100))
	point, ok = tracker.NextTurnPoint()
	require.True(t, ok)
	assert.Equal(t, route.Geometry[2], point)
}

func TestTracker_Reset(t *testing.T) {
	tracker, announcer := newNavigatingTracker(t)
	tracker.ToggleMute()
	tracker.OnPositionUpdate(along(90))
	cancels := announcer.cancels

	tracker.Reset()

	assert.Equal(t, StateIdle, tracker.State())
	assert.Equal(t, cancels+1, announcer.cancels)
	assert.Equal(t, 0.0, tracker.RemainingDistance())
	assert.True(t, tracker.Muted())
	assert.False(t, tracker.RepeatInstruction())
	_, ok := tracker.CurrentStep()
	assert.False(t, ok)
}
