// Package navigation tracks an observer's progress along a selected route
// and decides when turn-by-turn cues are spoken.
package navigation

import (
	"fmt"
	"math"
	"time"

	"saferoute/internal/domain/entity"
	"saferoute/internal/domain/service"
)

const (
	// ArrivalRadiusMeters is the distance under which a maneuver point counts as reached.
	ArrivalRadiusMeters = 25.0

	// PreAnnounceRadiusMeters is the distance under which the next instruction is announced ahead of time.
	PreAnnounceRadiusMeters = 80.0

	// ArrivalText is spoken when the final maneuver point is reached.
	ArrivalText = "You have arrived at your destination."
)

// State is the tracker lifecycle state.
type State int

const (
	StateIdle State = iota
	StateNavigating
	StateArrived
)

func (s State) String() string {
	switch s {
	case StateNavigating:
		return "navigating"
	case StateArrived:
		return "arrived"
	default:
		return "idle"
	}
}

// Update describes what a single position sample did to the tracker.
type Update struct {
	Applied      bool    // False when the sample was ignored.
	Distance     float64 // Raw distance to the current maneuver point in meters.
	PreAnnounced bool    // The next instruction was announced ahead of time.
	Advanced     bool    // The current step moved forward by one.
	Arrived      bool    // The final maneuver point was reached.
	StepIndex    int     // Current step index after the sample.
}

// Snapshot is a read-only copy of the tracker state.
type Snapshot struct {
	State              State
	CurrentIndex       int
	Arrived            bool
	PreAnnounced       bool
	Muted              bool
	LastPosition       *entity.RoutePoint
	DistanceToNextTurn *float64
}

// Tracker is a single-owner state machine; it is not safe for concurrent use.
type Tracker struct {
	announcer service.Announcer
	locale    string
	now       func() time.Time

	route              *entity.Route
	currentIndex       int
	arrived            bool
	preAnnounced       bool
	muted              bool
	lastPosition       *entity.RoutePoint
	distanceToNextTurn *float64
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLocale sets the locale tag attached to every announcement.
func WithLocale(locale string) Option {
	return func(t *Tracker) {
		t.locale = locale
	}
}

// WithClock overrides the clock used to stamp announcements.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// NewTracker creates an idle tracker. A nil announcer discards every cue.
func NewTracker(announcer service.Announcer, opts ...Option) *Tracker {
	if announcer == nil {
		announcer = nopAnnouncer{}
	}

	t := &Tracker{
		announcer: announcer,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// SelectRoute starts navigating route from its first step. A route without
// steps leaves the tracker idle and returns false.
func (t *Tracker) SelectRoute(route *entity.Route) bool {
	t.announcer.Cancel()
	t.clear()

	if route == nil || len(route.Steps) == 0 {
		return false
	}

	t.route = route

	return true
}

// Reset returns the tracker to idle and cancels any cue in flight.
// The mute flag is kept.
func (t *Tracker) Reset() {
	t.announcer.Cancel()
	t.clear()
}

func (t *Tracker) clear() {
	t.route = nil
	t.currentIndex = 0
	t.arrived = false
	t.preAnnounced = false
	t.lastPosition = nil
	t.distanceToNextTurn = nil
}

// OnPositionUpdate applies one observer sample. Samples are ignored while
// idle or arrived, when the position is not a valid coordinate, or when the
// current step points outside the route geometry.
func (t *Tracker) OnPositionUpdate(position entity.RoutePoint) Update {
	if t.route == nil || t.arrived || !position.Valid() {
		return Update{StepIndex: t.currentIndex}
	}

	step := t.route.Steps[t.currentIndex]
	if step.EndIndex < 0 || step.EndIndex >= len(t.route.Geometry) {
		return Update{StepIndex: t.currentIndex}
	}

	dist := Distance(position, t.route.Geometry[step.EndIndex])
	rounded := math.Round(dist)

	pos := position
	t.lastPosition = &pos
	t.distanceToNextTurn = &rounded

	update := Update{Applied: true, Distance: dist}
	last := len(t.route.Steps) - 1

	if dist > ArrivalRadiusMeters && dist < PreAnnounceRadiusMeters && !t.preAnnounced && t.currentIndex < last {
		next := t.route.Steps[t.currentIndex+1]
		t.announce(fmt.Sprintf("In %d meters, %s", int(rounded), next.Instruction), entity.AnnouncementPreAnnouncement, t.currentIndex+1)
		t.preAnnounced = true
		update.PreAnnounced = true
	}

	if dist < ArrivalRadiusMeters {
		if t.currentIndex == last {
			t.arrived = true
			t.announce(ArrivalText, entity.AnnouncementArrival, t.currentIndex)
			update.Arrived = true
		} else {
			t.currentIndex++
			t.preAnnounced = false
			t.announce(t.route.Steps[t.currentIndex].Instruction, entity.AnnouncementInstruction, t.currentIndex)
			update.Advanced = true
		}
	}

	update.StepIndex = t.currentIndex

	return update
}

// RepeatInstruction announces the current step again, e.g. after unmuting.
// It reports whether a cue was issued.
func (t *Tracker) RepeatInstruction() bool {
	if t.route == nil || t.muted {
		return false
	}

	if t.arrived {
		t.announce(ArrivalText, entity.AnnouncementArrival, t.currentIndex)

		return true
	}

	t.announce(t.route.Steps[t.currentIndex].Instruction, entity.AnnouncementInstruction, t.currentIndex)

	return true
}

func (t *Tracker) announce(text string, kind entity.AnnouncementKind, stepIndex int) {
	if t.muted {
		return
	}

	t.announcer.Announce(entity.Announcement{
		Text:      text,
		Locale:    t.locale,
		Kind:      kind,
		StepIndex: stepIndex,
		IssuedAt:  t.now(),
	})
}

// ToggleMute flips the mute flag and returns the new value. Muting cancels
// a cue in flight but never changes navigation progress.
func (t *Tracker) ToggleMute() bool {
	t.muted = !t.muted
	if t.muted {
		t.announcer.Cancel()
	}

	return t.muted
}

// Muted reports whether announcements are suppressed.
func (t *Tracker) Muted() bool {
	return t.muted
}

// State returns the lifecycle state.
func (t *Tracker) State() State {
	switch {
	case t.route == nil:
		return StateIdle
	case t.arrived:
		return StateArrived
	default:
		return StateNavigating
	}
}

// Route returns the route being navigated, or nil when idle.
func (t *Tracker) Route() *entity.Route {
	return t.route
}

// CurrentStep returns the active step.
func (t *Tracker) CurrentStep() (entity.RouteStep, bool) {
	if t.route == nil {
		return entity.RouteStep{}, false
	}

	return t.route.Steps[t.currentIndex], true
}

// RemainingDistance sums step distances from the current step to the end.
// It is zero when idle or arrived.
func (t *Tracker) RemainingDistance() float64 {
	if t.route == nil || t.arrived {
		return 0
	}

	var total float64
	for _, step := range t.route.Steps[t.currentIndex:] {
		total += step.Distance
	}

	return total
}

// RemainingDuration sums step durations from the current step to the end.
// It is zero when idle or arrived.
func (t *Tracker) RemainingDuration() float64 {
	if t.route == nil || t.arrived {
		return 0
	}

	var total float64
	for _, step := range t.route.Steps[t.currentIndex:] {
		total += step.Duration
	}

	return total
}

// NextTurnPoint returns the maneuver point of the current step. It reports
// false when idle, arrived, or when the step points outside the geometry.
func (t *Tracker) NextTurnPoint() (entity.RoutePoint, bool) {
	if t.route == nil || t.arrived {
		return entity.RoutePoint{}, false
	}

	end := t.route.Steps[t.currentIndex].EndIndex
	if end < 0 || end >= len(t.route.Geometry) {
		return entity.RoutePoint{}, false
	}

	return t.route.Geometry[end], true
}

// Snapshot copies the current state.
func (t *Tracker) Snapshot() Snapshot {
	snap := Snapshot{
		State:        t.State(),
		CurrentIndex: t.currentIndex,
		Arrived:      t.arrived,
		PreAnnounced: t.preAnnounced,
		Muted:        t.muted,
	}
	if t.lastPosition != nil {
		pos := *t.lastPosition
		snap.LastPosition = &pos
	}
	if t.distanceToNextTurn != nil {
		d := *t.distanceToNextTurn
		snap.DistanceToNextTurn = &d
	}

	return snap
}

type nopAnnouncer struct{}

func (nopAnnouncer) Announce(entity.Announcement) {}

func (nopAnnouncer) Cancel() {}
