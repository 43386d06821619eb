package usecase

import (
	"context"
	"time"

	"saferoute/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSessionInput describes a new navigation request
type CreateSessionInput struct {
	OwnerID     string            // Authenticated subject, empty when auth is disabled
	From        entity.RoutePoint // Observer's starting point
	To          entity.RoutePoint // Destination
	Locale      string            // Announcement locale, defaults to the configured one
	DeviceToken string            // Optional push token for announcement delivery
}

// PositionSample is one observer fix. Accuracy and Timestamp are accepted but not used for tracking.
type PositionSample struct {
	Lat       float64
	Lng       float64
	Accuracy  *float64
	Timestamp *time.Time
}

// Session is a navigation session together with its candidate routes
type Session struct {
	ID       uuid.UUID      `json:"id"`
	Routes   []entity.Route `json:"routes"`
	Progress *Progress      `json:"progress"`
}

// Progress is the observable state of a navigation session
type Progress struct {
	SessionID          uuid.UUID             `json:"session_id"`
	State              string                `json:"state"`                // idle, navigating or arrived
	SelectedRoute      *int                  `json:"selected_route"`       // Index into the session routes
	CurrentStepIndex   int                   `json:"current_step_index"`
	CurrentInstruction string                `json:"current_instruction,omitempty"`
	CurrentManeuver    string                `json:"current_maneuver,omitempty"`
	DistanceToNextTurn *float64              `json:"distance_to_next_turn"` // Meters, null before the first sample
	RemainingDistance  float64               `json:"remaining_distance"`    // Meters, step-granular
	RemainingDuration  float64               `json:"remaining_duration"`    // Seconds, step-granular
	NextTurnPoint      *entity.RoutePoint    `json:"next_turn_point"`
	LastPosition       *entity.RoutePoint    `json:"last_position"`
	Muted              bool                  `json:"muted"`
	Arrived            bool                  `json:"arrived"`
	Applied            *bool                 `json:"applied,omitempty"` // Set by position updates only
	Announcements      []entity.Announcement `json:"announcements"`     // Cues issued since the last read
}

// NavigationUsecase defines the interface for navigation session use cases
type NavigationUsecase interface {
	// CreateSession plans routes between two points and opens an idle session
	CreateSession(ctx context.Context, input *CreateSessionInput) (*Session, error)

	// SelectRoute starts navigating the route at index, replacing any previous progress
	SelectRoute(ctx context.Context, ownerID string, sessionID uuid.UUID, index int) (*Progress, error)

	// UpdatePosition feeds one observer sample into the session tracker
	UpdatePosition(ctx context.Context, ownerID string, sessionID uuid.UUID, sample PositionSample) (*Progress, error)

	// ToggleMute flips the session mute flag, re-announcing the current step on unmute
	ToggleMute(ctx context.Context, ownerID string, sessionID uuid.UUID) (*Progress, error)

	// GetProgress returns the session state and drains pending announcements
	GetProgress(ctx context.Context, ownerID string, sessionID uuid.UUID) (*Progress, error)

	// ClearRoute cancels navigation and returns the session to idle
	ClearRoute(ctx context.Context, ownerID string, sessionID uuid.UUID) (*Progress, error)

	// EndSession cancels navigation and forgets the session
	EndSession(ctx context.Context, ownerID string, sessionID uuid.UUID) error
}
