package entity

import (
	"time"

	"github.com/google/uuid"
)

// NavigationEventType identifies a navigation milestone.
type NavigationEventType string

const (
	NavigationEventRouteSelected NavigationEventType = "route_selected"
	NavigationEventStepAdvanced  NavigationEventType = "step_advanced"
	NavigationEventArrived       NavigationEventType = "arrived"
	NavigationEventCancelled     NavigationEventType = "cancelled"
)

// NavigationEvent is published whenever a session reaches a milestone.
type NavigationEvent struct {
	ID         uuid.UUID           `json:"id"`                   // Unique event identifier.
	RequestID  string              `json:"request_id,omitempty"` // For distributed tracing.
	SessionID  uuid.UUID           `json:"session_id"`           // Session that produced the event.
	UserID     string              `json:"user_id,omitempty"`    // Owner of the session when auth is enabled.
	Type       NavigationEventType `json:"type"`                 // Milestone kind.
	StepIndex  int                 `json:"step_index"`           // Current step after the milestone.
	Position   *RoutePoint         `json:"position,omitempty"`   // Sample that triggered the milestone.
	OccurredAt time.Time           `json:"occurred_at"`          // Event time.
}
