package service

import (
	"saferoute/internal/domain/entity"
)

// Announcer delivers spoken cues. Implementations must not block the caller.
type Announcer interface {
	// Announce starts delivering a, superseding any cue still in flight
	Announce(a entity.Announcement)

	// Cancel stops any cue still in flight
	Cancel()
}

// AnnouncerFactory builds the announcer for a navigation session
type AnnouncerFactory interface {
	// New returns an announcer bound to a session and an optional push device token
	New(sessionID, deviceToken string) Announcer
}
