package entity

import "time"

// AnnouncementKind tells why an announcement was issued.
type AnnouncementKind string

const (
	AnnouncementInstruction     AnnouncementKind = "instruction"
	AnnouncementPreAnnouncement AnnouncementKind = "pre_announcement"
	AnnouncementArrival         AnnouncementKind = "arrival"
)

// Announcement is a spoken navigation cue.
type Announcement struct {
	Text      string           `json:"text"`       // Sentence to be spoken.
	Locale    string           `json:"locale"`     // BCP 47 language tag for speech synthesis.
	Kind      AnnouncementKind `json:"kind"`       // Reason the cue was issued.
	StepIndex int              `json:"step_index"` // Step the cue refers to.
	IssuedAt  time.Time        `json:"issued_at"`  // Time the tracker produced the cue.
}
