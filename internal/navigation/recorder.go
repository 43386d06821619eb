package navigation

import (
	"sync"

	"saferoute/internal/domain/entity"
	"saferoute/internal/domain/service"
)

// Recorder forwards announcements to another announcer and keeps the most
// recent ones until they are drained.
type Recorder struct {
	next  service.Announcer
	limit int

	mu      sync.Mutex
	pending []entity.Announcement
}

// NewRecorder keeps at most limit announcements. A nil next announcer is allowed.
func NewRecorder(next service.Announcer, limit int) *Recorder {
	if next == nil {
		next = nopAnnouncer{}
	}
	if limit <= 0 {
		limit = 1
	}

	return &Recorder{next: next, limit: limit}
}

// Announce records a and passes it on.
func (r *Recorder) Announce(a entity.Announcement) {
	r.mu.Lock()
	r.pending = append(r.pending, a)
	if over := len(r.pending) - r.limit; over > 0 {
		r.pending = append(r.pending[:0], r.pending[over:]...)
	}
	r.mu.Unlock()

	r.next.Announce(a)
}

// Cancel passes the cancellation on. Recorded announcements are kept.
func (r *Recorder) Cancel() {
	r.next.Cancel()
}

// Drain returns the recorded announcements, oldest first, and forgets them.
func (r *Recorder) Drain() []entity.Announcement {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.pending
	r.pending = nil

	return out
}
