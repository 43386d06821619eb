package impl

import (
	"sync"
	"sync/atomic"
	"time"

	"saferoute/internal/domain/entity"
	"saferoute/internal/navigation"

	"github.com/google/uuid"
)

// session is one observer's navigation state. mu serializes tracker access;
// lastSeen is read without it by the eviction sweep.
type session struct {
	id      uuid.UUID
	ownerID string
	routes  []entity.Route

	mu       sync.Mutex
	selected int // Index into routes, -1 while idle
	tracker  *navigation.Tracker
	recorder *navigation.Recorder

	lastSeen atomic.Int64 // Unix nanoseconds
}

func (s *session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *session) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(time.Unix(0, s.lastSeen.Load())) > ttl
}
