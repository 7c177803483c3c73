package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// visitorSweepInterval is how often idle visitors are looked for
const visitorSweepInterval = time.Minute

// DefaultVisitorLimit caps how many visitors are kept in memory
const DefaultVisitorLimit = 10000

// Visitor is one browser's contact form state, kept in memory only
type Visitor struct {
	ID     string
	Flow   *LeadFlow
	Toasts *ToastQueue

	lastSeen time.Time
}

// VisitorStore hands out one LeadFlow per visitor id and forgets visitors that
// stay idle longer than the TTL.
type VisitorStore struct {
	sender LeadSender
	ttl    time.Duration
	limit  int
	log    *zap.SugaredLogger
	now    func() time.Time

	mu       sync.Mutex
	visitors map[string]*Visitor
}

// NewVisitorStore creates a store whose flows submit through sender
func NewVisitorStore(sender LeadSender, ttl time.Duration, log *zap.SugaredLogger) *VisitorStore {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &VisitorStore{
		sender:   sender,
		ttl:      ttl,
		limit:    DefaultVisitorLimit,
		log:      log,
		now:      time.Now,
		visitors: make(map[string]*Visitor),
	}
}

// WithLimit sets how many visitors the store keeps. When full, creating a
// visitor evicts the one idle the longest. Values below 1 are ignored.
func (s *VisitorStore) WithLimit(limit int) *VisitorStore {
	if limit > 0 {
		s.mu.Lock()
		s.limit = limit
		s.mu.Unlock()
	}
	return s
}

// Get returns a known visitor and refreshes its last-seen time
func (s *VisitorStore) Get(id string) (*Visitor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visitors[id]
	if ok {
		v.lastSeen = s.now()
	}
	return v, ok
}

// GetOrCreate returns the visitor for id, creating a new one under a fresh id
// when id is unknown or malformed. The boolean is true for a new visitor.
func (s *VisitorStore) GetOrCreate(id string) (*Visitor, bool) {
	if _, err := uuid.Parse(id); err == nil {
		if v, ok := s.Get(id); ok {
			return v, false
		}
	}
	return s.create(), true
}

func (s *VisitorStore) create() *Visitor {
	id := uuid.NewString()
	toasts := NewToastQueue()
	log := s.log.With("visitor", id)

	flow := NewLeadFlow(s.sender, toasts, log)
	flow.Subscribe(LeadObserverFunc(func(snapshot LeadSnapshot) {
		log.Debugw("lead form changed", "state", snapshot.State.String(), "empty", snapshot.Draft.IsEmpty())
	}))

	v := &Visitor{
		ID:       id,
		Flow:     flow,
		Toasts:   toasts,
		lastSeen: s.now(),
	}

	s.mu.Lock()
	if len(s.visitors) >= s.limit {
		s.evictOldestLocked()
	}
	s.visitors[id] = v
	s.mu.Unlock()

	return v
}

// evictOldestLocked drops the least recently seen visitor that is not
// submitting. s.mu must be held.
func (s *VisitorStore) evictOldestLocked() {
	var oldest *Visitor
	for _, v := range s.visitors {
		if v.Flow.Snapshot().Submitting() {
			continue
		}
		if oldest == nil || v.lastSeen.Before(oldest.lastSeen) {
			oldest = v
		}
	}
	if oldest != nil {
		delete(s.visitors, oldest.ID)
		s.log.Debugw("visitor limit reached, evicted idle visitor", "evicted", oldest.ID)
	}
}

// Len returns the number of tracked visitors
func (s *VisitorStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// Sweep removes visitors idle longer than the TTL and returns how many were
// removed. A visitor whose submission is still running is kept.
func (s *VisitorStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, v := range s.visitors {
		if v.lastSeen.After(cutoff) {
			continue
		}
		if v.Flow.Snapshot().Submitting() {
			continue
		}
		delete(s.visitors, id)
		removed++
	}
	return removed
}

// Run sweeps idle visitors until ctx is cancelled
func (s *VisitorStore) Run(ctx context.Context) {
	ticker := time.NewTicker(visitorSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				s.log.Infow("swept idle visitors", "removed", removed, "remaining", s.Len())
			}
		}
	}
}
