package crud

import (
	"context"
	"log/slog"
	"sync"

	"github.com/frahmantamala/rbac-console/internal/core/events"
	"github.com/frahmantamala/rbac-console/pkg/logger"
)

type Option func(*options)

type options struct {
	policy IDPolicy
	bus    *events.EventBus
	logger *slog.Logger
}

func WithIDPolicy(p IDPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithEventBus makes every mutation publish a StoreChangedEvent.
func WithEventBus(bus *events.EventBus) Option {
	return func(o *options) { o.bus = bus }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Store is the canonical ordered collection for one entity kind. Store
// operations never fail; lookups of absent ids report false instead.
type Store[T Entity[T]] struct {
	mu       sync.RWMutex
	kind     string
	items    []T
	ids      idAllocator
	revision uint64

	bus    *events.EventBus
	logger *slog.Logger
}

func NewStore[T Entity[T]](kind string, opts ...Option) *Store[T] {
	o := options{policy: IDPolicySequential}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.LoggerWrapper()
	}

	return &Store[T]{
		kind:   kind,
		items:  make([]T, 0),
		ids:    newAllocator(o.policy),
		bus:    o.bus,
		logger: o.logger.With("store", kind),
	}
}

func (s *Store[T]) Kind() string {
	return s.kind
}

// List returns copies of every entity in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

// Get returns the first entity carrying id.
func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i].Clone(), true
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Revision increases by one on every mutation.
func (s *Store[T]) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Create assigns a fresh id to draft, appends it and returns the stored copy.
// Any id already set on draft is ignored.
func (s *Store[T]) Create(draft T) T {
	s.mu.Lock()
	created := draft.Clone().WithID(s.ids.next(len(s.items)))
	s.items = append(s.items, created)
	rev := s.bump()
	s.mu.Unlock()

	s.logger.Debug("entity created", "id", created.EntityID(), "revision", rev)
	s.publish(events.ActionCreated, created.EntityID(), rev)
	return created.Clone()
}

// Update replaces every entity whose id matches e wholesale (more than one
// only when the length policy produced a duplicate id). When no entity
// carries that id the collection is left untouched and false is returned.
func (s *Store[T]) Update(e T) (T, bool) {
	s.mu.Lock()
	matched := false
	for i, item := range s.items {
		if item.EntityID() == e.EntityID() {
			s.items[i] = e.Clone()
			matched = true
		}
	}
	if !matched {
		s.mu.Unlock()
		s.logger.Debug("update skipped, entity not found", "id", e.EntityID())
		var zero T
		return zero, false
	}
	rev := s.bump()
	s.mu.Unlock()

	s.logger.Debug("entity updated", "id", e.EntityID(), "revision", rev)
	s.publish(events.ActionUpdated, e.EntityID(), rev)
	return e.Clone(), true
}

// Delete removes every entity carrying id. Deleting an absent id is a no-op
// and reports false.
func (s *Store[T]) Delete(id int64) bool {
	s.mu.Lock()
	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if item.EntityID() == id {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	// clear the tail so dropped entities can be collected
	var zero T
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = kept
	if removed == 0 {
		s.mu.Unlock()
		return false
	}
	rev := s.bump()
	s.mu.Unlock()

	s.logger.Debug("entity deleted", "id", id, "revision", rev)
	s.publish(events.ActionDeleted, id, rev)
	return true
}

func (s *Store[T]) indexOf(id int64) int {
	for i, item := range s.items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}

// bump must be called with mu held.
func (s *Store[T]) bump() uint64 {
	s.revision++
	return s.revision
}

func (s *Store[T]) publish(action string, id int64, rev uint64) {
	if s.bus == nil {
		return
	}
	evt := events.NewStoreChangedEvent(s.kind, action, id, rev)
	if err := s.bus.PublishSync(context.Background(), evt); err != nil {
		s.logger.Warn("store event handler failed", "event_type", evt.EventType(), "error", err)
	}
}
