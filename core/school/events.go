package school

import "sync"

type (
	Entity string
	Action string
)

const (
	EntitySchool      Entity = "school"
	EntityStaff       Entity = "staff"
	EntityStudent     Entity = "student"
	EntityCard        Entity = "card"
	EntityTransaction Entity = "transaction"
	EntityExamRecord  Entity = "exam_record"
	EntityAssignment  Entity = "assignment"

	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event describes a committed store mutation. Subscribers are notified
// synchronously, after the mutation has been applied.
type Event struct {
	Entity   Entity
	Action   Action
	ID       string
	TenantID string
}

type subscribers struct {
	mu   sync.RWMutex
	next int
	fns  map[int]func(Event)
}

// add registers fn and returns a function that removes it again.
func (s *subscribers) add(fn func(Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fns == nil {
		s.fns = make(map[int]func(Event))
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

// notify snapshots the registered callbacks before invoking them so a
// callback may call its own unsubscribe function without deadlocking.
func (s *subscribers) notify(evt Event) {
	s.mu.RLock()
	fns := make([]func(Event), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(evt)
	}
}
