package store

import (
	"slices"
	"sync"

	"github.com/Tiliavir/studyhub/internal/model"
)

// Snapshot is the state of both collections at one point in time.
type Snapshot struct {
	Assignments  []model.Assignment
	RoutineItems []model.RoutineItem
}

// Listener is called after every mutation that changed the store.
type Listener func(Snapshot)

type subscription struct {
	id int
	fn Listener
}

// Store is the in-memory owner of assignments and routine items. Every
// mutation swaps in a freshly built slice, so slices handed out earlier are
// never modified afterwards.
//
// Update and delete of an unknown id are no-ops; the bool result only tells
// the caller whether anything matched.
type Store struct {
	mu sync.RWMutex
	// notifyMu is taken before mu is released so listeners see snapshots in
	// commit order even with concurrent writers.
	notifyMu sync.Mutex

	assignments []model.Assignment
	routine     []model.RoutineItem

	lastAssignmentID int64
	lastRoutineID    int64

	subs    []subscription
	nextSub int
}

// New returns an empty store.
func New() *Store {
	return &Store{
		assignments: []model.Assignment{},
		routine:     []model.RoutineItem{},
	}
}

// Snapshot returns copies of both collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Assignments:  cloneAssignments(s.assignments),
		RoutineItems: cloneRoutine(s.routine),
	}
}

// Subscribe registers fn and returns a function that removes it again.
// Listeners run synchronously on the mutating goroutine, outside the data
// lock, in registration order. Snapshots arrive in commit order. A listener
// may read the store but must not modify it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool { return sub.id == id })
	}
}

// commit releases the write lock and notifies listeners. It must be called
// with s.mu held for writing.
func (s *Store) commit() {
	snap := s.snapshotLocked()
	subs := slices.Clone(s.subs)
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()
	for _, sub := range subs {
		sub.fn(snap)
	}
}

// Assignments returns the assignments in insertion order.
func (s *Store) Assignments() []model.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAssignments(s.assignments)
}

// Assignment looks up a single assignment by id.
func (s *Store) Assignment(id int64) (model.Assignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.assignmentIndex(id)
	if i < 0 {
		return model.Assignment{}, false
	}
	return s.assignments[i], true
}

// AddAssignment appends a to the end of the collection. An id of zero is
// replaced by the next free id; a non-zero id is kept as long as it is unused.
func (s *Store) AddAssignment(a model.Assignment) (model.Assignment, error) {
	s.mu.Lock()
	if a.ID == 0 {
		a.ID = s.lastAssignmentID + 1
	} else if s.assignmentIndex(a.ID) >= 0 {
		s.mu.Unlock()
		return model.Assignment{}, &DuplicateIDError{Kind: "assignment", ID: a.ID}
	}
	s.lastAssignmentID = max(s.lastAssignmentID, a.ID)

	next := make([]model.Assignment, len(s.assignments), len(s.assignments)+1)
	copy(next, s.assignments)
	s.assignments = append(next, a)
	s.commit()
	return a, nil
}

// UpdateAssignment merges patch into the assignment with the given id,
// keeping its position. It reports false and changes nothing when no
// assignment has that id.
func (s *Store) UpdateAssignment(id int64, patch model.AssignmentPatch) (model.Assignment, bool) {
	s.mu.Lock()
	i := s.assignmentIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Assignment{}, false
	}
	updated := s.assignments[i].Apply(patch)

	next := slices.Clone(s.assignments)
	next[i] = updated
	s.assignments = next
	s.commit()
	return updated, true
}

// DeleteAssignment removes the assignment with the given id. It reports
// whether anything was removed.
func (s *Store) DeleteAssignment(id int64) bool {
	s.mu.Lock()
	i := s.assignmentIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	next := make([]model.Assignment, 0, len(s.assignments)-1)
	next = append(next, s.assignments[:i]...)
	s.assignments = append(next, s.assignments[i+1:]...)
	s.commit()
	return true
}

// RoutineItems returns the routine items in insertion order.
func (s *Store) RoutineItems() []model.RoutineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRoutine(s.routine)
}

// RoutineItem looks up a single routine item by id.
func (s *Store) RoutineItem(id int64) (model.RoutineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.routineIndex(id)
	if i < 0 {
		return model.RoutineItem{}, false
	}
	return cloneRoutineItem(s.routine[i]), true
}

// AddRoutineItem appends item to the end of the routine. Ids follow the same
// rules as AddAssignment.
func (s *Store) AddRoutineItem(item model.RoutineItem) (model.RoutineItem, error) {
	s.mu.Lock()
	if item.ID == 0 {
		item.ID = s.lastRoutineID + 1
	} else if s.routineIndex(item.ID) >= 0 {
		s.mu.Unlock()
		return model.RoutineItem{}, &DuplicateIDError{Kind: "routine item", ID: item.ID}
	}
	s.lastRoutineID = max(s.lastRoutineID, item.ID)
	item = cloneRoutineItem(item)

	next := make([]model.RoutineItem, len(s.routine), len(s.routine)+1)
	copy(next, s.routine)
	s.routine = append(next, item)
	s.commit()
	return cloneRoutineItem(item), nil
}

// DeleteRoutineItem removes the routine item with the given id. It reports
// whether anything was removed.
func (s *Store) DeleteRoutineItem(id int64) bool {
	s.mu.Lock()
	i := s.routineIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	next := make([]model.RoutineItem, 0, len(s.routine)-1)
	next = append(next, s.routine[:i]...)
	s.routine = append(next, s.routine[i+1:]...)
	s.commit()
	return true
}

func (s *Store) assignmentIndex(id int64) int {
	return slices.IndexFunc(s.assignments, func(a model.Assignment) bool { return a.ID == id })
}

func (s *Store) routineIndex(id int64) int {
	return slices.IndexFunc(s.routine, func(r model.RoutineItem) bool { return r.ID == id })
}

func cloneAssignments(in []model.Assignment) []model.Assignment {
	out := make([]model.Assignment, len(in))
	copy(out, in)
	return out
}

func cloneRoutine(in []model.RoutineItem) []model.RoutineItem {
	out := make([]model.RoutineItem, len(in))
	for i, r := range in {
		out[i] = cloneRoutineItem(r)
	}
	return out
}

// cloneRoutineItem detaches the Days slice so callers cannot reach the
// stored backing array.
func cloneRoutineItem(r model.RoutineItem) model.RoutineItem {
	if r.Days == nil {
		r.Days = []model.Weekday{}
	} else {
		r.Days = slices.Clone(r.Days)
	}
	return r
}
