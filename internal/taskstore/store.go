// Package taskstore maintains a locally-cached task collection kept
// eventually-consistent with the remote store via optimistic mutation.
//
// Every mutation follows the same shape: apply locally, capturing
// whatever the rollback needs first; issue the remote call; reconcile
// on success or roll back on failure. Rollbacks are scoped to the
// values their own call captured, so overlapping mutations on
// different ids never interfere and overlapping mutations on the same
// id compose (each failure reverts only its own change).
package taskstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
)

const (
	// MaxTitleLen is the maximum title length in runes.
	MaxTitleLen = 100

	// MaxDescriptionLen is the maximum description length in runes.
	MaxDescriptionLen = 500
)

var (
	// ErrTitleRequired is returned when a title is empty.
	ErrTitleRequired = errors.New("title required")

	// ErrTitleTooLong is returned when a title exceeds MaxTitleLen.
	ErrTitleTooLong = fmt.Errorf("title exceeds %d characters", MaxTitleLen)

	// ErrDescriptionTooLong is returned when a description exceeds
	// MaxDescriptionLen.
	ErrDescriptionTooLong = fmt.Errorf("description exceeds %d characters", MaxDescriptionLen)

	// ErrUnknownTask is returned when the id is not in the cache.
	ErrUnknownTask = errors.New("unknown task")

	// ErrClosed is returned when the store has been closed. A remote
	// call resolving after Close is discarded, never applied.
	ErrClosed = errors.New("task store closed")
)

// Remote is the subset of the remote API the store needs.
type Remote interface {
	ListTasks(ctx context.Context) ([]remote.Task, error)
	CreateTask(ctx context.Context, title, description string) (remote.Task, error)
	UpdateTask(ctx context.Context, id string, changes remote.TaskChanges) (remote.Task, error)
	ToggleComplete(ctx context.Context, id string) (remote.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Entry is a cached task. Provisional marks a locally-created record
// not yet confirmed by the remote store.
type Entry struct {
	remote.Task
	Provisional bool
}

// Store is the task cache plus optimistic mutation engine. It owns
// the collection exclusively; callers read snapshots and mutate
// through its operations. Safe for concurrent use.
type Store struct {
	remote Remote

	// onAuthFailure is invoked once per operation that fails with an
	// authorization error, before the error is returned. Wired to
	// session expiry by the caller.
	onAuthFailure func(error)

	mu     sync.Mutex
	order  []string
	byID   map[string]*Entry
	closed bool
}

// Option configures a Store.
type Option func(*Store)

// WithAuthFailureHook sets the callback invoked when an operation
// fails with an authorization error.
func WithAuthFailureHook(fn func(error)) Option {
	return func(s *Store) { s.onAuthFailure = fn }
}

// New creates an empty Store over the given remote.
func New(r Remote, opts ...Option) *Store {
	s := &Store{
		remote: r,
		byID:   make(map[string]*Entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close marks the store dead. Completions of in-flight calls that
// resolve afterward are discarded instead of applied.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Tasks returns a snapshot of the collection in display order.
func (s *Store) Tasks() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, *s.byID[id])
	}
	return tasks
}

// Get returns the cached entry for id.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.byID[id]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// Load fetches the full collection and replaces the cache wholesale.
// On failure the prior cache is left untouched, never partially
// overwritten.
func (s *Store) Load(ctx context.Context) error {
	tasks, err := s.remote.ListTasks(ctx)
	if err != nil {
		return s.report(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	order := make([]string, 0, len(tasks))
	byID := make(map[string]*Entry, len(tasks))
	for _, t := range tasks {
		if _, dup := byID[t.ID]; dup {
			continue // id uniqueness invariant
		}
		entry := &Entry{Task: t}
		order = append(order, t.ID)
		byID[t.ID] = entry
	}
	s.order = order
	s.byID = byID
	return nil
}

// Create inserts a provisional entry at the head of the collection,
// then issues the remote create. On success the provisional entry is
// replaced in place by the canonical server record; on failure it is
// removed, so the cache never retains an entry without a remote
// counterpart.
func (s *Store) Create(ctx context.Context, title, description string) (Entry, error) {
	if err := validateFields(title, description); err != nil {
		return Entry{}, err
	}

	provisionalID := "provisional-" + uuid.NewString()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Entry{}, ErrClosed
	}
	entry := &Entry{
		Task: remote.Task{
			ID:          provisionalID,
			Title:       title,
			Description: description,
		},
		Provisional: true,
	}
	s.order = append([]string{provisionalID}, s.order...)
	s.byID[provisionalID] = entry
	s.mu.Unlock()

	created, err := s.remote.CreateTask(ctx, title, description)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Entry{}, ErrClosed
	}
	if err != nil {
		s.removeLocked(provisionalID)
		s.mu.Unlock()
		return Entry{}, s.report(err)
	}

	entry, ok := s.byID[provisionalID]
	if !ok {
		// Entry vanished while the call was in flight; nothing to
		// reconcile against.
		s.mu.Unlock()
		return Entry{Task: created}, nil
	}
	if _, collides := s.byID[created.ID]; collides {
		// Server id already cached (shouldn't happen); drop the
		// provisional entry rather than break id uniqueness.
		s.removeLocked(provisionalID)
		s.mu.Unlock()
		return Entry{Task: created}, nil
	}
	entry.Task = created
	entry.Provisional = false
	delete(s.byID, provisionalID)
	s.byID[created.ID] = entry
	for i, id := range s.order {
		if id == provisionalID {
			s.order[i] = created.ID
			break
		}
	}
	snapshot := *entry
	s.mu.Unlock()
	return snapshot, nil
}

// Toggle flips the completion state locally, then issues the remote
// toggle. On failure the flip is reverted by flipping again, so each
// failed call undoes exactly its own flip even when calls overlap on
// the same id. On success the local value stands: a later overlapping
// flip must not be clobbered by an earlier call's server response.
func (s *Store) Toggle(ctx context.Context, id string) (Entry, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Entry{}, ErrClosed
	}
	entry, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return Entry{}, ErrUnknownTask
	}
	entry.Completed = !entry.Completed
	s.mu.Unlock()

	_, err := s.remote.ToggleComplete(ctx, id)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Entry{}, ErrClosed
	}
	if err != nil {
		if entry, ok := s.byID[id]; ok {
			entry.Completed = !entry.Completed
		}
		s.mu.Unlock()
		return Entry{}, s.report(err)
	}
	var snapshot Entry
	if entry, ok := s.byID[id]; ok {
		snapshot = *entry
	}
	s.mu.Unlock()
	return snapshot, nil
}

// Update applies a partial update locally, capturing the prior field
// values, then issues the remote update. On success the server record
// is applied for the changed fields; on failure the captured values
// are restored.
func (s *Store) Update(ctx context.Context, id string, changes remote.TaskChanges) (Entry, error) {
	if changes.Title != nil {
		if err := validateFields(*changes.Title, ""); err != nil {
			return Entry{}, err
		}
	}
	if changes.Description != nil && utf8.RuneCountInString(*changes.Description) > MaxDescriptionLen {
		return Entry{}, ErrDescriptionTooLong
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Entry{}, ErrClosed
	}
	entry, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return Entry{}, ErrUnknownTask
	}
	prevTitle, prevDescription := entry.Title, entry.Description
	if changes.Title != nil {
		entry.Title = *changes.Title
	}
	if changes.Description != nil {
		entry.Description = *changes.Description
	}
	s.mu.Unlock()

	updated, err := s.remote.UpdateTask(ctx, id, changes)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Entry{}, ErrClosed
	}
	if err != nil {
		if entry, ok := s.byID[id]; ok {
			if changes.Title != nil {
				entry.Title = prevTitle
			}
			if changes.Description != nil {
				entry.Description = prevDescription
			}
		}
		s.mu.Unlock()
		return Entry{}, s.report(err)
	}
	var snapshot Entry
	if entry, ok := s.byID[id]; ok {
		if changes.Title != nil {
			entry.Title = updated.Title
		}
		if changes.Description != nil {
			entry.Description = updated.Description
		}
		snapshot = *entry
	}
	s.mu.Unlock()
	return snapshot, nil
}

// Delete removes the entry locally, capturing its position, then
// issues the remote delete. On failure the entry is reinserted at its
// original position (clamped to the current collection length).
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	entry, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return ErrUnknownTask
	}
	removed := *entry
	index := s.removeLocked(id)
	s.mu.Unlock()

	err := s.remote.DeleteTask(ctx, id)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if err != nil {
		if _, exists := s.byID[id]; !exists {
			s.insertLocked(removed, index)
		}
		s.mu.Unlock()
		return s.report(err)
	}
	s.mu.Unlock()
	return nil
}

// removeLocked removes id from the collection and returns its former
// index, or -1 if absent. Caller holds the lock.
func (s *Store) removeLocked(id string) int {
	if _, ok := s.byID[id]; !ok {
		return -1
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return i
		}
	}
	return -1
}

// insertLocked inserts entry at index, clamped. Caller holds the lock.
func (s *Store) insertLocked(entry Entry, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(s.order) {
		index = len(s.order)
	}
	e := entry
	s.order = append(s.order, "")
	copy(s.order[index+1:], s.order[index:])
	s.order[index] = e.ID
	s.byID[e.ID] = &e
}

// report funnels every operation failure through the auth-failure
// hook before returning it. The store performs no session handling
// itself; the hook is the caller's.
func (s *Store) report(err error) error {
	if s.onAuthFailure != nil && remote.IsAuth(err) {
		s.onAuthFailure(err)
	}
	return err
}

// validateFields checks title and description against the field
// limits the server enforces.
func validateFields(title, description string) error {
	if utf8.RuneCountInString(title) == 0 {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}
	return nil
}
