// task_store.go implements the in-memory task list and its editor state.
//
// The terminal view and the MCP tool handlers both go through this store.
// Every operation is synchronous and total: unknown ids are ignored and the
// only validation is the non-empty title check. The mutex exists because the
// MCP server may run tool handlers concurrently. State is ephemeral and lives
// only for the duration of the process.
package main

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TaskStore holds the task list plus the transient editor state: the draft,
// the editing pointer and whether the optional description field is shown.
// Tasks are stored in a map for O(1) lookup and a separate slice to preserve
// insertion order, which is also the display order.
type TaskStore struct {
	mu    sync.Mutex
	tasks map[string]*Task
	order []string // insertion order for stable iteration

	draft           Draft
	editingID       string // "" when idle
	descriptionOpen bool

	// requireTitleOnSave applies the Add emptiness rule to SaveEdit as well.
	requireTitleOnSave bool

	observers []func(count int)
	now       func() time.Time
	newID     func() string
}

// NewTaskStore creates an empty store. When requireTitleOnSave is set,
// SaveEdit refuses a draft whose title is blank.
func NewTaskStore(requireTitleOnSave bool) *TaskStore {
	return &TaskStore{
		tasks:              make(map[string]*Task),
		requireTitleOnSave: requireTitleOnSave,
		now:                time.Now,
		newID:              uuid.NewString,
	}
}

// OnListChange registers fn to be called with the new task count after every
// change to the list (add, delete, toggle, save). Draft edits do not fire it.
// Observers run after the store lock is released, so they may call back into
// the store.
func (s *TaskStore) OnListChange(fn func(count int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// notify must be called without holding s.mu.
func (s *TaskStore) notify() {
	s.mu.Lock()
	count := len(s.order)
	observers := append([]func(int){}, s.observers...)
	s.mu.Unlock()
	for _, fn := range observers {
		fn(count)
	}
}

// Add creates a task from the current draft. See AddTask.
func (s *TaskStore) Add() (Task, bool) {
	s.mu.Lock()
	t, ok := s.addLocked(s.draft)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return t, ok
}

// AddWith copies the non-nil fields into the draft and adds a task from the
// result, all under one lock. A rejected add leaves the merged draft in place.
func (s *TaskStore) AddWith(title, description *string) (Task, bool) {
	s.mu.Lock()
	if title != nil {
		s.draft.Title = *title
	}
	if description != nil {
		s.draft.Description = *description
	}
	t, ok := s.addLocked(s.draft)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return t, ok
}

// AddTask appends a new task built from d and returns a copy of it. A blank
// title is silently rejected: nothing changes and ok is false. On success
// the draft is cleared and the description field is closed.
func (s *TaskStore) AddTask(d Draft) (Task, bool) {
	s.mu.Lock()
	t, ok := s.addLocked(d)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return t, ok
}

// addLocked must be called with s.mu held.
func (s *TaskStore) addLocked(d Draft) (Task, bool) {
	if d.blank() {
		return Task{}, false
	}
	id := s.newID()
	for s.tasks[id] != nil {
		id = s.newID()
	}
	t := &Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   s.now(),
	}
	s.tasks[id] = t
	s.order = append(s.order, id)
	s.draft = Draft{}
	s.descriptionOpen = false
	return *t, true
}

// Delete removes the task with the given id. Returns false if no such task
// exists. Deleting the task being edited also ends the edit.
func (s *TaskStore) Delete(id string) bool {
	s.mu.Lock()
	if _, ok := s.tasks[id]; !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.tasks, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.editingID == id {
		s.editingID = ""
		s.draft = Draft{}
	}
	s.mu.Unlock()

	s.notify()
	return true
}

// ToggleComplete flips the completed flag of the task with the given id.
// Returns false if no such task exists.
func (s *TaskStore) ToggleComplete(id string) bool {
	s.mu.Lock()
	t, ok := s.tasks[id]
	if ok {
		t.Completed = !t.Completed
	}
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}

// StartEdit points the editor at the task with the given id and loads its
// title and description into the draft. Any edit or composition already in
// progress is abandoned without saving. Returns false if no such task exists.
func (s *TaskStore) StartEdit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	s.editingID = id
	s.draft = Draft{Title: t.Title, Description: t.Description}
	return true
}

// SaveEdit writes the draft's title and description onto the task with the
// given id, then clears the editing pointer and the draft. The editing
// pointer is cleared even when the id is unknown; saved is false then.
//
// If the store requires a title on save and the draft title is blank, nothing
// changes and rejected is true.
func (s *TaskStore) SaveEdit(id string) (saved, rejected bool) {
	s.mu.Lock()
	if s.requireTitleOnSave && s.draft.blank() {
		s.mu.Unlock()
		return false, true
	}
	t, ok := s.tasks[id]
	if ok {
		t.Title = s.draft.Title
		t.Description = s.draft.Description
	}
	s.editingID = ""
	s.draft = Draft{}
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok, false
}

// CancelEdit clears the editing pointer and the draft without touching any
// task.
func (s *TaskStore) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = ""
	s.draft = Draft{}
}

// SetDraftTitle replaces the draft title.
func (s *TaskStore) SetDraftTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Title = title
}

// SetDraftDescription replaces the draft description.
func (s *TaskStore) SetDraftDescription(description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Description = description
}

// ToggleDescription shows or hides the optional description field and
// returns the new state.
func (s *TaskStore) ToggleDescription() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.descriptionOpen = !s.descriptionOpen
	return s.descriptionOpen
}

// Draft returns a copy of the current draft.
func (s *TaskStore) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// EditingID returns the id of the task being edited, if any.
func (s *TaskStore) EditingID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID, s.editingID != ""
}

// DescriptionOpen reports whether the optional description field is shown.
func (s *TaskStore) DescriptionOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.descriptionOpen
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Get returns a copy of a single task by id.
func (s *TaskStore) Get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}
	return *t, true
}

// List returns copies of tasks in insertion order. If ids is non-empty, only
// tasks with those ids are included.
func (s *TaskStore) List(ids []string) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	result := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		if len(idSet) > 0 && !idSet[id] {
			continue
		}
		result = append(result, *s.tasks[id])
	}
	return result
}

// Summary returns aggregate counts over the whole list.
func (s *TaskStore) Summary() TaskSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary TaskSummary
	for _, id := range s.order {
		summary.Total++
		if s.tasks[id].Completed {
			summary.Completed++
		} else {
			summary.Open++
		}
	}
	return summary
}

// Lookup returns one entry per requested id, in request order. Unknown ids
// produce a "not_found" entry rather than being dropped.
func (s *TaskStore) Lookup(ids []string) []TaskResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]TaskResult, 0, len(ids))
	for _, id := range ids {
		t, ok := s.tasks[id]
		if !ok {
			results = append(results, TaskResult{
				ID:     id,
				Status: "not_found",
			})
			continue
		}
		results = append(results, TaskResult{
			ID:     t.ID,
			Status: "found",
			Task:   viewOf(t, s.editingID),
		})
	}
	return results
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
