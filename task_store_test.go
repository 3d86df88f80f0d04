package main

import (
	"fmt"
	"sync"
	"testing"
)

// helper to add a task with the given title and return its id.
func addTask(t *testing.T, s *TaskStore, title, description string) string {
	t.Helper()
	task, ok := s.AddTask(Draft{Title: title, Description: description})
	if !ok {
		t.Fatalf("AddTask(%q) rejected", title)
	}
	return task.ID
}

func titles(s *TaskStore) []string {
	var out []string
	for _, task := range s.List(nil) {
		out = append(out, task.Title)
	}
	return out
}

// ---------------------------------------------------------------------------
// Add
// ---------------------------------------------------------------------------

func TestAddAppendsTask(t *testing.T) {
	s := NewTaskStore(true)
	s.SetDraftTitle("Buy milk")

	task, ok := s.Add()
	if !ok {
		t.Fatal("Add should accept a non-blank title")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", s.Len())
	}
	got, _ := s.Get(task.ID)
	if got.Title != "Buy milk" || got.Description != "" || got.Completed {
		t.Fatalf("unexpected task: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("CreatedAt should be set")
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	s := NewTaskStore(true)
	for _, title := range []string{"", " ", "\t\n  "} {
		s.SetDraftTitle(title)
		s.SetDraftDescription("kept")
		if _, ok := s.Add(); ok {
			t.Fatalf("Add should reject title %q", title)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("list should be unchanged, got %d tasks", s.Len())
	}
	// a rejected add leaves the draft alone
	if s.Draft().Description != "kept" {
		t.Fatal("rejected add should not clear the draft")
	}
}

func TestAddKeepsTitleUntrimmed(t *testing.T) {
	s := NewTaskStore(true)
	id := addTask(t, s, "  padded  ", "")
	got, _ := s.Get(id)
	if got.Title != "  padded  " {
		t.Fatalf("expected title stored as entered, got %q", got.Title)
	}
}

func TestAddClearsDraftAndClosesDescription(t *testing.T) {
	s := NewTaskStore(true)
	if !s.ToggleDescription() {
		t.Fatal("description should open")
	}
	s.SetDraftTitle("A")
	s.SetDraftDescription("details")
	s.Add()

	if d := s.Draft(); d != (Draft{}) {
		t.Fatalf("draft should be cleared, got %+v", d)
	}
	if s.DescriptionOpen() {
		t.Fatal("description field should be closed after add")
	}
}

func TestAddUniqueIDs(t *testing.T) {
	s := NewTaskStore(true)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := addTask(t, s, fmt.Sprintf("task %d", i), "")
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestAddRetriesOnIDCollision(t *testing.T) {
	s := NewTaskStore(true)
	ids := []string{"same", "same", "other"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	a := addTask(t, s, "A", "")
	b := addTask(t, s, "B", "")
	if a == b {
		t.Fatalf("ids should differ, both %s", a)
	}
}

func TestSaveEditRejectsBlankTitleWithoutOpenEdit(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")

	saved, rejected := s.SaveEdit(a)
	if saved || !rejected {
		t.Fatalf("expected rejection, got saved=%v rejected=%v", saved, rejected)
	}
	if got, _ := s.Get(a); got.Title != "A" {
		t.Fatalf("task should be unchanged, got %q", got.Title)
	}
}

func TestAddWithMergesIntoDraft(t *testing.T) {
	s := NewTaskStore(true)
	s.SetDraftDescription("from draft")
	title := "T"

	task, ok := s.AddWith(&title, nil)
	if !ok {
		t.Fatal("AddWith should accept a non-blank title")
	}
	if task.Title != "T" || task.Description != "from draft" {
		t.Fatalf("unexpected task %+v", task)
	}
	if s.Draft() != (Draft{}) {
		t.Fatal("draft should be cleared")
	}

	blank := " "
	if _, ok := s.AddWith(&blank, nil); ok {
		t.Fatal("AddWith should reject a blank title")
	}
	if s.Draft().Title != " " {
		t.Fatal("rejected AddWith should leave the merged draft")
	}
}

func TestAddWithConcurrentCallsKeepTheirFields(t *testing.T) {
	s := NewTaskStore(true)
	const n = 64

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			title, desc := fmt.Sprintf("T%d", i), fmt.Sprintf("D%d", i)
			task, ok := s.AddWith(&title, &desc)
			if !ok {
				t.Errorf("AddWith(%s) dropped", title)
				return
			}
			if task.Title != title || task.Description != desc {
				t.Errorf("fields mixed: %+v", task)
			}
		}()
	}
	wg.Wait()

	if s.Len() != n {
		t.Fatalf("expected %d tasks, got %d", n, s.Len())
	}
}

// ---------------------------------------------------------------------------
// Delete / Toggle
// ---------------------------------------------------------------------------

func TestDeleteKeepsRelativeOrder(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")
	addTask(t, s, "B", "")
	addTask(t, s, "C", "")

	if !s.Delete(a) {
		t.Fatal("Delete should find A")
	}
	got := titles(s)
	if len(got) != 2 || got[0] != "B" || got[1] != "C" {
		t.Fatalf("unexpected list after delete: %v", got)
	}
}

func TestDeleteTwiceIsNoOp(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")
	addTask(t, s, "B", "")

	s.Delete(a)
	if s.Delete(a) {
		t.Fatal("second Delete should report not found")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", s.Len())
	}
}

func TestDeleteEditedTaskEndsEdit(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")
	s.StartEdit(a)
	s.Delete(a)

	if _, editing := s.EditingID(); editing {
		t.Fatal("editing pointer should be cleared")
	}
	if s.Draft() != (Draft{}) {
		t.Fatal("draft should be cleared")
	}
}

func TestToggleCompleteIsInvolution(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")

	s.ToggleComplete(a)
	if got, _ := s.Get(a); !got.Completed {
		t.Fatal("first toggle should complete the task")
	}
	s.ToggleComplete(a)
	if got, _ := s.Get(a); got.Completed {
		t.Fatal("second toggle should restore the original value")
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	s := NewTaskStore(true)
	addTask(t, s, "A", "")

	if s.Delete("nope") {
		t.Fatal("Delete should report not found")
	}
	if s.ToggleComplete("nope") {
		t.Fatal("ToggleComplete should report not found")
	}
	if s.StartEdit("nope") {
		t.Fatal("StartEdit should report not found")
	}
	if _, editing := s.EditingID(); editing {
		t.Fatal("StartEdit on unknown id should not start editing")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", s.Len())
	}
}

// ---------------------------------------------------------------------------
// Editing state machine
// ---------------------------------------------------------------------------

func TestStartEditLoadsDraft(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "desc A")

	if !s.StartEdit(a) {
		t.Fatal("StartEdit should succeed")
	}
	id, editing := s.EditingID()
	if !editing || id != a {
		t.Fatalf("expected editing %s, got %q", a, id)
	}
	if d := s.Draft(); d.Title != "A" || d.Description != "desc A" {
		t.Fatalf("draft not loaded: %+v", d)
	}
}

func TestStartEditThenCancelLeavesTaskUnchanged(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "desc A")

	s.StartEdit(a)
	s.SetDraftTitle("changed")
	s.SetDraftDescription("changed too")
	s.CancelEdit()

	got, _ := s.Get(a)
	if got.Title != "A" || got.Description != "desc A" {
		t.Fatalf("task should be unchanged, got %+v", got)
	}
	if _, editing := s.EditingID(); editing {
		t.Fatal("editing pointer should be cleared")
	}
	if s.Draft() != (Draft{}) {
		t.Fatal("draft should be cleared")
	}
}

func TestSaveEditWritesDraft(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")

	s.StartEdit(a)
	s.SetDraftTitle("New")
	s.SetDraftDescription("D")
	if saved, _ := s.SaveEdit(a); !saved {
		t.Fatal("SaveEdit should succeed")
	}

	got, _ := s.Get(a)
	if got.Title != "New" || got.Description != "D" {
		t.Fatalf("task not updated: %+v", got)
	}
	if _, editing := s.EditingID(); editing {
		t.Fatal("editing pointer should be cleared")
	}
	if s.Draft() != (Draft{}) {
		t.Fatal("draft should be cleared")
	}
}

func TestSaveEditPreservesCompletedAndID(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")
	s.ToggleComplete(a)

	s.StartEdit(a)
	s.SetDraftTitle("A2")
	s.SaveEdit(a)

	got, _ := s.Get(a)
	if !got.Completed || got.ID != a {
		t.Fatalf("only title/description should change, got %+v", got)
	}
}

func TestStartEditOverwritesInProgressEdit(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "desc A")
	b := addTask(t, s, "B", "desc B")

	s.StartEdit(a)
	s.SetDraftTitle("unsaved")
	s.StartEdit(b)

	id, _ := s.EditingID()
	if id != b {
		t.Fatalf("expected editing %s, got %s", b, id)
	}
	if d := s.Draft(); d.Title != "B" || d.Description != "desc B" {
		t.Fatalf("draft should hold B, got %+v", d)
	}
	if got, _ := s.Get(a); got.Title != "A" {
		t.Fatal("abandoned edit must not be saved")
	}
}

func TestSaveEditRejectsBlankTitle(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")

	s.StartEdit(a)
	s.SetDraftTitle("   ")
	saved, rejected := s.SaveEdit(a)
	if saved || !rejected {
		t.Fatalf("SaveEdit should reject a blank title, got saved=%v rejected=%v", saved, rejected)
	}
	if got, _ := s.Get(a); got.Title != "A" {
		t.Fatalf("task should be unchanged, got %q", got.Title)
	}
	if id, editing := s.EditingID(); !editing || id != a {
		t.Fatal("edit should still be open after a rejected save")
	}
}

func TestSaveEditAllowsBlankTitleWhenNotRequired(t *testing.T) {
	s := NewTaskStore(false)
	a := addTask(t, s, "A", "")

	s.StartEdit(a)
	s.SetDraftTitle("")
	if saved, rejected := s.SaveEdit(a); !saved || rejected {
		t.Fatal("SaveEdit should accept the draft")
	}
	if got, _ := s.Get(a); got.Title != "" {
		t.Fatalf("expected empty title, got %q", got.Title)
	}
}

func TestSaveEditUnknownIDClearsEdit(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")

	s.StartEdit(a)
	s.SetDraftTitle("X")
	if saved, rejected := s.SaveEdit("nope"); saved || rejected {
		t.Fatal("SaveEdit should report not found without rejecting")
	}
	if _, editing := s.EditingID(); editing {
		t.Fatal("editing pointer should be cleared")
	}
	if got, _ := s.Get(a); got.Title != "A" {
		t.Fatal("other tasks must not change")
	}
}

// ---------------------------------------------------------------------------
// Draft-only updates
// ---------------------------------------------------------------------------

func TestDraftUpdatesDoNotTouchList(t *testing.T) {
	s := NewTaskStore(true)
	addTask(t, s, "A", "")

	calls := 0
	s.OnListChange(func(int) { calls++ })

	s.SetDraftTitle("t")
	s.SetDraftDescription("d")
	s.ToggleDescription()
	s.ToggleDescription()

	if calls != 0 {
		t.Fatalf("observer fired %d times for draft-only updates", calls)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", s.Len())
	}
	if d := s.Draft(); d.Title != "t" || d.Description != "d" {
		t.Fatalf("unexpected draft %+v", d)
	}
}

// ---------------------------------------------------------------------------
// Observers see the list length after every list mutation
// ---------------------------------------------------------------------------

func TestOnListChangeReportsCount(t *testing.T) {
	s := NewTaskStore(true)
	var counts []int
	s.OnListChange(func(n int) {
		counts = append(counts, n)
		if n != s.Len() {
			t.Errorf("observer saw %d, store has %d", n, s.Len())
		}
	})

	a := addTask(t, s, "A", "")
	addTask(t, s, "B", "")
	s.ToggleComplete(a)
	s.StartEdit(a)
	s.SetDraftTitle("A2")
	s.SaveEdit(a)
	s.Delete(a)
	s.Delete(a) // no-op, no notification
	s.AddTask(Draft{Title: " "})

	want := []int{1, 2, 2, 2, 1}
	if fmt.Sprint(counts) != fmt.Sprint(want) {
		t.Fatalf("expected counts %v, got %v", want, counts)
	}
}

// ---------------------------------------------------------------------------
// Read accessors
// ---------------------------------------------------------------------------

func TestListFilterByIDs(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")
	addTask(t, s, "B", "")
	c := addTask(t, s, "C", "")

	got := s.List([]string{c, a})
	if len(got) != 2 || got[0].Title != "A" || got[1].Title != "C" {
		t.Fatalf("expected [A C] in insertion order, got %+v", got)
	}
}

func TestListReturnsCopies(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")

	list := s.List(nil)
	list[0].Title = "mutated"
	if got, _ := s.Get(a); got.Title != "A" {
		t.Fatal("List must not expose internal tasks")
	}
}

func TestSummaryCounts(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")
	addTask(t, s, "B", "")
	addTask(t, s, "C", "")
	s.ToggleComplete(a)

	sum := s.Summary()
	if sum.Total != 3 || sum.Completed != 1 || sum.Open != 2 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestSummaryEmpty(t *testing.T) {
	s := NewTaskStore(true)
	if sum := s.Summary(); sum != (TaskSummary{}) {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}

func TestLookupMixed(t *testing.T) {
	s := NewTaskStore(true)
	a := addTask(t, s, "A", "")
	s.StartEdit(a)

	results := s.Lookup([]string{"missing", a})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Status != "not_found" || results[0].Task != nil {
		t.Fatalf("unexpected first result %+v", results[0])
	}
	if results[1].Status != "found" || results[1].Task.Title != "A" || !results[1].Task.Editing {
		t.Fatalf("unexpected second result %+v", results[1])
	}
}

// ---------------------------------------------------------------------------
// Concurrent access (designed to catch races with -race flag)
// ---------------------------------------------------------------------------

func TestConcurrentAccess(t *testing.T) {
	s := NewTaskStore(true)
	s.OnListChange(func(int) { s.Len() })

	const n = 50
	ids := make([]string, n)
	for i := range ids {
		ids[i] = addTask(t, s, fmt.Sprintf("task %d", i), "")
	}

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(3)
		go func() {
			defer wg.Done()
			s.ToggleComplete(id)
		}()
		go func() {
			defer wg.Done()
			s.StartEdit(id)
			s.SaveEdit(id)
		}()
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				s.Delete(id)
			}
			s.AddTask(Draft{Title: "extra"})
		}()
	}
	wg.Wait()

	if s.Len() != n/2+n {
		t.Fatalf("expected %d tasks, got %d", n/2+n, s.Len())
	}
	seen := make(map[string]bool)
	for _, task := range s.List(nil) {
		if seen[task.ID] {
			t.Fatalf("duplicate id %s", task.ID)
		}
		seen[task.ID] = true
	}
}
