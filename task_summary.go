// task_summary.go defines the list_tasks tool types: the whole list in
// display order plus aggregate counts and the window title.
package main

import "time"

// ListTasksArgs is the input for the list_tasks tool. No arguments needed.
type ListTasksArgs struct{}

// ListTasksOutput mirrors what the terminal view renders.
type ListTasksOutput struct {
	WindowTitle     string      `json:"window_title"`
	Summary         TaskSummary `json:"summary"`
	Tasks           []TaskView  `json:"tasks"`
	Draft           Draft       `json:"draft"`
	EditingID       string      `json:"editing_id,omitempty"`
	DescriptionOpen bool        `json:"description_open"`
}

// TaskSummary provides aggregate counts across the list.
type TaskSummary struct {
	Total     int `json:"total"`
	Open      int `json:"open"`
	Completed int `json:"completed"`
}

// TaskView is the serialized form of a Task.
type TaskView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	Editing     bool   `json:"editing,omitempty"` // true for the task under the editing pointer
	CreatedAt   string `json:"created_at"`        // RFC 3339
}

func viewOf(t *Task, editingID string) *TaskView {
	return &TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Editing:     t.ID == editingID,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
	}
}
