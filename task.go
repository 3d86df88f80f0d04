// task.go defines the task representation held by the store and rendered by
// the terminal view and the MCP tools.
package main

import "time"

// Task is a single to-do item. Title and Description are stored exactly as
// entered; only the emptiness check on creation trims whitespace.
//
// Lifecycle: created by Add -> mutated in place by ToggleComplete/SaveEdit
// -> removed by Delete.
type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}

// Draft is the unsaved title/description pair. The same draft is used to
// compose a new task and to stage edits to an existing one, so starting an
// edit overwrites whatever was being composed.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// blank reports whether the draft title is empty after trimming.
func (d Draft) blank() bool {
	return isBlank(d.Title)
}
