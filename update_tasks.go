// update_tasks.go defines the delete_task and toggle_task tool types.
package main

// TaskIDArgs is the input for tools that act on a single task.
type TaskIDArgs struct {
	TaskID string `json:"task_id" jsonschema:"ID of the task"`
}

// DeleteTaskOutput reports whether the task existed and was removed.
type DeleteTaskOutput struct {
	Found bool `json:"found"`
	Count int  `json:"count"`
}

// ToggleTaskOutput reports the task's completed flag after the toggle.
type ToggleTaskOutput struct {
	Found     bool `json:"found"`
	Completed bool `json:"completed"`
}
