// edit_tasks.go defines the start_edit, save_edit and cancel_edit tool types.
package main

// StartEditOutput returns the draft as loaded from the task.
type StartEditOutput struct {
	Found bool  `json:"found"`
	Draft Draft `json:"draft"`
}

// SaveEditArgs is the input for the save_edit tool. TaskID defaults to the
// task under the editing pointer.
type SaveEditArgs struct {
	TaskID string `json:"task_id,omitempty" jsonschema:"Task to save the draft into. Defaults to the task being edited."`
}

// SaveEditOutput reports whether the draft was written to a task. Rejected is
// set when the draft title was blank and the edit is still open.
type SaveEditOutput struct {
	Saved    bool      `json:"saved"`
	Rejected bool      `json:"rejected,omitempty"`
	Task     *TaskView `json:"task,omitempty"`
}

// CancelEditArgs is the input for the cancel_edit tool. No arguments needed.
type CancelEditArgs struct{}

// CancelEditOutput reports which task, if any, was being edited.
type CancelEditOutput struct {
	Cancelled string `json:"cancelled,omitempty"`
}
