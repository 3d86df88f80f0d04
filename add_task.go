// add_task.go defines the add_task tool types.
package main

// AddTaskArgs is the input for the add_task tool. Title and Description are
// copied into the draft before adding; when omitted, the current draft is
// used as is.
type AddTaskArgs struct {
	Title       *string `json:"title,omitempty"       jsonschema:"Task title. Omit to add from the current draft."`
	Description *string `json:"description,omitempty" jsonschema:"Optional task description"`
}

// AddTaskOutput reports whether a task was created. Added is false when the
// title was blank; nothing else is reported in that case.
type AddTaskOutput struct {
	Added bool      `json:"added"`
	Task  *TaskView `json:"task,omitempty"`
	Count int       `json:"count"`
}
