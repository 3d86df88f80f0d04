// task_result.go defines the get_tasks tool types: lookup of specific tasks
// by id.
package main

// GetTasksArgs is the input for the get_tasks tool.
type GetTasksArgs struct {
	TaskIDs []string `json:"task_ids" jsonschema:"Task IDs to look up"`
}

// GetTasksOutput contains one entry per requested id, in request order.
type GetTasksOutput struct {
	Results []TaskResult `json:"results"`
}

// TaskResult is either a found task or a not_found marker for the id.
type TaskResult struct {
	ID     string    `json:"id"`
	Status string    `json:"status"` // found, not_found
	Task   *TaskView `json:"task,omitempty"`
}
