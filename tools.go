// tools.go registers the MCP tools and implements their handlers.
//
// Each tool maps one-to-one onto a TaskStore intent. Tool errors are never
// returned for unknown ids or blank titles: those are ordinary outcomes and
// are reported in the typed output (found=false, added=false, ...).
package main

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolset binds the tool handlers to a store.
type toolset struct {
	store   *TaskStore
	appName string
	logger  *log.Logger
}

// newServer builds an MCP server exposing the store's intents as tools.
func newServer(cfg Config, store *TaskStore, logger *log.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, nil)

	ts := &toolset{store: store, appName: cfg.AppName, logger: logger}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_task",
		Description: "Add a task. Blank titles are ignored (added=false). Clears the draft and closes the description field.",
	}, ts.addTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task by ID. Unknown IDs are a no-op.",
	}, ts.deleteTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_task",
		Description: "Flip a task between open and completed.",
	}, ts.toggleTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "start_edit",
		Description: "Start editing a task: loads its title and description into the draft, abandoning any unsaved draft.",
	}, ts.startEdit)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_edit",
		Description: "Write the draft into a task and end editing.",
	}, ts.saveEdit)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "cancel_edit",
		Description: "End editing without changing any task. Clears the draft.",
	}, ts.cancelEdit)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_draft",
		Description: "Change the draft title and/or description without touching the task list.",
	}, ts.updateDraft)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_description",
		Description: "Show or hide the optional description field for new tasks.",
	}, ts.toggleDescription)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List all tasks in display order with counts, the draft and the editing state.",
	}, ts.listTasks)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_tasks",
		Description: "Look up specific tasks by ID.",
	}, ts.getTasks)

	return server
}

func (ts *toolset) addTask(ctx context.Context, req *mcp.CallToolRequest, args AddTaskArgs) (*mcp.CallToolResult, AddTaskOutput, error) {
	t, ok := ts.store.AddWith(args.Title, args.Description)
	out := AddTaskOutput{Added: ok, Count: ts.store.Len()}
	if ok {
		editingID, _ := ts.store.EditingID()
		out.Task = viewOf(&t, editingID)
	}
	return nil, out, nil
}

func (ts *toolset) deleteTask(ctx context.Context, req *mcp.CallToolRequest, args TaskIDArgs) (*mcp.CallToolResult, DeleteTaskOutput, error) {
	found := ts.store.Delete(args.TaskID)
	return nil, DeleteTaskOutput{Found: found, Count: ts.store.Len()}, nil
}

func (ts *toolset) toggleTask(ctx context.Context, req *mcp.CallToolRequest, args TaskIDArgs) (*mcp.CallToolResult, ToggleTaskOutput, error) {
	if !ts.store.ToggleComplete(args.TaskID) {
		return nil, ToggleTaskOutput{}, nil
	}
	t, ok := ts.store.Get(args.TaskID)
	return nil, ToggleTaskOutput{Found: ok, Completed: t.Completed}, nil
}

func (ts *toolset) startEdit(ctx context.Context, req *mcp.CallToolRequest, args TaskIDArgs) (*mcp.CallToolResult, StartEditOutput, error) {
	found := ts.store.StartEdit(args.TaskID)
	return nil, StartEditOutput{Found: found, Draft: ts.store.Draft()}, nil
}

func (ts *toolset) saveEdit(ctx context.Context, req *mcp.CallToolRequest, args SaveEditArgs) (*mcp.CallToolResult, SaveEditOutput, error) {
	id := args.TaskID
	if id == "" {
		id, _ = ts.store.EditingID()
	}
	saved, rejected := ts.store.SaveEdit(id)
	if rejected {
		ts.logger.Printf("save_edit %s rejected: blank title", id)
		return nil, SaveEditOutput{Rejected: true}, nil
	}
	if !saved {
		return nil, SaveEditOutput{}, nil
	}
	// Another call may have deleted the task since the save.
	t, ok := ts.store.Get(id)
	if !ok {
		return nil, SaveEditOutput{Saved: true}, nil
	}
	return nil, SaveEditOutput{Saved: true, Task: viewOf(&t, "")}, nil
}

func (ts *toolset) cancelEdit(ctx context.Context, req *mcp.CallToolRequest, args CancelEditArgs) (*mcp.CallToolResult, CancelEditOutput, error) {
	id, _ := ts.store.EditingID()
	ts.store.CancelEdit()
	return nil, CancelEditOutput{Cancelled: id}, nil
}

func (ts *toolset) updateDraft(ctx context.Context, req *mcp.CallToolRequest, args UpdateDraftArgs) (*mcp.CallToolResult, DraftOutput, error) {
	if args.Title != nil {
		ts.store.SetDraftTitle(*args.Title)
	}
	if args.Description != nil {
		ts.store.SetDraftDescription(*args.Description)
	}
	id, _ := ts.store.EditingID()
	return nil, DraftOutput{Draft: ts.store.Draft(), EditingID: id}, nil
}

func (ts *toolset) toggleDescription(ctx context.Context, req *mcp.CallToolRequest, args ToggleDescriptionArgs) (*mcp.CallToolResult, ToggleDescriptionOutput, error) {
	return nil, ToggleDescriptionOutput{DescriptionOpen: ts.store.ToggleDescription()}, nil
}

func (ts *toolset) listTasks(ctx context.Context, req *mcp.CallToolRequest, args ListTasksArgs) (*mcp.CallToolResult, ListTasksOutput, error) {
	editingID, _ := ts.store.EditingID()
	tasks := ts.store.List(nil)
	views := make([]TaskView, 0, len(tasks))
	for i := range tasks {
		views = append(views, *viewOf(&tasks[i], editingID))
	}
	return nil, ListTasksOutput{
		WindowTitle:     WindowTitle(ts.appName, len(tasks)),
		Summary:         ts.store.Summary(),
		Tasks:           views,
		Draft:           ts.store.Draft(),
		EditingID:       editingID,
		DescriptionOpen: ts.store.DescriptionOpen(),
	}, nil
}

func (ts *toolset) getTasks(ctx context.Context, req *mcp.CallToolRequest, args GetTasksArgs) (*mcp.CallToolResult, GetTasksOutput, error) {
	return nil, GetTasksOutput{Results: ts.store.Lookup(args.TaskIDs)}, nil
}
