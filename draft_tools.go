// draft_tools.go defines the update_draft and toggle_description tool types.
// Neither tool touches the task list.
package main

// UpdateDraftArgs is the input for the update_draft tool. Omitted fields are
// left unchanged.
type UpdateDraftArgs struct {
	Title       *string `json:"title,omitempty"       jsonschema:"New draft title"`
	Description *string `json:"description,omitempty" jsonschema:"New draft description"`
}

// DraftOutput is the draft after the update.
type DraftOutput struct {
	Draft     Draft  `json:"draft"`
	EditingID string `json:"editing_id,omitempty"`
}

// ToggleDescriptionArgs is the input for the toggle_description tool.
type ToggleDescriptionArgs struct{}

// ToggleDescriptionOutput reports whether the description field is now shown.
type ToggleDescriptionOutput struct {
	DescriptionOpen bool `json:"description_open"`
}
