package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// RestoreModeAction returns to the mode active before the current one
type RestoreModeAction struct{}

func (a RestoreModeAction) Type() string { return "restore_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Command actions

// SearchAction runs a search with the current ticker and page size
type SearchAction struct{}

func (a SearchAction) Type() string { return "search" }

type DownloadAction struct {
	DocumentID int
}

func (a DownloadAction) Type() string { return "download" }

type OpenExternalAction struct {
	DocumentID int
}

func (a OpenExternalAction) Type() string { return "open_external" }

type CopyLinkAction struct {
	DocumentID int
}

func (a CopyLinkAction) Type() string { return "copy_link" }

type ShowDetailsAction struct {
	DocumentID int
}

func (a ShowDetailsAction) Type() string { return "show_details" }

// Selector actions
type UpdateSelectorAction struct {
	Index int
}

func (a UpdateSelectorAction) Type() string { return "update_selector" }

type SelectCategoryAction struct {
	Category string
}

func (a SelectCategoryAction) Type() string { return "select_category" }

type SetPageSizeAction struct {
	Size int
}

func (a SetPageSizeAction) Type() string { return "set_page_size" }

type DismissAlertAction struct{}

func (a DismissAlertAction) Type() string { return "dismiss_alert" }

type CheckHealthAction struct{}

func (a CheckHealthAction) Type() string { return "check_health" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
