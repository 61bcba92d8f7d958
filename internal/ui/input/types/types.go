package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota // focus on the results table
	ModeTicker
	ModeCategory
	ModePageSize
	ModeAlert
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Option is one entry of a list selector
type Option struct {
	Value string
	Label string
}

// Selection is the render state of an open list selector
type Selection struct {
	Title   string
	Options []string
	Index   int
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CanSearch() bool
	HasResult() bool
	// CurrentDocumentID returns the id of the highlighted row, if any
	CurrentDocumentID() (int, bool)
	CategoryOptions() []Option
	CurrentCategory() string
	PageSizeOptions() []Option
	CurrentPageSize() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
