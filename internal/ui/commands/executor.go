package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"fnetgrip/internal/eventbus"
	"fnetgrip/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch() tea.Cmd {
	return NewSearchCommand(e.ctx).Execute()
}

// ExecuteDownload creates and executes a download command
func (e *Executor) ExecuteDownload(documentID int) tea.Cmd {
	return NewDownloadCommand(e.ctx, documentID).Execute()
}

// ExecuteHealthCheck creates and executes a health check command
func (e *Executor) ExecuteHealthCheck() tea.Cmd {
	return NewHealthCheckCommand(e.ctx).Execute()
}
