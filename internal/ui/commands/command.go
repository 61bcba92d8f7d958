package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"fnetgrip/internal/eventbus"
	"fnetgrip/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
}

// SearchCommand starts a search for the ticker in the input
type SearchCommand struct {
	ctx *CommandContext
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext) *SearchCommand {
	return &SearchCommand{ctx: ctx}
}

// Execute marks the state loading and publishes the request. An empty
// ticker or a search already in flight makes this a no-op.
func (c *SearchCommand) Execute() tea.Cmd {
	generation, ticker, ok := c.ctx.State.BeginSearch()
	if !ok {
		return nil
	}
	log.Debug().Str("ticker", ticker).Uint64("generation", generation).Msg("search requested")
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.SearchRequestedEvent{
			Generation: generation,
			Ticker:     ticker,
			PageSize:   c.ctx.State.PageSize,
		})
	}
	return nil
}

// DownloadCommand fetches one document of the current result
type DownloadCommand struct {
	ctx        *CommandContext
	documentID int
}

// NewDownloadCommand creates a new download command
func NewDownloadCommand(ctx *CommandContext, documentID int) *DownloadCommand {
	return &DownloadCommand{ctx: ctx, documentID: documentID}
}

// Execute marks the document busy and publishes the request
func (c *DownloadCommand) Execute() tea.Cmd {
	st := c.ctx.State
	if st.LastResult == nil || st.IsDownloading(c.documentID) {
		return nil
	}
	doc, ok := st.LastResult.Document(c.documentID)
	if !ok {
		return nil
	}
	generation := st.BeginDownload(doc.ID)
	log.Debug().Int("document", doc.ID).Uint64("generation", generation).Msg("download requested")
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.DownloadRequestedEvent{
			Generation: generation,
			Ticker:     st.LastResult.Ticker,
			Document:   doc,
		})
	}
	return nil
}

// HealthCheckCommand asks the documents service to probe the API again
type HealthCheckCommand struct {
	ctx *CommandContext
}

// NewHealthCheckCommand creates a new health check command
func NewHealthCheckCommand(ctx *CommandContext) *HealthCheckCommand {
	return &HealthCheckCommand{ctx: ctx}
}

// Execute publishes the probe request
func (c *HealthCheckCommand) Execute() tea.Cmd {
	log.Debug().Msg("health check requested")
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.HealthRequestedEvent{})
	}
	return nil
}
