package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"fnetgrip/internal/api"
	"fnetgrip/internal/eventbus"
	"fnetgrip/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state    *state.AppState
	onResult func(ticker string)
}

// NewEventHandler creates a new event handler. onResult is called with the
// ticker of every search result that gets applied.
func NewEventHandler(appState *state.AppState, onResult func(ticker string)) *EventHandler {
	return &EventHandler{
		state:    appState,
		onResult: onResult,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchCompletedEvent:
		msg := api.UserMessage(e.Err)
		if !h.state.CompleteSearch(e.Generation, e.Result, msg) {
			log.Debug().
				Uint64("generation", e.Generation).
				Uint64("latest", h.state.SearchGeneration).
				Str("ticker", e.Ticker).
				Msg("discarding stale search result")
			return nil
		}
		if h.state.LastResult != nil {
			h.state.StatusMessage = ""
			if h.onResult != nil {
				h.onResult(h.state.LastResult.Ticker)
			}
		}

	case eventbus.DownloadCompletedEvent:
		if !h.state.CompleteDownload(e.DocumentID, e.Generation, e.Err != nil) {
			log.Debug().Int("document", e.DocumentID).Msg("ignoring superseded download completion")
			return nil
		}
		if e.Err == nil {
			h.state.StatusMessage = savedMessage(e.Path, e.Pages)
		}

	case eventbus.HealthCheckedEvent:
		online := e.Online
		h.state.APIOnline = &online

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}

	return nil
}

func savedMessage(path string, pages int) string {
	switch {
	case pages == 1:
		return fmt.Sprintf("saved %s (1 page)", path)
	case pages > 1:
		return fmt.Sprintf("saved %s (%d pages)", path, pages)
	default:
		return "saved " + path
	}
}
