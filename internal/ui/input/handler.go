package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fnetgrip/internal/ui/input/modes"
	"fnetgrip/internal/ui/input/types"
)

// tickerCharLimit bounds the ticker input; FNET tickers are short
const tickerCharLimit = 12

type Handler struct {
	currentMode  types.Mode
	previousMode types.Mode
	modes        map[types.Mode]types.ModeHandler
	textInput    *textinput.Model // ticker input, shared with the view
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "ticker, e.g. HGLG11"
	ti.CharLimit = tickerCharLimit
	ti.ShowSuggestions = true

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeTicker] = modes.NewTickerMode(h.textInput)
	h.modes[types.ModeCategory] = modes.NewCategoryMode()
	h.modes[types.ModePageSize] = modes.NewPageSizeMode()
	h.modes[types.ModeAlert] = modes.NewAlertMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action
	textMode := h.isTextMode(h.currentMode)

	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			allActions = append(allActions, h.SetMode(a.Mode, ctx)...)
		case types.RestoreModeAction:
			allActions = append(allActions, h.SetMode(h.previousMode, ctx)...)
		default:
			allActions = append(allActions, action)
		}
	}
	if h.isTextMode(h.currentMode) && !textMode {
		cmd = textinput.Blink
	}

	// Keys the text mode did not handle go to the text input
	if textMode && !consumed {
		*h.textInput, cmd = h.textInput.Update(msg)
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// SetMode switches mode, running the exit and enter hooks. Entering the
// alert mode remembers the mode to return to.
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var actions []types.Action
	if old := h.modes[h.currentMode]; old != nil {
		actions = append(actions, old.Exit(ctx)...)
	}
	if mode == types.ModeAlert {
		h.previousMode = h.currentMode
	} else {
		h.previousMode = types.ModeNormal
	}
	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// TextInput returns the ticker input model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Selection returns the state of the open selector, if any
func (h *Handler) Selection() (types.Selection, bool) {
	sel, ok := h.modes[h.currentMode].(*modes.SelectorMode)
	if !ok {
		return types.Selection{}, false
	}
	return sel.Selection(), true
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeTicker
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
