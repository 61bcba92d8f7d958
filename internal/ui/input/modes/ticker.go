package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fnetgrip/internal/ui/input/types"
)

// TickerMode edits the ticker. The text survives leaving the mode so the
// input bar keeps showing what was typed.
type TickerMode struct {
	textInput *textinput.Model
}

func NewTickerMode(ti *textinput.Model) *TickerMode {
	return &TickerMode{textInput: ti}
}

func (m *TickerMode) Name() string {
	return "ticker"
}

func (m *TickerMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.CursorEnd()
	}
	return nil
}

func (m *TickerMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *TickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "tab":
		// tab completes a recent ticker first, then moves focus
		if m.textInput != nil {
			if s := m.textInput.CurrentSuggestion(); s != "" && s != m.textInput.Value() {
				return nil, false
			}
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "enter":
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{
			types.SubmitTextAction{Text: text, Mode: types.ModeTicker},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	default:
		// Let the main handler update the text input
		return nil, false
	}
}
