package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fnetgrip/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// rowAction builds a per-document action for the highlighted row
func rowAction(ctx types.Context, build func(id int) types.Action) ([]types.Action, bool) {
	id, ok := ctx.CurrentDocumentID()
	if !ok {
		return nil, true
	}
	return []types.Action{build(id)}, true
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeTicker}}, true

	case tea.KeyEnter:
		if ctx.CanSearch() {
			return []types.Action{types.SearchAction{}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "/", "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeTicker}}, true

	case "r":
		if ctx.CanSearch() {
			return []types.Action{types.SearchAction{}}, true
		}
		return nil, true

	case "d":
		return rowAction(ctx, func(id int) types.Action { return types.DownloadAction{DocumentID: id} })

	case "o":
		return rowAction(ctx, func(id int) types.Action { return types.OpenExternalAction{DocumentID: id} })

	case "y":
		return rowAction(ctx, func(id int) types.Action { return types.CopyLinkAction{DocumentID: id} })

	case "v":
		return rowAction(ctx, func(id int) types.Action { return types.ShowDetailsAction{DocumentID: id} })

	case "c":
		if ctx.HasResult() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeCategory}}, true
		}
		return nil, true

	case "p":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePageSize}}, true

	case "h":
		return []types.Action{types.CheckHealthAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}
