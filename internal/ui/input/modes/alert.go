package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"fnetgrip/internal/ui/input/types"
)

// AlertMode blocks all input except dismissing the alert
type AlertMode struct{}

func NewAlertMode() *AlertMode {
	return &AlertMode{}
}

func (m *AlertMode) Name() string {
	return "alert"
}

func (m *AlertMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *AlertMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *AlertMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "enter", "esc", " ":
		return []types.Action{
			types.DismissAlertAction{},
			types.RestoreModeAction{},
		}, true
	}
	return nil, true
}
