package modes

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"fnetgrip/internal/ui/input/types"
)

// SelectorMode picks one entry from a short list, like the category or
// page-size dropdowns
type SelectorMode struct {
	mode    types.Mode
	title   string
	options func(ctx types.Context) []types.Option
	current func(ctx types.Context) string
	choose  func(value string) types.Action

	items []types.Option
	index int
}

// NewCategoryMode creates the category selector
func NewCategoryMode() *SelectorMode {
	return &SelectorMode{
		mode:    types.ModeCategory,
		title:   "Category",
		options: types.Context.CategoryOptions,
		current: types.Context.CurrentCategory,
		choose: func(value string) types.Action {
			return types.SelectCategoryAction{Category: value}
		},
	}
}

// NewPageSizeMode creates the page-size selector
func NewPageSizeMode() *SelectorMode {
	return &SelectorMode{
		mode:    types.ModePageSize,
		title:   "Documents per search",
		options: types.Context.PageSizeOptions,
		current: types.Context.CurrentPageSize,
		choose: func(value string) types.Action {
			n, _ := strconv.Atoi(value)
			return types.SetPageSizeAction{Size: n}
		},
	}
}

func (m *SelectorMode) Name() string {
	return m.title
}

func (m *SelectorMode) Enter(ctx types.Context) []types.Action {
	m.items = m.options(ctx)
	m.index = 0
	current := m.current(ctx)
	for i, item := range m.items {
		if item.Value == current {
			m.index = i
			break
		}
	}
	return []types.Action{types.UpdateSelectorAction{Index: m.index}}
}

func (m *SelectorMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SelectorMode) move(delta int) []types.Action {
	if len(m.items) == 0 {
		return nil
	}
	m.index = (m.index + delta + len(m.items)) % len(m.items)
	return []types.Action{types.UpdateSelectorAction{Index: m.index}}
}

// HandleKey processes key messages for the selector
func (m *SelectorMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "enter":
		actions := []types.Action{}
		if m.index < len(m.items) {
			actions = append(actions, m.choose(m.items[m.index].Value))
		}
		return append(actions, types.ChangeModeAction{Mode: types.ModeNormal}), true

	case "up", "k":
		return m.move(-1), true

	case "down", "j":
		return m.move(1), true
	}

	return nil, true
}

// Selection returns what the popup should show
func (m *SelectorMode) Selection() types.Selection {
	labels := make([]string, len(m.items))
	for i, item := range m.items {
		labels[i] = item.Label
	}
	return types.Selection{Title: m.title, Options: labels, Index: m.index}
}
