package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"fnetgrip/internal/ui/input/types"
	"fnetgrip/internal/ui/logic"
	"fnetgrip/internal/ui/state"
	"fnetgrip/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	navigator *logic.Navigator
	width     int
	height    int
	help      help.Model
	keys      help.KeyMap
	helpText  string
	textInput textinput.Model
	focused   bool
	spinner   string
	selection *types.Selection
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, navigator *logic.Navigator) *ViewModel {
	return &ViewModel{
		state:     appState,
		navigator: navigator,
		help:      help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelp sets the key map shown in the help line and the rendered help popup
func (vm *ViewModel) SetHelp(keys help.KeyMap, fullHelp string) {
	vm.keys = keys
	vm.helpText = fullHelp
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model, focused bool) {
	vm.textInput = textInput
	vm.focused = focused
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(s spinner.Model) {
	vm.spinner = s.View()
}

// SetSelection sets the open selector, nil when none
func (vm *ViewModel) SetSelection(sel *types.Selection) {
	vm.selection = sel
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	st := vm.state
	docs := st.FilteredDocuments()

	busy := make(map[int]bool, len(st.Downloads))
	for id := range st.Downloads {
		busy[id] = true
	}

	categoryCount := len(docs)

	vs := views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		TickerInput:    vm.textInput.View(),
		TickerFocused:  vm.focused,
		PageSize:       st.PageSize,
		Loading:        st.IsLoading,
		LoadingTicker:  st.SearchTicker,
		CanSearch:      st.CanSearch(),
		Spinner:        vm.spinner,
		ErrorMessage:   st.ErrorMessage,
		Result:         st.LastResult,
		CategoryFilter: st.CategoryFilter,
		CategoryCount:  categoryCount,
		Documents:      docs,
		Selected:       vm.navigator.Selected(),
		Offset:         vm.navigator.Offset(),
		ViewportHeight: vm.navigator.Height(),
		Busy:           busy,
		StatusMessage:  st.StatusMessage,
		APIOnline:      st.APIOnline,
		Alert:          st.Alert,
		ShowHelp:       st.ShowHelp,
		HelpContent:    vm.helpText,
	}
	if vm.keys != nil {
		vs.ShortHelp = vm.help.View(vm.keys)
	}
	if vm.selection != nil {
		vs.Selector = &views.SelectorState{
			Title:   vm.selection.Title,
			Options: vm.selection.Options,
			Index:   vm.selection.Index,
		}
	}
	return vs
}
