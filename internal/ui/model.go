package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"fnetgrip/internal/config"
	"fnetgrip/internal/domain"
	"fnetgrip/internal/eventbus"
	"fnetgrip/internal/history"
	"fnetgrip/internal/ui/commands"
	"fnetgrip/internal/ui/handlers"
	"fnetgrip/internal/ui/input"
	inputtypes "fnetgrip/internal/ui/input/types"
	"fnetgrip/internal/ui/logic"
	"fnetgrip/internal/ui/state"
	"fnetgrip/internal/ui/viewmodels"
	"fnetgrip/internal/ui/views"
)

// statusTimeout is how long transient status messages stay visible
const statusTimeout = 4 * time.Second

// LinkOpener opens and copies external document links
type LinkOpener interface {
	Open(url string)
	Copy(url string) error
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	spinner     spinner.Model
	keys        keyMap
	inPagerMode bool // tracks if we're currently in pager mode
	autoSearch  bool // run a search as soon as the program starts

	navigator    *logic.Navigator
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *Pager
	opener       LinkOpener
	history      *history.Recent
	resolveURL   func(path string) string

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. resolveURL turns API-relative paths into
// absolute URLs for display; it may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, opener LinkOpener, resolveURL func(string) string) *Model {
	appState := state.NewAppState(cfg.UISettings.DefaultPageSize)
	navigator := logic.NewNavigator()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:         newKeyMap(),
		navigator:    navigator,
		renderer:     views.NewRenderer(views.NewPalette(cfg.Categories)),
		inputHandler: input.New(),
		pager:        NewPager(),
		opener:       opener,
		history:      history.NewRecent(cfg.UISettings.HistorySize),
		resolveURL:   resolveURL,
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.rememberTicker)
	m.cmdExecutor = commands.NewExecutor(appState, bus)
	m.viewModel = viewmodels.NewViewModel(appState, navigator)
	m.viewModel.SetHelp(m.keys, NewHelpRenderer(m.keys).Render())

	// Start with the ticker input focused
	m.inputHandler.SetMode(inputtypes.ModeTicker, m.context())
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// SetTicker fills the ticker input and searches it on start
func (m *Model) SetTicker(ticker string) {
	ticker = state.NormalizeTicker(ticker)
	if ticker == "" {
		return
	}
	m.state.TickerInput = ticker
	m.inputHandler.TextInput().SetValue(ticker)
	m.autoSearch = true
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		State:     m.state,
		Navigator: m.navigator,
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.autoSearch {
		cmds = append(cmds, m.search())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "?", "esc", "q":
				m.state.ShowHelp = false
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.syncNavigator()
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput(), m.inputHandler.CurrentMode() == inputtypes.ModeTicker)
	m.viewModel.SetSpinner(m.spinner)
	if sel, ok := m.inputHandler.Selection(); ok {
		m.viewModel.SetSelection(&sel)
	} else {
		m.viewModel.SetSelection(nil)
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigator()
		m.navigator.Move(a.Direction)

	case inputtypes.UpdateTextAction:
		m.state.TickerInput = a.Text

	case inputtypes.SubmitTextAction:
		m.state.TickerInput = a.Text
		return m.search()

	case inputtypes.SearchAction:
		return m.search()

	case inputtypes.DownloadAction:
		return m.cmdExecutor.ExecuteDownload(a.DocumentID)

	case inputtypes.OpenExternalAction:
		if doc, ok := m.document(a.DocumentID); ok {
			if doc.ExternalURL == "" {
				log.Warn().Int("document", doc.ID).Msg("document has no external link")
				return nil
			}
			m.opener.Open(doc.ExternalURL)
		}

	case inputtypes.CopyLinkAction:
		doc, ok := m.document(a.DocumentID)
		if !ok {
			return nil
		}
		if err := m.opener.Copy(doc.ExternalURL); err != nil {
			log.Warn().Err(err).Int("document", doc.ID).Msg("copy link failed")
			return m.flashStatus(fmt.Sprintf("copy failed: %v", err))
		}
		return m.flashStatus("link copied")

	case inputtypes.ShowDetailsAction:
		if doc, ok := m.document(a.DocumentID); ok {
			return m.showDetails(buildDocumentDetails(m.state.LastResult, doc, m.resolveURL))
		}

	case inputtypes.SelectCategoryAction:
		m.state.SetCategoryFilter(a.Category)
		m.navigator.Reset()

	case inputtypes.SetPageSizeAction:
		m.state.SetPageSize(a.Size)

	case inputtypes.DismissAlertAction:
		m.state.DismissAlert()

	case inputtypes.CheckHealthAction:
		return tea.Batch(m.flashStatus("checking API…"), m.cmdExecutor.ExecuteHealthCheck())

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// search starts a search and normalises the input to what was searched
func (m *Model) search() tea.Cmd {
	before := m.state.SearchGeneration
	cmd := m.cmdExecutor.ExecuteSearch()
	if m.state.SearchGeneration != before {
		m.inputHandler.TextInput().SetValue(m.state.TickerInput)
		m.state.StatusMessage = ""
		m.navigator.Reset()
	}
	return cmd
}

// document looks up a document of the current result
func (m *Model) document(id int) (domain.Document, bool) {
	if m.state.LastResult == nil {
		return domain.Document{}, false
	}
	return m.state.LastResult.Document(id)
}

// rememberTicker records a searched ticker and refreshes input suggestions
func (m *Model) rememberTicker(ticker string) {
	m.history.Add(ticker)
	m.inputHandler.TextInput().SetSuggestions(m.history.List())
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		previous := m.state.LastResult
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if m.state.LastResult != previous {
			m.navigator.Reset()
		}
		m.syncNavigator()
		if m.state.Alert != "" && m.inputHandler.CurrentMode() != inputtypes.ModeAlert {
			m.inputHandler.SetMode(inputtypes.ModeAlert, m.context())
		}
		return m, cmd

	case spinner.TickMsg:
		// Don't continue the tick loop while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Msg("details pager failed")
			return m, m.flashStatus(fmt.Sprintf("pager failed: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}

// flashStatus shows a status message and clears it after a while
func (m *Model) flashStatus(message string) tea.Cmd {
	m.state.StatusMessage = message
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// showDetails returns a command that pages content with ov, pausing rendering meanwhile
func (m *Model) showDetails(content string) tea.Cmd {
	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
		}
		err := m.pager.Show(content)
		if m.program != nil {
			m.program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{err: err}
	}
}

// syncNavigator keeps the cursor within the filtered rows
func (m *Model) syncNavigator() {
	m.navigator.SetTotal(len(m.state.FilteredDocuments()))
}

// updateViewportHeight calculates the available height for the document table
func (m *Model) updateViewportHeight() {
	h := m.height - views.ReservedLines
	if h < 3 {
		h = 3
	}
	m.navigator.SetViewportHeight(h)
}
