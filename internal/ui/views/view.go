package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fnetgrip/internal/domain"
	"fnetgrip/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	TickerInput    string // rendered text input
	TickerFocused  bool
	PageSize       int
	Loading        bool
	LoadingTicker  string
	CanSearch      bool
	Spinner        string
	ErrorMessage   string
	Result         *domain.SearchResult
	CategoryFilter string
	CategoryCount  int
	Documents      []domain.Document // filtered
	Selected       int
	Offset         int
	ViewportHeight int
	Busy           map[int]bool
	StatusMessage  string
	APIOnline      *bool
	Alert          string
	Selector       *SelectorState
	ShowHelp       bool
	HelpContent    string
	ShortHelp      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	table       *TableRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(palette *Palette) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		table:       NewTableRenderer(styles, palette),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// ReservedLines is how many rows the chrome around the table takes
const ReservedLines = 13

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderInputBar(state))
	content.WriteString("\n\n")

	switch {
	case state.Loading:
		content.WriteString(r.styles.StatusLoading.Render(fmt.Sprintf("%s searching %s (%s)…", state.Spinner, state.LoadingTicker, state.PageSizeLabel())))
	case state.ErrorMessage != "":
		content.WriteString(r.styles.StatusError.Render(state.ErrorMessage))
	case state.Result != nil:
		content.WriteString(r.renderSummary(state))
		content.WriteString("\n\n")
		content.WriteString(r.table.Render(state))
	default:
		content.WriteString(r.styles.Dim.Render("Type a ticker and press enter to list its FNET documents."))
	}

	if state.StatusMessage != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.StatusSuccess.Render(state.StatusMessage))
	}

	if state.ShortHelp != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		available := state.Height - 2
		if available <= 0 {
			available = 22
		}
		if pad := available - currentLines - 1; pad > 0 {
			content.WriteString(strings.Repeat("\n", pad))
		} else {
			content.WriteString("\n")
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.ShortHelp))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	// Overlays, most important last
	if state.ShowHelp && state.HelpContent != "" {
		finalContent = r.popupRender.RenderPopupOverlay(finalContent, state.HelpContent, state.Height, state.Width, r.styles.Popup)
	}
	if state.Selector != nil {
		finalContent = r.popupRender.RenderPopupOverlay(finalContent, r.popupRender.RenderSelector(*state.Selector), state.Height, state.Width, r.styles.Popup)
	}
	if state.Alert != "" {
		finalContent = r.popupRender.RenderPopupOverlay(finalContent, r.popupRender.RenderAlert(state.Alert), state.Height, state.Width, r.styles.Alert)
	}
	return finalContent
}

// PageSizeLabel renders "20 docs"
func (s ViewState) PageSizeLabel() string {
	return fmt.Sprintf("%d docs", s.PageSize)
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("fnetgrip")

	right := ""
	if state.APIOnline != nil {
		if *state.APIOnline {
			right = r.styles.StatusSuccess.Render("● API online")
		} else {
			right = r.styles.StatusWarning.Render("● API offline")
		}
	}
	if right == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderInputBar(state ViewState) string {
	inputStyle := r.styles.Input
	if state.TickerFocused {
		inputStyle = r.styles.InputFocused
	}
	input := inputStyle.Width(22).Render(state.TickerInput)

	pageSize := r.styles.Label.Render("page size ") + fmt.Sprintf("[%d]", state.PageSize)

	button := r.styles.Button.Render("Search")
	if !state.CanSearch {
		button = r.styles.ButtonOff.Render("Search")
	}
	if state.Loading {
		button = r.styles.ButtonOff.Render("Searching…")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, input, "  ", pageSize, "  ", button)
}

func (r *Renderer) renderSummary(state ViewState) string {
	res := state.Result
	parts := []string{r.styles.Header.Render(res.Ticker)}
	if reg := res.Registration(); reg != "" {
		parts = append(parts, "CNPJ "+reg)
	}
	parts = append(parts,
		fmt.Sprintf("%s listed of %s", logic.FormatCount(len(res.Documents)), logic.FormatCount(res.TotalAvailable)),
		"fetched "+logic.FormatDate(res.FetchedAt),
	)
	left := strings.Join(parts, r.styles.Dim.Render(" · "))

	filter := fmt.Sprintf("%s (%d)", state.CategoryFilter, state.CategoryCount)
	return left + "   " + r.styles.Label.Render("category") + " " + filter
}
