package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"fnetgrip/internal/domain"
	"fnetgrip/internal/ui/logic"
)

// EmptyFilterMessage replaces the table when no document matches the filter
const EmptyFilterMessage = "no documents for this filter"

// column widths in terminal cells
const (
	colID        = 8
	colCategory  = 26
	colType      = 30
	colDate      = 12
	colAction    = 16
	colSeparator = 1
)

// TableRenderer renders the document table
type TableRenderer struct {
	styles  *Styles
	palette *Palette
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles, palette *Palette) *TableRenderer {
	return &TableRenderer{styles: styles, palette: palette}
}

// fit truncates s to w cells and pads it on the right
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

// padStyled pads an already styled string to w cells
func padStyled(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// typeWidth shrinks the type column on narrow terminals
func typeWidth(total int) int {
	fixed := 2 + colID + colCategory + 2*colDate + colAction + 5*colSeparator
	w := total - fixed
	if w > colType {
		return colType
	}
	if w < 8 {
		return 8
	}
	return w
}

// RenderHeader renders the column titles
func (tr *TableRenderer) RenderHeader(width int) string {
	tw := typeWidth(width)
	cells := []string{
		"  " + fit("ID", colID),
		fit("Category", colCategory),
		fit("Type", tw),
		fit("Delivered", colDate),
		fit("Reference", colDate),
		fit("", colAction),
	}
	return tr.styles.Header.Render(strings.Join(cells, " "))
}

// RenderRow renders one document row
func (tr *TableRenderer) RenderRow(doc domain.Document, width int, selected, busy bool, spinner string) string {
	tw := typeWidth(width)

	cursor := "  "
	if selected {
		cursor = "> "
	}

	category := doc.Category
	if category == "" {
		category = logic.Placeholder
	}
	badge := tr.palette.Badge(doc.Category).Render(runewidth.Truncate(category, colCategory-2, "…"))

	action := tr.styles.Dim.Render(fit("d pdf · o link", colAction))
	if busy {
		action = tr.styles.StatusLoading.Render(fit(spinner+" downloading", colAction))
	}

	cells := []string{
		cursor + fit(strconv.Itoa(doc.ID), colID),
		padStyled(badge, colCategory),
		fit(doc.Type, tw),
		fit(logic.FormatDate(doc.DeliveredAt), colDate),
		fit(logic.FormatDate(doc.ReferenceDate), colDate),
		action,
	}
	line := strings.Join(cells, " ")
	if selected {
		return tr.styles.SelectionBg.Render(line)
	}
	return line
}

// Render renders the visible window of state.Documents, which is already filtered
func (tr *TableRenderer) Render(state ViewState) string {
	if len(state.Documents) == 0 {
		return tr.styles.Dim.Render(EmptyFilterMessage)
	}

	var b strings.Builder
	b.WriteString(tr.RenderHeader(state.Width))
	b.WriteString("\n")

	end := state.Offset + state.ViewportHeight
	if end > len(state.Documents) || state.ViewportHeight <= 0 {
		end = len(state.Documents)
	}
	start := state.Offset
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		doc := state.Documents[i]
		b.WriteString(tr.RenderRow(doc, state.Width, i == state.Selected, state.Busy[doc.ID], state.Spinner))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if start > 0 || end < len(state.Documents) {
		b.WriteString("\n")
		b.WriteString(tr.styles.Scroll.Render(fmt.Sprintf("rows %d-%d of %d", start+1, end, len(state.Documents))))
	}
	return b.String()
}
