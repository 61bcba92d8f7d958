package views

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SelectorState describes an open list selector
type SelectorState struct {
	Title   string
	Options []string
	Index   int
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderSelector renders a list selector body
func (pr *PopupRenderer) RenderSelector(sel SelectorState) string {
	var b strings.Builder
	b.WriteString(pr.styles.Title.Render(sel.Title))
	b.WriteString("\n\n")
	for i, opt := range sel.Options {
		if i == sel.Index {
			b.WriteString(pr.styles.SelectionBg.Render("> " + opt))
		} else {
			b.WriteString("  " + opt)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(pr.styles.Help.Render("enter select · esc cancel"))
	return b.String()
}

// RenderAlert renders the body of a blocking alert
func (pr *PopupRenderer) RenderAlert(message string) string {
	return fmt.Sprintf("%s\n\n%s",
		pr.styles.StatusError.Bold(true).Render(message),
		pr.styles.Help.Render("press enter to dismiss"))
}

// RenderPopupOverlay draws a popup centered over the main content.
// The rows under the popup are replaced; the rest of the screen is greyed out.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")
	popupW := lipgloss.Width(styledPopup)

	baseLines := strings.Split(desaturateANSI(mainContent), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	top := (height - len(popupLines)) / 2
	if top < 0 {
		top = 0
	}
	left := (width - popupW) / 2
	if left < 0 {
		left = 0
	}
	indent := strings.Repeat(" ", left)

	for i, line := range popupLines {
		row := top + i
		if row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		baseLines[row] = indent + line
	}
	return strings.Join(baseLines, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		if line != "" {
			lines[i] = dim.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes color codes, used by tests and the plain-text pager
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
