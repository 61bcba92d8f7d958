package views

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// NeutralColor is used for categories missing from the palette
const NeutralColor = "#6b7280"

// badgeAlpha is the opacity of the badge background over the terminal
// background, leaving it 80% of the way towards the terminal color
const badgeAlpha = 0.2

// terminalBackground is the color badge backgrounds are blended towards
const terminalBackground = "#000000"

// DefaultCategoryColors maps the well-known FNET categories to colors
var DefaultCategoryColors = map[string]string{
	"Relatórios":                       "#3b82f6",
	"Informes Periódicos":              "#10b981",
	"Fato Relevante":                   "#ef4444",
	"Aviso aos Cotistas - Estruturado": "#f59e0b",
	"Comunicado ao Mercado":            "#8b5cf6",
}

// Palette is a category -> color lookup table with a neutral default
type Palette struct {
	colors map[string]string
}

// NewPalette creates a palette from the defaults plus overrides.
// Overrides that are not valid hex colors are ignored.
func NewPalette(overrides map[string]string) *Palette {
	colors := make(map[string]string, len(DefaultCategoryColors)+len(overrides))
	for k, v := range DefaultCategoryColors {
		colors[k] = v
	}
	for k, v := range overrides {
		if _, err := colorful.Hex(v); err == nil {
			colors[k] = v
		}
	}
	return &Palette{colors: colors}
}

// Color returns the solid color of a category
func (p *Palette) Color(category string) string {
	if c, ok := p.colors[category]; ok {
		return c
	}
	return NeutralColor
}

// Background returns the translucent background derived from a category color
func (p *Palette) Background(category string) string {
	return Translucent(p.Color(category), badgeAlpha)
}

// Badge returns the style for a category label
func (p *Palette) Badge(category string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Color(category))).
		Background(lipgloss.Color(p.Background(category))).
		Padding(0, 1)
}

// Translucent blends hex over the terminal background with the given opacity
func Translucent(hex string, alpha float64) string {
	fg, err := colorful.Hex(hex)
	if err != nil {
		fg, _ = colorful.Hex(NeutralColor)
	}
	bg, _ := colorful.Hex(terminalBackground)
	return bg.BlendRgb(fg, alpha).Clamped().Hex()
}
