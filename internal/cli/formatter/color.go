package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tierboard/internal/gesture"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorBg     = lipgloss.Color("#282828")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// tierColors cycles down the board the way tier lists are usually painted:
// S red, A orange, B yellow and so on.
var tierColors = []lipgloss.Color{ColorRed, ColorHeader, ColorYellow, ColorGreen, ColorBlue, ColorPurple, ColorAqua}

// TierColor returns the label color for the tier at index i.
func TierColor(i int) lipgloss.Color {
	if i < 0 {
		return ColorDim
	}
	return tierColors[i%len(tierColors)]
}

// OutcomeStyle returns the style for a dispatch outcome.
func OutcomeStyle(o gesture.Outcome) lipgloss.Style {
	switch o {
	case gesture.OutcomeApplied:
		return StyleGreen
	case gesture.OutcomeCancelled:
		return StyleDim
	case gesture.OutcomeUnresolved:
		return StyleYellow
	default:
		return StyleRed
	}
}

// OutcomeIndicator returns a colored outcome marker such as "● applied".
func OutcomeIndicator(o gesture.Outcome) string {
	return OutcomeStyle(o).Render("● " + string(o))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
