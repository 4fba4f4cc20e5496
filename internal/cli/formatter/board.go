package formatter

import (
	"strings"

	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Slot addresses a position on the board. Index -1 addresses the tier as a
// whole.
type Slot struct {
	Tier  int
	Index int
}

// Marks decorates a board with interaction state. Nil slots are not drawn;
// the zero value renders a plain board.
type Marks struct {
	Cursor  *Slot
	Carried *Slot
	Drop    *Slot
}

var (
	styleChip        = lipgloss.NewStyle().Foreground(ColorFg)
	styleChipCursor  = lipgloss.NewStyle().Foreground(ColorBg).Background(ColorBlue).Bold(true)
	styleChipCarried = lipgloss.NewStyle().Foreground(ColorDim).Italic(true)
	styleDropMarker  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

const (
	gutterCursor  = "› "
	gutterCarried = "◆ "
	gutterDrop    = "▶ "
	gutterNone    = "  "
	dropMarker    = "▌"
	maxLabelWidth = 16
)

// RenderBoard draws every tier on its own row with the label placed on top,
// left or right as the tier asks.
func RenderBoard(c domain.Collection, m Marks) string {
	if len(c) == 0 {
		return Dim("(no tiers)") + "\n"
	}

	labelWidth := 0
	for _, t := range c {
		labelWidth = max(labelWidth, lipgloss.Width(Truncate(t.Name, maxLabelWidth)))
	}
	labelWidth += 2

	cells := make([]string, len(c))
	cellWidth := 0
	for i, t := range c {
		cells[i] = renderItems(i, t, m)
		cellWidth = max(cellWidth, lipgloss.Width(cells[i]))
	}

	var b strings.Builder
	for i, t := range c {
		gutter := gutterFor(i, m)
		label := renderLabel(i, t)
		switch t.Label() {
		case domain.LabelTop:
			b.WriteString(gutter + label + "\n")
			b.WriteString(gutterNone + cells[i] + "\n")
		case domain.LabelRight:
			padded := lipgloss.NewStyle().Width(cellWidth).Render(cells[i])
			b.WriteString(gutter + padded + " " + lipgloss.NewStyle().Width(labelWidth).Render(label) + "\n")
		default:
			b.WriteString(gutter + lipgloss.NewStyle().Width(labelWidth).Render(label) + " " + cells[i] + "\n")
		}
	}
	return b.String()
}

func renderLabel(i int, t domain.Tier) string {
	name := Truncate(t.Name, maxLabelWidth)
	if name == "" {
		name = "·"
	}
	return lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(TierColor(i)).
		Bold(true).
		Padding(0, 1).
		Render(name)
}

func renderItems(i int, t domain.Tier, m Marks) string {
	dropAt := -1
	if m.Drop != nil && m.Drop.Tier == i && m.Drop.Index >= 0 {
		dropAt = m.Drop.Index
	}

	parts := make([]string, 0, len(t.Items)+1)
	for j, it := range t.Items {
		if j == dropAt {
			parts = append(parts, styleDropMarker.Render(dropMarker))
		}
		parts = append(parts, chipStyle(i, j, m).Render("["+it.Content+"]"))
	}
	if dropAt >= len(t.Items) {
		parts = append(parts, styleDropMarker.Render(dropMarker))
	}
	if len(parts) == 0 {
		return Dim("(empty)")
	}
	return strings.Join(parts, " ")
}

func chipStyle(i, j int, m Marks) lipgloss.Style {
	switch {
	case m.Carried != nil && m.Carried.Tier == i && (m.Carried.Index == j || m.Carried.Index < 0):
		return styleChipCarried
	case m.Cursor != nil && m.Cursor.Tier == i && m.Cursor.Index == j:
		return styleChipCursor
	default:
		return styleChip
	}
}

func gutterFor(i int, m Marks) string {
	switch {
	case m.Drop != nil && m.Drop.Tier == i && m.Drop.Index < 0:
		return styleDropMarker.Render(gutterDrop)
	case m.Carried != nil && m.Carried.Tier == i && m.Carried.Index < 0:
		return StyleDim.Render(gutterCarried)
	case m.Cursor != nil && m.Cursor.Tier == i:
		return StyleHeader.Render(gutterCursor)
	default:
		return gutterNone
	}
}
