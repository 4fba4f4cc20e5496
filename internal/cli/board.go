package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tierboard/internal/cli/formatter"
	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/alexanderramin/tierboard/internal/gesture"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// outside is the target tier index used once a carry has moved above the
// first tier, off every drop target.
const outside = -1

// boardModel is the interactive board. It plays the drag library: keyboard
// pick-up, carry and drop are tracked by a gesture.Tracker and the resolved
// events go through the Interpreter like any other host's would. Cursor,
// drop target and rename buffer are view state and never reach the store.
type boardModel struct {
	title   string
	interp  *gesture.Interpreter
	tracker gesture.Tracker
	keys    boardKeyMap
	help    help.Model
	rename  textinput.Model

	renaming bool
	tier     int
	item     int
	target   formatter.Slot
	status   string
	width    int
	height   int
	quitting bool
}

func newBoardModel(title string, interp *gesture.Interpreter) *boardModel {
	ti := textinput.New()
	ti.Prompt = "Tier name: "
	ti.CharLimit = 64
	ti.PromptStyle = formatter.StyleHeader
	ti.TextStyle = formatter.StyleFg

	h := help.New()
	h.Styles.ShortKey = formatter.StyleFg
	h.Styles.ShortDesc = formatter.StyleDim
	h.Styles.ShortSeparator = formatter.StyleDim

	return &boardModel{
		title:  title,
		interp: interp,
		keys:   defaultBoardKeys(),
		help:   h,
		rename: ti,
	}
}

func (m *boardModel) tiers() domain.Collection {
	return m.interp.Store().Current()
}

func (m *boardModel) Init() tea.Cmd {
	return nil
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		switch {
		case m.renaming:
			return m.updateRename(msg)
		case m.tracker.Dragging():
			return m.updateCarry(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.renaming {
		var cmd tea.Cmd
		m.rename, cmd = m.rename.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *boardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tiers := m.tiers()
	if len(tiers) == 0 {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.tier = max(0, m.tier-1)
		m.clampItem()

	case key.Matches(msg, m.keys.Down):
		m.tier = min(len(tiers)-1, m.tier+1)
		m.clampItem()

	case key.Matches(msg, m.keys.Left):
		m.item = max(0, m.item-1)

	case key.Matches(msg, m.keys.Right):
		m.item = max(0, min(len(tiers[m.tier].Items)-1, m.item+1))

	case key.Matches(msg, m.keys.Grab):
		t := tiers[m.tier]
		if len(t.Items) == 0 {
			m.status = formatter.Dim("nothing to pick up in " + t.Name)
			return m, nil
		}
		m.tracker.Begin(gesture.KindItem, gesture.Location{ContainerID: t.ID, Index: m.item})
		m.target = formatter.Slot{Tier: m.tier, Index: m.item}
		m.hover()
		m.status = fmt.Sprintf("carrying %s", formatter.Bold(t.Items[m.item].Content))

	case key.Matches(msg, m.keys.GrabTier):
		t := tiers[m.tier]
		m.tracker.Begin(gesture.KindTier, gesture.Location{ContainerID: t.ID, Index: m.tier})
		m.target = formatter.Slot{Tier: m.tier, Index: -1}
		m.hover()
		m.status = fmt.Sprintf("carrying the contents of %s", formatter.Bold(t.Name))

	case key.Matches(msg, m.keys.Rename):
		m.renaming = true
		m.rename.SetValue(tiers[m.tier].Name)
		m.rename.CursorEnd()
		m.status = ""
		return m, m.rename.Focus()
	}
	return m, nil
}

func (m *boardModel) updateCarry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tiers := m.tiers()
	carryingTier := m.tracker.Kind() == gesture.KindTier

	switch {
	case key.Matches(msg, m.keys.Cancel):
		ev, _ := m.tracker.Cancel()
		m.finish(ev)
		return m, nil

	case key.Matches(msg, m.keys.Drop):
		ev, _ := m.tracker.Drop()
		m.finish(ev)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.target.Tier > outside {
			m.target.Tier--
		}

	case key.Matches(msg, m.keys.Down):
		if m.target.Tier < len(tiers)-1 {
			m.target.Tier++
		}

	case key.Matches(msg, m.keys.Left):
		if !carryingTier {
			m.target.Index--
		}

	case key.Matches(msg, m.keys.Right):
		if !carryingTier {
			m.target.Index++
		}
	}

	if !carryingTier && m.target.Tier != outside {
		m.target.Index = max(0, min(m.maxDropIndex(m.target.Tier), m.target.Index))
	}
	m.hover()
	return m, nil
}

// maxDropIndex is the last valid insertion index in tier i for the item
// being carried: the item's own tier is one shorter once it is lifted.
func (m *boardModel) maxDropIndex(i int) int {
	t := m.tiers()[i]
	if t.ID == m.tracker.Source().ContainerID {
		return len(t.Items) - 1
	}
	return len(t.Items)
}

func (m *boardModel) hover() {
	if m.target.Tier == outside {
		m.tracker.Leave()
		return
	}
	t := m.tiers()[m.target.Tier]
	if m.tracker.Kind() == gesture.KindTier {
		m.tracker.Hover(gesture.Location{ContainerID: t.ID, Index: m.target.Tier})
		return
	}
	m.tracker.Hover(gesture.Location{ContainerID: t.ID, Index: m.target.Index})
}

func (m *boardModel) finish(ev gesture.Event) {
	outcome := m.interp.Dispatch(context.Background(), ev)
	m.status = formatter.OutcomeIndicator(outcome)

	if outcome.Changed() {
		m.tier = m.target.Tier
		if ev.Kind != gesture.KindTier {
			m.item = m.target.Index
		}
	}
	m.clampItem()
	m.target = formatter.Slot{}
}

func (m *boardModel) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		outcome := m.interp.Rename(context.Background(), m.tier, strings.TrimSpace(m.rename.Value()))
		m.endRename()
		m.status = formatter.OutcomeIndicator(outcome) + " renamed"
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.endRename()
		m.status = formatter.Dim("rename abandoned")
		return m, nil
	}

	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	return m, cmd
}

func (m *boardModel) endRename() {
	m.renaming = false
	m.rename.Blur()
	m.rename.Reset()
}

func (m *boardModel) clampItem() {
	tiers := m.tiers()
	if len(tiers) == 0 {
		m.tier, m.item = 0, 0
		return
	}
	m.tier = max(0, min(len(tiers)-1, m.tier))
	m.item = max(0, min(len(tiers[m.tier].Items)-1, m.item))
}

func (m *boardModel) marks() formatter.Marks {
	if !m.tracker.Dragging() {
		return formatter.Marks{Cursor: &formatter.Slot{Tier: m.tier, Index: m.item}}
	}

	var marks formatter.Marks
	src := m.tracker.Source()
	if m.tracker.Kind() == gesture.KindTier {
		marks.Carried = &formatter.Slot{Tier: src.Index, Index: -1}
		if m.target.Tier != outside {
			marks.Drop = &formatter.Slot{Tier: m.target.Tier, Index: -1}
		}
		return marks
	}

	marks.Carried = &formatter.Slot{Tier: m.tiers().IndexOf(src.ContainerID), Index: src.Index}
	if m.target.Tier != outside {
		drop := m.target
		// Draw the marker where the item lands, not where it is inserted
		// into the shortened source tier.
		if drop.Tier == marks.Carried.Tier && drop.Index > src.Index {
			drop.Index++
		}
		marks.Drop = &drop
	}
	return marks
}

func (m *boardModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	header := formatter.StylePurple.Render("tierboard") + " " + formatter.Dim("›") + " " + formatter.Bold(m.title)
	if m.tracker.Dragging() && m.target.Tier == outside {
		header += "  " + formatter.StyleYellow.Render("(off the board: drop cancels)")
	}
	sections = append(sections, header, "")
	sections = append(sections, formatter.RenderBoard(m.tiers(), m.marks()))

	if m.renaming {
		sections = append(sections, m.rename.View())
	}
	if m.status != "" {
		sections = append(sections, m.status)
	}
	sections = append(sections, m.help.View(m.helpKeys()))

	return strings.Join(sections, "\n")
}

func (m *boardModel) helpKeys() helpKeys {
	switch {
	case m.renaming:
		return m.keys.renameHelp()
	case m.tracker.Dragging() && m.tracker.Kind() == gesture.KindTier:
		return m.keys.carryTierHelp()
	case m.tracker.Dragging():
		return m.keys.carryItemHelp()
	default:
		return m.keys.browseHelp()
	}
}
