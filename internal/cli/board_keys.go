package cli

import (
	"github.com/charmbracelet/bubbles/key"
)

type boardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Grab      key.Binding
	GrabTier  key.Binding
	Drop      key.Binding
	Cancel    key.Binding
	Rename    key.Binding
	Confirm   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Grab:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pick up")),
		GrabTier:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "pick up tier")),
		Drop:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Rename:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename tier")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpKeys adapts a binding list to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k boardKeyMap) browseHelp() helpKeys {
	return helpKeys{k.Up, k.Left, k.Grab, k.GrabTier, k.Rename, k.Quit}
}

func (k boardKeyMap) carryItemHelp() helpKeys {
	return helpKeys{k.Up, k.Left, k.Drop, k.Cancel}
}

func (k boardKeyMap) carryTierHelp() helpKeys {
	return helpKeys{k.Up, k.Drop, k.Cancel}
}

func (k boardKeyMap) renameHelp() helpKeys {
	return helpKeys{k.Confirm, k.Cancel}
}
