package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type echoMsg string

// counter counts key presses and echoes "!" through a Cmd so draining can
// be observed.
type counter struct {
	presses int
	echoes  int
	width   int
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return echoMsg("init") }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case echoMsg:
		c.echoes++
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return c, tea.Quit
		case "!":
			return c, tea.Batch(
				func() tea.Msg { return echoMsg("a") },
				func() tea.Msg { return echoMsg("b") },
			)
		}
		c.presses++
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestDriver_DrainsInitAndBatches(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	d.DrainInit()
	d.PressKey('!')

	m := d.Model.(counter)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 3, m.echoes)
}

func TestDriver_IgnoresInputAfterQuit(t *testing.T) {
	d := New(t, counter{})
	d.Type("ab")
	d.PressKey('q')
	d.PressDown()

	assert.True(t, d.Quitting)
	assert.Equal(t, 2, d.Model.(counter).presses)
}
