// Command loomdemo is a minimal counter program exercising the full
// loom event loop: arrow keys increment/decrement a count, q quits.
package main

import (
	"fmt"
	"os"

	"github.com/loomtui/loom/keys"
	"github.com/loomtui/loom/tea"
)

type model struct {
	count int
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Type == keys.Up:
		m.count++
	case key.Type == keys.Down:
		m.count--
	case key.Type == keys.Rune && key.Rune == 'q':
		return m, tea.Quit()
	case key.Ctrl && key.Rune == 'c':
		return m, tea.Quit()
	}
	return m, nil
}

func (m model) View() string {
	return fmt.Sprintf("Count: %d\n↑/↓ to change, q to quit\n", m.count)
}

func main() {
	p := tea.New(model{})
	if err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
