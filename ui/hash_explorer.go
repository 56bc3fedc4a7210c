// Package ui holds the terminal front end: type a string id, see its identifier.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"message-info/msginfo"
	"message-info/msginfo/mhash"
)

const maxHistory = 10

type (
	HashExplorer struct {
		input   []rune
		history []Record
	}
	Record struct {
		Text string
		Key  uint32
	}
)

func NewHashExplorer() *HashExplorer {
	return &HashExplorer{
		input:   make([]rune, 0),
		history: make([]Record, 0, maxHistory),
	}
}

func (e *HashExplorer) Input() string {
	return string(e.input)
}

func (e *HashExplorer) History() []Record {
	return e.history
}

func (e *HashExplorer) Init() tea.Cmd {
	return nil
}

func (e *HashExplorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return e, tea.Quit
	case tea.KeyEnter:
		e.commit()
	case tea.KeyBackspace:
		if len(e.input) > 0 {
			e.input = e.input[:len(e.input)-1]
		}
	case tea.KeyRunes:
		e.input = append(e.input, keyMsg.Runes...)
	default:
		if keyMsg.String() == " " {
			e.input = append(e.input, ' ')
		}
	}
	return e, nil
}

// commit pushes the current input on top of the history, dropping the oldest record when full.
func (e *HashExplorer) commit() {
	text := string(e.input)
	e.history = append([]Record{{Text: text, Key: mhash.HashString(text)}}, e.history...)
	if len(e.history) > maxHistory {
		e.history = e.history[:maxHistory]
	}
	e.input = e.input[:0]
}

func describe(key uint32) string {
	name, ok := mhash.Dehash(key)
	return lo.Ternary(ok, "known as "+name, "unknown")
}

func (e *HashExplorer) View() string {
	b := strings.Builder{}
	b.WriteString("MESSAGE INFO HASH EXPLORER\n\n")

	live := mhash.HashString(string(e.input))
	b.WriteString(fmt.Sprintf("> %s\n", string(e.input)))
	b.WriteString(fmt.Sprintf("  %s (%s)\n\n", msginfo.FormatKey(live), describe(live)))

	for _, record := range e.history {
		b.WriteString(fmt.Sprintf("  %s  %q\n", msginfo.FormatKey(record.Key), record.Text))
	}

	b.WriteString("\nenter: keep  esc: quit\n")
	return b.String()
}
