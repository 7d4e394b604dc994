package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Search       key.Binding
	Add          key.Binding
	Delete       key.Binding
	Reveal       key.Binding
	CopyUsername key.Binding
	CopySecret   key.Binding
	ClearSearch  key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding

	DoneSearch key.Binding

	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Reveal:       key.NewBinding(key.WithKeys("v", " "), key.WithHelp("v", "show/hide")),
		CopyUsername: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "copy username")),
		CopySecret:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "copy password")),
		ClearSearch:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c")),

		DoneSearch: key.NewBinding(key.WithKeys("enter", "tab", "down"), key.WithHelp("enter", "done")),

		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// bindings adapts a flat binding list to help.KeyMap.
type bindings []key.Binding

var _ help.KeyMap = bindings(nil)

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (k keyMap) help(mode mode) help.KeyMap {
	switch mode {
	case modeSearch:
		return bindings{k.DoneSearch, k.ClearSearch}
	case modeAdd:
		return bindings{k.Next, k.Prev, k.Submit, k.Cancel}
	default:
		return bindings{k.Up, k.Down, k.Search, k.Add, k.Delete, k.Reveal, k.CopyUsername, k.CopySecret, k.Quit}
	}
}
