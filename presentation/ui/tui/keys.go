package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"netprio/presentation/localization"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Grab      key.Binding
	ShiftUp   key.Binding
	ShiftDown key.Binding
	Commit    key.Binding
	Refresh   key.Binding
	Language  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// newKeyMap builds bindings whose help text follows the current language.
func newKeyMap(t Translator) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", t.T(localization.MsgHelpNavigate, nil)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", t.T(localization.MsgHelpNavigate, nil)),
		),
		Grab: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", t.T(localization.MsgHelpGrab, nil)),
		),
		ShiftUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("shift+↑", t.T(localization.MsgHelpMove, nil)),
		),
		ShiftDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("shift+↓", t.T(localization.MsgHelpMove, nil)),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", t.T(localization.MsgHelpCommit, nil)),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", t.T(localization.MsgRefresh, nil)),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", t.T(localization.MsgLanguage, nil)),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", t.T(localization.MsgHelpMore, nil)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", t.T(localization.MsgHelpQuit, nil)),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Grab, k.Commit, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Grab},
		{k.ShiftUp, k.ShiftDown, k.Commit},
		{k.Refresh, k.Language, k.Help, k.Quit},
	}
}
