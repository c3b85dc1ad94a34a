package wizard

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the questionnaire keybindings for the help footer.
type keyMap struct {
	Yes  key.Binding
	No   key.Binding
	Skip key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Skip, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Yes, k.No, k.Skip},
		{k.Back, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Skip: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "skip (no)"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "backspace"),
		key.WithHelp("←", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}
