package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the onboarding screens
type KeyMap struct {
	Confirm      key.Binding
	Current      key.Binding
	Down         key.Binding
	Left         key.Binding
	MapPoint     key.Binding
	OpenSettings key.Binding
	Quit         key.Binding
	Resend       key.Binding
	Right        key.Binding
	Search       key.Binding
	Skip         key.Binding
	SkipLogin    key.Binding
	Toggle       key.Binding
	Up           key.Binding
}

// NewKeyMap returns the default key bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Confirm:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		Current:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "use current location")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "west")),
		MapPoint:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "pick map point")),
		OpenSettings: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open settings")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Resend:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "resend code")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "east")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search address")),
		Skip:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		SkipLogin:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "skip login")),
		Toggle:       key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "select")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	}
}

// renderHelp renders a one-line help for the given bindings
func renderHelp(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += helpKey(h.Key) + " " + helpLabel(h.Desc)
	}
	return out
}
