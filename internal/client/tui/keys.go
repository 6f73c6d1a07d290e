package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Refresh   key.Binding
	Session   key.Binding
	Date      key.Binding
	Preparing key.Binding
	Completed key.Binding
	Assign    key.Binding
	Progress  key.Binding
	Delivered key.Binding
	Quit      key.Binding

	NextLocation key.Binding
	Submit       key.Binding
	Cancel       key.Binding

	NextCook key.Binding
	Place    key.Binding
}

func newKeyMap(mode Mode) keyMap {
	k := keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Session:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "session")),
		Date:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today/all")),
		Preparing: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preparing")),
		Completed: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "completed")),
		Assign:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "assign delivery")),
		Progress:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "in progress")),
		Delivered: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delivered")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		NextLocation: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next location")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "assign")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),

		NextCook: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next cook")),
		Place:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "place order")),
	}

	pantry := mode == ModePantry
	delivery := mode == ModeDelivery
	manager := mode == ModeManager
	k.Preparing.SetEnabled(pantry)
	k.Completed.SetEnabled(pantry)
	k.Assign.SetEnabled(pantry)
	k.Progress.SetEnabled(delivery)
	k.Delivered.SetEnabled(delivery)
	k.Date.SetEnabled(!manager)
	k.NextCook.SetEnabled(manager)
	k.Place.SetEnabled(manager)
	if manager {
		k.NextLocation.SetHelp("tab", "next pantry")
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		k.Toggle, k.Refresh, k.Session, k.Date,
		k.Preparing, k.Completed, k.Assign, k.Progress, k.Delivered,
	}
	if k.Place.Enabled() {
		bindings = append(bindings, k.NextLocation, k.NextCook, k.Place)
	}
	return append(bindings, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Up, k.Down}}
}

// dialogHelp is shown while the assign dialog is open.
type dialogHelp struct{ keys keyMap }

func (d dialogHelp) ShortHelp() []key.Binding {
	return []key.Binding{d.keys.NextLocation, d.keys.Up, d.keys.Down, d.keys.Submit, d.keys.Cancel}
}

func (d dialogHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}
