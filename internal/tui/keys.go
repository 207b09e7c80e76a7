package tui

import "charm.land/bubbles/v2/key"

// keyMap lists every binding of the task list screen.
type keyMap struct {
	NextRegion key.Binding
	PrevRegion key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Toggle     key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Save       key.Binding
	Cancel     key.Binding
	RowUp      key.Binding
	RowDown    key.Binding
	AddFocus   key.Binding
	FilterAll  key.Binding
	FilterAct  key.Binding
	FilterDone key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextRegion: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next region")),
		PrevRegion: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous region")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous filter")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next filter")),
		Select:     key.NewBinding(key.WithKeys("enter", "space", " "), key.WithHelp("enter", "apply filter")),
		Toggle:     key.NewBinding(key.WithKeys("space", " ", "x"), key.WithHelp("space", "toggle done")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
		Delete:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Save:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		RowUp:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous row")),
		RowDown:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next row")),
		AddFocus:   key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add task")),
		FilterAll:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "show all")),
		FilterAct:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "show active")),
		FilterDone: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "show completed")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextRegion, k.AddFocus, k.Toggle, k.Edit, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextRegion, k.PrevRegion, k.AddFocus},
		{k.Up, k.Down, k.Toggle, k.Edit, k.Delete},
		{k.Save, k.Cancel, k.RowUp, k.RowDown},
		{k.Left, k.Right, k.Select, k.FilterAll, k.FilterAct, k.FilterDone},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
