package app

import "github.com/mrz1836/tasklist/internal/domain"

// Row is one visible task with its edit state.
type Row struct {
	Task    domain.Task
	Editing bool
	Draft   string
}

// FilterButton is one filter control. Exactly one button is pressed.
type FilterButton struct {
	Filter  domain.Filter
	Pressed bool
}

// View is a read-only snapshot of everything the screen shows.
type View struct {
	Rows    []Row
	Filters []FilterButton
	Heading string
	Filter  domain.Filter
	Total   int
}

// View builds the current snapshot. The heading counts visible tasks.
func (a *App) View() View {
	visible := a.store.VisibleTasks()
	rows := make([]Row, 0, len(visible))
	for _, task := range visible {
		rows = append(rows, Row{
			Task:    task,
			Editing: a.IsEditing(task.ID),
			Draft:   a.Draft(task.ID),
		})
	}

	active := a.store.Filter()
	names := domain.FilterNames()
	buttons := make([]FilterButton, 0, len(names))
	for _, f := range names {
		buttons = append(buttons, FilterButton{Filter: f, Pressed: f == active})
	}

	return View{
		Rows:    rows,
		Filters: buttons,
		Heading: domain.HeadingText(len(rows)),
		Filter:  active,
		Total:   a.store.Len(),
	}
}
