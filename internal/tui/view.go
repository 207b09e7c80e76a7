package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"

	"github.com/mrz1836/tasklist/internal/app"
)

const (
	cursorMark   = "›"
	checkedBox   = "[x]"
	uncheckedBox = "[ ]"
	ellipsis     = "…"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = m.opts.AltScreen
	return v
}

// render builds the screen text. Split out from View so tests can inspect it.
func (m Model) render() string {
	snap := m.app.View()
	s := m.styles

	var b strings.Builder

	b.WriteString(s.Title.Render("Tasklist"))
	b.WriteString("\n\n")

	b.WriteString(m.regionLabel(RegionAdd, "What needs to be done?"))
	b.WriteString("\n")
	b.WriteString(m.addInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.regionLabel(RegionFilters, "Show"))
	b.WriteString("\n")
	b.WriteString(m.renderFilters(snap))
	b.WriteString("\n\n")

	heading := s.Heading
	if m.region == RegionHeading {
		heading = s.HeadingFocused
	}
	b.WriteString(heading.Render(snap.Heading))
	b.WriteString("\n")

	for i, row := range snap.Rows {
		b.WriteString(m.renderRow(i, row))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(s.Error.Render(m.status))
		} else {
			b.WriteString(s.Status.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m Model) regionLabel(r Region, text string) string {
	if m.region == r {
		return m.styles.RowCursor.Render(cursorMark + " " + text)
	}
	return m.styles.Label.Render("  " + text)
}

func (m Model) renderFilters(snap app.View) string {
	parts := make([]string, 0, len(snap.Filters))
	for i, btn := range snap.Filters {
		label := btn.Filter.String()
		style := m.styles.Filter
		switch {
		case btn.Pressed:
			style = m.styles.FilterPressed
		case m.region == RegionFilters && i == m.filterCursor:
			style = m.styles.FilterCursor
		}
		if m.region == RegionFilters && i == m.filterCursor && btn.Pressed {
			style = style.Underline(true)
		}
		parts = append(parts, style.Render(label))
	}
	return "  " + strings.Join(parts, " ")
}

func (m Model) renderRow(i int, row app.Row) string {
	s := m.styles
	selected := m.region == RegionList && i == m.cursor

	prefix := "  "
	if selected {
		prefix = cursorMark + " "
	}

	box := uncheckedBox
	nameStyle := s.Row
	if row.Task.Completed {
		box = checkedBox
		nameStyle = s.Completed
	}
	if selected {
		nameStyle = nameStyle.Inherit(s.RowCursor)
	}

	line := prefix + box + " " + nameStyle.Render(truncateName(row.Task.Name, m.opts.NameWidth))
	if !row.Editing {
		return line
	}

	label := "New name for " + truncateName(row.Task.Name, m.opts.NameWidth) + ": "
	field := row.Draft
	if m.renaming == row.Task.ID {
		field = m.renameInput.View()
	}
	form := "    " + s.Rename.Render(label) + field + "  " + s.Muted.Render("enter save · esc cancel")
	return line + "\n" + form
}

// truncateName cuts name to width terminal cells, marking the cut with an ellipsis.
func truncateName(name string, width int) string {
	if width <= 0 || runewidth.StringWidth(name) <= width {
		return name
	}
	return runewidth.Truncate(name, width, ellipsis)
}
