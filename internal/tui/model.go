package tui

import (
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/mrz1836/tasklist/internal/app"
	"github.com/mrz1836/tasklist/internal/constants"
	"github.com/mrz1836/tasklist/internal/domain"
	"github.com/mrz1836/tasklist/internal/errors"
	"github.com/mrz1836/tasklist/internal/focus"
)

// Region is a focusable part of the screen.
type Region int

// Focus regions in tab order.
const (
	RegionAdd Region = iota
	RegionFilters
	RegionHeading
	RegionList
	regionCount
)

// String returns the region name used in logs.
func (r Region) String() string {
	switch r {
	case RegionAdd:
		return "add"
	case RegionFilters:
		return "filters"
	case RegionHeading:
		return "heading"
	case RegionList:
		return "list"
	default:
		return "unknown"
	}
}

// Options configures the task list screen.
type Options struct {
	// AltScreen renders in the terminal's alternate screen buffer.
	AltScreen bool
	// NameWidth is the display width task names are truncated to.
	NameWidth int
	// ShowHelp starts with the full key help expanded.
	ShowHelp bool
	// StatusTimeout is how long a status line stays visible. Zero keeps it until replaced.
	StatusTimeout time.Duration
	// Logger receives debug output. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// clearStatusMsg hides the status line set with the matching sequence number.
type clearStatusMsg struct {
	seq int
}

// Model is the bubbletea model of the task list screen.
type Model struct {
	app    *app.App
	opts   Options
	keys   keyMap
	help   help.Model
	styles *Styles
	logger zerolog.Logger

	addInput    textinput.Model
	renameInput textinput.Model

	region       Region
	cursor       int
	filterCursor int
	// renaming is the id of the row bound to renameInput, empty when no
	// rename form has keyboard focus.
	renaming string

	status    string
	statusErr bool
	statusSeq int

	width    int
	quitting bool
}

// New creates the screen model over a. Focus starts in the add input.
func New(a *app.App, opts Options) Model {
	if opts.NameWidth <= 0 {
		opts.NameWidth = constants.DefaultNameWidth
	}

	h := help.New()
	h.ShowAll = opts.ShowHelp

	addInput := textinput.New()
	addInput.Prompt = "> "
	addInput.Placeholder = "What needs to be done?"
	addInput.CharLimit = constants.NameCharLimit

	renameInput := textinput.New()
	renameInput.Prompt = ""
	renameInput.CharLimit = constants.NameCharLimit

	m := Model{
		app:         a,
		opts:        opts,
		keys:        newKeyMap(),
		help:        h,
		styles:      NewStyles(),
		logger:      opts.Logger.With().Str("component", "tui").Logger(),
		addInput:    addInput,
		renameInput: renameInput,
		region:      RegionAdd,
	}
	m.filterCursor = m.activeFilterIndex()
	m.addInput.Focus()
	return m
}

// Init implements tea.Model. It starts the add input's cursor.
func (m Model) Init() tea.Cmd {
	return m.addInput.Focus()
}

// Region returns the focused region.
func (m Model) Region() Region {
	return m.region
}

// Cursor returns the index of the selected visible row.
func (m Model) Cursor() int {
	return m.cursor
}

// Renaming returns the id of the row whose rename form has keyboard focus.
func (m Model) Renaming() string {
	return m.renaming
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input messages go to the focused text input.
	var cmd tea.Cmd
	switch {
	case m.region == RegionAdd:
		m.addInput, cmd = m.addInput.Update(msg)
	case m.renaming != "":
		m.renameInput, cmd = m.renameInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	switch {
	case m.region == RegionAdd:
		return m.handleAddKey(msg)
	case m.renaming != "":
		return m.handleRenameKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextRegion):
		return m, m.setRegion(m.region + 1)
	case key.Matches(msg, m.keys.PrevRegion):
		return m, m.setRegion(m.region - 1)
	case key.Matches(msg, m.keys.AddFocus):
		return m, m.setRegion(RegionAdd)
	case key.Matches(msg, m.keys.FilterAll):
		return m, m.selectFilter(0)
	case key.Matches(msg, m.keys.FilterAct):
		return m, m.selectFilter(1)
	case key.Matches(msg, m.keys.FilterDone):
		return m, m.selectFilter(2)
	}

	switch m.region {
	case RegionFilters:
		return m.handleFilterKey(msg)
	case RegionList:
		return m.handleListKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleAddKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		name := m.addInput.Value()
		task, err := m.app.AddTask(name)
		if err != nil {
			return m, m.setError(err)
		}
		m.addInput.Reset()
		m.logger.Debug().Str("task_id", task.ID).Msg("task added from input")
		return m, m.commit()
	case key.Matches(msg, m.keys.Cancel):
		return m, m.setRegion(RegionList)
	case key.Matches(msg, m.keys.NextRegion):
		return m, m.setRegion(m.region + 1)
	case key.Matches(msg, m.keys.PrevRegion):
		return m, m.setRegion(m.region - 1)
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m Model) handleRenameKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	id := m.renaming

	switch {
	case key.Matches(msg, m.keys.Save):
		m.app.SetDraft(id, m.renameInput.Value())
		if err := m.app.SaveEdit(id); err != nil {
			return m, m.setError(err)
		}
		return m, m.commit()
	case key.Matches(msg, m.keys.Cancel):
		m.app.CancelEdit(id)
		return m, m.commit()
	case key.Matches(msg, m.keys.RowUp):
		m.unbindRename()
		m.moveCursor(-1)
		return m, m.syncRename()
	case key.Matches(msg, m.keys.RowDown):
		m.unbindRename()
		m.moveCursor(1)
		return m, m.syncRename()
	case key.Matches(msg, m.keys.NextRegion):
		return m, m.setRegion(m.region + 1)
	case key.Matches(msg, m.keys.PrevRegion):
		return m, m.setRegion(m.region - 1)
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	m.app.SetDraft(id, m.renameInput.Value())
	return m, cmd
}

func (m Model) handleFilterKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	n := len(domain.FilterNames())
	switch {
	case key.Matches(msg, m.keys.Left):
		m.filterCursor = (m.filterCursor + n - 1) % n
	case key.Matches(msg, m.keys.Right):
		m.filterCursor = (m.filterCursor + 1) % n
	case key.Matches(msg, m.keys.Select):
		return m, m.selectFilter(m.filterCursor)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, m.syncRename()
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, m.syncRename()
	}

	id, ok := m.currentID()
	if !ok {
		return m, nil
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.Toggle):
		err = m.app.ToggleTask(id)
	case key.Matches(msg, m.keys.Edit):
		m.app.StartEdit(id)
	case key.Matches(msg, m.keys.Delete):
		err = m.app.DeleteTask(id)
	default:
		return m, nil
	}
	if err != nil {
		return m, m.setError(err)
	}
	return m, m.commit()
}

// commit runs the render step and moves focus as the returned signals ask.
func (m *Model) commit() tea.Cmd {
	signals := m.app.Commit()
	m.clampCursor()

	var cmds []tea.Cmd
	for _, sig := range signals {
		cmds = append(cmds, m.applySignal(sig))
	}
	if m.region == RegionList {
		cmds = append(cmds, m.syncRename())
	} else {
		m.unbindRename()
	}
	return tea.Batch(cmds...)
}

func (m *Model) applySignal(sig focus.Signal) tea.Cmd {
	m.logger.Debug().
		Str("target", sig.Target.String()).
		Str("task_id", sig.TaskID).
		Msg("applying focus signal")

	switch sig.Target {
	case focus.TargetHeading:
		return m.setRegion(RegionHeading)
	case focus.TargetEditInput:
		m.region = RegionList
		m.addInput.Blur()
		m.cursorTo(sig.TaskID)
		return m.bindRename(sig.TaskID)
	case focus.TargetEditButton:
		m.region = RegionList
		m.addInput.Blur()
		m.cursorTo(sig.TaskID)
		m.unbindRename()
		return nil
	default:
		return nil
	}
}

// setRegion moves focus to r, wrapping around at either end.
func (m *Model) setRegion(r Region) tea.Cmd {
	r = (r%regionCount + regionCount) % regionCount
	m.region = r

	m.addInput.Blur()
	m.unbindRename()

	switch r {
	case RegionAdd:
		return m.addInput.Focus()
	case RegionList:
		return m.syncRename()
	default:
		return nil
	}
}

// syncRename gives keyboard focus to the rename form of the row under the
// cursor when that row is being edited.
func (m *Model) syncRename() tea.Cmd {
	rows := m.app.View().Rows
	if m.region != RegionList || m.cursor >= len(rows) || !rows[m.cursor].Editing {
		m.unbindRename()
		return nil
	}
	return m.bindRename(rows[m.cursor].Task.ID)
}

func (m *Model) bindRename(id string) tea.Cmd {
	if m.renaming == id && m.renameInput.Focused() {
		return nil
	}
	m.renaming = id
	m.renameInput.SetValue(m.app.Draft(id))
	m.renameInput.CursorEnd()
	return m.renameInput.Focus()
}

func (m *Model) unbindRename() {
	m.renaming = ""
	m.renameInput.Blur()
}

func (m *Model) selectFilter(idx int) tea.Cmd {
	names := domain.FilterNames()
	if idx < 0 || idx >= len(names) {
		return nil
	}
	m.filterCursor = idx
	m.app.SetFilter(names[idx])
	return m.commit()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.app.View().Rows)
	switch {
	case n == 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	case m.cursor < 0:
		m.cursor = 0
	}
}

func (m *Model) cursorTo(id string) {
	for i, row := range m.app.View().Rows {
		if row.Task.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m Model) currentID() (string, bool) {
	rows := m.app.View().Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return "", false
	}
	return rows[m.cursor].Task.ID, true
}

func (m Model) activeFilterIndex() int {
	active := m.app.Store().Filter()
	for i, f := range domain.FilterNames() {
		if f == active {
			return i
		}
	}
	return 0
}

// setError shows err on the status line using its user-facing message.
func (m *Model) setError(err error) tea.Cmd {
	m.logger.Debug().Err(err).Msg("operation rejected")
	msg, action := errors.Actionable(err)
	if action != "" {
		msg += " " + action
	}
	return m.setStatus(msg, true)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	if m.opts.StatusTimeout <= 0 {
		return nil
	}
	seq := m.statusSeq
	return tea.Tick(m.opts.StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.addInput.Blur()
	m.unbindRename()
	return m, tea.Quit
}
