// Package focus decides where keyboard focus goes after a list change.
//
// Two rules, each comparing the value committed by the current event against
// the value committed by the one before it:
//
//   - List shrink: when the task count drops by exactly one, focus the
//     results heading. Adds, batch deletes, and net-zero batches do nothing.
//   - Edit mode: per task row, entering edit mode focuses the rename input and
//     leaving it (save or cancel) focuses the row's Edit control.
package focus

import "github.com/rs/zerolog"

// Target names the element that should receive focus.
type Target int

// Focus targets.
const (
	// TargetNone means focus stays where it is.
	TargetNone Target = iota
	// TargetHeading is the "N tasks remaining" heading.
	TargetHeading
	// TargetEditInput is the rename text input of a row.
	TargetEditInput
	// TargetEditButton is the Edit control of a row.
	TargetEditButton
)

// String returns a short name for logs.
func (t Target) String() string {
	switch t {
	case TargetHeading:
		return "heading"
	case TargetEditInput:
		return "edit_input"
	case TargetEditButton:
		return "edit_button"
	default:
		return "none"
	}
}

// Signal asks the view to move focus. TaskID is empty for TargetHeading.
type Signal struct {
	Target Target
	TaskID string
}

// Coordinator holds the one-step memory for both rules.
type Coordinator struct {
	count   Watch[int]
	editing map[string]*Watch[bool]
	logger  zerolog.Logger
}

// NewCoordinator creates a Coordinator with no recorded history.
func NewCoordinator(logger zerolog.Logger) *Coordinator {
	return &Coordinator{
		editing: make(map[string]*Watch[bool]),
		logger:  logger.With().Str("component", "focus").Logger(),
	}
}

// ObserveCount records the committed task count and reports whether the
// heading should take focus.
func (c *Coordinator) ObserveCount(count int) (Signal, bool) {
	prev, seen := c.count.Observe(count)
	if !seen || count-prev != -1 {
		return Signal{}, false
	}
	c.logger.Debug().Int("previous", prev).Int("count", count).Msg("list shrank by one")
	return Signal{Target: TargetHeading}, true
}

// ObserveEditing records the committed editing flag of one row and reports
// the focus move caused by a transition. A row never observed before counts
// as not editing.
func (c *Coordinator) ObserveEditing(taskID string, editing bool) (Signal, bool) {
	w, ok := c.editing[taskID]
	if !ok {
		w = &Watch[bool]{}
		c.editing[taskID] = w
	}
	was, _ := w.Observe(editing)

	switch {
	case !was && editing:
		return c.signal(TargetEditInput, taskID), true
	case was && !editing:
		return c.signal(TargetEditButton, taskID), true
	default:
		return Signal{}, false
	}
}

// Forget drops the memory kept for a row that no longer exists.
func (c *Coordinator) Forget(taskID string) {
	delete(c.editing, taskID)
}

// Tracked returns the ids of rows with recorded editing history.
func (c *Coordinator) Tracked() []string {
	out := make([]string, 0, len(c.editing))
	for id := range c.editing {
		out = append(out, id)
	}
	return out
}

func (c *Coordinator) signal(target Target, taskID string) Signal {
	c.logger.Debug().Str("task_id", taskID).Stringer("target", target).Msg("edit focus moved")
	return Signal{Target: target, TaskID: taskID}
}
