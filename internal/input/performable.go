package input

// ActionContext supplies the state the performable predicate needs:
// whether a selection exists, and the current window/pane counts used
// to bound switch_window/cycle_window/focus_pane (spec §4.4
// "Performable predicate").
type ActionContext interface {
	HasSelection() bool
	WindowCount() int
	PaneCount() int
}

// CanPerform implements the performable predicate. Only
// copy_to_clipboard, switch_window, cycle_window, and focus_pane ever
// return false; every other action is always performable.
func CanPerform(a Action, ctx ActionContext) bool {
	switch a.Kind {
	case ActionCopyToClipboard:
		return ctx.HasSelection()
	case ActionSwitchWindow:
		return a.Index >= 1 && a.Index <= ctx.WindowCount()
	case ActionCycleWindow:
		return ctx.WindowCount() >= 2
	case ActionFocusPane:
		return ctx.PaneCount() >= 2
	default:
		return true
	}
}
