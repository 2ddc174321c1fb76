package router

// Intent represents the action a command maps to.
type Intent string

const (
	IntentAddTask          Intent = "ADD_TASK"
	IntentAddTaskConflict  Intent = "ADD_TASK_CONFLICT"
	IntentEditTask         Intent = "EDIT_TASK"
	IntentEditTaskConflict Intent = "EDIT_TASK_CONFLICT"
	IntentDeleteTask       Intent = "DELETE_TASK"
	IntentDeleteSegments   Intent = "DELETE_SEGMENTS"
	IntentMark             Intent = "MARK"
	IntentMarkSegment      Intent = "MARK_SEGMENT"
	IntentSplitTask        Intent = "SPLIT_TASK"
	IntentProductivity     Intent = "PRODUCTIVITY"
	IntentSchedule         Intent = "SCHEDULE"
	IntentUnknown          Intent = "UNKNOWN"
)

// RouterOutput is the classification of one command.
type RouterOutput struct {
	Intent Intent `json:"intent"`
	// Rule is the name of the rule that matched, empty for unknown.
	Rule string `json:"rule,omitempty"`
	// Text is the normalized command the rule was matched against.
	Text string `json:"text"`
}

// SplitRequest is the count and break length named in a split command.
type SplitRequest struct {
	Count        int
	BreakMinutes int
	HasCount     bool
	HasBreak     bool
}
