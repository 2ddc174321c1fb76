package router

import (
	"context"
	"regexp"
	"strings"
)

var (
	productivityPattern = regexp.MustCompile(`\b(productivity|productive|stats|statistics)\b|\b(weekly|my|week)\s+report\b`)
	addPattern          = regexp.MustCompile(`^(add|create|new)\b`)
	editPattern         = regexp.MustCompile(`^(edit|reschedule|move|change|update|rename|postpone|shift)\b`)
	markVerbPattern     = regexp.MustCompile(`^(mark|set|flag)\b`)
	statusWordPattern   = regexp.MustCompile(`\b(complete|completed|done|finished|missed|skipped)\b`)
	markDirectPattern   = regexp.MustCompile(`^(i\s+)?(finished|completed|missed|skipped)\b`)
	deletePattern       = regexp.MustCompile(`^(delete|remove|cancel|drop|clear)\b`)
	segmentsWordPattern = regexp.MustCompile(`\b(segments|parts|sessions|splits)\b`)
	splitPattern        = regexp.MustCompile(`^(split|divide|break up|chunk)\b|^break\s+.+\s+into\b`)
	schedulePattern     = regexp.MustCompile(`\b(schedule|agenda|calendar|upcoming|what do i have|what's on|whats on|what is on)\b|^(show|list)\b|^(today|tomorrow|this week)\??$`)
	punctuationPattern  = regexp.MustCompile(`[.!?]+$`)
)

func defaultRules() []rule {
	return []rule{
		{name: RuleProductivity, intent: IntentProductivity, matches: matchAny(productivityPattern)},
		{name: RuleAdd, intent: IntentAddTask, matches: matchAny(addPattern)},
		{name: RuleEdit, intent: IntentEditTask, matches: matchAny(editPattern)},
		{name: RuleMark, intent: IntentMark, matches: func(text string) bool {
			return matchAll(markVerbPattern, statusWordPattern)(text) || markDirectPattern.MatchString(text)
		}},
		{name: RuleDeleteSegments, intent: IntentDeleteSegments, matches: matchAll(deletePattern, segmentsWordPattern)},
		{name: RuleDelete, intent: IntentDeleteTask, matches: matchAny(deletePattern)},
		{name: RuleSplit, intent: IntentSplitTask, matches: matchAny(splitPattern)},
		{name: RuleSchedule, intent: IntentSchedule, matches: matchAny(schedulePattern)},
	}
}

// Normalize lowercases a command and collapses whitespace and trailing punctuation.
func Normalize(message string) string {
	text := strings.ToLower(strings.Join(strings.Fields(message), " "))
	return strings.TrimSpace(punctuationPattern.ReplaceAllString(text, ""))
}

// Classify determines the intent of a command
func (r *RuleRouter) Classify(ctx context.Context, message string) RouterOutput {
	text := Normalize(message)
	for _, rl := range r.rules {
		if rl.matches(text) {
			r.l.Debugf(ctx, "%s: %q matched rule %s", LogPrefixClassify, text, rl.name)
			return RouterOutput{Intent: rl.intent, Rule: rl.name, Text: text}
		}
	}

	r.l.Debugf(ctx, "%s: %q matched no rule", LogPrefixClassify, text)
	return RouterOutput{Intent: IntentUnknown, Text: text}
}
