package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Rule names
const (
	RuleProductivity   = "productivity"
	RuleAdd            = "add"
	RuleEdit           = "edit"
	RuleMark           = "mark"
	RuleDeleteSegments = "delete-segments"
	RuleDelete         = "delete"
	RuleSplit          = "split"
	RuleSchedule       = "schedule"
)

// UntitledTask is the title used when nothing is left after stripping a command.
const UntitledTask = "Untitled task"

// HelpMessage is returned for commands no rule recognizes.
const HelpMessage = `I didn't understand that. Try one of:
- add task <title> <date> <start>-<end> [urgent] [important] [hard|easy]
- reschedule <title> to <date> <start>-<end>
- rename <title> to <new title>
- mark <title> completed | missed
- mark segment <n> of <title> done
- delete <title>
- delete segments of <title>
- split <title> into <n> with <m>m breaks
- what's on my schedule today | tomorrow | this week
- what's my productivity`
