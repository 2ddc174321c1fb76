package router

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"smart-task-scheduler/internal/model"
)

var (
	notUrgentPattern     = regexp.MustCompile(`(?i)\bnot\s+urgent\b`)
	urgentPattern        = regexp.MustCompile(`(?i)\burgent(ly)?\b`)
	notImportantPattern  = regexp.MustCompile(`(?i)\bnot\s+important\b|\bunimportant\b`)
	somewhatPattern      = regexp.MustCompile(`(?i)\bsomewhat\s+important\b`)
	importantPattern     = regexp.MustCompile(`(?i)\bimportant\b`)
	hardPattern          = regexp.MustCompile(`(?i)\b(hard|difficult)\b`)
	easyPattern          = regexp.MustCompile(`(?i)\beasy\b`)
	mediumPattern        = regexp.MustCompile(`(?i)\bmedium\b`)
	attributeWordPattern = regexp.MustCompile(`(?i)\b(not\s+|somewhat\s+)?(urgent(ly)?|important|unimportant|hard|difficult|easy|medium)\b`)

	addVerbPattern     = regexp.MustCompile(`(?i)^\s*(please\s+)?(add|create|new)\s+(a\s+)?(new\s+)?((task|event)\s+)?`)
	connectorPattern   = regexp.MustCompile(`(?i)^(on|at|from|for|by|to|and|with|as)\s+|\s+(on|at|from|for|by|to|and|with|as)$`)
	taskWordPattern    = regexp.MustCompile(`(?i)^(task|event)\s+`)
	trailingCommaOrDot = regexp.MustCompile(`^[\s,;:\-]+|[\s,;:\-]+$`)
)

// Attributes are the importance, urgency and difficulty named in a command.
// The Set flags tell an explicit keyword apart from a default.
type Attributes struct {
	Importance    model.Importance
	Urgency       model.Urgency
	Difficulty    model.Difficulty
	ImportanceSet bool
	UrgencySet    bool
	DifficultySet bool
}

// ExtractAttributes maps attribute keywords to enum values. Absent keywords
// give low importance, low urgency and medium difficulty.
func ExtractAttributes(text string) Attributes {
	a := Attributes{
		Importance: model.ImportanceLow,
		Urgency:    model.UrgencyLow,
		Difficulty: model.DifficultyMedium,
	}

	switch {
	case notUrgentPattern.MatchString(text):
		a.UrgencySet = true
	case urgentPattern.MatchString(text):
		a.Urgency, a.UrgencySet = model.UrgencyHigh, true
	}

	switch {
	case notImportantPattern.MatchString(text), somewhatPattern.MatchString(text):
		a.ImportanceSet = true
	case importantPattern.MatchString(text):
		a.Importance, a.ImportanceSet = model.ImportanceHigh, true
	}

	switch {
	case hardPattern.MatchString(text):
		a.Difficulty, a.DifficultySet = model.DifficultyHard, true
	case easyPattern.MatchString(text):
		a.Difficulty, a.DifficultySet = model.DifficultyEasy, true
	case mediumPattern.MatchString(text):
		a.DifficultySet = true
	}
	return a
}

// Any reports whether any attribute keyword was present.
func (a Attributes) Any() bool {
	return a.ImportanceSet || a.UrgencySet || a.DifficultySet
}

// Apply overwrites the explicitly named attributes of e.
func (a Attributes) Apply(e *model.Event) {
	if a.ImportanceSet {
		e.Importance = a.Importance
	}
	if a.UrgencySet {
		e.Urgency = a.Urgency
	}
	if a.DifficultySet {
		e.Difficulty = a.Difficulty
	}
}

// ExtractTitle strips the add verb, date and time phrases (through strip) and
// attribute keywords from text, then capitalizes what remains.
func ExtractTitle(text string, strip func(string) string) string {
	title := addVerbPattern.ReplaceAllString(text, "")
	if strip != nil {
		title = strip(title)
	}
	title = attributeWordPattern.ReplaceAllString(title, " ")
	title = tidy(title)
	if title == "" {
		return UntitledTask
	}
	return Capitalize(title)
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// tidy collapses whitespace and peels dangling connector words off both ends.
func tidy(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	for {
		next := trailingCommaOrDot.ReplaceAllString(s, "")
		next = connectorPattern.ReplaceAllString(next, "")
		next = taskWordPattern.ReplaceAllString(next, "")
		next = strings.TrimSpace(next)
		if next == s {
			return s
		}
		s = next
	}
}
