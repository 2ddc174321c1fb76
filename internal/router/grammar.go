package router

import (
	"regexp"
	"strconv"
	"strings"

	"smart-task-scheduler/internal/model"
)

var (
	countIntoPattern   = regexp.MustCompile(`(?i)\binto\s+(\d+|two|three|four|five|six|seven|eight|nine|ten)\b`)
	countPartsPattern  = regexp.MustCompile(`(?i)\b(\d+|two|three|four|five|six|seven|eight|nine|ten)\s+(parts?|segments?|pieces?|sessions?|chunks?)\b`)
	breakPattern       = regexp.MustCompile(`(?i)\b(\d+)\s*-?\s*(m|min|mins|minutes?|h|hr|hrs|hours?)\s+(breaks?|pauses?|rests?|gaps?)\b`)
	breakOfPattern     = regexp.MustCompile(`(?i)\b(?:breaks?|pauses?)\s+of\s+(\d+)\s*(m|min|mins|minutes?|h|hr|hrs|hours?)\b`)
	noBreakPattern     = regexp.MustCompile(`(?i)\bno\s+breaks?\b|\bwithout\s+breaks?\b`)
	statusPattern      = regexp.MustCompile(`(?i)\b(complete|completed|done|finished|missed|skipped)\b`)
	segmentNumPattern  = regexp.MustCompile(`(?i)\b(?:segment|part|session)\s+#?(\d+)\b`)
	segmentOrdPattern  = regexp.MustCompile(`(?i)\b(\d+)(?:st|nd|rd|th)\s+(?:segment|part|session)\b`)
	segmentWordPattern = regexp.MustCompile(`(?i)\bsegment\b`)
	renamePattern      = regexp.MustCompile(`(?i)^\s*rename\s+(.+?)\s+(?:to|as)\s+(.+?)\s*$`)
	leadingVerbPattern = regexp.MustCompile(`(?i)^\s*(please\s+)?(edit|reschedule|move|change|update|rename|postpone|shift|mark|set|flag|delete|remove|cancel|drop|clear|split|divide|break\s+up|chunk|break|i\s+(?:finished|completed|missed|skipped)|finished|completed|missed|skipped)\s+`)

	targetNoise = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(all\s+)?(the\s+)?(segments|parts|sessions|splits)\s+(of|from|for|in)\b`),
		regexp.MustCompile(`(?i)\b(all\s+)?(the\s+)?(segments|parts|sessions|splits)\b`),
		regexp.MustCompile(`(?i)\b(the\s+)?(segment|part|session)\s+#?\d+\s+(of|from|in|for)\b`),
		regexp.MustCompile(`(?i)\b(the\s+)?\d+(st|nd|rd|th)\s+(segment|part|session)\s+(of|from|in|for)\b`),
		regexp.MustCompile(`(?i)\b(the\s+)?(segment|part|session)\s+(of|from|in|for)\b`),
		countIntoPattern,
		countPartsPattern,
		regexp.MustCompile(`(?i)\b(with\s+)?(a\s+)?\d+\s*-?\s*(m|min|mins|minutes?|h|hr|hrs|hours?)\s+(breaks?|pauses?|rests?|gaps?)\b`),
		regexp.MustCompile(`(?i)\b(with\s+)?(breaks?|pauses?)\s+of\s+\d+\s*(m|min|mins|minutes?|h|hr|hrs|hours?)\b`),
		regexp.MustCompile(`(?i)\b(with\s+)?(no|without)\s+breaks?\b`),
		regexp.MustCompile(`(?i)\b(as\s+)?(complete|completed|done|finished|missed|skipped)\b`),
		attributeWordPattern,
	}

	wordNumbers = map[string]int{
		"two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
		"seven": 7, "eight": 8, "nine": 9, "ten": 10,
	}
)

// SplitParams reads the segment count and break length of a split command.
// defaultBreak is used when no break is named.
func SplitParams(text string, defaultBreak int) SplitRequest {
	req := SplitRequest{BreakMinutes: defaultBreak}

	if m := countIntoPattern.FindStringSubmatch(text); m != nil {
		req.Count, req.HasCount = parseCount(m[1]), true
	} else if m := countPartsPattern.FindStringSubmatch(text); m != nil {
		req.Count, req.HasCount = parseCount(m[1]), true
	}

	switch {
	case noBreakPattern.MatchString(text):
		req.BreakMinutes, req.HasBreak = 0, true
	default:
		m := breakPattern.FindStringSubmatch(text)
		if m == nil {
			m = breakOfPattern.FindStringSubmatch(text)
		}
		if m != nil {
			n, _ := strconv.Atoi(m[1])
			if strings.HasPrefix(strings.ToLower(m[2]), "h") {
				n *= 60
			}
			req.BreakMinutes, req.HasBreak = n, true
		}
	}
	return req
}

func parseCount(s string) int {
	if n, ok := wordNumbers[strings.ToLower(s)]; ok {
		return n
	}
	n, _ := strconv.Atoi(s)
	return n
}

// StatusKeyword returns the status named last in text.
func StatusKeyword(text string) (model.Status, bool) {
	all := statusPattern.FindAllStringSubmatch(text, -1)
	if len(all) == 0 {
		return model.StatusPending, false
	}
	switch strings.ToLower(all[len(all)-1][1]) {
	case "missed", "skipped":
		return model.StatusMissed, true
	default:
		return model.StatusCompleted, true
	}
}

// SegmentNumber returns the 1-based segment number named in text ("segment 2", "2nd part").
func SegmentNumber(text string) (int, bool) {
	m := segmentNumPattern.FindStringSubmatch(text)
	if m == nil {
		m = segmentOrdPattern.FindStringSubmatch(text)
	}
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// MentionsSegment reports whether text refers to a single segment.
func MentionsSegment(text string) bool {
	return segmentWordPattern.MatchString(text)
}

// WithoutTitle removes the first case-insensitive, whole-word occurrence of
// title from text.
func WithoutTitle(text, title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return text
	}
	expr := `(?i)` + regexp.QuoteMeta(title)
	if isWordByte(title[0]) {
		expr = `(?i)\b` + regexp.QuoteMeta(title)
	}
	if isWordByte(title[len(title)-1]) {
		expr += `\b`
	}
	loc := regexp.MustCompile(expr).FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + " " + text[loc[1]:]
}

func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// RenameParts splits "rename <target> to <new title>".
func RenameParts(text string) (target, title string, ok bool) {
	m := renamePattern.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	target, title = tidy(m[1]), tidy(m[2])
	if target == "" || title == "" {
		return "", "", false
	}
	return target, Capitalize(title), true
}

// TargetPhrase reduces a command to the title it refers to: the leading verb,
// segment and split clauses, status and attribute keywords and (through strip)
// date and time phrases are removed.
func TargetPhrase(text string, strip func(string) string) string {
	phrase := leadingVerbPattern.ReplaceAllString(text, "")
	for _, p := range targetNoise {
		phrase = p.ReplaceAllString(phrase, " ")
	}
	if strip != nil {
		phrase = strip(phrase)
	}
	return strings.TrimPrefix(tidy(phrase), "the ")
}
