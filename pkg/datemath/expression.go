package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	rangePattern = regexp.MustCompile(`(?i)(?:\bfrom\s+)?\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*(?:-|–|—|\bto\b|\buntil\b)\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

	monthDayPattern = regexp.MustCompile(`(?i)\b(?:on\s+)?(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s+(\d{4})\b)?`)

	relativeDayPattern = regexp.MustCompile(`(?i)\b(day after tomorrow|tomorrow|today|tonight)\b`)

	relativePhrasePattern = regexp.MustCompile(`(?i)\b(next\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|in\s+\d+\s+(?:days?|weeks?|months?))\b`)

	clockPattern = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:[ap]m\b|[ap]\.m\.)|\b\d{1,2}:\d{2}\b|\b(?:noon|midnight|midday)\b`)

	clockFillerPattern = regexp.MustCompile(`(?i)\b(?:at|by|to|until|till|around|about|o'?clock)\b`)

	months = map[string]time.Month{
		"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
		"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
		"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
	}
)

// ParseRange resolves a "<day> <H-H>" expression to an absolute range.
func (p *Parser) ParseRange(text string, now time.Time, opts RangeOptions) (Range, error) {
	now = now.In(p.location)

	loc := findRange(text)
	if loc == nil {
		return Range{}, ErrNoTimeRange
	}
	clock, err := parseClockRange(text, loc)
	if err != nil {
		return Range{}, err
	}

	rest := text[:loc[0]] + " " + text[loc[1]:]
	day, _, hasDate, err := p.findDate(rest, now)
	if err != nil {
		return Range{}, err
	}
	if !hasDate {
		day = p.startOfDay(now)
		if !opts.BaseDay.IsZero() {
			day = p.startOfDay(opts.BaseDay)
		}
	}

	r := Range{
		Start:   time.Date(day.Year(), day.Month(), day.Day(), 0, clock.startMin, 0, 0, p.location),
		End:     time.Date(day.Year(), day.Month(), day.Day(), 0, clock.endMin, 0, 0, p.location),
		HasDate: hasDate,
	}
	if !r.End.After(r.Start) {
		return Range{}, ErrInvalidRange
	}
	if opts.RequireFuture && !r.Start.After(now) {
		return Range{}, ErrStartInPast
	}
	return r, nil
}

// ParseDate finds a day phrase in text and returns the start of that day.
// ok is false when the text names no day.
func (p *Parser) ParseDate(text string, now time.Time) (day time.Time, ok bool, err error) {
	if loc := findRange(text); loc != nil {
		text = text[:loc[0]] + " " + text[loc[1]:]
	}
	day, _, ok, err = p.findDate(text, now.In(p.location))
	return day, ok, err
}

// HasTimeRange reports whether text contains a time-of-day range.
func (p *Parser) HasTimeRange(text string) bool {
	return rangePattern.MatchString(text)
}

// HasClockTime reports whether text names a time of day ("5pm", "17:30", "noon")
// outside any time range.
func (p *Parser) HasClockTime(text string) bool {
	if loc := findRange(text); loc != nil {
		text = text[:loc[0]] + " " + text[loc[1]:]
	}
	return clockPattern.MatchString(text)
}

// Strip removes the recognized time range, day phrase and clock times from text.
func (p *Parser) Strip(text string) string {
	if loc := findRange(text); loc != nil {
		text = text[:loc[0]] + " " + text[loc[1]:]
	}
	if _, matched, ok, _ := p.findDate(text, time.Now().In(p.location)); ok && matched != "" {
		text = strings.Replace(text, matched, " ", 1)
	}
	text = clockPattern.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// findDate returns the day named in text, the matched substring and whether one was found.
func (p *Parser) findDate(text string, now time.Time) (time.Time, string, bool, error) {
	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		day, err := p.monthDay(m, now)
		if err != nil {
			return time.Time{}, "", false, err
		}
		return day, m[0], true, nil
	}

	if m := relativeDayPattern.FindString(text); m != "" {
		day, err := p.Parse(m, now)
		return day, m, err == nil, err
	}

	if m := relativePhrasePattern.FindString(text); m != "" {
		day, err := p.Parse(strings.Join(strings.Fields(m), " "), now)
		return day, m, err == nil, err
	}

	r, err := p.fallback.Parse(text, now)
	if err != nil || r == nil || clockOnly(r.Text) {
		return time.Time{}, "", false, nil
	}
	return p.startOfDay(r.Time), r.Text, true, nil
}

// clockOnly reports whether a free-form match names a time of day and no day.
func clockOnly(matched string) bool {
	rest := clockPattern.ReplaceAllString(matched, " ")
	rest = clockFillerPattern.ReplaceAllString(rest, " ")
	return strings.IndexFunc(rest, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) < 0
}

func (p *Parser) monthDay(m []string, now time.Time) (time.Time, error) {
	month := months[strings.ToLower(m[1])[:3]]
	dayNum, _ := strconv.Atoi(m[2])

	year := now.Year()
	explicitYear := m[3] != ""
	if explicitYear {
		year, _ = strconv.Atoi(m[3])
	}

	day := time.Date(year, month, dayNum, 0, 0, 0, 0, p.location)
	if day.Month() != month || day.Day() != dayNum {
		return time.Time{}, ErrInvalidDate
	}
	if !explicitYear && day.Before(p.startOfDay(now)) {
		day = day.AddDate(1, 0, 0)
		if day.Month() != month {
			return time.Time{}, ErrInvalidDate
		}
	}
	return day, nil
}

// findRange picks the last range carrying a meridiem, or the last range when none does.
func findRange(text string) []int {
	all := rangePattern.FindAllStringSubmatchIndex(text, -1)
	if len(all) == 0 {
		return nil
	}
	for i := len(all) - 1; i >= 0; i-- {
		if all[i][6] >= 0 || all[i][12] >= 0 {
			return all[i]
		}
	}
	return all[len(all)-1]
}

func parseClockRange(text string, loc []int) (clockRange, error) {
	group := func(i int) string {
		if loc[2*i] < 0 {
			return ""
		}
		return strings.ToLower(text[loc[2*i]:loc[2*i+1]])
	}

	sh, _ := strconv.Atoi(group(1))
	sm, _ := strconv.Atoi(group(2))
	smer := group(3)
	eh, _ := strconv.Atoi(group(4))
	em, _ := strconv.Atoi(group(5))
	emer := group(6)

	if sm > 59 || em > 59 || !validHour(sh, smer) || !validHour(eh, emer) {
		return clockRange{}, ErrInvalidRange
	}

	if smer == "" && emer == "" {
		return bareClockRange(sh, sm, eh, em)
	}

	startBorrowed := smer == "" && sh <= 12
	endBorrowed := emer == "" && eh <= 12
	if startBorrowed {
		smer = emer
	}
	if endBorrowed {
		emer = smer
	}

	start := to24(sh, smer)*60 + sm
	end := to24(eh, emer)*60 + em
	if end <= start && startBorrowed {
		start = to24(sh, flip(smer))*60 + sm
	}
	if end <= start && endBorrowed {
		end = to24(eh, flip(emer))*60 + em
	}
	if end == start {
		return clockRange{}, ErrInvalidRange
	}
	if end < start {
		end += 24 * 60
	}
	return clockRange{startMin: start, endMin: end}, nil
}

// bareClockRange reads "2-4" in business hours: early hours are afternoon.
func bareClockRange(sh, sm, eh, em int) (clockRange, error) {
	if sh >= 1 && sh <= 7 {
		sh += 12
		if eh >= 1 && eh < 12 {
			eh += 12
		}
	}
	start := sh*60 + sm
	end := eh*60 + em
	if end <= start {
		end += 12 * 60
	}
	if end <= start || end > 24*60 {
		return clockRange{}, ErrInvalidRange
	}
	return clockRange{startMin: start, endMin: end}, nil
}

func validHour(h int, meridiem string) bool {
	if meridiem == "" {
		return h >= 0 && h <= 23
	}
	return h >= 1 && h <= 12
}

func to24(h int, meridiem string) int {
	switch meridiem {
	case "am":
		return h % 12
	case "pm":
		return h%12 + 12
	}
	return h
}

func flip(meridiem string) string {
	if meridiem == "am" {
		return "pm"
	}
	return "am"
}
