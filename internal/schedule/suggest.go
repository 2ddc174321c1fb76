package schedule

import (
	"time"

	"smart-task-scheduler/internal/model"
)

// Suggest proposes three alternative slots of the given duration: right after
// the latest conflict (or now if later), one hour after that, and 08:00 the
// next calendar day in loc.
func Suggest(conflicts []model.Event, duration time.Duration, now time.Time, loc *time.Location) []Suggestion {
	first := now
	for _, c := range conflicts {
		if c.End.After(first) {
			first = c.End
		}
	}

	local := now.In(loc)
	tomorrow := time.Date(local.Year(), local.Month(), local.Day()+1, 8, 0, 0, 0, loc)

	starts := []struct {
		at   time.Time
		hint string
	}{
		{first, HintAfterConflict},
		{first.Add(time.Hour), HintPlusHour},
		{tomorrow, HintTomorrow},
	}

	suggestions := make([]Suggestion, 0, SuggestionCount)
	for _, s := range starts {
		end := s.at.Add(duration)
		suggestions = append(suggestions, Suggestion{
			Start: s.at,
			End:   end,
			Label: Label(s.at, end, loc),
			Hint:  s.hint,
		})
	}
	return suggestions
}

// Label formats an interval as "Nov 12, 2:00 PM – 4:00 PM", repeating the
// date on the end side when the interval crosses midnight.
func Label(start, end time.Time, loc *time.Location) string {
	start, end = start.In(loc), end.In(loc)
	if sameDay(start, end) {
		return start.Format(labelDayLayout) + " – " + end.Format(labelTimeLayout)
	}
	return start.Format(labelDayLayout) + " – " + end.Format(labelDayLayout)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
