package router

import (
	"strings"

	"golang.org/x/text/cases"

	"smart-task-scheduler/internal/model"
)

// ResolveTarget finds the event a title phrase refers to. An exact
// case-insensitive title match wins; otherwise any title containing the phrase
// or all of its words matches. Among matches the most recently started wins.
func ResolveTarget(events []model.Event, phrase string) (model.Event, bool) {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(phrase))
	if want == "" {
		return model.Event{}, false
	}
	tokens := strings.Fields(want)

	var exact, partial []model.Event
	for _, e := range events {
		title := fold.String(e.Title)
		switch {
		case title == want:
			exact = append(exact, e)
		case strings.Contains(title, want), containsAll(strings.Fields(title), tokens):
			partial = append(partial, e)
		}
	}

	if e, ok := latest(exact); ok {
		return e, true
	}
	return latest(partial)
}

func containsAll(words, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	for _, t := range tokens {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}

func latest(events []model.Event) (model.Event, bool) {
	if len(events) == 0 {
		return model.Event{}, false
	}
	best := events[0]
	for _, e := range events[1:] {
		if e.Start.After(best.Start) {
			best = e
		}
	}
	return best, true
}
