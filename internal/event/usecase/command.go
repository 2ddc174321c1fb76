package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/event/repository"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/router"
	"smart-task-scheduler/internal/schedule"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/metrics"
)

// HandleCommand classifies a text command and runs the handler for its intent.
func (uc *implUseCase) HandleCommand(ctx context.Context, sc model.Scope, input event.CommandInput) (event.CommandOutput, error) {
	if sc.UserID == "" {
		return event.CommandOutput{}, event.ErrMissingOwner
	}
	raw := strings.TrimSpace(input.Text)
	if raw == "" {
		return event.CommandOutput{}, event.ErrEmptyCommand
	}

	route := uc.router.Classify(ctx, raw)
	handle, ok := uc.handlers[route.Intent]
	if !ok {
		handle = uc.handleUnknown
	}

	out, err := handle(ctx, sc, command{raw: raw, text: route.Text})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.HandleCommand: intent=%s: %v", route.Intent, err)
		return event.CommandOutput{}, err
	}
	metrics.CommandHandled(string(out.Intent), out.Success)

	uc.l.Infof(ctx, "event.usecase.HandleCommand: user=%s intent=%s success=%t", sc.UserID, out.Intent, out.Success)
	return out, nil
}

// fail builds an unsuccessful output from a recoverable error, or passes the
// error through when it is not recoverable.
func fail(intent router.Intent, err error) (event.CommandOutput, error) {
	msg, ok := clarify(err)
	if !ok {
		return event.CommandOutput{}, err
	}
	return event.CommandOutput{Intent: intent, Message: msg}, nil
}

func notFound(intent router.Intent, phrase string) event.CommandOutput {
	if phrase == "" {
		return event.CommandOutput{Intent: intent, Message: event.ErrTitleRequired.Error() + ". Include the task title."}
	}
	return event.CommandOutput{Intent: intent, Message: fmt.Sprintf("I couldn't find a task matching %s.", quote(phrase))}
}

func (uc *implUseCase) handleUnknown(_ context.Context, _ model.Scope, _ command) (event.CommandOutput, error) {
	return event.CommandOutput{Intent: router.IntentUnknown, Message: router.HelpMessage}, nil
}

func (uc *implUseCase) handleAdd(ctx context.Context, sc model.Scope, cmd command) (event.CommandOutput, error) {
	rng, err := uc.dateMath.ParseRange(cmd.raw, uc.now(), datemath.RangeOptions{RequireFuture: true})
	if err != nil {
		return fail(router.IntentAddTask, err)
	}

	attrs := router.ExtractAttributes(cmd.raw)
	input := event.CreateInput{
		Title:      router.ExtractTitle(cmd.raw, uc.dateMath.Strip),
		Start:      rng.Start,
		End:        rng.End,
		Importance: attrs.Importance,
		Urgency:    attrs.Urgency,
		Difficulty: attrs.Difficulty,
	}

	created, err := uc.Create(ctx, sc, input)
	if errors.Is(err, event.ErrConflict) {
		candidate := model.Event{
			Title:      input.Title,
			Start:      input.Start,
			End:        input.End,
			Importance: input.Importance,
			Urgency:    input.Urgency,
			Difficulty: input.Difficulty,
			OwnerID:    sc.UserID,
		}
		return event.CommandOutput{
			Intent:  router.IntentAddTaskConflict,
			Message: uc.conflictMessage(candidate, created.Conflicts, created.Suggestions),
			Payload: event.CommandPayload{
				Candidate:   &candidate,
				Conflicts:   created.Conflicts,
				Suggestions: created.Suggestions,
			},
		}, nil
	}
	if err != nil {
		return fail(router.IntentAddTask, err)
	}

	e := created.Event
	return event.CommandOutput{
		Intent:  router.IntentAddTask,
		Success: true,
		Message: fmt.Sprintf("Added %s on %s.", quote(e.Title), uc.label(e.Start, e.End)),
		Payload: event.CommandPayload{Event: &e},
	}, nil
}

func (uc *implUseCase) handleEdit(ctx context.Context, sc model.Scope, cmd command) (event.CommandOutput, error) {
	phrase, newTitle, renaming := router.RenameParts(cmd.raw)
	if !renaming {
		phrase = router.TargetPhrase(cmd.text, uc.dateMath.Strip)
	}

	target, ok, err := uc.resolveTarget(ctx, sc, phrase)
	if err != nil {
		return event.CommandOutput{}, err
	}
	if !ok {
		return notFound(router.IntentEditTask, phrase), nil
	}

	input := event.UpdateInput{ID: target.ID}
	if renaming {
		input.Title = &newTitle
	} else {
		edited := target
		attrs := router.ExtractAttributes(router.WithoutTitle(cmd.text, target.Title))
		attrs.Apply(&edited)
		if attrs.ImportanceSet {
			input.Importance = &edited.Importance
		}
		if attrs.UrgencySet {
			input.Urgency = &edited.Urgency
		}
		if attrs.DifficultySet {
			input.Difficulty = &edited.Difficulty
		}

		start, end, moved, err := uc.editedInterval(router.WithoutTitle(cmd.raw, target.Title), target)
		if err != nil {
			return fail(router.IntentEditTask, err)
		}
		if moved {
			input.Start, input.End = &start, &end
		}

		if !moved && !attrs.Any() {
			return event.CommandOutput{
				Intent:  router.IntentEditTask,
				Message: fmt.Sprintf(`What should change for %s? Give a new time like "tomorrow 3-5pm", an attribute like "urgent", or use "rename <title> to <new title>".`, quote(target.Title)),
			}, nil
		}
	}

	updated, err := uc.Update(ctx, sc, input)
	if errors.Is(err, event.ErrConflict) {
		return event.CommandOutput{
			Intent:  router.IntentEditTaskConflict,
			Message: uc.conflictMessage(updated.Event, updated.Conflicts, updated.Suggestions),
			Payload: event.CommandPayload{
				Candidate:   &updated.Event,
				Conflicts:   updated.Conflicts,
				Suggestions: updated.Suggestions,
			},
		}, nil
	}
	if err != nil {
		return fail(router.IntentEditTask, err)
	}

	e := updated.Event
	return event.CommandOutput{
		Intent:  router.IntentEditTask,
		Success: true,
		Message: fmt.Sprintf("Updated %s: %s.", quote(e.Title), uc.label(e.Start, e.End)),
		Payload: event.CommandPayload{Event: &e},
	}, nil
}

// editedInterval reads a new interval for target from text, which must not
// hold the target's title. A bare time range stays on the event's own day; a
// bare date keeps the event's time of day. A single clock time is not enough
// to move an event.
func (uc *implUseCase) editedInterval(text string, target model.Event) (time.Time, time.Time, bool, error) {
	now := uc.now()
	if uc.dateMath.HasTimeRange(text) {
		rng, err := uc.dateMath.ParseRange(text, now, datemath.RangeOptions{BaseDay: target.Start, RequireFuture: true})
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		return rng.Start, rng.End, true, nil
	}
	if uc.dateMath.HasClockTime(text) {
		return time.Time{}, time.Time{}, false, datemath.ErrNoTimeRange
	}

	day, ok, err := uc.dateMath.ParseDate(text, now)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	if !ok {
		return time.Time{}, time.Time{}, false, nil
	}

	local := target.Start.In(uc.dateMath.Location())
	start := time.Date(day.Year(), day.Month(), day.Day(), local.Hour(), local.Minute(), 0, 0, uc.dateMath.Location())
	return start, start.Add(target.Duration()), true, nil
}

func (uc *implUseCase) handleDelete(ctx context.Context, sc model.Scope, cmd command) (event.CommandOutput, error) {
	phrase := router.TargetPhrase(cmd.text, uc.dateMath.Strip)
	target, ok, err := uc.resolveTarget(ctx, sc, phrase)
	if err != nil {
		return event.CommandOutput{}, err
	}
	if !ok {
		return notFound(router.IntentDeleteTask, phrase), nil
	}

	rest := router.WithoutTitle(cmd.text, target.Title)
	if n, ok := router.SegmentNumber(rest); ok {
		seg, missing, err := uc.numberedSegment(ctx, sc, target, n)
		if err != nil {
			return fail(router.IntentDeleteTask, err)
		}
		if missing != "" {
			return event.CommandOutput{Intent: router.IntentDeleteTask, Message: missing}, nil
		}
		target = seg
	} else if router.MentionsSegment(rest) {
		return event.CommandOutput{
			Intent:  router.IntentDeleteTask,
			Message: fmt.Sprintf(`Which segment of %s? Try "delete segment 2 of %s" or "delete segments of %s".`, quote(target.Title), phrase, phrase),
		}, nil
	}

	out, err := uc.Delete(ctx, sc, target.ID)
	if err != nil {
		return fail(router.IntentDeleteTask, err)
	}

	msg := fmt.Sprintf("Deleted %s.", quote(target.Title))
	if n := len(out.DeletedIDs) - 1; n > 0 {
		msg = fmt.Sprintf("Deleted %s and its %d segments.", quote(target.Title), n)
	}
	return event.CommandOutput{
		Intent:  router.IntentDeleteTask,
		Success: true,
		Message: msg,
		Payload: event.CommandPayload{DeletedIDs: out.DeletedIDs},
	}, nil
}

func (uc *implUseCase) handleDeleteSegments(ctx context.Context, sc model.Scope, cmd command) (event.CommandOutput, error) {
	phrase := router.TargetPhrase(cmd.text, uc.dateMath.Strip)
	target, ok, err := uc.resolveTarget(ctx, sc, phrase)
	if err != nil {
		return event.CommandOutput{}, err
	}
	if !ok {
		return notFound(router.IntentDeleteSegments, phrase), nil
	}

	out, err := uc.DeleteSegments(ctx, sc, target.ID)
	if err != nil {
		return fail(router.IntentDeleteSegments, err)
	}

	parent, err := uc.familyParent(ctx, sc, target)
	if err != nil {
		parent = target
	}
	return event.CommandOutput{
		Intent:  router.IntentDeleteSegments,
		Success: true,
		Message: fmt.Sprintf("Deleted %d segments of %s.", len(out.DeletedIDs), quote(parent.Title)),
		Payload: event.CommandPayload{DeletedIDs: out.DeletedIDs},
	}, nil
}

func (uc *implUseCase) handleMark(ctx context.Context, sc model.Scope, cmd command) (event.CommandOutput, error) {
	status, ok := router.StatusKeyword(cmd.text)
	if !ok {
		return event.CommandOutput{Intent: router.IntentMark, Message: "Mark it completed or missed?"}, nil
	}

	phrase := router.TargetPhrase(cmd.text, uc.dateMath.Strip)
	target, ok, err := uc.resolveTarget(ctx, sc, phrase)
	if err != nil {
		return event.CommandOutput{}, err
	}
	if !ok {
		return notFound(router.IntentMark, phrase), nil
	}

	if n, ok := router.SegmentNumber(router.WithoutTitle(cmd.text, target.Title)); ok {
		seg, missing, err := uc.numberedSegment(ctx, sc, target, n)
		if err != nil {
			return fail(router.IntentMarkSegment, err)
		}
		if missing != "" {
			return event.CommandOutput{Intent: router.IntentMarkSegment, Message: missing}, nil
		}
		target = seg
	}

	intent := router.IntentMark
	if target.IsSegment() {
		intent = router.IntentMarkSegment
	}

	out, err := uc.UpdateStatus(ctx, sc, event.StatusInput{EventID: target.ID, Status: status})
	if err != nil {
		return fail(intent, err)
	}

	var msg strings.Builder
	if out.Changed {
		fmt.Fprintf(&msg, "Marked %s %s.", quote(target.Title), out.Status)
	} else {
		fmt.Fprintf(&msg, "%s was already %s.", quote(target.Title), out.Status)
	}
	if out.Finalized && out.Parent != nil {
		fmt.Fprintf(&msg, " All segments are resolved, so %s is now %s.", quote(out.Parent.Title), out.Parent.Status)
	}
	if n := len(out.CascadedIDs); n > 0 {
		fmt.Fprintf(&msg, " Also marked %d pending segments %s.", n, out.Status)
	}

	return event.CommandOutput{
		Intent:  intent,
		Success: true,
		Message: msg.String(),
		Payload: event.CommandPayload{Status: &out},
	}, nil
}

// numberedSegment returns segment n of target's family. When the family has no
// such segment, missing explains why.
func (uc *implUseCase) numberedSegment(ctx context.Context, sc model.Scope, target model.Event, n int) (seg model.Event, missing string, err error) {
	parent, err := uc.familyParent(ctx, sc, target)
	if err != nil {
		return model.Event{}, "", err
	}
	children, err := uc.children(ctx, sc, parent.ID)
	if err != nil {
		return model.Event{}, "", err
	}
	if n > len(children) {
		return model.Event{}, fmt.Sprintf("%s has %d segments; there is no segment %d.", quote(parent.Title), len(children), n), nil
	}
	return children[n-1], "", nil
}

func (uc *implUseCase) handleSplit(ctx context.Context, sc model.Scope, cmd command) (event.CommandOutput, error) {
	req := router.SplitParams(cmd.text, uc.defaultBreak)
	if !req.HasCount {
		return event.CommandOutput{
			Intent:  router.IntentSplitTask,
			Message: `How many segments? Try "split <title> into 3 with 10m breaks".`,
		}, nil
	}

	phrase := router.TargetPhrase(cmd.text, uc.dateMath.Strip)
	target, ok, err := uc.resolveTarget(ctx, sc, phrase)
	if err != nil {
		return event.CommandOutput{}, err
	}
	if !ok {
		return notFound(router.IntentSplitTask, phrase), nil
	}

	out, err := uc.Split(ctx, sc, event.SplitInput{
		ParentID:     target.ID,
		Count:        req.Count,
		BreakMinutes: req.BreakMinutes,
	})
	if err != nil {
		return fail(router.IntentSplitTask, err)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "Split %s into %d segments:", quote(target.Title), len(out.Segments))
	for i, s := range out.Segments {
		fmt.Fprintf(&msg, "\n%d. %s", i+1, uc.label(s.Start, s.End))
	}
	return event.CommandOutput{
		Intent:  router.IntentSplitTask,
		Success: true,
		Message: msg.String(),
		Payload: event.CommandPayload{Segments: out.Segments},
	}, nil
}

func (uc *implUseCase) handleProductivity(ctx context.Context, sc model.Scope, _ command) (event.CommandOutput, error) {
	out, err := uc.Weekly(ctx, sc)
	if err != nil {
		return event.CommandOutput{}, err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "This week: %d completed, %d missed, %d pending", out.Summary.Completed, out.Summary.Missed, out.Summary.Pending)
	if out.Summary.Completed+out.Summary.Missed > 0 {
		fmt.Fprintf(&msg, " (%d%% completion)", int(math.Round(out.Summary.CompletionRate*100)))
	}
	msg.WriteString(".")
	for _, d := range out.Days {
		fmt.Fprintf(&msg, "\n%s %s: %d completed, %d missed", d.Day, d.Date.Format("Jan 2"), d.Completed, d.Missed)
	}

	return event.CommandOutput{
		Intent:  router.IntentProductivity,
		Success: true,
		Message: msg.String(),
		Payload: event.CommandPayload{Weekly: &out},
	}, nil
}

func (uc *implUseCase) handleSchedule(ctx context.Context, sc model.Scope, cmd command) (event.CommandOutput, error) {
	from, to, label := uc.scheduleWindow(cmd)

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{OwnerID: sc.UserID, From: from, To: to})
	if err != nil {
		return event.CommandOutput{}, err
	}
	ranked := schedule.Rank(withoutSegmentedParents(events))

	if len(ranked) == 0 {
		return event.CommandOutput{
			Intent:  router.IntentSchedule,
			Success: true,
			Message: fmt.Sprintf("Nothing scheduled %s.", label),
			Payload: event.CommandPayload{Events: ranked},
		}, nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "Your schedule %s:", label)
	for i, e := range ranked {
		fmt.Fprintf(&msg, "\n%d. %s (%s) [%s]", i+1, e.Title, uc.label(e.Start, e.End), schedule.QuadrantOf(e))
		if e.Status.IsResolved() {
			fmt.Fprintf(&msg, " %s", e.Status)
		}
	}
	return event.CommandOutput{
		Intent:  router.IntentSchedule,
		Success: true,
		Message: msg.String(),
		Payload: event.CommandPayload{Events: ranked},
	}, nil
}

// scheduleWindow picks the query range: this week, the next seven days, a named day, or today.
func (uc *implUseCase) scheduleWindow(cmd command) (time.Time, time.Time, string) {
	now := uc.now()
	loc := uc.dateMath.Location()
	switch {
	case strings.Contains(cmd.text, "week"):
		monday := schedule.WeekStart(now, loc)
		return monday, monday.AddDate(0, 0, 7), "this week"
	case strings.Contains(cmd.text, "upcoming"):
		return now, now.AddDate(0, 0, 7), "for the next 7 days"
	}

	day, ok, err := uc.dateMath.ParseDate(cmd.raw, now)
	if err != nil || !ok {
		day = uc.dateMath.StartOfDay(now)
	}
	label := "on " + day.Format("Mon, Jan 2")
	if day.Equal(uc.dateMath.StartOfDay(now)) {
		label = "today"
	}
	return day, day.AddDate(0, 0, 1), label
}

// withoutSegmentedParents hides parents whose segments are listed alongside them.
func withoutSegmentedParents(events []model.Event) []model.Event {
	parents := make(map[string]bool)
	for _, e := range events {
		if e.IsSegment() {
			parents[e.SegmentOf] = true
		}
	}
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if !parents[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

func (uc *implUseCase) conflictMessage(candidate model.Event, conflicts []model.Event, suggestions []schedule.Suggestion) string {
	var msg strings.Builder
	titles := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		titles = append(titles, quote(c.Title))
	}
	fmt.Fprintf(&msg, "%s would double-book %s at %s. Free slots:",
		quote(candidate.Title), strings.Join(titles, ", "), uc.label(candidate.Start, candidate.End))
	for i, s := range suggestions {
		fmt.Fprintf(&msg, "\n%d. %s (%s)", i+1, s.Label, s.Hint)
	}
	return msg.String()
}
