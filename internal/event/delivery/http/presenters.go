package http

import (
	"time"

	"smart-task-scheduler/internal/event"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/schedule"
	"smart-task-scheduler/pkg/response"
)

// --- Request DTOs ---

type commandReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r commandReq) validate() error { return nil }

func (r commandReq) toInput() event.CommandInput {
	return event.CommandInput{Text: r.Text}
}

// ---

type createReq struct {
	Title       string    `json:"title"      binding:"required,max=255"`
	Start       time.Time `json:"start"      binding:"required"`
	End         time.Time `json:"end"        binding:"required"`
	Importance  string    `json:"importance" binding:"omitempty,oneof=high low"`
	Urgency     string    `json:"urgency"    binding:"omitempty,oneof=high low"`
	Difficulty  string    `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	AllowDouble bool      `json:"allow_double"`
	AllowPast   bool      `json:"allow_past"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{
		Title:       r.Title,
		Start:       r.Start,
		End:         r.End,
		Importance:  model.Importance(r.Importance),
		Urgency:     model.Urgency(r.Urgency),
		Difficulty:  model.Difficulty(r.Difficulty),
		AllowDouble: r.AllowDouble,
		AllowPast:   r.AllowPast,
	}
}

// ---

type listReq struct {
	From time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to"   time_format:"2006-01-02T15:04:05Z07:00"`
}

func (r listReq) validate() error {
	if !r.From.IsZero() && !r.To.IsZero() && !r.To.After(r.From) {
		return errInvalidWindow
	}
	return nil
}

func (r listReq) toInput() event.ListInput {
	return event.ListInput{From: r.From, To: r.To}
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"      binding:"omitempty,max=255"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	Importance  *string    `json:"importance" binding:"omitempty,oneof=high low"`
	Urgency     *string    `json:"urgency"    binding:"omitempty,oneof=high low"`
	Difficulty  *string    `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	AllowDouble bool       `json:"allow_double"`
	AllowPast   bool       `json:"allow_past"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() event.UpdateInput {
	in := event.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Start:       r.Start,
		End:         r.End,
		AllowDouble: r.AllowDouble,
		AllowPast:   r.AllowPast,
	}
	if r.Importance != nil {
		v := model.Importance(*r.Importance)
		in.Importance = &v
	}
	if r.Urgency != nil {
		v := model.Urgency(*r.Urgency)
		in.Urgency = &v
	}
	if r.Difficulty != nil {
		v := model.Difficulty(*r.Difficulty)
		in.Difficulty = &v
	}
	return in
}

// ---

type splitReq struct {
	ID           string   `json:"-"`
	Count        int      `json:"count"         binding:"required,min=2,max=50"`
	BreakMinutes int      `json:"break_minutes" binding:"min=0"`
	TitlePrefix  string   `json:"title_prefix"  binding:"max=255"`
	Titles       []string `json:"titles"`
}

func (r splitReq) validate() error { return nil }

func (r splitReq) toInput() event.SplitInput {
	return event.SplitInput{
		ParentID:     r.ID,
		Count:        r.Count,
		BreakMinutes: r.BreakMinutes,
		TitlePrefix:  r.TitlePrefix,
		Titles:       r.Titles,
	}
}

// ---

type statusReq struct {
	ID     string `json:"-"`
	Status string `json:"status" binding:"required,oneof=completed missed"`
}

func (r statusReq) validate() error { return nil }

func (r statusReq) toInput() event.StatusInput {
	return event.StatusInput{EventID: r.ID, Status: model.Status(r.Status)}
}

// --- Response DTOs ---

type eventResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Minutes      int       `json:"duration_minutes"`
	Importance   string    `json:"importance"`
	Urgency      string    `json:"urgency"`
	Difficulty   string    `json:"difficulty"`
	Status       string    `json:"status"`
	Quadrant     string    `json:"quadrant"`
	SegmentOf    string    `json:"segment_of,omitempty"`
	SegmentIndex *int      `json:"segment_index,omitempty"`
	ExternalID   string    `json:"external_id,omitempty"`
}

func newEventResp(e model.Event) eventResp {
	status := string(e.Status)
	if e.Status == model.StatusPending {
		status = "pending"
	}
	return eventResp{
		ID:           e.ID,
		Title:        e.Title,
		Start:        e.Start,
		End:          e.End,
		Minutes:      e.DurationMinutes(),
		Importance:   string(e.Importance),
		Urgency:      string(e.Urgency),
		Difficulty:   string(e.Difficulty),
		Status:       status,
		Quadrant:     schedule.QuadrantOf(e).String(),
		SegmentOf:    e.SegmentOf,
		SegmentIndex: e.SegmentIndex,
		ExternalID:   e.ExternalID,
	}
}

func newEventResps(events []model.Event) []eventResp {
	out := make([]eventResp, len(events))
	for i, e := range events {
		out[i] = newEventResp(e)
	}
	return out
}

func newEventRespPtr(e *model.Event) *eventResp {
	if e == nil {
		return nil
	}
	r := newEventResp(*e)
	return &r
}

type suggestionResp struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
	Hint  string    `json:"hint"`
}

func newSuggestionResps(in []schedule.Suggestion) []suggestionResp {
	out := make([]suggestionResp, len(in))
	for i, s := range in {
		out[i] = suggestionResp{Start: s.Start, End: s.End, Label: s.Label, Hint: s.Hint}
	}
	return out
}

// conflictResp is the body of a 409 on create or update.
type conflictResp struct {
	Candidate   *eventResp       `json:"candidate,omitempty"`
	Conflicts   []eventResp      `json:"conflicts"`
	Suggestions []suggestionResp `json:"suggestions"`
}

func newConflictResp(candidate *model.Event, conflicts []model.Event, suggestions []schedule.Suggestion) conflictResp {
	return conflictResp{
		Candidate:   newEventRespPtr(candidate),
		Conflicts:   newEventResps(conflicts),
		Suggestions: newSuggestionResps(suggestions),
	}
}

type statusResp struct {
	EventID       string     `json:"event_id"`
	Status        string     `json:"status"`
	Changed       bool       `json:"changed"`
	ParentUpdated bool       `json:"parent_updated"`
	Parent        *eventResp `json:"parent,omitempty"`
	Finalized     bool       `json:"finalized"`
	CascadedIDs   []string   `json:"cascaded_ids,omitempty"`
}

func newStatusResp(out event.StatusOutput) statusResp {
	return statusResp{
		EventID:       out.EventID,
		Status:        string(out.Status),
		Changed:       out.Changed,
		ParentUpdated: out.ParentUpdated,
		Parent:        newEventRespPtr(out.Parent),
		Finalized:     out.Finalized,
		CascadedIDs:   out.CascadedIDs,
	}
}

type dayResp struct {
	Day       string        `json:"day"`
	Date      response.Date `json:"date"`
	Completed int           `json:"completed"`
	Missed    int           `json:"missed"`
}

type summaryResp struct {
	Completed      int     `json:"completed"`
	Missed         int     `json:"missed"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
}

type weeklyResp struct {
	WeekStart response.Date `json:"week_start"`
	Days      []dayResp     `json:"days"`
	Summary   summaryResp   `json:"summary"`
}

func newWeeklyResp(out event.WeeklyOutput) weeklyResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = dayResp{
			Day:       d.Day,
			Date:      response.Date(d.Date),
			Completed: d.Completed,
			Missed:    d.Missed,
		}
	}
	return weeklyResp{
		WeekStart: response.Date(out.WeekStart),
		Days:      days,
		Summary: summaryResp{
			Completed:      out.Summary.Completed,
			Missed:         out.Summary.Missed,
			Pending:        out.Summary.Pending,
			CompletionRate: out.Summary.CompletionRate,
		},
	}
}

func newWeeklyRespPtr(out *event.WeeklyOutput) *weeklyResp {
	if out == nil {
		return nil
	}
	r := newWeeklyResp(*out)
	return &r
}

type commandResp struct {
	Intent      string           `json:"intent"`
	Success     bool             `json:"success"`
	Message     string           `json:"message"`
	Event       *eventResp       `json:"event,omitempty"`
	Candidate   *eventResp       `json:"candidate,omitempty"`
	Conflicts   []eventResp      `json:"conflicts,omitempty"`
	Suggestions []suggestionResp `json:"suggestions,omitempty"`
	Segments    []eventResp      `json:"segments,omitempty"`
	Events      []eventResp      `json:"events,omitempty"`
	DeletedIDs  []string         `json:"deleted_ids,omitempty"`
	Status      *statusResp      `json:"status,omitempty"`
	Weekly      *weeklyResp      `json:"weekly,omitempty"`
}

func (h *handler) newCommandResp(out event.CommandOutput) commandResp {
	p := out.Payload
	resp := commandResp{
		Intent:     string(out.Intent),
		Success:    out.Success,
		Message:    out.Message,
		Event:      newEventRespPtr(p.Event),
		Candidate:  newEventRespPtr(p.Candidate),
		DeletedIDs: p.DeletedIDs,
		Weekly:     newWeeklyRespPtr(p.Weekly),
	}
	if len(p.Conflicts) > 0 {
		resp.Conflicts = newEventResps(p.Conflicts)
	}
	if len(p.Suggestions) > 0 {
		resp.Suggestions = newSuggestionResps(p.Suggestions)
	}
	if len(p.Segments) > 0 {
		resp.Segments = newEventResps(p.Segments)
	}
	if p.Events != nil {
		resp.Events = newEventResps(p.Events)
	}
	if p.Status != nil {
		s := newStatusResp(*p.Status)
		resp.Status = &s
	}
	return resp
}

type createResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newCreateResp(out event.CreateOutput) createResp {
	return createResp{Event: newEventResp(out.Event)}
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
}

func (h *handler) newListResp(events []model.Event) listResp {
	return listResp{Events: newEventResps(events), Total: len(events)}
}

type detailResp struct {
	Event    eventResp   `json:"event"`
	Kind     string      `json:"kind"`
	Parent   *eventResp  `json:"parent,omitempty"`
	Children []eventResp `json:"children,omitempty"`
}

func (h *handler) newDetailResp(out event.DetailOutput) detailResp {
	resp := detailResp{
		Event:  newEventResp(out.Event),
		Kind:   out.Kind.String(),
		Parent: newEventRespPtr(out.Parent),
	}
	if len(out.Children) > 0 {
		resp.Children = newEventResps(out.Children)
	}
	return resp
}

type updateResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newUpdateResp(out event.UpdateOutput) updateResp {
	return updateResp{Event: newEventResp(out.Event)}
}

type deleteResp struct {
	DeletedIDs []string `json:"deleted_ids"`
}

func (h *handler) newDeleteResp(out event.DeleteOutput) deleteResp {
	return deleteResp{DeletedIDs: out.DeletedIDs}
}

type splitResp struct {
	ParentID string      `json:"parent_id"`
	Segments []eventResp `json:"segments"`
}

func (h *handler) newSplitResp(out event.SplitOutput) splitResp {
	return splitResp{ParentID: out.ParentID, Segments: newEventResps(out.Segments)}
}
