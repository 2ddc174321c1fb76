package gcalendar

import "time"

const (
	DefaultCalendarID = "primary"
	// SourceIDProperty is the private extended property holding the scheduler event id.
	SourceIDProperty = "scheduler_event_id"
)

// Google Calendar event colors used for the importance/urgency quadrants.
const (
	ColorTomato   = "11"
	ColorBanana   = "5"
	ColorPeacock  = "7"
	ColorGraphite = "8"
)

// CreateEventRequest is the input for mirroring an event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
	ColorID     string
	SourceID    string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
