package sqlite

import (
	"time"

	"github.com/uptrace/bun"

	"smart-task-scheduler/internal/model"
)

// eventRow is the persisted shape of an event. Times are unix seconds UTC;
// a NULL status means pending.
type eventRow struct {
	bun.BaseModel `bun:"table:events"`

	ID         string `bun:"id,pk"`
	OwnerID    string `bun:"owner_id,notnull"`
	Title      string `bun:"title,notnull"`
	StartAt    int64  `bun:"start_at,notnull"`
	EndAt      int64  `bun:"end_at,notnull"`
	Importance string `bun:"importance,notnull"`
	Urgency    string `bun:"urgency,notnull"`
	Difficulty string `bun:"difficulty,notnull"`
	Status     string `bun:"status,nullzero"`

	SegmentOf    string `bun:"segment_of,nullzero"`
	SegmentIndex *int   `bun:"segment_index"`

	IsRecurring bool   `bun:"is_recurring,notnull,default:false"`
	ExternalID  string `bun:"external_id,nullzero"`

	CreatedAt int64 `bun:"created_at,notnull"`
	UpdatedAt int64 `bun:"updated_at,notnull"`
}

func unixNow() int64 {
	return time.Now().Unix()
}

func (r eventRow) toModel() model.Event {
	return model.Event{
		ID:           r.ID,
		Title:        r.Title,
		Start:        time.Unix(r.StartAt, 0).UTC(),
		End:          time.Unix(r.EndAt, 0).UTC(),
		Importance:   model.Importance(r.Importance),
		Urgency:      model.Urgency(r.Urgency),
		Difficulty:   model.Difficulty(r.Difficulty),
		OwnerID:      r.OwnerID,
		Status:       model.Status(r.Status),
		SegmentOf:    r.SegmentOf,
		SegmentIndex: r.SegmentIndex,
		IsRecurring:  r.IsRecurring,
		ExternalID:   r.ExternalID,
		CreatedAt:    time.Unix(r.CreatedAt, 0).UTC(),
		UpdatedAt:    time.Unix(r.UpdatedAt, 0).UTC(),
	}
}

func toModels(rows []eventRow) []model.Event {
	events := make([]model.Event, 0, len(rows))
	for _, r := range rows {
		events = append(events, r.toModel())
	}
	return events
}
