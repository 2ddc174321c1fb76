package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"smart-task-scheduler/internal/event/repository"
	"smart-task-scheduler/internal/model"
)

func (r *implRepository) buildRow(opt repository.CreateEventOptions) eventRow {
	now := r.now()
	return eventRow{
		ID:           uuid.NewString(),
		OwnerID:      opt.OwnerID,
		Title:        opt.Title,
		StartAt:      opt.Start.Unix(),
		EndAt:        opt.End.Unix(),
		Importance:   string(opt.Importance),
		Urgency:      string(opt.Urgency),
		Difficulty:   string(opt.Difficulty),
		SegmentOf:    opt.SegmentOf,
		SegmentIndex: opt.SegmentIndex,
		IsRecurring:  opt.IsRecurring,
		ExternalID:   opt.ExternalID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	row := r.buildRow(opt)
	if _, err := r.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.CreateEvent: %v", err)
		return model.Event{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return row.toModel(), nil
}

func (r *implRepository) CreateEvents(ctx context.Context, opts []repository.CreateEventOptions) ([]model.Event, error) {
	if len(opts) == 0 {
		return []model.Event{}, nil
	}

	rows := make([]eventRow, 0, len(opts))
	for _, opt := range opts {
		rows = append(rows, r.buildRow(opt))
	}

	insert := func(ctx context.Context, db bun.IDB) error {
		_, err := db.NewInsert().Model(&rows).Exec(ctx)
		return err
	}

	var err error
	if db, ok := r.db.(*bun.DB); ok {
		err = db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			return insert(ctx, tx)
		})
	} else {
		err = insert(ctx, r.db)
	}
	if err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.CreateEvents: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return toModels(rows), nil
}

func (r *implRepository) GetOneEvent(ctx context.Context, opt repository.GetOneEventOptions) (model.Event, error) {
	var row eventRow
	q := r.db.NewSelect().Model(&row).Where("id = ?", opt.ID)
	if opt.OwnerID != "" {
		q = q.Where("owner_id = ?", opt.OwnerID)
	}
	if err := q.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, nil
		}
		r.l.Errorf(ctx, "event.repository.sqlite.GetOneEvent: %v", err)
		return model.Event{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return row.toModel(), nil
}

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	rows := make([]eventRow, 0)
	q := r.db.NewSelect().Model(&rows)
	if opt.OwnerID != "" {
		q = q.Where("owner_id = ?", opt.OwnerID)
	}
	if opt.SegmentOf != "" {
		q = q.Where("segment_of = ?", opt.SegmentOf)
	}
	if !opt.From.IsZero() {
		q = q.Where("start_at >= ?", opt.From.Unix())
	}
	if !opt.To.IsZero() {
		q = q.Where("start_at < ?", opt.To.Unix())
	}
	if !opt.Start.IsZero() {
		q = q.Where("start_at = ?", opt.Start.Unix())
	}
	if !opt.End.IsZero() {
		q = q.Where("end_at = ?", opt.End.Unix())
	}

	if err := q.Order("start_at ASC", "segment_index ASC").Scan(ctx); err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.ListEvents: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return toModels(rows), nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, opt repository.UpdateEventOptions) (model.Event, error) {
	q := r.db.NewUpdate().
		Model((*eventRow)(nil)).
		Set("title = ?", opt.Title).
		Set("start_at = ?", opt.Start.Unix()).
		Set("end_at = ?", opt.End.Unix()).
		Set("importance = ?", string(opt.Importance)).
		Set("urgency = ?", string(opt.Urgency)).
		Set("difficulty = ?", string(opt.Difficulty)).
		Set("external_id = ?", nullString(opt.ExternalID)).
		Set("updated_at = ?", r.now()).
		Where("id = ?", opt.ID)
	if opt.OwnerID != "" {
		q = q.Where("owner_id = ?", opt.OwnerID)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.UpdateEvent: %v", err)
		return model.Event{}, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Event{}, nil
	}
	return r.GetOneEvent(ctx, repository.GetOneEventOptions{ID: opt.ID, OwnerID: opt.OwnerID})
}

func (r *implRepository) UpdateStatus(ctx context.Context, opt repository.UpdateStatusOptions) (bool, error) {
	q := r.db.NewUpdate().
		Model((*eventRow)(nil)).
		Set("status = ?", nullString(string(opt.Status))).
		Set("updated_at = ?", r.now()).
		Where("id = ?", opt.ID)
	if opt.OwnerID != "" {
		q = q.Where("owner_id = ?", opt.OwnerID)
	}
	if opt.OnlyIfPending {
		q = q.Where("status IS NULL")
	}

	res, err := q.Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.UpdateStatus: %v", err)
		return false, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	return n > 0, nil
}

func (r *implRepository) DeleteEvents(ctx context.Context, opt repository.DeleteEventsOptions) (int, error) {
	if len(opt.IDs) == 0 && opt.SegmentOf == "" {
		return 0, repository.ErrMissingFilter
	}

	q := r.db.NewDelete().Model((*eventRow)(nil))
	if len(opt.IDs) > 0 {
		q = q.Where("id IN (?)", bun.In(opt.IDs))
	}
	if opt.SegmentOf != "" {
		q = q.Where("segment_of = ?", opt.SegmentOf)
	}
	if opt.OwnerID != "" {
		q = q.Where("owner_id = ?", opt.OwnerID)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.DeleteEvents: %v", err)
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
