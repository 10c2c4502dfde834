package db

import (
	"context"

	"github.com/uptrace/bun"

	"ticketdesk/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ListEventTypes returns the full lookup table ordered by label.
func (d *DB) ListEventTypes(ctx context.Context) ([]models.EventType, error) {
	types := make([]models.EventType, 0)
	err := d.Bun.NewSelect().
		Model(&types).
		Order("event_type ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return types, nil
}

// ListEventsByType returns events of one type with the venue address joined
// in, ordered by date then time. The id is bound as given; a value matching
// no event type simply yields no rows.
func (d *DB) ListEventsByType(ctx context.Context, eventTypeID string) ([]models.EventListing, error) {
	listings := make([]models.EventListing, 0)
	err := d.Bun.NewSelect().
		Table("events").
		ColumnExpr("events.id, events.event_name, events.event_date, events.event_time, events.price").
		ColumnExpr("locations.address AS location").
		Join("JOIN locations ON locations.id = events.location_id").
		Where("events.event_type_id = ?", eventTypeID).
		OrderExpr("events.event_date, events.event_time").
		Scan(ctx, &listings)
	if err != nil {
		return nil, err
	}
	return listings, nil
}
