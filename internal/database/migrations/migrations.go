// Package migrations creates the schema and seeds the reference catalog.
package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"ticketdesk/internal/models"
)

// Run creates every table that does not exist yet and seeds the reference
// data (event types, locations, events) on first start. Customer and order
// rows are never seeded; those only come from submissions.
func Run(ctx context.Context, db *bun.DB) error {
	// Order matters: referenced tables first so the FK constraints resolve.
	tables := []interface{}{
		(*models.Customer)(nil),
		(*models.EventType)(nil),
		(*models.Location)(nil),
		(*models.Event)(nil),
		(*models.Order)(nil),
	}
	for _, m := range tables {
		_, err := db.NewCreateTable().Model(m).IfNotExists().WithForeignKeys().Exec(ctx)
		if err != nil {
			return fmt.Errorf("create table for %T: %w", m, err)
		}
	}

	return seedReferenceData(ctx, db)
}

func seedReferenceData(ctx context.Context, db *bun.DB) error {
	count, err := db.NewSelect().Model((*models.EventType)(nil)).Count(ctx)
	if err != nil {
		return fmt.Errorf("count event types: %w", err)
	}
	if count > 0 {
		return nil
	}

	eventTypes := []models.EventType{
		{Label: "Comedy"},
		{Label: "Music"},
		{Label: "Theatre"},
	}
	if _, err := db.NewInsert().Model(&eventTypes).Exec(ctx); err != nil {
		return fmt.Errorf("seed event types: %w", err)
	}

	locations := []models.Location{
		{Address: "12 Riverside Walk, York"},
		{Address: "98 Castle Street, Leeds"},
	}
	if _, err := db.NewInsert().Model(&locations).Exec(ctx); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	events := []models.Event{
		{EventName: "Open Mic Night", EventDate: "2026-03-14", EventTime: "19:30", Price: 12.50, EventTypeID: eventTypes[0].ID, LocationID: locations[0].ID},
		{EventName: "Improv Showcase", EventDate: "2026-04-02", EventTime: "20:00", Price: 18.00, EventTypeID: eventTypes[0].ID, LocationID: locations[1].ID},
		{EventName: "Spring Jazz Evening", EventDate: "2026-03-21", EventTime: "19:00", Price: 25.00, EventTypeID: eventTypes[1].ID, LocationID: locations[0].ID},
		{EventName: "Acoustic Sessions", EventDate: "2026-05-09", EventTime: "18:30", Price: 15.00, EventTypeID: eventTypes[1].ID, LocationID: locations[1].ID},
		{EventName: "A Midsummer Night's Dream", EventDate: "2026-06-20", EventTime: "19:30", Price: 32.00, EventTypeID: eventTypes[2].ID, LocationID: locations[1].ID},
	}
	if _, err := db.NewInsert().Model(&events).Exec(ctx); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}

	return nil
}
