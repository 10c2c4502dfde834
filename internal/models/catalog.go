package models

import "github.com/uptrace/bun"

type EventType struct {
	bun.BaseModel `bun:"table:event_types"`

	ID    int64  `bun:"id,pk,autoincrement" json:"id"`
	Label string `bun:"event_type,notnull" json:"event_type"`
}

type Location struct {
	bun.BaseModel `bun:"table:locations"`

	ID      int64  `bun:"id,pk,autoincrement" json:"id"`
	Address string `bun:"address,notnull" json:"address"`
}

type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID          int64   `bun:"id,pk,autoincrement" json:"id"`
	EventName   string  `bun:"event_name,notnull" json:"event_name"`
	EventDate   string  `bun:"event_date,notnull" json:"event_date"`
	EventTime   string  `bun:"event_time,notnull" json:"event_time"`
	Price       float64 `bun:"price,notnull" json:"price"`
	EventTypeID int64   `bun:"event_type_id,notnull" json:"event_type_id"`
	LocationID  int64   `bun:"location_id,notnull" json:"location_id"`

	EventType *EventType `bun:"rel:belongs-to,join:event_type_id=id" json:"-"`
	Location  *Location  `bun:"rel:belongs-to,join:location_id=id" json:"-"`
}

// EventListing is one row of the events-by-type listing, with the venue
// address joined in at read time.
type EventListing struct {
	ID        int64   `bun:"id" json:"id"`
	EventName string  `bun:"event_name" json:"event_name"`
	EventDate string  `bun:"event_date" json:"event_date"`
	EventTime string  `bun:"event_time" json:"event_time"`
	Price     float64 `bun:"price" json:"price"`
	Location  string  `bun:"location" json:"location"`
}
