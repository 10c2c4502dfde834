package models

import (
	"encoding/json"

	"github.com/uptrace/bun"
)

type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID         int64  `bun:"id,pk,autoincrement" json:"id"`
	CustomerID int64  `bun:"customer_id,notnull" json:"customer_id"`
	EventID    int64  `bun:"event_id,notnull" json:"event_id"`
	OrderDate  string `bun:"order_date,notnull" json:"order_date"`
	Quantity   int64  `bun:"quantity,notnull" json:"quantity"`

	Customer *Customer `bun:"rel:belongs-to,join:customer_id=id" json:"-"`
	Event    *Event    `bun:"rel:belongs-to,join:event_id=id" json:"-"`
}

// FormValue decodes a JSON field that the browsing UI may send either as a
// quoted string (form inputs, browser storage) or as a bare number.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}

func (v FormValue) String() string { return string(v) }

type OrderRequest struct {
	CustomerID FormValue `json:"customer_id"`
	EventID    FormValue `json:"event_id"`
	Quantity   FormValue `json:"quantity"`
}

// OrderSummaryRow is the flat result of the four-way summary join keyed off
// the order id.
type OrderSummaryRow struct {
	OrderID    int64   `bun:"order_id"`
	OrderDate  string  `bun:"order_date"`
	Quantity   int64   `bun:"quantity"`
	CustomerID int64   `bun:"customer_id"`
	FirstName  string  `bun:"first_name"`
	LastName   string  `bun:"last_name"`
	Email      string  `bun:"email"`
	EventID    int64   `bun:"event_id"`
	EventName  string  `bun:"event_name"`
	EventDate  string  `bun:"event_date"`
	EventTime  string  `bun:"event_time"`
	Price      float64 `bun:"price"`
	EventType  string  `bun:"event_type"`
	Location   string  `bun:"location"`
}

type OrderSummary struct {
	OrderID   int64           `json:"order_id"`
	OrderDate string          `json:"order_date"`
	Quantity  int64           `json:"quantity"`
	Total     float64         `json:"total"`
	Customer  CustomerSummary `json:"customer"`
	Event     EventSummary    `json:"event"`
}

type CustomerSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type EventSummary struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Price    float64 `json:"price"`
	Type     string  `json:"type"`
	Location string  `json:"location"`
}
