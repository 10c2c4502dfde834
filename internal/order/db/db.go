package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"ticketdesk/internal/models"
)

// ErrSummaryNotFound is returned when the read-back after an insert finds no
// row. With foreign keys enforced this should be unreachable, but it is
// handled rather than assumed away.
var ErrSummaryNotFound = errors.New("order summary row not found")

type DB struct {
	Bun *bun.DB
}

// CreateOrder inserts the single mutating row of the order workflow and
// returns the assigned id. A missing customer or event surfaces here as a
// foreign key violation from the store.
func (d *DB) CreateOrder(ctx context.Context, order *models.Order) (int64, error) {
	_, err := d.Bun.NewInsert().Model(order).Exec(ctx)
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

// GetOrderSummaryRow re-reads a stored order through the four-way join keyed
// off the order id, so the summary reflects exactly what is durable rather
// than what the request carried.
func (d *DB) GetOrderSummaryRow(ctx context.Context, orderID int64) (*models.OrderSummaryRow, error) {
	var row models.OrderSummaryRow
	err := d.Bun.NewSelect().
		Table("orders").
		ColumnExpr("orders.id AS order_id, orders.order_date, orders.quantity").
		ColumnExpr("customers.id AS customer_id, customers.first_name, customers.last_name, customers.email").
		ColumnExpr("events.id AS event_id, events.event_name, events.event_date, events.event_time, events.price").
		ColumnExpr("event_types.event_type").
		ColumnExpr("locations.address AS location").
		Join("JOIN customers ON customers.id = orders.customer_id").
		Join("JOIN events ON events.id = orders.event_id").
		Join("JOIN event_types ON event_types.id = events.event_type_id").
		Join("JOIN locations ON locations.id = events.location_id").
		Where("orders.id = ?", orderID).
		Scan(ctx, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSummaryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
