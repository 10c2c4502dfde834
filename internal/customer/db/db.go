package db

import (
	"context"

	"github.com/uptrace/bun"

	"ticketdesk/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// CreateCustomer inserts one customer row and returns the assigned id.
func (d *DB) CreateCustomer(ctx context.Context, customer *models.Customer) (int64, error) {
	_, err := d.Bun.NewInsert().Model(customer).Exec(ctx)
	if err != nil {
		return 0, err
	}
	return customer.ID, nil
}

// ListCustomers returns every customer row, newest first.
func (d *DB) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	err := d.Bun.NewSelect().
		Model(&customers).
		Order("id DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return customers, nil
}
