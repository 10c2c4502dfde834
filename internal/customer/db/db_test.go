package db_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"ticketdesk/internal/customer/db"
	"ticketdesk/internal/database/migrations"
	"ticketdesk/internal/models"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	if err := migrations.Run(context.Background(), bunDB); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func TestCreateCustomerAssignsIncreasingIDs(t *testing.T) {
	customerDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	ctx := context.Background()

	first := models.Customer{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@x.com",
		PhoneNumber: "555",
		Address1:    "1 Main St",
		Postcode:    "AB12",
	}
	firstID, err := customerDB.CreateCustomer(ctx, &first)
	assert.NoError(t, err)
	assert.Greater(t, firstID, int64(0))

	// Duplicate email on purpose: no uniqueness is enforced.
	second := models.Customer{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@x.com",
		PhoneNumber: "555",
		Address1:    "1 Main St",
		Postcode:    "AB12",
	}
	secondID, err := customerDB.CreateCustomer(ctx, &second)
	assert.NoError(t, err)
	assert.Greater(t, secondID, firstID)
}

func TestCreateCustomerRoundTrip(t *testing.T) {
	customerDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	ctx := context.Background()

	address2 := "Flat 4"
	customer := models.Customer{
		FirstName:   "Sam",
		LastName:    "Reed",
		Email:       "sam@x.com",
		PhoneNumber: "01234 567890",
		Address1:    "2 High St",
		Address2:    &address2,
		Address3:    nil,
		Postcode:    "CD34",
	}
	id, err := customerDB.CreateCustomer(ctx, &customer)
	assert.NoError(t, err)

	var stored models.Customer
	err = bunDB.NewSelect().
		Model(&stored).
		Where("id = ?", id).
		Scan(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Sam", stored.FirstName)
	assert.Equal(t, "sam@x.com", stored.Email)
	assert.NotNil(t, stored.Address2)
	assert.Equal(t, "Flat 4", *stored.Address2)
	// Missing optional fields stay NULL, never "".
	assert.Nil(t, stored.Address3)
}

func TestListCustomersNewestFirst(t *testing.T) {
	customerDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := customerDB.CreateCustomer(ctx, &models.Customer{
			FirstName:   "Test",
			LastName:    "User",
			Email:       email,
			PhoneNumber: "555",
			Address1:    "1 Main St",
			Postcode:    "AB12",
		})
		assert.NoError(t, err)
	}

	customers, err := customerDB.ListCustomers(ctx)
	assert.NoError(t, err)
	assert.Len(t, customers, 3)
	assert.Equal(t, "c@x.com", customers[0].Email)
	assert.Equal(t, "a@x.com", customers[2].Email)
	assert.Greater(t, customers[0].ID, customers[1].ID)
}
