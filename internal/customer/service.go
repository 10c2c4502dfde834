package customer

import (
	"context"

	"ticketdesk/internal/errs"
	"ticketdesk/internal/models"
)

type DBLayer interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) (int64, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

type Service struct {
	DB DBLayer
}

func NewService(db DBLayer) *Service {
	return &Service{DB: db}
}

// Register validates that the required fields are present and inserts a new
// customer row. Every submission creates a new row; there is no merging and
// nothing stops two customers sharing an email. Only presence is checked,
// never shape.
func (s *Service) Register(ctx context.Context, req models.CustomerRequest) (int64, error) {
	if err := models.Validate.Struct(req); err != nil {
		return 0, errs.Validation("Missing required customer fields.")
	}

	customer := models.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address1:    req.Address1,
		Address2:    optional(req.Address2),
		Address3:    optional(req.Address3),
		Postcode:    req.Postcode,
	}

	id, err := s.DB.CreateCustomer(ctx, &customer)
	if err != nil {
		return 0, errs.Persistence("Failed to save customer.", err)
	}
	return id, nil
}

// List returns all customers, newest first.
func (s *Service) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.DB.ListCustomers(ctx)
	if err != nil {
		return nil, errs.Persistence("Failed to fetch customers.", err)
	}
	return customers, nil
}

// optional maps a blank form value to NULL so "not provided" stays
// distinguishable from an empty string downstream.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
