package order

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"ticketdesk/internal/errs"
	"ticketdesk/internal/logger"
	"ticketdesk/internal/models"
)

// orderDateLayout is the fixed-width sortable timestamp assigned at insert
// time. Always UTC, never taken from the client.
const orderDateLayout = "2006-01-02 15:04:05"

type DBLayer interface {
	CreateOrder(ctx context.Context, order *models.Order) (int64, error)
	GetOrderSummaryRow(ctx context.Context, orderID int64) (*models.OrderSummaryRow, error)
}

type Service struct {
	DB     DBLayer
	Logger *logger.Logger

	now func() time.Time
}

func NewService(db DBLayer, log *logger.Logger) *Service {
	return &Service{DB: db, Logger: log, now: time.Now}
}

// PlaceOrder runs the order workflow: validate, insert the one order row,
// re-read it through the summary join, and derive the total from the stored
// values. All checks run before any write; the insert is the only mutation,
// so a failure at any stage leaves no partial state behind.
func (s *Service) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderSummary, error) {
	customerID, eventID, quantity, err := parseOrderRequest(req)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		CustomerID: customerID,
		EventID:    eventID,
		OrderDate:  s.now().UTC().Format(orderDateLayout),
		Quantity:   quantity,
	}

	orderID, err := s.DB.CreateOrder(ctx, &order)
	if err != nil {
		s.Logger.Error("ORDER", fmt.Sprintf("PlaceOrder: insert failed: %v", err))
		return nil, errs.Persistence("Failed to save order.", err)
	}
	s.Logger.LogOrder("CREATE", strconv.FormatInt(orderID, 10), "order row inserted")

	row, err := s.DB.GetOrderSummaryRow(ctx, orderID)
	if err != nil {
		s.Logger.Error("ORDER", fmt.Sprintf("PlaceOrder: summary read-back failed for order %d: %v", orderID, err))
		return nil, errs.Persistence("Failed to fetch order summary.", nil)
	}

	return buildSummary(row), nil
}

// parseOrderRequest applies the order preconditions. The error is coarse by
// contract: the UI only reports that the order details were missing or
// invalid, never which field.
func parseOrderRequest(req models.OrderRequest) (int64, int64, int64, error) {
	invalid := errs.Validation("Missing or invalid order details.")

	if req.CustomerID == "" || req.EventID == "" {
		return 0, 0, 0, invalid
	}
	customerID, err := strconv.ParseInt(req.CustomerID.String(), 10, 64)
	if err != nil {
		return 0, 0, 0, invalid
	}
	eventID, err := strconv.ParseInt(req.EventID.String(), 10, 64)
	if err != nil {
		return 0, 0, 0, invalid
	}
	quantity, err := strconv.ParseInt(req.Quantity.String(), 10, 64)
	if err != nil || quantity <= 0 {
		return 0, 0, 0, invalid
	}
	return customerID, eventID, quantity, nil
}

// buildSummary assembles the response from the read-back row. The total is
// computed from the stored price and quantity, rounded to currency precision.
func buildSummary(row *models.OrderSummaryRow) *models.OrderSummary {
	total := math.Round(row.Price*float64(row.Quantity)*100) / 100

	return &models.OrderSummary{
		OrderID:   row.OrderID,
		OrderDate: row.OrderDate,
		Quantity:  row.Quantity,
		Total:     total,
		Customer: models.CustomerSummary{
			ID:        row.CustomerID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Email:     row.Email,
		},
		Event: models.EventSummary{
			ID:       row.EventID,
			Name:     row.EventName,
			Date:     row.EventDate,
			Time:     row.EventTime,
			Price:    row.Price,
			Type:     row.EventType,
			Location: row.Location,
		},
	}
}
