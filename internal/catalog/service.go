package catalog

import (
	"context"

	"ticketdesk/internal/errs"
	"ticketdesk/internal/models"
)

type DBLayer interface {
	ListEventTypes(ctx context.Context) ([]models.EventType, error)
	ListEventsByType(ctx context.Context, eventTypeID string) ([]models.EventListing, error)
}

// Service answers the read-only catalog queries behind the browsing UI.
type Service struct {
	DB DBLayer
}

func NewService(db DBLayer) *Service {
	return &Service{DB: db}
}

func (s *Service) ListEventTypes(ctx context.Context) ([]models.EventType, error) {
	types, err := s.DB.ListEventTypes(ctx)
	if err != nil {
		return nil, errs.Persistence("Failed to fetch event types.", err)
	}
	return types, nil
}

// ListEvents returns the events of one type. An unknown type is not an
// error: the caller gets an empty list and presents a "no results" state.
func (s *Service) ListEvents(ctx context.Context, eventTypeID string) ([]models.EventListing, error) {
	if eventTypeID == "" {
		return nil, errs.Validation("eventTypeId is required.")
	}

	listings, err := s.DB.ListEventsByType(ctx, eventTypeID)
	if err != nil {
		return nil, errs.Persistence("Failed to fetch events.", err)
	}
	return listings, nil
}
