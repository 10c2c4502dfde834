package api

import (
	"context"
	"fmt"
	"net/http"

	"ticketdesk/internal/logger"
	"ticketdesk/internal/models"
	"ticketdesk/internal/utils"
)

type CatalogService interface {
	ListEventTypes(ctx context.Context) ([]models.EventType, error)
	ListEvents(ctx context.Context, eventTypeID string) ([]models.EventListing, error)
}

type Handler struct {
	Service CatalogService
	Logger  *logger.Logger
}

// ListEventTypes handles GET /event-types.
func (h *Handler) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.ListEventTypes(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListEventTypes: %v", err))
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, types)
}

// ListEvents handles GET /events?eventTypeId=N.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	eventTypeID := r.URL.Query().Get("eventTypeId")

	listings, err := h.Service.ListEvents(r.Context(), eventTypeID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListEvents: eventTypeId=%q: %v", eventTypeID, err))
		utils.WriteError(w, err)
		return
	}

	h.Logger.Debug("API", fmt.Sprintf("ListEvents: eventTypeId=%s returned %d events", eventTypeID, len(listings)))
	utils.WriteJSON(w, http.StatusOK, listings)
}
