package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ticketdesk/internal/logger"
	"ticketdesk/internal/models"
	"ticketdesk/internal/utils"
)

type RegistrarService interface {
	Register(ctx context.Context, req models.CustomerRequest) (int64, error)
	List(ctx context.Context) ([]models.Customer, error)
}

type Handler struct {
	Service RegistrarService
	Logger  *logger.Logger
}

// RegisterCustomer handles POST /customers.
func (h *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("RegisterCustomer: failed to decode request body: %v", err))
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorBody{Error: "Invalid request body."})
		return
	}

	id, err := h.Service.Register(r.Context(), req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("RegisterCustomer: %v", err))
		utils.WriteError(w, err)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("RegisterCustomer: created customer %d", id))
	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      id,
	})
}

// ListCustomers handles GET /customers. Newest rows come first so the UI can
// pick up the most recent registration.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListCustomers: %v", err))
		utils.WriteError(w, err)
		return
	}

	h.Logger.Debug("API", fmt.Sprintf("ListCustomers: returning %d customers", len(customers)))
	utils.WriteJSON(w, http.StatusOK, customers)
}
