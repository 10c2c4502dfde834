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

type OrderService interface {
	PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderSummary, error)
}

type Handler struct {
	Service OrderService
	Logger  *logger.Logger
}

// PlaceOrder handles POST /orders. A created order is always answered with
// its full summary; there is no bare "created" acknowledgment.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("PlaceOrder: failed to decode request body: %v", err))
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorBody{Error: "Invalid request body."})
		return
	}

	summary, err := h.Service.PlaceOrder(r.Context(), req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("PlaceOrder: %v", err))
		utils.WriteError(w, err)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("PlaceOrder: order %d created, total %.2f", summary.OrderID, summary.Total))
	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"summary": summary,
	})
}
