package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"qr-ordering/internal/httpx"
	"qr-ordering/internal/models"
	"qr-ordering/internal/store"
)

// Handler exposes the order service over HTTP
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register wires the order routes into the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/orders", h.createOrder)
	mux.HandleFunc("GET /api/orders", h.listOrders)
	mux.HandleFunc("GET /api/orders/{id}", h.getOrder)
	mux.HandleFunc("GET /api/orders/{id}/history", h.getOrderHistory)
	mux.HandleFunc("PATCH /api/orders/{id}", h.updateOrder)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	var req models.CreateOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), requestID)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req, requestID)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	restaurantID := r.URL.Query().Get("restaurant_id")
	status := models.OrderStatus(r.URL.Query().Get("status"))

	orders, err := h.service.ListOrders(r.Context(), restaurantID, status)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	order, err := h.service.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderHistory(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	history, err := h.service.GetOrderHistory(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, history)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	var req models.UpdateOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), requestID)
		return
	}

	order, err := h.service.UpdateOrder(r.Context(), r.PathValue("id"), &req, requestID)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, requestID string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusBadRequest, verr.Message, requestID)
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "order not found", requestID)
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", requestID)
	}
}
