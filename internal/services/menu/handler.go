package menu

import (
	"encoding/json"
	"errors"
	"net/http"

	"qr-ordering/internal/httpx"
	"qr-ordering/internal/models"
	"qr-ordering/internal/store"
)

// Handler exposes the restaurant, table and menu routes over HTTP. The
// restaurant id for customer-facing routes comes from configuration; the
// demo serves a single restaurant.
type Handler struct {
	service      *Service
	restaurantID string
}

func NewHandler(service *Service, restaurantID string) *Handler {
	return &Handler{service: service, restaurantID: restaurantID}
}

// Register wires the menu routes into the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/restaurant", h.getRestaurant)
	mux.HandleFunc("GET /api/tables", h.listTables)
	mux.HandleFunc("GET /api/tables/qr/{code}", h.resolveTable)
	mux.HandleFunc("GET /api/menu", h.getMenu)
	mux.HandleFunc("GET /api/menu/{id}", h.getMenuItem)
	mux.HandleFunc("POST /api/menu", h.createMenuItem)
	mux.HandleFunc("PATCH /api/menu/{id}", h.updateMenuItem)
	mux.HandleFunc("DELETE /api/menu/{id}", h.deleteMenuItem)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	restaurant, err := h.service.GetRestaurant(r.Context(), h.restaurantID)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	tables, err := h.service.ListTables(r.Context(), h.restaurantFor(r))
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tables)
}

func (h *Handler) resolveTable(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	table, err := h.service.ResolveTable(r.Context(), r.PathValue("code"))
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, table)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	menu, err := h.service.GetMenu(r.Context(), h.restaurantFor(r))
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, menu)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	item, err := h.service.GetMenuItem(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	var req models.CreateMenuItemRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), requestID)
		return
	}
	if req.RestaurantID == "" {
		req.RestaurantID = h.restaurantID
	}

	item, err := h.service.CreateMenuItem(r.Context(), &req, requestID)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	var req models.UpdateMenuItemRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), requestID)
		return
	}

	item, err := h.service.UpdateMenuItem(r.Context(), r.PathValue("id"), &req, requestID)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	if err := h.service.DeleteMenuItem(r.Context(), r.PathValue("id"), requestID); err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// restaurantFor resolves the restaurant id for a request: an explicit
// restaurant_id query parameter wins, otherwise the configured default
func (h *Handler) restaurantFor(r *http.Request) string {
	if id := r.URL.Query().Get("restaurant_id"); id != "" {
		return id
	}
	return h.restaurantID
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, requestID string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusBadRequest, verr.Message, requestID)
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not found", requestID)
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", requestID)
	}
}
