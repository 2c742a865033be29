package dashboard

import (
	"net/http"
	"strconv"
	"time"

	"qr-ordering/internal/httpx"
)

// Handler exposes the dashboard analytics over HTTP
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register wires the dashboard routes into the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/dashboard/summary", h.summary)
	mux.HandleFunc("GET /api/dashboard/hourly", h.hourly)
	mux.HandleFunc("GET /api/dashboard/weekly", h.weekly)
	mux.HandleFunc("GET /api/dashboard/popular", h.popular)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) hourly(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	day := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD", requestID)
			return
		}
		day = parsed
	}

	buckets, err := h.service.Hourly(r.Context(), day)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, buckets)
}

func (h *Handler) weekly(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	buckets, err := h.service.Weekly(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, buckets)
}

func (h *Handler) popular(w http.ResponseWriter, r *http.Request) {
	requestID := httpx.RequestID(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "limit must be an integer", requestID)
			return
		}
		limit = parsed
	}

	items, err := h.service.Popular(r.Context(), limit)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", requestID)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, items)
}
