package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Kaanops/wishfulfill.github.io/internal/models"
	"github.com/Kaanops/wishfulfill.github.io/internal/repository"
	"github.com/Kaanops/wishfulfill.github.io/internal/services"
	"github.com/gorilla/mux"
)

type WishHandler struct {
	Service *services.WishService
}

func NewWishHandler(service *services.WishService) *WishHandler {
	return &WishHandler{Service: service}
}

// CreateWishHandler handles creation of a new wish.
func (h *WishHandler) CreateWishHandler(w http.ResponseWriter, r *http.Request) {
	var wish models.Wish
	if err := json.NewDecoder(r.Body).Decode(&wish); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreateWish(r.Context(), &wish)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// GetWishesHandler lists wishes. Defaults: active wishes with a settled
// posting fee, newest first, at most 50.
func (h *WishHandler) GetWishesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.WishFilter{
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Urgency:  q.Get("urgency"),
		PaidOnly: true,
		Limit:    50,
	}
	if filter.Status == "" {
		filter.Status = models.WishStatusActive
	}
	if v := q.Get("paid_only"); v != "" {
		paidOnly, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "Invalid paid_only value", http.StatusBadRequest)
			return
		}
		filter.PaidOnly = paidOnly
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil || limit <= 0 {
			http.Error(w, "Invalid limit value", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	wishes, err := h.Service.ListWishes(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if wishes == nil {
		wishes = []models.Wish{}
	}

	writeJSON(w, http.StatusOK, wishes)
}

// GetWishByIDHandler retrieves a specific wish by ID.
func (h *WishHandler) GetWishByIDHandler(w http.ResponseWriter, r *http.Request) {
	wishID := mux.Vars(r)["id"]

	wish, err := h.Service.GetWish(r.Context(), wishID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, wish)
}

// DonateRedirectHandler is the legacy donation path. Donations now go
// through the payment flow, so this no longer mutates anything; it
// tells the client where to go instead.
func (h *WishHandler) DonateRedirectHandler(w http.ResponseWriter, r *http.Request) {
	wishID := mux.Vars(r)["id"]

	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil {
		http.Error(w, "Invalid amount value", http.StatusBadRequest)
		return
	}

	// Still 404 on unknown wishes so old clients see the same errors.
	if _, err := h.Service.GetWish(r.Context(), wishID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Donations are processed through the payment flow",
		"redirect_to": "/api/payments/create",
		"purpose":     models.PurposeDonation,
		"wish_id":     wishID,
		"amount":      amount,
	})
}
