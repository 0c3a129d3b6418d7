package handlers

import (
	"net/http"

	"github.com/Kaanops/wishfulfill.github.io/internal/models"
	"github.com/Kaanops/wishfulfill.github.io/internal/services"
)

// MetaHandler serves the health probe, the category list, aggregate
// statistics and the success stories.
type MetaHandler struct {
	Stats    *services.StatsService
	Payments *services.PaymentService
}

func NewMetaHandler(stats *services.StatsService, payments *services.PaymentService) *MetaHandler {
	return &MetaHandler{Stats: stats, Payments: payments}
}

func (h *MetaHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":          "healthy",
		"service":         "wish-platform",
		"payment_backend": h.Payments.GatewayName(),
	})
}

func (h *MetaHandler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"categories": models.Categories,
	})
}

func (h *MetaHandler) StatisticsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.GetStatistics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *MetaHandler) SuccessStoriesHandler(w http.ResponseWriter, r *http.Request) {
	stories, err := h.Stats.GetSuccessStories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if stories == nil {
		stories = []models.SuccessStory{}
	}

	writeJSON(w, http.StatusOK, stories)
}
