package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/financeflowpro/backend/internal/dto"
	"github.com/financeflowpro/backend/internal/response"
)

type MetricsService interface {
	Snapshot(ctx context.Context) (dto.FinancialSnapshot, error)
}

type metricsHandlers struct {
	ResponseHandler response.ResponseHandler
	MetricsSvc      MetricsService
}

func NewMetricsHandlers(deps *Deps) *metricsHandlers {
	return &metricsHandlers{
		ResponseHandler: deps.ResponseHandler,
		MetricsSvc:      deps.MetricsSvc,
	}
}

func (h *metricsHandlers) MetricsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetSnapshot)
	return r
}

func (h *metricsHandlers) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.MetricsSvc.Snapshot(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, snapshot)
}
