package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/financeflowpro/backend/internal/dto"
	"github.com/financeflowpro/backend/internal/models"
	"github.com/financeflowpro/backend/internal/response"
)

type InvoiceService interface {
	List(ctx context.Context) ([]models.Invoice, error)
	Save(ctx context.Context, req dto.SaveInvoiceRequest) (*models.Invoice, error)
	UpdateStatus(ctx context.Context, refID string, st models.InvoiceStatus) error
	Delete(ctx context.Context, refID string) error
}

type invoiceHandlers struct {
	ResponseHandler response.ResponseHandler
	InvoiceSvc      InvoiceService
}

func NewInvoiceHandlers(deps *Deps) *invoiceHandlers {
	return &invoiceHandlers{
		ResponseHandler: deps.ResponseHandler,
		InvoiceSvc:      deps.InvoiceSvc,
	}
}

func (h *invoiceHandlers) InvoiceRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListInvoices)
	r.Post("/", h.SaveInvoice)
	r.Put("/{refId}", h.UpdateInvoice)
	r.Put("/{refId}/status", h.UpdateStatus)
	r.Delete("/{refId}", h.DeleteInvoice)
	return r
}

func (h *invoiceHandlers) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.InvoiceSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, invoices)
}

func (h *invoiceHandlers) SaveInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	req.RefID = "" // POST always creates
	inv, err := h.InvoiceSvc.Save(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, inv)
}

func (h *invoiceHandlers) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	req.RefID = chi.URLParam(r, "refId")
	inv, err := h.InvoiceSvc.Save(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, inv)
}

// UpdateStatus backs the status dropdown; it does not require the full form.
func (h *invoiceHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateInvoiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	refID := chi.URLParam(r, "refId")
	if err := h.InvoiceSvc.UpdateStatus(r.Context(), refID, req.Status); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *invoiceHandlers) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	refID := chi.URLParam(r, "refId")
	if err := h.InvoiceSvc.Delete(r.Context(), refID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
