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

type TransactionService interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Save(ctx context.Context, req dto.SaveTransactionRequest) (*models.Transaction, error)
	Delete(ctx context.Context, refID string) error
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTransactions)
	r.Post("/", h.SaveTransaction)
	r.Put("/{refId}", h.UpdateTransaction)
	r.Delete("/{refId}", h.DeleteTransaction)
	return r
}

func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.TransactionSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txs)
}

func (h *transactionHandlers) SaveTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	req.RefID = "" // POST always creates
	tx, err := h.TransactionSvc.Save(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	req.RefID = chi.URLParam(r, "refId")
	tx, err := h.TransactionSvc.Save(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	refID := chi.URLParam(r, "refId")
	if err := h.TransactionSvc.Delete(r.Context(), refID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
