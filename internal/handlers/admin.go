package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/financeflowpro/backend/internal/dto"
	"github.com/financeflowpro/backend/internal/middleware"
	"github.com/financeflowpro/backend/internal/response"
)

type adminHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
}

func NewAdminHandlers(deps *Deps) *adminHandlers {
	return &adminHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
	}
}

func (h *adminHandlers) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListUsers)
	r.Put("/{userId}/approve", h.ApproveUser)
	r.Put("/{userId}/reject", h.RejectUser)
	r.Put("/{userId}/role", h.UpdateRole)
	r.Delete("/{userId}", h.DeleteUser)
	return r
}

func (h *adminHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	users, err := h.UserSvc.ListUsers(r.Context(), actor)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, users)
}

func (h *adminHandlers) ApproveUser(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	uid := chi.URLParam(r, "userId")
	if err := h.UserSvc.Approve(r.Context(), actor, uid); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *adminHandlers) RejectUser(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	uid := chi.URLParam(r, "userId")
	if err := h.UserSvc.Reject(r.Context(), actor, uid); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *adminHandlers) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	actor := middleware.CurrentUser(r.Context())
	uid := chi.URLParam(r, "userId")
	if err := h.UserSvc.SetRole(r.Context(), actor, uid, req.Role); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *adminHandlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor := middleware.CurrentUser(r.Context())
	uid := chi.URLParam(r, "userId")
	if err := h.UserSvc.Delete(r.Context(), actor, uid); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
