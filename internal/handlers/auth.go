package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/financeflowpro/backend/internal/dto"
	"github.com/financeflowpro/backend/internal/middleware"
	"github.com/financeflowpro/backend/internal/models"
	"github.com/financeflowpro/backend/internal/response"
)

type UserService interface {
	Register(ctx context.Context, uid, email, name string) (*models.User, error)
	CurrentUser(ctx context.Context, uid string) (*models.User, error)
	RecordLogin(ctx context.Context, uid string) (*models.User, error)
	ListUsers(ctx context.Context, actor *models.User) ([]*models.User, error)
	Approve(ctx context.Context, actor *models.User, uid string) error
	Reject(ctx context.Context, actor *models.User, uid string) error
	SetRole(ctx context.Context, actor *models.User, uid string, role models.UserRole) error
	Delete(ctx context.Context, actor *models.User, uid string) error
}

type authHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
}

func NewAuthHandlers(deps *Deps) *authHandlers {
	return &authHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
	}
}

func (h *authHandlers) AuthRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.Register)
	r.Post("/session", h.Session)
	r.Get("/me", h.Me)
	r.Get("/status", h.Status)
	return r
}

// Register creates the pending membership record after the client has
// signed up with the authentication provider.
func (h *authHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	email := middleware.Email(r.Context())
	user, err := h.UserSvc.Register(r.Context(), uid, email, req.Name)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, user)
}

// Session is called once per sign-in: stamps lastLogin and returns the
// current record so the client can pick its initial view.
func (h *authHandlers) Session(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	user, err := h.UserSvc.RecordLogin(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

func (h *authHandlers) Me(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	user, err := h.UserSvc.CurrentUser(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

// Status is the poll target for accounts waiting on approval.
func (h *authHandlers) Status(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	user, err := h.UserSvc.CurrentUser(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.StatusResponse{
		UID:    user.UID,
		Status: user.Status,
	})
}
