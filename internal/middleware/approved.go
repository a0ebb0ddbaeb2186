package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/financeflowpro/backend/internal/errs"
	"github.com/financeflowpro/backend/internal/models"
)

const CurrentUserKey contextKey = "currentUser"

type userAMGetter interface {
	CurrentUser(ctx context.Context, uid string) (*models.User, error)
}

type ApprovalMiddleware struct {
	Users userAMGetter
}

func NewApprovalMiddleware(users userAMGetter) *ApprovalMiddleware {
	return &ApprovalMiddleware{Users: users}
}

// RequireApproved loads the membership record for the authenticated UID and
// only lets approved accounts through. Pending and rejected accounts get a
// 403 carrying their status, and a vanished record gets a 404 so the client
// clears its session. Runs after FirebaseAuth.
func (m *ApprovalMiddleware) RequireApproved(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := UID(r.Context())
		if uid == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		user, err := m.Users.CurrentUser(r.Context(), uid)
		if err != nil {
			var notFound *errs.NotFoundError
			if errors.As(err, &notFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			http.Error(w, "failed to load user", http.StatusInternalServerError)
			return
		}

		if user.Status != models.StatusApproved {
			http.Error(w, "account not approved: "+string(user.Status), http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), CurrentUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates the admin surface. Runs after RequireApproved. The user
// service checks the actor again; the backend's access rules are the real
// enforcement layer.
func (m *ApprovalMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !CurrentUser(r.Context()).IsAdmin() {
			http.Error(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the record attached by RequireApproved, or nil.
func CurrentUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(CurrentUserKey).(*models.User)
	return user
}
