package services

import (
	"context"
	"time"

	"github.com/financeflowpro/backend/internal/errs"
	"github.com/financeflowpro/backend/internal/models"
	"github.com/financeflowpro/backend/pkg/helpers"
	"github.com/financeflowpro/backend/pkg/logger"
)

type userUSStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUserStatus(ctx context.Context, uid string, st models.UserStatus) error
	UpdateUserRole(ctx context.Context, uid string, role models.UserRole) error
	RecordLogin(ctx context.Context, uid string, at time.Time) error
	DeleteUser(ctx context.Context, uid string) error
}

type userService struct {
	store userUSStore
}

func NewUserService(store userUSStore) *userService {
	return &userService{store: store}
}

// Register creates the membership record for a freshly authenticated account.
// New users always start pending with the base role; an admin has to approve
// them before any data becomes visible.
func (s *userService) Register(ctx context.Context, uid, email, name string) (*models.User, error) {
	log := logger.FromContext(ctx)

	user := &models.User{
		UID:       uid,
		Email:     email,
		Name:      name,
		Role:      models.RoleUser,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user in store", "error", err)
		return nil, err
	}

	log.Info("user registered, awaiting approval", "name", name)
	return user, nil
}

func (s *userService) CurrentUser(ctx context.Context, uid string) (*models.User, error) {
	return s.store.GetUser(ctx, uid)
}

// RecordLogin stamps lastLogin. Called once per sign-in, not per request.
func (s *userService) RecordLogin(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := s.store.RecordLogin(ctx, uid, now); err != nil {
		return nil, err
	}
	user.LastLogin = helpers.Ptr(now)
	return user, nil
}

// ListUsers returns every membership record. Admin only.
func (s *userService) ListUsers(ctx context.Context, actor *models.User) ([]*models.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.store.ListUsers(ctx)
}

func (s *userService) Approve(ctx context.Context, actor *models.User, uid string) error {
	return s.setStatus(ctx, actor, uid, models.StatusApproved)
}

// Reject marks the account rejected. The record is kept; rejection is a
// status change, not removal.
func (s *userService) Reject(ctx context.Context, actor *models.User, uid string) error {
	return s.setStatus(ctx, actor, uid, models.StatusRejected)
}

func (s *userService) setStatus(ctx context.Context, actor *models.User, uid string, st models.UserStatus) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.store.UpdateUserStatus(ctx, uid, st); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("user status changed", "target_uid", uid, "status", st)
	return nil
}

func (s *userService) SetRole(ctx context.Context, actor *models.User, uid string, role models.UserRole) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if !models.ValidRole(role) {
		return errs.NewValidationError("invalid role: " + string(role))
	}
	if err := s.store.UpdateUserRole(ctx, uid, role); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("user role changed", "target_uid", uid, "role", role)
	return nil
}

func (s *userService) Delete(ctx context.Context, actor *models.User, uid string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.store.DeleteUser(ctx, uid)
}

func requireAdmin(actor *models.User) error {
	if !actor.IsAdmin() {
		return errs.NewForbiddenError("admin access required")
	}
	return nil
}
