package dto

import (
	"github.com/financeflowpro/backend/internal/models"
)

type RegisterRequest struct {
	Name string `json:"name"`
}

type UpdateRoleRequest struct {
	Role models.UserRole `json:"role"`
}

// StatusResponse is what the dashboard's status poll consumes.
type StatusResponse struct {
	UID    string            `json:"uid"`
	Status models.UserStatus `json:"status"`
}
