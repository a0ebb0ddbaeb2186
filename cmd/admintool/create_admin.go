package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/financeflowpro/backend/internal/errs"
	"github.com/financeflowpro/backend/internal/models"
	"github.com/financeflowpro/backend/internal/store"
)

func newCreateAdminCmd() *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Seed an approved admin membership record",
		Long: "Creates a users document with role Admin and status approved. " +
			"Credentials live with the authentication provider; create the " +
			"matching account there with the same email.",
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := boot()
			if err != nil {
				return err
			}
			defer bs.Close()

			ctx := cmd.Context()
			ustore := store.NewUserStore(bs.Firestore)

			existing, err := ustore.GetUserByEmail(ctx, email)
			if err != nil {
				var notFound *errs.NotFoundError
				if !errors.As(err, &notFound) {
					return err
				}
			}
			if existing != nil {
				fmt.Printf("admin already exists: %s (uid %s, role %s)\n", email, existing.UID, existing.Role)
				return nil
			}

			user := &models.User{
				UID:       uuid.NewString(),
				Email:     email,
				Name:      name,
				Role:      models.RoleAdmin,
				Status:    models.StatusApproved,
				CreatedAt: time.Now(),
			}
			if err := ustore.CreateUser(ctx, user); err != nil {
				return err
			}

			fmt.Printf("admin created: %s (uid %s)\n", email, user.UID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email address")
	cmd.Flags().StringVar(&name, "name", "Administrator", "display name")
	cmd.MarkFlagRequired("email")
	return cmd
}
