package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/financeflowpro/backend/internal/models"
	"github.com/financeflowpro/backend/internal/store"
)

func newCheckDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-db",
		Short: "Print collection counts and accounts awaiting approval",
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := boot()
			if err != nil {
				return err
			}
			defer bs.Close()

			ctx := cmd.Context()

			users, err := store.NewUserStore(bs.Firestore).ListUsers(ctx)
			if err != nil {
				return err
			}
			invoices, err := store.NewInvoiceStore(bs.Firestore).List(ctx)
			if err != nil {
				return err
			}
			txs, err := store.NewTransactionStore(bs.Firestore).List(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("users: %d\ninvoices: %d\ntransactions: %d\n", len(users), len(invoices), len(txs))

			var pending int
			for _, u := range users {
				if u.Status == models.StatusPending {
					pending++
					fmt.Printf("pending approval: %s (uid %s, since %s)\n",
						u.Email, u.UID, u.CreatedAt.Format("2006-01-02"))
				}
			}
			if pending == 0 {
				fmt.Println("no accounts awaiting approval")
			}
			return nil
		},
	}
}
