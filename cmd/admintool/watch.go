package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/financeflowpro/backend/internal/approval"
	"github.com/financeflowpro/backend/internal/store"
	"github.com/financeflowpro/backend/pkg/logger"
)

func newWatchCmd() *cobra.Command {
	var (
		uid        string
		interval   time.Duration
		revocation bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll a user's approval status until it settles",
		Long: "Follows the same poll loop the dashboard runs while an account " +
			"is pending: re-fetches the user record on an interval and reports " +
			"each state change. Ends on approval (unless --revocation), " +
			"rejection, or Ctrl-C.",
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := boot()
			if err != nil {
				return err
			}
			defer bs.Close()

			ctx := logger.ToContext(cmd.Context(), bs.Log)
			ustore := store.NewUserStore(bs.Firestore)

			user, err := ustore.GetUser(ctx, uid)
			if err != nil {
				return err
			}
			fmt.Printf("%s is %s\n", user.Email, user.Status)

			machine := approval.NewMachine(approval.Hooks{
				OnPending:  func() { fmt.Println("-> pending: awaiting admin approval") },
				OnApproved: func() { fmt.Println("-> approved") },
				OnRejected: func() { fmt.Println("-> rejected") },
			})
			machine.Observe(user.Status)

			switch machine.State() {
			case approval.StateRejected:
				return nil
			case approval.StateApproved:
				if !revocation {
					return nil
				}
			}

			watcher := approval.NewWatcher(ustore, machine, interval, revocation)
			watcher.Start(ctx, uid)
			defer watcher.Stop()

			select {
			case <-watcher.Done():
			case <-ctx.Done():
			}

			if machine.State() == approval.StateUnauthenticated {
				fmt.Println("user record is gone; session would be cleared")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&uid, "uid", "", "user document id to watch")
	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "poll interval")
	cmd.Flags().BoolVar(&revocation, "revocation", false, "keep watching after approval to catch revocation")
	cmd.MarkFlagRequired("uid")
	return cmd
}
