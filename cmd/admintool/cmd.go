// admintool is the operator CLI: seed the first admin account, inspect the
// collections, and watch a user's approval status from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/financeflowpro/backend/internal/bootstrap"
	"github.com/financeflowpro/backend/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "admintool",
		Short:         "FinanceFlow operator utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCreateAdminCmd())
	root.AddCommand(newCheckDBCmd())
	root.AddCommand(newWatchCmd())
	return root
}

func main() {
	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// boot initializes logging and the Firestore client for a subcommand.
func boot() (*bootstrap.Bootstrap, error) {
	cfg := config.New()
	return bootstrap.Run(cfg)
}
