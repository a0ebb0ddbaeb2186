package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/financeflowpro/backend/internal/bootstrap"
	"github.com/financeflowpro/backend/internal/config"
	"github.com/financeflowpro/backend/internal/handlers"
	"github.com/financeflowpro/backend/internal/response"
	"github.com/financeflowpro/backend/internal/router"
	"github.com/financeflowpro/backend/internal/services"
	"github.com/financeflowpro/backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	godotenv.Load()
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	istore := store.NewInvoiceStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)

	// services
	userv := services.NewUserService(ustore)
	iserv := services.NewInvoiceService(istore)
	tserv := services.NewTransactionService(tstore)
	mserv := services.NewMetricsService(istore, tstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.Config = cfg
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.InvoiceSvc = iserv
	deps.TransactionSvc = tserv
	deps.MetricsSvc = mserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
