package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loanportal-backend/internal/adapter/http"
	"loanportal-backend/internal/adapter/middleware"
	"loanportal-backend/internal/adapter/repository/mysql"
	"loanportal-backend/internal/config"
	"loanportal-backend/internal/infrastructure/auth"
	"loanportal-backend/internal/infrastructure/cache"
	"loanportal-backend/internal/infrastructure/db"
	stripegw "loanportal-backend/internal/infrastructure/stripe"
	"loanportal-backend/internal/usecase/admin"
	"loanportal-backend/internal/usecase/loanapp"
	"loanportal-backend/internal/usecase/notify"
	"loanportal-backend/internal/usecase/payment"
	"loanportal-backend/internal/usecase/review"
	"loanportal-backend/internal/usecase/wallet"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	userRepo := mysql.NewUserRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	instRepo := mysql.NewInstallmentRepository(gdb)
	notifRepo := mysql.NewNotificationRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	gateway := stripegw.New(cfg.StripeSecretKey)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	notifier := notify.NewService(notifRepo)
	loanUC := loanapp.NewUsecase(loanRepo)
	reviewUC := review.NewUsecase(txm, notifier)
	walletUC := wallet.NewUsecase(userRepo, txm)
	paymentUC := payment.NewUsecase(instRepo, userRepo, txm, gateway, notifier, cfg.Currency)
	adminUC := admin.NewUsecase(loanRepo, userRepo)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC)
	adminH := httpadp.NewAdminHandler(reviewUC, loanUC, adminUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC)
	walletH := httpadp.NewWalletHandler(walletUC)
	notifH := httpadp.NewNotificationHandler(notifier)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	idem := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	api := e.Group("/api", middleware.WithAuth(verifier))

	api.POST("/loans", loanH.Apply, idem)
	api.GET("/loans/status", loanH.Status)
	api.GET("/loans/:loan_id", loanH.Get)

	api.POST("/payments/intent", paymentH.CreateIntent, idem)
	api.POST("/payments/confirm", paymentH.Confirm, idem)
	api.GET("/payments/installments", paymentH.Installments)
	api.GET("/payments/methods", paymentH.Methods)
	api.POST("/payments/setup-intent", paymentH.SetupIntent)

	api.GET("/wallet/transactions", walletH.Statement)

	api.GET("/notifications", notifH.List)
	api.PATCH("/notifications/read-all", notifH.MarkAllRead)
	api.PATCH("/notifications/:notification_id/read", notifH.MarkRead)
	api.DELETE("/notifications/:notification_id", notifH.Delete)

	adm := api.Group("/admin", middleware.RequireAdmin())
	adm.GET("/stats", adminH.Stats)
	adm.GET("/analytics", adminH.Analytics)
	adm.GET("/loans", adminH.ListLoans)
	adm.PATCH("/loans/:loan_id/decision", adminH.DecideLoan, idem)
	adm.POST("/loans/:loan_id/schedule", adminH.EnsureSchedule, idem)
	adm.GET("/loans/:loan_id/installments", adminH.LoanInstallments)
	adm.GET("/users", adminH.ListUsers)
	adm.PATCH("/users/:user_id/status", adminH.SetUserStatus)
	adm.DELETE("/users/:user_id", adminH.DeleteUser)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
