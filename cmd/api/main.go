package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/genbahq/cashsignal/internal/config"
	"github.com/genbahq/cashsignal/internal/forecast"
	"github.com/genbahq/cashsignal/internal/handler"
	"github.com/genbahq/cashsignal/internal/jobs"
	"github.com/genbahq/cashsignal/internal/middleware"
	"github.com/genbahq/cashsignal/internal/repository"
	"github.com/genbahq/cashsignal/internal/service"
	"github.com/genbahq/cashsignal/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	mailer := email.NewSender(cfg, logger)

	engine := forecast.NewEngine(repo, logger)
	previewer := forecast.NewPreviewer(repo, repo)
	deriver := forecast.NewDeriver(repo)

	authSvc := service.NewAuthService(repo, cfg, logger)
	companySvc := service.NewCompanyService(repo, logger)
	dashboardSvc := service.NewDashboardService(repo, engine, deriver, logger)
	reportsSvc := service.NewReportsService(repo, logger)
	paymentSvc := service.NewPaymentService(repo, previewer, mailer, logger)
	transactionSvc := service.NewTransactionService(repo, logger)
	projectSvc := service.NewProjectService(repo, logger)
	clientSvc := service.NewClientService(repo)
	notificationSvc := service.NewNotificationService(repo)

	h := handler.NewHandler(authSvc, companySvc, dashboardSvc, reportsSvc,
		paymentSvc, transactionSvc, projectSvc, clientSvc, notificationSvc, logger)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))

	authRouter.HandleFunc("/dashboard", h.GetDashboard).Methods("GET")
	authRouter.HandleFunc("/dashboard/signals", h.GetSignals).Methods("GET")
	authRouter.HandleFunc("/dashboard/chart", h.GetChart).Methods("GET")
	authRouter.HandleFunc("/dashboard/alerts", h.GetAlerts).Methods("GET")

	authRouter.HandleFunc("/reports/summary", h.GetReportSummary).Methods("GET")
	authRouter.HandleFunc("/reports/projects", h.GetProjectReport).Methods("GET")
	authRouter.HandleFunc("/reports/cashflow-table", h.GetCashflowTable).Methods("GET")

	authRouter.HandleFunc("/payment-requests", h.CreatePaymentRequest).Methods("POST")
	authRouter.HandleFunc("/payment-requests", h.ListPaymentRequests).Methods("GET")
	authRouter.HandleFunc("/payment-requests/{id}/approve", h.ApprovePaymentRequest).Methods("POST")
	authRouter.HandleFunc("/payment-requests/{id}/reject", h.RejectPaymentRequest).Methods("POST")
	authRouter.HandleFunc("/payment-requests/{id}/impact", h.GetPaymentImpact).Methods("GET")

	authRouter.HandleFunc("/transactions/income", h.RegisterIncome).Methods("POST")
	authRouter.HandleFunc("/transactions/expense", h.RegisterExpense).Methods("POST")
	authRouter.HandleFunc("/transactions", h.ListTransactions).Methods("GET")
	authRouter.HandleFunc("/transactions/import", h.ImportStatement).Methods("POST")
	authRouter.HandleFunc("/income-schedules", h.CreateIncomeSchedule).Methods("POST")
	authRouter.HandleFunc("/income-schedules", h.ListIncomeSchedules).Methods("GET")

	authRouter.HandleFunc("/projects", h.CreateProject).Methods("POST")
	authRouter.HandleFunc("/projects", h.ListProjects).Methods("GET")
	authRouter.HandleFunc("/projects/{id}", h.GetProject).Methods("GET")
	authRouter.HandleFunc("/projects/{id}", h.UpdateProject).Methods("PUT")

	authRouter.HandleFunc("/clients", h.CreateClient).Methods("POST")
	authRouter.HandleFunc("/clients", h.ListClients).Methods("GET")

	authRouter.HandleFunc("/notifications", h.ListNotifications).Methods("GET")
	authRouter.HandleFunc("/notifications/unread-count", h.GetUnreadCount).Methods("GET")
	authRouter.HandleFunc("/notifications/{id}/read", h.MarkNotificationRead).Methods("POST")

	authRouter.HandleFunc("/settings", h.GetSettings).Methods("GET")
	authRouter.HandleFunc("/settings", h.UpdateSettings).Methods("PUT")

	// Start background jobs
	scheduler, err := jobs.NewScheduler(repo, mailer, logger)
	if err != nil {
		logger.Fatalf("Failed to init scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
