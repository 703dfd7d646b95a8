package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/complaint-redressal/internal"
	"github.com/frahmantamala/complaint-redressal/internal/auth"
	authPostgres "github.com/frahmantamala/complaint-redressal/internal/auth/postgres"
	"github.com/frahmantamala/complaint-redressal/internal/category"
	"github.com/frahmantamala/complaint-redressal/internal/complaint"
	complaintPostgres "github.com/frahmantamala/complaint-redressal/internal/complaint/postgres"
	"github.com/frahmantamala/complaint-redressal/internal/core/events"
	"github.com/frahmantamala/complaint-redressal/internal/department"
	departmentPostgres "github.com/frahmantamala/complaint-redressal/internal/department/postgres"
	"github.com/frahmantamala/complaint-redressal/internal/report"
	reportPostgres "github.com/frahmantamala/complaint-redressal/internal/report/postgres"
	"github.com/frahmantamala/complaint-redressal/internal/transport"
	"github.com/frahmantamala/complaint-redressal/internal/transport/rest"
	"github.com/frahmantamala/complaint-redressal/internal/transport/swagger"
	"github.com/frahmantamala/complaint-redressal/internal/user"
	userPostgres "github.com/frahmantamala/complaint-redressal/internal/user/postgres"
	"github.com/frahmantamala/complaint-redressal/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	gormDB, err := initGorm(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	bus := events.NewEventBus(lg)
	events.SubscribeAudit(bus, lg)

	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.AccessTokenDuration)
	authSvc := auth.NewService(authPostgres.NewRepository(gormDB), tokenGen, config.Security.BCryptCost, lg)
	userSvc := user.NewService(userPostgres.NewUserRepository(gormDB), authSvc, lg)
	deptSvc := department.NewService(departmentPostgres.NewDepartmentRepository(gormDB), lg)
	complaintSvc := complaint.NewService(complaintPostgres.NewComplaintRepository(gormDB), deptSvc, bus, lg)
	reportSvc := report.NewService(reportPostgres.NewReportRepository(db), lg)

	base := transport.NewBaseHandler(lg)
	handlers := rest.Handlers{
		Auth:        auth.NewHandler(authSvc),
		RBAC:        authSvc.RBACAuthorization(),
		User:        user.NewHandler(userSvc),
		Complaint:   complaint.NewHandler(complaintSvc),
		Department:  department.NewHandler(deptSvc),
		Category:    category.NewHandler(base, category.NewService(lg)),
		Report:      report.NewHandler(reportSvc),
		Health:      rest.NewHealthHandler(base, db.DB),
		OpenAPIPath: config.Server.OpenAPIPath,
	}

	if config.Server.OpenAPIPath != "" {
		doc, err := swagger.LoadSpec(context.Background(), config.Server.OpenAPIPath)
		if err != nil {
			lg.Warn("OpenAPI document unavailable", "error", err)
		} else if h, err := swagger.JSONHandler(doc); err != nil {
			lg.Warn("OpenAPI document unavailable", "error", err)
		} else {
			handlers.OpenAPIJSON = h
		}
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, handlers, rest.RouterOptions{
		AllowedOrigins: config.Server.AllowedOrigins,
		Logger:         lg,
	})

	return &Dependencies{
		Config: config,
		DB:     db,
		Router: router,
		Logger: lg,
	}, nil
}
