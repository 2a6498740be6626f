package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gradinita/leave-management/internal"
	"github.com/gradinita/leave-management/internal/auth"
	authpostgres "github.com/gradinita/leave-management/internal/auth/postgres"
	"github.com/gradinita/leave-management/internal/balance"
	"github.com/gradinita/leave-management/internal/booking"
	bookingpostgres "github.com/gradinita/leave-management/internal/booking/postgres"
	"github.com/gradinita/leave-management/internal/closedperiod"
	closedperiodpostgres "github.com/gradinita/leave-management/internal/closedperiod/postgres"
	"github.com/gradinita/leave-management/internal/holiday"
	"github.com/gradinita/leave-management/internal/medicalleave"
	medicalleavepostgres "github.com/gradinita/leave-management/internal/medicalleave/postgres"
	"github.com/gradinita/leave-management/internal/transport/rest"
	"github.com/gradinita/leave-management/internal/transport/swagger"
	"github.com/gradinita/leave-management/internal/user"
	userpostgres "github.com/gradinita/leave-management/internal/user/postgres"
	"github.com/gradinita/leave-management/internal/workcalendar"
	"github.com/gradinita/leave-management/pkg/logger"
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
	Gorm   *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) error {
	// A broken OpenAPI document should stop the server before it serves it.
	if _, err := swagger.LoadSpec(context.Background(), "./api/openapi.yml"); err != nil {
		return err
	}

	cfg := deps.Config
	gdb := deps.Gorm
	lg := deps.Logger

	// Repositories
	userRepo := userpostgres.NewUserRepository(gdb)
	bookingRepo := bookingpostgres.NewBookingRepository(gdb)
	medicalRepo := medicalleavepostgres.NewMedicalLeaveRepository(gdb)
	closedRepo := closedperiodpostgres.NewClosedPeriodRepository(gdb)
	authStore := authpostgres.NewRepository(gdb)

	// Holiday calendar and working-day counting
	holidayClient := holiday.NewClient(holiday.ClientConfig{
		APIURL:       cfg.Holidays.APIURL,
		FetchTimeout: cfg.Holidays.FetchTimeout,
	}, lg)
	resolver := holiday.NewResolver(holidayClient, holiday.NewMemoryCache(), lg)
	counter := workcalendar.NewCounter(resolver)

	// Services
	hasher := auth.NewHasher(cfg.Security.PasswordSalt)
	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authStore, hasher, tokenGen)
	userService := user.NewService(userRepo, hasher, lg)
	bookingService := booking.NewService(bookingRepo, userRepo, lg)
	medicalService := medicalleave.NewService(medicalRepo, counter, lg)
	closedService := closedperiod.NewService(closedRepo, lg)
	engine := balance.NewEngine(userRepo, bookingRepo, closedRepo, resolver, lg)

	// Handlers
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	bookingHandler := booking.NewHandler(bookingService, engine, userRepo)
	medicalHandler := medicalleave.NewHandler(medicalService)
	closedHandler := closedperiod.NewHandler(closedService)
	balanceHandler := balance.NewHandler(engine)

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		authHandler,
		userHandler,
		bookingHandler,
		medicalHandler,
		closedHandler,
		balanceHandler,
		lg,
	)

	return nil
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gdb, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		Gorm:   gdb,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the raw database connection used for bootstrap and health.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm wraps the shared *sql.DB so repositories and the health check use
// the same pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
}
