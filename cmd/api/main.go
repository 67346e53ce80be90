package main

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

	"github.com/cmlabs-hris/hrms-lite/internal/config"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/transaction"
	appHTTP "github.com/cmlabs-hris/hrms-lite/internal/handler/http"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/mongodb"
	mongoRepo "github.com/cmlabs-hris/hrms-lite/internal/repository/mongodb"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hrms-lite/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/hrms-lite/internal/service/employee"
	"golang.org/x/sync/errgroup"
)

// repositories is the storage backend selected by STORAGE_DRIVER.
type repositories struct {
	tx         transaction.Manager
	employee   employee.EmployeeRepository
	attendance attendance.AttendanceRepository
	close      func()
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.App.StorageDriver {
	case config.StorageDriverMongoDB:
		db, err := mongodb.NewMongoDB(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		if err := mongoRepo.EnsureIndexes(ctx, db); err != nil {
			_ = db.Close(context.Background())
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
		return &repositories{
			tx:         mongoRepo.NewTxManager(),
			employee:   mongoRepo.NewEmployeeRepository(db),
			attendance: mongoRepo.NewAttendanceRepository(db),
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = db.Close(ctx)
			},
		}, nil

	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		return &repositories{
			tx:         postgresql.NewTxManager(db),
			employee:   postgresql.NewEmployeeRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
			close:      db.Close,
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.SlogLevel(), cfg.App.Env)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open storage", "driver", cfg.App.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	employeeSvc := employeeService.NewEmployeeService(repos.tx, repos.employee, repos.attendance)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(logger, cfg.App.FrontendURL, employeeHandler, attendanceHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr, "storage", cfg.App.StorageDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
