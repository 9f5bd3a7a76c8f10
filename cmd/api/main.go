package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prakura/hrms-backend-go/internal/config"
	appHTTP "github.com/prakura/hrms-backend-go/internal/handler/http"
	"github.com/prakura/hrms-backend-go/internal/pkg/cron"
	"github.com/prakura/hrms-backend-go/internal/pkg/jwt"
	"github.com/prakura/hrms-backend-go/internal/pkg/latency"
	"github.com/prakura/hrms-backend-go/internal/pkg/metrics"
	"github.com/prakura/hrms-backend-go/internal/pkg/storage"
	"github.com/prakura/hrms-backend-go/internal/repository/accounts"
	"github.com/prakura/hrms-backend-go/internal/repository/snapshot"
	attendanceService "github.com/prakura/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/prakura/hrms-backend-go/internal/service/auth"
	batchService "github.com/prakura/hrms-backend-go/internal/service/batch"
	dashboardService "github.com/prakura/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/prakura/hrms-backend-go/internal/service/employee"
	"github.com/prakura/hrms-backend-go/internal/service/facade"
	facultyService "github.com/prakura/hrms-backend-go/internal/service/faculty"
	internService "github.com/prakura/hrms-backend-go/internal/service/intern"
	"github.com/prakura/hrms-backend-go/internal/service/leave"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.App.LogLevel)})))

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, storage.Config{
		Driver:   cfg.Storage.Driver,
		BasePath: cfg.Storage.BasePath,
		SQLite:   cfg.Storage.SQLitePath,
		Postgres: storage.PostgresConfig{
			DSN:      cfg.DatabaseURL(),
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		},
		Redis: storage.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		S3: storage.S3Config{
			Bucket:          cfg.S3.Bucket,
			Prefix:          cfg.S3.Prefix,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			PathStyle:       cfg.S3.UsePathStyle,
		},
	})
	if err != nil {
		return err
	}
	defer backend.Close()

	m := metrics.New()
	db := snapshot.NewDB(backend,
		snapshot.WithKey(cfg.Storage.Key),
		snapshot.WithQuota(cfg.Storage.QuotaBytes),
		snapshot.WithSizeObserver(m.ObserveSnapshotSize),
	)
	// Seed on first start and surface a corrupt snapshot before serving.
	if _, err := db.Load(ctx); err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	rt := facade.Runtime{
		Latency: latency.New(cfg.Latency.Min, cfg.Latency.Max),
		Metrics: m,
	}
	loc := cfg.Location()

	userRepo, err := accounts.NewUserRepository(accounts.DemoAccounts(), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(snapshot.NewEmployeeRepository(db), rt)
	leaveSvc := leave.NewLeaveService(snapshot.NewLeaveRequestRepository(db), rt)
	attendanceSvc := attendanceService.NewAttendanceService(snapshot.NewAttendanceRepository(db), rt, attendanceService.Policy{
		LateAfter: cfg.Attendance.LateAfter,
		ShiftEnd:  cfg.Attendance.ShiftEnd,
		Location:  loc,
	})
	batchSvc := batchService.NewBatchService(snapshot.NewBatchRepository(db), rt)
	internSvc := internService.NewInternService(snapshot.NewInternRepository(db), rt)
	facultySvc := facultyService.NewFacultyService(snapshot.NewFacultyRepository(db), rt)
	dashboardSvc := dashboardService.NewDashboardService(snapshot.NewDashboardRepository(db), rt, loc)

	scheduler := cron.NewScheduler(loc, m)
	if cfg.Cron.Enabled {
		if err := cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler, cfg.Cron.AutoCloseSpec); err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.App.AllowedOrigins,
		Metrics:        m.Handler(),
	}, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Batch:      appHTTP.NewBatchHandler(batchSvc),
		Intern:     appHTTP.NewInternHandler(internSvc),
		Faculty:    appHTTP.NewFacultyHandler(facultySvc),
		Admin:      appHTTP.NewAdminHandler(db),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", srv.Addr, "storage", backend.Driver(), "key", db.Key())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
