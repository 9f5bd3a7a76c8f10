package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prakura/hrms-backend-go/internal/domain/user"
	"github.com/prakura/hrms-backend-go/internal/handler/http/middleware"
	"github.com/prakura/hrms-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	AllowedOrigins []string
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	// Logger receives request logs; a JSON stdout logger is built when nil.
	Logger *slog.Logger
}

type Handlers struct {
	Auth       AuthHandler
	Dashboard  DashboardHandler
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Attendance AttendanceHandler
	Batch      BatchHandler
	Intern     InternHandler
	Faculty    FacultyHandler
	Admin      AdminHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			ReplaceAttr: logFormat.ReplaceAttr,
		}))
	}
	logger = logger.With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
			})

			r.Get("/dashboard/stats", h.Dashboard.GetStats)

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.PeopleManagers...))
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.Put("/", h.Employee.UpdateEmployee)
					r.Patch("/", h.Employee.UpdateEmployee)
					r.Delete("/", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.ListRequests)
				r.Post("/", h.Leave.CreateRequest)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Leave.GetRequest)
					r.Put("/", h.Leave.UpdateRequest)
					r.Patch("/", h.Leave.UpdateRequest)
					r.Delete("/", h.Leave.DeleteRequest)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireRoles(user.LeaveApprovers...))
						r.Post("/approve", h.Leave.ApproveRequest)
						r.Post("/reject", h.Leave.RejectRequest)
					})
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Attendance.Get)
					r.Put("/", h.Attendance.Update)
					r.Patch("/", h.Attendance.Update)
					r.Delete("/", h.Attendance.Delete)
				})
			})

			r.Route("/batches", func(r chi.Router) {
				r.Get("/", h.Batch.List)
				r.Post("/", h.Batch.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Batch.Get)
					r.Put("/", h.Batch.Update)
					r.Patch("/", h.Batch.Update)
					r.Delete("/", h.Batch.Delete)
				})
			})

			r.Route("/interns", func(r chi.Router) {
				r.Get("/", h.Intern.List)
				r.Post("/", h.Intern.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Intern.Get)
					r.Put("/", h.Intern.Update)
					r.Patch("/", h.Intern.Update)
					r.Delete("/", h.Intern.Delete)
				})
			})

			r.Route("/faculties", func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.FacultyManagers...))
				r.Get("/", h.Faculty.List)
				r.Post("/", h.Faculty.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Faculty.Get)
					r.Put("/", h.Faculty.Update)
					r.Patch("/", h.Faculty.Update)
					r.Post("/toggle-status", h.Faculty.ToggleStatus)
					r.Delete("/", h.Faculty.Delete)
				})
			})

			// Super admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleSuperAdmin))
				r.Get("/snapshot", h.Admin.ExportSnapshot)
				r.Post("/reset", h.Admin.ResetSnapshot)
			})
		})
	})
	return r
}
