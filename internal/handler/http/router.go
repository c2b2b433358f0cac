package http

import (
	"log/slog"
	"os"

	"github.com/bilgin-hr/puantaj-backend-go/internal/handler/http/middleware"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Export     ExportHandler
	Employee   EmployeeHandler
	Location   LocationHandler
	User       UserHandler
	Audit      AuditHandler
	Dashboard  DashboardHandler
	Master     MasterHandler
}

func NewRouter(jwtService jwt.Service, frontendURL, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "puantaj-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/grid", h.Attendance.GetGrid)
				r.Put("/cell", h.Attendance.SaveCell)
				r.Post("/autofill", h.Attendance.AutoFill)
				r.Delete("/period", h.Attendance.ClearPeriod)
				r.Get("/summary/{employeeID}", h.Attendance.GetSummary)

				r.Route("/locks", func(r chi.Router) {
					r.Get("/", h.Attendance.GetLocks)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/toggle", h.Attendance.ToggleLock)
					})
				})
			})

			r.Route("/exports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/mikro-csv", h.Export.MikroCSV)
				r.Get("/grid-xlsx", h.Export.GridXLSX)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", h.Location.List)
				r.Get("/{id}", h.Location.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Location.Create)
					r.Put("/{id}", h.Location.Update)
					r.Delete("/{id}", h.Location.Delete)
				})
			})

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})

			// Admin only
			r.Route("/audit-logs", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Audit.List)
				r.Get("/actions", h.Audit.Actions)
			})

			r.Get("/dashboard", h.Dashboard.Overview)

			r.Route("/master", func(r chi.Router) {
				r.Get("/codes", h.Master.GetCodes)
				r.Get("/calendar", h.Master.GetCalendar)
				r.Get("/duties", h.Master.GetDuties)
			})
		})
	})
	return r
}
