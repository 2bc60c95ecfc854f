package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gjd78/planilla-backend/internal/config"
	"github.com/gjd78/planilla-backend/internal/handler/http/middleware"
	"github.com/gjd78/planilla-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
	Dev        DevHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "planilla-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Photos and QR badges
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/verify", h.Auth.Verify)
				r.Put("/profile", h.Auth.UpdateProfile)
			})

			// Super admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin)
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}/stats", h.Employee.MonthlyStats)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/today", h.Attendance.Today)

				// Scanner stations
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireScanner)
					r.Post("/entry", h.Attendance.Entry)
					r.Post("/exit", h.Attendance.Exit)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireViewer)
				r.Get("/weekly", h.Report.Weekly)
				r.Get("/weekly/pdf", h.Report.WeeklyPDF)
				r.Get("/daily", h.Report.Daily)
				r.Get("/monthly", h.Report.Monthly)
			})

			r.Get("/dashboard/stats", h.Dashboard.Stats)

			if cfg.App.Env != "production" && h.Dev != nil {
				r.Route("/dev", func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/reset-attendance", h.Dev.ResetAttendance)
					r.Get("/counts", h.Dev.Counts)
				})
			}
		})
	})

	return r
}
