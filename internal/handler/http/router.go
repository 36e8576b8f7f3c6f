package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/restopay/payroll-backend-go/internal/handler/http/middleware"
	"github.com/restopay/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	reportHandler ReportHandler,
	motivationHandler MotivationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/report", func(r chi.Router) {
				r.Post("/refresh", reportHandler.Refresh)
				r.Get("/summary", reportHandler.Summary)
				r.Get("/summary/export", reportHandler.ExportSummary)
				r.Get("/detail/{employeeID}", reportHandler.Detail)
				r.Post("/payslip/{employeeID}", reportHandler.Payslip)
			})

			r.Route("/programs", func(r chi.Router) {
				r.Post("/", motivationHandler.CreateProgram)
				r.Get("/", motivationHandler.ListPrograms)
				r.Get("/{programID}", motivationHandler.GetProgram)
				r.Put("/{programID}", motivationHandler.UpdateProgram)
				r.Delete("/{programID}", motivationHandler.DeleteProgram)
				r.Post("/assign", motivationHandler.AssignProgram)
			})

			r.Get("/departments", motivationHandler.ListDepartments)
		})
	})
	return r
}
