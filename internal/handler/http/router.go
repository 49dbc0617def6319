package http

import (
	"log/slog"
	"os"

	"github.com/depotworks/workforce-backend-go/internal/handler/http/middleware"
	"github.com/depotworks/workforce-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
	LogLevel    slog.Level
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	rosterHandler RosterHandler,
	dailyLogHandler DailyLogHandler,
	masterHandler MasterHandler,
	catalogHandler CatalogHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", attendanceHandler.Set)
					r.Post("/batch", attendanceHandler.BatchSet)
					r.Post("/bulk", attendanceHandler.BulkSet)
					r.Post("/auto-advance", attendanceHandler.AutoAdvance)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/my", leaveHandler.ListMy)
				r.Get("/{id}", leaveHandler.Get)
				r.Post("/{id}/cancel", leaveHandler.Cancel)
				r.Delete("/{id}", leaveHandler.Delete)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", leaveHandler.List)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
					r.Post("/{id}/cancellation/confirm", leaveHandler.ConfirmCancellation)
					r.Post("/{id}/cancellation/deny", leaveHandler.DenyCancellation)
				})
			})

			r.Route("/rosters", func(r chi.Router) {
				r.Get("/{date}", rosterHandler.Get)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/", rosterHandler.Set)
					r.Post("/copy", rosterHandler.CopyRange)
				})
			})

			r.Route("/daily-logs", func(r chi.Router) {
				r.Get("/{date}", dailyLogHandler.ListByDate)
				r.Post("/", dailyLogHandler.CreateNote)
				r.Put("/{id}", dailyLogHandler.UpdateNote)
				r.Delete("/{id}", dailyLogHandler.DeleteNote)
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", masterHandler.ListTeams)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", masterHandler.CreateTeam)
					r.Put("/{id}", masterHandler.UpdateTeam)
					r.Delete("/{id}", masterHandler.DeleteTeam)
				})
			})

			r.Route("/workers", func(r chi.Router) {
				r.Get("/me", masterHandler.Me)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", masterHandler.ListWorkers)
					r.Get("/{id}", masterHandler.GetWorker)
					r.Put("/{id}", masterHandler.UpdateWorker)
					r.Post("/{id}/approve", masterHandler.ApproveWorker)
				})
			})

			r.Route("/catalog", func(r chi.Router) {
				r.Route("/categories", func(r chi.Router) {
					r.Get("/", catalogHandler.ListCategories)

					// Manager only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/", catalogHandler.CreateCategory)
						r.Put("/{id}", catalogHandler.UpdateCategory)
						r.Delete("/{id}", catalogHandler.DeleteCategory)
					})
				})

				r.Route("/products", func(r chi.Router) {
					r.Get("/", catalogHandler.ListProducts)
					r.Get("/{id}", catalogHandler.GetProduct)

					// Manager only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Post("/", catalogHandler.CreateProduct)
						r.Put("/{id}", catalogHandler.UpdateProduct)
						r.Delete("/{id}", catalogHandler.DeleteProduct)
					})
				})
			})
		})
	})
	return r
}
