package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/brainbin-app/brainbin-api/internal/auth"
	"github.com/brainbin-app/brainbin-api/internal/config"
	"github.com/brainbin-app/brainbin-api/internal/handler"
	"github.com/brainbin-app/brainbin-api/internal/middleware"
)

// New assembles the Brainbin API routes behind the shared middleware stack.
func New(
	cfg *config.Config,
	jwtAuth auth.JWTAuthenticator,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	noteHandler *handler.NoteHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	session := middleware.RequireSession(jwtAuth, cfg.Token.Secret)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Post("/send-reset-otp", authHandler.SendResetOTP)
			r.Post("/reset-password", authHandler.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(session)
				r.Post("/send-verify-otp", authHandler.SendVerifyOTP)
				r.Post("/verify-email", authHandler.VerifyEmail)
				r.Get("/is-auth", authHandler.IsAuthenticated)
			})
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(session)
			r.Get("/data", userHandler.Data)
		})

		r.Route("/note", func(r chi.Router) {
			r.Use(session)
			r.Post("/create", noteHandler.Create)
			r.Get("/my-notes", noteHandler.MyNotes)
			r.Put("/update/{id}", noteHandler.Update)
			r.Delete("/delete/{id}", noteHandler.Delete)
			r.Patch("/star/{id}", noteHandler.ToggleStar)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
