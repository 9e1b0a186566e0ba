package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/careerpath/careerpath-go/internal/middleware"
	"github.com/careerpath/careerpath-go/internal/service"
)

// Services groups what the router dispatches to.
type Services struct {
	Auth       *service.AuthService
	Profile    *service.ProfileService
	Assessment *service.AssessmentService
	Chat       *service.ChatService
}

// NewRouter builds the HTTP routes. Everything except /health lives under /api.
func NewRouter(svcs Services, jwtSecret string, corsOrigins []string) http.Handler {
	authHandler := NewAuthHandler(svcs.Auth)
	profileHandler := NewProfileHandler(svcs.Profile)
	assessmentHandler := NewAssessmentHandler(svcs.Assessment)
	chatHandler := NewChatHandler(svcs.Chat)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{
				"message": "AI Career Guidance API - Ready to help students find their perfect career path!",
			})
		})

		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Get("/careers/domains", HandleCareerDomains)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(jwtSecret, svcs.Auth))
			r.Get("/auth/me", authHandler.HandleMe)

			r.Post("/profile", profileHandler.HandleSave)
			r.Get("/profile", profileHandler.HandleGet)

			r.Post("/assessment/analyze", assessmentHandler.HandleAnalyze)

			r.Post("/chat", chatHandler.HandleSend)
			r.Get("/chat/history", chatHandler.HandleHistory)
		})
	})

	return r
}
