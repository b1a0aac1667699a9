package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"forumhub/internal/api"
	apiMiddleware "forumhub/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware. Listing and detail endpoints are public; mutations on
// topics and everything on replies require a Bearer token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	userHandler := api.NewUserHandler(app.userStore, app.hasher)
	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.hasher)
	topicHandler := api.NewTopicHandler(app.topicStore)
	replyHandler := api.NewReplyHandler(app.replyStore, app.topicStore, app.userStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Public endpoints
	r.Post("/login", authHandler.Login)
	r.Post("/usuarios", userHandler.Register)
	r.Post("/topicos", topicHandler.Create)
	r.Get("/topicos", topicHandler.List)
	r.Get("/topicos/{id}", topicHandler.Get)
	r.Get("/topicos/{idTopico}/respostas", replyHandler.List)

	// Protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/usuarios/me", userHandler.Me)

		r.Put("/topicos/{id}", topicHandler.Update)
		r.Delete("/topicos/{id}", topicHandler.Delete)

		r.Post("/topicos/{idTopico}/respostas", replyHandler.Create)
		r.Put("/topicos/{idTopico}/respostas/{id}", replyHandler.Update)
		r.Delete("/topicos/{idTopico}/respostas/{id}", replyHandler.Delete)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
