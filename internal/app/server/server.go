// Package server assembles the HTTP router of the service.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/tinyapp/internal/app/handler"
	"github.com/atinyakov/tinyapp/internal/app/service"
	"github.com/atinyakov/tinyapp/internal/middleware"
)

// Deps are the services the router dispatches to.
type Deps struct {
	URLs          service.URLServiceIface
	Users         service.UserServiceIface
	Auth          service.AuthIface
	Logger        *zap.Logger
	TrustedSubnet string
}

func Init(d Deps) *chi.Mux {
	users := handler.NewUser(d.Users, d.Auth, d.Logger)
	get := handler.NewGet(d.URLs, d.Logger)
	post := handler.NewPost(d.URLs, d.Logger)
	put := handler.NewPut(d.URLs, d.Logger)
	del := handler.NewDelete(d.URLs, d.Logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(d.Logger))
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithSession(d.Auth, d.Users, d.Logger))

	r.Post("/register", users.Register)
	r.Post("/login", users.Login)
	r.Post("/logout", users.Logout)

	r.Route("/urls", func(r chi.Router) {
		r.Use(middleware.RequireSession)

		r.Get("/", get.URLsByUserID)
		r.Post("/", post.CreateURL)
		r.Get("/{id}", get.ByID)
		r.Put("/{id}", put.UpdateURL)
		r.Delete("/{id}", del.DeleteURL)
	})

	r.With(middleware.WithVisitor).Get("/u/{id}", get.ByShort)

	r.With(middleware.WithSubnet(d.TrustedSubnet)).Get("/api/internal/stats", get.Stats)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
