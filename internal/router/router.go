package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/btw-edu/pembahasan-lambda/internal/auth"
	"github.com/btw-edu/pembahasan-lambda/internal/genrun"
	"github.com/btw-edu/pembahasan-lambda/internal/middlewares"
	"github.com/btw-edu/pembahasan-lambda/internal/pembahasan"
)

type RouterConfig struct {
	AuthHandler       *auth.Handler
	PembahasanHandler *pembahasan.Handler
	GenRunHandler     *genrun.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/pembahasan", pembahasan.Routes(cfg.PembahasanHandler))
		r.Mount("/runs", genrun.Routes(cfg.GenRunHandler))
	})
	return r
}
