package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/educahub/educahub-lambda/internal/aiquiz"
	"github.com/educahub/educahub-lambda/internal/auth"
	"github.com/educahub/educahub-lambda/internal/category"
	"github.com/educahub/educahub-lambda/internal/form"
	"github.com/educahub/educahub-lambda/internal/middlewares"
	"github.com/educahub/educahub-lambda/internal/quiz"
	"github.com/educahub/educahub-lambda/internal/user"
	"github.com/educahub/educahub-lambda/internal/video"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	VideoHandler    *video.Handler
	CategoryHandler *category.Handler
	QuizHandler     *quiz.Handler
	FormHandler     *form.Handler
	AIQuizHandler   *aiquiz.Handler
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
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/videos", video.Routes(cfg.VideoHandler))
		r.Mount("/categories", category.Routes(cfg.CategoryHandler))
		r.Mount("/forms", form.Routes(cfg.FormHandler))
		r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))

		r.Mount("/videos/{videoID}/quiz", quiz.Routes(cfg.QuizHandler))

		r.Get("/submissions/mine", cfg.QuizHandler.ListMySubmissions)
		r.Get("/form-submissions/mine", cfg.FormHandler.ListMySubmissions)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleAdmin))

			r.Get("/form-submissions/pending", cfg.FormHandler.ListPending)
			r.Post("/form-submissions/{id}/review", cfg.FormHandler.Review)
		})
	})

	return r
}
