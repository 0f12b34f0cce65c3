package cases

import (
	"net/http"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/middleware"
	"github.com/go-chi/chi/v5"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/auth"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Post("/", CreateCaseHandler)
		r.Get("/", ListCasesHandler)
		r.Get("/{id}", GetCaseHandler)
		r.Patch("/{id}", UpdateCaseHandler)
		r.Delete("/{id}", DeleteCaseHandler)
	})

	return r
}
