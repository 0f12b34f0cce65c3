package documents

import (
	"net/http"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/auth"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Post("/", CreateDocumentHandler)
		r.Get("/case/{caseID}", ListDocumentsByCaseHandler)
		r.Get("/{id}", GetDocumentHandler)
		r.Delete("/{id}", DeleteDocumentHandler)
		r.Post("/{id}/extract", ExtractTextHandler)
	})

	return r
}
