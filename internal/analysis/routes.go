package analysis

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
		// The AI endpoints are rate limited so a single user can't drain
		// the upstream budget.
		r.Use(middleware.RateLimitMiddleware(10, 3))
		r.Post("/brief", AnalyzeBriefHandler)
		r.Post("/transcribe", TranscribeHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Get("/{id}", GetAnalysisHandler)
		r.Get("/case/{caseID}", ListAnalysesByCaseHandler)
	})

	return r
}
