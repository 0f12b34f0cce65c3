package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/analysis"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/auth"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/cases"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/db"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/documents"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/jurisdiction"
	"github.com/ComplianceRelish/LexAssist-sub000/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	jurisdiction.Init()
	auth.Init()
	cases.Init()
	documents.Init()
	analysis.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/cases", cases.SetupRoutes())
	r.Mount("/documents", documents.SetupRoutes())
	r.Mount("/analysis", analysis.SetupRoutes())
	r.Mount("/jurisdiction", jurisdiction.SetupRoutes())

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
