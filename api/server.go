/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend

ROUTE GROUPS:
  /api/quotes/*         Quote sessions and the calculation workflows
  /api/applications/*   Client intake
  /api/posts/*          Comment/marketing posts
  /api/admin/*          Catalog and program administration
  /api/county-lookup/*  ZIP to county resolution
  /api/scenarios/*      Demo scenarios
  /*                    Static files (frontend)

SECURITY NOTE:
  No authentication middleware. All endpoints are public; this service
  runs inside the office network.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Quote sessions
		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", h.ListQuotes)
			r.Post("/", h.CreateQuote)
			r.Get("/{id}", h.GetQuote)
			r.Delete("/{id}", h.DeleteQuote)
			r.Put("/{id}/inputs", h.UpdateQuoteInputs)
			r.Post("/{id}/derive", h.DeriveQuote)
			r.Get("/{id}/fha", h.GetQuoteFha)
			r.Post("/{id}/va/calculate", h.VaCalculateQuote)
			r.Post("/{id}/va/clear", h.VaClearQuote)
			r.Post("/{id}/va/apply", h.VaApplyQuote)
		})

		// Client intake
		r.Route("/applications", func(r chi.Router) {
			r.Get("/", h.ListApplications)
			r.Post("/", h.CreateApplication)
			r.Get("/{id}", h.GetApplication)
			r.Put("/{id}", h.UpdateApplication)
			r.Post("/{id}/steps/{step}", h.SubmitApplicationStep)
			r.Post("/{id}/submit", h.SubmitApplication)
		})

		// Posts
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.ListPosts)
			r.Post("/", h.CreatePost)
			r.Delete("/{id}", h.DeletePost)
		})

		// Admin
		r.Route("/admin", func(r chi.Router) {
			r.Get("/catalog", h.GetCatalog)
			r.Put("/catalog", h.PutCatalog)
			r.Post("/catalog/services", h.AddCatalogService)
			r.Put("/catalog/services/{id}", h.RenameCatalogService)
			r.Delete("/catalog/services/{id}", h.RemoveCatalogService)
			r.Get("/programs", h.ListPrograms)
		})

		// Lookup
		r.Get("/county-lookup/{zip}", h.LookupCounty)

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/current", h.GetCurrentScenario)
			r.Post("/load", h.LoadScenario)
		})
	})

	// Serve static files (the built frontend), falling back to a plain
	// endpoint index when no build exists.
	staticDir := "./web/dist"
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		exe, _ := os.Executable()
		staticDir = filepath.Join(filepath.Dir(exe), "web", "dist")
	}

	if _, err := os.Stat(staticDir); err == nil {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			fullPath := filepath.Join(staticDir, r.URL.Path)
			if _, err := os.Stat(fullPath); os.IsNotExist(err) {
				// SPA routing: serve index.html
				http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
				return
			}
			fileServer.ServeHTTP(w, r)
		})
	} else {
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>BrokerDesk Quote Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>BrokerDesk Quote Engine API</h1>
<p>The frontend is not built yet. Run <code>cd web && npm install && npm run build</code></p>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/quotes">/api/quotes</a> - Quote sessions</li>
<li><a href="/api/applications">/api/applications</a> - Client intake</li>
<li><a href="/api/posts">/api/posts</a> - Posts</li>
<li><a href="/api/scenarios">/api/scenarios</a> - Demo scenarios</li>
</ul>
</body>
</html>`))
		})
	}

	return r
}
