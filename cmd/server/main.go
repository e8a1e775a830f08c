/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the BrokerDesk quote-engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Initialize SQLite store (intake, posts, counties, catalog)
  3. Load the service catalog (file override, then persisted edits)
  4. Wire the in-memory session store and lookup cache
  5. Configure HTTP router
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port     HTTP server port (default: 8080)
  -db       SQLite database path (default: brokerdesk.db)
            Use ":memory:" for an in-memory database
  -catalog  Optional catalog config file (YAML or JSON)
  -redis    Optional Redis address for the shared lookup cache;
            empty means in-process cache

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/brokerdesk.db"

  # Run with a custom service catalog and shared cache
  ./server -catalog=./catalog.yaml -redis=localhost:6379

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brokerdesk/quote-engine/api"
	"github.com/brokerdesk/quote-engine/cache"
	"github.com/brokerdesk/quote-engine/catalog"
	qstore "github.com/brokerdesk/quote-engine/quote/store"
	"github.com/brokerdesk/quote-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "brokerdesk.db", "SQLite database path")
	catalogPath := flag.String("catalog", "", "catalog config file (YAML or JSON)")
	redisAddr := flag.String("redis", "", "Redis address for the lookup cache (empty: in-process)")
	flag.Parse()

	// Initialize store
	db, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Catalog: stock defaults, file override, persisted edits on top.
	cat := catalog.Default()
	if *catalogPath != "" {
		cat, err = catalog.LoadFromFile(*catalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}

	// Lookup cache
	var c cache.Cache = cache.NewMemory()
	if *redisAddr != "" {
		c = cache.NewRedis(*redisAddr)
		log.Printf("Using Redis lookup cache at %s", *redisAddr)
	}

	// Initialize handler
	handler := api.NewHandler(qstore.NewMemory(), db, c, cat)
	if err := handler.RestoreCatalog(context.Background()); err != nil {
		log.Printf("Warning: failed to restore persisted catalog: %v", err)
	}

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
