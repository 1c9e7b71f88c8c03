/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the calculator hub server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Initialize SQLite reference-table store and seed published tables
  3. Pick the response cache (Redis if -redis is set, in-process otherwise)
  4. Build the calculator registry and API handler
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: 8080)
  -db         SQLite database path (default: refdata.db)
              Use ":memory:" for an in-memory database
  -redis      Redis address for the response cache (default: off)
  -cache-ttl  How long computed responses stay cached (default: 10m)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close cache and database connections
  4. Exit

EXAMPLES:
  # Run with file database, in-process cache
  ./server -db="./data/refdata.db"

  # Run with shared Redis cache
  ./server -redis="localhost:6379"

  # Run on different port
  ./server -port=3000

ENVIRONMENT:
  No environment variables currently. All config via flags.
  Future: DATABASE_URL, PORT, REDIS_URL

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Reference table persistence
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

	"github.com/warp/finance-engine/api"
	"github.com/warp/finance-engine/cache"
	"github.com/warp/finance-engine/registry"
	"github.com/warp/finance-engine/retirement"
	"github.com/warp/finance-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "refdata.db", "SQLite database path")
	redisAddr := flag.String("redis", "", "Redis address for the response cache (empty = in-process cache)")
	cacheTTL := flag.Duration("cache-ttl", 10*time.Minute, "response cache TTL")
	flag.Parse()

	// Initialize store and seed published reference tables
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	if err := store.Seed(context.Background(), retirement.UniformLifetimeTable()); err != nil {
		log.Fatalf("Failed to seed reference tables: %v", err)
	}

	// Response cache
	var responseCache cache.Cache
	if *redisAddr != "" {
		responseCache, err = cache.NewRedis(context.Background(), *redisAddr, *cacheTTL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		log.Printf("Using redis response cache at %s", *redisAddr)
	} else {
		responseCache = cache.NewMemory(*cacheTTL)
	}
	defer responseCache.Close()

	// Initialize handler and router
	handler := api.NewHandler(registry.New(store), responseCache, *cacheTTL)
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
		log.Printf("📊 Calculators at http://localhost:%d/api/calculators", *port)
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
