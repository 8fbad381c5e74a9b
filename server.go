package transitdemo

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

var (
	server *http.Server
)

// NewRouter wires the API onto a chi router with CORS for the front-end
// origins.
func NewRouter(api *API, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173"}
	}
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/api/health", api.handleHealth)
	r.Get("/api/routes", api.handleRoutes)
	r.Get("/api/routes/{id}", api.handleRouteByID)
	r.Get("/api/schedules", api.handleSchedules)
	r.Get("/api/vehicles", api.handleVehicles)
	r.Get("/api/vehicles/{id}", api.handleVehicleByID)
	r.Get("/api/logs", api.handleLogs)
	r.Get("/api/analytics", api.handleAnalytics)
	r.Get("/api/admin/stats", api.handleAdminStats)
	r.Get("/api/views/{name}", api.handleView)
	r.Post("/api/login", api.handleLogin)
	r.Post("/api/logout", api.handleLogout)
	r.Post("/api/tickets", api.handleIssueTicket)
	return r
}

func StartServer(port int, handler http.Handler) {
	addr := fmt.Sprintf(":%d", port)
	server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
