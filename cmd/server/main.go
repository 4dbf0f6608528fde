// cmd/server/main.go
// Entry point for the Axial Data API server. The cmd/ folder holds the
// executable binary; internal/ holds the packages it wires together.
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	// cors allows the frontend to call this API from a different origin
	"github.com/gofiber/fiber/v2/middleware/cors"
	// logger prints request details (method, path, status, duration) to stdout
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/axialhq/axial-data-api/internal/classifier"
	"github.com/axialhq/axial-data-api/internal/config"
	"github.com/axialhq/axial-data-api/internal/database"
	"github.com/axialhq/axial-data-api/internal/handlers"
	"github.com/axialhq/axial-data-api/internal/labeler"
	"github.com/axialhq/axial-data-api/internal/logging"
	"github.com/axialhq/axial-data-api/internal/middleware"
	"github.com/axialhq/axial-data-api/internal/stream"
)

func main() {
	// Load configuration from environment variables (and optionally a .env file).
	cfg := config.Load()

	zlog, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer func() { _ = zlog.Sync() }()

	reportEnvironment(cfg, zlog)

	// Build the backend gateway. Construction probes the backend and never
	// fails hard: with missing or bad credentials the process still serves
	// "/" (reporting supabase_connected:false) and refuses ingestion.
	gateway := database.New(cfg, zlog)

	// The language detector loads its models up front; build it once here
	// and share it across requests.
	detector := classifier.NewLinguaDetector()

	labels := labeler.Placeholder{}

	// The live-feed hub runs its event loop in a background goroutine,
	// fanning newly ingested items out to websocket subscribers.
	hub := stream.NewHub()
	go hub.Run()

	app := fiber.New(fiber.Config{
		AppName: "Axial Data API",
	})

	// Global middleware, run on every request before any route handler.
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())

	// Routes. One canonical set: health, ingest, query, docs, live feed.
	app.Get("/", handlers.Health(gateway))
	app.Post("/ingest", handlers.Ingest(gateway, detector, labels, hub, zlog))
	app.Get("/data", handlers.Data(gateway))
	app.Get("/docs", handlers.Docs)
	app.Get("/ws/feed", handlers.FeedUpgrade(), handlers.Feed(hub))

	zlog.Infow("starting Axial Data API", "port", cfg.Port, "version", handlers.Version)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// reportEnvironment logs which credentials are present (booleans and key
// lengths only, never the key material) and sanity-checks the keys' embedded
// claims so a miswired environment is visible at startup rather than on the
// first failing request.
func reportEnvironment(cfg *config.Config, zlog *logging.Logger) {
	zlog.Infow("environment check",
		"supabase_url_set", cfg.SupabaseURL != "",
		"anon_key_chars", len(cfg.SupabaseAnonKey),
		"service_key_chars", len(cfg.SupabaseServiceKey),
	)

	inspect := func(name, key, wantRole string) {
		if key == "" {
			return
		}
		info, err := config.InspectKey(key)
		if err != nil {
			// Logged and passed through anyway: the backend is the
			// authority on whether a key is accepted.
			zlog.Warnw("could not decode Supabase key", "key", name, "error", err)
			return
		}
		if info.Role != wantRole {
			zlog.Warnw("Supabase key has unexpected role; keys may be swapped",
				"key", name, "role", info.Role, "want", wantRole)
		}
		if info.Expired() {
			zlog.Warnw("Supabase key is expired", "key", name, "expired_at", info.ExpiresAt)
		}
		zlog.Infow("Supabase key decoded", "key", name, "project_ref", info.ProjectRef, "role", info.Role)
	}
	inspect("SUPABASE_ANON_KEY", cfg.SupabaseAnonKey, config.KeyRoleAnon)
	inspect("SUPABASE_SERVICE_ROLE_KEY", cfg.SupabaseServiceKey, config.KeyRoleService)
}
