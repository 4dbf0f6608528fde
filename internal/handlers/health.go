package handlers

import "github.com/gofiber/fiber/v2"

// HealthResponse is the body returned by GET /.
type HealthResponse struct {
	Message           string `json:"message"`
	SupabaseConnected bool   `json:"supabase_connected"`
	Version           string `json:"version"`
}

// Health handles GET /. It always returns 200, whatever state the backend
// is in: liveness probes and load balancers use it to check the process,
// and the supabase_connected flag tells operators whether ingestion will
// actually be accepted. No database queries, no side effects.
func Health(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{
			Message:           "Axial Data API running",
			SupabaseConnected: store.ServiceReady(),
			Version:           Version,
		})
	}
}
