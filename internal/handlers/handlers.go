// Package handlers contains the HTTP route handler functions for the Axial
// Data API. Each handler corresponds to one endpoint and is responsible for
// reading the request, delegating to the backend gateway or classifier, and
// writing a JSON response.
//
// Each exported function follows the handler factory pattern: it takes its
// dependencies as arguments and returns a fiber.Handler. This injects the
// gateway, classifier, and labeler explicitly instead of reaching for
// package-level globals.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/axialhq/axial-data-api/internal/models"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Store is the slice of the backend gateway the handlers need.
// *database.Gateway satisfies it; tests use a stub.
type Store interface {
	// Insert persists a new item via the service connection and returns the
	// row as the backend stored it.
	Insert(item models.NewContentItem) (models.ContentItem, error)

	// SelectRecent returns up to limit rows, newest first.
	SelectRecent(limit int) ([]models.ContentItem, error)

	// ServiceReady reports whether the write-capable connection came up at
	// startup.
	ServiceReady() bool
}

// Broadcaster receives each successfully persisted item for fan-out to live
// feed subscribers. *stream.Hub satisfies it.
type Broadcaster interface {
	Broadcast(source string, data []byte)
}

// errDetail writes an error response in the API's wire shape: a JSON object
// with a single human-readable "detail" field. No machine-readable error
// kinds are exposed to clients; the status code is the only distinction.
func errDetail(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(fiber.Map{"detail": detail})
}
