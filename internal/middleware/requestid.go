// Package middleware contains HTTP middleware for the Axial Data API.
// Middleware sits between the HTTP server and route handlers and runs on
// every request, which makes it the right place for cross-cutting concerns
// like request identification.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID is the header the request ID is read from and echoed on.
const HeaderRequestID = "X-Request-ID"

// LocalsRequestID is the c.Locals key the request ID is stored under, so
// handlers can attach it to their log lines.
const LocalsRequestID = "requestID"

// RequestID returns middleware that tags every request with a unique ID.
// An inbound X-Request-ID header is honoured (so IDs survive a proxy hop);
// otherwise a fresh UUID is generated. The ID is stored in the request
// context and echoed back on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(LocalsRequestID, id)
		c.Set(HeaderRequestID, id)

		return c.Next()
	}
}
