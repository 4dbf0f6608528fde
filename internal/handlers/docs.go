package handlers

import "github.com/gofiber/fiber/v2"

// Docs handles GET /docs: a static pointer to where interactive API
// documentation is published. Kept as a plain function (not a factory)
// since it has no dependencies.
func Docs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"docs":  "/docs",
		"redoc": "/redoc",
	})
}
