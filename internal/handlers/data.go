package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/axialhq/axial-data-api/internal/database"
	"github.com/axialhq/axial-data-api/internal/models"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// DataResponse is the body returned by GET /data.
type DataResponse struct {
	Status string               `json:"status"`
	Data   []models.ContentItem `json:"data"`
	Count  int                  `json:"count"`
}

// Data returns the handler for GET /data?limit=N.
//
// It reads up to limit recent items, newest first, through whichever read
// connection the gateway has. A limit that is missing, unparsable, or not
// positive falls back to the default; anything above the cap is clamped
// rather than rejected. An empty table is a success with an empty list.
func Data(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", defaultLimit)
		if limit <= 0 {
			limit = defaultLimit
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		items, err := store.SelectRecent(limit)
		if err != nil {
			if errors.Is(err, database.ErrNoReadClient) {
				return errDetail(c, fiber.StatusInternalServerError, database.ErrNoReadClient.Error())
			}
			return errDetail(c, fiber.StatusInternalServerError, fmt.Sprintf("Query failed: %v", err))
		}

		return c.JSON(DataResponse{
			Status: "success",
			Data:   items,
			Count:  len(items),
		})
	}
}
