package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/axialhq/axial-data-api/internal/classifier"
	"github.com/axialhq/axial-data-api/internal/database"
	"github.com/axialhq/axial-data-api/internal/labeler"
	"github.com/axialhq/axial-data-api/internal/logging"
	"github.com/axialhq/axial-data-api/internal/middleware"
	"github.com/axialhq/axial-data-api/internal/models"
)

// IngestRequest is the JSON body expected on POST /ingest.
type IngestRequest struct {
	Source  string `json:"source"`  // Required: where the content came from
	Content string `json:"content"` // Required: the text body itself
}

// IngestResponse is returned on a successful ingest.
type IngestResponse struct {
	Status string             `json:"status"`
	Item   models.ContentItem `json:"item"`
}

// Ingest returns the handler for POST /ingest.
//
// The flow is: validate the body, classify the content's language, attach
// labels, insert through the service connection, return the persisted row.
// Classification failure is absorbed (the item goes in with language_code
// "unknown"); a backend failure or an unset service connection surfaces as
// a 500 with a detail message. There is exactly one insert call, so a
// partial write is not possible.
func Ingest(store Store, detector classifier.Detector, labels labeler.Labeler, feed Broadcaster, log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req IngestRequest
		if err := c.BodyParser(&req); err != nil {
			return errDetail(c, fiber.StatusBadRequest, "invalid request body")
		}
		if strings.TrimSpace(req.Source) == "" {
			return errDetail(c, fiber.StatusBadRequest, "source is required")
		}
		if strings.TrimSpace(req.Content) == "" {
			return errDetail(c, fiber.StatusBadRequest, "content is required")
		}

		item := models.NewContentItem{
			Source:       req.Source,
			Content:      req.Content,
			LanguageCode: detector.Classify(req.Content),
			Labels:       labels.Label(req.Source, req.Content),
		}

		persisted, err := store.Insert(item)
		if err != nil {
			log.WithError(err).Errorw("ingest failed",
				"source", req.Source,
				"request_id", c.Locals(middleware.LocalsRequestID))
			if errors.Is(err, database.ErrServiceUnavailable) {
				return errDetail(c, fiber.StatusInternalServerError, database.ErrServiceUnavailable.Error())
			}
			return errDetail(c, fiber.StatusInternalServerError, fmt.Sprintf("Ingest failed: %v", err))
		}

		// Push the persisted row to live feed subscribers. Encoding the row
		// we already have cannot realistically fail, and a feed problem must
		// never turn a completed insert into an error response.
		if feed != nil {
			if data, err := json.Marshal(persisted); err == nil {
				feed.Broadcast(persisted.Source, data)
			}
		}

		return c.JSON(IngestResponse{Status: "success", Item: persisted})
	}
}
