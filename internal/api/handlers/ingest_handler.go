package handlers

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/presenters"
	"FoodBridge-Backend/pkg/ingest"

	"github.com/gofiber/fiber/v2"
)

type (
	IngestHandler interface {
		IngestCSV(c *fiber.Ctx) error
	}

	ingestHandler struct {
		ingestService ingest.IngestService
	}
)

func NewIngestHandler(ingestService ingest.IngestService) IngestHandler {
	return &ingestHandler{ingestService: ingestService}
}

func (h *ingestHandler) IngestCSV(c *fiber.Ctx) error {
	table := c.Params("table")

	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	src, err := file.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngest, err)
	}
	defer src.Close()

	res, err := h.ingestService.IngestCSV(c.Context(), table, src)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedIngest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessIngest)
}
