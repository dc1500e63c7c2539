package handlers

import (
	"FoodBridge-Backend/domain"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps the domain error taxonomy onto HTTP statuses so
// handlers never mask the specific kind.
func statusForError(err error) int {
	var depExists *domain.DependencyExists
	var constraint *domain.ConstraintViolation
	var validation *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrProviderNotFound),
		errors.Is(err, domain.ErrReceiverNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrClaimNotFound),
		errors.Is(err, domain.ErrReportNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &depExists),
		errors.As(err, &constraint),
		errors.Is(err, domain.ErrClaimTerminal):
		return fiber.StatusConflict
	case errors.As(err, &validation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusBadRequest
	}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, domain.ErrParseID
	}
	return uint(id), nil
}

func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	return page, limit
}
