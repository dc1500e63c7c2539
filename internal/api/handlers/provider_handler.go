package handlers

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/presenters"
	"FoodBridge-Backend/pkg/provider"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProviderHandler interface {
		CreateProvider(c *fiber.Ctx) error
		GetProviders(c *fiber.Ctx) error
		GetProviderDetails(c *fiber.Ctx) error
		UpdateProvider(c *fiber.Ctx) error
		DeleteProvider(c *fiber.Ctx) error
		GetContacts(c *fiber.Ctx) error
	}

	providerHandler struct {
		providerService provider.ProviderService
		validator       *validator.Validate
	}
)

func NewProviderHandler(providerService provider.ProviderService, validator *validator.Validate) ProviderHandler {
	return &providerHandler{
		providerService: providerService,
		validator:       validator,
	}
}

func (h *providerHandler) CreateProvider(c *fiber.Ctx) error {
	req := new(domain.CreateProviderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProvider, err)
	}

	res, err := h.providerService.CreateProvider(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateProvider, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProvider)
}

func (h *providerHandler) GetProviders(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	filter := domain.ProviderFilter{
		City: c.Query("city"),
		Type: c.Query("type"),
	}

	providers, count, err := h.providerService.GetProviders(c.Context(), filter, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetProviders, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": providers,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetProviders)
}

func (h *providerHandler) GetProviderDetails(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProviders, err)
	}

	res, err := h.providerService.GetProviderByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetProviders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProviders)
}

func (h *providerHandler) UpdateProvider(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProvider, err)
	}

	req := new(domain.UpdateProviderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProvider, err)
	}

	res, err := h.providerService.UpdateProvider(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateProvider, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProvider)
}

func (h *providerHandler) DeleteProvider(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProvider, err)
	}

	if err := h.providerService.DeleteProvider(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteProvider, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProvider)
}

func (h *providerHandler) GetContacts(c *fiber.Ctx) error {
	contacts, err := h.providerService.GetContactsByCity(c.Context(), c.Query("city"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetContacts, err)
	}

	return presenters.SuccessResponse(c, contacts, fiber.StatusOK, domain.MessageSuccessGetContacts)
}
