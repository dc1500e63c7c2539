package handlers

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/presenters"
	"FoodBridge-Backend/pkg/receiver"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiverHandler interface {
		CreateReceiver(c *fiber.Ctx) error
		GetReceivers(c *fiber.Ctx) error
		GetReceiverDetails(c *fiber.Ctx) error
		UpdateReceiver(c *fiber.Ctx) error
		DeleteReceiver(c *fiber.Ctx) error
	}

	receiverHandler struct {
		receiverService receiver.ReceiverService
		validator       *validator.Validate
	}
)

func NewReceiverHandler(receiverService receiver.ReceiverService, validator *validator.Validate) ReceiverHandler {
	return &receiverHandler{
		receiverService: receiverService,
		validator:       validator,
	}
}

func (h *receiverHandler) CreateReceiver(c *fiber.Ctx) error {
	req := new(domain.CreateReceiverRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReceiver, err)
	}

	res, err := h.receiverService.CreateReceiver(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateReceiver, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReceiver)
}

func (h *receiverHandler) GetReceivers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	filter := domain.ReceiverFilter{
		City: c.Query("city"),
		Type: c.Query("type"),
	}

	receivers, count, err := h.receiverService.GetReceivers(c.Context(), filter, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReceivers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": receivers,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetReceivers)
}

func (h *receiverHandler) GetReceiverDetails(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceivers, err)
	}

	res, err := h.receiverService.GetReceiverByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReceivers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceivers)
}

func (h *receiverHandler) UpdateReceiver(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReceiver, err)
	}

	req := new(domain.UpdateReceiverRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReceiver, err)
	}

	res, err := h.receiverService.UpdateReceiver(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateReceiver, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateReceiver)
}

func (h *receiverHandler) DeleteReceiver(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReceiver, err)
	}

	if err := h.receiverService.DeleteReceiver(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteReceiver, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReceiver)
}
