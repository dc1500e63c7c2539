package handlers

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/presenters"
	"FoodBridge-Backend/pkg/claim"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ClaimHandler interface {
		CreateClaim(c *fiber.Ctx) error
		GetClaims(c *fiber.Ctx) error
		GetClaimDetails(c *fiber.Ctx) error
		UpdateClaimStatus(c *fiber.Ctx) error
		DeleteClaim(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
		validator    *validator.Validate
	}
)

func NewClaimHandler(claimService claim.ClaimService, validator *validator.Validate) ClaimHandler {
	return &claimHandler{
		claimService: claimService,
		validator:    validator,
	}
}

func (h *claimHandler) CreateClaim(c *fiber.Ctx) error {
	req := new(domain.CreateClaimRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateClaim, err)
	}

	res, err := h.claimService.CreateClaim(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateClaim, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateClaim)
}

func (h *claimHandler) GetClaims(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	receiverID, _ := strconv.ParseUint(c.Query("receiver_id", "0"), 10, 32)
	listingID, _ := strconv.ParseUint(c.Query("food_listing_id", "0"), 10, 32)
	filter := domain.ClaimFilter{
		Status:     c.Query("status"),
		ReceiverID: uint(receiverID),
		ListingID:  uint(listingID),
	}

	claims, count, err := h.claimService.GetClaims(c.Context(), filter, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": claims,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) GetClaimDetails(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetClaims, err)
	}

	res, err := h.claimService.GetClaimByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) UpdateClaimStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateClaim, err)
	}

	req := new(domain.UpdateClaimStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateClaim, err)
	}

	res, err := h.claimService.UpdateClaimStatus(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateClaim, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateClaim)
}

func (h *claimHandler) DeleteClaim(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteClaim, err)
	}

	if err := h.claimService.DeleteClaim(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteClaim, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteClaim)
}
