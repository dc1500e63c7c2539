package handlers

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/presenters"
	"FoodBridge-Backend/internal/utils/storage"
	"FoodBridge-Backend/pkg/report"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		GetReport(c *fiber.Ctx) error
		ExportReport(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
		s3            storage.AwsS3
	}
)

func NewReportHandler(reportService report.ReportService, s3 storage.AwsS3) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		s3:            s3,
	}
}

func parseReportFilter(c *fiber.Ctx) (domain.ReportFilter, error) {
	filter := domain.ReportFilter{
		City:        c.Query("city"),
		FoodType:    c.Query("food_type"),
		Granularity: c.Query("granularity"),
	}

	if raw := c.Query("provider_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, domain.ErrInvalidReportFilter
		}
		filter.ProviderID = uint(id)
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, domain.ErrInvalidReportFilter
		}
		filter.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, domain.ErrInvalidReportFilter
		}
		filter.To = t
	}

	return filter, nil
}

func (h *reportHandler) getReport(c *fiber.Ctx) (*domain.Report, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return nil, domain.ErrReportNotFound
	}

	filter, err := parseReportFilter(c)
	if err != nil {
		return nil, err
	}

	return h.reportService.GetReport(c.Context(), id, filter)
}

func (h *reportHandler) GetReport(c *fiber.Ctx) error {
	res, err := h.getReport(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReport)
}

// ExportReport streams the report as CSV. With archive=true the file is
// also uploaded to S3 and the public link is returned instead.
func (h *reportHandler) ExportReport(c *fiber.Ctx) error {
	res, err := h.getReport(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedExportReport, err)
	}

	data, err := h.reportService.ExportCSV(res)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExportReport, err)
	}

	filename := fmt.Sprintf("report-%02d.csv", res.ID)

	if c.QueryBool("archive") {
		objectKey, err := h.s3.UploadBytes(c.Context(), "reports", filename, "text/csv", data)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedExportReport, err)
		}
		return presenters.SuccessResponse(c, fiber.Map{
			"object_key": objectKey,
			"url":        h.s3.GetPublicLinkKey(objectKey),
		}, fiber.StatusOK, domain.MessageSuccessExportReport)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
