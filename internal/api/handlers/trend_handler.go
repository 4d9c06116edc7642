package handlers

import (
	"errors"

	"github.com/TimSparing/Food-Tracker/domain"
	"github.com/TimSparing/Food-Tracker/internal/api/presenters"
	"github.com/TimSparing/Food-Tracker/pkg/trend"
	"github.com/gofiber/fiber/v2"
)

type (
	TrendHandler interface {
		GetHistory(c *fiber.Ctx) error
		GetChart(c *fiber.Ctx) error
		GetTicks(c *fiber.Ctx) error
	}

	trendHandler struct {
		trendService trend.TrendService
	}
)

func NewTrendHandler(trendService trend.TrendService) TrendHandler {
	return &trendHandler{trendService: trendService}
}

// GetHistory returns the trend table newest first; rows are computed oldest
// first so the prior-weight deltas line up.
func (h *trendHandler) GetHistory(c *fiber.Ctx) error {
	rows, err := h.trendService.BuildHistory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return presenters.SuccessResponse(c, rows, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *trendHandler) GetChart(c *fiber.Ctx) error {
	chart, err := h.trendService.BuildChart(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChart, err)
	}

	return presenters.SuccessResponse(c, chart, fiber.StatusOK, domain.MessageSuccessGetChart)
}

func (h *trendHandler) GetTicks(c *fiber.Ctx) error {
	low := c.QueryFloat("low")
	high := c.QueryFloat("high")
	factor := c.QueryFloat("factor", 1)

	if high <= low || factor <= 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTicks,
			errors.New("high must exceed low and factor must be positive"))
	}

	ticks := trend.RightAxisTicks(low, high, factor)

	return presenters.SuccessResponse(c, ticks, fiber.StatusOK, domain.MessageSuccessGetTicks)
}
