package handlers

import (
	"github.com/TimSparing/Food-Tracker/domain"
	"github.com/TimSparing/Food-Tracker/internal/api/presenters"
	"github.com/TimSparing/Food-Tracker/pkg/diary"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DiaryHandler interface {
		UpsertWeight(c *fiber.Ctx) error
		AppendFood(c *fiber.Ctx) error
		AppendExercise(c *fiber.Ctx) error
		ReplaceDay(c *fiber.Ctx) error
		GetDay(c *fiber.Ctx) error
		ListDays(c *fiber.Ctx) error
		DaySummary(c *fiber.Ctx) error
		ListExercisePresets(c *fiber.Ctx) error
	}

	diaryHandler struct {
		diaryService diary.DiaryService
		validator    *validator.Validate
	}
)

func NewDiaryHandler(diaryService diary.DiaryService, validator *validator.Validate) DiaryHandler {
	return &diaryHandler{
		diaryService: diaryService,
		validator:    validator,
	}
}

func (h *diaryHandler) UpsertWeight(c *fiber.Ctx) error {
	date := c.Params("date")
	req := new(domain.UpsertWeightRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveWeight, err)
	}

	if err := h.diaryService.UpsertWeight(c.Context(), date, req.Weight); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveWeight, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveWeight)
}

func (h *diaryHandler) AppendFood(c *fiber.Ctx) error {
	date := c.Params("date")
	req := new(domain.AppendFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAppendFood, err)
	}

	if err := h.diaryService.AppendFood(c.Context(), date, req.Name, req.QuantityGrams); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAppendFood, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAppendFood)
}

func (h *diaryHandler) AppendExercise(c *fiber.Ctx) error {
	date := c.Params("date")
	req := new(domain.AppendExerciseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAppendExercise, err)
	}

	if err := h.diaryService.AppendExercise(c.Context(), date, req.Name, req.CaloriesBurned); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAppendExercise, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAppendExercise)
}

func (h *diaryHandler) ReplaceDay(c *fiber.Ctx) error {
	date := c.Params("date")
	req := new(domain.ReplaceDayRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplaceDay, err)
	}

	if err := h.diaryService.ReplaceDay(c.Context(), date, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplaceDay, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReplaceDay)
}

func (h *diaryHandler) GetDay(c *fiber.Ctx) error {
	date := c.Params("date")

	day, err := h.diaryService.GetDay(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDay, err)
	}

	return presenters.SuccessResponse(c, day, fiber.StatusOK, domain.MessageSuccessGetDay)
}

func (h *diaryHandler) ListDays(c *fiber.Ctx) error {
	days, err := h.diaryService.ListDays(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedListDays, err)
	}

	return presenters.SuccessResponse(c, days, fiber.StatusOK, domain.MessageSuccessListDays)
}

func (h *diaryHandler) DaySummary(c *fiber.Ctx) error {
	date := c.Params("date")

	summary, err := h.diaryService.AggregateDay(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDaySummary, err)
	}

	return presenters.SuccessResponse(c, summary, fiber.StatusOK, domain.MessageSuccessDaySummary)
}

func (h *diaryHandler) ListExercisePresets(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.ExercisePresets, fiber.StatusOK, domain.MessageSuccessListExercises)
}

