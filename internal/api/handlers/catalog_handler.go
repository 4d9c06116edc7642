package handlers

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/TimSparing/Food-Tracker/domain"
	"github.com/TimSparing/Food-Tracker/internal/api/presenters"
	"github.com/TimSparing/Food-Tracker/pkg/catalog"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		AddBasicFood(c *fiber.Ctx) error
		AddCompositeFood(c *fiber.Ctx) error
		UpdateBasicFood(c *fiber.Ctx) error
		UpdateCompositeFood(c *fiber.Ctx) error
		LookupFood(c *fiber.Ctx) error
		ListFoodNames(c *fiber.Ctx) error
		QuantityForCalories(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) AddBasicFood(c *fiber.Ctx) error {
	req := new(domain.AddBasicFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	res, err := h.catalogService.AddBasicFood(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, catalogStatus(err), domain.MessageFailedAddFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFood)
}

func (h *catalogHandler) AddCompositeFood(c *fiber.Ctx) error {
	req := new(domain.AddCompositeFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	res, err := h.catalogService.AddCompositeFood(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, catalogStatus(err), domain.MessageFailedAddFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFood)
}

func (h *catalogHandler) UpdateBasicFood(c *fiber.Ctx) error {
	name, err := pathName(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req := new(domain.UpdateBasicFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	res, err := h.catalogService.UpdateBasicFood(c.Context(), name, *req)
	if err != nil {
		return presenters.ErrorResponse(c, catalogStatus(err), domain.MessageFailedUpdateFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFood)
}

func (h *catalogHandler) UpdateCompositeFood(c *fiber.Ctx) error {
	name, err := pathName(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req := new(domain.UpdateCompositeFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	res, err := h.catalogService.UpdateCompositeFood(c.Context(), name, *req)
	if err != nil {
		return presenters.ErrorResponse(c, catalogStatus(err), domain.MessageFailedUpdateFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFood)
}

func (h *catalogHandler) LookupFood(c *fiber.Ctx) error {
	name, err := pathName(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	facts, err := h.catalogService.Lookup(c.Context(), name)
	if err != nil {
		return presenters.ErrorResponse(c, catalogStatus(err), domain.MessageFailedGetFood, err)
	}

	return presenters.SuccessResponse(c, facts, fiber.StatusOK, domain.MessageSuccessGetFood)
}

func (h *catalogHandler) ListFoodNames(c *fiber.Ctx) error {
	names, err := h.catalogService.ListFoodNames(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedListFoods, err)
	}

	return presenters.SuccessResponse(c, names, fiber.StatusOK, domain.MessageSuccessListFoods)
}

func (h *catalogHandler) QuantityForCalories(c *fiber.Ctx) error {
	name, err := pathName(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	calories, err := strconv.ParseFloat(c.Query("calories"), 64)
	if err != nil || calories < 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQuantity, errors.New("calories query parameter must be a non-negative number"))
	}

	res, err := h.catalogService.QuantityForCalories(c.Context(), name, calories)
	if err != nil {
		return presenters.ErrorResponse(c, catalogStatus(err), domain.MessageFailedQuantity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessQuantity)
}

// pathName decodes the :name path segment so food names with spaces work.
func pathName(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(c.Params("name"))
}

func catalogStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateName):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrFoodNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}
