package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/TimSparing/Food-Tracker/domain"
	"github.com/TimSparing/Food-Tracker/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogService interface {
		AddBasicFood(ctx context.Context, req domain.AddBasicFoodRequest) (domain.FoodResponse, error)
		AddCompositeFood(ctx context.Context, req domain.AddCompositeFoodRequest) (domain.FoodResponse, error)
		UpdateBasicFood(ctx context.Context, oldName string, req domain.UpdateBasicFoodRequest) (domain.FoodResponse, error)
		UpdateCompositeFood(ctx context.Context, oldName string, req domain.UpdateCompositeFoodRequest) (domain.FoodResponse, error)
		Lookup(ctx context.Context, name string) (domain.NutritionFacts, error)
		ListFoodNames(ctx context.Context) ([]string, error)
		QuantityForCalories(ctx context.Context, name string, calories float64) (domain.QuantityResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) AddBasicFood(ctx context.Context, req domain.AddBasicFoodRequest) (domain.FoodResponse, error) {
	if entities.ContainsReservedChar(req.Name) {
		return domain.FoodResponse{}, domain.ErrReservedCharacter
	}
	if err := s.ensureNameFree(ctx, req.Name); err != nil {
		return domain.FoodResponse{}, err
	}

	food := &entities.BasicFood{
		ID:              uuid.New(),
		Name:            req.Name,
		CaloriesPer100g: req.CaloriesPer100g,
		ProteinPer100g:  req.ProteinPer100g,
	}
	if err := s.catalogRepository.CreateBasic(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return basicResponse(food), nil
}

func (s *catalogService) AddCompositeFood(ctx context.Context, req domain.AddCompositeFoodRequest) (domain.FoodResponse, error) {
	if entities.ContainsReservedChar(req.Name) {
		return domain.FoodResponse{}, domain.ErrReservedCharacter
	}
	if err := s.ensureNameFree(ctx, req.Name); err != nil {
		return domain.FoodResponse{}, err
	}

	ingredients, facts, err := s.blend(ctx, req.Ingredients)
	if err != nil {
		return domain.FoodResponse{}, err
	}

	food := &entities.CompositeFood{
		ID:              uuid.New(),
		Name:            req.Name,
		Ingredients:     ingredients,
		CaloriesPer100g: facts.CaloriesPer100g,
		ProteinPer100g:  facts.ProteinPer100g,
	}
	if err := s.catalogRepository.CreateComposite(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return compositeResponse(food), nil
}

func (s *catalogService) UpdateBasicFood(ctx context.Context, oldName string, req domain.UpdateBasicFoodRequest) (domain.FoodResponse, error) {
	food, err := s.catalogRepository.FindBasicByName(ctx, oldName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	if req.Name != oldName {
		if entities.ContainsReservedChar(req.Name) {
			return domain.FoodResponse{}, domain.ErrReservedCharacter
		}
		if err := s.ensureNameFree(ctx, req.Name); err != nil {
			return domain.FoodResponse{}, err
		}
	}

	food.Name = req.Name
	food.CaloriesPer100g = req.CaloriesPer100g
	food.ProteinPer100g = req.ProteinPer100g
	if err := s.catalogRepository.SaveBasic(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return basicResponse(food), nil
}

func (s *catalogService) UpdateCompositeFood(ctx context.Context, oldName string, req domain.UpdateCompositeFoodRequest) (domain.FoodResponse, error) {
	food, err := s.catalogRepository.FindCompositeByName(ctx, oldName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}

	if req.Name != oldName {
		if entities.ContainsReservedChar(req.Name) {
			return domain.FoodResponse{}, domain.ErrReservedCharacter
		}
		if err := s.ensureNameFree(ctx, req.Name); err != nil {
			return domain.FoodResponse{}, err
		}
	}

	// An ingredient naming this composite resolves to the stored snapshot,
	// exactly one level deep, so a self or circular reference can never
	// recurse.
	ingredients, facts, err := s.blend(ctx, req.Ingredients)
	if err != nil {
		return domain.FoodResponse{}, err
	}

	food.Name = req.Name
	food.Ingredients = ingredients
	food.CaloriesPer100g = facts.CaloriesPer100g
	food.ProteinPer100g = facts.ProteinPer100g
	if err := s.catalogRepository.SaveComposite(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	return compositeResponse(food), nil
}

// Lookup resolves a food name to its current per-100g values, checking basic
// foods first and composite foods second. Composite values are the stored
// snapshot, never a recomputation from ingredients.
func (s *catalogService) Lookup(ctx context.Context, name string) (domain.NutritionFacts, error) {
	basic, err := s.catalogRepository.FindBasicByName(ctx, name)
	if err == nil {
		return domain.NutritionFacts{
			CaloriesPer100g: basic.CaloriesPer100g,
			ProteinPer100g:  basic.ProteinPer100g,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NutritionFacts{}, err
	}

	composite, err := s.catalogRepository.FindCompositeByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NutritionFacts{}, domain.ErrFoodNotFound
		}
		return domain.NutritionFacts{}, err
	}
	return domain.NutritionFacts{
		CaloriesPer100g: composite.CaloriesPer100g,
		ProteinPer100g:  composite.ProteinPer100g,
	}, nil
}

func (s *catalogService) ListFoodNames(ctx context.Context) ([]string, error) {
	return s.catalogRepository.ListNames(ctx)
}

// QuantityForCalories inverts the per-100g relation: how many grams of the
// named food amount to the given calories.
func (s *catalogService) QuantityForCalories(ctx context.Context, name string, calories float64) (domain.QuantityResponse, error) {
	facts, err := s.Lookup(ctx, name)
	if err != nil {
		return domain.QuantityResponse{}, err
	}
	if facts.CaloriesPer100g <= 0 {
		return domain.QuantityResponse{}, domain.ErrZeroCalorieFood
	}
	return domain.QuantityResponse{
		Name:          name,
		Calories:      calories,
		QuantityGrams: calories / facts.CaloriesPer100g * 100,
	}, nil
}

// blend resolves each ingredient once and derives the composite's per-100g
// values as the quantity-weighted average of the resolved values.
func (s *catalogService) blend(ctx context.Context, ingredients []domain.IngredientRequest) (string, domain.NutritionFacts, error) {
	var totalCalories, totalProtein, totalWeight float64
	pairs := make(entities.PairList, 0, len(ingredients))

	for _, ingredient := range ingredients {
		if entities.ContainsReservedChar(ingredient.Name) {
			return "", domain.NutritionFacts{}, domain.ErrReservedCharacter
		}
		facts, err := s.Lookup(ctx, ingredient.Name)
		if err != nil {
			if errors.Is(err, domain.ErrFoodNotFound) {
				return "", domain.NutritionFacts{}, fmt.Errorf("%w: %s", domain.ErrUnresolvedIngredient, ingredient.Name)
			}
			return "", domain.NutritionFacts{}, err
		}

		totalCalories += facts.CaloriesPer100g * ingredient.QuantityGrams / 100
		totalProtein += facts.ProteinPer100g * ingredient.QuantityGrams / 100
		totalWeight += ingredient.QuantityGrams
		pairs = append(pairs, entities.Pair{Name: ingredient.Name, Value: ingredient.QuantityGrams})
	}

	if totalWeight == 0 {
		return "", domain.NutritionFacts{}, domain.ErrEmptyIngredientList
	}

	return entities.EncodePairs(pairs), domain.NutritionFacts{
		CaloriesPer100g: totalCalories / totalWeight * 100,
		ProteinPer100g:  totalProtein / totalWeight * 100,
	}, nil
}

// ensureNameFree enforces name uniqueness across both food kinds.
func (s *catalogService) ensureNameFree(ctx context.Context, name string) error {
	if _, err := s.catalogRepository.FindBasicByName(ctx, name); err == nil {
		return domain.ErrDuplicateName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := s.catalogRepository.FindCompositeByName(ctx, name); err == nil {
		return domain.ErrDuplicateName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func basicResponse(food *entities.BasicFood) domain.FoodResponse {
	return domain.FoodResponse{
		Name:            food.Name,
		Kind:            domain.FoodKindBasic,
		CaloriesPer100g: food.CaloriesPer100g,
		ProteinPer100g:  food.ProteinPer100g,
	}
}

func compositeResponse(food *entities.CompositeFood) domain.FoodResponse {
	return domain.FoodResponse{
		Name:            food.Name,
		Kind:            domain.FoodKindComposite,
		CaloriesPer100g: food.CaloriesPer100g,
		ProteinPer100g:  food.ProteinPer100g,
	}
}
