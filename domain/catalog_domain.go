package domain

import "errors"

var (
	MessageSuccessAddFood       = "food added successfully"
	MessageSuccessUpdateFood    = "food updated successfully"
	MessageSuccessGetFood       = "food retrieved successfully"
	MessageSuccessListFoods     = "food names retrieved successfully"
	MessageSuccessQuantity      = "quantity calculated successfully"
	MessageSuccessListExercises = "exercise presets retrieved successfully"

	MessageFailedAddFood    = "failed to add food"
	MessageFailedUpdateFood = "failed to update food"
	MessageFailedGetFood    = "failed to retrieve food"
	MessageFailedListFoods  = "failed to retrieve food names"
	MessageFailedQuantity   = "failed to calculate quantity"

	ErrDuplicateName        = errors.New("a food with this name already exists")
	ErrUnresolvedIngredient = errors.New("ingredient does not match any known food")
	ErrEmptyIngredientList  = errors.New("composite food has no ingredient weight")
	ErrFoodNotFound         = errors.New("food not found")
	ErrReservedCharacter    = errors.New("name must not contain ',' or ';'")
	ErrZeroCalorieFood      = errors.New("food has no calories per 100g")
)

const (
	FoodKindBasic     = "basic"
	FoodKindComposite = "composite"
)

type (
	IngredientRequest struct {
		Name          string  `json:"name" validate:"required"`
		QuantityGrams float64 `json:"quantity_grams" validate:"gte=0"`
	}

	AddBasicFoodRequest struct {
		Name            string  `json:"name" validate:"required"`
		CaloriesPer100g float64 `json:"calories_per_100g" validate:"gte=0"`
		ProteinPer100g  float64 `json:"protein_per_100g" validate:"gte=0"`
	}

	AddCompositeFoodRequest struct {
		Name        string              `json:"name" validate:"required"`
		Ingredients []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
	}

	UpdateBasicFoodRequest struct {
		Name            string  `json:"name" validate:"required"`
		CaloriesPer100g float64 `json:"calories_per_100g" validate:"gte=0"`
		ProteinPer100g  float64 `json:"protein_per_100g" validate:"gte=0"`
	}

	UpdateCompositeFoodRequest struct {
		Name        string              `json:"name" validate:"required"`
		Ingredients []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
	}

	NutritionFacts struct {
		CaloriesPer100g float64 `json:"calories_per_100g"`
		ProteinPer100g  float64 `json:"protein_per_100g"`
	}

	FoodResponse struct {
		Name            string  `json:"name"`
		Kind            string  `json:"kind"`
		CaloriesPer100g float64 `json:"calories_per_100g"`
		ProteinPer100g  float64 `json:"protein_per_100g"`
	}

	QuantityResponse struct {
		Name          string  `json:"name"`
		Calories      float64 `json:"calories"`
		QuantityGrams float64 `json:"quantity_grams"`
	}
)
