package domain

var (
	MessageSuccessSaveWeight     = "weight saved successfully"
	MessageSuccessAppendFood     = "food entry added successfully"
	MessageSuccessAppendExercise = "exercise entry added successfully"
	MessageSuccessReplaceDay     = "daily record saved successfully"
	MessageSuccessGetDay         = "daily record retrieved successfully"
	MessageSuccessListDays       = "daily records retrieved successfully"
	MessageSuccessDaySummary     = "daily summary calculated successfully"

	MessageFailedSaveWeight     = "failed to save weight"
	MessageFailedAppendFood     = "failed to add food entry"
	MessageFailedAppendExercise = "failed to add exercise entry"
	MessageFailedReplaceDay     = "failed to save daily record"
	MessageFailedGetDay         = "failed to retrieve daily record"
	MessageFailedListDays       = "failed to retrieve daily records"
	MessageFailedDaySummary     = "failed to calculate daily summary"
)

// ExercisePresets are the built-in activity names offered alongside free-form
// exercise entries.
var ExercisePresets = []string{
	"Cycling",
	"Swimming",
	"Jogging",
	"Climbing",
	"Weight Training",
}

type (
	UpsertWeightRequest struct {
		Weight float64 `json:"weight" validate:"required,gt=0"`
	}

	AppendFoodRequest struct {
		Name          string  `json:"name" validate:"required"`
		QuantityGrams float64 `json:"quantity_grams" validate:"gt=0"`
	}

	AppendExerciseRequest struct {
		Name           string  `json:"name" validate:"required"`
		CaloriesBurned float64 `json:"calories_burned" validate:"gte=0"`
	}

	DayEntryRequest struct {
		Name  string  `json:"name" validate:"required"`
		Value float64 `json:"value" validate:"gte=0"`
	}

	// ReplaceDayRequest overwrites a whole date. A nil weight clears the
	// weigh-in; empty slices clear the lists.
	ReplaceDayRequest struct {
		Weight    *float64          `json:"weight" validate:"omitempty,gt=0"`
		Foods     []DayEntryRequest `json:"foods" validate:"dive"`
		Exercises []DayEntryRequest `json:"exercises" validate:"dive"`
	}

	DayEntry struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	DayResponse struct {
		Date      string     `json:"date"`
		Weight    *float64   `json:"weight"`
		Foods     []DayEntry `json:"foods"`
		Exercises []DayEntry `json:"exercises"`
	}

	DaySummary struct {
		Date        string   `json:"date"`
		CaloriesIn  float64  `json:"calories_in"`
		CaloriesOut float64  `json:"calories_out"`
		Protein     float64  `json:"protein"`
		Unresolved  []string `json:"unresolved,omitempty"`
	}
)
