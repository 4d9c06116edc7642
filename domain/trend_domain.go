package domain

var (
	MessageSuccessGetHistory = "history retrieved successfully"
	MessageSuccessGetChart   = "chart data retrieved successfully"
	MessageSuccessGetTicks   = "axis ticks generated successfully"

	MessageFailedGetHistory = "failed to retrieve history"
	MessageFailedGetChart   = "failed to retrieve chart data"
	MessageFailedGetTicks   = "failed to generate axis ticks"
)

type (
	// HistoryRow is one line of the trend table. PriorDelta and GoalDelta are
	// nil when the day (or, for PriorDelta, every earlier day) has no weight.
	// ProteinLow marks a weighed day whose protein intake fell below
	// 0.8 g per kg of body weight.
	HistoryRow struct {
		Date        string   `json:"date"`
		Weight      *float64 `json:"weight"`
		CaloriesIn  float64  `json:"calories_in"`
		CaloriesOut float64  `json:"calories_out"`
		Protein     float64  `json:"protein"`
		PriorDelta  *float64 `json:"prior_delta"`
		GoalDelta   *float64 `json:"goal_delta"`
		ProteinLow  bool     `json:"protein_low"`
	}

	// Normalization maps calorie values onto the weight axis:
	// plotted = calories * Factor.
	Normalization struct {
		MaxWeight   float64 `json:"max_weight"`
		MaxCalories float64 `json:"max_calories"`
		Factor      float64 `json:"factor"`
	}

	// AxisTick places a true-calorie label at a primary-axis coordinate.
	AxisTick struct {
		Position float64 `json:"position"`
		Label    string  `json:"label"`
	}

	// ChartData is everything the renderer needs; days without a weigh-in
	// keep their index with a nil weight so dates stay aligned across series.
	ChartData struct {
		Dates                 []string      `json:"dates"`
		Weights               []*float64    `json:"weights"`
		CaloriesIn            []float64     `json:"calories_in"`
		CaloriesOut           []float64     `json:"calories_out"`
		NormalizedCaloriesIn  []float64     `json:"normalized_calories_in"`
		NormalizedCaloriesOut []float64     `json:"normalized_calories_out"`
		Normalization         Normalization `json:"normalization"`
		YMax                  float64       `json:"y_max"`
		Ticks                 []AxisTick    `json:"ticks"`
	}
)
