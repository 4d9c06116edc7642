package entities

// Settings is the singleton display-preferences row. It is pure presentation
// state; the engine never reads it.
type Settings struct {
	ID       uint   `gorm:"primary_key" json:"id"`
	FontSize string `json:"font_size"`
	FontType string `json:"font_type"`

	WeightColor   string  `json:"weight_color"`
	WeightShape   string  `json:"weight_shape"`
	WeightOpacity float64 `json:"weight_opacity"`
	WeightSize    float64 `json:"weight_size"`

	CaloriesInColor   string  `json:"calories_in_color"`
	CaloriesInShape   string  `json:"calories_in_shape"`
	CaloriesInOpacity float64 `json:"calories_in_opacity"`
	CaloriesInSize    float64 `json:"calories_in_size"`

	CaloriesOutColor   string  `json:"calories_out_color"`
	CaloriesOutShape   string  `json:"calories_out_shape"`
	CaloriesOutOpacity float64 `json:"calories_out_opacity"`
	CaloriesOutSize    float64 `json:"calories_out_size"`
}

func (Settings) TableName() string { return "settings" }

// DefaultSettings is the row seeded on first run.
func DefaultSettings() Settings {
	return Settings{
		FontSize:           "Medium",
		FontType:           "Arial",
		WeightColor:        "blue",
		WeightShape:        "Circle",
		WeightOpacity:      100,
		WeightSize:         10,
		CaloriesInColor:    "green",
		CaloriesInShape:    "Square",
		CaloriesInOpacity:  100,
		CaloriesInSize:     10,
		CaloriesOutColor:   "red",
		CaloriesOutShape:   "Triangle",
		CaloriesOutOpacity: 100,
		CaloriesOutSize:    10,
	}
}
