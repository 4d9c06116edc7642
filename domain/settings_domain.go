package domain

var (
	MessageSuccessGetSettings    = "settings retrieved successfully"
	MessageSuccessUpdateSettings = "settings updated successfully"

	MessageFailedGetSettings    = "failed to retrieve settings"
	MessageFailedUpdateSettings = "failed to update settings"
)

type (
	SeriesStyleRequest struct {
		Color   string  `json:"color" validate:"required"`
		Shape   string  `json:"shape" validate:"required,oneof=Circle Square Triangle"`
		Opacity float64 `json:"opacity" validate:"gte=0,lte=100"`
		Size    float64 `json:"size" validate:"gt=0"`
	}

	UpdateSettingsRequest struct {
		FontSize    string             `json:"font_size" validate:"required,oneof=Small Medium Large"`
		FontType    string             `json:"font_type" validate:"required"`
		Weight      SeriesStyleRequest `json:"weight" validate:"required"`
		CaloriesIn  SeriesStyleRequest `json:"calories_in" validate:"required"`
		CaloriesOut SeriesStyleRequest `json:"calories_out" validate:"required"`
	}

	SeriesStyle struct {
		Color   string  `json:"color"`
		Shape   string  `json:"shape"`
		Opacity float64 `json:"opacity"`
		Size    float64 `json:"size"`
	}

	SettingsResponse struct {
		FontSize    string      `json:"font_size"`
		FontType    string      `json:"font_type"`
		Weight      SeriesStyle `json:"weight"`
		CaloriesIn  SeriesStyle `json:"calories_in"`
		CaloriesOut SeriesStyle `json:"calories_out"`
	}
)
