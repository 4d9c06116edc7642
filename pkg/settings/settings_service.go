package settings

import (
	"context"

	"github.com/TimSparing/Food-Tracker/domain"
	"github.com/TimSparing/Food-Tracker/entities"
)

type (
	SettingsService interface {
		GetSettings(ctx context.Context) (domain.SettingsResponse, error)
		UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SettingsResponse, error)
	}

	settingsService struct {
		settingsRepository SettingsRepository
	}
)

func NewSettingsService(settingsRepository SettingsRepository) SettingsService {
	return &settingsService{settingsRepository: settingsRepository}
}

func (s *settingsService) GetSettings(ctx context.Context) (domain.SettingsResponse, error) {
	settings, err := s.settingsRepository.Get(ctx)
	if err != nil {
		return domain.SettingsResponse{}, err
	}
	return settingsResponse(settings), nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SettingsResponse, error) {
	settings, err := s.settingsRepository.Get(ctx)
	if err != nil {
		return domain.SettingsResponse{}, err
	}

	settings.FontSize = req.FontSize
	settings.FontType = req.FontType

	settings.WeightColor = req.Weight.Color
	settings.WeightShape = req.Weight.Shape
	settings.WeightOpacity = req.Weight.Opacity
	settings.WeightSize = req.Weight.Size

	settings.CaloriesInColor = req.CaloriesIn.Color
	settings.CaloriesInShape = req.CaloriesIn.Shape
	settings.CaloriesInOpacity = req.CaloriesIn.Opacity
	settings.CaloriesInSize = req.CaloriesIn.Size

	settings.CaloriesOutColor = req.CaloriesOut.Color
	settings.CaloriesOutShape = req.CaloriesOut.Shape
	settings.CaloriesOutOpacity = req.CaloriesOut.Opacity
	settings.CaloriesOutSize = req.CaloriesOut.Size

	if err := s.settingsRepository.Save(ctx, settings); err != nil {
		return domain.SettingsResponse{}, err
	}
	return settingsResponse(settings), nil
}

func settingsResponse(settings *entities.Settings) domain.SettingsResponse {
	return domain.SettingsResponse{
		FontSize: settings.FontSize,
		FontType: settings.FontType,
		Weight: domain.SeriesStyle{
			Color:   settings.WeightColor,
			Shape:   settings.WeightShape,
			Opacity: settings.WeightOpacity,
			Size:    settings.WeightSize,
		},
		CaloriesIn: domain.SeriesStyle{
			Color:   settings.CaloriesInColor,
			Shape:   settings.CaloriesInShape,
			Opacity: settings.CaloriesInOpacity,
			Size:    settings.CaloriesInSize,
		},
		CaloriesOut: domain.SeriesStyle{
			Color:   settings.CaloriesOutColor,
			Shape:   settings.CaloriesOutShape,
			Opacity: settings.CaloriesOutOpacity,
			Size:    settings.CaloriesOutSize,
		},
	}
}
