package settings

import (
	"context"
	"testing"

	"github.com/TimSparing/Food-Tracker/domain"
	"github.com/TimSparing/Food-Tracker/entities"
)

type fakeSettingsRepository struct {
	stored *entities.Settings
}

func (f *fakeSettingsRepository) Get(context.Context) (*entities.Settings, error) {
	if f.stored == nil {
		defaults := entities.DefaultSettings()
		f.stored = &defaults
	}
	return f.stored, nil
}

func (f *fakeSettingsRepository) Save(_ context.Context, settings *entities.Settings) error {
	f.stored = settings
	return nil
}

func TestGetSettingsReturnsDefaults(t *testing.T) {
	s := NewSettingsService(&fakeSettingsRepository{})

	res, err := s.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if res.FontSize != "Medium" || res.FontType != "Arial" {
		t.Errorf("font defaults = %s/%s, want Medium/Arial", res.FontSize, res.FontType)
	}
	if res.Weight.Color != "blue" || res.Weight.Shape != "Circle" {
		t.Errorf("weight series defaults = %+v", res.Weight)
	}
	if res.CaloriesIn.Color != "green" || res.CaloriesOut.Color != "red" {
		t.Errorf("calorie series defaults = %+v / %+v", res.CaloriesIn, res.CaloriesOut)
	}
}

func TestUpdateSettingsPersists(t *testing.T) {
	repo := &fakeSettingsRepository{}
	s := NewSettingsService(repo)

	req := domain.UpdateSettingsRequest{
		FontSize: "Large",
		FontType: "Helvetica",
		Weight:   domain.SeriesStyleRequest{Color: "black", Shape: "Triangle", Opacity: 80, Size: 12},
		CaloriesIn: domain.SeriesStyleRequest{
			Color: "orange", Shape: "Circle", Opacity: 60, Size: 8,
		},
		CaloriesOut: domain.SeriesStyleRequest{
			Color: "purple", Shape: "Square", Opacity: 50, Size: 9,
		},
	}

	res, err := s.UpdateSettings(context.Background(), req)
	if err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}
	if res.FontSize != "Large" || res.Weight.Shape != "Triangle" {
		t.Errorf("response does not reflect update: %+v", res)
	}

	again, err := s.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if again.CaloriesOut.Color != "purple" || again.CaloriesIn.Opacity != 60 {
		t.Errorf("update not persisted: %+v", again)
	}
}
