package diary

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/TimSparing/Food-Tracker/domain"
	"github.com/TimSparing/Food-Tracker/entities"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeDiaryRepository struct {
	records map[string]*entities.DailyRecord
}

func newFakeDiaryRepository() *fakeDiaryRepository {
	return &fakeDiaryRepository{records: map[string]*entities.DailyRecord{}}
}

func (f *fakeDiaryRepository) Get(_ context.Context, date string) (*entities.DailyRecord, error) {
	record, ok := f.records[date]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *record
	return &copied, nil
}

func (f *fakeDiaryRepository) Mutate(_ context.Context, date string, fn func(record *entities.DailyRecord)) error {
	record, ok := f.records[date]
	if !ok {
		record = &entities.DailyRecord{ID: uuid.New(), Date: date}
	}
	fn(record)
	f.records[date] = record
	return nil
}

func (f *fakeDiaryRepository) ListAll(_ context.Context) ([]entities.DailyRecord, error) {
	dates := make([]string, 0, len(f.records))
	for date := range f.records {
		dates = append(dates, date)
	}
	// Dates sort lexicographically in chronological order.
	for i := range dates {
		for j := i + 1; j < len(dates); j++ {
			if dates[j] < dates[i] {
				dates[i], dates[j] = dates[j], dates[i]
			}
		}
	}
	records := make([]entities.DailyRecord, 0, len(dates))
	for _, date := range dates {
		records = append(records, *f.records[date])
	}
	return records, nil
}

type fakeCatalog struct {
	foods map[string]domain.NutritionFacts
}

func (f *fakeCatalog) Lookup(_ context.Context, name string) (domain.NutritionFacts, error) {
	facts, ok := f.foods[name]
	if !ok {
		return domain.NutritionFacts{}, domain.ErrFoodNotFound
	}
	return facts, nil
}

func (f *fakeCatalog) AddBasicFood(context.Context, domain.AddBasicFoodRequest) (domain.FoodResponse, error) {
	return domain.FoodResponse{}, nil
}

func (f *fakeCatalog) AddCompositeFood(context.Context, domain.AddCompositeFoodRequest) (domain.FoodResponse, error) {
	return domain.FoodResponse{}, nil
}

func (f *fakeCatalog) UpdateBasicFood(context.Context, string, domain.UpdateBasicFoodRequest) (domain.FoodResponse, error) {
	return domain.FoodResponse{}, nil
}

func (f *fakeCatalog) UpdateCompositeFood(context.Context, string, domain.UpdateCompositeFoodRequest) (domain.FoodResponse, error) {
	return domain.FoodResponse{}, nil
}

func (f *fakeCatalog) ListFoodNames(context.Context) ([]string, error) { return nil, nil }

func (f *fakeCatalog) QuantityForCalories(context.Context, string, float64) (domain.QuantityResponse, error) {
	return domain.QuantityResponse{}, nil
}

func newTestDiary() (DiaryService, *fakeDiaryRepository) {
	repo := newFakeDiaryRepository()
	cat := &fakeCatalog{foods: map[string]domain.NutritionFacts{
		"Rice":           {CaloriesPer100g: 130, ProteinPer100g: 2.7},
		"Chicken Breast": {CaloriesPer100g: 165, ProteinPer100g: 31},
	}}
	return NewDiaryService(repo, cat, zap.NewNop().Sugar()), repo
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestUpsertWeightOverwrites(t *testing.T) {
	s, _ := newTestDiary()
	ctx := context.Background()

	if err := s.UpsertWeight(ctx, "2024-03-01", 82.4); err != nil {
		t.Fatalf("UpsertWeight failed: %v", err)
	}
	if err := s.UpsertWeight(ctx, "2024-03-01", 82.1); err != nil {
		t.Fatalf("second UpsertWeight failed: %v", err)
	}

	day, err := s.GetDay(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if day.Weight == nil || *day.Weight != 82.1 {
		t.Errorf("weight = %v, want 82.1", day.Weight)
	}
}

func TestUpsertWeightPreservesOtherFields(t *testing.T) {
	s, _ := newTestDiary()
	ctx := context.Background()

	if err := s.AppendFood(ctx, "2024-03-01", "Rice", 200); err != nil {
		t.Fatalf("AppendFood failed: %v", err)
	}
	if err := s.UpsertWeight(ctx, "2024-03-01", 82.4); err != nil {
		t.Fatalf("UpsertWeight failed: %v", err)
	}

	day, err := s.GetDay(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if len(day.Foods) != 1 || day.Foods[0].Name != "Rice" {
		t.Errorf("food list lost during weight upsert: %+v", day.Foods)
	}
}

func TestAppendFoodAccumulates(t *testing.T) {
	s, _ := newTestDiary()
	ctx := context.Background()

	if err := s.AppendFood(ctx, "2024-03-01", "Rice", 200); err != nil {
		t.Fatalf("AppendFood failed: %v", err)
	}
	if err := s.AppendFood(ctx, "2024-03-01", "Rice", 150); err != nil {
		t.Fatalf("second AppendFood failed: %v", err)
	}

	day, err := s.GetDay(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if len(day.Foods) != 2 {
		t.Fatalf("got %d food entries, want 2 (duplicates are separate entries)", len(day.Foods))
	}
}

func TestAppendRejectsInvalidDateAndReservedName(t *testing.T) {
	s, _ := newTestDiary()
	ctx := context.Background()

	if err := s.AppendFood(ctx, "03/01/2024", "Rice", 200); !errors.Is(err, domain.ErrInvalidDate) {
		t.Errorf("bad date: got %v, want ErrInvalidDate", err)
	}
	if err := s.AppendFood(ctx, "2024-03-01", "Rice, cooked", 200); !errors.Is(err, domain.ErrReservedCharacter) {
		t.Errorf("reserved name: got %v, want ErrReservedCharacter", err)
	}
	if err := s.AppendExercise(ctx, "2024-03-01", "Run;fast", 300); !errors.Is(err, domain.ErrReservedCharacter) {
		t.Errorf("reserved exercise name: got %v, want ErrReservedCharacter", err)
	}
}

func TestGetDayAbsentReturnsDefaults(t *testing.T) {
	s, _ := newTestDiary()

	day, err := s.GetDay(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if day.Weight != nil {
		t.Errorf("weight = %v, want nil", day.Weight)
	}
	if len(day.Foods) != 0 || len(day.Exercises) != 0 {
		t.Errorf("expected empty lists, got %+v", day)
	}
}

func TestReplaceDayOverwritesEverything(t *testing.T) {
	s, _ := newTestDiary()
	ctx := context.Background()

	if err := s.AppendFood(ctx, "2024-03-01", "Rice", 200); err != nil {
		t.Fatalf("AppendFood failed: %v", err)
	}

	weight := 81.0
	err := s.ReplaceDay(ctx, "2024-03-01", domain.ReplaceDayRequest{
		Weight:    &weight,
		Foods:     []domain.DayEntryRequest{{Name: "Chicken Breast", Value: 150}},
		Exercises: []domain.DayEntryRequest{{Name: "Jogging", Value: 300}},
	})
	if err != nil {
		t.Fatalf("ReplaceDay failed: %v", err)
	}

	day, err := s.GetDay(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if day.Weight == nil || *day.Weight != 81.0 {
		t.Errorf("weight = %v, want 81.0", day.Weight)
	}
	if len(day.Foods) != 1 || day.Foods[0].Name != "Chicken Breast" {
		t.Errorf("foods = %+v, want only Chicken Breast", day.Foods)
	}
	if len(day.Exercises) != 1 || day.Exercises[0].Name != "Jogging" {
		t.Errorf("exercises = %+v, want only Jogging", day.Exercises)
	}
}

func TestAggregateDay(t *testing.T) {
	s, _ := newTestDiary()
	ctx := context.Background()

	if err := s.AppendFood(ctx, "2024-03-01", "Rice", 100); err != nil {
		t.Fatalf("AppendFood failed: %v", err)
	}
	if err := s.AppendExercise(ctx, "2024-03-01", "Jogging", 300); err != nil {
		t.Fatalf("AppendExercise failed: %v", err)
	}

	summary, err := s.AggregateDay(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("AggregateDay failed: %v", err)
	}
	if !almostEqual(summary.CaloriesIn, 130) {
		t.Errorf("CaloriesIn = %v, want 130", summary.CaloriesIn)
	}
	if !almostEqual(summary.CaloriesOut, 300) {
		t.Errorf("CaloriesOut = %v, want 300", summary.CaloriesOut)
	}
	if !almostEqual(summary.Protein, 2.7) {
		t.Errorf("Protein = %v, want 2.7", summary.Protein)
	}
}

func TestAggregateDayToleratesUnresolvedFood(t *testing.T) {
	s, _ := newTestDiary()
	ctx := context.Background()

	if err := s.AppendFood(ctx, "2024-03-01", "Rice", 100); err != nil {
		t.Fatalf("AppendFood failed: %v", err)
	}
	if err := s.AppendFood(ctx, "2024-03-01", "Deleted Dish", 250); err != nil {
		t.Fatalf("AppendFood failed: %v", err)
	}

	summary, err := s.AggregateDay(ctx, "2024-03-01")
	if err != nil {
		t.Fatalf("AggregateDay failed: %v", err)
	}
	if !almostEqual(summary.CaloriesIn, 130) {
		t.Errorf("CaloriesIn = %v, want 130 (unresolved contributes zero)", summary.CaloriesIn)
	}
	if len(summary.Unresolved) != 1 || summary.Unresolved[0] != "Deleted Dish" {
		t.Errorf("Unresolved = %v, want [Deleted Dish]", summary.Unresolved)
	}
}

func TestAggregateDayAbsentDateIsZero(t *testing.T) {
	s, _ := newTestDiary()

	summary, err := s.AggregateDay(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatalf("AggregateDay failed: %v", err)
	}
	if summary.CaloriesIn != 0 || summary.CaloriesOut != 0 || summary.Protein != 0 {
		t.Errorf("absent date should aggregate to zero, got %+v", summary)
	}
}

func TestMalformedFieldDegradesToEmpty(t *testing.T) {
	s, repo := newTestDiary()
	repo.records["2024-03-01"] = &entities.DailyRecord{
		ID:           uuid.New(),
		Date:         "2024-03-01",
		FoodConsumed: "not a valid field",
	}

	day, err := s.GetDay(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if len(day.Foods) != 0 {
		t.Errorf("malformed field should read as empty, got %+v", day.Foods)
	}

	// Appending after corruption starts from the empty list.
	if err := s.AppendFood(context.Background(), "2024-03-01", "Rice", 100); err != nil {
		t.Fatalf("AppendFood failed: %v", err)
	}
	day, err = s.GetDay(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if len(day.Foods) != 1 {
		t.Errorf("got %d foods after append over corrupted field, want 1", len(day.Foods))
	}
}
