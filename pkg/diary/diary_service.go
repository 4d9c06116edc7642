package diary

import (
	"context"
	"errors"
	"time"

	"github.com/TimSparing/Food-Tracker/domain"
	"github.com/TimSparing/Food-Tracker/entities"
	"github.com/TimSparing/Food-Tracker/pkg/catalog"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	DiaryService interface {
		UpsertWeight(ctx context.Context, date string, weight float64) error
		AppendFood(ctx context.Context, date, name string, quantityGrams float64) error
		AppendExercise(ctx context.Context, date, name string, caloriesBurned float64) error
		ReplaceDay(ctx context.Context, date string, req domain.ReplaceDayRequest) error
		GetDay(ctx context.Context, date string) (domain.DayResponse, error)
		ListDays(ctx context.Context) ([]domain.DayResponse, error)
		AggregateDay(ctx context.Context, date string) (domain.DaySummary, error)
	}

	diaryService struct {
		diaryRepository DiaryRepository
		catalogService  catalog.CatalogService
		log             *zap.SugaredLogger
	}
)

func NewDiaryService(diaryRepository DiaryRepository, catalogService catalog.CatalogService, log *zap.SugaredLogger) DiaryService {
	return &diaryService{
		diaryRepository: diaryRepository,
		catalogService:  catalogService,
		log:             log,
	}
}

func (s *diaryService) UpsertWeight(ctx context.Context, date string, weight float64) error {
	if err := validDate(date); err != nil {
		return err
	}
	return s.diaryRepository.Mutate(ctx, date, func(record *entities.DailyRecord) {
		w := weight
		record.Weight = &w
	})
}

func (s *diaryService) AppendFood(ctx context.Context, date, name string, quantityGrams float64) error {
	return s.appendEntry(ctx, date, name, quantityGrams, func(record *entities.DailyRecord) *string {
		return &record.FoodConsumed
	})
}

func (s *diaryService) AppendExercise(ctx context.Context, date, name string, caloriesBurned float64) error {
	return s.appendEntry(ctx, date, name, caloriesBurned, func(record *entities.DailyRecord) *string {
		return &record.Exercises
	})
}

// appendEntry merges one pair into the chosen list field. Appends accumulate:
// logging the same name twice yields two entries.
func (s *diaryService) appendEntry(ctx context.Context, date, name string, value float64, field func(record *entities.DailyRecord) *string) error {
	if err := validDate(date); err != nil {
		return err
	}
	if entities.ContainsReservedChar(name) {
		return domain.ErrReservedCharacter
	}
	return s.diaryRepository.Mutate(ctx, date, func(record *entities.DailyRecord) {
		target := field(record)
		pairs := s.decodeField(date, *target)
		pairs = append(pairs, entities.Pair{Name: name, Value: value})
		*target = entities.EncodePairs(pairs)
	})
}

func (s *diaryService) ReplaceDay(ctx context.Context, date string, req domain.ReplaceDayRequest) error {
	if err := validDate(date); err != nil {
		return err
	}
	for _, entry := range req.Foods {
		if entities.ContainsReservedChar(entry.Name) {
			return domain.ErrReservedCharacter
		}
	}
	for _, entry := range req.Exercises {
		if entities.ContainsReservedChar(entry.Name) {
			return domain.ErrReservedCharacter
		}
	}
	return s.diaryRepository.Mutate(ctx, date, func(record *entities.DailyRecord) {
		record.Weight = req.Weight
		record.FoodConsumed = entities.EncodePairs(entryPairs(req.Foods))
		record.Exercises = entities.EncodePairs(entryPairs(req.Exercises))
	})
}

func (s *diaryService) GetDay(ctx context.Context, date string) (domain.DayResponse, error) {
	if err := validDate(date); err != nil {
		return domain.DayResponse{}, err
	}
	record, err := s.diaryRepository.Get(ctx, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DayResponse{Date: date, Foods: []domain.DayEntry{}, Exercises: []domain.DayEntry{}}, nil
		}
		return domain.DayResponse{}, err
	}
	return s.dayResponse(record), nil
}

func (s *diaryService) ListDays(ctx context.Context) ([]domain.DayResponse, error) {
	records, err := s.diaryRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	days := make([]domain.DayResponse, 0, len(records))
	for i := range records {
		days = append(days, s.dayResponse(&records[i]))
	}
	return days, nil
}

// AggregateDay totals one date's intake and expenditure. Food entries whose
// name no longer resolves contribute nothing and are reported back as
// warnings rather than failing the day; historical entries may reference
// since-renamed foods.
func (s *diaryService) AggregateDay(ctx context.Context, date string) (domain.DaySummary, error) {
	if err := validDate(date); err != nil {
		return domain.DaySummary{}, err
	}

	summary := domain.DaySummary{Date: date}

	record, err := s.diaryRepository.Get(ctx, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return summary, nil
		}
		return domain.DaySummary{}, err
	}

	for _, food := range s.decodeField(date, record.FoodConsumed) {
		facts, err := s.catalogService.Lookup(ctx, food.Name)
		if err != nil {
			if errors.Is(err, domain.ErrFoodNotFound) {
				s.log.Warnw("food entry does not resolve, counting zero",
					"date", date, "food", food.Name)
				summary.Unresolved = append(summary.Unresolved, food.Name)
				continue
			}
			return domain.DaySummary{}, err
		}
		summary.CaloriesIn += facts.CaloriesPer100g * food.Value / 100
		summary.Protein += facts.ProteinPer100g * food.Value / 100
	}

	for _, exercise := range s.decodeField(date, record.Exercises) {
		summary.CaloriesOut += exercise.Value
	}

	return summary, nil
}

// decodeField parses a serialized pair list, degrading a malformed field to
// an empty list so one corrupted row never blocks the rest of the diary.
func (s *diaryService) decodeField(date, raw string) entities.PairList {
	pairs, err := entities.DecodePairs(raw)
	if err != nil {
		s.log.Warnw("discarding malformed pair list", "date", date, "raw", raw)
		return entities.PairList{}
	}
	return pairs
}

func (s *diaryService) dayResponse(record *entities.DailyRecord) domain.DayResponse {
	return domain.DayResponse{
		Date:      record.Date,
		Weight:    record.Weight,
		Foods:     dayEntries(s.decodeField(record.Date, record.FoodConsumed)),
		Exercises: dayEntries(s.decodeField(record.Date, record.Exercises)),
	}
}

func dayEntries(pairs entities.PairList) []domain.DayEntry {
	entries := make([]domain.DayEntry, 0, len(pairs))
	for _, p := range pairs {
		entries = append(entries, domain.DayEntry{Name: p.Name, Value: p.Value})
	}
	return entries
}

func entryPairs(entries []domain.DayEntryRequest) entities.PairList {
	pairs := make(entities.PairList, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, entities.Pair{Name: e.Name, Value: e.Value})
	}
	return pairs
}

func validDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domain.ErrInvalidDate
	}
	return nil
}
