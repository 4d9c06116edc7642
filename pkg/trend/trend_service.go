package trend

import (
	"context"
	"strconv"

	"github.com/TimSparing/Food-Tracker/domain"
	"github.com/TimSparing/Food-Tracker/pkg/diary"
)

// proteinFloorPerKg is the intake, in grams of protein per kilogram of body
// weight, below which a weighed day is flagged.
const proteinFloorPerKg = 0.8

// tickStep is the spacing of secondary-axis labels, in true calories.
const tickStep = 100

type (
	TrendService interface {
		BuildHistory(ctx context.Context) ([]domain.HistoryRow, error)
		BuildChart(ctx context.Context) (domain.ChartData, error)
	}

	trendService struct {
		diaryService diary.DiaryService
		goalWeight   float64
	}
)

func NewTrendService(diaryService diary.DiaryService, goalWeight float64) TrendService {
	return &trendService{
		diaryService: diaryService,
		goalWeight:   goalWeight,
	}
}

// BuildHistory walks every recorded day oldest first and derives the trend
// columns. The prior-weight delta compares against the most recent earlier
// weigh-in, so gaps without a weigh-in carry the last known weight forward.
func (s *trendService) BuildHistory(ctx context.Context) ([]domain.HistoryRow, error) {
	days, err := s.diaryService.ListDays(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.HistoryRow, 0, len(days))
	var previousWeight *float64

	for _, day := range days {
		summary, err := s.diaryService.AggregateDay(ctx, day.Date)
		if err != nil {
			return nil, err
		}

		row := domain.HistoryRow{
			Date:        day.Date,
			Weight:      day.Weight,
			CaloriesIn:  summary.CaloriesIn,
			CaloriesOut: summary.CaloriesOut,
			Protein:     summary.Protein,
		}

		if day.Weight != nil {
			w := *day.Weight
			if previousWeight != nil {
				delta := w - *previousWeight
				row.PriorDelta = &delta
			}
			goalDelta := w - s.goalWeight
			row.GoalDelta = &goalDelta
			row.ProteinLow = summary.Protein < proteinFloorPerKg*w
			previousWeight = &w
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// BuildChart assembles the aligned plot series plus the normalization that
// lets calories share the weight axis.
func (s *trendService) BuildChart(ctx context.Context) (domain.ChartData, error) {
	rows, err := s.BuildHistory(ctx)
	if err != nil {
		return domain.ChartData{}, err
	}

	chart := domain.ChartData{
		Dates:                 make([]string, 0, len(rows)),
		Weights:               make([]*float64, 0, len(rows)),
		CaloriesIn:            make([]float64, 0, len(rows)),
		CaloriesOut:           make([]float64, 0, len(rows)),
		NormalizedCaloriesIn:  make([]float64, 0, len(rows)),
		NormalizedCaloriesOut: make([]float64, 0, len(rows)),
	}

	for _, row := range rows {
		chart.Dates = append(chart.Dates, row.Date)
		chart.Weights = append(chart.Weights, row.Weight)
		chart.CaloriesIn = append(chart.CaloriesIn, row.CaloriesIn)
		chart.CaloriesOut = append(chart.CaloriesOut, row.CaloriesOut)
	}

	chart.Normalization = ComputeNormalization(chart.Weights, chart.CaloriesIn, chart.CaloriesOut)
	for i := range rows {
		chart.NormalizedCaloriesIn = append(chart.NormalizedCaloriesIn, chart.CaloriesIn[i]*chart.Normalization.Factor)
		chart.NormalizedCaloriesOut = append(chart.NormalizedCaloriesOut, chart.CaloriesOut[i]*chart.Normalization.Factor)
	}

	chart.YMax = chart.Normalization.MaxWeight * 1.1
	if len(chart.CaloriesIn) > 0 || len(chart.CaloriesOut) > 0 {
		low, high := calorieRange(chart.CaloriesIn, chart.CaloriesOut)
		chart.Ticks = RightAxisTicks(low, high, chart.Normalization.Factor)
	}

	return chart, nil
}

// ComputeNormalization finds the scale factor that maps the largest calorie
// value onto the largest weight. With no calories recorded the factor stays 1
// so plotted and true values coincide.
func ComputeNormalization(weights []*float64, caloriesIn, caloriesOut []float64) domain.Normalization {
	n := domain.Normalization{Factor: 1}

	for _, w := range weights {
		if w != nil && *w > n.MaxWeight {
			n.MaxWeight = *w
		}
	}
	for _, c := range caloriesIn {
		if c > n.MaxCalories {
			n.MaxCalories = c
		}
	}
	for _, c := range caloriesOut {
		if c > n.MaxCalories {
			n.MaxCalories = c
		}
	}

	if n.MaxCalories > 0 {
		n.Factor = n.MaxWeight / n.MaxCalories
	}
	return n
}

// RightAxisTicks labels the secondary axis in true calories at round-hundred
// intervals, placed at their scaled primary-axis positions. The bounds snap
// outward to the enclosing hundreds.
func RightAxisTicks(low, high, factor float64) []domain.AxisTick {
	if factor <= 0 || high <= low {
		return nil
	}

	min := int(low/float64(tickStep)) * tickStep
	max := (int(high/float64(tickStep)) + 1) * tickStep

	ticks := make([]domain.AxisTick, 0, (max-min)/tickStep+1)
	for v := min; v <= max; v += tickStep {
		ticks = append(ticks, domain.AxisTick{
			Position: float64(v) * factor,
			Label:    strconv.Itoa(v),
		})
	}
	return ticks
}

func calorieRange(caloriesIn, caloriesOut []float64) (low, high float64) {
	first := true
	for _, series := range [][]float64{caloriesIn, caloriesOut} {
		for _, c := range series {
			if first {
				low, high = c, c
				first = false
				continue
			}
			if c < low {
				low = c
			}
			if c > high {
				high = c
			}
		}
	}
	return low, high
}
