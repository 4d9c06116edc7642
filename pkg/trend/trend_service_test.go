package trend

import (
	"context"
	"math"
	"testing"

	"github.com/TimSparing/Food-Tracker/domain"
	"github.com/TimSparing/Food-Tracker/pkg/diary"
)

type fakeDiary struct {
	days      []domain.DayResponse
	summaries map[string]domain.DaySummary
}

var _ diary.DiaryService = (*fakeDiary)(nil)

func (f *fakeDiary) ListDays(context.Context) ([]domain.DayResponse, error) {
	return f.days, nil
}

func (f *fakeDiary) AggregateDay(_ context.Context, date string) (domain.DaySummary, error) {
	summary, ok := f.summaries[date]
	if !ok {
		return domain.DaySummary{Date: date}, nil
	}
	return summary, nil
}

func (f *fakeDiary) UpsertWeight(context.Context, string, float64) error      { return nil }
func (f *fakeDiary) AppendFood(context.Context, string, string, float64) error { return nil }
func (f *fakeDiary) AppendExercise(context.Context, string, string, float64) error {
	return nil
}
func (f *fakeDiary) ReplaceDay(context.Context, string, domain.ReplaceDayRequest) error {
	return nil
}
func (f *fakeDiary) GetDay(context.Context, string) (domain.DayResponse, error) {
	return domain.DayResponse{}, nil
}

func fptr(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestBuildHistoryDeltas(t *testing.T) {
	fd := &fakeDiary{
		days: []domain.DayResponse{
			{Date: "2024-03-01", Weight: fptr(82.4)},
			{Date: "2024-03-02", Weight: fptr(81.6)},
		},
		summaries: map[string]domain.DaySummary{},
	}
	s := NewTrendService(fd, 75)

	rows, err := s.BuildHistory(context.Background())
	if err != nil {
		t.Fatalf("BuildHistory failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0].PriorDelta != nil {
		t.Errorf("first weighed day should have nil PriorDelta, got %v", *rows[0].PriorDelta)
	}
	if rows[0].GoalDelta == nil || !almostEqual(*rows[0].GoalDelta, 7.4) {
		t.Errorf("GoalDelta = %v, want 7.4", rows[0].GoalDelta)
	}
	if rows[1].PriorDelta == nil || !almostEqual(*rows[1].PriorDelta, -0.8) {
		t.Errorf("PriorDelta = %v, want -0.8", rows[1].PriorDelta)
	}
}

func TestBuildHistoryCarriesWeightAcrossGaps(t *testing.T) {
	fd := &fakeDiary{
		days: []domain.DayResponse{
			{Date: "2024-03-01", Weight: fptr(82.4)},
			{Date: "2024-03-02"},
			{Date: "2024-03-03", Weight: fptr(81.9)},
		},
		summaries: map[string]domain.DaySummary{},
	}
	s := NewTrendService(fd, 75)

	rows, err := s.BuildHistory(context.Background())
	if err != nil {
		t.Fatalf("BuildHistory failed: %v", err)
	}

	if rows[1].Weight != nil || rows[1].PriorDelta != nil || rows[1].GoalDelta != nil {
		t.Errorf("unweighed day should have nil weight columns, got %+v", rows[1])
	}
	// The delta on day 3 compares against day 1, not the unweighed day 2.
	if rows[2].PriorDelta == nil || !almostEqual(*rows[2].PriorDelta, -0.5) {
		t.Errorf("PriorDelta = %v, want -0.5", rows[2].PriorDelta)
	}
}

func TestBuildHistoryProteinFlag(t *testing.T) {
	fd := &fakeDiary{
		days: []domain.DayResponse{
			{Date: "2024-03-01", Weight: fptr(80)},
			{Date: "2024-03-02", Weight: fptr(80)},
			{Date: "2024-03-03"},
		},
		summaries: map[string]domain.DaySummary{
			"2024-03-01": {Date: "2024-03-01", Protein: 63},
			"2024-03-02": {Date: "2024-03-02", Protein: 65},
			"2024-03-03": {Date: "2024-03-03", Protein: 0},
		},
	}
	s := NewTrendService(fd, 75)

	rows, err := s.BuildHistory(context.Background())
	if err != nil {
		t.Fatalf("BuildHistory failed: %v", err)
	}

	// Floor at 80kg is 64g of protein.
	if !rows[0].ProteinLow {
		t.Error("63g at 80kg should be flagged")
	}
	if rows[1].ProteinLow {
		t.Error("65g at 80kg should not be flagged")
	}
	if rows[2].ProteinLow {
		t.Error("unweighed day should never be flagged")
	}
}

func TestComputeNormalization(t *testing.T) {
	n := ComputeNormalization(
		[]*float64{fptr(80), nil, fptr(82)},
		[]float64{1800, 2050},
		[]float64{300, 450},
	)
	if n.MaxWeight != 82 {
		t.Errorf("MaxWeight = %v, want 82", n.MaxWeight)
	}
	if n.MaxCalories != 2050 {
		t.Errorf("MaxCalories = %v, want 2050", n.MaxCalories)
	}
	if !almostEqual(n.Factor, 82.0/2050) {
		t.Errorf("Factor = %v, want %v", n.Factor, 82.0/2050)
	}
}

func TestComputeNormalizationNoCalories(t *testing.T) {
	n := ComputeNormalization([]*float64{fptr(80)}, nil, nil)
	if n.Factor != 1 {
		t.Errorf("Factor = %v, want 1 when no calories recorded", n.Factor)
	}
}

func TestRightAxisTicks(t *testing.T) {
	ticks := RightAxisTicks(250, 1980, 0.04)
	if len(ticks) == 0 {
		t.Fatal("expected ticks")
	}

	if ticks[0].Label != "200" {
		t.Errorf("first label = %q, want 200", ticks[0].Label)
	}
	last := ticks[len(ticks)-1]
	if last.Label != "2000" {
		t.Errorf("last label = %q, want 2000", last.Label)
	}

	// A label's position divided by the factor recovers the true value:
	// 1800 kcal at factor 0.04 plots at 72.
	for _, tick := range ticks {
		if tick.Label == "1800" {
			if !almostEqual(tick.Position, 72) {
				t.Errorf("1800 plotted at %v, want 72", tick.Position)
			}
			return
		}
	}
	t.Error("no tick labeled 1800")
}

func TestRightAxisTicksDegenerateRange(t *testing.T) {
	if ticks := RightAxisTicks(500, 500, 0.04); ticks != nil {
		t.Errorf("equal bounds should yield no ticks, got %v", ticks)
	}
	if ticks := RightAxisTicks(100, 900, 0); ticks != nil {
		t.Errorf("zero factor should yield no ticks, got %v", ticks)
	}
}

func TestBuildChartAlignsSeries(t *testing.T) {
	fd := &fakeDiary{
		days: []domain.DayResponse{
			{Date: "2024-03-01", Weight: fptr(80)},
			{Date: "2024-03-02"},
		},
		summaries: map[string]domain.DaySummary{
			"2024-03-01": {Date: "2024-03-01", CaloriesIn: 2000, CaloriesOut: 500},
			"2024-03-02": {Date: "2024-03-02", CaloriesIn: 1600},
		},
	}
	s := NewTrendService(fd, 75)

	chart, err := s.BuildChart(context.Background())
	if err != nil {
		t.Fatalf("BuildChart failed: %v", err)
	}

	if len(chart.Dates) != 2 || len(chart.Weights) != 2 || len(chart.CaloriesIn) != 2 {
		t.Fatalf("series lengths differ: %d dates, %d weights, %d calories",
			len(chart.Dates), len(chart.Weights), len(chart.CaloriesIn))
	}
	if chart.Weights[1] != nil {
		t.Error("unweighed day should keep a nil slot")
	}

	wantFactor := 80.0 / 2000
	if !almostEqual(chart.Normalization.Factor, wantFactor) {
		t.Errorf("Factor = %v, want %v", chart.Normalization.Factor, wantFactor)
	}
	if !almostEqual(chart.NormalizedCaloriesIn[0], 80) {
		t.Errorf("normalized max calories = %v, want 80", chart.NormalizedCaloriesIn[0])
	}
	if !almostEqual(chart.YMax, 88) {
		t.Errorf("YMax = %v, want 88", chart.YMax)
	}
	if len(chart.Ticks) == 0 {
		t.Error("expected right-axis ticks")
	}
}
