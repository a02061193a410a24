package ecoscore

import (
	"testing"

	"github.com/julianstephens/ecolog/internal/models"
)

func TestScoreLabelAndBand(t *testing.T) {
	tests := []struct {
		score     float64
		wantLabel string
		wantBand  Band
	}{
		{-20, "Needs Work", BandLow},
		{25, "Needs Work", BandLow},
		{26, "Okay", BandMid},
		{50, "Okay", BandMid},
		{51, "Great", BandHigh},
	}
	for _, tt := range tests {
		if got := ScoreLabel(tt.score); got != tt.wantLabel {
			t.Errorf("ScoreLabel(%v) = %s, want %s", tt.score, got, tt.wantLabel)
		}
		if got := ScoreBand(tt.score); got != tt.wantBand {
			t.Errorf("ScoreBand(%v) = %s, want %s", tt.score, got, tt.wantBand)
		}
	}
}

func TestRingFill(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {40, 40}, {-40, 40}, {150, 100}, {-150, 100},
	}
	for _, tt := range tests {
		if got := RingFill(tt.in); got != tt.want {
			t.Errorf("RingFill(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScoreChange(t *testing.T) {
	meta := models.StreakMeta{PrevScore: 30}
	if got := FormatSigned(ScoreChange(20, meta)); got != "-10" {
		t.Errorf("change = %s, want -10", got)
	}
	if got := FormatSigned(ScoreChange(30, meta)); got != "+0" {
		t.Errorf("change = %s, want +0", got)
	}
	if got := FormatSigned(ScoreChange(32.5, meta)); got != "+2.5" {
		t.Errorf("change = %s, want +2.5", got)
	}
}

func TestHighlights(t *testing.T) {
	actions := []models.Action{
		action("small", models.CategoryWaste, 5),
		action("bad", models.CategoryEnergy, -10),
		action("big", models.CategoryTransport, 20),
		action("worse", models.CategoryFood, -15),
		action("mid", models.CategoryFood, 10),
		action("zero", models.CategoryFood, 0),
	}

	got := Highlights(actions)
	want := []string{"big", "mid", "worse"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("Highlights[%d] = %s, want %s", i, got[i].Name, want[i])
		}
	}

	if len(Highlights(nil)) != 0 {
		t.Error("expected no highlights for no actions")
	}
}

func TestChartScaleAndBarLength(t *testing.T) {
	if got := ChartScale(nil); got != 1 {
		t.Errorf("ChartScale(nil) = %v, want 1", got)
	}

	scores := []models.DayScore{{Score: 10}, {Score: -40}, {Score: 20}}
	scale := ChartScale(scores)
	if scale != 40 {
		t.Fatalf("ChartScale = %v, want 40", scale)
	}

	tests := []struct {
		score float64
		width int
		want  int
	}{
		{-40, 20, 20},
		{20, 20, 10},
		{10, 20, 5},
		{0, 20, 0},
		{10, 0, 0},
		{80, 20, 20},
	}
	for _, tt := range tests {
		if got := BarLength(tt.score, scale, tt.width); got != tt.want {
			t.Errorf("BarLength(%v, %v, %d) = %d, want %d", tt.score, scale, tt.width, got, tt.want)
		}
	}
}
