package svg

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/deckstats/deckstats/internal/chart"
)

func TestLineProducesSVG(t *testing.T) {
	html, err := Line(400, 200, []float64{51.2, 52.8, 50.4}, []string{"Mon", "Tue", "Wed"}, LineOpts{
		Title:       "Win rate",
		Description: "Daily win rate",
		ShowDots:    true,
		Suffix:      "%",
	})
	if err != nil {
		t.Fatalf("line renderer error: %v", err)
	}
	output := string(html)
	if !strings.HasPrefix(output, "<svg") {
		t.Fatalf("expected svg output, got %s", output)
	}
	if !strings.Contains(output, "<path") {
		t.Fatalf("expected path element in svg")
	}
	if strings.Count(output, "<circle") != 3 {
		t.Fatalf("expected one dot per point")
	}
	if !strings.Contains(output, `aria-labelledby="win-rate-line-title win-rate-line-desc"`) {
		t.Fatalf("expected accessibility attributes, got %s", output)
	}
}

func TestLineRejectsMismatchedLabels(t *testing.T) {
	if _, err := Line(400, 200, []float64{1, 2}, []string{"a"}, LineOpts{}); err == nil {
		t.Fatalf("expected error for mismatched labels")
	}
	if _, err := Line(400, 200, nil, nil, LineOpts{}); err == nil {
		t.Fatalf("expected error for empty series")
	}
}

func TestBarsProducesSVG(t *testing.T) {
	html, err := Bars(420, 220, []float64{12, 19, 7, 5}, []string{"Cycle", "Beatdown", "Control", "Siege"}, BarOpts{Title: "Deck types"})
	if err != nil {
		t.Fatalf("bars renderer error: %v", err)
	}
	output := string(html)
	if strings.Count(output, "<rect") != 4 {
		t.Fatalf("expected four bars, got %s", output)
	}
	if !strings.Contains(output, `fill="#6366f1"`) {
		t.Fatalf("expected default bar color")
	}
}

func TestScatterProducesSVG(t *testing.T) {
	html, err := Scatter(400, 300, []float64{24.1, 31.5}, []float64{52.3, 50.8}, []string{"Hog Rider", "Fireball"}, ScatterOpts{PointColor: "#34d399"})
	if err != nil {
		t.Fatalf("scatter renderer error: %v", err)
	}
	output := string(html)
	if strings.Count(output, "<circle") != 2 {
		t.Fatalf("expected two points")
	}
	if !strings.Contains(output, "<title>Hog Rider</title>") {
		t.Fatalf("expected point label")
	}
	if !strings.Contains(output, `fill="#34d399"`) {
		t.Fatalf("expected point color")
	}
}

func TestHeatmapColorsCells(t *testing.T) {
	cells := [][]float64{{0, 100}, {50, 50}}
	html, err := Heatmap(400, 300, cells, []string{"Beatdown", "Control"}, []string{"Beatdown", "Control"}, HeatmapOpts{
		LowColor:  "#000000",
		HighColor: "#ffffff",
		Min:       0,
		Max:       100,
	})
	if err != nil {
		t.Fatalf("heatmap renderer error: %v", err)
	}
	output := string(html)
	if strings.Count(output, "<rect") != 4 {
		t.Fatalf("expected four cells")
	}
	for _, want := range []string{`fill="#000000"`, `fill="#ffffff"`, `fill="#808080"`} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %s in %s", want, output)
		}
	}
	if !strings.Contains(output, "Beatdown vs Control: 100%") {
		t.Fatalf("expected cell tooltip")
	}
}

func TestHeatmapRejectsRaggedCells(t *testing.T) {
	_, err := Heatmap(400, 300, [][]float64{{1, 2}, {3}}, []string{"a", "b"}, []string{"a", "b"}, HeatmapOpts{})
	if err == nil {
		t.Fatalf("expected error for ragged cells")
	}
}

func TestMixFallsBackForNonHex(t *testing.T) {
	if got := mix("rgb(0,0,0)", "#ffffff", 0.2); got != "rgb(0,0,0)" {
		t.Fatalf("unexpected mix result %s", got)
	}
	if got := mix("#000", "#fff", 0.5); got != "#808080" {
		t.Fatalf("expected short hex support, got %s", got)
	}
}

func TestFormatValueGroupsThousands(t *testing.T) {
	if got := FormatValue(1234, ""); got != "1,234" {
		t.Fatalf("unexpected format %s", got)
	}
	if got := FormatValue(52.84, "%"); got != "52.8%" {
		t.Fatalf("unexpected format %s", got)
	}
}

func TestFromFigureHandlesEveryChart(t *testing.T) {
	ctx := context.Background()
	builders := map[string]chart.Builder{
		"line":    chart.LineChart{},
		"scatter": chart.ScatterChart{},
		"heatmap": chart.HeatmapChart{},
		"bar":     chart.BarChart{},
	}
	for name, b := range builders {
		fig, err := b.Build(ctx, nil)
		if err != nil {
			t.Fatalf("%s build error: %v", name, err)
		}
		html, err := FromFigure(fig, 0, 0, name)
		if err != nil {
			t.Fatalf("%s export error: %v", name, err)
		}
		if !strings.HasPrefix(string(html), "<svg") {
			t.Fatalf("%s: expected svg output", name)
		}
	}
}

func TestFromFigureRejectsUnknownTrace(t *testing.T) {
	_, err := FromFigure(chart.Figure{Data: []chart.Trace{{Type: "pie"}}}, 0, 0, "")
	if !errors.Is(err, ErrUnsupportedTrace) {
		t.Fatalf("expected ErrUnsupportedTrace, got %v", err)
	}
}
