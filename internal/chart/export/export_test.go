package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/deckstats/deckstats/internal/chart"
)

func readCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("csv read error: %v", err)
	}
	return records
}

func TestWriteFigureCSVLine(t *testing.T) {
	fig, err := chart.LineChart{}.Build(context.Background(), nil)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	buf := &bytes.Buffer{}
	if err := WriteFigureCSV(buf, fig); err != nil {
		t.Fatalf("line csv error: %v", err)
	}
	records := readCSV(t, buf)
	if len(records) != 8 {
		t.Fatalf("expected header plus 7 days, got %d", len(records))
	}
	if records[0][1] != "Win rate" || records[1][0] != "Mon" || records[1][1] != "51.2" {
		t.Fatalf("unexpected rows %v", records[:2])
	}
}

func TestWriteFigureCSVScatter(t *testing.T) {
	fig, err := chart.ScatterChart{}.Build(context.Background(), nil)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	buf := &bytes.Buffer{}
	if err := WriteFigureCSV(buf, fig); err != nil {
		t.Fatalf("scatter csv error: %v", err)
	}
	records := readCSV(t, buf)
	if got := records[0]; got[0] != "Label" || got[1] != "Usage rate" || got[2] != "Win rate" {
		t.Fatalf("unexpected header %v", got)
	}
	if records[1][0] != "Hog Rider" {
		t.Fatalf("unexpected first card %v", records[1])
	}
}

func TestWriteFigureCSVHeatmap(t *testing.T) {
	fig, err := chart.HeatmapChart{}.Build(context.Background(), nil)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	buf := &bytes.Buffer{}
	if err := WriteFigureCSV(buf, fig); err != nil {
		t.Fatalf("heatmap csv error: %v", err)
	}
	records := readCSV(t, buf)
	if len(records) != 6 || len(records[0]) != 6 {
		t.Fatalf("expected 6x6 grid including labels, got %dx%d", len(records), len(records[0]))
	}
	if records[1][0] != "Beatdown" || records[1][1] != "50" {
		t.Fatalf("unexpected diagonal %v", records[1])
	}
}

func TestWriteFigureCSVEmpty(t *testing.T) {
	if err := WriteFigureCSV(&bytes.Buffer{}, chart.Figure{}); err == nil {
		t.Fatalf("expected error for empty figure")
	}
}
