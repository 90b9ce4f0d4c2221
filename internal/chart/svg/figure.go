package svg

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/deckstats/deckstats/internal/chart"
)

// ErrUnsupportedTrace is returned when a figure holds a trace FromFigure cannot draw.
var ErrUnsupportedTrace = errors.New("svg: unsupported trace")

// FromFigure draws the first trace of a dashboard figure as a static SVG.
// Colors are read from the trace so exports follow the active theme.
func FromFigure(fig chart.Figure, width, height int, title string) (template.HTML, error) {
	if len(fig.Data) == 0 {
		return "", fmt.Errorf("svg: figure has no traces")
	}
	tr := fig.Data[0]
	switch {
	case tr.Type == "heatmap":
		low, high := scaleEnds(tr.ColorScale)
		opts := HeatmapOpts{Title: title, LowColor: low, HighColor: high}
		if tr.ZMin != nil && tr.ZMax != nil {
			opts.Min, opts.Max = *tr.ZMin, *tr.ZMax
		}
		return Heatmap(width, height, tr.Z, toStrings(tr.Y), toStrings(tr.X), opts)
	case tr.Type == "bar":
		return Bars(width, height, toFloats(tr.Y), toStrings(tr.X), BarOpts{Title: title, Color: markerColor(tr)})
	case tr.Type == "scatter" && tr.Mode == "markers":
		return Scatter(width, height, toFloats(tr.X), toFloats(tr.Y), tr.Text, ScatterOpts{
			Title:      title,
			PointColor: markerColor(tr),
			Suffix:     fig.Layout.YAxis.TickSuffix,
		})
	case tr.Type == "scatter":
		stroke := ""
		if tr.Line != nil {
			stroke = tr.Line.Color
		}
		return Line(width, height, toFloats(tr.Y), toStrings(tr.X), LineOpts{
			Title:       title,
			StrokeColor: stroke,
			ShowDots:    tr.Mode == "lines+markers",
			Suffix:      fig.Layout.YAxis.TickSuffix,
		})
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedTrace, tr.Type)
}

func markerColor(tr chart.Trace) string {
	if tr.Marker == nil {
		return ""
	}
	if s, ok := tr.Marker.Color.(string); ok {
		return s
	}
	return ""
}

func scaleEnds(stops []chart.ScaleStop) (string, string) {
	if len(stops) == 0 {
		return "", ""
	}
	low, _ := stops[0][1].(string)
	high, _ := stops[len(stops)-1][1].(string)
	return low, high
}

func toStrings(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []float64:
		out := make([]string, len(vals))
		for i, f := range vals {
			out[i] = FormatValue(f, "")
		}
		return out
	}
	return nil
}

func toFloats(v any) []float64 {
	if vals, ok := v.([]float64); ok {
		return vals
	}
	return nil
}
