package chart

import (
	"context"
	"fmt"

	"github.com/deckstats/deckstats/internal/theme"
)

// TargetOverview is the home page region holding the win-rate trend.
const TargetOverview = "overview-chart"

// AccentToken is the emerald accent shared by the line and scatter charts.
var AccentToken = theme.Token{Name: theme.VarEmerald, Fallback: "#10b981"}

// TrendProvider supplies the time series shown on the overview chart.
type TrendProvider interface {
	WinRateTrend(ctx context.Context) (Dataset, error)
}

// LineChart draws a line+marker time series of win rates.
type LineChart struct {
	Data TrendProvider
}

// Build implements Builder.
func (c LineChart) Build(ctx context.Context, th theme.Theme) (Figure, error) {
	provider := c.Data
	if provider == nil {
		provider = DemoData{}
	}
	ds, err := provider.WinRateTrend(ctx)
	if err != nil {
		return Figure{}, fmt.Errorf("load trend: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Figure{}, err
	}
	color := AccentToken.Resolve(th)

	layout := baseLayout()
	layout.YAxis.TickSuffix = "%"
	layout.HoverMode = "x"

	trace := Trace{
		Type:          "scatter",
		Mode:          "lines+markers",
		Name:          ds.Series[0].Name,
		X:             ds.Labels,
		Y:             ds.Series[0].Values,
		HoverTemplate: "%{x}: %{y:.1f}%<extra></extra>",
		Line:          &LineStyle{Color: color, Width: 3, Shape: "spline"},
		Marker:        &Marker{Color: color, Size: 8},
	}
	return Figure{Data: []Trace{trace}, Layout: layout, Config: DisplayOptions()}, nil
}

// NewLineInitializer wires the overview chart. A nil provider uses DemoData.
func NewLineInitializer(data TrendProvider) Initializer {
	return Initializer{Name: "line", Target: TargetOverview, Builder: LineChart{Data: data}}
}
