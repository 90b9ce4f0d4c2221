package chart

import (
	"context"
	"fmt"

	"github.com/deckstats/deckstats/internal/theme"
)

// TargetCardsScatter is the cards page region.
const TargetCardsScatter = "cards-scatter"

// CardProvider supplies per-card usage and win rates. The returned dataset
// carries card names as labels, usage rate as series 0 and win rate as
// series 1.
type CardProvider interface {
	CardPerformance(ctx context.Context) (Dataset, error)
}

// ScatterChart compares card usage against card win rate.
type ScatterChart struct {
	Data CardProvider
}

// Build implements Builder.
func (c ScatterChart) Build(ctx context.Context, th theme.Theme) (Figure, error) {
	provider := c.Data
	if provider == nil {
		provider = DemoData{}
	}
	ds, err := provider.CardPerformance(ctx)
	if err != nil {
		return Figure{}, fmt.Errorf("load cards: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Figure{}, err
	}
	if len(ds.Series) < 2 {
		return Figure{}, fmt.Errorf("%w: scatter needs usage and win rate series", ErrInvalidDataset)
	}
	color := AccentToken.Resolve(th)

	layout := baseLayout()
	layout.XAxis.Title = &AxisTitle{Text: ds.Series[0].Name}
	layout.XAxis.TickSuffix = "%"
	layout.YAxis.Title = &AxisTitle{Text: ds.Series[1].Name}
	layout.YAxis.TickSuffix = "%"
	layout.HoverMode = "closest"

	trace := Trace{
		Type:          "scatter",
		Mode:          "markers",
		X:             ds.Series[0].Values,
		Y:             ds.Series[1].Values,
		Text:          ds.Labels,
		HoverTemplate: "%{text}<br>usage %{x:.1f}%<br>win %{y:.1f}%<extra></extra>",
		Marker: &Marker{
			Color:   color,
			Size:    12,
			Opacity: 0.85,
			Line:    &LineStyle{Color: transparent, Width: 0},
		},
	}
	return Figure{Data: []Trace{trace}, Layout: layout, Config: DisplayOptions()}, nil
}

// NewScatterInitializer wires the cards chart. A nil provider uses DemoData.
func NewScatterInitializer(data CardProvider) Initializer {
	return Initializer{Name: "scatter", Target: TargetCardsScatter, Builder: ScatterChart{Data: data}}
}
