package chart

import (
	"context"
	"fmt"

	"github.com/deckstats/deckstats/internal/theme"
)

// TargetDummy is the region of the legacy single-chart page.
const TargetDummy = "dummy-chart"

// legacyBarColor is fixed; the legacy page predates theming.
const legacyBarColor = "#6366f1"

// CategoryProvider supplies the category counts of the legacy bar chart.
type CategoryProvider interface {
	DeckTypeGames(ctx context.Context) (Dataset, error)
}

// BarChart is the legacy bar variant. It ignores the theme.
type BarChart struct {
	Data CategoryProvider
}

// Build implements Builder.
func (c BarChart) Build(ctx context.Context, _ theme.Theme) (Figure, error) {
	provider := c.Data
	if provider == nil {
		provider = DemoData{}
	}
	ds, err := provider.DeckTypeGames(ctx)
	if err != nil {
		return Figure{}, fmt.Errorf("load deck types: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Figure{}, err
	}
	trace := Trace{
		Type:   "bar",
		Name:   ds.Series[0].Name,
		X:      ds.Labels,
		Y:      ds.Series[0].Values,
		Marker: &Marker{Color: legacyBarColor},
	}
	return Figure{Data: []Trace{trace}, Layout: baseLayout(), Config: DisplayOptions()}, nil
}

// LegacyBar is the stand-alone entry point of the legacy page. It is not
// reachable through the page dispatcher.
func LegacyBar(data CategoryProvider) Initializer {
	return Initializer{Name: "bar", Target: TargetDummy, Builder: BarChart{Data: data}}
}
