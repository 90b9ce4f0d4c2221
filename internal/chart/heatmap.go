package chart

import (
	"context"
	"fmt"

	"github.com/deckstats/deckstats/internal/theme"
)

// TargetArchetypeHeatmap is the archetypes page region.
const TargetArchetypeHeatmap = "archetype-heatmap"

// BackgroundToken is the low end of the heatmap colorscale.
var BackgroundToken = theme.Token{Name: theme.VarPurpleBG, Fallback: "#1e1b4b"}

// MatchupProvider supplies the archetype-vs-archetype win-rate matrix.
// Rows are the played archetype, columns the opponent archetype.
type MatchupProvider interface {
	ArchetypeMatchups(ctx context.Context) (Matrix, error)
}

// HeatmapChart draws the matchup matrix.
type HeatmapChart struct {
	Data MatchupProvider
}

// Build implements Builder.
func (c HeatmapChart) Build(ctx context.Context, th theme.Theme) (Figure, error) {
	provider := c.Data
	if provider == nil {
		provider = DemoData{}
	}
	m, err := provider.ArchetypeMatchups(ctx)
	if err != nil {
		return Figure{}, fmt.Errorf("load matchups: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Figure{}, err
	}
	low := BackgroundToken.Resolve(th)
	high := AccentToken.Resolve(th)

	layout := baseLayout()
	layout.XAxis.ShowGrid = false
	layout.YAxis.ShowGrid = false
	layout.YAxis.AutoRange = "reversed"
	layout.Margin = Margin{L: 96, R: 16, T: 16, B: 64}

	trace := Trace{
		Type:          "heatmap",
		X:             m.Cols,
		Y:             m.Rows,
		Z:             m.Values,
		ColorScale:    []ScaleStop{{0, low}, {1, high}},
		ZMin:          floatPtr(0),
		ZMax:          floatPtr(100),
		ShowScale:     boolPtr(false),
		HoverTemplate: "%{y} vs %{x}: %{z:.1f}%<extra></extra>",
	}
	return Figure{Data: []Trace{trace}, Layout: layout, Config: DisplayOptions()}, nil
}

// NewHeatmapInitializer wires the archetypes chart. A nil provider uses DemoData.
func NewHeatmapInitializer(data MatchupProvider) Initializer {
	return Initializer{Name: "heatmap", Target: TargetArchetypeHeatmap, Builder: HeatmapChart{Data: data}}
}
