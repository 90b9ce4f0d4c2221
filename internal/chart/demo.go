package chart

import "context"

// Archetypes is the deck archetype order used on both heatmap axes.
var Archetypes = []string{"Beatdown", "Control", "Cycle", "Siege", "Bridge Spam"}

// DemoData serves the placeholder numbers shown until real statistics are
// wired in. Every call returns freshly allocated slices.
type DemoData struct{}

var (
	_ TrendProvider    = DemoData{}
	_ CardProvider     = DemoData{}
	_ MatchupProvider  = DemoData{}
	_ CategoryProvider = DemoData{}
)

// WinRateTrend returns one week of daily win rates.
func (DemoData) WinRateTrend(context.Context) (Dataset, error) {
	return Dataset{
		Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Series: []Series{{
			Name:   "Win rate",
			Values: []float64{51.2, 52.8, 50.4, 53.1, 54.6, 52.9, 55.3},
		}},
	}, nil
}

// CardPerformance returns usage and win rates for a handful of cards.
func (DemoData) CardPerformance(context.Context) (Dataset, error) {
	return Dataset{
		Labels: []string{"Hog Rider", "Fireball", "The Log", "Musketeer", "Mega Knight", "Golem", "X-Bow", "Balloon"},
		Series: []Series{
			{Name: "Usage rate", Values: []float64{24.1, 31.5, 38.2, 18.7, 21.3, 8.4, 4.2, 12.6}},
			{Name: "Win rate", Values: []float64{52.3, 50.8, 51.4, 49.6, 48.9, 53.7, 55.1, 51.9}},
		},
	}, nil
}

// ArchetypeMatchups returns a 5x5 matchup matrix over Archetypes.
func (DemoData) ArchetypeMatchups(context.Context) (Matrix, error) {
	labels := append([]string(nil), Archetypes...)
	return Matrix{
		Rows: labels,
		Cols: append([]string(nil), labels...),
		Values: [][]float64{
			{50.0, 56.2, 44.8, 58.1, 47.5},
			{43.8, 50.0, 53.6, 49.2, 55.0},
			{55.2, 46.4, 50.0, 52.7, 51.3},
			{41.9, 50.8, 47.3, 50.0, 45.6},
			{52.5, 45.0, 48.7, 54.4, 50.0},
		},
	}, nil
}

// DeckTypeGames returns games played per deck type for the legacy bar chart.
func (DemoData) DeckTypeGames(context.Context) (Dataset, error) {
	return Dataset{
		Labels: []string{"Cycle", "Beatdown", "Control", "Siege"},
		Series: []Series{{Name: "Games", Values: []float64{12, 19, 7, 5}}},
	}, nil
}
