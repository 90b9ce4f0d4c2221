package dashboard

import "context"

// Summary is the headline panel shown beside the overview chart.
type Summary struct {
	Matches     int    `json:"matches"`
	Decks       int    `json:"decks"`
	LastUpdated string `json:"last_updated"`
}

// SummaryProvider supplies the home page summary.
type SummaryProvider interface {
	Summary(ctx context.Context) (Summary, error)
}

// PlaceholderSummary reports an empty dataset until match history is wired in.
type PlaceholderSummary struct{}

// Summary implements SummaryProvider.
func (PlaceholderSummary) Summary(context.Context) (Summary, error) {
	return Summary{LastUpdated: "Not loaded yet"}, nil
}
