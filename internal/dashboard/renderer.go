package dashboard

import (
	"fmt"
	"sync/atomic"

	"github.com/deckstats/deckstats/internal/chart"
)

// PlotlyRenderer binds figures to document regions. The browser replays the
// binding with Plotly.newPlot using the serialised figure.
type PlotlyRenderer struct {
	plots   atomic.Int64
	resizes atomic.Int64
}

// NewPlot implements chart.Renderer.
func (p *PlotlyRenderer) NewPlot(target chart.Region, fig chart.Figure) error {
	region, ok := target.(*Region)
	if !ok {
		return fmt.Errorf("dashboard: region %q is not a document region", target.ID())
	}
	region.bind(fig)
	p.plots.Add(1)
	return nil
}

// Resize implements chart.Renderer.
func (p *PlotlyRenderer) Resize(target chart.Region) error {
	region, ok := target.(*Region)
	if !ok {
		return fmt.Errorf("dashboard: region %q is not a document region", target.ID())
	}
	if _, bound := region.Figure(); !bound {
		return fmt.Errorf("dashboard: region %q has no figure", region.ID())
	}
	region.resized()
	p.resizes.Add(1)
	return nil
}

// Plots reports how many figures were bound.
func (p *PlotlyRenderer) Plots() int64 { return p.plots.Load() }

// Resizes reports how many relayouts were performed.
func (p *PlotlyRenderer) Resizes() int64 { return p.resizes.Load() }
