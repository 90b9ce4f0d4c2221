package page

import (
	"context"
	"errors"

	"github.com/deckstats/deckstats/internal/chart"
)

// Initializer is the part of chart.Initializer the dispatcher relies on.
type Initializer interface {
	Init(ctx context.Context, env chart.Env) (*chart.Handle, error)
}

// Root is the document root as seen by the dispatcher.
type Root interface {
	Attr(name string) (string, bool)
}

// Result reports what a dispatch did.
type Result struct {
	Kind       Kind
	Dispatched bool
	Handle     *chart.Handle
}

// Dispatcher invokes exactly one initializer per known page.
type Dispatcher struct {
	handlers map[Kind]Initializer
}

// NewDispatcher returns a dispatcher with no handlers registered.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Kind]Initializer)}
}

// DefaultDispatcher wires the three dashboard charts. Nil providers fall
// back to the demonstration data.
func DefaultDispatcher(data Providers) *Dispatcher {
	d := NewDispatcher()
	d.Handle(Home, chart.NewLineInitializer(data.Trend))
	d.Handle(Cards, chart.NewScatterInitializer(data.Cards))
	d.Handle(Archetypes, chart.NewHeatmapInitializer(data.Matchups))
	return d
}

// Providers groups the per-chart data providers.
type Providers struct {
	Trend    chart.TrendProvider
	Cards    chart.CardProvider
	Matchups chart.MatchupProvider
}

// Handle registers the initializer for kind. Unknown is ignored.
func (d *Dispatcher) Handle(kind Kind, in Initializer) {
	if kind == Unknown || in == nil {
		return
	}
	d.handlers[kind] = in
}

// Initializer returns the initializer registered for kind.
func (d *Dispatcher) Initializer(kind Kind) (Initializer, bool) {
	in, ok := d.handlers[kind]
	return in, ok
}

// DispatchRoot reads the page attribute from root and dispatches it.
func (d *Dispatcher) DispatchRoot(ctx context.Context, root Root, env chart.Env) (Result, error) {
	id := ""
	if root != nil {
		if value, ok := root.Attr(Attribute); ok {
			id = value
		}
	}
	return d.Dispatch(ctx, id, env)
}

// Dispatch runs the initializer for id. An unknown id is not an error: the
// result simply reports Dispatched=false.
func (d *Dispatcher) Dispatch(ctx context.Context, id string, env chart.Env) (Result, error) {
	kind, err := Parse(id)
	if errors.Is(err, ErrUnknownPage) {
		return Result{Kind: Unknown}, nil
	}
	in, ok := d.handlers[kind]
	if !ok {
		return Result{Kind: kind}, nil
	}
	handle, err := in.Init(ctx, env)
	if err != nil {
		return Result{Kind: kind}, err
	}
	return Result{Kind: kind, Dispatched: true, Handle: handle}, nil
}
