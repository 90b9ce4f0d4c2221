package page

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckstats/deckstats/internal/chart"
)

type countingInitializer struct {
	name  string
	calls *[]string
	err   error
}

func (c countingInitializer) Init(context.Context, chart.Env) (*chart.Handle, error) {
	*c.calls = append(*c.calls, c.name)
	if c.err != nil {
		return nil, c.err
	}
	return &chart.Handle{Chart: c.name, Outcome: chart.OutcomeRendered}, nil
}

type attrRoot map[string]string

func (r attrRoot) Attr(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

func newCountingDispatcher(calls *[]string) *Dispatcher {
	d := NewDispatcher()
	d.Handle(Home, countingInitializer{name: "line", calls: calls})
	d.Handle(Cards, countingInitializer{name: "scatter", calls: calls})
	d.Handle(Archetypes, countingInitializer{name: "heatmap", calls: calls})
	return d
}

func TestDispatchInvokesExactlyOneInitializer(t *testing.T) {
	cases := map[string]string{
		"home":       "line",
		"cards":      "scatter",
		"archetypes": "heatmap",
	}
	for id, want := range cases {
		t.Run(id, func(t *testing.T) {
			var calls []string
			d := newCountingDispatcher(&calls)
			res, err := d.Dispatch(context.Background(), id, chart.Env{})
			require.NoError(t, err)
			assert.True(t, res.Dispatched)
			assert.Equal(t, id, res.Kind.String())
			assert.Equal(t, []string{want}, calls)
		})
	}
}

func TestDispatchUnknownIsNoop(t *testing.T) {
	for _, id := range []string{"unknown", "Home", " cards", "archetype"} {
		var calls []string
		d := newCountingDispatcher(&calls)
		res, err := d.Dispatch(context.Background(), id, chart.Env{})
		require.NoError(t, err)
		assert.False(t, res.Dispatched, id)
		assert.Equal(t, Unknown, res.Kind, id)
		assert.Empty(t, calls, id)
	}
}

func TestDispatchRootDefaultsToHome(t *testing.T) {
	var calls []string
	d := newCountingDispatcher(&calls)

	res, err := d.DispatchRoot(context.Background(), attrRoot{}, chart.Env{})
	require.NoError(t, err)
	assert.Equal(t, Home, res.Kind)

	_, err = d.DispatchRoot(context.Background(), nil, chart.Env{})
	require.NoError(t, err)

	_, err = d.DispatchRoot(context.Background(), attrRoot{Attribute: "cards"}, chart.Env{})
	require.NoError(t, err)
	assert.Equal(t, []string{"line", "line", "scatter"}, calls)
}

func TestDispatchSurfacesInitializerFailure(t *testing.T) {
	var calls []string
	d := NewDispatcher()
	d.Handle(Home, countingInitializer{name: "line", calls: &calls, err: errors.New("render failed")})
	res, err := d.Dispatch(context.Background(), "home", chart.Env{})
	assert.Error(t, err)
	assert.False(t, res.Dispatched)
}

func TestParse(t *testing.T) {
	kind, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Home, kind)

	_, err = Parse("settings")
	assert.True(t, errors.Is(err, ErrUnknownPage))
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, []Kind{Home, Cards, Archetypes}, Kinds())
}

func TestDefaultDispatcherTargets(t *testing.T) {
	d := DefaultDispatcher(Providers{})
	want := map[Kind]string{
		Home:       chart.TargetOverview,
		Cards:      chart.TargetCardsScatter,
		Archetypes: chart.TargetArchetypeHeatmap,
	}
	for kind, target := range want {
		in, ok := d.Initializer(kind)
		require.True(t, ok)
		assert.Equal(t, target, in.(chart.Initializer).Target)
	}
	_, ok := d.Initializer(Unknown)
	assert.False(t, ok)
}
