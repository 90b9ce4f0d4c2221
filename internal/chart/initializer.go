package chart

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/deckstats/deckstats/internal/theme"
)

// Outcome records what an initializer did with its target.
type Outcome string

const (
	// OutcomeRendered means the figure was handed to the renderer.
	OutcomeRendered Outcome = "rendered"
	// OutcomeMissingTarget means the document had no region for the chart.
	OutcomeMissingTarget Outcome = "missing_target"
	// OutcomeFallback means the renderer was unavailable and the region got NotLoadedText.
	OutcomeFallback Outcome = "fallback"
)

// Builder assembles the figure of one chart under the given theme.
type Builder interface {
	Build(ctx context.Context, th theme.Theme) (Figure, error)
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func(ctx context.Context, th theme.Theme) (Figure, error)

// Build calls f.
func (f BuilderFunc) Build(ctx context.Context, th theme.Theme) (Figure, error) {
	return f(ctx, th)
}

// Env is everything an initializer touches while running.
// A nil Renderer means the charting capability is not loaded.
type Env struct {
	Document Document
	Renderer Renderer
	Viewport Viewport
	Theme    theme.Theme
	// ResizeFailed, when set, receives relayout errors raised by the
	// resize listener.
	ResizeFailed func(target string, err error)
}

// Initializer configures and triggers the rendering of one chart.
type Initializer struct {
	Name    string
	Target  string
	Builder Builder
}

// Init runs the chart against env. A missing target or renderer is not an
// error; the returned handle reports which branch was taken.
func (in Initializer) Init(ctx context.Context, env Env) (*Handle, error) {
	handle := &Handle{ID: HandleID(in.Target), Chart: in.Name, Target: in.Target}
	if env.Document == nil {
		handle.Outcome = OutcomeMissingTarget
		return handle, nil
	}
	region, ok := env.Document.Region(in.Target)
	if !ok || region == nil {
		handle.Outcome = OutcomeMissingTarget
		return handle, nil
	}
	if env.Renderer == nil {
		region.SetText(NotLoadedText)
		handle.Outcome = OutcomeFallback
		return handle, nil
	}
	if in.Builder == nil {
		return nil, fmt.Errorf("chart: %s: builder not configured", in.Name)
	}
	fig, err := in.Builder.Build(ctx, env.Theme)
	if err != nil {
		return nil, fmt.Errorf("chart: build %s: %w", in.Name, err)
	}
	if err := env.Renderer.NewPlot(region, fig); err != nil {
		return nil, fmt.Errorf("chart: plot %s: %w", in.Name, err)
	}
	handle.Outcome = OutcomeRendered
	handle.Figure = fig
	if env.Viewport != nil {
		renderer, failed := env.Renderer, env.ResizeFailed
		handle.release = env.Viewport.OnResize(func() {
			if err := renderer.Resize(region); err != nil && failed != nil {
				failed(in.Target, err)
			}
		})
		if tracker, ok := region.(ResizeTracker); ok {
			tracker.TrackResize(handle.release)
		}
	}
	return handle, nil
}

// Handle is the binding of one chart to its render target. It owns the
// resize subscription registered by Init.
type Handle struct {
	ID      uuid.UUID
	Chart   string
	Target  string
	Outcome Outcome
	Figure  Figure

	once    sync.Once
	release func()
}

// Close releases the resize listener. Safe to call more than once and on nil.
func (h *Handle) Close() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		if h.release != nil {
			h.release()
		}
	})
}

// HandleID derives a stable identifier for a render target.
func HandleID(target string) uuid.UUID {
	return uuid.NewSHA1(uuid.Nil, []byte("chart:"+target))
}
