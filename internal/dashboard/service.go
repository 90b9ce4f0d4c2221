package dashboard

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/deckstats/deckstats/internal/chart"
	"github.com/deckstats/deckstats/internal/page"
	"github.com/deckstats/deckstats/internal/theme"
)

// LegacyPage is the identifier of the stand-alone bar chart page.
const LegacyPage = "legacy"

// OutcomeResizeFailed is recorded when a relayout raised by a resize event
// fails.
const OutcomeResizeFailed = "resize_failed"

// RenderRecorder receives one observation per chart initialisation.
type RenderRecorder interface {
	ObserveChartRender(page, region, outcome string)
}

// Options configures a Service.
type Options struct {
	Themes    *theme.Registry
	Providers page.Providers
	Legacy    chart.CategoryProvider
	// PlotlySrc is the script URL of the charting library. Empty means the
	// capability is not loaded and charts degrade to NotLoadedText.
	PlotlySrc string
	Recorder  RenderRecorder
	// Summary feeds the home page panel. Nil uses PlaceholderSummary.
	Summary SummaryProvider
	Logger  *slog.Logger
}

// Service builds server-side page documents and runs the chart initializers
// against them.
type Service struct {
	themes     *theme.Registry
	dispatcher *page.Dispatcher
	legacy     chart.Initializer
	plotlySrc  string
	recorder   RenderRecorder
	summary    SummaryProvider
	logger     *slog.Logger
}

// NewService wires the dispatcher, the legacy entry point and the theme registry.
func NewService(opts Options) *Service {
	themes := opts.Themes
	if themes == nil {
		themes = theme.NewRegistry(theme.DefaultName)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	summary := opts.Summary
	if summary == nil {
		summary = PlaceholderSummary{}
	}
	return &Service{
		themes:     themes,
		dispatcher: page.DefaultDispatcher(opts.Providers),
		legacy:     chart.LegacyBar(opts.Legacy),
		plotlySrc:  opts.PlotlySrc,
		recorder:   opts.Recorder,
		summary:    summary,
		logger:     logger,
	}
}

// Themes exposes the registry used to resolve palettes.
func (s *Service) Themes() *theme.Registry { return s.themes }

// PlotlySrc returns the configured script URL.
func (s *Service) PlotlySrc() string { return s.plotlySrc }

// PageViewModel is everything a page template needs.
type PageViewModel struct {
	Page      string
	Kind      page.Kind
	Known     bool
	Theme     string
	ThemeCSS  template.CSS
	PlotlySrc string
	Regions   []RegionView
	Handles   []HandleView
	// Summary is set on the home page only.
	Summary *Summary
}

// HandleView summarises one chart initialisation.
type HandleView struct {
	ID      string
	Chart   string
	Target  string
	Outcome chart.Outcome
}

// RegionsFor lists the regions declared by the template of kind.
func RegionsFor(kind page.Kind) []string {
	switch kind {
	case page.Home:
		return []string{chart.TargetOverview}
	case page.Cards:
		return []string{chart.TargetCardsScatter}
	case page.Archetypes:
		return []string{chart.TargetArchetypeHeatmap}
	default:
		return nil
	}
}

// Render builds the page identified by pageID under themeName. An empty
// pageID selects the home page. An unknown pageID yields a model with
// Known=false and no regions.
func (s *Service) Render(ctx context.Context, pageID, themeName string) (PageViewModel, error) {
	palette, err := s.themes.Lookup(themeName)
	if err != nil {
		return PageViewModel{}, err
	}
	kind, parseErr := page.Parse(pageID)
	if parseErr != nil && !errors.Is(parseErr, page.ErrUnknownPage) {
		return PageViewModel{}, parseErr
	}
	doc := NewDocument(pageID, RegionsFor(kind)...)
	env := s.env(kind.String(), doc, palette, s.renderer())

	res, err := s.dispatcher.DispatchRoot(ctx, doc, env)
	defer res.Handle.Close()
	if err != nil {
		return PageViewModel{}, fmt.Errorf("dashboard: render %s: %w", kind, err)
	}

	vm := s.viewModel(kind.String(), palette)
	vm.Kind = res.Kind
	vm.Known = res.Kind != page.Unknown
	if !vm.Known {
		vm.Page = pageID
		s.logger.Debug("unknown page requested", slog.String("page", pageID))
	}
	if res.Handle != nil {
		vm.Handles = append(vm.Handles, s.observe(vm.Page, res.Handle))
	}
	if kind == page.Home {
		summary, err := s.summary.Summary(ctx)
		if err != nil {
			return PageViewModel{}, fmt.Errorf("dashboard: summary: %w", err)
		}
		vm.Summary = &summary
	}
	if vm.Regions, err = doc.views(); err != nil {
		return PageViewModel{}, fmt.Errorf("dashboard: encode %s: %w", kind, err)
	}
	attachHandles(vm.Regions, vm.Handles)
	return vm, nil
}

// RenderLegacy builds the legacy bar chart page through its own entry point.
// The legacy chart does not use theme tokens; the palette only styles the shell.
func (s *Service) RenderLegacy(ctx context.Context, themeName string) (PageViewModel, error) {
	palette, err := s.themes.Lookup(themeName)
	if err != nil {
		return PageViewModel{}, err
	}
	doc := NewDocument("", chart.TargetDummy)
	env := s.env(LegacyPage, doc, nil, s.renderer())
	handle, err := s.legacy.Init(ctx, env)
	defer handle.Close()
	if err != nil {
		return PageViewModel{}, fmt.Errorf("dashboard: render legacy: %w", err)
	}

	vm := s.viewModel(LegacyPage, palette)
	vm.Known = true
	vm.Handles = append(vm.Handles, s.observe(LegacyPage, handle))
	if vm.Regions, err = doc.views(); err != nil {
		return PageViewModel{}, fmt.Errorf("dashboard: encode legacy: %w", err)
	}
	attachHandles(vm.Regions, vm.Handles)
	return vm, nil
}

// Figures builds the figures of one page regardless of whether the charting
// library is configured. It is used by the JSON API and the exports.
func (s *Service) Figures(ctx context.Context, pageID, themeName string) (map[string]chart.Figure, error) {
	palette, err := s.themes.Lookup(themeName)
	if err != nil {
		return nil, err
	}
	var (
		doc    *Document
		handle *chart.Handle
	)
	if pageID == LegacyPage {
		doc = NewDocument("", chart.TargetDummy)
		handle, err = s.legacy.Init(ctx, s.env(LegacyPage, doc, nil, &PlotlyRenderer{}))
	} else {
		kind, perr := page.Parse(pageID)
		if perr != nil {
			return nil, perr
		}
		doc = NewDocument(kind.String(), RegionsFor(kind)...)
		var res page.Result
		res, err = s.dispatcher.DispatchRoot(ctx, doc, s.env(pageID, doc, palette, &PlotlyRenderer{}))
		handle = res.Handle
	}
	defer handle.Close()
	if err != nil {
		return nil, fmt.Errorf("dashboard: figures %s: %w", pageID, err)
	}
	out := make(map[string]chart.Figure)
	for _, r := range doc.Regions() {
		if fig, ok := r.Figure(); ok {
			out[r.ID()] = fig
		}
	}
	return out, nil
}

// Pages lists the identifiers Figures accepts.
func (s *Service) Pages() []string {
	ids := make([]string, 0, 4)
	for _, k := range page.Kinds() {
		ids = append(ids, k.String())
	}
	return append(ids, LegacyPage)
}

func (s *Service) env(pageID string, doc *Document, palette *theme.Palette, renderer chart.Renderer) chart.Env {
	env := chart.Env{
		Document: doc,
		Viewport: NewViewport(),
		Renderer: renderer,
		ResizeFailed: func(target string, err error) {
			s.logger.Warn("chart resize failed", slog.String("page", pageID), slog.String("region", target), slog.Any("error", err))
			if s.recorder != nil {
				s.recorder.ObserveChartRender(pageID, target, OutcomeResizeFailed)
			}
		},
	}
	if palette != nil {
		env.Theme = palette
	}
	return env
}

// renderer returns nil when no script source is configured so initializers
// take the diagnostic-text branch.
func (s *Service) renderer() chart.Renderer {
	if s.plotlySrc == "" {
		return nil
	}
	return &PlotlyRenderer{}
}

func (s *Service) viewModel(pageID string, palette *theme.Palette) PageViewModel {
	return PageViewModel{
		Page:      pageID,
		Theme:     palette.Name,
		ThemeCSS:  template.CSS(palette.CSS()),
		PlotlySrc: s.plotlySrc,
	}
}

func (s *Service) observe(pageID string, h *chart.Handle) HandleView {
	view := HandleView{ID: h.ID.String(), Chart: h.Chart, Target: h.Target, Outcome: h.Outcome}
	s.logger.Debug("chart initialised",
		slog.String("page", pageID),
		slog.String("handle", view.ID),
		slog.String("region", h.Target),
		slog.String("outcome", string(h.Outcome)),
	)
	if s.recorder != nil {
		s.recorder.ObserveChartRender(pageID, h.Target, string(h.Outcome))
	}
	return view
}

func attachHandles(regions []RegionView, handles []HandleView) {
	for i := range regions {
		for _, h := range handles {
			if h.Target == regions[i].ID {
				regions[i].Handle = h.ID
			}
		}
	}
}
