package dashboardhttp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/deckstats/deckstats/internal/chart"
	"github.com/deckstats/deckstats/internal/chart/export"
	"github.com/deckstats/deckstats/internal/chart/svg"
	"github.com/deckstats/deckstats/internal/dashboard"
	"github.com/deckstats/deckstats/internal/page"
	"github.com/deckstats/deckstats/internal/platform/httpx"
	"github.com/deckstats/deckstats/internal/theme"
	"github.com/deckstats/deckstats/internal/view"
)

const requestTimeout = 2 * time.Second

// DashboardService is the rendering contract used by the handler.
type DashboardService interface {
	Render(ctx context.Context, pageID, themeName string) (dashboard.PageViewModel, error)
	RenderLegacy(ctx context.Context, themeName string) (dashboard.PageViewModel, error)
	Figures(ctx context.Context, pageID, themeName string) (map[string]chart.Figure, error)
	Pages() []string
}

// ThemeSet reports which palettes can be selected.
type ThemeSet interface {
	Has(name string) bool
	Names() []string
	Default() string
}

// Handler serves the dashboard pages, the chart API and the exports.
type Handler struct {
	logger      *slog.Logger
	service     DashboardService
	themes      ThemeSet
	templates   *view.Engine
	validate    *validator.Validate
	exportLimit int
	csvPool     sync.Pool
	svgGroup    singleflight.Group
}

// NewHandler constructs the dashboard HTTP handler. exportLimit is the number
// of export requests allowed per client and minute.
func NewHandler(logger *slog.Logger, service DashboardService, themes ThemeSet, templates *view.Engine, exportLimit int) *Handler {
	if exportLimit <= 0 {
		exportLimit = 10
	}
	h := &Handler{
		logger:      logger,
		service:     service,
		themes:      themes,
		templates:   templates,
		validate:    validator.New(),
		exportLimit: exportLimit,
	}
	_ = h.validate.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		return h.themes != nil && h.themes.Has(fl.Field().String())
	})
	h.csvPool.New = func() interface{} { return new(bytes.Buffer) }
	return h
}

type displayQuery struct {
	Theme string `validate:"omitempty,theme"`
}

type exportQuery struct {
	Theme  string `validate:"omitempty,theme"`
	Width  int    `validate:"omitempty,min=240,max=2400"`
	Height int    `validate:"omitempty,min=160,max=1600"`
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseDisplay(r)
	if err != nil {
		h.handleValidationFailure(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	vm, err := h.service.Render(ctx, chi.URLParam(r, "page"), q.Theme)
	if err != nil {
		h.handleServerError(w, "render page", err)
		return
	}
	status, name, title := http.StatusOK, "pages/"+vm.Page+".html", pageTitle(vm.Kind)
	if !vm.Known {
		status, name, title = http.StatusNotFound, "pages/notfound.html", "Not found"
	}
	data := h.templateData(r, title, vm)
	if err := h.templates.RenderStatus(w, status, name, data); err != nil {
		h.logError("render template", err)
	}
}

func (h *Handler) handleLegacy(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseDisplay(r)
	if err != nil {
		h.handleValidationFailure(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	vm, err := h.service.RenderLegacy(ctx, q.Theme)
	if err != nil {
		h.handleServerError(w, "render legacy", err)
		return
	}
	data := h.templateData(r, "Deck types", vm)
	data.Page = ""
	data.Entry = dashboard.LegacyPage
	if err := h.templates.Render(w, "pages/legacy.html", data); err != nil {
		h.logError("render template", err)
	}
}

// figuresResponse is the JSON body of the chart API.
type figuresResponse struct {
	Page    string                  `json:"page"`
	Theme   string                  `json:"theme"`
	Figures map[string]chart.Figure `json:"figures"`
}

func (h *Handler) handleFigures(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseDisplay(r)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	pageID := chi.URLParam(r, "page")
	figs, err := h.service.Figures(ctx, pageID, q.Theme)
	if err != nil {
		h.respondAPIError(w, "build figures", err)
		return
	}
	httpx.JSON(w, http.StatusOK, figuresResponse{Page: pageID, Theme: h.themeName(q.Theme), Figures: figs})
}

func (h *Handler) handleAllFigures(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseDisplay(r)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	pages := h.service.Pages()
	results := make([]figuresResponse, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range pages {
		g.Go(func() error {
			figs, err := h.service.Figures(ctx, id, q.Theme)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			results[i] = figuresResponse{Page: id, Theme: h.themeName(q.Theme), Figures: figs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.respondAPIError(w, "build all figures", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"pages": results})
}

func (h *Handler) handleSVG(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseExport(r)
	if err != nil {
		h.handleValidationFailure(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	pageID := chi.URLParam(r, "page")
	key := fmt.Sprintf("%s:%s:%dx%d", pageID, h.themeName(q.Theme), q.Width, q.Height)
	result, err, _ := h.singleflightBuild(ctx, key, func(ctx context.Context) (interface{}, error) {
		fig, err := h.firstFigure(ctx, pageID, q.Theme)
		if err != nil {
			return nil, err
		}
		return svg.FromFigure(fig, q.Width, q.Height, exportTitle(pageID))
	})
	if err != nil {
		h.handleExportError(w, "render svg", err)
		return
	}
	out, _ := result.(template.HTML)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write([]byte(out)); err != nil {
		h.logError("stream svg", err)
	}
}

func (h *Handler) handleCSV(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseExport(r)
	if err != nil {
		h.handleValidationFailure(w, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	pageID := chi.URLParam(r, "page")
	fig, err := h.firstFigure(ctx, pageID, q.Theme)
	if err != nil {
		h.handleExportError(w, "build figure", err)
		return
	}

	buf := h.csvPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		buf.Reset()
		h.csvPool.Put(buf)
	}()
	if err := export.WriteFigureCSV(buf, fig); err != nil {
		h.handleServerError(w, "write csv", err)
		return
	}

	filename := fmt.Sprintf("deckstats-%s.csv", pageID)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logError("stream csv", err)
	}
}

func (h *Handler) singleflightBuild(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, error, bool) {
	resultChan := h.svgGroup.DoChan(key, func() (interface{}, error) {
		return fn(ctx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err(), false
	case res := <-resultChan:
		return res.Val, res.Err, res.Shared
	}
}

// firstFigure returns the single figure a page carries.
func (h *Handler) firstFigure(ctx context.Context, pageID, themeName string) (chart.Figure, error) {
	figs, err := h.service.Figures(ctx, pageID, themeName)
	if err != nil {
		return chart.Figure{}, err
	}
	ids := make([]string, 0, len(figs))
	for id := range figs {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return chart.Figure{}, fmt.Errorf("%w: %s has no chart", page.ErrUnknownPage, pageID)
	}
	sort.Strings(ids)
	return figs[ids[0]], nil
}

func (h *Handler) parseDisplay(r *http.Request) (displayQuery, error) {
	q := displayQuery{Theme: strings.TrimSpace(r.URL.Query().Get("theme"))}
	if err := h.validate.Struct(q); err != nil {
		return displayQuery{}, toValidationError(err)
	}
	return q, nil
}

func (h *Handler) parseExport(r *http.Request) (exportQuery, error) {
	values := r.URL.Query()
	q := exportQuery{Theme: strings.TrimSpace(values.Get("theme"))}
	for field, dst := range map[string]*int{"width": &q.Width, "height": &q.Height} {
		raw := strings.TrimSpace(values.Get(field))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return exportQuery{}, validationError{field: field}
		}
		*dst = v
	}
	if err := h.validate.Struct(q); err != nil {
		return exportQuery{}, toValidationError(err)
	}
	return q, nil
}

func (h *Handler) templateData(r *http.Request, title string, vm dashboard.PageViewModel) view.TemplateData {
	var names []string
	if h.themes != nil {
		names = h.themes.Names()
	}
	return view.TemplateData{
		Title:       title,
		CurrentPath: r.URL.Path,
		Page:        vm.Page,
		Theme:       vm.Theme,
		Themes:      names,
		ThemeCSS:    vm.ThemeCSS,
		PlotlySrc:   vm.PlotlySrc,
		Data:        vm,
	}
}

func (h *Handler) themeName(name string) string {
	if name == "" && h.themes != nil {
		return h.themes.Default()
	}
	return strings.ToLower(name)
}

func pageTitle(kind page.Kind) string {
	switch kind {
	case page.Cards:
		return "Cards"
	case page.Archetypes:
		return "Archetypes"
	default:
		return "Overview"
	}
}

func exportTitle(pageID string) string {
	switch pageID {
	case "cards":
		return "Card usage and win rate"
	case "archetypes":
		return "Archetype matchups"
	case dashboard.LegacyPage:
		return "Games by deck type"
	default:
		return "Win rate trend"
	}
}

func (h *Handler) respondAPIError(w http.ResponseWriter, context string, err error) {
	switch {
	case errors.Is(err, page.ErrUnknownPage):
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrNotFound, err))
	case errors.Is(err, theme.ErrUnknownTheme):
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
	default:
		h.logError(context, err)
		httpx.RespondError(w, err)
	}
}

func (h *Handler) handleExportError(w http.ResponseWriter, context string, err error) {
	switch {
	case errors.Is(err, page.ErrUnknownPage):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, theme.ErrUnknownTheme):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.handleServerError(w, context, err)
	}
}

func (h *Handler) handleValidationFailure(w http.ResponseWriter, err error) {
	if h.logger != nil {
		h.logger.Warn("invalid query", slog.Any("error", err))
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func (h *Handler) handleServerError(w http.ResponseWriter, context string, err error) {
	h.logError(context, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) logError(context string, err error) {
	if h.logger != nil {
		h.logger.Error(context, slog.Any("error", err))
	}
}

type validationError struct {
	field string
}

func (v validationError) Error() string {
	return fmt.Sprintf("invalid %s", v.field)
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return validationError{field: strings.ToLower(fieldErrs[0].Field())}
	}
	return err
}
