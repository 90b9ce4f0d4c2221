package dashboardhttp

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckstats/deckstats/internal/chart"
	"github.com/deckstats/deckstats/internal/dashboard"
	"github.com/deckstats/deckstats/internal/theme"
	"github.com/deckstats/deckstats/internal/view"
	"github.com/deckstats/deckstats/web"
)

const testPlotlySrc = "https://cdn.plot.ly/plotly-2.35.2.min.js"

func newTestRouter(t *testing.T, plotlySrc string) http.Handler {
	t.Helper()
	reg := theme.NewRegistry(theme.DefaultName)
	require.NoError(t, reg.LoadFS(web.Themes, "themes"))
	svc := dashboard.NewService(dashboard.Options{Themes: reg, PlotlySrc: plotlySrc})
	return mount(t, svc, reg, 100)
}

func mount(t *testing.T, svc DashboardService, themes ThemeSet, exportLimit int) http.Handler {
	t.Helper()
	engine, err := view.NewEngine()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(logger, svc, themes, engine, exportLimit).MountRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestPagesRenderTheirRegion(t *testing.T) {
	router := newTestRouter(t, testPlotlySrc)
	cases := map[string]string{
		"/":           `id="overview-chart"`,
		"/cards":      `id="cards-scatter"`,
		"/archetypes": `id="archetype-heatmap"`,
	}
	for path, region := range cases {
		rr := get(t, router, path)
		require.Equal(t, http.StatusOK, rr.Code, path)
		body := rr.Body.String()
		assert.Contains(t, body, region, path)
		assert.Contains(t, body, "data-figure=", path)
		assert.Contains(t, body, testPlotlySrc, path)
		assert.Equal(t, 1, strings.Count(body, `class="chart"`), path)
	}
}

func TestHomeSetsPageAttribute(t *testing.T) {
	rr := get(t, newTestRouter(t, testPlotlySrc), "/")
	assert.Contains(t, rr.Body.String(), `data-page="home"`)
}

func TestHomeShowsSummaryAndHandle(t *testing.T) {
	body := get(t, newTestRouter(t, testPlotlySrc), "/").Body.String()
	assert.Contains(t, body, `class="summary"`)
	assert.Contains(t, body, "Not loaded yet")
	assert.Contains(t, body, `data-handle="`+chart.HandleID(chart.TargetOverview).String()+`"`)

	cards := get(t, newTestRouter(t, testPlotlySrc), "/cards").Body.String()
	assert.NotContains(t, cards, `class="summary"`)
}

func TestThemePickerSubmitsWithoutInlineScript(t *testing.T) {
	body := get(t, newTestRouter(t, testPlotlySrc), "/cards").Body.String()
	assert.Contains(t, body, `<button type="submit">Apply</button>`)
	assert.NotContains(t, body, "onchange")
}

func TestUnknownPageRendersShell(t *testing.T) {
	rr := get(t, newTestRouter(t, testPlotlySrc), "/settings")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Page not found")
	assert.NotContains(t, body, `class="chart"`)
}

func TestPageWithoutPlotlyShowsDiagnostic(t *testing.T) {
	rr := get(t, newTestRouter(t, ""), "/cards")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, chart.NotLoadedText)
	assert.NotContains(t, body, "data-figure=")
	assert.NotContains(t, body, testPlotlySrc)
}

func TestThemeQueryIsValidated(t *testing.T) {
	router := newTestRouter(t, testPlotlySrc)

	rr := get(t, router, "/?theme=midnight")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "--emerald: #34d399")

	rr = get(t, router, "/?theme=neon")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid theme")
}

func TestLegacyPageUsesOwnEntryPoint(t *testing.T) {
	rr := get(t, newTestRouter(t, testPlotlySrc), "/legacy")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `id="dummy-chart"`)
	assert.Contains(t, body, `data-entry="legacy"`)
	assert.NotContains(t, body, "data-page=")
}

func TestFiguresAPI(t *testing.T) {
	router := newTestRouter(t, "")
	rr := get(t, router, "/api/charts/archetypes?theme=midnight")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Page    string                     `json:"page"`
		Theme   string                     `json:"theme"`
		Figures map[string]json.RawMessage `json:"figures"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "archetypes", body.Page)
	assert.Equal(t, "midnight", body.Theme)
	require.Contains(t, body.Figures, chart.TargetArchetypeHeatmap)
	assert.Contains(t, string(body.Figures[chart.TargetArchetypeHeatmap]), "#2e1065")
}

func TestFiguresAPIUnknownPage(t *testing.T) {
	rr := get(t, newTestRouter(t, ""), "/api/charts/settings")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rr.Body.String(), `"status":404`)
}

func TestAllFiguresAPI(t *testing.T) {
	rr := get(t, newTestRouter(t, ""), "/api/charts")
	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Pages []struct {
			Page    string                     `json:"page"`
			Figures map[string]json.RawMessage `json:"figures"`
		} `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Pages, 4)
	assert.Equal(t, "home", body.Pages[0].Page)
	assert.Equal(t, "legacy", body.Pages[3].Page)
	for _, p := range body.Pages {
		assert.Len(t, p.Figures, 1, p.Page)
	}
}

func TestSVGExport(t *testing.T) {
	router := newTestRouter(t, "")
	rr := get(t, router, "/charts/home.svg?width=480&height=240")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/svg+xml", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.True(t, strings.HasPrefix(body, "<svg"))
	assert.Contains(t, body, `viewBox="0 0 480 240"`)
	assert.Contains(t, body, "<path")

	rr = get(t, router, "/charts/archetypes.svg")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 25, strings.Count(rr.Body.String(), "<rect"))
}

func TestSVGExportRejectsBadSize(t *testing.T) {
	router := newTestRouter(t, "")
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/charts/home.svg?width=abc").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/charts/home.svg?width=10").Code)
	assert.Equal(t, http.StatusNotFound, get(t, router, "/charts/settings.svg").Code)
}

func TestCSVExport(t *testing.T) {
	rr := get(t, newTestRouter(t, ""), "/charts/legacy.csv")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `attachment; filename="deckstats-legacy.csv"`, rr.Header().Get("Content-Disposition"))
	records, err := csv.NewReader(strings.NewReader(rr.Body.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Label", "Games"},
		{"Cycle", "12"},
		{"Beatdown", "19"},
		{"Control", "7"},
		{"Siege", "5"},
	}, records)
}

func TestExportsAreRateLimited(t *testing.T) {
	reg := theme.NewRegistry(theme.DefaultName)
	require.NoError(t, reg.LoadFS(web.Themes, "themes"))
	router := mount(t, dashboard.NewService(dashboard.Options{Themes: reg}), reg, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, get(t, router, "/charts/home.csv").Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, http.StatusOK, get(t, router, "/cards").Code)
}

type failingService struct{}

func (failingService) Render(context.Context, string, string) (dashboard.PageViewModel, error) {
	return dashboard.PageViewModel{}, errors.New("boom")
}

func (failingService) RenderLegacy(context.Context, string) (dashboard.PageViewModel, error) {
	return dashboard.PageViewModel{}, errors.New("boom")
}

func (failingService) Figures(context.Context, string, string) (map[string]chart.Figure, error) {
	return nil, errors.New("boom")
}

func (failingService) Pages() []string { return []string{"home"} }

func TestServiceErrorsAreInternal(t *testing.T) {
	router := mount(t, failingService{}, theme.NewRegistry(""), 10)

	rr := get(t, router, "/")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "boom")

	rr = get(t, router, "/api/charts")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"title":"Internal Error"`)
}
