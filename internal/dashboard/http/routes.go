package dashboardhttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// MountRoutes registers the dashboard pages, the chart API and the export
// endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(h.exportLimit, time.Minute,
		httprate.WithKeyFuncs(rateLimitKey),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Get("/", h.handlePage)
	r.Get("/legacy", h.handleLegacy)
	r.Get("/api/charts", h.handleAllFigures)
	r.Get("/api/charts/{page}", h.handleFigures)
	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/charts/{page}.svg", h.handleSVG)
		gr.Get("/charts/{page}.csv", h.handleCSV)
	})
	r.Get("/{page}", h.handlePage)
}

func rateLimitKey(r *http.Request) (string, error) {
	key, err := httprate.KeyByIP(r)
	if err != nil {
		return "", err
	}
	return "ip:" + key, nil
}
