package dashboard

import (
	"encoding/json"
	"sync"

	"github.com/deckstats/deckstats/internal/chart"
	"github.com/deckstats/deckstats/internal/page"
)

// Region is a named area of a server-side page. It holds either a bound
// figure or plain text.
type Region struct {
	id string

	mu      sync.Mutex
	text    string
	figure  *chart.Figure
	resizes int
	release func()
}

// ID implements chart.Region.
func (r *Region) ID() string { return r.id }

// SetText replaces the region content with text and drops the resize
// listener of any chart previously bound here.
func (r *Region) SetText(text string) {
	r.mu.Lock()
	r.text = text
	r.figure = nil
	prev := r.release
	r.release = nil
	r.mu.Unlock()
	if prev != nil {
		prev()
	}
}

// TrackResize implements chart.ResizeTracker. At most one listener is live
// per region; the previous one is released.
func (r *Region) TrackResize(release func()) {
	r.mu.Lock()
	prev := r.release
	r.release = release
	r.mu.Unlock()
	if prev != nil {
		prev()
	}
}

// Text returns the plain-text content, empty when a figure is bound.
func (r *Region) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text
}

// Figure returns the bound figure.
func (r *Region) Figure() (chart.Figure, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.figure == nil {
		return chart.Figure{}, false
	}
	return *r.figure, true
}

// Resizes counts the relayouts requested since the figure was bound.
func (r *Region) Resizes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resizes
}

func (r *Region) bind(fig chart.Figure) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.figure = &fig
	r.text = ""
	r.resizes = 0
}

func (r *Region) resized() {
	r.mu.Lock()
	r.resizes++
	r.mu.Unlock()
}

// Document is the server-side model of one page: a root attribute set and
// the regions its template declares.
type Document struct {
	attrs   map[string]string
	regions map[string]*Region
	order   []string
}

// NewDocument declares a page with the given regions. An empty pageID leaves
// the page attribute unset.
func NewDocument(pageID string, regionIDs ...string) *Document {
	doc := &Document{
		attrs:   make(map[string]string),
		regions: make(map[string]*Region, len(regionIDs)),
	}
	if pageID != "" {
		doc.attrs[page.Attribute] = pageID
	}
	for _, id := range regionIDs {
		if _, exists := doc.regions[id]; exists {
			continue
		}
		doc.regions[id] = &Region{id: id}
		doc.order = append(doc.order, id)
	}
	return doc
}

// Attr implements page.Root.
func (d *Document) Attr(name string) (string, bool) {
	v, ok := d.attrs[name]
	return v, ok
}

// Region implements chart.Document.
func (d *Document) Region(id string) (chart.Region, bool) {
	r, ok := d.regions[id]
	if !ok {
		return nil, false
	}
	return r, true
}

// Regions lists the regions in declaration order.
func (d *Document) Regions() []*Region {
	out := make([]*Region, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.regions[id])
	}
	return out
}

// RegionView is the template-facing snapshot of a region.
type RegionView struct {
	ID string
	// Handle identifies the chart initialisation bound to the region.
	Handle     string
	Text       string
	FigureJSON string
	Bound      bool
}

func (d *Document) views() ([]RegionView, error) {
	regions := d.Regions()
	out := make([]RegionView, 0, len(regions))
	for _, r := range regions {
		view := RegionView{ID: r.ID(), Text: r.Text()}
		if fig, ok := r.Figure(); ok {
			raw, err := json.Marshal(fig)
			if err != nil {
				return nil, err
			}
			view.FigureJSON = string(raw)
			view.Bound = true
		}
		out = append(out, view)
	}
	return out, nil
}
