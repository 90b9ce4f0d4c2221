package chart

// NotLoadedText replaces a region's content when Plotly is unavailable.
const NotLoadedText = "Plotly not loaded."

// Region is an addressable area of the document a chart is drawn into.
type Region interface {
	ID() string
	SetText(text string)
}

// ResizeTracker is implemented by regions that remember the resize listener
// of the chart bound to them. TrackResize releases the listener it replaces.
type ResizeTracker interface {
	TrackResize(release func())
}

// Document exposes the regions of the page being rendered.
type Document interface {
	Region(id string) (Region, bool)
}

// Renderer is the external charting capability.
type Renderer interface {
	// NewPlot binds fig to target, replacing whatever the target held.
	NewPlot(target Region, fig Figure) error
	// Resize re-lays out the chart bound to target without touching its data.
	Resize(target Region) error
}

// Viewport delivers resize events. The returned func unregisters fn.
type Viewport interface {
	OnResize(fn func()) (release func())
}
