package svg

// LineOpts customises the line chart renderer.
type LineOpts struct {
	Title       string
	Description string
	StrokeColor string
	AxisColor   string
	GridColor   string
	Padding     float64
	ShowDots    bool
	TickCount   int
	Suffix      string
}

// BarOpts customises the bar chart renderer.
type BarOpts struct {
	Title       string
	Description string
	Color       string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
}

// ScatterOpts customises the scatter renderer.
type ScatterOpts struct {
	Title       string
	Description string
	PointColor  string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
	Suffix      string
}

// HeatmapOpts customises the heatmap renderer.
type HeatmapOpts struct {
	Title       string
	Description string
	LowColor    string
	HighColor   string
	AxisColor   string
	Min         float64
	Max         float64
	Padding     float64
	LabelWidth  float64
}

// Defaults for the exported charts.
const (
	DefaultWidth   = 720
	DefaultHeight  = 320
	DefaultPadding = 32.0
	DefaultTicks   = 5
)
