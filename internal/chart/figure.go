package chart

// Figure is the argument triple of Plotly.newPlot(target, data, layout, config).
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Config Config  `json:"config"`
}

// Trace is the subset of Plotly trace attributes the dashboard uses.
// X and Y hold either []string or []float64.
type Trace struct {
	Type          string      `json:"type"`
	Mode          string      `json:"mode,omitempty"`
	Name          string      `json:"name,omitempty"`
	X             any         `json:"x,omitempty"`
	Y             any         `json:"y,omitempty"`
	Z             [][]float64 `json:"z,omitempty"`
	Text          []string    `json:"text,omitempty"`
	HoverTemplate string      `json:"hovertemplate,omitempty"`
	Line          *LineStyle  `json:"line,omitempty"`
	Marker        *Marker     `json:"marker,omitempty"`
	ColorScale    []ScaleStop `json:"colorscale,omitempty"`
	ZMin          *float64    `json:"zmin,omitempty"`
	ZMax          *float64    `json:"zmax,omitempty"`
	ShowScale     *bool       `json:"showscale,omitempty"`
}

// LineStyle configures trace lines.
type LineStyle struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Shape string  `json:"shape,omitempty"`
}

// Marker configures trace markers.
type Marker struct {
	Color   any        `json:"color,omitempty"`
	Size    float64    `json:"size,omitempty"`
	Opacity float64    `json:"opacity,omitempty"`
	Line    *LineStyle `json:"line,omitempty"`
}

// ScaleStop is one [position, color] entry of a Plotly colorscale.
type ScaleStop [2]any

// Layout is the Plotly layout object.
type Layout struct {
	PaperBGColor string `json:"paper_bgcolor"`
	PlotBGColor  string `json:"plot_bgcolor"`
	Margin       Margin `json:"margin"`
	Font         Font   `json:"font"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	ShowLegend   bool   `json:"showlegend"`
	HoverMode    string `json:"hovermode,omitempty"`
}

// Margin holds the fixed plot margins in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Font is a Plotly font object.
type Font struct {
	Family string `json:"family,omitempty"`
	Color  string `json:"color,omitempty"`
	Size   int    `json:"size,omitempty"`
}

// Axis is a Plotly axis object.
type Axis struct {
	Title      *AxisTitle `json:"title,omitempty"`
	TickFont   Font       `json:"tickfont"`
	ShowGrid   bool       `json:"showgrid"`
	GridColor  string     `json:"gridcolor,omitempty"`
	ZeroLine   bool       `json:"zeroline"`
	TickSuffix string     `json:"ticksuffix,omitempty"`
	Range      []float64  `json:"range,omitempty"`
	AutoRange  any        `json:"autorange,omitempty"`
}

// AxisTitle is the Plotly axis title object.
type AxisTitle struct {
	Text string `json:"text"`
}

// Config carries Plotly display options.
type Config struct {
	DisplayModeBar bool `json:"displayModeBar"`
	Responsive     bool `json:"responsive"`
}

// Shared layout constants.
const (
	transparent = "rgba(0,0,0,0)"
	gridLine    = "rgba(148,163,184,0.15)"
	tickColor   = "#94a3b8"
	fontFamily  = "Inter, system-ui, sans-serif"
)

// DisplayOptions returns the options every dashboard chart is rendered with.
func DisplayOptions() Config {
	return Config{DisplayModeBar: false, Responsive: true}
}

// baseLayout builds the layout shared by all themed charts: transparent
// backgrounds, fixed margins, styled ticks and grid lines, no legend.
func baseLayout() Layout {
	tick := Font{Family: fontFamily, Color: tickColor, Size: 11}
	return Layout{
		PaperBGColor: transparent,
		PlotBGColor:  transparent,
		Margin:       Margin{L: 48, R: 16, T: 16, B: 40},
		Font:         Font{Family: fontFamily, Color: tickColor},
		XAxis:        Axis{TickFont: tick, ShowGrid: true, GridColor: gridLine},
		YAxis:        Axis{TickFont: tick, ShowGrid: true, GridColor: gridLine},
		ShowLegend:   false,
	}
}

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }
