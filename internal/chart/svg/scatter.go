package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Scatter renders labelled points; xs, ys and labels must have equal length.
func Scatter(width, height int, xs, ys []float64, labels []string, opts ScatterOpts) (template.HTML, error) {
	if len(xs) == 0 {
		return "", fmt.Errorf("svg: points required")
	}
	if len(xs) != len(ys) || len(xs) != len(labels) {
		return "", fmt.Errorf("svg: x, y and labels must have equal length")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	padding := opts.Padding
	if padding <= 0 {
		padding = DefaultPadding
	}
	tickCount := opts.TickCount
	if tickCount <= 0 {
		tickCount = DefaultTicks
	}
	pointColor := fallback(opts.PointColor, "#10b981")
	axisColor := fallback(opts.AxisColor, "#94a3b8")
	gridColor := fallback(opts.GridColor, "#334155")

	chartWidth := float64(width) - 2*padding
	chartHeight := float64(height) - 2*padding
	if chartWidth <= 0 || chartHeight <= 0 {
		return "", fmt.Errorf("svg: viewport too small")
	}

	minX, maxX := paddedBounds(xs)
	minY, maxY := paddedBounds(ys)
	xScale := chartWidth / (maxX - minX)
	yScale := chartHeight / (maxY - minY)

	titleID := makeID(opts.Title, "scatter-title")
	descID := makeID(opts.Title, "scatter-desc")

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" role=\"img\" aria-labelledby=\"%s %s\">", width, height, titleID, descID))
	b.WriteString(fmt.Sprintf("<title id=\"%s\">%s</title>", titleID, template.HTMLEscapeString(fallback(opts.Title, "Scatter chart"))))
	b.WriteString(fmt.Sprintf("<desc id=\"%s\">%s</desc>", descID, template.HTMLEscapeString(fallback(opts.Description, "Point comparison"))))

	writeYGrid(&b, padding, chartWidth, chartHeight, minY, maxY, tickCount, gridColor, axisColor, opts.Suffix)

	for i := 0; i <= tickCount; i++ {
		ratio := float64(i) / float64(tickCount)
		x := padding + ratio*chartWidth
		value := minX + (maxX-minX)*ratio
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"middle\">%s</text>", x, padding+chartHeight+16, axisColor, template.HTMLEscapeString(FormatValue(value, opts.Suffix))))
	}

	for i, label := range labels {
		cx := padding + (xs[i]-minX)*xScale
		cy := padding + chartHeight - (ys[i]-minY)*yScale
		b.WriteString(fmt.Sprintf("<circle cx=\"%.2f\" cy=\"%.2f\" r=\"6\" fill=\"%s\" fill-opacity=\"0.85\"><title>%s</title></circle>", cx, cy, pointColor, template.HTMLEscapeString(label)))
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
