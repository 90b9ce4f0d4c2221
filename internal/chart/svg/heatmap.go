package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Heatmap renders a labelled grid. cells must be len(rows) x len(cols).
func Heatmap(width, height int, cells [][]float64, rows, cols []string, opts HeatmapOpts) (template.HTML, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return "", fmt.Errorf("svg: row and column labels required")
	}
	if len(cells) != len(rows) {
		return "", fmt.Errorf("svg: cells must have one row per label")
	}
	for _, row := range cells {
		if len(row) != len(cols) {
			return "", fmt.Errorf("svg: cells must have one column per label")
		}
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
	labelWidth := opts.LabelWidth
	if labelWidth <= 0 {
		labelWidth = 96
	}
	low := fallback(opts.LowColor, "#1e1b4b")
	high := fallback(opts.HighColor, "#10b981")
	axisColor := fallback(opts.AxisColor, "#94a3b8")
	minVal, maxVal := opts.Min, opts.Max
	if maxVal <= minVal {
		minVal, maxVal = 0, 100
	}

	gridWidth := float64(width) - padding - labelWidth
	gridHeight := float64(height) - 2*padding
	if gridWidth <= 0 || gridHeight <= 0 {
		return "", fmt.Errorf("svg: viewport too small")
	}
	cellW := gridWidth / float64(len(cols))
	cellH := gridHeight / float64(len(rows))

	titleID := makeID(opts.Title, "heatmap-title")
	descID := makeID(opts.Title, "heatmap-desc")

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" role=\"img\" aria-labelledby=\"%s %s\">", width, height, titleID, descID))
	b.WriteString(fmt.Sprintf("<title id=\"%s\">%s</title>", titleID, template.HTMLEscapeString(fallback(opts.Title, "Heatmap"))))
	b.WriteString(fmt.Sprintf("<desc id=\"%s\">%s</desc>", descID, template.HTMLEscapeString(fallback(opts.Description, "Matrix values"))))

	for r, rowLabel := range rows {
		y := padding + float64(r)*cellH
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"11\" text-anchor=\"end\">%s</text>", labelWidth-8, y+cellH/2+4, axisColor, template.HTMLEscapeString(rowLabel)))
		for c, value := range cells[r] {
			x := labelWidth + float64(c)*cellW
			t := (value - minVal) / (maxVal - minVal)
			fill := mix(low, high, t)
			tip := fmt.Sprintf("%s vs %s: %s", rowLabel, cols[c], FormatValue(value, "%"))
			b.WriteString(fmt.Sprintf("<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\"><title>%s</title></rect>", x, y, cellW-1, cellH-1, fill, template.HTMLEscapeString(tip)))
			b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"#f8fafc\" font-size=\"10\" text-anchor=\"middle\">%s</text>", x+cellW/2, y+cellH/2+4, template.HTMLEscapeString(FormatValue(value, ""))))
		}
	}
	for c, colLabel := range cols {
		x := labelWidth + float64(c)*cellW + cellW/2
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"11\" text-anchor=\"middle\">%s</text>", x, padding+gridHeight+16, axisColor, template.HTMLEscapeString(colLabel)))
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
