package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/deckstats/deckstats/internal/chart"
)

// WriteFigureCSV serialises the first trace of a figure to CSV.
//
// Line and bar traces emit one row per category, scatter traces one row per
// labelled point and heatmaps one row per matrix row.
func WriteFigureCSV(w io.Writer, fig chart.Figure) error {
	if len(fig.Data) == 0 {
		return fmt.Errorf("export: figure has no traces")
	}
	writer := csv.NewWriter(w)
	defer writer.Flush()

	tr := fig.Data[0]
	var err error
	switch {
	case tr.Type == "heatmap":
		err = writeMatrix(writer, tr)
	case tr.Type == "scatter" && tr.Mode == "markers":
		err = writePoints(writer, tr, axisTitle(fig.Layout.XAxis, "x"), axisTitle(fig.Layout.YAxis, "y"))
	default:
		err = writeCategories(writer, tr)
	}
	if err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func writeCategories(writer *csv.Writer, tr chart.Trace) error {
	labels, _ := tr.X.([]string)
	values, _ := tr.Y.([]float64)
	if len(labels) != len(values) {
		return fmt.Errorf("export: %d labels for %d values", len(labels), len(values))
	}
	name := tr.Name
	if name == "" {
		name = "Value"
	}
	if err := writer.Write([]string{"Label", name}); err != nil {
		return err
	}
	for i, label := range labels {
		if err := writer.Write([]string{label, formatFloat(values[i])}); err != nil {
			return err
		}
	}
	return nil
}

func writePoints(writer *csv.Writer, tr chart.Trace, xName, yName string) error {
	xs, _ := tr.X.([]float64)
	ys, _ := tr.Y.([]float64)
	if len(xs) != len(ys) || len(xs) != len(tr.Text) {
		return fmt.Errorf("export: scatter trace has uneven columns")
	}
	if err := writer.Write([]string{"Label", xName, yName}); err != nil {
		return err
	}
	for i, label := range tr.Text {
		if err := writer.Write([]string{label, formatFloat(xs[i]), formatFloat(ys[i])}); err != nil {
			return err
		}
	}
	return nil
}

func writeMatrix(writer *csv.Writer, tr chart.Trace) error {
	cols, _ := tr.X.([]string)
	rows, _ := tr.Y.([]string)
	if len(rows) != len(tr.Z) {
		return fmt.Errorf("export: %d row labels for %d rows", len(rows), len(tr.Z))
	}
	if err := writer.Write(append([]string{""}, cols...)); err != nil {
		return err
	}
	for i, row := range tr.Z {
		if len(row) != len(cols) {
			return fmt.Errorf("export: row %q has %d cells, want %d", rows[i], len(row), len(cols))
		}
		record := make([]string, 0, len(row)+1)
		record = append(record, rows[i])
		for _, v := range row {
			record = append(record, formatFloat(v))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func axisTitle(axis chart.Axis, def string) string {
	if axis.Title == nil || axis.Title.Text == "" {
		return def
	}
	return axis.Title.Text
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
