package chart

import (
	"errors"
	"fmt"
)

// ErrInvalidDataset reports a dataset whose shape breaks its invariants.
var ErrInvalidDataset = errors.New("chart: invalid dataset")

// Series is one ordered sequence of values, usually percentages.
type Series struct {
	Name   string
	Values []float64
}

// Dataset pairs ordered category labels with one or more series.
type Dataset struct {
	Labels []string
	Series []Series
}

// Validate checks that every series has one value per label.
func (d Dataset) Validate() error {
	if len(d.Labels) == 0 {
		return fmt.Errorf("%w: labels required", ErrInvalidDataset)
	}
	if len(d.Series) == 0 {
		return fmt.Errorf("%w: at least one series required", ErrInvalidDataset)
	}
	for _, s := range d.Series {
		if len(s.Values) != len(d.Labels) {
			return fmt.Errorf("%w: series %q has %d values for %d labels", ErrInvalidDataset, s.Name, len(s.Values), len(d.Labels))
		}
	}
	return nil
}

// Values returns the values of the series at index i, or nil.
func (d Dataset) Values(i int) []float64 {
	if i < 0 || i >= len(d.Series) {
		return nil
	}
	return d.Series[i].Values
}

// Matrix is a labelled row-major grid of values.
type Matrix struct {
	Rows   []string
	Cols   []string
	Values [][]float64
}

// Validate checks the grid is len(Rows) x len(Cols).
func (m Matrix) Validate() error {
	if len(m.Rows) == 0 || len(m.Cols) == 0 {
		return fmt.Errorf("%w: matrix labels required", ErrInvalidDataset)
	}
	if len(m.Values) != len(m.Rows) {
		return fmt.Errorf("%w: matrix has %d rows for %d labels", ErrInvalidDataset, len(m.Values), len(m.Rows))
	}
	for i, row := range m.Values {
		if len(row) != len(m.Cols) {
			return fmt.Errorf("%w: matrix row %d has %d cells for %d columns", ErrInvalidDataset, i, len(row), len(m.Cols))
		}
	}
	return nil
}
