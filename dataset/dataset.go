package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dataset is a batch of labeled feature rows read from a CSV-like
// source, mirroring struct dataset (dataset.c): a header declares the
// row and feature counts, then one "label,f1,f2,..." line per row.
type Dataset struct {
	rows      [][]float64
	labels    []string
	spaceSize int
}

// Size returns the number of rows in d.
func (d Dataset) Size() int {
	return len(d.rows)
}

// SpaceSize returns the number of features per row.
func (d Dataset) SpaceSize() int {
	return d.spaceSize
}

// Row returns the i-th row's features.
func (d Dataset) Row(i int) []float64 {
	return d.rows[i]
}

// Label returns the i-th row's label.
func (d Dataset) Label(i int) string {
	return d.labels[i]
}

// Read parses a dataset from r. The first non-empty line must be
// "# <rows> <cols>"; each following line holds one row as
// "label,f1,f2,...,fN" with exactly cols feature values.
func Read(r io.Reader) (Dataset, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	nRows, nCols, err := readHeader(sc)
	if err != nil {
		return Dataset{}, err
	}

	d := Dataset{
		rows:      make([][]float64, 0, nRows),
		labels:    make([]string, 0, nRows),
		spaceSize: nCols,
	}

	for len(d.rows) < nRows {
		if !sc.Scan() {
			return Dataset{}, fmt.Errorf("Read: %w: expected %d rows, got %d", ErrMalformedRow, nRows, len(d.rows))
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != nCols+1 {
			return Dataset{}, fmt.Errorf("Read: %w: row %d has %d fields, want %d", ErrMalformedRow, len(d.rows), len(fields), nCols+1)
		}

		row := make([]float64, nCols)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return Dataset{}, fmt.Errorf("Read: %w: row %d: %v", ErrMalformedRow, len(d.rows), err)
			}
			row[i] = v
		}

		d.rows = append(d.rows, row)
		d.labels = append(d.labels, strings.TrimSpace(fields[0]))
	}

	if err := sc.Err(); err != nil {
		return Dataset{}, fmt.Errorf("Read: %w", err)
	}
	return d, nil
}

func readHeader(sc *bufio.Scanner) (int, int, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "#"))
		if len(fields) != 2 {
			return 0, 0, fmt.Errorf("readHeader: %w", ErrMalformedHeader)
		}
		rows, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, fmt.Errorf("readHeader: %w", ErrMalformedHeader)
		}
		cols, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("readHeader: %w", ErrMalformedHeader)
		}
		return rows, cols, nil
	}
	if err := sc.Err(); err != nil {
		return 0, 0, fmt.Errorf("readHeader: %w", err)
	}
	return 0, 0, fmt.Errorf("readHeader: %w", ErrMalformedHeader)
}
