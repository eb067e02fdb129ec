// SPDX-License-Identifier: MIT

package distmat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/squat/matrix"
)

// denseTol is the symmetry and zero-diagonal tolerance of FromDense.
const denseTol = 1e-9

// FromDense builds a Distance from a full square dissimilarity matrix. The
// matrix must pass matrix.ValidateDissimilarity; the strictly lower
// triangle is kept. A nil labels slice selects DefaultLabels.
//
// Errors:
//   - the matrix validation sentinels (ErrNilMatrix, ErrNonSquare,
//     ErrNonZeroDiagonal, ErrAsymmetry, ErrNegativeEntry, ErrNaNInf).
//   - the errors of New.
func FromDense(m matrix.Matrix, labels []string, method string) (*Distance, error) {
	if err := matrix.ValidateDissimilarity(m, denseTol); err != nil {
		return nil, fmt.Errorf("distmat: %w", err)
	}
	n := m.Rows()
	values := make([]float64, n*(n-1)/2)
	for k := range values {
		i, j := PairAt(n, k)
		v, err := m.At(j, i)
		if err != nil {
			return nil, err
		}
		values[k] = v
	}

	return New(n, values, labels, method)
}

// WriteCSV writes d as a square matrix whose header row holds the labels.
func (d *Distance) WriteCSV(w io.Writer) error {
	dense, err := d.ToDense()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(d.labels); err != nil {
		return fmt.Errorf("distmat: write csv: %w", err)
	}
	rec := make([]string, d.size)
	for i := 0; i < d.size; i++ {
		for j, v := range dense.RawRowView(i) {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("distmat: write csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV reads a square matrix in the WriteCSV layout and validates it
// through FromDense.
//
// Errors:
//   - ErrCorruptDistance for unreadable or non-numeric records, and for a
//     row count different from the label count.
//   - the errors of FromDense.
func ReadCSV(r io.Reader, method string) (*Distance, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	labels, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("distmat: csv header: %w", errors.Join(ErrCorruptDistance, err))
	}
	rows := make([][]float64, 0, len(labels))
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("distmat: csv line %d: %w", line, errors.Join(ErrCorruptDistance, err))
		}
		row := make([]float64, len(rec))
		for j, s := range rec {
			if row[j], err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
				return nil, fmt.Errorf("distmat: csv line %d column %d: %w", line, j+1, errors.Join(ErrCorruptDistance, err))
			}
		}
		rows = append(rows, row)
	}
	if len(rows) != len(labels) {
		return nil, fmt.Errorf("distmat: %d csv rows for %d labels: %w", len(rows), len(labels), ErrCorruptDistance)
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("distmat: %w", err)
	}

	return FromDense(m, labels, method)
}
