// SPDX-License-Identifier: MIT

package qts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/squat/quaternion"
)

// csvColumns is the fixed column set of the tabular representation.
var csvColumns = [5]string{"time", "w", "x", "y", "z"}

// ReadCSV reads a QTS from CSV with a header naming the columns
// time, w, x, y and z (any order, case-insensitive, extra columns ignored).
// Rotations are re-normalized.
func ReadCSV(r io.Reader) (QTS, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return QTS{}, fmt.Errorf("qts: reading header: %w", errors.Join(ErrMalformedCSV, err))
	}
	var pos [5]int
	for c, name := range csvColumns {
		pos[c] = -1
		for k, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				pos[c] = k
				break
			}
		}
		if pos[c] < 0 {
			return QTS{}, fmt.Errorf("qts: missing column %q: %w", name, ErrMalformedCSV)
		}
	}

	var time []float64
	var rot []quaternion.Quaternion
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return QTS{}, fmt.Errorf("qts: line %d: %w", line, errors.Join(ErrMalformedCSV, err))
		}
		var v [5]float64
		for c := range csvColumns {
			v[c], err = strconv.ParseFloat(strings.TrimSpace(rec[pos[c]]), 64)
			if err != nil {
				return QTS{}, fmt.Errorf("qts: line %d column %q: %w", line, csvColumns[c], errors.Join(ErrMalformedCSV, err))
			}
		}
		time = append(time, v[0])
		rot = append(rot, quaternion.New(v[1], v[2], v[3], v[4]))
	}

	return New(time, rot)
}

// WriteCSV writes q with the header time,w,x,y,z.
func WriteCSV(w io.Writer, q QTS) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns[:]); err != nil {
		return err
	}
	format := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	for i, r := range q.Rot {
		rec := []string{format(q.Time[i]), format(r.W), format(r.X), format(r.Y), format(r.Z)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
