// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/squat/qts"
	"gopkg.in/yaml.v3"
)

// readSample reads one series per CSV file and labels each by its base
// name without extension.
func readSample(paths []string) (qts.Sample, []string, error) {
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no input files: %w", qts.ErrEmptySample)
	}
	sample := make(qts.Sample, len(paths))
	labels := make([]string, len(paths))
	for i, p := range paths {
		q, err := readSeries(p)
		if err != nil {
			return nil, nil, err
		}
		sample[i] = q
		labels[i] = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}

	return sample, labels, nil
}

func readSeries(path string) (qts.QTS, error) {
	f, err := os.Open(path)
	if err != nil {
		return qts.QTS{}, err
	}
	defer f.Close()

	q, err := qts.ReadCSV(f)
	if err != nil {
		return qts.QTS{}, fmt.Errorf("%s: %w", path, err)
	}

	return q, nil
}

func writeSeries(path string, q qts.QTS) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := qts.WriteCSV(f, q); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
