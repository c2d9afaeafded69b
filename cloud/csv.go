// SPDX-License-Identifier: MIT

package cloud

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadCSV parses one point per record. Lines starting with '#' are comments.
// Every record must have the same number of numeric fields.
//
// Errors: ErrParse (wrapped with line context) for malformed input, ErrEmpty for
// input without records, ErrNaNInf for non-finite values.
func ReadCSV(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 0 // first record fixes the width

	var (
		data []float64
		rows int
		cols int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrParse)
		}
		if rows == 0 {
			cols = len(rec)
		}
		for k, field := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if perr != nil {
				return nil, fmt.Errorf("record %d field %d: %v: %w", rows+1, k+1, perr, ErrParse)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 || cols == 0 {
		return nil, ErrEmpty
	}

	m := mat.NewDense(rows, cols, data)
	if err := Validate(m); err != nil {
		return nil, err
	}

	return m, nil
}

// ReadCSVFile opens path and delegates to ReadCSV.
func ReadCSVFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
