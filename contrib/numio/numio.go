// Copyright 2025 go-qsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package numio reads and writes sequences of numbers as text.
//
// Input is a stream of decimal numbers separated by any whitespace. Output
// is one number per line in its shortest exact decimal form, so a list of
// integers round-trips unchanged:
//
//	values, err := numio.ReadFile("in.txt")   // "3\n6\n2\n9\n1\n"
//	qsort.SortSlice(values)
//	err = numio.WriteFile("out.txt", values)  // "1\n2\n3\n6\n9\n"
package numio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 * 1024 * 1024

// ErrNaN is the cause of a ParseError for a token that parses to NaN, which
// has no place in an ascending order.
var ErrNaN = errors.New("not a number has no ordering")

// ParseError reports a token that is not a usable number.
type ParseError struct {
	Line  int    // 1-based line number
	Token string // offending text
	Err   error  // underlying cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("numio: line %d: invalid number %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Read parses every whitespace-separated number in r.
// Empty input yields an empty, non-nil slice.
func Read(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	values := []float64{}
	line := 0
	for sc.Scan() {
		line++
		for _, tok := range strings.Fields(sc.Text()) {
			v, err := parse(tok)
			if err != nil {
				return nil, &ParseError{Line: line, Token: tok, Err: err}
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "numio: read")
	}
	return values, nil
}

func parse(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		// Unwrap *strconv.NumError, its message repeats the token.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, ErrNaN
	}
	return v, nil
}

// Write writes each value followed by a newline.
func Write(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, v := range values {
		buf = strconv.AppendFloat(buf[:0], v, 'f', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "numio: write")
		}
	}
	return errors.Wrap(bw.Flush(), "numio: write")
}

// ReadFile reads the numbers stored in the named file.
func ReadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "numio: open input")
	}
	defer f.Close()

	values, err := Read(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return values, nil
}

// WriteFile writes values to the named file, creating or truncating it.
func WriteFile(path string, values []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "numio: create output")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "numio: close %s", path)
		}
	}()

	if err := Write(f, values); err != nil {
		return errors.Wrap(err, path)
	}
	return nil
}
