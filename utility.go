/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package hicfigures

/* -------------------------------------------------------------------------- */

import "bufio"
import "compress/gzip"
import "fmt"
import "io"
import "math"
import "os"
import "strings"
import "unicode"

import "github.com/dvhic/hicfigures/lib/seekinghttp"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

// Divide a by b, the result is rounded down.
func divIntDown(a, b int) int {
  return a/b
}

// Divide a by b, the result is rounded up.
func divIntUp(a, b int) int {
  return (a+b-1)/b
}

func clamp(x, min, max float64) float64 {
  return math.Max(min, math.Min(max, x))
}

/* -------------------------------------------------------------------------- */

// Files below an http(s) URL are read with range requests.
func isRemote(filename string) bool {
  return strings.HasPrefix(filename, "http://") || strings.HasPrefix(filename, "https://")
}

func isGzip(r *bufio.Reader) bool {
  b, err := r.Peek(2)
  if err != nil {
    return false
  }
  return b[0] == 31 && b[1] == 139
}

type readCloser struct {
  io.Reader
  closers []io.Closer
}

func (r readCloser) Close() error {
  var err error
  for i := len(r.closers)-1; i >= 0; i-- {
    if e := r.closers[i].Close(); e != nil && err == nil {
      err = e
    }
  }
  return err
}

// Open a local or remote text file for reading, gzip compressed files
// are decompressed transparently.
func openText(filename string) (io.ReadCloser, error) {
  var src io.Reader
  var closers []io.Closer
  if isRemote(filename) {
    src = seekinghttp.New(filename)
  } else {
    f, err := os.Open(filename)
    if err != nil {
      return nil, err
    }
    src, closers = f, []io.Closer{f}
  }
  r := bufio.NewReader(src)
  if !isGzip(r) {
    return readCloser{r, closers}, nil
  }
  g, err := gzip.NewReader(r)
  if err != nil {
    readCloser{nil, closers}.Close()
    return nil, fmt.Errorf("reading `%s' failed: %w", filename, err)
  }
  return readCloser{g, append(closers, g)}, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
  scanner := bufio.NewScanner(r)
  // GTF lines with many attributes exceed the default token size
  scanner.Buffer(make([]byte, 64*1024), 1024*1024)
  return scanner
}

/* -------------------------------------------------------------------------- */

func fieldsQuoted(line string) []string {
  // if quoted
  q := false
  f := func(r rune) bool {
    if r == '"' {
      q = !q
    }
    // A quote is treated as a white space so that it is removed from the
    // line. Otherwise a white space is removed only if q (quote) is false.
    return r == '"' || ((unicode.IsSpace(r) || r == ';') && q == false)
  }
  return strings.FieldsFunc(line, f)
}
