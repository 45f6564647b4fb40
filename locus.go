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

import "fmt"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Canonical chromosomes of the dm6 assembly, the only sequences present
// in the filtered datasets.
var Chromosomes = []string{"2L", "2R", "3L", "3R", "4", "X", "Y"}

func isChromosome(seqname string) bool {
  for _, s := range Chromosomes {
    if s == seqname {
      return true
    }
  }
  return false
}

/* -------------------------------------------------------------------------- */

// A genomic interval [From, To) on a single sequence.
type Locus struct {
  Seqname string
  Range
}

func NewLocus(seqname string, from, to int) Locus {
  return Locus{seqname, NewRange(from, to)}
}

// Parse a locus string of the form `chrom:start-end'. Coordinates may
// contain thousands separators, e.g. `2L:10,100,000-10,300,000'.
func ParseLocus(str string) (Locus, error) {
  fail := func(reason string) (Locus, error) {
    return Locus{}, &InvalidIntervalError{Input: str, Reason: reason}
  }
  seqname, coords, ok := strings.Cut(strings.TrimSpace(str), ":")
  if !ok {
    return fail("expected `chrom:start-end'")
  }
  if !isChromosome(seqname) {
    return fail(fmt.Sprintf("unknown chromosome `%s'", seqname))
  }
  fromStr, toStr, ok := strings.Cut(coords, "-")
  if !ok {
    return fail("expected `start-end'")
  }
  from, err := parseCoordinate(fromStr)
  if err != nil {
    return fail(fmt.Sprintf("invalid start `%s'", fromStr))
  }
  to, err := parseCoordinate(toStr)
  if err != nil {
    return fail(fmt.Sprintf("invalid end `%s'", toStr))
  }
  if from >= to {
    return fail("start must be smaller than end")
  }
  return NewLocus(seqname, from, to), nil
}

func parseCoordinate(str string) (int, error) {
  str = strings.TrimSpace(str)
  // thousands separators must separate groups of exactly three digits
  if groups := strings.Split(str, ","); len(groups) > 1 {
    for i, g := range groups {
      if (i == 0 && (len(g) == 0 || len(g) > 3)) || (i > 0 && len(g) != 3) {
        return 0, fmt.Errorf("misplaced thousands separator")
      }
    }
    str = strings.Join(groups, "")
  }
  v, err := strconv.ParseUint(str, 10, 32)
  if err != nil {
    return 0, err
  }
  return int(v), nil
}

/* -------------------------------------------------------------------------- */

func (l Locus) Overlaps(m Locus) bool {
  return l.Seqname == m.Seqname && l.Range.Overlaps(m.Range)
}

func (l Locus) Contains(m Locus) bool {
  return l.Seqname == m.Seqname && l.Range.Contains(m.Range)
}

func (l Locus) String() string {
  return fmt.Sprintf("%s:%d-%d", l.Seqname, l.From, l.To)
}
