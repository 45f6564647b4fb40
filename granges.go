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

/* -------------------------------------------------------------------------- */

// A list of genomic ranges with optional string valued meta columns
// (e.g. feature names or GTF attributes).
type GRanges struct {
  Seqnames   []string
  Ranges     []Range
  Strand     []byte
  MetaName   []string
  MetaData [][]string
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewGRanges(seqnames []string, from, to []int, strand []byte) GRanges {
  n := len(seqnames)
  if len(  from) != n || len(    to) != n ||
    (len(strand) != 0 && len(strand) != n) {
    panic("NewGRanges(): invalid arguments!")
  }
  if len(strand) == 0 {
    strand = make([]byte, n)
    for i := 0; i < n; i++ {
      strand[i] = '*'
    }
  }
  ranges := make([]Range, n)
  for i := 0; i < n; i++ {
    // create range
    ranges[i] = NewRange(from[i], to[i])
    // check if strand is valid
    if strand[i] != '+' && strand[i] != '-' && strand[i] != '*' {
      panic("NewGRanges(): Invalid strand!")
    }
  }
  return GRanges{Seqnames: seqnames, Ranges: ranges, Strand: strand}
}

/* -------------------------------------------------------------------------- */

func (r *GRanges) Length() int {
  return len(r.Ranges)
}

func (r *GRanges) Row(i int) Locus {
  return Locus{r.Seqnames[i], r.Ranges[i]}
}

func (r *GRanges) Subset(indices []int) GRanges {
  n        := len(indices)
  seqnames := make([]string, n)
  ranges   := make([]Range,  n)
  strand   := make([]byte,   n)
  for i, j := range indices {
    seqnames[i] = r.Seqnames[j]
    ranges  [i] = r.Ranges  [j]
    strand  [i] = r.Strand  [j]
  }
  result := GRanges{Seqnames: seqnames, Ranges: ranges, Strand: strand}
  for k, name := range r.MetaName {
    data := make([]string, n)
    for i, j := range indices {
      data[i] = r.MetaData[k][j]
    }
    result.AddMeta(name, data)
  }
  return result
}

/* meta columns
 * -------------------------------------------------------------------------- */

func (r *GRanges) AddMeta(name string, data []string) error {
  if len(data) != r.Length() {
    return fmt.Errorf("meta column `%s' has invalid length", name)
  }
  for i, n := range r.MetaName {
    if n == name {
      r.MetaData[i] = data
      return nil
    }
  }
  r.MetaName = append(r.MetaName, name)
  r.MetaData = append(r.MetaData, data)
  return nil
}

// Returns nil if the meta column does not exist.
func (r *GRanges) GetMetaStr(name string) []string {
  for i, n := range r.MetaName {
    if n == name {
      return r.MetaData[i]
    }
  }
  return nil
}
