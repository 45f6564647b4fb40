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

import "sort"

import "github.com/biogo/store/interval"

/* -------------------------------------------------------------------------- */

type rangeEntry struct {
  from, to int
  index    int
}

func (e rangeEntry) Overlap(b interval.IntRange) bool {
  return e.from < b.End && b.Start < e.to
}

func (e rangeEntry) ID() uintptr {
  return uintptr(e.index)
}

func (e rangeEntry) Range() interval.IntRange {
  return interval.IntRange{Start: e.from, End: e.to}
}

/* -------------------------------------------------------------------------- */

// Interval trees over a GRanges object, one tree per sequence.
type GRangesIndex struct {
  trees map[string]*interval.IntTree
}

func NewGRangesIndex(g GRanges) (GRangesIndex, error) {
  trees := make(map[string]*interval.IntTree)
  for i := 0; i < g.Length(); i++ {
    tree, ok := trees[g.Seqnames[i]]
    if !ok {
      tree = &interval.IntTree{}
      trees[g.Seqnames[i]] = tree
    }
    if err := tree.Insert(rangeEntry{g.Ranges[i].From, g.Ranges[i].To, i}, true); err != nil {
      return GRangesIndex{}, err
    }
  }
  for _, tree := range trees {
    tree.AdjustRanges()
  }
  return GRangesIndex{trees}, nil
}

// Indices of all ranges overlapping the query, in increasing order.
func (idx GRangesIndex) Query(locus Locus) []int {
  tree, ok := idx.trees[locus.Seqname]
  if !ok || locus.Length() == 0 {
    return nil
  }
  r := []int{}
  for _, e := range tree.Get(rangeEntry{locus.From, locus.To, -1}) {
    r = append(r, e.(rangeEntry).index)
  }
  sort.Ints(r)
  return r
}
