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

import   "errors"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestLocus1(t *testing.T) {
  l, err := ParseLocus("2L:10,100,000-10,300,000")
  require.NoError(t, err)

  if l.Seqname != "2L" || l.From != 10100000 || l.To != 10300000 {
    t.Error("TestLocus1 failed!")
  }
  if l.Length() != 200000 {
    t.Error("TestLocus1 failed!")
  }
}

func TestLocus2(t *testing.T) {
  l, err := ParseLocus("X:16782435-16784434")
  require.NoError(t, err)
  assert.Equal(t, NewLocus("X", 16782435, 16784434), l)
  assert.Equal(t, "X:16782435-16784434", l.String())
}

func TestLocusInvalid(t *testing.T) {
  for _, str := range []string{
    "2L:300-100",
    "2L:100-100",
    "chr2L:100-200",
    "2L:100",
    "2L100-200",
    "2L:1,00-200",
    "2L:1000,000-2,000,000",
    "2L:,100-200",
    "2L:abc-200",
    "2L:-5-200",
  } {
    _, err := ParseLocus(str)
    var target *InvalidIntervalError
    if !errors.As(err, &target) {
      t.Errorf("TestLocusInvalid failed for `%s'", str)
      continue
    }
    assert.Equal(t, str, target.Input)
  }
}

func TestLocusOverlaps(t *testing.T) {
  a := NewLocus("2R", 100, 200)
  b := NewLocus("2R", 199, 300)
  c := NewLocus("2R", 200, 300)
  d := NewLocus("3R", 100, 200)

  assert.True (t, a.Overlaps(b))
  assert.False(t, a.Overlaps(c))
  assert.False(t, a.Overlaps(d))
  assert.True (t, NewLocus("2R", 0, 1000).Contains(a))
  assert.False(t, a.Contains(b))
}

func TestRange1(t *testing.T) {
  r := NewRange(10, 20)
  s := NewRange(15, 30)

  assert.Equal(t, NewRange(15, 20), r.Intersection(s))
  assert.Equal(t, "[10 20)", r.String())
  assert.Panics(t, func() { NewRange(20, 10) })
}
