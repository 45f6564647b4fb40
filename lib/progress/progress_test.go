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
package progress

/* -------------------------------------------------------------------------- */

import   "bytes"
import   "strings"
import   "testing"

import   "github.com/stretchr/testify/assert"

/* -------------------------------------------------------------------------- */

func TestProgress1(t *testing.T) {
  p := New(4, nil)

  s := p.Exec(1, "twi")
  assert.True (t, strings.Contains(s, " 25.00% (1/4) twi"))
  assert.False(t, strings.HasSuffix(s, "\n"))

  s = p.Exec(4, "")
  assert.True(t, strings.Contains(s, "100.00% (4/4)"))
  assert.True(t, strings.HasSuffix(s, "\n"))
  assert.Equal(t, p.LineWidth-2, strings.Count(s, ">"))
}

func TestProgress2(t *testing.T) {
  var buf bytes.Buffer
  p := New(2, &buf)
  p.Print(0, "sna")
  p.Print(2, "")
  assert.Equal(t, p.Exec(0, "sna") + p.Exec(2, ""), buf.String())

  // no writer, no output
  New(2, nil).Print(1, "")
}
