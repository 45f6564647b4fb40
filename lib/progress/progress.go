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

import "fmt"
import "io"
import "strings"

/* -------------------------------------------------------------------------- */

// Status bar for a batch of n named items.
type Progress struct {
  N, LineWidth int
  Writer       io.Writer
}

func New(n int, writer io.Writer) Progress {
  return Progress{n, 40, writer}
}

/* -------------------------------------------------------------------------- */

const lineDel = "\033[2K\r"

// Status line after i of N items, the label names the current item.
func (progress Progress) Exec(i int, label string) string {
  var b strings.Builder

  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  // carriage return
  fmt.Fprintf(&b, "%s|", lineDel)

  for j := 1; j < progress.LineWidth-1; j++ {
    if float64(j)/float64(progress.LineWidth) < p {
      b.WriteString(">")
    } else {
      b.WriteString(" ")
    }
  }
  fmt.Fprintf(&b, "| %6.2f%% (%d/%d)", p*100, i, progress.N)
  if label != "" {
    fmt.Fprintf(&b, " %s", label)
  }
  // add newline if finished
  if i >= progress.N {
    b.WriteString("\n")
  }
  return b.String()
}

func (progress Progress) Print(i int, label string) {
  if progress.Writer == nil {
    return
  }
  fmt.Fprint(progress.Writer, progress.Exec(i, label))
}
