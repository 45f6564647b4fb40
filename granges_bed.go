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
import "io"
import "strconv"
import "strings"

/* i/o
 * -------------------------------------------------------------------------- */

// Read GRanges from a Bed file with at least three columns. If a fourth
// column is present it is stored as meta column `name'. Track and browser
// lines as well as comments are skipped.
func (g *GRanges) ReadBed(r io.Reader) error {
  scanner := newLineScanner(r)

  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  strand   := []byte{}
  names    := []string{}
  hasNames := true

  for i := 1; scanner.Scan(); i++ {
    line   := scanner.Text()
    fields := strings.Fields(line)
    if len(fields) == 0 || fields[0] == "track" || fields[0] == "browser" || strings.HasPrefix(fields[0], "#") {
      continue
    }
    if len(fields) < 3 {
      return fmt.Errorf("ReadBed(): line %d has less than three columns", i)
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64); if err != nil {
      return fmt.Errorf("ReadBed(): line %d: %w", i, err)
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64); if err != nil {
      return fmt.Errorf("ReadBed(): line %d: %w", i, err)
    }
    if t1 > t2 {
      return fmt.Errorf("ReadBed(): line %d: start is larger than end", i)
    }
    s := byte('*')
    if len(fields) >= 6 && (fields[5] == "+" || fields[5] == "-") {
      s = fields[5][0]
    }
    if len(fields) >= 4 {
      names = append(names, fields[3])
    } else {
      hasNames = false
    }
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(t1))
    to       = append(to,       int(t2))
    strand   = append(strand,   s)
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *g = NewGRanges(seqnames, from, to, strand)

  if hasNames && len(names) > 0 {
    g.AddMeta("name", names)
  }
  return nil
}

func (g *GRanges) ImportBed(filename string) error {
  f, err := openText(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  if err := g.ReadBed(f); err != nil {
    return fmt.Errorf("reading `%s' failed: %w", filename, err)
  }
  return nil
}
