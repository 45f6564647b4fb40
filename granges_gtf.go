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

/* i/o
 * -------------------------------------------------------------------------- */

// Read GTF records (gene transfer format). The feature column (exon, CDS,
// gene, ...) is stored as meta column `feature', each requested optional
// attribute as string meta column of the same name. Records that lack a
// requested attribute get an empty string. If features is non-empty only
// records of the given feature types are kept. GTF coordinates are
// 1-based and closed, they are converted to [start-1, end).
func (g *GRanges) ReadGTF(r io.Reader, optNames []string, features ...string) error {
  scanner := newLineScanner(r)

  keep := make(map[string]bool)
  for _, f := range features {
    keep[f] = true
  }
  seqnames := []string{}
  feature  := []string{}
  from     := []int{}
  to       := []int{}
  strand   := []byte{}
  optional := make([][]string, len(optNames))

  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if len(line) == 0 || line[0] == '#' {
      continue
    }
    fields := fieldsQuoted(line)
    if len(fields) < 8 {
      return fmt.Errorf("ReadGTF(): line %d has less than eight columns", i)
    }
    if len(keep) > 0 && !keep[fields[2]] {
      continue
    }
    start, err := strconv.ParseInt(fields[3], 10, 64); if err != nil {
      return fmt.Errorf("ReadGTF(): line %d: %w", i, err)
    }
    end, err := strconv.ParseInt(fields[4], 10, 64); if err != nil {
      return fmt.Errorf("ReadGTF(): line %d: %w", i, err)
    }
    if start < 1 || start > end {
      return fmt.Errorf("ReadGTF(): line %d: invalid coordinates", i)
    }
    s := byte('*')
    if fields[6] == "+" || fields[6] == "-" {
      s = fields[6][0]
    }
    attributes := fields[8:]
    if len(attributes) % 2 == 1 {
      return fmt.Errorf("ReadGTF(): line %d: invalid attribute list", i)
    }
    for j, name := range optNames {
      value := ""
      for k := 0; k < len(attributes); k += 2 {
        if attributes[k] == name {
          value = attributes[k+1]; break
        }
      }
      optional[j] = append(optional[j], value)
    }
    seqnames = append(seqnames, fields[0])
    feature  = append(feature,  fields[2])
    from     = append(from,     int(start)-1)
    to       = append(to,       int(end))
    strand   = append(strand,   s)
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  *g = NewGRanges(seqnames, from, to, strand)
  g.AddMeta("feature", feature)

  for j, name := range optNames {
    g.AddMeta(name, optional[j])
  }
  return nil
}

func (g *GRanges) ImportGTF(filename string, optNames []string, features ...string) error {
  f, err := openText(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  if err := g.ReadGTF(f, optNames, features...); err != nil {
    return fmt.Errorf("reading `%s' failed: %w", filename, err)
  }
  return nil
}
