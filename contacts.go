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
import "sync"

/* -------------------------------------------------------------------------- */

// A block of a (symmetric) contact matrix. Row i covers the genomic bin
// [RowFrom + i*BinSize, RowFrom + (i+1)*BinSize), columns likewise.
type ContactBlock struct {
  BinSize int
  RowFrom int
  ColFrom int
  Values  [][]float64
}

func (block ContactBlock) Rows() int {
  return len(block.Values)
}

func (block ContactBlock) Cols() int {
  if len(block.Values) == 0 {
    return 0
  }
  return len(block.Values[0])
}

type ContactMatrix interface {
  GetBinSize() (int, error)
  // Intra-chromosomal block with rows covering `rows' and columns
  // covering `cols'.
  Matrix(rows, cols Locus) (ContactBlock, error)
}

/* -------------------------------------------------------------------------- */

type binPair struct {
  I, J int
}

// Contact matrix backed by a (gzip compressed) BEDPE dump with columns
// chrom1 start1 end1 chrom2 start2 end2 weight, as written by `fanc dump'.
// The dump is scanned once for each chromosome that is queried and only
// intra-chromosomal contacts of that chromosome are kept in memory.
type ContactDump struct {
  Filename string
  mutex    sync.Mutex
  binSize  int
  chroms   map[string]map[binPair]float64
}

func NewContactDump(filename string) *ContactDump {
  return &ContactDump{Filename: filename, chroms: make(map[string]map[binPair]float64)}
}

func (dump *ContactDump) GetBinSize() (int, error) {
  dump.mutex.Lock()
  defer dump.mutex.Unlock()
  if dump.binSize == 0 {
    if err := dump.load(""); err != nil {
      return 0, err
    }
  }
  return dump.binSize, nil
}

// Read contacts of the given chromosome. An empty seqname only determines
// the bin size from the first record.
func (dump *ContactDump) load(seqname string) error {
  f, err := openText(dump.Filename)
  if err != nil {
    return err
  }
  defer f.Close()

  contacts, binSize, err := readContacts(f, seqname)
  if err != nil {
    return fmt.Errorf("reading `%s' failed: %w", dump.Filename, err)
  }
  if binSize == 0 {
    return fmt.Errorf("reading `%s' failed: no contacts found", dump.Filename)
  }
  dump.binSize = binSize
  if seqname != "" {
    dump.chroms[seqname] = contacts
  }
  return nil
}

func readContacts(r io.Reader, seqname string) (map[binPair]float64, int, error) {
  scanner  := newLineScanner(r)
  contacts := make(map[binPair]float64)
  binSize  := 0

  for i := 1; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
      continue
    }
    if len(fields) < 7 {
      return nil, 0, fmt.Errorf("line %d has less than seven columns", i)
    }
    if binSize == 0 {
      s, err1 := strconv.Atoi(fields[1])
      e, err2 := strconv.Atoi(fields[2])
      if err1 != nil || err2 != nil || e <= s {
        return nil, 0, fmt.Errorf("line %d: invalid bin", i)
      }
      binSize = e - s
      if seqname == "" {
        return contacts, binSize, nil
      }
    }
    if fields[0] != seqname || fields[3] != seqname {
      continue
    }
    s1, err := strconv.Atoi(fields[1]); if err != nil {
      return nil, 0, fmt.Errorf("line %d: %w", i, err)
    }
    s2, err := strconv.Atoi(fields[4]); if err != nil {
      return nil, 0, fmt.Errorf("line %d: %w", i, err)
    }
    w, err := strconv.ParseFloat(fields[6], 64); if err != nil {
      return nil, 0, fmt.Errorf("line %d: %w", i, err)
    }
    b1, b2 := s1/binSize, s2/binSize
    if b1 > b2 {
      b1, b2 = b2, b1
    }
    contacts[binPair{b1, b2}] = w
  }
  if err := scanner.Err(); err != nil {
    return nil, 0, err
  }
  return contacts, binSize, nil
}

func (dump *ContactDump) Matrix(rows, cols Locus) (ContactBlock, error) {
  if rows.Seqname != cols.Seqname {
    return ContactBlock{}, fmt.Errorf("inter-chromosomal contacts are not supported")
  }
  dump.mutex.Lock()
  defer dump.mutex.Unlock()

  contacts, ok := dump.chroms[rows.Seqname]
  if !ok {
    if err := dump.load(rows.Seqname); err != nil {
      return ContactBlock{}, err
    }
    contacts = dump.chroms[rows.Seqname]
  }
  binSize := dump.binSize
  r0, r1  := divIntDown(rows.From, binSize), divIntUp(rows.To, binSize)
  c0, c1  := divIntDown(cols.From, binSize), divIntUp(cols.To, binSize)

  block := ContactBlock{BinSize: binSize, RowFrom: r0*binSize, ColFrom: c0*binSize}
  block.Values = make([][]float64, r1-r0)
  for i := r0; i < r1; i++ {
    block.Values[i-r0] = make([]float64, c1-c0)
    for j := c0; j < c1; j++ {
      p := binPair{i, j}
      if i > j {
        p = binPair{j, i}
      }
      block.Values[i-r0][j-c0] = contacts[p]
    }
  }
  return block, nil
}
