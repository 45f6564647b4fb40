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

import "bytes"
import "compress/zlib"
import "encoding/binary"
import "fmt"
import "io"
import "math"
import "os"
import "strings"
import "sync"

import "github.com/dvhic/hicfigures/lib/seekinghttp"

/* -------------------------------------------------------------------------- */

const BIGWIG_MAGIC  = 0x888FFC26
const CIRTREE_MAGIC = 0x78ca8c91
const IDX_MAGIC     = 0x2468ace0

const (
  BbiTypeBedGraph  = 1
  BbiTypeVariable  = 2
  BbiTypeFixed     = 3
)

/* -------------------------------------------------------------------------- */

// Anything that summarizes a signal over equally sized bins of an interval.
type SignalSource interface {
  QuerySlice(seqname string, from, to, bins int) ([]float64, error)
}

/* -------------------------------------------------------------------------- */

type BbiHeader struct {
  Magic             uint32
  Version           uint16
  ZoomLevels        uint16
  CtOffset          uint64
  DataOffset        uint64
  IndexOffset       uint64
  FieldCount        uint16
  DefinedFieldCount uint16
  SqlOffset         uint64
  SummaryOffset     uint64
  UncompressBufSize uint32
  ExtensionOffset   uint64
}

// Read the header and determine the byte order from the magic number.
func (header *BbiHeader) Read(reader io.Reader) (binary.ByteOrder, error) {
  buffer := make([]byte, 64)
  if _, err := io.ReadFull(reader, buffer); err != nil {
    return nil, err
  }
  var order binary.ByteOrder
  switch {
  case binary.LittleEndian.Uint32(buffer) == BIGWIG_MAGIC: order = binary.LittleEndian
  case binary.BigEndian   .Uint32(buffer) == BIGWIG_MAGIC: order = binary.BigEndian
  default:
    return nil, fmt.Errorf("not a BigWig file")
  }
  if err := binary.Read(bytes.NewReader(buffer), order, header); err != nil {
    return nil, err
  }
  if header.Version < 3 {
    return nil, fmt.Errorf("unsupported BigWig version `%d'", header.Version)
  }
  return order, nil
}

/* chromosome list
 * -------------------------------------------------------------------------- */

type bTreeHeader struct {
  Magic         uint32
  BlockSize     uint32
  KeySize       uint32
  ValueSize     uint32
  ItemCount     uint64
  Reserved      uint64
}

type bNodeHeader struct {
  IsLeaf        uint8
  Reserved      uint8
  Count         uint16
}

type chromEntry struct {
  Name  string
  Idx   uint32
  Size  uint32
}

func readChromTree(reader io.ReadSeeker, order binary.ByteOrder) ([]chromEntry, error) {
  header := bTreeHeader{}
  if err := binary.Read(reader, order, &header); err != nil {
    return nil, err
  }
  if header.Magic != CIRTREE_MAGIC {
    return nil, fmt.Errorf("invalid chromosome tree")
  }
  if header.ValueSize != 8 {
    return nil, fmt.Errorf("invalid chromosome list")
  }
  var entries []chromEntry
  var readVertex func() error
  readVertex = func() error {
    node := bNodeHeader{}
    if err := binary.Read(reader, order, &node); err != nil {
      return err
    }
    key := make([]byte, header.KeySize)
    for i := 0; i < int(node.Count); i++ {
      if _, err := io.ReadFull(reader, key); err != nil {
        return err
      }
      if node.IsLeaf != 0 {
        var value [2]uint32
        if err := binary.Read(reader, order, &value); err != nil {
          return err
        }
        entries = append(entries, chromEntry{strings.TrimRight(string(key), "\x00"), value[0], value[1]})
      } else {
        var position uint64
        if err := binary.Read(reader, order, &position); err != nil {
          return err
        }
        // save current position and jump to child vertex
        currentPosition, _ := reader.Seek(0, io.SeekCurrent)
        if _, err := reader.Seek(int64(position), io.SeekStart); err != nil {
          return err
        }
        if err := readVertex(); err != nil {
          return err
        }
        if _, err := reader.Seek(currentPosition, io.SeekStart); err != nil {
          return err
        }
      }
    }
    return nil
  }
  if err := readVertex(); err != nil {
    return nil, err
  }
  return entries, nil
}

/* data index
 * -------------------------------------------------------------------------- */

type rTreeHeader struct {
  Magic         uint32
  BlockSize     uint32
  NItems        uint64
  ChrIdxStart   uint32
  BaseStart     uint32
  ChrIdxEnd     uint32
  BaseEnd       uint32
  IdxSize       uint64
  NItemsPerSlot uint32
  Reserved      uint32
}

type rItem struct {
  ChrIdxStart uint32
  BaseStart   uint32
  ChrIdxEnd   uint32
  BaseEnd     uint32
  DataOffset  uint64
}

type RVertex struct {
  IsLeaf     bool
  Items    []rItem
  Sizes    []uint64
  Children []*RVertex
}

func (item rItem) overlaps(chrom uint32, from, to int) bool {
  // compare (chromosome, position) pairs lexicographically
  before := func(c1 uint32, p1 int, c2 uint32, p2 int) bool {
    return c1 < c2 || (c1 == c2 && p1 < p2)
  }
  return before(item.ChrIdxStart, int(item.BaseStart), chrom, to) &&
         before(chrom, from, item.ChrIdxEnd, int(item.BaseEnd))
}

func (vertex *RVertex) Read(reader io.ReadSeeker, order binary.ByteOrder) error {
  node := bNodeHeader{}
  if err := binary.Read(reader, order, &node); err != nil {
    return err
  }
  vertex.IsLeaf = node.IsLeaf != 0
  vertex.Items  = make([]rItem, node.Count)
  if vertex.IsLeaf {
    vertex.Sizes    = make([]uint64, node.Count)
  } else {
    vertex.Children = make([]*RVertex, node.Count)
  }
  for i := 0; i < int(node.Count); i++ {
    if err := binary.Read(reader, order, &vertex.Items[i]); err != nil {
      return err
    }
    if vertex.IsLeaf {
      if err := binary.Read(reader, order, &vertex.Sizes[i]); err != nil {
        return err
      }
    }
  }
  if !vertex.IsLeaf {
    for i := 0; i < int(node.Count); i++ {
      // seek to child position
      if _, err := reader.Seek(int64(vertex.Items[i].DataOffset), io.SeekStart); err != nil {
        return err
      }
      vertex.Children[i] = new(RVertex)
      if err := vertex.Children[i].Read(reader, order); err != nil {
        return err
      }
    }
  }
  return nil
}

/* data blocks
 * -------------------------------------------------------------------------- */

type BbiDataHeader struct {
  ChromId   uint32
  Start     uint32
  End       uint32
  Step      uint32
  Span      uint32
  Type      byte
  Reserved  byte
  ItemCount uint16
}

func (header *BbiDataHeader) ReadBuffer(buffer []byte, order binary.ByteOrder) {
  header.ChromId   = order.Uint32(buffer[ 0: 4])
  header.Start     = order.Uint32(buffer[ 4: 8])
  header.End       = order.Uint32(buffer[ 8:12])
  header.Step      = order.Uint32(buffer[12:16])
  header.Span      = order.Uint32(buffer[16:20])
  header.Type      = buffer[20]
  header.Reserved  = buffer[21]
  header.ItemCount = order.Uint16(buffer[22:24])
}

type bbiRecord struct {
  From, To int
  Value    float64
}

// Decode all records of a single (uncompressed) data block.
func decodeBlock(buffer []byte, order binary.ByteOrder) (BbiDataHeader, []bbiRecord, error) {
  header := BbiDataHeader{}
  if len(buffer) < 24 {
    return header, nil, fmt.Errorf("block length is shorter than 24 bytes")
  }
  header.ReadBuffer(buffer, order)
  buffer = buffer[24:]

  value := func(b []byte) float64 {
    return float64(math.Float32frombits(order.Uint32(b)))
  }
  var records []bbiRecord
  switch header.Type {
  case BbiTypeBedGraph:
    if len(buffer) % 12 != 0 {
      return header, nil, fmt.Errorf("bedGraph data block has invalid length")
    }
    for i := 0; i < len(buffer); i += 12 {
      records = append(records, bbiRecord{
        From : int(order.Uint32(buffer[i+0:i+4])),
        To   : int(order.Uint32(buffer[i+4:i+8])),
        Value: value(buffer[i+8:i+12]) })
    }
  case BbiTypeVariable:
    if len(buffer) % 8 != 0 {
      return header, nil, fmt.Errorf("variable step data block has invalid length")
    }
    for i := 0; i < len(buffer); i += 8 {
      from := int(order.Uint32(buffer[i+0:i+4]))
      records = append(records, bbiRecord{from, from + int(header.Span), value(buffer[i+4:i+8])})
    }
  case BbiTypeFixed:
    if len(buffer) % 4 != 0 {
      return header, nil, fmt.Errorf("fixed step data block has invalid length")
    }
    for i := 0; i < len(buffer); i += 4 {
      from := int(header.Start + uint32(i/4)*header.Step)
      records = append(records, bbiRecord{from, from + int(header.Span), value(buffer[i:i+4])})
    }
  default:
    return header, nil, fmt.Errorf("unsupported block type")
  }
  return header, records, nil
}

func uncompressSlice(data []byte) ([]byte, error) {
  z, err := zlib.NewReader(bytes.NewReader(data))
  if err != nil {
    return nil, err
  }
  defer z.Close()

  return io.ReadAll(z)
}

/* -------------------------------------------------------------------------- */

type BigWigReader struct {
  Seqnames []string
  Lengths  []int
  reader   io.ReaderAt
  order    binary.ByteOrder
  header   BbiHeader
  chroms   map[string]uint32
  index    RVertex
}

func NewBigWigReader(reader io.ReaderAt, size int64) (*BigWigReader, error) {
  bwr := BigWigReader{reader: reader, chroms: make(map[string]uint32)}
  r   := io.NewSectionReader(reader, 0, size)
  // parse header
  if order, err := bwr.header.Read(r); err != nil {
    return nil, err
  } else {
    bwr.order = order
  }
  // parse chromosome list, which is represented as a tree
  if _, err := r.Seek(int64(bwr.header.CtOffset), io.SeekStart); err != nil {
    return nil, err
  }
  entries, err := readChromTree(r, bwr.order)
  if err != nil {
    return nil, err
  }
  bwr.Seqnames = make([]string, len(entries))
  bwr.Lengths  = make([]int,    len(entries))
  for _, e := range entries {
    if int(e.Idx) >= len(entries) {
      return nil, fmt.Errorf("invalid chromosome index")
    }
    bwr.Seqnames[e.Idx] = e.Name
    bwr.Lengths [e.Idx] = int(e.Size)
    bwr.chroms[e.Name]  = e.Idx
  }
  // parse data index
  if _, err := r.Seek(int64(bwr.header.IndexOffset), io.SeekStart); err != nil {
    return nil, err
  }
  header := rTreeHeader{}
  if err := binary.Read(r, bwr.order, &header); err != nil {
    return nil, err
  }
  if header.Magic != IDX_MAGIC {
    return nil, fmt.Errorf("invalid bbi tree")
  }
  if err := bwr.index.Read(r, bwr.order); err != nil {
    return nil, err
  }
  return &bwr, nil
}

func OpenBigWig(filename string) (*BigWigReader, error) {
  if isRemote(filename) {
    r := seekinghttp.New(filename)
    size, err := r.Size()
    if err != nil {
      return nil, err
    }
    bwr, err := NewBigWigReader(r, size)
    if err != nil {
      return nil, fmt.Errorf("reading `%s' failed: %w", filename, err)
    }
    return bwr, nil
  }
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  info, err := f.Stat()
  if err != nil {
    f.Close()
    return nil, err
  }
  bwr, err := NewBigWigReader(f, info.Size())
  if err != nil {
    f.Close()
    return nil, fmt.Errorf("reading `%s' failed: %w", filename, err)
  }
  return bwr, nil
}

func (bwr *BigWigReader) Close() error {
  if c, ok := bwr.reader.(io.Closer); ok {
    return c.Close()
  }
  return nil
}

func (bwr *BigWigReader) readBlock(offset, size uint64) ([]byte, error) {
  block := make([]byte, size)
  if _, err := bwr.reader.ReadAt(block, int64(offset)); err != nil {
    return nil, err
  }
  if bwr.header.UncompressBufSize != 0 {
    return uncompressSlice(block)
  }
  return block, nil
}

func (bwr *BigWigReader) query(vertex *RVertex, chrom uint32, from, to int, f func(bbiRecord)) error {
  for i, item := range vertex.Items {
    if !item.overlaps(chrom, from, to) {
      continue
    }
    if !vertex.IsLeaf {
      if err := bwr.query(vertex.Children[i], chrom, from, to, f); err != nil {
        return err
      }
      continue
    }
    block, err := bwr.readBlock(item.DataOffset, vertex.Sizes[i])
    if err != nil {
      return err
    }
    header, records, err := decodeBlock(block, bwr.order)
    if err != nil {
      return err
    }
    if header.ChromId != chrom {
      continue
    }
    for _, record := range records {
      if record.From < to && from < record.To {
        f(record)
      }
    }
  }
  return nil
}

// Summarize the signal on [from, to) in the given number of equally sized
// bins. Each bin holds the coverage weighted mean of all overlapping
// records, bins without data are zero. Sequences not present in the file
// yield an all-zero result.
func (bwr *BigWigReader) QuerySlice(seqname string, from, to, bins int) ([]float64, error) {
  if bins <= 0 || from >= to {
    return nil, fmt.Errorf("QuerySlice(): invalid arguments")
  }
  sum := make([]float64, bins)
  cov := make([]float64, bins)
  chrom, ok := bwr.chroms[seqname]
  if !ok {
    return sum, nil
  }
  width := float64(to-from)/float64(bins)

  err := bwr.query(&bwr.index, chrom, from, to, func(record bbiRecord) {
    i0 := int(float64(iMax(record.From, from) - from)/width)
    i1 := int(math.Ceil(float64(iMin(record.To, to) - from)/width))
    for i := i0; i < iMin(i1, bins); i++ {
      b0 := float64(from) + float64(i  )*width
      b1 := float64(from) + float64(i+1)*width
      w  := math.Min(b1, float64(record.To)) - math.Max(b0, float64(record.From))
      if w > 0 {
        sum[i] += w*record.Value
        cov[i] += w
      }
    }
  })
  if err != nil {
    return nil, err
  }
  for i := 0; i < bins; i++ {
    if cov[i] > 0 {
      sum[i] /= cov[i]
    }
  }
  return sum, nil
}

/* -------------------------------------------------------------------------- */

// A bigWig file that is opened on first use. Safe for concurrent queries.
type LazyBigWig struct {
  Filename string
  once     sync.Once
  reader   *BigWigReader
  err      error
}

func NewLazyBigWig(filename string) *LazyBigWig {
  return &LazyBigWig{Filename: filename}
}

func (lazy *LazyBigWig) QuerySlice(seqname string, from, to, bins int) ([]float64, error) {
  lazy.once.Do(func() {
    lazy.reader, lazy.err = OpenBigWig(lazy.Filename)
  })
  if lazy.err != nil {
    return nil, lazy.err
  }
  return lazy.reader.QuerySlice(seqname, from, to, bins)
}

func (lazy *LazyBigWig) Close() error {
  if lazy.reader != nil {
    return lazy.reader.Close()
  }
  return nil
}
