package seekinghttp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// SeekingHTTP uses a series of HTTP GETs with Range headers
// to implement io.ReadSeeker and io.ReaderAt. ReadAt may be
// called concurrently, Read and Seek share a single offset.
type SeekingHTTP struct {
	URL    string
	Client *http.Client
	// number of bytes fetched at least per request
	ChunkSize int

	mutex      sync.Mutex
	offset     int64
	size       int64
	last       []byte
	lastOffset int64
}

var _ io.ReadSeeker = (*SeekingHTTP)(nil)
var _ io.ReaderAt = (*SeekingHTTP)(nil)

// New initializes a SeekingHTTP for the given URL.
// The Client field may be set before the first read.
func New(url string) *SeekingHTTP {
	return &SeekingHTTP{URL: url, ChunkSize: 64 * 1024, size: -1}
}

func (s *SeekingHTTP) client() *http.Client {
	if s.Client == nil {
		return http.DefaultClient
	}
	return s.Client
}

func fmtRange(from, l int64) string {
	return fmt.Sprintf("bytes=%d-%d", from, from+l-1)
}

// cached returns the requested range if it lies within the last
// response.
func (s *SeekingHTTP) cached(buf []byte, off int64) bool {
	if s.last == nil || off < s.lastOffset {
		return false
	}
	end := off + int64(len(buf))
	if end > s.lastOffset+int64(len(s.last)) {
		return false
	}
	copy(buf, s.last[off-s.lastOffset:end-s.lastOffset])
	return true
}

func (s *SeekingHTTP) fetch(off, n int64) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Range", fmtRange(off, n))

	resp, err := s.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusPartialContent:
	case http.StatusRequestedRangeNotSatisfiable:
		return nil, io.EOF
	case http.StatusOK:
		// server ignored the range, skip to the offset
		if _, err := io.CopyN(io.Discard, resp.Body, off); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("GET %s: %s", s.URL, resp.Status)
	}
	var b bytes.Buffer
	if _, err := io.Copy(&b, io.LimitReader(resp.Body, n)); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// ReadAt reads len(buf) bytes into buf starting at offset off.
func (s *SeekingHTTP) ReadAt(buf []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("negative offset")
	}
	if len(buf) == 0 {
		return 0, nil
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cached(buf, off) {
		return len(buf), nil
	}
	// fetch more than what was asked for to reduce round-trips
	wanted := int64(len(buf))
	if wanted < int64(s.ChunkSize) {
		wanted = int64(s.ChunkSize)
	}
	data, err := s.fetch(off, wanted)
	if err != nil {
		return 0, err
	}
	s.last = data
	s.lastOffset = off

	n := copy(buf, data)
	if n < len(buf) {
		return n, io.EOF
	}
	return n, nil
}

func (s *SeekingHTTP) Read(buf []byte) (int, error) {
	n, err := s.ReadAt(buf, s.offset)
	s.offset += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

// Seek sets the offset for the next Read.
func (s *SeekingHTTP) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		s.offset = offset
	case io.SeekCurrent:
		s.offset += offset
	case io.SeekEnd:
		size, err := s.Size()
		if err != nil {
			return 0, err
		}
		s.offset = size + offset
	default:
		return 0, errors.New("invalid whence")
	}
	return s.offset, nil
}

// Size uses an HTTP HEAD to find out how many bytes are available in total.
func (s *SeekingHTTP) Size() (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.size >= 0 {
		return s.size, nil
	}
	resp, err := s.client().Head(s.URL)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HEAD %s: %s", s.URL, resp.Status)
	}
	if resp.ContentLength < 0 {
		return 0, errors.New("no content length for Size()")
	}
	s.size = resp.ContentLength
	return s.size, nil
}
