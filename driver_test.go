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

import   "bytes"
import   "errors"
import   "fmt"
import   "testing"

import   "github.com/prometheus/client_golang/prometheus/testutil"
import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

import   "github.com/dvhic/hicfigures/lib/progress"

/* -------------------------------------------------------------------------- */

type testRenderer struct {
  calls []string
  fail  map[string]error
}

func (r *testRenderer) ComposeAndRender(region RegionDescriptor) (string, error) {
  r.calls = append(r.calls, region.Name)
  if err, ok := r.fail[region.Name]; ok {
    return "", err
  }
  return fmt.Sprintf("out/%s.pdf", region.Name), nil
}

func testRegions(names ...string) []RegionDescriptor {
  r := []RegionDescriptor{}
  for _, name := range names {
    r = append(r, RegionDescriptor{Name: name})
  }
  return r
}

/* -------------------------------------------------------------------------- */

func TestRegionDriver1(t *testing.T) {
  var status bytes.Buffer
  p := progress.New(3, &status)

  renderer := &testRenderer{}
  driver   := RegionDriver{Renderer: renderer, Metrics: NewMetrics(), Progress: &p}

  files, err := driver.Run(testRegions("a", "b", "c"))
  require.NoError(t, err)
  assert.Equal(t, []string{"a", "b", "c"}, renderer.calls)
  assert.Equal(t, []string{"out/a.pdf", "out/b.pdf", "out/c.pdf"}, files)
  assert.Equal(t, 3.0, testutil.ToFloat64(driver.Metrics.regions.WithLabelValues("ok")))
  assert.Contains(t, status.String(), "(3/3)")
}

func TestRegionDriverAbort(t *testing.T) {
  renderer := &testRenderer{fail: map[string]error{
    "b": &RenderError{Region: "b", Err: errors.New("broken")} }}
  driver   := RegionDriver{Renderer: renderer}

  files, err := driver.Run(testRegions("a", "b", "c"))
  var target *RenderError
  assert.ErrorAs(t, err, &target)
  // nothing after the failing region is attempted
  assert.Equal(t, []string{"a", "b"}, renderer.calls)
  assert.Equal(t, []string{"out/a.pdf"}, files)
}

func TestRegionDriverKeepGoing(t *testing.T) {
  renderer := &testRenderer{fail: map[string]error{
    "b": &RenderError{Region: "b", Err: errors.New("broken")},
    "c": &InvalidIntervalError{Input: "2L:5-1", Reason: "start must be smaller than end"} }}
  var stderr bytes.Buffer
  driver   := RegionDriver{
    Config  : Config{KeepGoing: true, Stderr: &stderr},
    Renderer: renderer,
    Metrics : NewMetrics() }

  files, err := driver.Run(testRegions("a", "b", "c", "d"))
  assert.Equal(t, []string{"a", "b", "c", "d"}, renderer.calls)
  assert.Equal(t, []string{"out/a.pdf", "out/d.pdf"}, files)

  var batch *BatchError
  require.ErrorAs(t, err, &batch)
  assert.Equal(t, []string{"b", "c"}, batch.Failed)
  var target *InvalidIntervalError
  assert.ErrorAs(t, err, &target)
  assert.Contains(t, stderr.String(), "Skipping b")
  assert.Equal(t, 2.0, testutil.ToFloat64(driver.Metrics.regions.WithLabelValues("skipped")))
}

// Output and dataset errors abort the batch even with keep-going.
func TestRegionDriverKeepGoingFatal(t *testing.T) {
  for _, fatal := range []error{
    &IOError{Filename: "out/b.pdf", Err: errors.New("disk full")},
    &UnknownDatasetError{Name: "rnaseq", Condition: "wildtype"},
    &RenderError{Region: "b", Err: &IOError{Filename: "x", Err: errors.New("disk full")}},
  } {
    renderer := &testRenderer{fail: map[string]error{"b": fatal}}
    driver   := RegionDriver{Config: Config{KeepGoing: true}, Renderer: renderer}

    _, err := driver.Run(testRegions("a", "b", "c"))
    assert.Equal(t, fatal, err)
    assert.Equal(t, []string{"a", "b"}, renderer.calls)
  }
}

func TestIsRegionError(t *testing.T) {
  assert.True (t, IsRegionError(&RenderError{Err: errors.New("x")}))
  assert.True (t, IsRegionError(fmt.Errorf("wrapped: %w", &InvalidIntervalError{})))
  assert.False(t, IsRegionError(&IOError{Err: errors.New("x")}))
  assert.False(t, IsRegionError(errors.New("x")))
}
