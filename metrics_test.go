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

import   "os"
import   "path/filepath"
import   "strings"
import   "testing"
import   "time"

import   "github.com/prometheus/client_golang/prometheus/testutil"
import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestMetrics1(t *testing.T) {
  m := NewMetrics()
  m.RegionDone("ok")
  m.RegionDone("ok")
  m.RegionDone("skipped")
  m.PanelDrawn(TrackLine)
  m.ObserveFigure(2*time.Second)

  assert.Equal(t, 2.0, testutil.ToFloat64(m.regions.WithLabelValues("ok")))
  assert.Equal(t, 1.0, testutil.ToFloat64(m.regions.WithLabelValues("skipped")))
  assert.Equal(t, 1.0, testutil.ToFloat64(m.panels .WithLabelValues("line")))

  filename := filepath.Join(t.TempDir(), "hicfigures.prom")
  require.NoError(t, m.WriteTextfile(filename))

  b, err := os.ReadFile(filename)
  require.NoError(t, err)
  assert.True(t, strings.Contains(string(b), `hicfigures_regions_total{status="ok"} 2`))
  assert.True(t, strings.Contains(string(b), "hicfigures_figure_seconds_count 1"))
}

func TestMetricsNil(t *testing.T) {
  var m *Metrics
  m.RegionDone("ok")
  m.PanelDrawn(TrackGenes)
  m.ObserveFigure(time.Second)
  assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "nil.prom")))
}

func TestMetricsInvalid(t *testing.T) {
  err := NewMetrics().WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "m.prom"))
  var target *IOError
  assert.ErrorAs(t, err, &target)
}
