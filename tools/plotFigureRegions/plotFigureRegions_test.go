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

package main

/* -------------------------------------------------------------------------- */

import   "path/filepath"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

import . "github.com/dvhic/hicfigures"

/* -------------------------------------------------------------------------- */

func TestPlotFigureRegionsFailure(t *testing.T) {
  config := DefaultConfig()
  // no datasets, rendering the first region fails
  config.DataDir   = t.TempDir()
  config.OutputDir = t.TempDir()
  config.Format    = "svg"

  profileDir  := t.TempDir()
  metricsFile := filepath.Join(t.TempDir(), "hicfigures.prom")

  err := plotFigureRegions(config, Figure4Regions[:1], false, metricsFile, profileDir)
  require.Error(t, err)

  assert.FileExists(t, filepath.Join(profileDir, "cpu.pprof"))
  assert.FileExists(t, metricsFile)
}
