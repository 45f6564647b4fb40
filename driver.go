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

import "errors"

import "github.com/dvhic/hicfigures/lib/progress"

/* -------------------------------------------------------------------------- */

type FigureRenderer interface {
  ComposeAndRender(region RegionDescriptor) (string, error)
}

// Renders one figure per region, strictly in manifest order.
type RegionDriver struct {
  Config   Config
  Renderer FigureRenderer
  Metrics  *Metrics
  // optional status bar
  Progress *progress.Progress
}

// Failures confined to a single region. Missing datasets and output
// errors affect every region and are never skipped.
func IsRegionError(err error) bool {
  var ioErr      *IOError
  var datasetErr *UnknownDatasetError
  if errors.As(err, &ioErr) || errors.As(err, &datasetErr) {
    return false
  }
  var renderErr   *RenderError
  var intervalErr *InvalidIntervalError
  return errors.As(err, &renderErr) || errors.As(err, &intervalErr)
}

// Returns the written files. By default the first failure aborts the
// batch. With KeepGoing region errors are logged and the region is
// skipped; skipped regions are reported as *BatchError.
func (driver *RegionDriver) Run(regions []RegionDescriptor) ([]string, error) {
  files  := []string{}
  failed := &BatchError{}
  for i, region := range regions {
    if driver.Progress != nil {
      driver.Progress.Print(i, region.Name)
    }
    filename, err := driver.Renderer.ComposeAndRender(region)
    if err != nil {
      if !driver.Config.KeepGoing || !IsRegionError(err) {
        driver.Metrics.RegionDone("failed")
        return files, err
      }
      PrintStderr(driver.Config, 0, "Skipping %s: %v\n", region.Name, err)
      driver.Metrics.RegionDone("skipped")
      failed.Failed = append(failed.Failed, region.Name)
      failed.Errs   = append(failed.Errs, err)
      continue
    }
    driver.Metrics.RegionDone("ok")
    files = append(files, filename)
  }
  if driver.Progress != nil {
    driver.Progress.Print(len(regions), "")
  }
  if len(failed.Failed) > 0 {
    return files, failed
  }
  return files, nil
}
