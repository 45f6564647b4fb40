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
import "fmt"
import "strings"

/* -------------------------------------------------------------------------- */

var ErrScalePending  = errors.New("shared scale read before all tracks were rendered")
var ErrScaleResolved = errors.New("shared scale already resolved")

/* -------------------------------------------------------------------------- */

// No manifest entry exists for the requested (dataset, condition) pair.
type UnknownDatasetError struct {
  Name      string
  Condition string
}

func (err *UnknownDatasetError) Error() string {
  return fmt.Sprintf("unknown dataset `%s' for condition `%s'", err.Name, err.Condition)
}

/* -------------------------------------------------------------------------- */

type InvalidStyleError struct {
  Kind   string
  Reason string
}

func (err *InvalidStyleError) Error() string {
  if err.Kind == "" {
    return fmt.Sprintf("invalid track style: %s", err.Reason)
  }
  return fmt.Sprintf("invalid style for %s track: %s", err.Kind, err.Reason)
}

/* -------------------------------------------------------------------------- */

type InvalidIntervalError struct {
  Input  string
  Reason string
}

func (err *InvalidIntervalError) Error() string {
  return fmt.Sprintf("invalid interval `%s': %s", err.Input, err.Reason)
}

/* -------------------------------------------------------------------------- */

// A track or the plotting backend failed while drawing a figure.
type RenderError struct {
  Region string
  Track  string
  Err    error
}

func (err *RenderError) Error() string {
  if err.Track == "" {
    return fmt.Sprintf("rendering `%s' failed: %v", err.Region, err.Err)
  }
  return fmt.Sprintf("rendering track `%s' for `%s' failed: %v", err.Track, err.Region, err.Err)
}

func (err *RenderError) Unwrap() error {
  return err.Err
}

/* -------------------------------------------------------------------------- */

type IOError struct {
  Filename string
  Err      error
}

func (err *IOError) Error() string {
  return fmt.Sprintf("writing `%s' failed: %v", err.Filename, err.Err)
}

func (err *IOError) Unwrap() error {
  return err.Err
}

/* -------------------------------------------------------------------------- */

// Regions skipped by a batch that was allowed to continue after
// region-scoped failures.
type BatchError struct {
  Failed []string
  Errs   []error
}

func (err *BatchError) Error() string {
  return fmt.Sprintf("%d region(s) failed: %s", len(err.Failed), strings.Join(err.Failed, ", "))
}

func (err *BatchError) Unwrap() []error {
  return err.Errs
}
