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
import "os"

/* -------------------------------------------------------------------------- */

type Config struct {
  DataDir   string
  OutputDir string
  Format    string
  // figure width in inches
  Width     float64
  Threads   int
  KeepGoing bool
  PolII     bool
  Verbose   int
  // log destination, os.Stderr if nil
  Stderr    io.Writer
}

func DefaultConfig() Config {
  return Config{
    DataDir  : ".",
    OutputDir: "figures/figure_4_panels",
    Format   : "pdf",
    Width    : 6,
    Threads  : 1 }
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    w := config.Stderr
    if w == nil {
      w = os.Stderr
    }
    fmt.Fprintf(w, format, args...)
  }
}
