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
import "image/color"
import "math"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

type Norm int

const (
  NormLinear Norm = iota
  NormLog
)

func (n Norm) String() string {
  if n == NormLog {
    return "log"
  }
  return "linear"
}

/* -------------------------------------------------------------------------- */

// Visual configuration of a single track.
type Style struct {
  Color      string
  Fill       bool
  Norm       Norm
  VMin       float64
  VMax       float64
  Aspect     float64
  XTicks     bool
  MinorTicks bool
  NYTicks    int
  Title      string
  ShowLabels bool
}

// Parse colors of the form `#rrggbb', `#rrggbbaa' or `gray'.
func ParseColor(str string) (color.RGBA, error) {
  switch strings.ToLower(str) {
  case "gray", "grey":
    return colorGray, nil
  case "black", "":
    return color.RGBA{A: 255}, nil
  }
  s := strings.TrimPrefix(str, "#")
  if len(s) != 6 && len(s) != 8 {
    return color.RGBA{}, fmt.Errorf("invalid color `%s'", str)
  }
  v, err := strconv.ParseUint(s, 16, 32)
  if err != nil {
    return color.RGBA{}, fmt.Errorf("invalid color `%s'", str)
  }
  if len(s) == 6 {
    v = v << 8 | 0xff
  }
  return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (style Style) RGBA() color.RGBA {
  c, err := ParseColor(style.Color)
  if err != nil {
    return color.RGBA{A: 255}
  }
  return c
}

// Bounds are only checked for heatmaps and for tracks that set them.
func (style Style) normalized(kind TrackKind) bool {
  return kind == TrackContactMap || style.VMin != 0 || style.VMax != 0
}

func (style Style) Validate(kind TrackKind) error {
  fail := func(format string, args ...interface{}) error {
    return &InvalidStyleError{Kind: kind.String(), Reason: fmt.Sprintf(format, args...)}
  }
  if kind < TrackContactMap || kind > TrackHighlight {
    return &InvalidStyleError{Reason: fmt.Sprintf("unrecognized track kind `%d'", int(kind))}
  }
  if _, err := ParseColor(style.Color); err != nil {
    return fail("%v", err)
  }
  if math.IsNaN(style.VMin) || math.IsNaN(style.VMax) {
    return fail("bounds must be numbers")
  }
  if style.normalized(kind) {
    if style.VMin >= style.VMax {
      return fail("vmin (%g) must be smaller than vmax (%g)", style.VMin, style.VMax)
    }
    if style.Norm == NormLog && style.VMin <= 0 {
      return fail("log normalization requires a positive vmin")
    }
  }
  if style.Aspect <= 0 {
    return fail("aspect ratio must be positive")
  }
  if style.NYTicks < 0 {
    return fail("number of y ticks must not be negative")
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Map v to [0,1] with respect to the style's bounds and normalization.
func (style Style) normalize(v float64) float64 {
  if style.Norm == NormLog {
    if v <= 0 {
      return 0
    }
    lmin := math.Log10(style.VMin)
    lmax := math.Log10(style.VMax)
    return clamp((math.Log10(v) - lmin)/(lmax - lmin), 0, 1)
  }
  return clamp((v - style.VMin)/(style.VMax - style.VMin), 0, 1)
}
