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

import "image/color"

import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"

/* -------------------------------------------------------------------------- */

// Translucent band over the viewpoint interval that connects two panels.
// The highlight never reads data, it is positioned using the coordinate
// systems of the two referenced panels.
type HighlightTrack struct {
  Name      string
  Style     Style
  Viewpoint Locus
  First     Track
  Second    Track
}

func (track *HighlightTrack) GetName() string {
  return track.Name
}

func (track *HighlightTrack) GetKind() TrackKind {
  return TrackHighlight
}

func (track *HighlightTrack) GetRole() TrackRole {
  return RoleHighlight
}

func (track *HighlightTrack) GetStyle() Style {
  return track.Style
}

func (track *HighlightTrack) Draw(region Locus, scales ScaleGroups) (*Panel, error) {
  return &Panel{Track: track}, nil
}

func (track *HighlightTrack) DrawOverlay(c draw.Canvas, layout map[Track]PanelLayout) {
  l1, ok1 := layout[track.First]
  l2, ok2 := layout[track.Second]
  if !ok1 || !ok2 {
    return
  }
  x0 := l1.X(float64(track.Viewpoint.From))
  x1 := l1.X(float64(track.Viewpoint.To))
  // at least a hairline if the viewpoint is tiny
  if x1 - x0 < vg.Points(0.5) {
    x1 = x0 + vg.Points(0.5)
  }
  // the band never leaves the data area
  if x0 < l1.Data.Min.X {
    x0 = l1.Data.Min.X
  }
  if x1 > l1.Data.Max.X {
    x1 = l1.Data.Max.X
  }
  if x1 <= x0 {
    return
  }
  top    := l1.Data.Max.Y
  bottom := l2.Data.Min.Y
  if l2.Data.Max.Y > top {
    top = l2.Data.Max.Y
  }
  if l1.Data.Min.Y < bottom {
    bottom = l1.Data.Min.Y
  }
  rgba := track.Style.RGBA()
  clr  := color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: 0x50}
  c.FillPolygon(clr, []vg.Point{
    {X: x0, Y: bottom},
    {X: x1, Y: bottom},
    {X: x1, Y: top   },
    {X: x0, Y: top   } })
}
