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

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/palette"
import "gonum.org/v1/plot/palette/moreland"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"

/* -------------------------------------------------------------------------- */

// Contact map of the region drawn as a triangle rotated by 45 degrees,
// the diagonal lies on the x axis.
type ContactMapTrack struct {
  Name   string
  Style  Style
  Source DataSource
  Matrix ContactMatrix
}

func (track *ContactMapTrack) GetName() string {
  return track.Name
}

func (track *ContactMapTrack) GetKind() TrackKind {
  return TrackContactMap
}

func (track *ContactMapTrack) GetRole() TrackRole {
  return RoleContactMap
}

func (track *ContactMapTrack) GetStyle() Style {
  return track.Style
}

func (track *ContactMapTrack) Draw(region Locus, scales ScaleGroups) (*Panel, error) {
  block, err := track.Matrix.Matrix(region, region)
  if err != nil {
    return nil, err
  }
  cmap := palette.Reverse(moreland.BlackBody())
  cmap.SetMin(0)
  cmap.SetMax(1)

  p := newPanelPlot(region, track.Style)
  p.Add(triangleHeatMap{Block: block, Style: track.Style, ColorMap: cmap})
  p.HideY()
  p.Y.Min = 0
  p.Y.Max = float64(region.Length())/2
  return &Panel{Track: track, Plot: p, Aspect: track.Style.Aspect}, nil
}

/* -------------------------------------------------------------------------- */

type triangleHeatMap struct {
  Block    ContactBlock
  Style    Style
  ColorMap palette.ColorMap
}

func (h triangleHeatMap) Plot(c draw.Canvas, plt *plot.Plot) {
  x, y := plt.Transforms(&c)
  b    := float64(h.Block.BinSize)
  for i := 0; i < h.Block.Rows(); i++ {
    for j := 0; j < h.Block.Cols(); j++ {
      si := float64(h.Block.RowFrom) + float64(i)*b
      sj := float64(h.Block.ColFrom) + float64(j)*b
      // upper triangle only
      if sj < si {
        continue
      }
      v := h.Block.Values[i][j]
      if v <= 0 {
        continue
      }
      clr, err := h.ColorMap.At(h.Style.normalize(v))
      if err != nil {
        continue
      }
      cx := (si + sj)/2 + b/2
      cy := (sj - si)/2
      pts := []vg.Point{
        {X: x(cx - b/2), Y: y(cy      )},
        {X: x(cx      ), Y: y(cy + b/2)},
        {X: x(cx + b/2), Y: y(cy      )},
        {X: x(cx      ), Y: y(cy - b/2)} }
      if clipped := c.ClipPolygonXY(pts); len(clipped) > 0 {
        c.FillPolygon(clr, clipped)
      }
    }
  }
}
