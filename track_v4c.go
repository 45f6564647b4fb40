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

import "math"

import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

// Virtual 4C: contacts of the viewpoint with every bin of the region,
// averaged over the bins covered by the viewpoint.
type ViewpointTrack struct {
  Name      string
  Style     Style
  Source    DataSource
  Viewpoint Locus
  Matrix    ContactMatrix
}

func (track *ViewpointTrack) GetName() string {
  return track.Name
}

func (track *ViewpointTrack) GetKind() TrackKind {
  return TrackViewpoint
}

func (track *ViewpointTrack) GetRole() TrackRole {
  return RoleViewpoint
}

func (track *ViewpointTrack) GetStyle() Style {
  return track.Style
}

func (track *ViewpointTrack) Profile(region Locus) (plotter.XYs, error) {
  block, err := track.Matrix.Matrix(track.Viewpoint, region)
  if err != nil {
    return nil, err
  }
  xys := make(plotter.XYs, block.Cols())
  for j := range xys {
    sum := 0.0
    for i := 0; i < block.Rows(); i++ {
      if v := block.Values[i][j]; !math.IsNaN(v) {
        sum += v
      }
    }
    xys[j].X = float64(block.ColFrom) + (float64(j) + 0.5)*float64(block.BinSize)
    if block.Rows() > 0 {
      xys[j].Y = sum/float64(block.Rows())
    }
  }
  return xys, nil
}

func (track *ViewpointTrack) Draw(region Locus, scales ScaleGroups) (*Panel, error) {
  if track.Viewpoint.Seqname != region.Seqname {
    return nil, &InvalidIntervalError{Input: track.Viewpoint.String(), Reason: "viewpoint and region are on different chromosomes"}
  }
  xys, err := track.Profile(region)
  if err != nil {
    return nil, err
  }
  max := 0.0
  for _, xy := range xys {
    max = math.Max(max, xy.Y)
  }
  p := newPanelPlot(region, track.Style)
  if len(xys) > 0 {
    line, err := plotter.NewLine(xys)
    if err != nil {
      return nil, err
    }
    line.LineStyle.Color = track.Style.RGBA()
    line.LineStyle.Width = vg.Points(0.75)
    if track.Style.Fill {
      line.FillColor = track.Style.RGBA()
    }
    p.Add(line)
  }
  fixXRange(p, region)
  p.Y.Min = 0
  p.Y.Max = max
  if track.Style.VMax > 0 {
    p.Y.Max = track.Style.VMax
  }
  if p.Y.Max <= 0 {
    p.Y.Max = 1
  }
  return &Panel{Track: track, Plot: p, Aspect: track.Style.Aspect}, nil
}
