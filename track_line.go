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

// A signal (bigWig) track drawn as a line.
type LineTrack struct {
  Name   string
  Role   TrackRole
  Class  ScaleClass
  Style  Style
  Source DataSource
  Signal SignalSource
  // maximal number of bins per figure
  Bins   int
}

func (track *LineTrack) GetName() string {
  return track.Name
}

func (track *LineTrack) GetKind() TrackKind {
  return TrackLine
}

func (track *LineTrack) GetRole() TrackRole {
  return track.Role
}

func (track *LineTrack) GetStyle() Style {
  return track.Style
}

func (track *LineTrack) Draw(region Locus, scales ScaleGroups) (*Panel, error) {
  bins := iMin(track.Bins, region.Length())
  if bins <= 0 {
    bins = iMin(1000, region.Length())
  }
  values, err := track.Signal.QuerySlice(region.Seqname, region.From, region.To, bins)
  if err != nil {
    return nil, err
  }
  width := float64(region.Length())/float64(len(values))
  xys   := make(plotter.XYs, len(values))
  max   := 0.0
  for i, v := range values {
    if math.IsNaN(v) || math.IsInf(v, 0) {
      v = 0
    }
    xys[i].X = float64(region.From) + (float64(i) + 0.5)*width
    xys[i].Y = v
    max = math.Max(max, v)
  }
  // a fixed upper bound takes precedence over the data
  if track.Style.VMax > 0 {
    max = track.Style.VMax
  }
  line, err := plotter.NewLine(xys)
  if err != nil {
    return nil, err
  }
  line.LineStyle.Color = track.Style.RGBA()
  line.LineStyle.Width = vg.Points(0.75)
  if track.Style.Fill {
    line.FillColor = track.Style.RGBA()
  }
  p := newPanelPlot(region, track.Style)
  p.Add(line)
  fixXRange(p, region)

  p.Y.Min = math.Min(0, track.Style.VMin)
  p.Y.Max = max
  if p.Y.Max <= p.Y.Min {
    p.Y.Max = p.Y.Min + 1
  }
  if err := scales.Observe(track.Class, track, max); err != nil {
    return nil, err
  }
  return &Panel{Track: track, Plot: p, Aspect: track.Style.Aspect}, nil
}
