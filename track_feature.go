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
import "sync"

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/text"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"

/* -------------------------------------------------------------------------- */

// Intervals of a BED file drawn as boxes, e.g. candidate enhancers.
type FeatureTrack struct {
  Name    string
  Role    TrackRole
  Style   Style
  Source  DataSource
  once    sync.Once
  ranges  GRanges
  index   GRangesIndex
  err     error
}

func (track *FeatureTrack) GetName() string {
  return track.Name
}

func (track *FeatureTrack) GetKind() TrackKind {
  return TrackFeatures
}

func (track *FeatureTrack) GetRole() TrackRole {
  return track.Role
}

func (track *FeatureTrack) GetStyle() Style {
  return track.Style
}

func (track *FeatureTrack) load() error {
  track.once.Do(func() {
    if err := track.ranges.ImportBed(track.Source.Filename); err != nil {
      track.err = err; return
    }
    track.index, track.err = NewGRangesIndex(track.ranges)
  })
  return track.err
}

func (track *FeatureTrack) Draw(region Locus, scales ScaleGroups) (*Panel, error) {
  if err := track.load(); err != nil {
    return nil, err
  }
  boxes := featureBoxes{Color: track.Style.RGBA()}
  names := track.ranges.GetMetaStr("name")
  for _, i := range track.index.Query(region) {
    boxes.Ranges = append(boxes.Ranges, track.ranges.Ranges[i])
    if track.Style.ShowLabels && names != nil {
      boxes.Labels = append(boxes.Labels, names[i])
    }
  }
  p := newPanelPlot(region, track.Style)
  p.Add(boxes)
  p.HideY()
  p.Y.Min = 0
  p.Y.Max = 1
  return &Panel{Track: track, Plot: p, Aspect: track.Style.Aspect}, nil
}

/* -------------------------------------------------------------------------- */

type featureBoxes struct {
  Ranges []Range
  Labels []string
  Color  color.Color
}

func (boxes featureBoxes) Plot(c draw.Canvas, plt *plot.Plot) {
  x, y := plt.Transforms(&c)
  for i, r := range boxes.Ranges {
    pts := []vg.Point{
      {X: x(float64(r.From)), Y: y(0.1)},
      {X: x(float64(r.To  )), Y: y(0.1)},
      {X: x(float64(r.To  )), Y: y(0.9)},
      {X: x(float64(r.From)), Y: y(0.9)} }
    // keep very short features visible
    if pts[1].X - pts[0].X < vg.Points(0.5) {
      pts[1].X = pts[0].X + vg.Points(0.5)
      pts[2].X = pts[1].X
    }
    if clipped := c.ClipPolygonXY(pts); len(clipped) > 0 {
      c.FillPolygon(boxes.Color, clipped)
    }
    if i < len(boxes.Labels) {
      sty := plt.X.Tick.Label
      sty.XAlign = text.XLeft
      c.FillText(sty, vg.Point{X: pts[0].X, Y: y(1)}, boxes.Labels[i])
    }
  }
}
