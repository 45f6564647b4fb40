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

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"

/* -------------------------------------------------------------------------- */

type TrackKind int

const (
  TrackContactMap TrackKind = iota
  TrackLine
  TrackGenes
  TrackFeatures
  TrackViewpoint
  TrackHighlight
)

func (kind TrackKind) String() string {
  switch kind {
  case TrackContactMap: return "contact-map"
  case TrackLine      : return "line"
  case TrackGenes     : return "gene-model"
  case TrackFeatures  : return "feature"
  case TrackViewpoint : return "viewpoint"
  case TrackHighlight : return "highlight"
  }
  return fmt.Sprintf("kind(%d)", int(kind))
}

/* -------------------------------------------------------------------------- */

// Stable tag of a track, post-render adjustments are selected by role
// and never by position in the stack.
type TrackRole int

const (
  RoleContactMap TrackRole = iota
  RoleExpression
  RoleAcetylation
  RoleRepression
  RolePolII
  RoleEnhancers
  RoleViewpoint
  RoleHighlight
  RoleGeneModel
  RoleOther
)

func (role TrackRole) String() string {
  switch role {
  case RoleContactMap : return "contact-map"
  case RoleExpression : return "expression"
  case RoleAcetylation: return "acetylation"
  case RoleRepression : return "repression"
  case RolePolII      : return "polii"
  case RoleEnhancers  : return "enhancers"
  case RoleViewpoint  : return "viewpoint"
  case RoleHighlight  : return "highlight"
  case RoleGeneModel  : return "gene-model"
  }
  return "other"
}

func roleOf(assay Assay) TrackRole {
  switch assay {
  case AssayContactMap: return RoleContactMap
  case AssayRNASeq    : return RoleExpression
  case AssayH3K27ac   : return RoleAcetylation
  case AssayH3K27me3  : return RoleRepression
  case AssayPolII     : return RolePolII
  case AssayEnhancers : return RoleEnhancers
  case AssayGeneModels: return RoleGeneModel
  }
  return RoleOther
}

/* -------------------------------------------------------------------------- */

type Track interface {
  GetName () string
  GetKind () TrackKind
  GetRole () TrackRole
  GetStyle() Style
  // Draw the track over the given interval. Tracks that contribute to a
  // shared scale report their maximum to the matching group.
  Draw(region Locus, scales ScaleGroups) (*Panel, error)
}

// Tracks that do not occupy a row of their own but are drawn on top of
// other panels once the figure layout is known.
type Overlay interface {
  Track
  DrawOverlay(c draw.Canvas, layout map[Track]PanelLayout)
}

/* -------------------------------------------------------------------------- */

// Visual result of drawing one track. Overlay panels have no plot.
type Panel struct {
  Track    Track
  Plot    *plot.Plot
  Aspect   float64
  Despined bool
}

func (panel *Panel) IsOverlay() bool {
  return panel.Plot == nil
}

func (panel *Panel) SetYLimit(min, max float64) {
  if panel.Plot == nil {
    return
  }
  panel.Plot.Y.Min = min
  panel.Plot.Y.Max = max
}

func (panel *Panel) YLimit() (float64, float64) {
  if panel.Plot == nil {
    return math.NaN(), math.NaN()
  }
  return panel.Plot.Y.Min, panel.Plot.Y.Max
}

// Remove the top and right borders. Plots are drawn without them, so
// only the flag is recorded and the bottom and left axis lines stay.
func (panel *Panel) Despine() {
  panel.Despined = true
}

// Only the bottom panel of a figure carries x tick labels.
func (panel *Panel) HideXTicks() {
  if panel.Plot == nil {
    return
  }
  panel.Plot.X.Tick.Marker = plot.ConstantTicks([]plot.Tick{})
  panel.Plot.X.Tick.Length = 0
}

func (panel *Panel) ShowXTicks() {
  if panel.Plot == nil {
    return
  }
  panel.Plot.X.Tick.Marker = genomicTicks{}
  panel.Plot.X.Tick.Length = vg.Points(4)
  panel.Plot.X.LineStyle.Width = vg.Points(0.5)
}

// Position of a drawn panel on the figure canvas.
type PanelLayout struct {
  Panel *Panel
  Data  draw.Canvas
}

// Canvas x coordinate of a genomic position.
func (layout PanelLayout) X(position float64) vg.Length {
  return layout.Data.X(layout.Panel.Plot.X.Norm(position))
}

/* -------------------------------------------------------------------------- */

func newPanelPlot(region Locus, style Style) *plot.Plot {
  p := plot.New()
  p.Title.Text = style.Title
  p.X.Min = float64(region.From)
  p.X.Max = float64(region.To)
  p.X.Tick.Marker = genomicTicks{}
  p.X.Padding = 0
  p.Y.Padding = 0
  if style.NYTicks > 0 {
    p.Y.Tick.Marker = nYTicks{style.NYTicks}
  }
  if !style.XTicks {
    p.HideX()
  }
  return p
}

// Fix the x range to the region after plotters were added, plotters
// extend the range to their data otherwise.
func fixXRange(p *plot.Plot, region Locus) {
  p.X.Min = float64(region.From)
  p.X.Max = float64(region.To)
}

/* tickers
 * -------------------------------------------------------------------------- */

// Exactly n major ticks from min to max, no minor ticks.
type nYTicks struct {
  N int
}

func (t nYTicks) Ticks(min, max float64) []plot.Tick {
  if t.N == 1 || max <= min {
    return []plot.Tick{{Value: max, Label: formatTick(max)}}
  }
  ticks := make([]plot.Tick, t.N)
  for i := 0; i < t.N; i++ {
    v := min + float64(i)*(max-min)/float64(t.N-1)
    ticks[i] = plot.Tick{Value: v, Label: formatTick(v)}
  }
  return ticks
}

func formatTick(v float64) string {
  return fmt.Sprintf("%.3g", v)
}

// Genomic positions labeled in Mb, e.g. `12.95Mb'.
type genomicTicks struct{}

func (genomicTicks) Ticks(min, max float64) []plot.Tick {
  ticks := []plot.Tick{}
  for _, t := range (plot.DefaultTicks{}).Ticks(min, max) {
    if t.IsMinor() {
      continue
    }
    ticks = append(ticks, plot.Tick{Value: t.Value, Label: fmt.Sprintf("%gMb", t.Value/1e6)})
  }
  return ticks
}

/* -------------------------------------------------------------------------- */

var colorGray = color.RGBA{R: 128, G: 128, B: 128, A: 255}
