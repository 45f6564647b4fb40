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
import "sort"
import "sync"

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/text"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"

/* -------------------------------------------------------------------------- */

const geneGroupAttribute = "gene_symbol"

// Gene models from a GTF file. All exons of a gene are squashed into a
// single model, genes are packed into rows such that they do not overlap.
type GeneTrack struct {
  Name    string
  Style   Style
  Source  DataSource
  once    sync.Once
  exons   GRanges
  index   GRangesIndex
  err     error
}

type geneModel struct {
  Symbol string
  Strand byte
  Span   Range
  Exons  []Range
  Row    int
}

func (track *GeneTrack) GetName() string {
  return track.Name
}

func (track *GeneTrack) GetKind() TrackKind {
  return TrackGenes
}

func (track *GeneTrack) GetRole() TrackRole {
  return RoleGeneModel
}

func (track *GeneTrack) GetStyle() Style {
  return track.Style
}

func (track *GeneTrack) load() error {
  track.once.Do(func() {
    if err := track.exons.ImportGTF(track.Source.Filename, []string{geneGroupAttribute}, "exon"); err != nil {
      track.err = err; return
    }
    track.index, track.err = NewGRangesIndex(track.exons)
  })
  return track.err
}

// Squash exons overlapping the region by gene symbol and assign rows.
func (track *GeneTrack) models(region Locus) []*geneModel {
  symbols := track.exons.GetMetaStr(geneGroupAttribute)
  genes   := map[string]*geneModel{}
  result  := []*geneModel{}
  for _, i := range track.index.Query(region) {
    symbol := symbols[i]
    if symbol == "" {
      symbol = track.exons.Row(i).String()
    }
    r := track.exons.Ranges[i]
    if g, ok := genes[symbol]; ok {
      g.Span  = NewRange(iMin(g.Span.From, r.From), iMax(g.Span.To, r.To))
      g.Exons = append(g.Exons, r)
    } else {
      g = &geneModel{Symbol: symbol, Strand: track.exons.Strand[i], Span: r, Exons: []Range{r}}
      genes[symbol] = g
      result = append(result, g)
    }
  }
  sort.SliceStable(result, func(i, j int) bool {
    if result[i].Span.From != result[j].Span.From {
      return result[i].Span.From < result[j].Span.From
    }
    return result[i].Symbol < result[j].Symbol
  })
  // greedy row assignment
  ends := []int{}
  for _, g := range result {
    g.Row = -1
    for row, end := range ends {
      if end <= g.Span.From {
        g.Row = row; break
      }
    }
    if g.Row == -1 {
      g.Row = len(ends)
      ends  = append(ends, 0)
    }
    ends[g.Row] = g.Span.To
  }
  return result
}

func (track *GeneTrack) Draw(region Locus, scales ScaleGroups) (*Panel, error) {
  if err := track.load(); err != nil {
    return nil, err
  }
  models := track.models(region)
  rows   := 1
  for _, g := range models {
    rows = iMax(rows, g.Row+1)
  }
  p := newPanelPlot(region, track.Style)
  p.Add(geneModels{Models: models, Color: track.Style.RGBA(), Labels: track.Style.ShowLabels})
  p.HideY()
  p.Y.Min = 0
  p.Y.Max = float64(rows)
  return &Panel{Track: track, Plot: p, Aspect: track.Style.Aspect}, nil
}

/* -------------------------------------------------------------------------- */

type geneModels struct {
  Models []*geneModel
  Color  color.Color
  Labels bool
}

func (genes geneModels) Plot(c draw.Canvas, plt *plot.Plot) {
  x, y := plt.Transforms(&c)
  sty  := draw.LineStyle{Color: genes.Color, Width: vg.Points(0.5)}
  for _, g := range genes.Models {
    // rows are counted from the top
    center := plt.Y.Max - float64(g.Row) - 0.5
    line   := c.ClipLinesXY([]vg.Point{
      {X: x(float64(g.Span.From)), Y: y(center)},
      {X: x(float64(g.Span.To  )), Y: y(center)} })
    c.StrokeLines(sty, line...)
    if arrow := strandArrow(g, x, y(center), vg.Points(3)); arrow != nil {
      c.StrokeLines(sty, c.ClipLinesXY(arrow)...)
    }
    for _, e := range g.Exons {
      pts := []vg.Point{
        {X: x(float64(e.From)), Y: y(center-0.3)},
        {X: x(float64(e.To  )), Y: y(center-0.3)},
        {X: x(float64(e.To  )), Y: y(center+0.3)},
        {X: x(float64(e.From)), Y: y(center+0.3)} }
      if clipped := c.ClipPolygonXY(pts); len(clipped) > 0 {
        c.FillPolygon(genes.Color, clipped)
      }
    }
    if genes.Labels {
      label := plt.X.Tick.Label
      label.XAlign = text.XLeft
      label.YAlign = text.YBottom
      c.FillText(label, vg.Point{X: x(float64(g.Span.From)), Y: y(center+0.35)}, g.Symbol)
    }
  }
}

// Arrowhead at the 3' end of the gene, nil if the strand is unknown.
func strandArrow(g *geneModel, x func(float64) vg.Length, y, size vg.Length) []vg.Point {
  switch g.Strand {
  case '+':
    tip := x(float64(g.Span.To))
    return []vg.Point{{X: tip-size, Y: y+size}, {X: tip, Y: y}, {X: tip-size, Y: y-size}}
  case '-':
    tip := x(float64(g.Span.From))
    return []vg.Point{{X: tip+size, Y: y+size}, {X: tip, Y: y}, {X: tip+size, Y: y-size}}
  }
  return nil
}
