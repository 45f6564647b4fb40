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
import "os"
import "path/filepath"
import "time"

import "github.com/pbenner/threadpool"

import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"
import _ "gonum.org/v1/plot/vg/vgeps"
import _ "gonum.org/v1/plot/vg/vgimg"
import _ "gonum.org/v1/plot/vg/vgpdf"
import _ "gonum.org/v1/plot/vg/vgsvg"

/* figure invariant tracks
 * -------------------------------------------------------------------------- */

type ConditionBlock struct {
  Condition   Condition
  ContactMap  Track
  Expression  Track
  Acetylation Track
  Enhancers   Track
  Repression  Track
}

func (block ConditionBlock) Tracks() []Track {
  return []Track{block.ContactMap, block.Expression, block.Acetylation, block.Enhancers, block.Repression}
}

// Tracks that do not depend on the region, built once and shared by all
// figures.
type FigureTracks struct {
  Blocks    []ConditionBlock
  PolII     Track
  GeneModel Track
}

func BuildFigureTracks(config Config, registry *DatasetRegistry, factory *TrackFactory) (FigureTracks, error) {
  result := FigureTracks{}
  newTrack := func(kind TrackKind, assay Assay, c Condition, style Style) (Track, error) {
    src, err := registry.Lookup(assay, c)
    if err != nil {
      return nil, err
    }
    PrintStderr(config, 2, "Using %s dataset `%s'\n", src.Name, src.Filename)
    return factory.MakeTrack(kind, src, style)
  }
  for _, c := range Conditions {
    block := ConditionBlock{Condition: c}
    var err error
    if block.ContactMap, err = newTrack(TrackContactMap, AssayContactMap, c, ContactMapStyle(c)); err != nil {
      return result, err
    }
    if block.Expression, err = newTrack(TrackLine, AssayRNASeq, c, SignalStyle(c)); err != nil {
      return result, err
    }
    if block.Acetylation, err = newTrack(TrackLine, AssayH3K27ac, c, SignalStyle(c)); err != nil {
      return result, err
    }
    if block.Enhancers, err = newTrack(TrackFeatures, AssayEnhancers, c, EnhancerStyle(c)); err != nil {
      return result, err
    }
    if block.Repression, err = newTrack(TrackLine, AssayH3K27me3, c, SignalStyle(c)); err != nil {
      return result, err
    }
    result.Blocks = append(result.Blocks, block)
  }
  if config.PolII {
    style := SignalStyle(NoCondition)
    style.Title = "Pol II"
    var err error
    if result.PolII, err = newTrack(TrackLine, AssayPolII, Gd7, style); err != nil {
      return result, err
    }
  }
  for _, src := range registry.Unused() {
    PrintStderr(config, 2, "Dataset %s (`%s') is not used by any figure\n", src.Name, src.Filename)
  }
  genes, err := factory.MakeTrack(TrackGenes, registry.GeneModels(), GeneModelStyle())
  if err != nil {
    return result, err
  }
  result.GeneModel = genes
  return result, nil
}

// Full ordered stack: all condition blocks, the viewpoint profiles, the
// highlight, optionally Pol II and finally the gene models.
func (tracks FigureTracks) Stack(overlays RegionOverlays) []Track {
  stack := []Track{}
  for _, block := range tracks.Blocks {
    stack = append(stack, block.Tracks()...)
  }
  stack = append(stack, overlays.Tracks()...)
  if tracks.PolII != nil {
    stack = append(stack, tracks.PolII)
  }
  if tracks.GeneModel != nil {
    stack = append(stack, tracks.GeneModel)
  }
  return stack
}

/* -------------------------------------------------------------------------- */

type Figure struct {
  Region  RegionDescriptor
  Display Locus
  Panels  []*Panel
  Scales  ScaleGroups
}

func (fig *Figure) PanelsByRole(role TrackRole) []*Panel {
  r := []*Panel{}
  for _, panel := range fig.Panels {
    if panel.Track.GetRole() == role {
      r = append(r, panel)
    }
  }
  return r
}

/* post-render adjustments
 * -------------------------------------------------------------------------- */

type panelAdjustment func(panel *Panel, region RegionDescriptor)

func despine(panel *Panel, region RegionDescriptor) {
  panel.Despine()
}

func expressionLimit(panel *Panel, region RegionDescriptor) {
  panel.SetYLimit(0, region.ExpressionYLim)
}

// Adjustments are applied after the shared scales, the expression limit
// therefore overrides the shared expression scale.
var roleAdjustments = map[TrackRole][]panelAdjustment{
  RoleViewpoint : {despine},
  RoleHighlight : {despine},
  RoleExpression: {expressionLimit},
}

/* -------------------------------------------------------------------------- */

type FigureComposer struct {
  Config   Config
  Tracks   FigureTracks
  Overlays *OverlayBuilder
  Scales   *ScaleCoordinator
  Metrics  *Metrics
  pool     threadpool.ThreadPool
}

func NewFigureComposer(config Config, tracks FigureTracks, overlays *OverlayBuilder, scales *ScaleCoordinator) *FigureComposer {
  threads := config.Threads
  if threads < 1 {
    threads = 1
  }
  return &FigureComposer{
    Config  : config,
    Tracks  : tracks,
    Overlays: overlays,
    Scales  : scales,
    pool    : threadpool.New(threads, 100*threads) }
}

// Render all tracks over the display interval and apply post-render
// adjustments. Nothing is written to disk.
func (composer *FigureComposer) Compose(region RegionDescriptor) (*Figure, error) {
  display, err := region.DisplayLocus()
  if err != nil {
    return nil, err
  }
  overlays, err := composer.Overlays.BuildOverlays(region)
  if err != nil {
    return nil, err
  }
  stack := composer.Tracks.Stack(overlays)
  fig   := &Figure{
    Region : region,
    Display: display,
    Panels : make([]*Panel, len(stack)),
    Scales : composer.Scales.Begin(stack) }
  errs  := make([]error, len(stack))

  g := composer.pool.NewJobGroup()
  if err := composer.pool.AddRangeJob(0, len(stack), g, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    PrintStderr(composer.Config, 2, "Drawing track `%s'...\n", stack[i].GetName())
    fig.Panels[i], errs[i] = stack[i].Draw(display, fig.Scales)
    return nil
  }); err != nil {
    return nil, &RenderError{Region: region.Name, Err: err}
  }
  if err := composer.pool.Wait(g); err != nil {
    return nil, &RenderError{Region: region.Name, Err: err}
  }
  for i, err := range errs {
    if err != nil {
      return nil, &RenderError{Region: region.Name, Track: stack[i].GetName(), Err: err}
    }
    composer.Metrics.PanelDrawn(stack[i].GetKind())
  }
  if err := composer.adjust(fig); err != nil {
    return nil, &RenderError{Region: region.Name, Err: err}
  }
  return fig, nil
}

func (composer *FigureComposer) adjust(fig *Figure) error {
  for class, group := range fig.Scales {
    limit, err := group.ResolvedLimit()
    if err != nil {
      return fmt.Errorf("%s scale: %w", class, err)
    }
    if limit <= 0 {
      continue
    }
    for _, panel := range fig.Panels {
      if composer.Scales.Class(panel.Track) == class {
        panel.SetYLimit(0, limit)
      }
    }
  }
  for _, panel := range fig.Panels {
    for _, f := range roleAdjustments[panel.Track.GetRole()] {
      f(panel, fig.Region)
    }
  }
  return nil
}

func (composer *FigureComposer) OutputPath(region RegionDescriptor) string {
  return filepath.Join(composer.Config.OutputDir, fmt.Sprintf("%s.%s", region.Name, composer.Config.Format))
}

func (composer *FigureComposer) ComposeAndRender(region RegionDescriptor) (string, error) {
  start := time.Now()
  PrintStderr(composer.Config, 1, "Working on %s\n", region.Name)
  fig, err := composer.Compose(region)
  if err != nil {
    return "", err
  }
  filename := composer.OutputPath(region)
  PrintStderr(composer.Config, 1, "Will write output to %s\n", filename)
  if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
    return "", &IOError{Filename: filename, Err: err}
  }
  if err := fig.Save(filename, composer.Config.Format, vg.Length(composer.Config.Width)*vg.Inch); err != nil {
    return "", err
  }
  composer.Metrics.ObserveFigure(time.Since(start))
  return filename, nil
}

/* layout
 * -------------------------------------------------------------------------- */

const minPanelHeight = vg.Length(10)

func (fig *Figure) plotted() []*Panel {
  r := []*Panel{}
  for _, panel := range fig.Panels {
    if !panel.IsOverlay() {
      r = append(r, panel)
    }
  }
  return r
}

func panelHeight(panel *Panel, width vg.Length, last bool) vg.Length {
  h := vg.Length(panel.Aspect)*width
  if h < minPanelHeight {
    h = minPanelHeight
  }
  if t := panel.Plot.Title; t.Text != "" {
    h += t.TextStyle.Rectangle(t.Text).Size().Y + t.Padding
  }
  if last {
    h += vg.Points(20)
  }
  return h
}

func drawRecover(f func()) (err error) {
  defer func() {
    if r := recover(); r != nil {
      err = fmt.Errorf("%v", r)
    }
  }()
  f()
  return nil
}

// Draw all panels on top of each other with aligned data areas, then
// the overlays on top.
func (fig *Figure) Draw(c draw.Canvas) (map[Track]PanelLayout, error) {
  panels := fig.plotted()
  width  := c.Max.X - c.Min.X
  if len(panels) == 0 {
    return nil, fmt.Errorf("figure has no panels")
  }
  for i, panel := range panels {
    if i == len(panels)-1 {
      panel.ShowXTicks()
    } else {
      panel.HideXTicks()
    }
  }
  // panel canvases from top to bottom
  canvases := make([]draw.Canvas, len(panels))
  top      := c.Max.Y
  for i, panel := range panels {
    h := panelHeight(panel, width, i == len(panels)-1)
    canvases[i] = draw.Canvas{Canvas: c.Canvas, Rectangle: vg.Rectangle{
      Min: vg.Point{X: c.Min.X, Y: top-h},
      Max: vg.Point{X: c.Max.X, Y: top  } }}
    top -= h
  }
  // align data areas horizontally
  left  := make([]vg.Length, len(panels))
  right := make([]vg.Length, len(panels))
  maxLeft, maxRight := vg.Length(0), vg.Length(0)
  for i, panel := range panels {
    var dc draw.Canvas
    if err := drawRecover(func() { dc = panel.Plot.DataCanvas(canvases[i]) }); err != nil {
      return nil, fmt.Errorf("track `%s': %w", panel.Track.GetName(), err)
    }
    left [i] = dc.Min.X - canvases[i].Min.X
    right[i] = canvases[i].Max.X - dc.Max.X
    if left [i] > maxLeft  { maxLeft  = left [i] }
    if right[i] > maxRight { maxRight = right[i] }
  }
  layout := make(map[Track]PanelLayout)
  for i, panel := range panels {
    cropped := draw.Crop(canvases[i], maxLeft-left[i], right[i]-maxRight, 0, 0)
    if err := drawRecover(func() { panel.Plot.Draw(cropped) }); err != nil {
      return nil, fmt.Errorf("track `%s': %w", panel.Track.GetName(), err)
    }
    layout[panel.Track] = PanelLayout{Panel: panel, Data: panel.Plot.DataCanvas(cropped)}
  }
  for _, panel := range fig.Panels {
    if overlay, ok := panel.Track.(Overlay); ok {
      if err := drawRecover(func() { overlay.DrawOverlay(c, layout) }); err != nil {
        return nil, fmt.Errorf("track `%s': %w", panel.Track.GetName(), err)
      }
    }
  }
  return layout, nil
}

func (fig *Figure) Height(width vg.Length) vg.Length {
  panels := fig.plotted()
  h      := vg.Length(0)
  for i, panel := range panels {
    h += panelHeight(panel, width, i == len(panels)-1)
  }
  return h
}

func (fig *Figure) Save(filename, format string, width vg.Length) error {
  c, err := draw.NewFormattedCanvas(width, fig.Height(width), format)
  if err != nil {
    return &RenderError{Region: fig.Region.Name, Err: err}
  }
  if _, err := fig.Draw(draw.New(c)); err != nil {
    return &RenderError{Region: fig.Region.Name, Err: err}
  }
  f, err := os.Create(filename)
  if err != nil {
    return &IOError{Filename: filename, Err: err}
  }
  if _, err := c.WriteTo(f); err != nil {
    f.Close()
    return &IOError{Filename: filename, Err: err}
  }
  if err := f.Close(); err != nil {
    return &IOError{Filename: filename, Err: err}
  }
  return nil
}
