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

import   "errors"
import   "os"
import   "path/filepath"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

import   "gonum.org/v1/plot/vg"
import   "gonum.org/v1/plot/vg/draw"

/* -------------------------------------------------------------------------- */

// Constant signal, the value depends on the dataset and on the start of
// the queried interval.
type testSignal struct {
  base float64
  fail bool
}

func (s testSignal) QuerySlice(seqname string, from, to, bins int) ([]float64, error) {
  if s.fail {
    return nil, errors.New("signal not available")
  }
  r := make([]float64, bins)
  for i := range r {
    r[i] = s.base + float64(from)/1e6
  }
  return r, nil
}

// Contact matrix with a constant value in every bin.
type testContactMatrix struct {
  binSize int
  value   float64
}

func (m testContactMatrix) GetBinSize() (int, error) {
  return m.binSize, nil
}

func (m testContactMatrix) Matrix(rows, cols Locus) (ContactBlock, error) {
  if rows.Seqname != cols.Seqname {
    return ContactBlock{}, errors.New("inter-chromosomal contacts are not supported")
  }
  r0, r1 := divIntDown(rows.From, m.binSize), divIntUp(rows.To, m.binSize)
  c0, c1 := divIntDown(cols.From, m.binSize), divIntUp(cols.To, m.binSize)
  block  := ContactBlock{BinSize: m.binSize, RowFrom: r0*m.binSize, ColFrom: c0*m.binSize}
  for i := r0; i < r1; i++ {
    row := make([]float64, c1-c0)
    for j := range row {
      row[j] = m.value
    }
    block.Values = append(block.Values, row)
  }
  return block, nil
}

/* -------------------------------------------------------------------------- */

// Data directory with enhancer and gene annotations, signal and contact
// data are provided by the factory hooks.
func newTestDataDir(t *testing.T) string {
  root     := t.TempDir()
  registry := NewDatasetRegistry(root)
  for _, c := range Conditions {
    src, err := registry.Lookup(AssayEnhancers, c)
    require.NoError(t, err)
    writeTestFile(t, src.Filename,
      "2R\t23040000\t23041000\tenh1\n" +
      "2R\t23050000\t23052000\tenh2\n" +
      "2L\t15450000\t15452000\tenh3\n")
  }
  writeTestFileGz(t, registry.GeneModels().Filename, testGTF +
    "2L\tFlyBase\texon\t15477261\t15479260\t.\t+\t.\tgene_id \"FBgn0003448\"; gene_symbol \"sna\";\n")
  return root
}

func newTestFactory(scales *ScaleCoordinator, failing Assay) *TrackFactory {
  factory := NewTrackFactory(scales)
  factory.Bins = 200
  factory.OpenSignal = func(src DataSource) SignalSource {
    return testSignal{base: float64(src.Condition+1), fail: src.Assay == failing}
  }
  factory.OpenContacts = func(src DataSource) ContactMatrix {
    return testContactMatrix{binSize: 2000, value: 0.01}
  }
  return factory
}

func newTestComposer(t *testing.T, config Config, failing Assay) *FigureComposer {
  registry := NewDatasetRegistry(config.DataDir)
  scales   := NewScaleCoordinator()
  factory  := newTestFactory(scales, failing)
  tracks, err := BuildFigureTracks(config, registry, factory)
  require.NoError(t, err)
  composer := NewFigureComposer(config, tracks, NewOverlayBuilder(registry, factory), scales)
  composer.Metrics = NewMetrics()
  return composer
}

func newTestConfig(t *testing.T) Config {
  config := DefaultConfig()
  config.DataDir   = newTestDataDir(t)
  config.OutputDir = filepath.Join(t.TempDir(), "figures")
  config.Format    = "svg"
  config.Threads   = 2
  return config
}

func testRegion(t *testing.T, name string) RegionDescriptor {
  regions, err := SelectRegions(Figure4Regions, []string{name})
  require.NoError(t, err)
  return regions[0]
}

func newTestCanvas(fig *Figure) (draw.Canvas, error) {
  width := 6*vg.Inch
  c, err := draw.NewFormattedCanvas(width, fig.Height(width), "svg")
  if err != nil {
    return draw.Canvas{}, err
  }
  return draw.New(c), nil
}

func trackNames(fig *Figure) []string {
  r := []string{}
  for _, panel := range fig.Panels {
    r = append(r, panel.Track.GetName())
  }
  return r
}

/* -------------------------------------------------------------------------- */

func TestFigureCompose1(t *testing.T) {
  config   := newTestConfig(t)
  composer := newTestComposer(t, config, -1)

  fig, err := composer.Compose(testRegion(t, "twi"))
  require.NoError(t, err)

  assert.Equal(t, []string{
    "gd7/contact-map",       "gd7/rnaseq",       "gd7/H3K27ac",       "gd7/candidate-enhancer",       "gd7/H3K27me3",
    "Tollrm910/contact-map", "Tollrm910/rnaseq", "Tollrm910/H3K27ac", "Tollrm910/candidate-enhancer", "Tollrm910/H3K27me3",
    "Toll10B/contact-map",   "Toll10B/rnaseq",   "Toll10B/H3K27ac",   "Toll10B/candidate-enhancer",   "Toll10B/H3K27me3",
    "gd7/v4c", "Tollrm910/v4c", "Toll10B/v4c",
    "highlight gd7/v4c-Toll10B/v4c",
    "gene-models" }, trackNames(fig))

  // expression limit of the region
  expression := fig.PanelsByRole(RoleExpression)
  require.Len(t, expression, 3)
  for _, panel := range expression {
    min, max := panel.YLimit()
    assert.Equal(t, 0.0,   min)
    assert.Equal(t, 100.0, max)
  }
  // shared acetylation scale
  acetylation := fig.PanelsByRole(RoleAcetylation)
  require.Len(t, acetylation, 3)
  for _, panel := range acetylation {
    _, max := panel.YLimit()
    assert.InDelta(t, 3 + 22.9, max, 1e-8)
  }
  for _, panel := range fig.PanelsByRole(RoleViewpoint) {
    assert.True(t, panel.Despined)
    // only the top and right borders are removed
    assert.True(t, panel.Plot.Y.LineStyle.Width > 0)
  }
  highlight := fig.PanelsByRole(RoleHighlight)
  require.Len(t, highlight, 1)
  assert.True(t, highlight[0].IsOverlay())
}

func TestFigureCompose2(t *testing.T) {
  config := newTestConfig(t)
  config.PolII = true

  // order does not depend on the number of threads
  var names []string
  for _, threads := range []int{1, 4} {
    config.Threads = threads
    composer := newTestComposer(t, config, -1)
    fig, err := composer.Compose(testRegion(t, "sna"))
    require.NoError(t, err)
    if names == nil {
      names = trackNames(fig)
    } else {
      assert.Equal(t, names, trackNames(fig))
    }
  }
  require.Len(t, names, 21)
  // Pol II is inserted between the viewpoint profiles and gene models
  assert.Equal(t, "gd7/polii",   names[19])
  assert.Equal(t, "gene-models", names[20])
}

// Shared scales are recomputed for every figure.
func TestFigureCompose3(t *testing.T) {
  config   := newTestConfig(t)
  composer := newTestComposer(t, config, -1)

  fig1, err := composer.Compose(testRegion(t, "twi"))
  require.NoError(t, err)
  fig2, err := composer.Compose(testRegion(t, "sna"))
  require.NoError(t, err)

  _, max1 := fig1.PanelsByRole(RoleRepression)[0].YLimit()
  _, max2 := fig2.PanelsByRole(RoleRepression)[0].YLimit()
  assert.InDelta(t, 3 + 22.90, max1, 1e-8)
  assert.InDelta(t, 3 + 15.35, max2, 1e-8)
  assert.NotSame(t, fig1.Scales[ScaleRepression], fig2.Scales[ScaleRepression])
}

func TestFigureComposeErrors(t *testing.T) {
  config   := newTestConfig(t)
  composer := newTestComposer(t, config, AssayH3K27ac)

  _, err := composer.Compose(testRegion(t, "twi"))
  var renderErr *RenderError
  require.ErrorAs(t, err, &renderErr)
  assert.Equal(t, "twi", renderErr.Region)
  assert.Equal(t, "gd7/H3K27ac", renderErr.Track)

  composer = newTestComposer(t, config, -1)
  _, err = composer.Compose(RegionDescriptor{Name: "broken", Display: "2R:300-100", Viewpoint: "2R:100-200"})
  var intervalErr *InvalidIntervalError
  assert.ErrorAs(t, err, &intervalErr)

  _, err = composer.Compose(RegionDescriptor{Name: "broken", Display: "2R:100-300", Viewpoint: "3R:100-200"})
  assert.ErrorAs(t, err, &intervalErr)
}

/* -------------------------------------------------------------------------- */

func TestFigureRender(t *testing.T) {
  config   := newTestConfig(t)
  composer := newTestComposer(t, config, -1)

  filename, err := composer.ComposeAndRender(testRegion(t, "twi"))
  require.NoError(t, err)
  assert.Equal(t, filepath.Join(config.OutputDir, "twi.svg"), filename)

  info, err := os.Stat(filename)
  require.NoError(t, err)
  assert.Greater(t, info.Size(), int64(0))
}

func TestFigureLayout(t *testing.T) {
  config   := newTestConfig(t)
  composer := newTestComposer(t, config, -1)

  fig, err := composer.Compose(testRegion(t, "twi"))
  require.NoError(t, err)

  c, err := newTestCanvas(fig)
  require.NoError(t, err)
  layout, err := fig.Draw(c)
  require.NoError(t, err)
  // overlays have no panel of their own
  assert.Len(t, layout, len(fig.Panels)-1)

  // data areas are aligned
  first := layout[fig.Panels[0].Track]
  for track, l := range layout {
    assert.InDelta(t, float64(first.Data.Min.X), float64(l.Data.Min.X), 1e-6, track.GetName())
    assert.InDelta(t, float64(first.Data.Max.X), float64(l.Data.Max.X), 1e-6, track.GetName())
  }
}

func TestFigureUnknownDataset(t *testing.T) {
  config   := newTestConfig(t)
  registry := NewDatasetRegistry(config.DataDir)
  delete(registry.entries, datasetKey{AssayH3K27me3, Toll10B})

  scales  := NewScaleCoordinator()
  _, err  := BuildFigureTracks(config, registry, newTestFactory(scales, -1))
  var target *UnknownDatasetError
  require.ErrorAs(t, err, &target)
  assert.Equal(t, "H3K27me3", target.Name)
  assert.Equal(t, "Toll10B",  target.Condition)

  // nothing is written
  _, err = os.Stat(config.OutputDir)
  assert.True(t, os.IsNotExist(err))
}
