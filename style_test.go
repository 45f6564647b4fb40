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
import   "image/color"
import   "math"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestParseColor(t *testing.T) {
  c, err := ParseColor("#648fff")
  require.NoError(t, err)
  assert.Equal(t, color.RGBA{R: 0x64, G: 0x8f, B: 0xff, A: 0xff}, c)

  c, err = ParseColor("#ff000080")
  require.NoError(t, err)
  assert.Equal(t, color.RGBA{R: 0xff, A: 0x80}, c)

  c, err = ParseColor("gray")
  require.NoError(t, err)
  assert.Equal(t, colorGray, c)

  for _, str := range []string{"#12345", "#gggggg", "blue"} {
    _, err := ParseColor(str)
    assert.Error(t, err, str)
  }
}

func TestStyleValidate(t *testing.T) {
  for _, c := range Conditions {
    assert.NoError(t, ContactMapStyle(c).Validate(TrackContactMap))
    assert.NoError(t, SignalStyle    (c).Validate(TrackLine))
    assert.NoError(t, EnhancerStyle  (c).Validate(TrackFeatures))
    assert.NoError(t, ViewpointStyle (c).Validate(TrackViewpoint))
  }
  assert.NoError(t, HighlightStyle().Validate(TrackHighlight))
  assert.NoError(t, GeneModelStyle().Validate(TrackGenes))
}

func TestStyleInvalid(t *testing.T) {
  valid := Style{Color: "black", Aspect: 0.1}

  invalid := []struct {
    Kind  TrackKind
    Style func(Style) Style
  }{
    {TrackLine, func(s Style) Style { s.Color = "#xyz"; return s }},
    {TrackLine, func(s Style) Style { s.VMin = 10; s.VMax = 1; return s }},
    {TrackLine, func(s Style) Style { s.VMax = math.NaN(); return s }},
    {TrackLine, func(s Style) Style { s.Aspect = 0; return s }},
    {TrackLine, func(s Style) Style { s.NYTicks = -1; return s }},
    {TrackLine, func(s Style) Style { s.Norm = NormLog; s.VMin = 0; s.VMax = 1; return s }},
    // heatmaps always need bounds
    {TrackContactMap, func(s Style) Style { return s }},
    {TrackKind(42), func(s Style) Style { return s }},
  }
  for i, test := range invalid {
    err := test.Style(valid).Validate(test.Kind)
    var target *InvalidStyleError
    if !errors.As(err, &target) {
      t.Errorf("TestStyleInvalid failed for case %d", i)
    }
  }
}

func TestStyleNormalize(t *testing.T) {
  s := ContactMapStyle(Gd7)
  assert.InDelta(t, 0.0, s.normalize(1e-3), 1e-12)
  assert.InDelta(t, 0.5, s.normalize(1e-2), 1e-12)
  assert.InDelta(t, 1.0, s.normalize(1.0 ), 1e-12)
  assert.Equal  (t, 0.0, s.normalize(0.0 ))

  s = Style{VMin: 0, VMax: 10}
  assert.InDelta(t, 0.25, s.normalize(2.5), 1e-12)
}
