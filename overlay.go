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

// Region scoped tracks, rebuilt for every figure.
type RegionOverlays struct {
  Viewpoint  Locus
  // one per condition, in condition order
  Viewpoints []Track
  Highlight  Track
}

func (overlays RegionOverlays) Tracks() []Track {
  r := append([]Track{}, overlays.Viewpoints...)
  if overlays.Highlight != nil {
    r = append(r, overlays.Highlight)
  }
  return r
}

/* -------------------------------------------------------------------------- */

type OverlayBuilder struct {
  Registry  *DatasetRegistry
  Factory   *TrackFactory
  // viewpoint profiles connected by the highlight
  Highlight [2]Condition
}

func NewOverlayBuilder(registry *DatasetRegistry, factory *TrackFactory) *OverlayBuilder {
  return &OverlayBuilder{Registry: registry, Factory: factory, Highlight: [2]Condition{Gd7, Toll10B}}
}

func (builder *OverlayBuilder) BuildOverlays(region RegionDescriptor) (RegionOverlays, error) {
  viewpoint, err := region.ViewpointLocus()
  if err != nil {
    return RegionOverlays{}, err
  }
  overlays := RegionOverlays{Viewpoint: viewpoint}
  byCondition := make(map[Condition]Track)
  for _, c := range Conditions {
    src, err := builder.Registry.Lookup(AssayContactMap, c)
    if err != nil {
      return RegionOverlays{}, err
    }
    track, err := builder.Factory.MakeViewpointTrack(src, viewpoint, ViewpointStyle(c))
    if err != nil {
      return RegionOverlays{}, err
    }
    overlays.Viewpoints = append(overlays.Viewpoints, track)
    byCondition[c] = track
  }
  first, second := byCondition[builder.Highlight[0]], byCondition[builder.Highlight[1]]
  if overlays.Highlight, err = builder.Factory.MakeHighlightTrack(viewpoint, first, second, HighlightStyle()); err != nil {
    return RegionOverlays{}, err
  }
  return overlays, nil
}
