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

/* -------------------------------------------------------------------------- */

// A locus to plot. Whether the viewpoint lies within the display interval
// is not checked.
type RegionDescriptor struct {
  Name           string
  Display        string
  Viewpoint      string
  ExpressionYLim float64
}

func (r RegionDescriptor) DisplayLocus() (Locus, error) {
  return ParseLocus(r.Display)
}

func (r RegionDescriptor) ViewpointLocus() (Locus, error) {
  return ParseLocus(r.Viewpoint)
}

/* -------------------------------------------------------------------------- */

var Figure4Regions = []RegionDescriptor{
  // housekeeping genes
  {"RpS12"    , "3L:12,900,000-13,100,000", "3L:13022351-13024350",  30},
  {"eEF1delta", "2L:10,100,000-10,300,000", "2L:10231506-10233505",  30},
  {"x16"      , "2L:6,800,000-7,000,000"  , "2L:6919211-6921210"  ,  30},
  {"Nipped-B" , "2R:4,600,000-4,800,000"  , "2R:4728018-4730017"  ,  30},
  // expressed in Toll10B
  {"twi"      , "2R:22,900,000-23,100,000", "2R:23045321-23047320", 100},
  {"sna"      , "2L:15,350,000-15,550,000", "2L:15477261-15479260", 100},
  {"if"       , "X:16,700,000-16,900,000" , "X:16782435-16784434" ,  15},
  {"NetA"     , "X:14,600,000-14,800,000" , "X:14652882-14654881" ,  20},
  // expressed in Tollrm9/10
  {"sog"      , "X:15,500,000-15,700,000" , "X:15625541-15627540" ,  30},
  {"brk"      , "X:7,200,000-7,400,000"   , "X:7306938-7308937"   ,  30},
  // expressed in gd7
  {"Doc1"     , "3L:8,950,000-9,100,000"  , "3L:9040601-9042600"  ,  20},
  {"pnr"      , "3R:15,950,000-16,150,000", "3R:16033585-16035584",  15},
  {"C15"      , "3R:21,400,000-21,600,000", "3R:21498985-21500984",  15},
  // Ghavi-Helm et al. 2014
  {"ap"       , "2R:5,600,000-5,800,000"  , "2R:5725833-5727832"  ,  20},
  {"Abd-B"    , "3R:16,900,000-17,100,000", "3R:16967575-16969574",  30},
  {"E2f1"     , "3R:21,500,000-21,700,000", "3R:21659872-21661871",  20},
  {"pdm2"     , "2L:12,500,000-12,700,000", "2L:12677603-12679602",  20},
  {"Con"      , "3L:4,900,000-5,100,000"  , "3L:4975177-4977176"  ,  15},
  {"eya"      , "2L:6,400,000-6,600,000"  , "2L:6545977-6547976"  ,  30},
  {"stumps"   , "3R:14,500,000-14,700,000", "3R:14590619-14592618",  30},
  {"Mef2"     , "2R:9,800,000-10,000,000" , "2R:9957859-9959858"  ,  30},
  {"sli"      , "2R:15,800,000-16,000,000", "2R:15921119-15923118",  30},
  {"slp1"     , "2L:3,700,000-3,900,000"  , "2L:3824674-3826673"  ,  20},
  // additional genes
  {"fog"      , "X:22,800,000-22,900,000" , "X:22854195-22856194" ,  15},
  {"rho"      , "3L:1,350,000-1,500,000"  , "3L:1462810-1464809"  ,  15},
  {"vn"       , "3L:5,800,000-5,900,000"  , "3L:5844665-5846664"  ,  20},
  {"pyr"      , "2R:11,700,000-11,850,000", "2R:11711262-11713261",  15},
  {"ths"      , "2R:11,700,000-11,850,000", "2R:11789365-11791364",  15},
  {"ind"      , "3L:15,000,000-15,100,000", "3L:15042925-15044924",  15},
  {"dpp"      , "2L:2,400,000-2,500,000"  , "2L:2449192-2451191"  ,  15},
}

// Select manifest entries by name. The manifest order is kept, an empty
// selection returns the whole manifest.
func SelectRegions(manifest []RegionDescriptor, names []string) ([]RegionDescriptor, error) {
  if len(names) == 0 {
    return manifest, nil
  }
  selected := make(map[string]bool)
  for _, name := range names {
    selected[name] = false
  }
  r := []RegionDescriptor{}
  for _, region := range manifest {
    if _, ok := selected[region.Name]; ok {
      selected[region.Name] = true
      r = append(r, region)
    }
  }
  for _, name := range names {
    if !selected[name] {
      return nil, fmt.Errorf("region `%s' is not part of the manifest", name)
    }
  }
  return r, nil
}
