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

var conditionColors = map[Condition]string{
  Gd7      : "#648fff",
  Tollrm910: "#dc267f",
  Toll10B  : "#ffb000",
}

func ConditionColor(c Condition) string {
  if clr, ok := conditionColors[c]; ok {
    return clr
  }
  return "black"
}

/* -------------------------------------------------------------------------- */

func ContactMapStyle(c Condition) Style {
  return Style{
    Norm  : NormLog,
    VMin  : 1e-3,
    VMax  : 1e-1,
    Aspect: 0.5,
    Title : c.String() }
}

func SignalStyle(c Condition) Style {
  return Style{
    Color  : ConditionColor(c),
    Aspect : 0.05,
    NYTicks: 2 }
}

func EnhancerStyle(c Condition) Style {
  return Style{
    Color : ConditionColor(c),
    Aspect: 0.02 }
}

func ViewpointStyle(c Condition) Style {
  return Style{
    Color  : ConditionColor(c),
    Aspect : 0.05,
    NYTicks: 2 }
}

func HighlightStyle() Style {
  return Style{
    Color : "gray",
    Aspect: 0.05 }
}

func GeneModelStyle() Style {
  return Style{
    Color : "black",
    Aspect: 0.15 }
}
