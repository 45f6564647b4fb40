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
import "math"
import "sync"

/* -------------------------------------------------------------------------- */

type ScaleClass int

const (
  ScaleNone ScaleClass = iota
  ScaleExpression
  ScaleAcetylation
  ScaleRepression
  ScalePolII
)

var ScaleClasses = []ScaleClass{ScaleExpression, ScaleAcetylation, ScaleRepression, ScalePolII}

func (class ScaleClass) String() string {
  switch class {
  case ScaleExpression : return "expression"
  case ScaleAcetylation: return "acetylation"
  case ScaleRepression : return "repression"
  case ScalePolII      : return "polii"
  }
  return "none"
}

func scaleClassOf(assay Assay) ScaleClass {
  switch assay {
  case AssayRNASeq  : return ScaleExpression
  case AssayH3K27ac : return ScaleAcetylation
  case AssayH3K27me3: return ScaleRepression
  case AssayPolII   : return ScalePolII
  }
  return ScaleNone
}

/* -------------------------------------------------------------------------- */

// Common y range of all tracks of one assay class within a single figure.
// The limit may only be read once every member has reported its maximum.
type ScaleGroup struct {
  Class    ScaleClass
  mutex    sync.Mutex
  members  []Track
  observed map[Track]float64
  resolved bool
  limit    float64
}

func NewScaleGroup(class ScaleClass) *ScaleGroup {
  return &ScaleGroup{Class: class, observed: make(map[Track]float64)}
}

func (group *ScaleGroup) Register(track Track) error {
  group.mutex.Lock()
  defer group.mutex.Unlock()
  if group.resolved {
    return ErrScaleResolved
  }
  for _, t := range group.members {
    if t == track {
      return nil
    }
  }
  group.members = append(group.members, track)
  return nil
}

func (group *ScaleGroup) Observe(track Track, max float64) error {
  group.mutex.Lock()
  defer group.mutex.Unlock()
  if group.resolved {
    return ErrScaleResolved
  }
  if !group.isMember(track) {
    return fmt.Errorf("track `%s' is not part of the %s scale", track.GetName(), group.Class)
  }
  if v, ok := group.observed[track]; ok {
    max = math.Max(v, max)
  }
  group.observed[track] = max
  return nil
}

func (group *ScaleGroup) isMember(track Track) bool {
  for _, t := range group.members {
    if t == track {
      return true
    }
  }
  return false
}

func (group *ScaleGroup) Len() int {
  group.mutex.Lock()
  defer group.mutex.Unlock()
  return len(group.members)
}

// Maximum over all members. The value is computed on first read, further
// registrations or observations fail afterwards.
func (group *ScaleGroup) ResolvedLimit() (float64, error) {
  group.mutex.Lock()
  defer group.mutex.Unlock()
  if group.resolved {
    return group.limit, nil
  }
  limit := 0.0
  for _, t := range group.members {
    v, ok := group.observed[t]
    if !ok {
      return 0, ErrScalePending
    }
    limit = math.Max(limit, v)
  }
  group.limit    = limit
  group.resolved = true
  return limit, nil
}

/* -------------------------------------------------------------------------- */

// Scale groups of a single figure render.
type ScaleGroups map[ScaleClass]*ScaleGroup

// Report the maximum of a track. Tracks without a group in this render
// are ignored.
func (groups ScaleGroups) Observe(class ScaleClass, track Track, max float64) error {
  if group, ok := groups[class]; ok {
    return group.Observe(track, max)
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Records which tracks share a scale. Membership is static, the groups
// that collect maxima are created fresh for every figure by Begin.
type ScaleCoordinator struct {
  mutex   sync.Mutex
  members map[Track]ScaleClass
}

func NewScaleCoordinator() *ScaleCoordinator {
  return &ScaleCoordinator{members: make(map[Track]ScaleClass)}
}

func (sc *ScaleCoordinator) Register(class ScaleClass, track Track) {
  if class == ScaleNone {
    return
  }
  sc.mutex.Lock()
  defer sc.mutex.Unlock()
  sc.members[track] = class
}

func (sc *ScaleCoordinator) Class(track Track) ScaleClass {
  sc.mutex.Lock()
  defer sc.mutex.Unlock()
  return sc.members[track]
}

// Create one group per class holding the registered tracks of the given
// stack as pending members.
func (sc *ScaleCoordinator) Begin(stack []Track) ScaleGroups {
  sc.mutex.Lock()
  defer sc.mutex.Unlock()
  groups := make(ScaleGroups)
  for _, track := range stack {
    class, ok := sc.members[track]
    if !ok {
      continue
    }
    group, ok := groups[class]
    if !ok {
      group = NewScaleGroup(class)
      groups[class] = group
    }
    group.Register(track)
  }
  return groups
}
