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
import "io"
import "sync"

/* -------------------------------------------------------------------------- */

// Wraps data sources into tracks. Signal and contact-map readers are
// created through OpenSignal and OpenContacts, files are opened lazily by
// the readers themselves.
type TrackFactory struct {
  Scales       *ScaleCoordinator
  OpenSignal   func(src DataSource) SignalSource
  OpenContacts func(src DataSource) ContactMatrix
  Bins         int
  mutex        sync.Mutex
  contacts     map[string]ContactMatrix
  closers      []io.Closer
}

func NewTrackFactory(scales *ScaleCoordinator) *TrackFactory {
  return &TrackFactory{
    Scales      : scales,
    OpenSignal  : func(src DataSource) SignalSource  { return NewLazyBigWig  (src.Filename) },
    OpenContacts: func(src DataSource) ContactMatrix { return NewContactDump(src.Filename) },
    Bins        : 1000,
    contacts    : make(map[string]ContactMatrix) }
}

// One contact-map reader per file, shared by all tracks of a condition.
func (factory *TrackFactory) contactMatrix(src DataSource) ContactMatrix {
  factory.mutex.Lock()
  defer factory.mutex.Unlock()
  if m, ok := factory.contacts[src.Filename]; ok {
    return m
  }
  m := factory.OpenContacts(src)
  factory.contacts[src.Filename] = m
  return m
}

func (factory *TrackFactory) signal(src DataSource) SignalSource {
  s := factory.OpenSignal(src)
  if c, ok := s.(io.Closer); ok {
    factory.mutex.Lock()
    factory.closers = append(factory.closers, c)
    factory.mutex.Unlock()
  }
  return s
}

func (factory *TrackFactory) MakeTrack(kind TrackKind, src DataSource, style Style) (Track, error) {
  if err := style.Validate(kind); err != nil {
    return nil, err
  }
  switch kind {
  case TrackContactMap:
    if src.Assay != AssayContactMap {
      return nil, &InvalidStyleError{Kind: kind.String(), Reason: fmt.Sprintf("dataset `%s' is not a contact map", src.Name)}
    }
    return &ContactMapTrack{Name: src.Name, Style: style, Source: src, Matrix: factory.contactMatrix(src)}, nil
  case TrackLine:
    track := &LineTrack{
      Name  : src.Name,
      Role  : roleOf(src.Assay),
      Class : scaleClassOf(src.Assay),
      Style : style,
      Source: src,
      Signal: factory.signal(src),
      Bins  : factory.Bins }
    if factory.Scales != nil {
      factory.Scales.Register(track.Class, track)
    }
    return track, nil
  case TrackFeatures:
    return &FeatureTrack{Name: src.Name, Role: roleOf(src.Assay), Style: style, Source: src}, nil
  case TrackGenes:
    return &GeneTrack{Name: src.Name, Style: style, Source: src}, nil
  case TrackViewpoint, TrackHighlight:
    return nil, &InvalidStyleError{Kind: kind.String(), Reason: "track requires an anchor"}
  }
  return nil, &InvalidStyleError{Reason: fmt.Sprintf("unrecognized track kind `%d'", int(kind))}
}

// Virtual 4C track anchored at the viewpoint, reading the contact map of
// src.
func (factory *TrackFactory) MakeViewpointTrack(src DataSource, viewpoint Locus, style Style) (Track, error) {
  if err := style.Validate(TrackViewpoint); err != nil {
    return nil, err
  }
  if src.Assay != AssayContactMap {
    return nil, &InvalidStyleError{Kind: TrackViewpoint.String(), Reason: fmt.Sprintf("dataset `%s' is not a contact map", src.Name)}
  }
  return &ViewpointTrack{
    Name     : fmt.Sprintf("%s/v4c", src.Condition),
    Style    : style,
    Source   : src,
    Viewpoint: viewpoint,
    Matrix   : factory.contactMatrix(src) }, nil
}

func (factory *TrackFactory) MakeHighlightTrack(viewpoint Locus, first, second Track, style Style) (Track, error) {
  if err := style.Validate(TrackHighlight); err != nil {
    return nil, err
  }
  if first == nil || second == nil {
    return nil, &InvalidStyleError{Kind: TrackHighlight.String(), Reason: "highlight requires two tracks"}
  }
  return &HighlightTrack{
    Name     : fmt.Sprintf("highlight %s-%s", first.GetName(), second.GetName()),
    Style    : style,
    Viewpoint: viewpoint,
    First    : first,
    Second   : second }, nil
}

func (factory *TrackFactory) Close() error {
  factory.mutex.Lock()
  defer factory.mutex.Unlock()
  var err error
  for _, c := range factory.closers {
    if e := c.Close(); e != nil && err == nil {
      err = e
    }
  }
  factory.closers = nil
  return err
}
