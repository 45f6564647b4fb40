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

import "time"

import "github.com/prometheus/client_golang/prometheus"

/* -------------------------------------------------------------------------- */

// Batch statistics, exported as a node-exporter textfile at the end of a
// run. A nil *Metrics records nothing.
type Metrics struct {
  Registry *prometheus.Registry
  regions  *prometheus.CounterVec
  panels   *prometheus.CounterVec
  duration  prometheus.Histogram
}

func NewMetrics() *Metrics {
  m := Metrics{Registry: prometheus.NewRegistry()}
  m.regions = prometheus.NewCounterVec(prometheus.CounterOpts{
    Name: "hicfigures_regions_total",
    Help: "Regions processed, by outcome." }, []string{"status"})
  m.panels = prometheus.NewCounterVec(prometheus.CounterOpts{
    Name: "hicfigures_panels_total",
    Help: "Panels drawn, by track kind." }, []string{"kind"})
  m.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
    Name   : "hicfigures_figure_seconds",
    Help   : "Time to compose and write one figure.",
    Buckets: prometheus.ExponentialBuckets(0.1, 2, 10) })
  m.Registry.MustRegister(m.regions, m.panels, m.duration)
  return &m
}

func (m *Metrics) RegionDone(status string) {
  if m == nil {
    return
  }
  m.regions.WithLabelValues(status).Inc()
}

func (m *Metrics) PanelDrawn(kind TrackKind) {
  if m == nil {
    return
  }
  m.panels.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) ObserveFigure(d time.Duration) {
  if m == nil {
    return
  }
  m.duration.Observe(d.Seconds())
}

func (m *Metrics) WriteTextfile(filename string) error {
  if m == nil {
    return nil
  }
  if err := prometheus.WriteToTextfile(filename, m.Registry); err != nil {
    return &IOError{Filename: filename, Err: err}
  }
  return nil
}
