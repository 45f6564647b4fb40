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

package main

/* -------------------------------------------------------------------------- */

import   "log"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"
import   "github.com/pkg/profile"

import . "github.com/dvhic/hicfigures"
import   "github.com/dvhic/hicfigures/lib/progress"

/* -------------------------------------------------------------------------- */

func selectRegions(config Config, str string) []RegionDescriptor {
  if str == "" {
    return Figure4Regions
  }
  names := strings.Split(str, ",")
  for i := range names {
    names[i] = strings.TrimSpace(names[i])
  }
  regions, err := SelectRegions(Figure4Regions, names)
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Selected %d of %d regions\n", len(regions), len(Figure4Regions))
  return regions
}

func checkFormat(format string) {
  switch format {
  case "pdf", "svg", "png", "eps":
  default:
    log.Fatalf("invalid output format: %s", format)
  }
}

func writeMetrics(config Config, metrics *Metrics, filename string) error {
  if filename == "" {
    return nil
  }
  PrintStderr(config, 1, "Writing metrics `%s'... ", filename)
  if err := metrics.WriteTextfile(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    return err
  }
  PrintStderr(config, 1, "done\n")
  return nil
}

/* -------------------------------------------------------------------------- */

// Deferred cleanup and the cpu profile also complete for failed batches.
func plotFigureRegions(config Config, regions []RegionDescriptor, status bool, metricsFile, profileDir string) error {
  if profileDir != "" {
    defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.Quiet).Stop()
  }
  registry := NewDatasetRegistry(config.DataDir)
  scales   := NewScaleCoordinator()
  factory  := NewTrackFactory(scales)
  defer factory.Close()

  tracks, err := BuildFigureTracks(config, registry, factory)
  if err != nil {
    return err
  }
  metrics  := NewMetrics()
  composer := NewFigureComposer(config, tracks, NewOverlayBuilder(registry, factory), scales)
  composer.Metrics = metrics

  driver := RegionDriver{Config: config, Renderer: composer, Metrics: metrics}
  if status {
    p := progress.New(len(regions), os.Stderr)
    driver.Progress = &p
  }
  files, err := driver.Run(regions)
  // metrics are exported also if the batch failed
  if errMetrics := writeMetrics(config, metrics, metricsFile); errMetrics != nil && err == nil {
    err = errMetrics
  }
  if err != nil {
    return err
  }
  PrintStderr(config, 1, "Wrote %d figures to `%s'\n", len(files), config.OutputDir)
  return nil
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := DefaultConfig()

  options := getopt.New()

  optDataDir   := options. StringLong("data-dir",    0 , config.DataDir,   "root directory or http(s) URL of the processed data")
  optOutputDir := options. StringLong("output-dir",  0 , config.OutputDir, "output directory")
  optFormat    := options. StringLong("format",      0 , config.Format,    "output format [pdf (default), svg, png, eps]")
  optWidth     := options. StringLong("width",       0 , "",               "figure width in inches [default: 6]")
  optThreads   := options.    IntLong("threads",     0 , config.Threads,   "number of threads")
  optRegions   := options. StringLong("regions",     0 , "",               "comma separated list of regions [default: all]")
  optKeepGoing := options.   BoolLong("keep-going",  0 ,                   "skip regions that cannot be rendered")
  optPolII     := options.   BoolLong("polii",       0 ,                   "add Pol II track")
  optStatus    := options.   BoolLong("status",      0 ,                   "show status bar")
  optMetrics   := options. StringLong("metrics",     0 , "",               "write prometheus metrics to file")
  optProfile   := options. StringLong("cpu-profile", 0 , "",               "write cpu profile to directory")
  optHelp      := options.   BoolLong("help",       'h',                   "print help")
  optVerbose   := options.CounterLong("verbose",    'v',                   "verbose level [-v or -vv]")

  options.SetParameters("")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optWidth != "" {
    v, err := strconv.ParseFloat(*optWidth, 64)
    if err != nil || v <= 0 {
      log.Fatalf("invalid figure width: %s", *optWidth)
    }
    config.Width = v
  }
  if *optThreads < 1 {
    log.Fatalf("invalid number of threads: %d", *optThreads)
  }
  checkFormat(*optFormat)

  config.Verbose   = *optVerbose
  config.DataDir   = *optDataDir
  config.OutputDir = *optOutputDir
  config.Format    = *optFormat
  config.Threads   = *optThreads
  config.KeepGoing = *optKeepGoing
  config.PolII     = *optPolII

  regions := selectRegions(config, *optRegions)

  if err := plotFigureRegions(config, regions, *optStatus, *optMetrics, *optProfile); err != nil {
    log.Fatal(err)
  }
}
