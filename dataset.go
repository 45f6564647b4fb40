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
import "path/filepath"
import "strings"

/* -------------------------------------------------------------------------- */

type Condition int

const (
  NoCondition Condition = iota - 1
  Gd7
  Tollrm910
  Toll10B
)

// Conditions in the order they are stacked in a figure.
var Conditions = []Condition{Gd7, Tollrm910, Toll10B}

func (c Condition) String() string {
  switch c {
  case Gd7      : return "gd7"
  case Tollrm910: return "Tollrm910"
  case Toll10B  : return "Toll10B"
  }
  return "none"
}

func ParseCondition(str string) (Condition, bool) {
  switch strings.ToLower(str) {
  case "gd7", "gd7-nc14":
    return Gd7, true
  case "tollrm910", "tlrm910", "tollrm910-nc14":
    return Tollrm910, true
  case "toll10b", "tl10b", "toll10b-nc14":
    return Toll10B, true
  }
  return NoCondition, false
}

/* -------------------------------------------------------------------------- */

type Assay int

const (
  AssayContactMap Assay = iota
  AssayRNASeq
  AssayH3K27ac
  AssayH3K27me3
  AssayPolII
  AssayBoundary
  AssayEnhancers
  AssayGeneModels
)

func (a Assay) String() string {
  switch a {
  case AssayContactMap: return "contact-map"
  case AssayRNASeq    : return "rnaseq"
  case AssayH3K27ac   : return "H3K27ac"
  case AssayH3K27me3  : return "H3K27me3"
  case AssayPolII     : return "polii"
  case AssayBoundary  : return "boundary-score"
  case AssayEnhancers : return "candidate-enhancer"
  case AssayGeneModels: return "gene-models"
  }
  return fmt.Sprintf("assay(%d)", int(a))
}

func ParseAssay(str string) (Assay, bool) {
  switch strings.ToLower(str) {
  case "contact-map", "hic":
    return AssayContactMap, true
  case "rnaseq", "rna-seq":
    return AssayRNASeq, true
  case "h3k27ac":
    return AssayH3K27ac, true
  case "h3k27me3":
    return AssayH3K27me3, true
  case "polii", "pol ii", "pol2":
    return AssayPolII, true
  case "boundary", "boundary-score":
    return AssayBoundary, true
  case "enhancers", "candidate-enhancer":
    return AssayEnhancers, true
  }
  return 0, false
}

/* -------------------------------------------------------------------------- */

// Identifier and file path of one (condition, assay) dataset.
type DataSource struct {
  Name      string
  Assay     Assay
  Condition Condition
  Filename  string
}

type datasetKey struct {
  Assay     Assay
  Condition Condition
}

/* -------------------------------------------------------------------------- */

const geneModelsPath = "external_data/flybase/dmel-all-r6.30.gtf.gz"

// Paths relative to the data directory.
var datasetPaths = map[datasetKey]string{
  {AssayContactMap, Gd7      }: "data/hic/merged/gd7-nc14/hic/gd7-nc14_2kb.bedpe.gz",
  {AssayContactMap, Tollrm910}: "data/hic/merged/Tollrm910-nc14/hic/Tollrm910-nc14_2kb.bedpe.gz",
  {AssayContactMap, Toll10B  }: "data/hic/merged/Toll10B-nc14/hic/Toll10B-nc14_2kb.bedpe.gz",

  {AssayRNASeq, Gd7      }: "external_data/koenecke_2016_2017/rnaseq_aligned/gd7_sorted_filtered_merged_canonical_chrs_rnaseq.bw",
  {AssayRNASeq, Tollrm910}: "external_data/koenecke_2016_2017/rnaseq_aligned/tlrm910_sorted_filtered_merged_canonical_chrs_rnaseq.bw",
  {AssayRNASeq, Toll10B  }: "external_data/koenecke_2016_2017/rnaseq_aligned/tl10b_sorted_filtered_merged_canonical_chrs_rnaseq.bw",

  {AssayH3K27ac, Gd7      }: "external_data/koenecke_2016_2017/chipseq_aligned/H3K27ac_gd7_sorted_filtered_merged_canonical_chrs.bw",
  {AssayH3K27ac, Tollrm910}: "external_data/extra_chip-seq/chipseq_aligned/H3K27ac_Tollrm910_sorted_filtered_merged_canonical_chrs.bw",
  {AssayH3K27ac, Toll10B  }: "external_data/koenecke_2016_2017/chipseq_aligned/H3K27ac_tl10b_sorted_filtered_merged_canonical_chrs.bw",

  {AssayH3K27me3, Gd7      }: "external_data/koenecke_2016_2017/chipseq_aligned/H3K27me3_gd7_sorted_filtered_merged_canonical_chrs.bw",
  {AssayH3K27me3, Tollrm910}: "external_data/extra_chip-seq/chipseq_aligned/H3K27me3_Tollrm910_sorted_filtered_merged_canonical_chrs.bw",
  {AssayH3K27me3, Toll10B  }: "external_data/koenecke_2016_2017/chipseq_aligned/H3K27me3_tl10b_sorted_filtered_merged_canonical_chrs.bw",

  // a single Pol II profile exists, it serves all conditions
  {AssayPolII, Gd7      }: "external_data/blythe_2015/aligned/PolII-pSer5_NC14-late_sorted_filtered_merged_canonical_chrs.bw",
  {AssayPolII, Tollrm910}: "external_data/blythe_2015/aligned/PolII-pSer5_NC14-late_sorted_filtered_merged_canonical_chrs.bw",
  {AssayPolII, Toll10B  }: "external_data/blythe_2015/aligned/PolII-pSer5_NC14-late_sorted_filtered_merged_canonical_chrs.bw",

  {AssayBoundary, Gd7      }: "data/boundaries/gd7-nc14_2kb_8.bw",
  {AssayBoundary, Tollrm910}: "data/boundaries/Tollrm910-nc14_2kb_8.bw",
  {AssayBoundary, Toll10B  }: "data/boundaries/Toll10B-nc14_2kb_8.bw",

  {AssayEnhancers, Gd7      }: "data/supplementary_tables/gd7_candidate_enhancers.bed",
  {AssayEnhancers, Tollrm910}: "data/supplementary_tables/Tollrm910_candidate_enhancers.bed",
  {AssayEnhancers, Toll10B  }: "data/supplementary_tables/Toll10B_candidate_enhancers.bed",
}

/* -------------------------------------------------------------------------- */

// Resolves logical dataset names to files below a data directory, which
// may also be an http(s) URL. Files are not touched, they are opened
// lazily by the tracks.
type DatasetRegistry struct {
  Root    string
  entries map[datasetKey]string
}

func NewDatasetRegistry(root string) *DatasetRegistry {
  entries := make(map[datasetKey]string, len(datasetPaths))
  for k, v := range datasetPaths {
    entries[k] = v
  }
  return &DatasetRegistry{Root: root, entries: entries}
}

func (registry *DatasetRegistry) Lookup(assay Assay, condition Condition) (DataSource, error) {
  path, ok := registry.entries[datasetKey{assay, condition}]
  if !ok {
    return DataSource{}, &UnknownDatasetError{Name: assay.String(), Condition: condition.String()}
  }
  return DataSource{
    Name     : fmt.Sprintf("%s/%s", condition, assay),
    Assay    : assay,
    Condition: condition,
    Filename : registry.join(path) }, nil
}

func (registry *DatasetRegistry) join(path string) string {
  if isRemote(registry.Root) {
    return strings.TrimSuffix(registry.Root, "/") + "/" + path
  }
  return filepath.Join(registry.Root, path)
}

// Resolve a logical dataset name, e.g. `H3K27ac', for a condition label,
// e.g. `tl10b'.
func (registry *DatasetRegistry) Resolve(name, condition string) (DataSource, error) {
  c, ok1 := ParseCondition(condition)
  a, ok2 := ParseAssay(name)
  if !ok1 || !ok2 {
    return DataSource{}, &UnknownDatasetError{Name: name, Condition: condition}
  }
  return registry.Lookup(a, c)
}

func (registry *DatasetRegistry) GeneModels() DataSource {
  return DataSource{
    Name     : AssayGeneModels.String(),
    Assay    : AssayGeneModels,
    Condition: NoCondition,
    Filename : registry.join(geneModelsPath) }
}

// Datasets that are declared but not part of any figure.
func (registry *DatasetRegistry) Unused() []DataSource {
  r := []DataSource{}
  for _, c := range Conditions {
    if src, err := registry.Lookup(AssayBoundary, c); err == nil {
      r = append(r, src)
    }
  }
  return r
}
