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
import   "path/filepath"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestCondition(t *testing.T) {
  for str, c := range map[string]Condition{
    "gd7": Gd7, "gd7-nc14": Gd7,
    "Tollrm910": Tollrm910, "tlrm910": Tollrm910,
    "Toll10B": Toll10B, "tl10b": Toll10B, "toll10b-nc14": Toll10B,
  } {
    r, ok := ParseCondition(str)
    if !ok || r != c {
      t.Errorf("TestCondition failed for `%s'", str)
    }
  }
  _, ok := ParseCondition("wildtype")
  assert.False(t, ok)
  assert.Equal(t, "Toll10B", Toll10B.String())
}

func TestDatasetRegistry1(t *testing.T) {
  registry := NewDatasetRegistry("/data")

  for _, c := range Conditions {
    for _, a := range []Assay{AssayContactMap, AssayRNASeq, AssayH3K27ac, AssayH3K27me3, AssayPolII, AssayEnhancers} {
      src, err := registry.Lookup(a, c)
      require.NoError(t, err)
      assert.Equal(t, a, src.Assay)
      assert.Equal(t, c, src.Condition)
      assert.True (t, filepath.IsAbs(src.Filename))
    }
  }
  src, err := registry.Resolve("H3K27ac", "tl10b")
  require.NoError(t, err)
  assert.Equal(t, "Toll10B/H3K27ac", src.Name)
  assert.Equal(t, "/data/external_data/koenecke_2016_2017/chipseq_aligned/H3K27ac_tl10b_sorted_filtered_merged_canonical_chrs.bw", src.Filename)
}

func TestDatasetRegistry2(t *testing.T) {
  registry := NewDatasetRegistry(".")

  // a single Pol II profile serves all conditions
  a, err := registry.Lookup(AssayPolII, Gd7)
  require.NoError(t, err)
  b, err := registry.Lookup(AssayPolII, Toll10B)
  require.NoError(t, err)
  assert.Equal(t, a.Filename, b.Filename)

  src, err := registry.Lookup(AssayContactMap, Tollrm910)
  require.NoError(t, err)
  assert.Equal(t, "data/hic/merged/Tollrm910-nc14/hic/Tollrm910-nc14_2kb.bedpe.gz", src.Filename)

  assert.Len(t, registry.Unused(), 3)
  assert.Equal(t, AssayGeneModels, registry.GeneModels().Assay)
}

func TestDatasetRegistryUnknown(t *testing.T) {
  registry := NewDatasetRegistry(".")

  var target *UnknownDatasetError

  _, err := registry.Resolve("H3K4me3", "gd7")
  require.True(t, errors.As(err, &target))
  assert.Equal(t, "H3K4me3", target.Name)

  _, err = registry.Resolve("rnaseq", "wildtype")
  require.True(t, errors.As(err, &target))
  assert.Equal(t, "wildtype", target.Condition)

  _, err = registry.Lookup(AssayRNASeq, NoCondition)
  assert.True(t, errors.As(err, &target))
}
