/* Copyright (C) 2017 Vaquerizas lab
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

package tadtool

/* -------------------------------------------------------------------------- */

import "math"
import "math/rand"
import "testing"

/* -------------------------------------------------------------------------- */

func testTads(seqnames []string, from, to []int) Tads {
  tads := Tads{}
  tads.Regions = NewRegions(seqnames, from, to)
  tads.Scores  = make([]float64, len(seqnames))
  return tads
}

/* -------------------------------------------------------------------------- */

func TestVariationOfInformationIdentical(t *testing.T) {

  genome  := NewGenome([]string{"chr1"}, []int{100})
  regions := BinGenome(genome, 10)

  tads1 := testTads(
    []string{"chr1", "chr1"},
    []int{ 0,  50},
    []int{50, 100})
  tads2 := testTads(
    []string{"chr1", "chr1"},
    []int{ 0,  50},
    []int{50, 100})

  r := rand.New(rand.NewSource(1))

  results, err := CompareTads(tads1, tads2, regions, 10, r)
  if err != nil {
    t.Error(err)
  }
  if len(results) != 1 {
    t.Error("test failed")
  }
  if math.Abs(results[0].VI) > 1e-10 {
    t.Error("test failed")
  }
  if results[0].Pvalue <= 0.0 || results[0].Pvalue > 1.0 {
    t.Error("test failed")
  }
}

func TestVariationOfInformationDifferent(t *testing.T) {

  genome  := NewGenome([]string{"chr1"}, []int{100})
  regions := BinGenome(genome, 10)

  tads1 := testTads(
    []string{"chr1", "chr1"},
    []int{ 0,  50},
    []int{50, 100})
  tads2 := testTads(
    []string{"chr1", "chr1"},
    []int{ 0,  20},
    []int{20, 100})

  r := rand.New(rand.NewSource(1))

  results, err := CompareTads(tads1, tads2, regions, 10, r)
  if err != nil {
    t.Error(err)
  }
  if results[0].VI <= 0.0 || results[0].VI > 1.0 {
    t.Error("test failed")
  }
}

func TestTadsToPartitionGaps(t *testing.T) {

  genome  := NewGenome([]string{"chr1"}, []int{100})
  regions := BinGenome(genome, 10)

  // domains cover bins 2-3 and 6-7, the gaps become intervals of
  // their own
  tads := testTads(
    []string{"chr1", "chr1"},
    []int{20, 60},
    []int{40, 80})

  part := tadsToPartition(tads, regions, NewRange(0, 10))

  if len(part.intervals) != 5 {
    t.Error("test failed")
  }
  if part.intervals[0] != NewRange(0, 2) ||
    (part.intervals[1] != NewRange(2, 4)) ||
    (part.intervals[2] != NewRange(4, 6)) ||
    (part.intervals[3] != NewRange(6, 8)) ||
    (part.intervals[4] != NewRange(8, 10)) {
    t.Error("test failed")
  }
}

func TestPartitionShuffle(t *testing.T) {

  genome  := NewGenome([]string{"chr1"}, []int{100})
  regions := BinGenome(genome, 10)

  tads := testTads(
    []string{"chr1", "chr1", "chr1"},
    []int{ 0, 30, 40},
    []int{30, 40, 100})

  part := tadsToPartition(tads, regions, NewRange(0, 10))

  r := rand.New(rand.NewSource(1))

  for i := 0; i < 10; i++ {
    shuffled := part.shuffle(r)
    if len(shuffled.intervals) != len(part.intervals) {
      t.Error("test failed")
    }
    // shuffled intervals still partition all bins
    pos := 0
    for _, s := range shuffled.intervals {
      if s.From != pos {
        t.Error("test failed")
      }
      pos = s.To
    }
    if pos != part.n {
      t.Error("test failed")
    }
    // entropy is invariant under shuffling
    if math.Abs(shuffled.entropy()-part.entropy()) > 1e-10 {
      t.Error("test failed")
    }
  }
}

func TestBenjaminiHochberg(t *testing.T) {

  pvals := []float64{0.041, 0.008, 0.039, 0.001, 0.205, 0.042, 0.074, 0.06}

  if k := BenjaminiHochberg(pvals, 0.05); k != 2 {
    t.Error("test failed")
  }
  if k := BenjaminiHochberg([]float64{0.9, 0.8}, 0.05); k != 0 {
    t.Error("test failed")
  }
}
