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
import "path/filepath"
import "testing"

/* -------------------------------------------------------------------------- */

func TestCallInsulationTads(t *testing.T) {

  genome  := NewGenome([]string{"chr1"}, []int{70})
  regions := BinGenome(genome, 10)

  index := []float64{math.NaN(), 1.0, 2.0, 0.2, 1.5, math.NaN(), 3.0}

  tads, err := CallInsulationTads(index, regions, 1.0)
  if err != nil {
    t.Error(err)
  }
  if tads.Length() != 3 {
    t.Error("test failed")
  }
  if tads.Ranges[0].From != 10 || tads.Ranges[0].To != 30 {
    t.Error("test failed")
  }
  if tads.Ranges[1].From != 40 || tads.Ranges[1].To != 50 {
    t.Error("test failed")
  }
  if tads.Ranges[2].From != 60 || tads.Ranges[2].To != 70 {
    t.Error("test failed")
  }
  if math.Abs(tads.Scores[0]-1.5) > 1e-10 {
    t.Error("test failed")
  }
}

func TestCallInsulationTadsChromBreak(t *testing.T) {

  genome  := NewGenome([]string{"chr1", "chr2"}, []int{30, 30})
  regions := BinGenome(genome, 10)

  index := []float64{2.0, 2.0, 2.0, 2.0, 2.0, 2.0}

  tads, err := CallInsulationTads(index, regions, 1.0)
  if err != nil {
    t.Error(err)
  }
  // a domain never crosses a chromosome boundary
  if tads.Length() != 2 {
    t.Error("test failed")
  }
  if tads.Seqnames[0] != "chr1" || tads.Seqnames[1] != "chr2" {
    t.Error("test failed")
  }
}

func TestCallDirectionalityTads(t *testing.T) {

  genome  := NewGenome([]string{"chr1"}, []int{80})
  regions := BinGenome(genome, 10)

  index := []float64{math.NaN(), 5.0, 0.0, -5.0, 0.0, 5.0, 2.0, -5.0}

  tads, err := CallDirectionalityTads(index, regions, 5.0)
  if err != nil {
    t.Error(err)
  }
  if tads.Length() != 2 {
    t.Error("test failed")
  }
  // first domain: downstream biased bin 1 to upstream biased bin 3
  if tads.Ranges[0].From != 10 || tads.Ranges[0].To != 40 {
    t.Error("test failed")
  }
  // second domain: bins 5 to 7
  if tads.Ranges[1].From != 50 || tads.Ranges[1].To != 80 {
    t.Error("test failed")
  }
}

func TestCallDirectionalityTadsUnclosed(t *testing.T) {

  genome  := NewGenome([]string{"chr1"}, []int{40})
  regions := BinGenome(genome, 10)

  // downstream bias without a matching upstream biased stretch
  index := []float64{5.0, 5.0, 0.0, 0.0}

  tads, err := CallDirectionalityTads(index, regions, 5.0)
  if err != nil {
    t.Error(err)
  }
  if tads.Length() != 0 {
    t.Error("test failed")
  }
}

func TestCallTadsInvalidArguments(t *testing.T) {

  genome  := NewGenome([]string{"chr1"}, []int{40})
  regions := BinGenome(genome, 10)

  if _, err := CallInsulationTads([]float64{1.0}, regions, 0.0); err == nil {
    t.Error("test failed")
  }
  if _, err := CallDirectionalityTads([]float64{1, 1, 1, 1}, regions, -1.0); err == nil {
    t.Error("test failed")
  }
}

func TestTadsMeanLength(t *testing.T) {

  genome  := NewGenome([]string{"chr1"}, []int{70})
  regions := BinGenome(genome, 10)

  index := []float64{2.0, 2.0, 0.0, 2.0, 0.0, 0.0, 0.0}

  tads, err := CallInsulationTads(index, regions, 1.0)
  if err != nil {
    t.Error(err)
  }
  if tads.Length() != 2 {
    t.Error("test failed")
  }
  if math.Abs(tads.MeanLength()-15.0) > 1e-10 {
    t.Error("test failed")
  }
  empty := Tads{}
  if !math.IsNaN(empty.MeanLength()) {
    t.Error("test failed")
  }
}

func TestTadsBedRoundTrip(t *testing.T) {

  tads1 := Tads{
    Regions: NewRegions([]string{"chr1", "chr1"}, []int{0, 50}, []int{50, 80}),
    Scores : []float64{1.5, math.NaN()}}

  filename := filepath.Join(t.TempDir(), "tads.bed")

  if err := tads1.ExportBed(filename, false); err != nil {
    t.Error(err)
  }
  tads2 := Tads{}
  if err := tads2.ImportBed(filename); err != nil {
    t.Error(err)
  }
  if tads2.Length() != 2 {
    t.Error("test failed")
  }
  if tads2.Seqnames[1] != "chr1" || tads2.Ranges[1].From != 50 || tads2.Ranges[1].To != 80 {
    t.Error("test failed")
  }
  // scores survive the round trip, `.' maps back to NaN
  if math.Abs(tads2.Scores[0]-1.5) > 1e-10 {
    t.Error("test failed")
  }
  if !math.IsNaN(tads2.Scores[1]) {
    t.Error("test failed")
  }
}
