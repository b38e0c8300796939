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

import "fmt"
import "math"
import "math/rand"
import "sort"

/* -------------------------------------------------------------------------- */

// SimilarityResult compares two TAD partitions on one chromosome. The
// variation of information is normalised to [0, 1], where 0 means the
// partitions are identical. The p-value estimates how likely a VI at
// most as small arises from randomly shuffled domain lengths.
type SimilarityResult struct {
  Seqname string
  VI      float64
  Pvalue  float64
}

// A partition of the bins [0, n) of one chromosome into consecutive
// index intervals [from, to).
type partition struct {
  intervals []Range
  n         int
}

/* -------------------------------------------------------------------------- */

// Convert the TADs falling on the bin index interval bounds to a
// partition of that interval. Gaps between TADs become intervals of
// their own, so that the partition covers every bin.
func tadsToPartition(tads Tads, regions Regions, bounds Range) partition {
  chrom := regions.Slice(bounds.From, bounds.To)
  part  := partition{nil, chrom.Length()}
  pos   := 0

  seqname := chrom.Seqnames[0]

  for i := 0; i < tads.Length(); i++ {
    if tads.Seqnames[i] != seqname {
      continue
    }
    from := -1
    to   := -1
    for k := 0; k < chrom.Length(); k++ {
      if chrom.Ranges[k].Overlaps(tads.Ranges[i]) {
        if from == -1 {
          from = k
        }
        to = k+1
      }
    }
    if from == -1 {
      continue
    }
    if from > pos {
      part.intervals = append(part.intervals, NewRange(pos, from))
    }
    if from < pos {
      // overlapping domains, clip at the previous one
      from = pos
      if from >= to {
        continue
      }
    }
    part.intervals = append(part.intervals, NewRange(from, to))
    pos = to
  }
  if pos < part.n {
    part.intervals = append(part.intervals, NewRange(pos, part.n))
  }
  return part
}

/* variation of information
 * -------------------------------------------------------------------------- */

func (part partition) entropy() float64 {
  h := 0.0
  for _, r := range part.intervals {
    p := float64(r.Length())/float64(part.n)
    if p > 0 {
      h -= p*math.Log(p)
    }
  }
  return h
}

func mutualInformation(part1, part2 partition) float64 {
  n  := float64(part1.n)
  mi := 0.0
  for _, r := range part1.intervals {
    for _, s := range part2.intervals {
      o := r.Intersection(s).Length()
      if o == 0 {
        continue
      }
      p1 := float64(r.Length())/n
      p2 := float64(s.Length())/n
      po := float64(o)/n
      mi += po*math.Log(po/(p1*p2))
    }
  }
  return mi
}

// Variation of information between two partitions, normalised by
// log(n). More efficient than the direct definition since the
// entropies are reused when shuffling:
//
//   VI = H(1) + H(2) - 2*I(1, 2)
func variationOfInformation(part1, part2 partition) float64 {
  if part1.n != part2.n {
    panic("variationOfInformation(): partitions cover different bin counts")
  }
  if part1.n <= 1 {
    return 0.0
  }
  vi := part1.entropy() + part2.entropy() - 2.0*mutualInformation(part1, part2)
  return vi/math.Log(float64(part1.n))
}

/* permutation test
 * -------------------------------------------------------------------------- */

// Randomly reorder the interval lengths of a partition and restack
// them into consecutive intervals.
func (part partition) shuffle(r *rand.Rand) partition {
  m     := len(part.intervals)
  sizes := make([]int, m)
  for j, v := range r.Perm(m) {
    sizes[v] = part.intervals[j].Length()
  }
  result := partition{make([]Range, m), part.n}
  pos    := 0
  for j := 0; j < m; j++ {
    result.intervals[j] = NewRange(pos, pos+sizes[j])
    pos += sizes[j]
  }
  return result
}

// Estimate the probability of observing a VI at most as small as vi
// when domain lengths are randomly shuffled. Both partitions are
// shuffled against the respective other and the two estimates are
// averaged.
func permutationPvalue(part1, part2 partition, vi float64, nshuffles int, r *rand.Rand) float64 {
  count1 := 0
  count2 := 0

  for i := 0; i < nshuffles; i++ {
    if variationOfInformation(part1, part2.shuffle(r)) - vi < 1e-10 {
      count1++
    }
    if variationOfInformation(part1.shuffle(r), part2) - vi < 1e-10 {
      count2++
    }
  }
  p1 := float64(count1+1)/float64(nshuffles+1)
  p2 := float64(count2+1)/float64(nshuffles+1)
  return (p1+p2)/2.0
}

/* -------------------------------------------------------------------------- */

// Compare two TAD lists on the binned chromosomes given by regions.
// For every chromosome the normalised variation of information and a
// permutation p-value with the given number of shuffles is computed.
func CompareTads(tads1, tads2 Tads, regions Regions, nshuffles int, r *rand.Rand) ([]SimilarityResult, error) {
  if regions.Length() == 0 {
    return nil, fmt.Errorf("CompareTads(): empty region list")
  }
  if nshuffles < 1 {
    return nil, fmt.Errorf("CompareTads(): invalid number of shuffles")
  }
  results := []SimilarityResult{}

  for _, bounds := range regions.ChromBounds() {
    part1 := tadsToPartition(tads1, regions, bounds)
    part2 := tadsToPartition(tads2, regions, bounds)

    vi := variationOfInformation(part1, part2)

    results = append(results, SimilarityResult{
      Seqname: regions.Seqnames[bounds.From],
      VI     : vi,
      Pvalue : permutationPvalue(part1, part2, vi, nshuffles, r) })
  }
  return results, nil
}

// Benjamini-Hochberg selection at the given level. Returns the
// number of hypotheses from the sorted p-value list that can be
// rejected. The argument is not modified.
func BenjaminiHochberg(pvals []float64, alpha float64) int {
  sorted := make([]float64, len(pvals))
  copy(sorted, pvals)
  sort.Float64s(sorted)

  imax := -1
  for i := len(sorted)-1; i >= 0; i-- {
    if sorted[i] < float64(i+1)*alpha/float64(len(sorted)) {
      imax = i
      break
    }
  }
  return imax+1
}
