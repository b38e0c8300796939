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

import "bufio"
import "bytes"
import "fmt"
import "math"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Tads is a list of called domains together with the mean score of the
// bins each domain spans.
type Tads struct {
  Regions
  Scores []float64
}

/* calling
 * -------------------------------------------------------------------------- */

// Call TADs from an insulation index at the given cutoff. Maximal runs
// of consecutive bins with index >= cutoff form domains; NaN values and
// chromosome boundaries break a run. A single bin above the cutoff is
// a valid domain.
func CallInsulationTads(index []float64, regions Regions, cutoff float64) (Tads, error) {
  if len(index) != regions.Length() {
    return Tads{}, fmt.Errorf("CallInsulationTads(): got %d index values for %d regions", len(index), regions.Length())
  }
  tads := Tads{}

  for _, bounds := range regions.ChromBounds() {
    for i := bounds.From; i < bounds.To; {
      if math.IsNaN(index[i]) || index[i] < cutoff {
        i++
        continue
      }
      j := i+1
      for j < bounds.To && !math.IsNaN(index[j]) && index[j] >= cutoff {
        j++
      }
      tads.append(regions, index, i, j)
      i = j
    }
  }
  return tads, nil
}

// Call TADs from a directionality index at the given cutoff. A domain
// starts at the first bin of a maximal run with index >= +cutoff and
// ends at the last bin of the next maximal run with index <= -cutoff
// on the same chromosome. Positive runs encountered while a domain is
// open do not start a new one.
func CallDirectionalityTads(index []float64, regions Regions, cutoff float64) (Tads, error) {
  if len(index) != regions.Length() {
    return Tads{}, fmt.Errorf("CallDirectionalityTads(): got %d index values for %d regions", len(index), regions.Length())
  }
  if cutoff < 0 {
    return Tads{}, fmt.Errorf("CallDirectionalityTads(): cutoff must be non-negative")
  }
  tads := Tads{}

  for _, bounds := range regions.ChromBounds() {
    start := -1
    for i := bounds.From; i < bounds.To; i++ {
      if math.IsNaN(index[i]) {
        continue
      }
      if start == -1 {
        if index[i] >= cutoff {
          start = i
        }
        continue
      }
      if index[i] <= -cutoff {
        // extend to the end of the negative run
        j := i+1
        for j < bounds.To && !math.IsNaN(index[j]) && index[j] <= -cutoff {
          j++
        }
        tads.append(regions, index, start, j)
        start = -1
        i     = j-1
      }
    }
  }
  return tads, nil
}

// Append the domain spanning the bin index interval [i, j).
func (tads *Tads) append(regions Regions, index []float64, i, j int) {
  sum := 0.0
  n   := 0
  for k := i; k < j; k++ {
    if math.IsNaN(index[k]) {
      continue
    }
    sum += index[k]
    n   += 1
  }
  score := math.NaN()
  if n > 0 {
    score = sum/float64(n)
  }
  tads.Seqnames = append(tads.Seqnames, regions.Seqnames[i])
  tads.Ranges   = append(tads.Ranges,   NewRange(regions.Ranges[i].From, regions.Ranges[j-1].To))
  tads.Scores   = append(tads.Scores,   score)
}

/* statistics
 * -------------------------------------------------------------------------- */

// Mean domain length in base pairs. Returns NaN for an empty list.
func (tads Tads) MeanLength() float64 {
  if tads.Length() == 0 {
    return math.NaN()
  }
  sum := 0.0
  for i := 0; i < tads.Length(); i++ {
    sum += float64(tads.Ranges[i].Length())
  }
  return sum/float64(tads.Length())
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import TADs from a Bed file with at least three columns. Scores are
// taken from the fifth column if present; a `.' score maps to NaN.
func (tads *Tads) ImportBed(filename string) error {
  scanner, closer, err := openFileScanner(filename)
  if err != nil {
    return err
  }
  defer closer()

  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  scores   := []float64{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if fields[0] == "track" || fields[0] == "browser" {
      continue
    }
    if len(fields) < 3 {
      return fmt.Errorf("ImportBed(): bed file must have at least three columns")
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return err
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64)
    if err != nil {
      return err
    }
    score := math.NaN()
    if len(fields) >= 5 && fields[4] != "." {
      t3, err := strconv.ParseFloat(fields[4], 64)
      if err != nil {
        return err
      }
      score = t3
    }
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(t1))
    to       = append(to,       int(t2))
    scores   = append(scores,   score)
  }
  tads.Regions = NewRegions(seqnames, from, to)
  tads.Scores  = scores

  return nil
}

// Export TADs as a six column bed file.
func (tads Tads) ExportBed(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)

  for i := 0; i < tads.Length(); i++ {
    fmt.Fprintf(w,   "%s", tads.Seqnames[i])
    fmt.Fprintf(w, "\t%d", tads.Ranges[i].From)
    fmt.Fprintf(w, "\t%d", tads.Ranges[i].To)
    fmt.Fprintf(w, "\ttad_%d", i+1)
    if math.IsNaN(tads.Scores[i]) {
      fmt.Fprintf(w, "\t%s", ".")
    } else {
      fmt.Fprintf(w, "\t%f", tads.Scores[i])
    }
    fmt.Fprintf(w, "\t%s", ".")
    fmt.Fprintf(w, "\n")
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

// Export TADs as a GFF file with feature type `domain'. Coordinates
// are converted to the one-based closed intervals required by GFF.
func (tads Tads) ExportGff(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)

  for i := 0; i < tads.Length(); i++ {
    fmt.Fprintf(w,   "%s", tads.Seqnames[i])
    fmt.Fprintf(w, "\t%s", "tadtool")
    fmt.Fprintf(w, "\t%s", "domain")
    fmt.Fprintf(w, "\t%d", tads.Ranges[i].From+1)
    fmt.Fprintf(w, "\t%d", tads.Ranges[i].To)
    if math.IsNaN(tads.Scores[i]) {
      fmt.Fprintf(w, "\t%s", ".")
    } else {
      fmt.Fprintf(w, "\t%f", tads.Scores[i])
    }
    fmt.Fprintf(w, "\t%s", ".")
    fmt.Fprintf(w, "\t%s", ".")
    fmt.Fprintf(w, "\tID=tad_%d", i+1)
    fmt.Fprintf(w, "\n")
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
