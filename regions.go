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
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Regions is an ordered list of genomic bins. It labels the rows and
// columns of a Hi-C contact matrix. Bins of the same chromosome are
// required to be contiguous, sorted, and non-overlapping.
type Regions struct {
  Seqnames []string
  Ranges   []Range
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewRegions(seqnames []string, from, to []int) Regions {
  n := len(seqnames)
  if len(from) != n || len(to) != n {
    panic("NewRegions(): invalid arguments")
  }
  ranges := make([]Range, n)
  for i := 0; i < n; i++ {
    ranges[i] = NewRange(from[i], to[i])
  }
  return Regions{seqnames, ranges}
}

// Partition a genome into consecutive bins of the given size. The last
// bin of each chromosome may be shorter than binsize.
func BinGenome(genome Genome, binsize int) Regions {
  if binsize <= 0 {
    panic("BinGenome(): invalid bin size")
  }
  seqnames := []string{}
  from     := []int{}
  to       := []int{}

  for i := 0; i < genome.Length(); i++ {
    length := genome.Lengths[i]
    for k := 0; k < length; k += binsize {
      seqnames = append(seqnames, genome.Seqnames[i])
      from     = append(from,     k)
      to       = append(to,       iMin(k+binsize, length))
    }
  }
  return NewRegions(seqnames, from, to)
}

func (regions *Regions) Clone() Regions {
  n := regions.Length()
  result := Regions{}
  result.Seqnames = make([]string, n)
  result.Ranges   = make([]Range, n)
  copy(result.Seqnames, regions.Seqnames)
  copy(result.Ranges,   regions.Ranges)
  return result
}

/* -------------------------------------------------------------------------- */

func (regions *Regions) Length() int {
  return len(regions.Ranges)
}

func (regions *Regions) Subset(indices []int) Regions {
  n := len(indices)
  seqnames := make([]string, n)
  from     := make([]int, n)
  to       := make([]int, n)

  for i := 0; i < n; i++ {
    seqnames[i] = regions.Seqnames[indices[i]]
    from    [i] = regions.Ranges  [indices[i]].From
    to      [i] = regions.Ranges  [indices[i]].To
  }
  return NewRegions(seqnames, from, to)
}

func (regions *Regions) Slice(ifrom, ito int) Regions {
  n := ito-ifrom
  seqnames := make([]string, n)
  from     := make([]int, n)
  to       := make([]int, n)

  for i := ifrom; i < ito; i++ {
    seqnames[i-ifrom] = regions.Seqnames[i]
    from    [i-ifrom] = regions.Ranges  [i].From
    to      [i-ifrom] = regions.Ranges  [i].To
  }
  return NewRegions(seqnames, from, to)
}

// Bin size of the regions. Returns an error if bins do not have a
// uniform size. The trailing bin of each chromosome is exempt since
// it is typically truncated at the chromosome end.
func (regions *Regions) Binsize() (int, error) {
  binsize := 0
  for i := 0; i < regions.Length(); i++ {
    last := i+1 == regions.Length() ||
      regions.Seqnames[i+1] != regions.Seqnames[i]
    if binsize == 0 {
      if last {
        // a single bin determines the bin size only if there is no
        // other chromosome left
        if i+1 == regions.Length() {
          return regions.Ranges[i].Length(), nil
        }
        continue
      }
      binsize = regions.Ranges[i].Length()
      continue
    }
    if last {
      if regions.Ranges[i].Length() > binsize {
        return 0, fmt.Errorf("Binsize(): bins have non-uniform size")
      }
    } else {
      if regions.Ranges[i].Length() != binsize {
        return 0, fmt.Errorf("Binsize(): bins have non-uniform size")
      }
    }
  }
  if binsize == 0 {
    return 0, fmt.Errorf("Binsize(): empty region list")
  }
  return binsize, nil
}

// Index of the bin containing the given position. Returns an error
// if the position is not covered by any bin.
func (regions *Regions) Find(seqname string, position int) (int, error) {
  for i := 0; i < regions.Length(); i++ {
    if regions.Seqnames[i] != seqname {
      continue
    }
    if regions.Ranges[i].From <= position && position < regions.Ranges[i].To {
      return i, nil
    }
  }
  return -1, fmt.Errorf("Find(): position %s:%d not covered by any bin", seqname, position)
}

// Maximal runs of bins belonging to the same chromosome, as index
// intervals [from, to).
func (regions *Regions) ChromBounds() []Range {
  bounds := []Range{}
  for i := 0; i < regions.Length(); {
    j := i+1
    for j < regions.Length() && regions.Seqnames[j] == regions.Seqnames[i] {
      j++
    }
    bounds = append(bounds, NewRange(i, j))
    i = j
  }
  return bounds
}

/* region descriptors
 * -------------------------------------------------------------------------- */

// Parse a region descriptor of the form `chr2:3400000-5600000'. The
// base range is optional, i.e. `chr2' selects the full chromosome.
func ParseRegion(str string) (string, Range, error) {
  tmp := strings.SplitN(str, ":", 2)
  if tmp[0] == "" {
    return "", Range{}, fmt.Errorf("ParseRegion(): invalid region descriptor `%s'", str)
  }
  if len(tmp) == 1 {
    return tmp[0], NewRange(0, 1<<62), nil
  }
  pos := strings.SplitN(tmp[1], "-", 2)
  if len(pos) != 2 {
    return "", Range{}, fmt.Errorf("ParseRegion(): invalid region descriptor `%s'", str)
  }
  t1, err := strconv.ParseInt(strings.Replace(pos[0], ",", "", -1), 10, 64)
  if err != nil {
    return "", Range{}, err
  }
  t2, err := strconv.ParseInt(strings.Replace(pos[1], ",", "", -1), 10, 64)
  if err != nil {
    return "", Range{}, err
  }
  if t1 > t2 {
    return "", Range{}, fmt.Errorf("ParseRegion(): invalid region descriptor `%s'", str)
  }
  return tmp[0], NewRange(int(t1), int(t2)), nil
}

// Indices of all bins overlapping the given region descriptor.
func (regions *Regions) QueryRegion(str string) ([]int, error) {
  seqname, r, err := ParseRegion(str)
  if err != nil {
    return nil, err
  }
  indices := []int{}
  for i := 0; i < regions.Length(); i++ {
    if regions.Seqnames[i] != seqname {
      continue
    }
    if regions.Ranges[i].Overlaps(r) {
      indices = append(indices, i)
    }
  }
  if len(indices) == 0 {
    return nil, fmt.Errorf("QueryRegion(): region `%s' does not overlap any bin", str)
  }
  return indices, nil
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (regions Regions) String() string {
  var buffer bytes.Buffer

  buffer.WriteString(
    fmt.Sprintf("%10s %12s %12s", "seqnames", "from", "to"))

  for i := 0; i < regions.Length(); i++ {
    buffer.WriteString(
      fmt.Sprintf("\n%10s %12d %12d",
        regions.Seqnames[i],
        regions.Ranges  [i].From,
        regions.Ranges  [i].To))
  }
  return buffer.String()
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import regions from a Bed file with at least three columns.
func (regions *Regions) ImportBed(filename string) error {
  scanner, closer, err := openFileScanner(filename)
  if err != nil {
    return err
  }
  defer closer()

  seqnames := []string{}
  from     := []int{}
  to       := []int{}

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
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(t1))
    to       = append(to,       int(t2))
  }
  *regions = NewRegions(seqnames, from, to)

  return nil
}

// Export regions as bed file with three columns.
func (regions Regions) ExportBed3(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)

  for i := 0; i < regions.Length(); i++ {
    fmt.Fprintf(w,   "%s", regions.Seqnames[i])
    fmt.Fprintf(w, "\t%d", regions.Ranges[i].From)
    fmt.Fprintf(w, "\t%d", regions.Ranges[i].To)
    fmt.Fprintf(w, "\n")
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
