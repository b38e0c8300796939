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

import "bytes"
import "database/sql"
import "fmt"
import "strconv"
import "strings"

import _ "github.com/go-sql-driver/mysql"

/* -------------------------------------------------------------------------- */

// Structure containing chromosome sizes.
type Genome struct {
  Seqnames []string
  Lengths  []int
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewGenome(seqnames []string, lengths []int) Genome {
  if len(seqnames) != len(lengths) {
    panic("NewGenome(): invalid parameters")
  }
  return Genome{seqnames, lengths}
}

/* -------------------------------------------------------------------------- */

// Number of chromosomes in the structure.
func (genome Genome) Length() int {
  return len(genome.Seqnames)
}

// Length of the given chromosome. Returns an error if the chromosome
// is not found.
func (genome Genome) SeqLength(seqname string) (int, error) {
  for i, s := range genome.Seqnames {
    if seqname == s {
      return genome.Lengths[i], nil
    }
  }
  return 0, fmt.Errorf("sequence `%s' not found", seqname)
}

// Number of bins of the given size on the given chromosome. Positions
// that do not fully cover the last bin still count as one bin, since
// Hi-C matrices include the trailing partial bin.
func (genome Genome) NumBins(seqname string, binsize int) (int, error) {
  length, err := genome.SeqLength(seqname)
  if err != nil {
    return 0, err
  }
  return divIntUp(length, binsize), nil
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (genome Genome) String() string {
  var buffer bytes.Buffer

  buffer.WriteString(
    fmt.Sprintf("%10s %10s", "seqnames", "lengths"))

  for i := 0; i < genome.Length(); i++ {
    buffer.WriteString(
      fmt.Sprintf("\n%10s %10d",
        genome.Seqnames[i],
        genome.Lengths [i]))
  }
  return buffer.String()
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import chromosome sizes from a UCSC text file. The format is a whitespace
// separated table where the first column is the name of the chromosome and
// the second column the chromosome length.
func (genome *Genome) Import(filename string) error {
  scanner, closer, err := openFileScanner(filename)
  if err != nil {
    return err
  }
  defer closer()

  seqnames := []string{}
  lengths  := []int{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 2 {
      return fmt.Errorf("Import(): invalid genome file `%s'", filename)
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return err
    }
    seqnames = append(seqnames, fields[0])
    lengths  = append(lengths,  int(t1))
  }
  *genome = NewGenome(seqnames, lengths)

  return nil
}

// Export chromosome sizes as a UCSC chrom.sizes text file.
func (genome Genome) Export(filename string) error {
  var buffer bytes.Buffer

  for i := 0; i < genome.Length(); i++ {
    fmt.Fprintf(&buffer, "%s\t%d\n",
      genome.Seqnames[i],
      genome.Lengths [i])
  }
  return writeFile(filename, &buffer, false)
}

/* import from ucsc
 * -------------------------------------------------------------------------- */

// Import chromosome sizes from the public UCSC MySQL server. The argument
// is a UCSC genome assembly name such as hg19 or mm10.
func (genome *Genome) ImportUCSC(assembly string) error {
  var i_seqname string
  var i_length  int

  seqnames := []string{}
  lengths  := []int{}

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", assembly))
  if err != nil {
    return err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return err
  }

  /* receive data */
  rows, err := db.Query("SELECT chrom, size FROM chromInfo")
  if err != nil {
    return err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_seqname, &i_length); err != nil {
      return err
    }
    seqnames = append(seqnames, i_seqname)
    lengths  = append(lengths,  i_length)
  }
  *genome = NewGenome(seqnames, lengths)

  return nil
}
