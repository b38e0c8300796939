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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "math"
import   "math/rand"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"
import . "github.com/vaquerizaslab/tadtool"

/* -------------------------------------------------------------------------- */

type SessionConfig struct {
  BinSize int
  Genome  string
  Sparse  bool
  Status  bool
  Threads int
  Verbose int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config SessionConfig, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* utility
 * -------------------------------------------------------------------------- */

func parseInts(str string) []int {
  result := []int{}
  for _, field := range strings.Split(str, ",") {
    t, err := strconv.ParseInt(field, 10, 64)
    if err != nil {
      log.Fatal(err)
    }
    result = append(result, int(t))
  }
  return result
}

func parseFloats(str string) []float64 {
  result := []float64{}
  for _, field := range strings.Split(str, ",") {
    t, err := strconv.ParseFloat(field, 64)
    if err != nil {
      log.Fatal(err)
    }
    result = append(result, t)
  }
  return result
}

/* import helpers
 * -------------------------------------------------------------------------- */

func importRegions(config SessionConfig, filename string) Regions {
  regions := Regions{}
  PrintStderr(config, 1, "Reading regions from `%s'... ", filename)
  if err := regions.ImportBed(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return regions
}

func importGenomeRegions(config SessionConfig) Regions {
  genome := Genome{}
  PrintStderr(config, 1, "Reading genome from `%s'... ", config.Genome)
  if err := genome.Import(config.Genome); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  if config.BinSize <= 0 {
    log.Fatal("a positive --bin-size is required together with --genome")
  }
  return BinGenome(genome, config.BinSize)
}

func importMatrix(config SessionConfig, filenameMatrix string, regions Regions) *HicMatrix {
  var m *HicMatrix
  var err error

  PrintStderr(config, 1, "Reading matrix from `%s'... ", filenameMatrix)
  if config.Sparse {
    m, err = ReadSparseMatrix(filenameMatrix, regions)
  } else {
    m, err = ReadDenseMatrix(filenameMatrix, regions)
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  if k := len(m.MaskedBins()); k > 0 {
    PrintStderr(config, 1, "Masked %d bin(s) without any contacts\n", k)
  }
  return m
}

func computeIndex(config SessionConfig, m *HicMatrix, method string, parameters InsulationParameters) []float64 {
  var index []float64
  var err     error

  PrintStderr(config, 1, "Computing %s index (window %d)... ", method, parameters.WindowSize)
  switch method {
  case MethodInsulation:
    index, err = InsulationIndex(m, parameters)
  case MethodDirectionality:
    index, err = DirectionalityIndex(m, parameters.WindowSize)
  default:
    PrintStderr(config, 1, "failed\n")
    log.Fatalf("invalid method `%s'", method)
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return index
}

/* tadtool tads
 * -------------------------------------------------------------------------- */

func mainTads(args []string) {

  config  := SessionConfig{}
  options := getopt.New()

  optMethod      := options. StringLong("method",       0 , "insulation", "index used for TAD calling [insulation (default), directionality]")
  optWindow      := options.    IntLong("window",       0 , 1000000,      "window size in base pairs (default: 1000000)")
  optCutoff      := options. StringLong("cutoff",       0 , "",           "cutoff applied to the index")
  optOffset      := options.    IntLong("offset",       0 , 0,            "insulation window offset from the diagonal in base pairs")
  optImpute      := options.   BoolLong("impute",       0 ,               "exclude masked bins from insulation windows instead of propagating NaN")
  optNoNormalise := options.   BoolLong("no-normalise", 0 ,               "do not normalise the insulation index by its chromosome mean")
  optNoLog       := options.   BoolLong("no-log",       0 ,               "do not log2-transform the normalised insulation index")
  optFormat      := options. StringLong("format",       0 , "bed",        "output format [bed (default), gff]")
  optSparse      := options.   BoolLong("sparse",       0 ,               "matrix file contains sparse `i j weight' triplets")
  optGenome      := options. StringLong("genome",       0 , "",           "UCSC chrom.sizes file; bins are generated with --bin-size instead of read from REGIONS.bed")
  optBinSize     := options.    IntLong("bin-size",     0 , -1,           "bin size in base pairs, required with --genome")
  optVerbose     := options.CounterLong("verbose",     'v',               "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",        'h',               "print help")

  options.SetParameters("<MATRIX> [<REGIONS.bed>] <TADS_OUTPUT>")
  options.Parse(args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if *optCutoff == "" {
    fmt.Fprintf(os.Stderr, "a --cutoff is required; use `tadtool scan' to explore candidate cutoffs\n")
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  cutoff, err := strconv.ParseFloat(*optCutoff, 64)
  if err != nil {
    log.Fatal(err)
  }
  config.Verbose = *optVerbose
  config.Sparse  = *optSparse
  config.Genome  = *optGenome
  config.BinSize = *optBinSize

  var regions Regions
  var filenameMatrix, filenameOut string

  if config.Genome != "" {
    if len(options.Args()) != 2 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameMatrix = options.Args()[0]
    filenameOut    = options.Args()[1]
    regions        = importGenomeRegions(config)
  } else {
    if len(options.Args()) != 3 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameMatrix = options.Args()[0]
    regions        = importRegions(config, options.Args()[1])
    filenameOut    = options.Args()[2]
  }
  m := importMatrix(config, filenameMatrix, regions)

  parameters := DefaultInsulationParameters(*optWindow)
  parameters.Offset    = *optOffset
  parameters.Impute    = *optImpute
  parameters.Normalise = !*optNoNormalise
  parameters.Log       = !*optNoLog

  index := computeIndex(config, m, *optMethod, parameters)

  var tads Tads

  PrintStderr(config, 1, "Calling TADs at cutoff %f... ", cutoff)
  switch *optMethod {
  case MethodInsulation:
    tads, err = CallInsulationTads(index, m.Regions, cutoff)
  case MethodDirectionality:
    tads, err = CallDirectionalityTads(index, m.Regions, cutoff)
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  PrintStderr(config, 1, "Called %d TADs with mean length %.1f\n", tads.Length(), tads.MeanLength())

  PrintStderr(config, 1, "Writing TADs to `%s'... ", filenameOut)
  switch *optFormat {
  case "bed":
    err = tads.ExportBed(filenameOut, false)
  case "gff":
    err = tads.ExportGff(filenameOut, false)
  default:
    PrintStderr(config, 1, "failed\n")
    log.Fatalf("invalid output format `%s'", *optFormat)
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* tadtool scan
 * -------------------------------------------------------------------------- */

func mainScan(args []string) {

  config  := SessionConfig{}
  options := getopt.New()

  optMethod      := options. StringLong("method",       0 , "insulation", "index used for TAD calling [insulation (default), directionality]")
  optWindows     := options. StringLong("windows",      0 , "",           "comma separated list of window sizes in base pairs")
  optCutoffs     := options. StringLong("cutoffs",      0 , "",           "comma separated list of cutoffs (default: span the score range)")
  optNumCutoffs  := options.    IntLong("n-cutoffs",    0 , 20,           "number of automatically chosen cutoffs (default: 20)")
  optOffset      := options.    IntLong("offset",       0 , 0,            "insulation window offset from the diagonal in base pairs")
  optImpute      := options.   BoolLong("impute",       0 ,               "exclude masked bins from insulation windows instead of propagating NaN")
  optNoNormalise := options.   BoolLong("no-normalise", 0 ,               "do not normalise the insulation index by its chromosome mean")
  optNoLog       := options.   BoolLong("no-log",       0 ,               "do not log2-transform the normalised insulation index")
  optPlot        := options. StringLong("plot",         0 , "",           "write a TAD-count-vs-cutoff plot to this file [pdf, png]")
  optSparse      := options.   BoolLong("sparse",       0 ,               "matrix file contains sparse `i j weight' triplets")
  optGenome      := options. StringLong("genome",       0 , "",           "UCSC chrom.sizes file; bins are generated with --bin-size instead of read from REGIONS.bed")
  optBinSize     := options.    IntLong("bin-size",     0 , -1,           "bin size in base pairs, required with --genome")
  optThreads     := options.    IntLong("threads",      0 , 1,            "number of threads")
  optStatus      := options.   BoolLong("status",       0 ,               "show status bar")
  optVerbose     := options.CounterLong("verbose",     'v',               "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",        'h',               "print help")

  options.SetParameters("<MATRIX> [<REGIONS.bed>] [<SCAN_OUTPUT.table>]")
  options.Parse(args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if *optWindows == "" {
    fmt.Fprintf(os.Stderr, "a list of --windows is required\n")
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose = *optVerbose
  config.Sparse  = *optSparse
  config.Genome  = *optGenome
  config.BinSize = *optBinSize
  config.Threads = *optThreads
  config.Status  = *optStatus

  var regions Regions
  var filenameMatrix, filenameOut string

  positional := options.Args()

  if config.Genome != "" {
    if len(positional) < 1 || len(positional) > 2 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameMatrix = positional[0]
    if len(positional) == 2 {
      filenameOut = positional[1]
    }
    regions = importGenomeRegions(config)
  } else {
    if len(positional) < 2 || len(positional) > 3 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameMatrix = positional[0]
    regions        = importRegions(config, positional[1])
    if len(positional) == 3 {
      filenameOut = positional[2]
    }
  }
  m := importMatrix(config, filenameMatrix, regions)

  parameters := DefaultScanParameters()
  parameters.Method      = *optMethod
  parameters.WindowSizes = parseInts(*optWindows)
  parameters.NumCutoffs  = *optNumCutoffs
  parameters.Threads     = config.Threads
  parameters.Status      = config.Status
  parameters.Insulation.Offset    = *optOffset
  parameters.Insulation.Impute    = *optImpute
  parameters.Insulation.Normalise = !*optNoNormalise
  parameters.Insulation.Log       = !*optNoLog
  if *optCutoffs != "" {
    parameters.Cutoffs = parseFloats(*optCutoffs)
  }

  if !config.Status {
    PrintStderr(config, 1, "Scanning %d window sizes... ", len(parameters.WindowSizes))
  }
  result, err := ScanCutoffs(m, parameters)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  if !config.Status {
    PrintStderr(config, 1, "done\n")
  }

  if filenameOut == "" {
    if err := result.WriteTable(os.Stdout, true); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing scan table to `%s'... ", filenameOut)
    if err := result.ExportTable(filenameOut, true, false); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  if *optPlot != "" {
    PrintStderr(config, 1, "Writing scan plot to `%s'... ", *optPlot)
    if err := PlotScanLandscape(result, *optPlot); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* tadtool plot
 * -------------------------------------------------------------------------- */

func mainPlot(args []string) {

  config  := SessionConfig{}
  options := getopt.New()

  optRegion      := options. StringLong("region",       0 , "",           "restrict the plot to a region descriptor, e.g. chr12:31000000-34000000")
  optMethod      := options. StringLong("method",       0 , "insulation", "index shown in the score plot [insulation (default), directionality]")
  optWindows     := options. StringLong("windows",      0 , "",           "comma separated window sizes for the score plot")
  optCutoff      := options. StringLong("cutoff",       0 , "",           "draw a horizontal rule at this cutoff")
  optScores      := options. StringLong("scores",       0 , "",           "write a score track plot to this file [pdf, png]")
  optOffset      := options.    IntLong("offset",       0 , 0,            "insulation window offset from the diagonal in base pairs")
  optImpute      := options.   BoolLong("impute",       0 ,               "exclude masked bins from insulation windows instead of propagating NaN")
  optNoNormalise := options.   BoolLong("no-normalise", 0 ,               "do not normalise the insulation index by its chromosome mean")
  optNoLog       := options.   BoolLong("no-log",       0 ,               "do not log2-transform the normalised insulation index")
  optObsExp      := options.   BoolLong("oe",           0 ,               "plot observed/expected transformed contacts")
  optSparse      := options.   BoolLong("sparse",       0 ,               "matrix file contains sparse `i j weight' triplets")
  optGenome      := options. StringLong("genome",       0 , "",           "UCSC chrom.sizes file; bins are generated with --bin-size instead of read from REGIONS.bed")
  optBinSize     := options.    IntLong("bin-size",     0 , -1,           "bin size in base pairs, required with --genome")
  optVerbose     := options.CounterLong("verbose",     'v',               "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",        'h',               "print help")

  options.SetParameters("<MATRIX> [<REGIONS.bed>] <HEATMAP_OUTPUT.pdf>")
  options.Parse(args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  config.Verbose = *optVerbose
  config.Sparse  = *optSparse
  config.Genome  = *optGenome
  config.BinSize = *optBinSize

  var regions Regions
  var filenameMatrix, filenameOut string

  if config.Genome != "" {
    if len(options.Args()) != 2 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameMatrix = options.Args()[0]
    filenameOut    = options.Args()[1]
    regions        = importGenomeRegions(config)
  } else {
    if len(options.Args()) != 3 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameMatrix = options.Args()[0]
    regions        = importRegions(config, options.Args()[1])
    filenameOut    = options.Args()[2]
  }
  m := importMatrix(config, filenameMatrix, regions)

  if *optRegion != "" {
    PrintStderr(config, 1, "Extracting region `%s'... ", *optRegion)
    sub, err := m.SubmatrixRegion(*optRegion)
    if err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
    m = sub
  }
  if *optObsExp {
    PrintStderr(config, 1, "Applying observed/expected transform... ")
    m.ObservedExpected()
    PrintStderr(config, 1, "done\n")
  }

  PrintStderr(config, 1, "Writing heatmap to `%s'... ", filenameOut)
  if err := PlotMatrix(m, filenameOut); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  if *optScores != "" {
    if *optWindows == "" {
      log.Fatal("--scores requires a list of --windows")
    }
    windowSizes := parseInts(*optWindows)
    cutoff      := math.NaN()
    if *optCutoff != "" {
      t, err := strconv.ParseFloat(*optCutoff, 64)
      if err != nil {
        log.Fatal(err)
      }
      cutoff = t
    }
    parameters := DefaultInsulationParameters(0)
    parameters.Offset    = *optOffset
    parameters.Impute    = *optImpute
    parameters.Normalise = !*optNoNormalise
    parameters.Log       = !*optNoLog

    indices := make([][]float64, len(windowSizes))
    for i := 0; i < len(windowSizes); i++ {
      parameters.WindowSize = windowSizes[i]
      indices[i] = computeIndex(config, m, *optMethod, parameters)
    }
    PrintStderr(config, 1, "Writing score plot to `%s'... ", *optScores)
    if err := PlotScores(m, windowSizes, indices, cutoff, *optScores); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* tadtool subset
 * -------------------------------------------------------------------------- */

func mainSubset(args []string) {

  config  := SessionConfig{}
  options := getopt.New()

  optSparse  := options.   BoolLong("sparse",   0 ,     "matrix file contains sparse `i j weight' triplets")
  optGenome  := options. StringLong("genome",   0 , "", "UCSC chrom.sizes file; bins are generated with --bin-size instead of read from REGIONS.bed")
  optBinSize := options.    IntLong("bin-size", 0 , -1, "bin size in base pairs, required with --genome")
  optVerbose := options.CounterLong("verbose", 'v',     "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',     "print help")

  options.SetParameters("<MATRIX> [<REGIONS.bed>] <REGION> <MATRIX_OUTPUT> <REGIONS_OUTPUT.bed>")
  options.Parse(args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  config.Verbose = *optVerbose
  config.Sparse  = *optSparse
  config.Genome  = *optGenome
  config.BinSize = *optBinSize

  var regions Regions
  var filenameMatrix, region, filenameOutMatrix, filenameOutRegions string

  if config.Genome != "" {
    if len(options.Args()) != 4 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameMatrix     = options.Args()[0]
    region             = options.Args()[1]
    filenameOutMatrix  = options.Args()[2]
    filenameOutRegions = options.Args()[3]
    regions            = importGenomeRegions(config)
  } else {
    if len(options.Args()) != 5 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameMatrix     = options.Args()[0]
    regions            = importRegions(config, options.Args()[1])
    region             = options.Args()[2]
    filenameOutMatrix  = options.Args()[3]
    filenameOutRegions = options.Args()[4]
  }
  m := importMatrix(config, filenameMatrix, regions)

  PrintStderr(config, 1, "Extracting region `%s'... ", region)
  sub, err := m.SubmatrixRegion(region)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  PrintStderr(config, 1, "Writing matrix to `%s'... ", filenameOutMatrix)
  if err := sub.ExportDense(filenameOutMatrix, false); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  PrintStderr(config, 1, "Writing regions to `%s'... ", filenameOutRegions)
  if err := sub.Regions.ExportBed3(filenameOutRegions, false); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* tadtool compare
 * -------------------------------------------------------------------------- */

func mainCompare(args []string) {

  config  := SessionConfig{}
  options := getopt.New()

  optShuffles := options.    IntLong("shuffles", 0 , 100,        "number of domain length shuffles for the permutation test (default: 100)")
  optAlpha    := options. StringLong("alpha",    0 , "0.05",     "Benjamini-Hochberg level (default: 0.05)")
  optSeed     := options.    IntLong("seed",     0 , 42,         "random number generator seed (default: 42)")
  optVerbose  := options.CounterLong("verbose", 'v',             "verbose level [-v or -vv]")
  optHelp     := options.   BoolLong("help",    'h',             "print help")

  options.SetParameters("<TADS1.bed> <TADS2.bed> <REGIONS.bed>")
  options.Parse(args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose = *optVerbose

  alpha, err := strconv.ParseFloat(*optAlpha, 64)
  if err != nil {
    log.Fatal(err)
  }
  tads1 := Tads{}
  tads2 := Tads{}

  PrintStderr(config, 1, "Reading TADs from `%s'... ", options.Args()[0])
  if err := tads1.ImportBed(options.Args()[0]); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  PrintStderr(config, 1, "Reading TADs from `%s'... ", options.Args()[1])
  if err := tads2.ImportBed(options.Args()[1]); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  regions := importRegions(config, options.Args()[2])

  r := rand.New(rand.NewSource(int64(*optSeed)))

  results, err := CompareTads(tads1, tads2, regions, *optShuffles, r)
  if err != nil {
    log.Fatal(err)
  }
  pvals := []float64{}
  fmt.Fprintf(os.Stdout, "%10s %12s %12s\n", "seqnames", "vi", "pvalue")
  for _, result := range results {
    fmt.Fprintf(os.Stdout, "%10s %12.6f %12.6f\n", result.Seqname, result.VI, result.Pvalue)
    pvals = append(pvals, result.Pvalue)
  }
  k := BenjaminiHochberg(pvals, alpha)
  fmt.Fprintf(os.Stdout, "# %d of %d chromosomes significantly similar at level %g\n", k, len(pvals), alpha)
}

/* tadtool genome
 * -------------------------------------------------------------------------- */

func mainGenome(args []string) {

  config  := SessionConfig{}
  options := getopt.New()

  optVerbose := options.CounterLong("verbose", 'v', "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h', "print help")

  options.SetParameters("<ASSEMBLY> <OUTPUT.chrom.sizes>")
  options.Parse(args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose = *optVerbose

  genome := Genome{}

  PrintStderr(config, 1, "Fetching chromosome sizes for `%s' from UCSC... ", options.Args()[0])
  if err := genome.ImportUCSC(options.Args()[0]); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  PrintStderr(config, 1, "Writing chromosome sizes to `%s'... ", options.Args()[1])
  if err := genome.Export(options.Args()[1]); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func printMainUsage(w *os.File) {
  fmt.Fprintf(w, "Usage: tadtool <COMMAND> [ARGUMENTS]...\n")
  fmt.Fprintf(w, "\n")
  fmt.Fprintf(w, "Assistant to find cutoffs in TAD calling algorithms.\n")
  fmt.Fprintf(w, "\n")
  fmt.Fprintf(w, "Commands:\n")
  fmt.Fprintf(w, "  tads     -- call TADs at a fixed window size and cutoff\n")
  fmt.Fprintf(w, "  scan     -- scan a grid of window sizes and cutoffs\n")
  fmt.Fprintf(w, "  plot     -- plot a contact matrix heatmap and score tracks\n")
  fmt.Fprintf(w, "  subset   -- extract a submatrix for a genomic region\n")
  fmt.Fprintf(w, "  compare  -- compare two TAD lists\n")
  fmt.Fprintf(w, "  genome   -- fetch chromosome sizes from UCSC\n")
  fmt.Fprintf(w, "\n")
  fmt.Fprintf(w, "Use `tadtool <COMMAND> --help' for command specific options.\n")
}

func main() {

  if len(os.Args) < 2 {
    printMainUsage(os.Stderr)
    os.Exit(1)
  }
  command := os.Args[1]
  args    := append([]string{fmt.Sprintf("%s %s", os.Args[0], command)}, os.Args[2:]...)

  switch command {
  case "tads":
    mainTads(args)
  case "scan":
    mainScan(args)
  case "plot":
    mainPlot(args)
  case "subset":
    mainSubset(args)
  case "compare":
    mainCompare(args)
  case "genome":
    mainGenome(args)
  case "-h", "--help", "help":
    printMainUsage(os.Stdout)
  default:
    fmt.Fprintf(os.Stderr, "tadtool: invalid command `%s'\n\n", command)
    printMainUsage(os.Stderr)
    os.Exit(1)
  }
}
