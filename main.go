package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/mhartl/nsat/internal/parsers"
	"github.com/mhartl/nsat/internal/sat"
	pubsat "github.com/mhartl/nsat/sat"
)

var (
	flagVerbose    = flag.Bool("v", false, "print problem/search/summary statistics")
	flagVerboseLog = flag.Bool("verbose", false, "alias for -v")
	flagStrict     = flag.Bool("strict", false, "use the strict byte-level DIMACS parser")
	flagCPUProfile = flag.String("cpuprofile", "", "write a pprof CPU profile to this file")
	flagMemProfile = flag.String("memprofile", "", "write a pprof heap profile to this file")
)

type config struct {
	instancePath string
	verbose      bool
	strict       bool
}

func parseConfig() (*config, error) {
	flag.Parse()
	if flag.NArg() != 1 {
		return nil, fmt.Errorf("usage: nsat [flags] <instance.cnf[.xz|.gz]>")
	}
	return &config{
		instancePath: flag.Arg(0),
		verbose:      *flagVerbose || *flagVerboseLog,
		strict:       *flagStrict,
	}, nil
}

// tickReporter prints one row of spec.md 6's search-statistics table per
// learned-size-adjustment tick, with conflicts/sec and propagations/sec
// smoothed across ticks by an exponential moving average rather than the
// noisier instantaneous rate a single tick's deltas would give.
type tickReporter struct {
	start            time.Time
	lastTick         time.Time
	lastConflicts    int64
	lastPropagations int64
	conflictRate     pubsat.EMA
	propagationRate  pubsat.EMA
}

func newTickReporter() *tickReporter {
	now := time.Now()
	return &tickReporter{
		start:           now,
		lastTick:        now,
		conflictRate:    pubsat.NewEMA(0.7),
		propagationRate: pubsat.NewEMA(0.7),
	}
}

func (r *tickReporter) report(s *sat.Solver, t sat.TickStats) {
	now := time.Now()
	dt := now.Sub(r.lastTick).Seconds()
	if dt > 0 {
		r.conflictRate.Add(float64(t.TotalConflicts-r.lastConflicts) / dt)
		r.propagationRate.Add(float64(s.TotalPropagations()-r.lastPropagations) / dt)
	}
	r.lastTick = now
	r.lastConflicts = t.TotalConflicts
	r.lastPropagations = s.TotalPropagations()

	fmt.Printf(
		"| %9d | %7d %8d %8d | %8.0f %8d %6.1f | %6.2f %% | %9.1f c/s %10.1f p/s |\n",
		t.TotalConflicts,
		t.FreeVariablesAtLevel0,
		t.NumClauses,
		t.NumLiteralsInClauses,
		t.MaxLearnedClauses,
		t.NumLearned,
		t.LiteralsPerLearned,
		t.ProgressPercent,
		r.conflictRate.Val(),
		r.propagationRate.Val(),
	)
}

func printProblemStats(s *sat.Solver, parseTime time.Duration) {
	fmt.Println()
	fmt.Println("============================[ Problem Statistics ]=============================")
	fmt.Println("|                                                                             |")
	fmt.Printf("|  Number of variables:  %12d                                         |\n", s.NumVariables())
	fmt.Printf("|  Number of clauses:    %12d                                         |\n", s.NumClauses())
	fmt.Printf("|  Parse time:           %12.6f                                         |\n", parseTime.Seconds())
	fmt.Println("|                                                                             |")
}

func printSearchBanner() {
	fmt.Println("============================[ Search Statistics ]==============================")
	fmt.Println("| Conflicts |          ORIGINAL         |          LEARNED         | Progress |")
	fmt.Println("|           |    Vars  Clauses Literals |    Limit  Clauses Lit/Cl |          |")
	fmt.Println("===============================================================================")
}

func printSummary(s *sat.Solver, totalTime time.Duration) {
	conflictsPerSec := float64(s.TotalConflicts) / totalTime.Seconds()
	propagationsPerSec := float64(s.TotalPropagations()) / totalTime.Seconds()

	fmt.Println("============================[      Summary      ]==============================")
	fmt.Println("|                                                                             |")
	fmt.Printf("|  #Restarts:            %12d                                         |\n", s.TotalRestarts)
	fmt.Printf("|  #Conflicts:           %12d (%12.3f/sec)                      |\n", s.TotalConflicts, conflictsPerSec)
	fmt.Printf("|  #Decisions:           %12d                                         |\n", s.TotalDecisions)
	fmt.Printf("|  #Propagations:        %12d (%12.3f/sec)                      |\n", s.TotalPropagations(), propagationsPerSec)
	fmt.Printf("|  Total time:           %12.6f                                         |\n", totalTime.Seconds())
	fmt.Println("|                                                                             |")
	fmt.Println("===============================================================================")
}

func printModel(status sat.Status, model []bool) {
	switch status {
	case sat.Satisfiable:
		fmt.Print("SAT")
		for v, val := range model {
			if val {
				fmt.Printf(" %d", v+1)
			} else {
				fmt.Printf(" -%d", v+1)
			}
		}
		fmt.Println()
	case sat.Unsatisfiable:
		fmt.Println("UNSAT")
	default:
		fmt.Println("UNKNOWN")
	}
}

// exitCode maps a solver status to spec.md 6's process exit convention.
func exitCode(status sat.Status) int {
	switch status {
	case sat.Satisfiable:
		return 10
	case sat.Unsatisfiable:
		return 20
	default:
		return 0
	}
}

func run(cfg *config) (sat.Status, error) {
	solver := sat.NewSolver()

	start := time.Now()
	if err := parsers.Load(cfg.instancePath, cfg.strict, solver); err != nil {
		return sat.Unknown, fmt.Errorf("could not parse instance: %w", err)
	}
	parseTime := time.Since(start)

	if cfg.verbose {
		printProblemStats(solver, parseTime)
		printSearchBanner()
		reporter := newTickReporter()
		solver.OnTick(func(t sat.TickStats) { reporter.report(solver, t) })
	}

	status := solver.Solve()
	totalTime := time.Since(start)

	if cfg.verbose {
		fmt.Println()
		printSummary(solver, totalTime)
	}

	var model []bool
	if status == sat.Satisfiable {
		model = solver.Model()
	}
	printModel(status, model)

	return status, nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	status, err := run(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagMemProfile != "" {
		f, err := os.Create(*flagMemProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	os.Exit(exitCode(status))
}
