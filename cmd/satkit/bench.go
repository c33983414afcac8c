package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sat-tools/satkit/dimacs"
	"github.com/sat-tools/satkit/internal/core"
)

var (
	benchVariant string
	benchRuns    int
	benchLarge   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [file.cnf...]",
	Short: "Run the solver repeatedly over one or more formulas and report timing",
	Long: `bench runs each given formula through the solver --runs times and logs
per-run timing and aggregate decision/propagation counts. With no files
given, it globs testdata/*.cnf (or testdata/bench/*.cnf with --large),
mirroring the fixture layout the solver's own tests use.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchVariant, "variant", "", "solver variant (default dpll_watchers)")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 1, "number of runs per file")
	benchCmd.Flags().BoolVar(&benchLarge, "large", false, "use the large testdata/bench fixtures instead of testdata")
}

func runBench(cmd *cobra.Command, args []string) error {
	variant, err := variantFlag(benchVariant)
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		pattern := "testdata/*.cnf"
		if benchLarge {
			pattern = "testdata/bench/*.cnf"
		}
		files, err = filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("globbing %s: %w", pattern, err)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no fixtures to benchmark")
	}

	for _, filename := range files {
		f, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("opening %s: %w", filename, err)
		}
		in, err := dimacs.ReadFormula(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading %s as DIMACS: %w", filename, err)
		}

		var totalDecisions, totalPropagations int64
		var totalElapsed time.Duration
		for run := 0; run < benchRuns; run++ {
			start := time.Now()
			res, stats := core.Solve(in, variant)
			elapsed := time.Since(start)

			totalDecisions += stats.Decisions
			totalPropagations += stats.Propagations
			totalElapsed += elapsed

			logger.WithFields(logrus.Fields{
				"file":         filename,
				"run":          run,
				"variant":      stats.Variant,
				"sat":          res.Sat,
				"decisions":    stats.Decisions,
				"propagations": stats.Propagations,
				"elapsed":      elapsed,
			}).Info("bench run")
		}

		logger.WithFields(logrus.Fields{
			"file":             filename,
			"runs":             benchRuns,
			"avg_decisions":    float64(totalDecisions) / float64(benchRuns),
			"avg_propagations": float64(totalPropagations) / float64(benchRuns),
			"avg_elapsed":      totalElapsed / time.Duration(benchRuns),
		}).Info("bench aggregate")
	}
	return nil
}
