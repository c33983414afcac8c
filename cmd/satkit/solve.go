package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sat-tools/satkit/dimacs"
	"github.com/sat-tools/satkit/internal/core"
)

var solveVariant string
var solveVerbose bool

var solveCmd = &cobra.Command{
	Use:   "solve [file.cnf]",
	Short: "Solve a single DIMACS CNF formula",
	Long: `solve reads a single problem specification in the DIMACS CNF format
and writes the output in the conventional way: either the first line is
UNSAT, or the first line is SAT and the second line gives the
assignment as space-separated signed literals (an input clause's
format without the terminating 0).

If no input file is given, solve reads from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveVariant, "variant", "", "solver variant (default dpll_watchers)")
	solveCmd.Flags().BoolVarP(&solveVerbose, "verbose", "v", false, "verbose: log solver stats to stderr")
}

func runSolve(cmd *cobra.Command, args []string) error {
	variant, err := variantFlag(solveVariant)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	in, err := dimacs.ReadFormula(r)
	if err != nil {
		return fmt.Errorf("reading DIMACS input: %w", err)
	}

	start := time.Now()
	res, stats := core.Solve(in, variant)
	elapsed := time.Since(start)

	if solveVerbose {
		logger.WithFields(logrus.Fields{
			"variant":      stats.Variant,
			"decisions":    stats.Decisions,
			"propagations": stats.Propagations,
			"elapsed":      elapsed,
		}).Info("solve finished")
		fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(stats.Trail))
	}

	if !res.Sat {
		fmt.Println("UNSAT")
		return nil
	}
	fmt.Println("SAT")
	for i, v := range res.Model {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(v)
	}
	fmt.Println()
	return nil
}
