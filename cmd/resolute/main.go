package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/resolute-sat/resolute/config"
	"github.com/resolute-sat/resolute/encoding"
	"github.com/resolute-sat/resolute/proof"
	"github.com/resolute-sat/resolute/solver"
)

var opts struct {
	models     uint
	verbose    bool
	checkModel bool
	showProof  bool
	verify     bool
}

func main() {
	cmd := &cobra.Command{
		Use:           "resolute [flags] input.cnf",
		Short:         "A DPLL SAT solver that produces resolution proofs",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().UintVarP(&opts.models, "models", "m", 1, "number of models to find")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug tracing")
	cmd.Flags().BoolVar(&opts.checkModel, "check-model", false, "re-check the model against every input clause")
	cmd.Flags().BoolVar(&opts.showProof, "proof", false, "print the resolution proof on UNSAT")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "verify the resolution proof on UNSAT")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(cmd *cobra.Command, args []string) error {
	conf := newConfig()

	sentences, err := readCNF(args[0])
	if err != nil {
		return err
	}
	sat := solver.New(conf)

	for _, clause := range sentences {
		sat.AddClause(clause)
	}
	conf.Logger.Printf("Starting Resolute %s solver", solver.Version())

	tStart := time.Now()
	models := solve(sat, conf)

	conf.Logger.Print("Finished solving")

	displayStats(sat, time.Since(tStart))

	if len(models) == 0 {
		fmt.Fprint(os.Stdout, "p UNSAT\n")

		if err := displayProof(sat, conf); err != nil {
			return err
		}
		os.Exit(3)
	}
	fmt.Fprint(os.Stdout, "p SAT\n")
	displayModels(models)

	return nil
}

func newConfig() *config.Config {
	conf := config.New()
	conf.Models = opts.models
	conf.CheckModel = opts.checkModel
	conf.Verbose = opts.verbose

	if opts.verbose {
		if logger, ok := conf.Logger.(*logrus.Logger); ok {
			logger.SetLevel(logrus.DebugLevel)
		}
	}
	return conf
}

func solve(sat *solver.Solver, conf *config.Config) [][]int {
	if conf.Models > 1 {
		return sat.SolveMany(conf.Models)
	}
	if sat.Solve() {
		return [][]int{sat.Answer()}
	}
	return [][]int{}
}

func displayProof(sat *solver.Solver, conf *config.Config) error {
	if opts.showProof {
		for _, step := range proof.Steps(sat.Proof()) {
			fmt.Fprintf(os.Stdout, "%s\n", step)
		}
	}
	if opts.verify {
		if err := proof.VerifyUnsat(sat.Proof(), sat.Axioms()); err != nil {
			return err
		}
		conf.Logger.Print("Proof verified")
	}
	return nil
}

func displayModels(models [][]int) {
	for _, model := range models {
		for _, p := range model {
			fmt.Fprintf(os.Stdout, "%d ", p)
		}
		fmt.Fprint(os.Stdout, "0\n")
	}
}

func displayStats(s *solver.Solver, t time.Duration) {
	fmt.Fprint(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Time Taken:    %fs\n", t.Seconds())
	fmt.Fprintf(os.Stderr, "Variables:     %d\n", s.NVars())
	fmt.Fprintf(os.Stderr, "Clauses:       %d\n", s.NAxioms())
	fmt.Fprintf(os.Stderr, "Propagations:  %d\n", s.NPropagations())
	fmt.Fprintf(os.Stderr, "Decisions:     %d\n", s.NDecisions())
	fmt.Fprintf(os.Stderr, "Conflicts:     %d\n", s.NConflicts())
	fmt.Fprint(os.Stderr, "\n")
}

func readCNF(path string) ([][]int, error) {
	if !isFile(path) {
		return nil, fmt.Errorf("open %s: not a readable file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return encoding.ParseDimacs(bufio.NewReader(f))
}

func isFile(path string) bool {
	if fs, err := os.Stat(path); err == nil {
		if fs.Mode().IsRegular() {
			return true
		}
	}
	return false
}
