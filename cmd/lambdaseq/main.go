// lambdaseq runs a named lambda-calculus program over a sequence of
// naturals read from the command line or stdin.
//
// The library itself provides no guard against divergence; --timeout is
// the caller-side bound it asks external drivers to impose. Evaluation is
// pure uncancelable computation, so on expiry the process exits instead
// of interrupting the run.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandrolain/golambda"
	"github.com/sandrolain/golambda/pkg/programs"
)

var (
	programName string
	timeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "lambdaseq [natural...]",
	Short: "Run a lambda-calculus program over a sequence of naturals",
	Long: `lambdaseq Church-encodes the input naturals, Scott-encodes them into a
single lambda term, applies the selected program to it, and decodes the
result back to naturals. Input is taken from the arguments, or from
whitespace-separated words on stdin when no arguments are given.

Available programs: ` + strings.Join(programs.Names(), ", "),
	Args: cobra.ArbitraryArgs,
	Run:  runSequence,
}

func init() {
	rootCmd.Flags().StringVarP(&programName, "program", "p", "identity",
		"program to run ("+strings.Join(programs.Names(), "|")+")")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 0,
		"abort if the run has not finished in this time (0 = no bound)")
}

func runSequence(cmd *cobra.Command, args []string) {
	program, ok := programs.ByName(programName)
	if !ok {
		log.Fatalf("unknown program %q (available: %s)",
			programName, strings.Join(programs.Names(), ", "))
	}

	input, err := readNaturals(args)
	if err != nil {
		log.Fatalf("bad input: %v", err)
	}

	out := make(chan []uint, 1)
	go func() {
		out <- golambda.Run(input, program)
	}()

	if timeout <= 0 {
		printSequence(<-out)
		return
	}
	select {
	case result := <-out:
		printSequence(result)
	case <-time.After(timeout):
		log.Fatalf("no result after %v; the term may diverge on this input", timeout)
	}
}

// readNaturals parses the input sequence from args, or from stdin words
// when args is empty.
func readNaturals(args []string) ([]uint, error) {
	words := args
	if len(words) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			words = append(words, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	naturals := make([]uint, 0, len(words))
	for _, w := range words {
		n, err := strconv.ParseUint(w, 10, strconv.IntSize)
		if err != nil {
			return nil, fmt.Errorf("%q is not a natural number", w)
		}
		naturals = append(naturals, uint(n))
	}
	return naturals, nil
}

func printSequence(seq []uint) {
	parts := make([]string, len(seq))
	for i, n := range seq {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	fmt.Println(strings.Join(parts, " "))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
