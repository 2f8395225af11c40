// Package main implements the tarzan benchmark CLI driver.
//
// tarzan drives forward/backward reachability over the catalog of
// benchmark automata in benchmarks.go, per spec.md §6's CLI contract:
//
//	tarzan <path> [<key>]
//
// <path> names a benchmark from the catalog (the text-automaton grammar
// stays out of scope per spec.md §1, so unlike a real "path" this never
// reads a file — see benchmarks.go's doc comment). <key> selects the
// reachability direction, "forward" (default) or "backward". Exit code 0
// on success, 1 on usage error, 2 on parse/structural error — mirroring
// cmd/racedetector/main.go's os.Exit/printUsage shape, adapted to this
// contract instead of the teacher's build/run/test subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/kolkov/tarzan/tarzan"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the CLI contract's body and returns the process exit
// code, kept separate from main so tests can drive it without os.Exit.
func run(args []string) int {
	switch {
	case len(args) >= 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h"):
		printUsage()
		return 0
	case len(args) >= 1 && (args[0] == "version" || args[0] == "--version" || args[0] == "-v"):
		fmt.Printf("tarzan version %s (%s)\n", tarzan.Version, tarzan.GetInfo().Kernel)
		return 0
	case len(args) >= 1 && args[0] == "list":
		printCatalog()
		return 0
	}

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: expected <path> argument")
		printUsage()
		return 1
	}

	path := args[0]
	keyArg := "forward"
	if len(args) >= 2 {
		keyArg = args[1]
	}
	if len(args) > 2 {
		fmt.Fprintln(os.Stderr, "Error: too many arguments")
		printUsage()
		return 1
	}

	var dir direction
	switch keyArg {
	case "forward":
		dir = dirForward
	case "backward":
		dir = dirBackward
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown <key> %q (expected \"forward\" or \"backward\")\n", keyArg)
		printUsage()
		return 1
	}

	bench, ok := catalog()[path]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown benchmark %q\n", path)
		printCatalog()
		return 2
	}

	cfg, err := loadConfig(configPathFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 2
	}

	kind, ok := parseStrategyName(cfg.Strategy)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: invalid strategy %q in config\n", cfg.Strategy)
		return 2
	}
	strategy := tarzan.BFS
	if kind == strategyDFS {
		strategy = tarzan.DFS
	}

	var rep report
	for i := 0; i < cfg.Repeat; i++ {
		rep, err = bench.run(dir, strategy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		printReport(path, dir, rep, cfg.Verbose)

		rec := newRunRecord(path, dir, cfg.Strategy, rep)
		if err := appendResult(cfg.ResultsPath, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not append result: %v\n", err)
		}
	}

	return 0
}

// configPathFromEnv names the optional TOML config file. spec.md §6 "no
// environment variables required at the core level" — this is the
// driver's own knob, read once here rather than threading a flag through
// every call.
func configPathFromEnv() string {
	return os.Getenv("TARZAN_CONFIG")
}

// printReport prints spec.md §7's exact user-visible contract: total
// regions computed, a reachable/unreachable verdict, and an
// elapsed-microseconds count. Verbose mode additionally prints the
// witness region (the dequeued-region trace itself lives inside the
// reachability loop and is out of this driver's reach; printing the
// witness is the externally observable substitute).
func printReport(name string, dir direction, r report, verbose bool) {
	verdict := "UNREACHABLE"
	if r.Reachable {
		verdict = "REACHABLE"
	}
	fmt.Printf("%s [%s]: %s, regions=%d, elapsed=%dus\n", name, dir, verdict, r.RegionsExplored, r.Elapsed.Microseconds())
	if verbose && r.Witness != "" {
		fmt.Printf("  witness: %s\n", r.Witness)
	}
}

func printCatalog() {
	fmt.Println("Available benchmarks:")
	for name, b := range catalog() {
		fmt.Printf("  %-14s %s\n", name, b.describe())
	}
}

func printUsage() {
	fmt.Print(`tarzan - TARZAN region reachability benchmark driver

USAGE:
    tarzan <path> [<key>]
    tarzan list
    tarzan version
    tarzan help

ARGUMENTS:
    <path>    benchmark name from the catalog (see 'tarzan list')
    <key>     "forward" (default) or "backward"

CONFIG:
    Set TARZAN_CONFIG to a TOML file to override strategy, repeat count,
    results file path, and verbosity. Bare arguments alone are sufficient;
    the config file only adds optional knobs.

EXIT CODES:
    0   success
    1   usage error
    2   parse/structural error (unknown benchmark, bad config, build failure)

EXAMPLES:
    tarzan flower4
    tarzan exsith forward
    tarzan fischer3 backward
`)
}
