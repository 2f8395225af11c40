// results.go appends one YAML record per benchmark run to an append-only
// results file, per spec.md §6 "Persisted state: none at the core level.
// Benchmark drivers may append timing/counts to a results file
// (append-only, one record per run)." SPEC_FULL.md §B grounds the two
// dependencies this uses: github.com/google/uuid stamps a run identifier
// (so repeated runs of the same benchmark/strategy pair stay individually
// addressable), and gopkg.in/yaml.v3 serializes the record instead of a
// hand-rolled text format.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// runRecord is one results-file entry.
type runRecord struct {
	RunID           string `yaml:"run_id"`
	Benchmark       string `yaml:"benchmark"`
	Direction       string `yaml:"direction"`
	Strategy        string `yaml:"strategy"`
	Reachable       bool   `yaml:"reachable"`
	RegionsExplored int    `yaml:"regions_explored"`
	ElapsedMicros   int64  `yaml:"elapsed_micros"`
	Witness         string `yaml:"witness,omitempty"`
}

func newRunRecord(benchmarkName string, dir direction, strategyName string, r report) runRecord {
	return runRecord{
		RunID:           uuid.New().String(),
		Benchmark:       benchmarkName,
		Direction:       string(dir),
		Strategy:        strategyName,
		Reachable:       r.Reachable,
		RegionsExplored: r.RegionsExplored,
		ElapsedMicros:   r.Elapsed.Microseconds(),
		Witness:         r.Witness,
	}
}

// appendResult marshals rec as a YAML document and appends it to path,
// creating the file if it does not yet exist. One record per run, never
// rewriting what came before it.
func appendResult(path string, rec runRecord) error {
	doc, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling result record: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening results file %q: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(append([]byte("---\n"), doc...)); err != nil {
		return fmt.Errorf("appending to results file %q: %w", path, err)
	}
	return nil
}
