// Package report renders benchmark results in the runner's output formats.
package report

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"strcmpbench/bench"
)

var ErrUnknownFormat = errors.New("report: unknown format")

type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatCSV     Format = "csv"
	FormatProm    Format = "prom"
)

func Formats() []Format {
	return []Format{FormatConsole, FormatJSON, FormatYAML, FormatCSV, FormatProm}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Report is one sweep's results plus the environment they were measured in.
type Report struct {
	RunID     string         `json:"run_id" yaml:"run_id"`
	StartedAt time.Time      `json:"started_at" yaml:"started_at"`
	GoVersion string         `json:"go_version" yaml:"go_version"`
	GOOS      string         `json:"goos" yaml:"goos"`
	GOARCH    string         `json:"goarch" yaml:"goarch"`
	BenchTime string         `json:"bench_time,omitempty" yaml:"bench_time,omitempty"`
	Results   []bench.Result `json:"results" yaml:"results"`
}

func New(startedAt time.Time, benchTime string, results []bench.Result) *Report {
	return &Report{
		RunID:     ulid.Make().String(),
		StartedAt: startedAt.UTC(),
		GoVersion: runtime.Version(),
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		BenchTime: benchTime,
		Results:   results,
	}
}

// Write renders the report to w in format f.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatConsole:
		return r.writeConsole(w)
	case FormatJSON:
		return r.writeJSON(w)
	case FormatYAML:
		return r.writeYAML(w)
	case FormatCSV:
		return r.writeCSV(w)
	case FormatProm:
		return r.writeProm(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

var csvHeader = []string{
	"run_id", "case", "size", "run", "iterations", "items",
	"elapsed_ns", "ns_per_op", "items_per_sec", "value",
}

// Rows returns one CSV record per result, without a header.
func (r *Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		rows = append(rows, []string{
			r.RunID,
			res.Case,
			strconv.Itoa(res.Size),
			strconv.Itoa(res.Run),
			strconv.Itoa(res.Iterations),
			strconv.FormatInt(res.Items, 10),
			strconv.FormatInt(res.Elapsed.Nanoseconds(), 10),
			strconv.FormatFloat(res.NsPerOp(), 'f', 3, 64),
			strconv.FormatFloat(res.ItemsPerSecond(), 'f', 0, 64),
			strconv.FormatBool(res.Value),
		})
	}
	return rows
}
