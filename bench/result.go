package bench

import (
	"time"

	"golang.org/x/exp/slices"

	"strcmpbench/throughput"
)

// Result is one benchmark run of a case at one input size.
type Result struct {
	Case       string        `json:"case" yaml:"case"`
	Size       int           `json:"size" yaml:"size"`
	Run        int           `json:"run" yaml:"run"`
	Iterations int           `json:"iterations" yaml:"iterations"`
	Items      int64         `json:"items" yaml:"items"`
	Elapsed    time.Duration `json:"elapsed_ns" yaml:"elapsed"`
	Value      bool          `json:"value" yaml:"value"`
	Checksum   uint64        `json:"checksum" yaml:"checksum"`
}

func (r Result) NsPerOp() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}

func (r Result) ItemsPerSecond() float64 {
	return throughput.Rate(r.Items, r.Elapsed.Seconds())
}

// Disagreements returns, in ascending order, the sizes at which not every
// result observed the same comparator value.
func Disagreements(results []Result) []int {
	first := make(map[int]bool)
	reported := make(map[int]bool)
	var sizes []int
	for _, r := range results {
		v, ok := first[r.Size]
		if !ok {
			first[r.Size] = r.Value
			continue
		}
		if v != r.Value && !reported[r.Size] {
			reported[r.Size] = true
			sizes = append(sizes, r.Size)
		}
	}
	slices.Sort(sizes)
	return sizes
}
