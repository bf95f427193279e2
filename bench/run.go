package bench

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"regexp"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"

	"strcmpbench/sweep"
	"strcmpbench/throughput"
)

var (
	ErrInvalidOptions = errors.New("bench: invalid options")
	ErrCaseFailed     = errors.New("bench: case failed")
	ErrNoCases        = errors.New("bench: no case matches filter")
)

// Options selects what Run executes. Zero values mean: every case, the
// default sweep, one run each, the testing package's own bench time.
type Options struct {
	// Filter is a regular expression matched against case names.
	Filter string
	Sizes  []int
	Count  int
	// BenchTime is handed to -test.benchtime: a duration ("500ms") or a
	// fixed iteration count ("100x").
	BenchTime string
	Logger    hclog.Logger
	// Progress is called after every finished run.
	Progress func(done, total int)
}

// Run executes the default registry.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	return DefaultRegistry().Run(ctx, opts)
}

// Run executes every selected case at every size Count times through
// testing.Benchmark. ctx is checked between runs; a run in progress always
// completes. The results gathered so far are returned with any error.
func (r *Registry) Run(ctx context.Context, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	cases, err := r.selectCases(opts.Filter)
	if err != nil {
		return nil, err
	}
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = sweep.Default()
	}
	for _, n := range sizes {
		if n < 1 {
			return nil, fmt.Errorf("%w: size %d", ErrInvalidOptions, n)
		}
	}
	count := opts.Count
	if count < 1 {
		count = 1
	}

	benchTimeMu.Lock()
	defer benchTimeMu.Unlock()
	if opts.BenchTime != "" {
		restore, err := setBenchTime(opts.BenchTime)
		if err != nil {
			return nil, err
		}
		defer restore()
	}

	total := len(cases) * len(sizes) * count
	results := make([]Result, 0, total)
	logger.Debug("starting sweep", "cases", len(cases), "sizes", len(sizes), "count", count)

	for _, c := range cases {
		for _, n := range sizes {
			for run := 0; run < count; run++ {
				if err := ctx.Err(); err != nil {
					return results, err
				}

				var out outcome
				res := testing.Benchmark(c.benchmark(n, &out))
				if res.N == 0 {
					return results, fmt.Errorf("%w: %s at size %d", ErrCaseFailed, c.Name, n)
				}

				result := Result{
					Case:       c.Name,
					Size:       n,
					Run:        run,
					Iterations: res.N,
					Items:      throughput.Items(n, res.N),
					Elapsed:    res.T,
					Value:      out.value,
					Checksum:   out.checksum,
				}
				results = append(results, result)
				logger.Debug("run finished", "case", c.Name, "size", n, "run", run,
					"iterations", res.N, "ns_per_op", result.NsPerOp())

				if opts.Progress != nil {
					opts.Progress(len(results), total)
				}
			}
		}
	}

	return results, nil
}

func (r *Registry) selectCases(filter string) ([]Case, error) {
	all := r.All()
	if filter == "" {
		if len(all) == 0 {
			return nil, ErrNoCases
		}
		return all, nil
	}

	re, err := regexp.Compile(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: filter %q: %v", ErrInvalidOptions, filter, err)
	}
	var cases []Case
	for _, c := range all {
		if re.MatchString(c.Name) {
			cases = append(cases, c)
		}
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoCases, filter)
	}
	return cases, nil
}

// -test.benchtime is process global; runs that change it are serialized.
var benchTimeMu sync.Mutex

func setBenchTime(v string) (func(), error) {
	testing.Init()
	f := flag.Lookup("test.benchtime")
	if f == nil {
		return nil, fmt.Errorf("%w: test.benchtime flag is not registered", ErrInvalidOptions)
	}
	prev := f.Value.String()
	if err := f.Value.Set(v); err != nil {
		return nil, fmt.Errorf("%w: benchtime %q: %v", ErrInvalidOptions, v, err)
	}
	return func() { _ = f.Value.Set(prev) }, nil
}
