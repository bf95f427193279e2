package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const metricNamespace = "strcmpbench"

// writeProm emits the text exposition format, ready for a node exporter
// textfile collector.
func (r *Report) writeProm(w io.Writer) error {
	labels := []string{"case", "size", "run"}
	nsPerOp := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricNamespace,
		Name:      "ns_per_op",
		Help:      "Nanoseconds per comparison call.",
	}, labels)
	itemsPerSec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricNamespace,
		Name:      "items_per_second",
		Help:      "Bytes scanned per second, N items per call.",
	}, labels)
	iterations := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricNamespace,
		Name:      "iterations",
		Help:      "Timed iterations the testing package chose.",
	}, labels)
	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricNamespace,
		Name:      "run_info",
		Help:      "Constant 1, labelled with the run identity.",
	}, []string{"run_id", "go_version", "goos", "goarch"})

	reg := prometheus.NewRegistry()
	reg.MustRegister(nsPerOp, itemsPerSec, iterations, info)

	info.WithLabelValues(r.RunID, r.GoVersion, r.GOOS, r.GOARCH).Set(1)
	for _, res := range r.Results {
		values := []string{res.Case, strconv.Itoa(res.Size), strconv.Itoa(res.Run)}
		nsPerOp.WithLabelValues(values...).Set(res.NsPerOp())
		itemsPerSec.WithLabelValues(values...).Set(res.ItemsPerSecond())
		iterations.WithLabelValues(values...).Set(float64(res.Iterations))
	}

	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
