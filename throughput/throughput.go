// Package throughput holds the items-processed accounting shared by every
// comparison benchmark: one item is one byte position of N, so a run of
// b.N iterations processes N*b.N items.
package throughput

import "testing"

// Unit is the custom metric name reported next to ns/op.
const Unit = "items/s"

// Items is the throughput count for n-byte inputs compared iterations times.
func Items(n int, iterations int) int64 {
	return int64(n) * int64(iterations)
}

// Rate converts an item count over elapsed seconds into items per second.
// A zero or negative duration yields 0.
func Rate(items int64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(items) / seconds
}

// Report sets the per-op byte count to n and attaches the items/s metric.
// Call it after b.StopTimer so b.Elapsed covers only the timed loop.
func Report(b *testing.B, n int) {
	b.SetBytes(int64(n))
	if r := Rate(Items(n, b.N), b.Elapsed().Seconds()); r > 0 {
		b.ReportMetric(r, Unit)
	}
}
