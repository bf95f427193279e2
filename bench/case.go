// Package bench registers the comparison loops as named benchmark cases and
// drives them over a size sweep through the testing package.
package bench

import (
	"testing"

	"strcmpbench/strcmp"
	"strcmpbench/throughput"
)

// Case is one named comparison loop. Compare receives the S1 and S2 views of
// a strcmp.Buffer.
type Case struct {
	Name    string
	Compare func(s1, s2 []byte) bool
}

// Cases returns the comparison loops in registration order. Each comparator
// keeps its own call site.
func Cases() []Case {
	return []Case{
		{Name: "loop_int", Compare: strcmp.CompareInt},
		{Name: "loop_uint", Compare: strcmp.CompareUint},
		{Name: "loop_uint_l", Compare: func(s1, s2 []byte) bool {
			return strcmp.CompareUintL(s1, s2, uint32(len(s1)))
		}},
		{Name: "loop_int_checked", Compare: strcmp.CompareIntChecked},
		{Name: "loop_uint_checked", Compare: strcmp.CompareUintChecked},
	}
}

// Benchmark returns the timed body for input size n. The buffer is built
// once, outside the timed region, and must come out of the loop unchanged.
func (c Case) Benchmark(n int) func(b *testing.B) {
	return c.benchmark(n, nil)
}

// outcome receives what a benchmark body observed outside its timed loop.
type outcome struct {
	value    bool
	checksum uint64
}

func (c Case) benchmark(n int, out *outcome) func(b *testing.B) {
	return func(b *testing.B) {
		buf := strcmp.NewBuffer(n)
		s1, s2 := buf.S1(), buf.S2()
		sum := buf.Checksum()
		compare := c.Compare

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			strcmp.DoNotOptimize(compare(s1, s2))
		}
		b.StopTimer()

		throughput.Report(b, n)
		if got := buf.Checksum(); got != sum {
			b.Fatalf("%s: buffer of size %d changed during the run (%x != %x)", c.Name, n, got, sum)
		}
		if out != nil {
			out.value = compare(s1, s2)
			out.checksum = sum
		}
	}
}
