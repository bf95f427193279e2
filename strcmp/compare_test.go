package strcmp

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type unboundedFunc func(s1, s2 []byte) bool

// view returns a freshly allocated copy of s. Unmodified []byte conversions
// of equal constants may share read-only storage, which CompareUintL treats
// as identical views.
func view(s string) []byte {
	return bytes.Clone([]byte(s))
}

var unbounded = map[string]unboundedFunc{
	"int":          CompareInt,
	"uint":         CompareUint,
	"int_checked":  CompareIntChecked,
	"uint_checked": CompareUintChecked,
}

func TestCompare_BenchmarkBufferAgreement(t *testing.T) {
	t.Parallel()
	for _, n := range bufferSizes {
		buf := NewBuffer(n)
		s1, s2 := buf.S1(), buf.S2()

		// s2 hits the terminator at index N-1 while s1 still holds FillByte.
		want := CompareUintL(s1, s2, uint32(2*n))
		require.True(t, want, "n=%d", n)

		for name, cmp := range unbounded {
			require.Equal(t, want, cmp(s1, s2), "variant %s, n=%d", name, n)
		}
	}
}

func TestCompare_Unbounded(t *testing.T) {
	t.Parallel()
	cases := []struct {
		s1, s2 string
		want   bool
	}{
		{"aab\x00", "aac\x00", false},
		{"aac\x00", "aab\x00", true},
		{"ab\x00", "abc\x00", false},
		{"abc\x00", "ab\x00", true},
		{"b\x00", "a\x00", true},
		{"\x80\x00", "\x01\x00", true},
		{"\x01\x00", "\xff\x00", false},
	}
	for name, cmp := range unbounded {
		for _, tc := range cases {
			got := cmp([]byte(tc.s1), []byte(tc.s2))
			require.Equal(t, tc.want, got, "variant %s: %q vs %q", name, tc.s1, tc.s2)
		}
	}
}

func TestCompareUintL(t *testing.T) {
	t.Parallel()
	require.False(t, CompareUintL(view("aab"), view("aac"), 3))
	require.True(t, CompareUintL(view("aac"), view("aab"), 3))

	// The difference lies past the bound.
	require.False(t, CompareUintL(view("aac"), view("aab"), 2))
	require.False(t, CompareUintL(view("aaa"), view("aaa"), 3))
	require.True(t, CompareUintL([]byte{0x90}, []byte{0x10}, 1))
}

func TestCompareUintL_ZeroBound(t *testing.T) {
	t.Parallel()
	require.False(t, CompareUintL(view("b"), view("a"), 0))
	require.False(t, CompareUintL(nil, nil, 0))
}

func TestCompareUintL_IdentityDoesNotScan(t *testing.T) {
	t.Parallel()
	s := view("abc")
	// A scan with this bound would index past the slice and panic.
	require.NotPanics(t, func() {
		require.False(t, CompareUintL(s, s, 1<<20))
	})
	require.NotPanics(t, func() {
		require.False(t, CompareUintL(s[:1], s, 1<<20))
	})
}

func TestCompareUintL_BoundPastViewPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() {
		CompareUintL(view("aaa"), view("aaa"), 4)
	})
}

func TestCompareUintL_EqualContentDistinctViewsScan(t *testing.T) {
	t.Parallel()
	a, b := view("aaa"), view("aaa")
	require.NotSame(t, &a[0], &b[0])

	require.False(t, CompareUintL(a, b, 3))
	require.Panics(t, func() {
		CompareUintL(a, b, 4)
	})
}

func TestCompareChecked_NoTerminatorPanics(t *testing.T) {
	t.Parallel()
	for _, cmp := range []unboundedFunc{CompareIntChecked, CompareUintChecked} {
		require.Panics(t, func() {
			cmp(view("aaaa"), view("aaaa"))
		})
	}
}

func TestDoNotOptimize(t *testing.T) {
	DoNotOptimize(true)
	require.True(t, sink)
	DoNotOptimize(false)
	require.False(t, sink)
}

func ExampleCompareUintL() {
	fmt.Println(CompareUintL([]byte("aab"), []byte("aac"), 3))
	fmt.Println(CompareUintL([]byte("aac"), []byte("aab"), 3))
	// Output:
	// false
	// true
}
