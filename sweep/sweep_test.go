package sweep

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	sizes := Default()

	require.Len(t, sizes, 11)
	require.Equal(t, 1024, sizes[0])
	require.Equal(t, 1<<20, sizes[len(sizes)-1])
	for i := 1; i < len(sizes); i++ {
		require.Equal(t, sizes[i-1]*2, sizes[i])
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	t.Parallel()
	a := Default()
	a[0] = 7
	require.Equal(t, DefaultMin, Default()[0])
}

func TestRange(t *testing.T) {
	t.Parallel()
	cases := []struct {
		lo, hi, mult int
		want         []int
	}{
		{1, 1, 2, []int{1}},
		{1, 8, 2, []int{1, 2, 4, 8}},
		{8, 8, 2, []int{8}},
		{3, 20, 2, []int{3, 4, 8, 16, 20}},
		{10, 1000, 10, []int{10, 100, 1000}},
		{5, 100, 8, []int{5, 8, 64, 100}},
	}
	for _, tc := range cases {
		got, err := Range(tc.lo, tc.hi, tc.mult)
		require.NoError(t, err)
		require.True(t, slices.Equal(tc.want, got), "Range(%d, %d, %d) = %v, want %v", tc.lo, tc.hi, tc.mult, got, tc.want)
		require.True(t, slices.IsSorted(got))
	}
}

func TestRange_Uint8Overflow(t *testing.T) {
	t.Parallel()
	got, err := Range[uint8](1, 255, 2)
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 2, 4, 8, 16, 32, 64, 128, 255}, got)
}

func TestRange_Invalid(t *testing.T) {
	t.Parallel()
	for _, args := range [][3]int{{0, 8, 2}, {-1, 8, 2}, {8, 4, 2}, {1, 8, 1}, {1, 8, 0}} {
		_, err := Range(args[0], args[1], args[2])
		require.ErrorIs(t, err, ErrInvalidRange, "args %v", args)
	}
	require.Panics(t, func() { MustRange(4, 2, 2) })
}

func TestRange_StrictlyIncreasing(t *testing.T) {
	t.Parallel()
	for lo := 1; lo <= 40; lo++ {
		for hi := lo; hi <= 300; hi += 7 {
			for mult := 2; mult <= 5; mult++ {
				got := MustRange(lo, hi, mult)
				require.Equal(t, lo, got[0])
				require.Equal(t, hi, got[len(got)-1])
				for i := 1; i < len(got); i++ {
					if got[i] <= got[i-1] {
						t.Fatalf("Range(%d, %d, %d) = %v: not strictly increasing at %d", lo, hi, mult, got, i)
					}
				}
			}
		}
	}
}
