// Package sweep builds the input-size parameter lists benchmarks iterate over.
package sweep

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// The default sweep: 1 KiB to 1 MiB, doubling.
const (
	DefaultMin        = 1 << 10
	DefaultMax        = 1 << 20
	DefaultMultiplier = 2
)

var ErrInvalidRange = errors.New("sweep: invalid range")

var defaultSizes = MustRange(DefaultMin, DefaultMax, DefaultMultiplier)

// Default returns a fresh copy of the default sweep.
func Default() []int {
	sizes := make([]int, len(defaultSizes))
	copy(sizes, defaultSizes)
	return sizes
}

// Range returns lo, every power of mult strictly between lo and hi, and hi.
// For powers of mult this is lo, lo*mult, ..., hi.
func Range[T constraints.Integer](lo, hi, mult T) ([]T, error) {
	if lo < 1 || hi < lo || mult < 2 {
		return nil, fmt.Errorf("%w: lo=%d hi=%d mult=%d", ErrInvalidRange, lo, hi, mult)
	}

	sizes := []T{lo}
	for p := T(1); p < hi; {
		if p > lo {
			sizes = append(sizes, p)
		}
		next := p * mult
		if next/mult != p {
			break // overflow
		}
		p = next
	}
	if sizes[len(sizes)-1] != hi {
		sizes = append(sizes, hi)
	}
	return sizes, nil
}

func MustRange[T constraints.Integer](lo, hi, mult T) []T {
	sizes, err := Range(lo, hi, mult)
	if err != nil {
		panic(err)
	}
	return sizes
}
