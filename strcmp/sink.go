package strcmp

var sink bool

// DoNotOptimize observes v so the compiler cannot drop the call producing it.
//
//go:noinline
func DoNotOptimize(v bool) {
	sink = v
}
