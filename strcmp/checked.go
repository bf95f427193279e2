package strcmp

// CompareIntChecked is CompareInt written with ordinary slice indexing.
// Running off the end of either view panics instead of reading past it.
func CompareIntChecked(s1, s2 []byte) bool {
	for i1, i2 := 0, 0; ; i1, i2 = i1+1, i2+1 {
		if c1, c2 := s1[i1], s2[i2]; c1 != c2 {
			return c1 > c2
		}
	}
}

// CompareUintChecked is CompareUint written with ordinary slice indexing.
func CompareUintChecked(s1, s2 []byte) bool {
	for i1, i2 := uint(0), uint(0); ; i1, i2 = i1+1, i2+1 {
		if c1, c2 := s1[i1], s2[i2]; c1 != c2 {
			return c1 > c2
		}
	}
}
