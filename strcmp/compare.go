package strcmp

import "unsafe"

// The unbounded loops below read through raw pointers with no length check.
// They stop only at the first differing byte; a caller that passes two views
// without a difference before the end of their storage gets undefined reads.
// Buffer guarantees the difference: S2 reaches the zero terminator N bytes
// before S1 does. Index widths match a 32-bit C int.

// CompareInt scans s1 and s2 with a signed index.
func CompareInt(s1, s2 []byte) bool {
	p1 := unsafe.Pointer(unsafe.SliceData(s1))
	p2 := unsafe.Pointer(unsafe.SliceData(s2))
	for i1, i2 := int32(0), int32(0); ; i1, i2 = i1+1, i2+1 {
		c1 := *(*byte)(unsafe.Add(p1, i1))
		c2 := *(*byte)(unsafe.Add(p2, i2))
		if c1 != c2 {
			return c1 > c2
		}
	}
}

// CompareUint scans s1 and s2 with an unsigned index. It is behaviorally the
// same as CompareInt; only the generated index arithmetic differs.
func CompareUint(s1, s2 []byte) bool {
	p1 := unsafe.Pointer(unsafe.SliceData(s1))
	p2 := unsafe.Pointer(unsafe.SliceData(s2))
	for i1, i2 := uint32(0), uint32(0); ; i1, i2 = i1+1, i2+1 {
		c1 := *(*byte)(unsafe.Add(p1, i1))
		c2 := *(*byte)(unsafe.Add(p2, i2))
		if c1 != c2 {
			return c1 > c2
		}
	}
}

// CompareUintL compares at most l bytes. Views sharing the same start are
// equal without a scan. A bound past the end of either view panics.
func CompareUintL(s1, s2 []byte, l uint32) bool {
	if unsafe.SliceData(s1) == unsafe.SliceData(s2) {
		return false
	}
	for i1, i2 := uint32(0), uint32(0); i1 < l; i1, i2 = i1+1, i2+1 {
		c1, c2 := s1[i1], s2[i2]
		if c1 != c2 {
			return c1 > c2
		}
	}
	return false
}
