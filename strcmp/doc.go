// Package strcmp holds the byte-wise string comparison loops under benchmark
// and the shared input buffer they are measured against.
//
// Variants:
//  1. CompareInt         - signed index, unbounded, unchecked pointer reads
//  2. CompareUint        - unsigned index, unbounded, unchecked pointer reads
//  3. CompareUintL       - unsigned index with an explicit length bound
//  4. CompareIntChecked  - signed index, unbounded, Go bounds checks
//  5. CompareUintChecked - unsigned index, unbounded, Go bounds checks
//
// All variants return true only when the first differing byte of s1 is
// greater than the one of s2. Bytes compare as unsigned values.
package strcmp
