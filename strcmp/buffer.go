package strcmp

import (
	"strcmpbench/errutil"

	"github.com/zeebo/xxh3"
)

// FillByte is the value of every buffer byte except the trailing terminator.
const FillByte = 'a'

// Buffer is a 2N byte input filled with FillByte and terminated by a zero
// byte. S1 and S2 are views into the same storage, N bytes apart.
type Buffer struct {
	data []byte
	n    int
}

// NewBuffer allocates the 2n byte buffer. n must be positive.
func NewBuffer(n int) *Buffer {
	errutil.Must(n >= 1, "strcmp: buffer size %d must be positive", n)

	data := make([]byte, 2*n)
	for i := range data {
		data[i] = FillByte
	}
	data[2*n-1] = 0

	return &Buffer{data: data, n: n}
}

// Size returns N, half the buffer length.
func (b *Buffer) Size() int {
	return b.n
}

// S1 is the view starting at offset 0. It spans the full 2N bytes, so it is
// also the only handle on the whole buffer.
func (b *Buffer) S1() []byte {
	return b.data
}

// S2 is the view starting at offset N. Its N bytes alias the tail of S1.
func (b *Buffer) S2() []byte {
	return b.data[b.n:]
}

// Checksum hashes the buffer contents.
func (b *Buffer) Checksum() uint64 {
	return xxh3.Hash(b.data)
}
