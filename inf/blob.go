package inf

import (
	"encoding/binary"
	"fmt"
	"math"
)

// blob is a position-carrying cursor over the decompressed buffer. All reads
// are little-endian. Reading past the end panics with a parseFault wrapping
// ErrStructuralOverrun; the exported entry points recover it.
type blob struct {
	data []byte
	pos  int
}

func newBlob(data []byte) *blob {
	return &blob{data: data}
}

func (b *blob) need(n int) {
	if n < 0 || b.pos+n > len(b.data) {
		panic(parseFault{fmt.Errorf("need %d bytes at 0x%X (buffer is %d bytes): %w",
			n, b.pos, len(b.data), ErrStructuralOverrun)})
	}
}

func (b *blob) seek(off int) {
	if off < 0 || off > len(b.data) {
		panic(parseFault{fmt.Errorf("seek to 0x%X (buffer is %d bytes): %w",
			off, len(b.data), ErrStructuralOverrun)})
	}
	b.pos = off
}

func (b *blob) u8() uint8 {
	b.need(1)
	v := b.data[b.pos]
	b.pos++
	return v
}

func (b *blob) u16() uint16 {
	b.need(2)
	v := binary.LittleEndian.Uint16(b.data[b.pos:])
	b.pos += 2
	return v
}

func (b *blob) u32() uint32 {
	b.need(4)
	v := binary.LittleEndian.Uint32(b.data[b.pos:])
	b.pos += 4
	return v
}

func (b *blob) f64() float64 {
	b.need(8)
	v := math.Float64frombits(binary.LittleEndian.Uint64(b.data[b.pos:]))
	b.pos += 8
	return v
}

// bytes returns a copy so the tree never aliases the input buffer.
func (b *blob) bytes(n int) []byte {
	b.need(n)
	out := make([]byte, n)
	copy(out, b.data[b.pos:])
	b.pos += n
	return out
}
