package inf

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// writer builds little-endian binary fixtures for tests.
type writer struct {
	bytes.Buffer
}

func (w *writer) u8(v uint8)    { w.WriteByte(v) }
func (w *writer) u16(v uint16)  { binary.Write(&w.Buffer, binary.LittleEndian, v) }
func (w *writer) u32(v uint32)  { binary.Write(&w.Buffer, binary.LittleEndian, v) }
func (w *writer) f64(v float64) { binary.Write(&w.Buffer, binary.LittleEndian, v) }

// buildBuffer assembles a decompressed INF buffer: string-table offset,
// 12 reserved bytes, the root structure, then the narrow and wide tables.
func buildBuffer(reserved, body []byte, strs, wide []string) []byte {
	var w writer
	w.u32(0) // patched below
	if reserved == nil {
		reserved = make([]byte, 12)
	}
	w.Write(reserved)
	w.Write(body)

	sto := w.Len()
	w.u32(uint32(len(strs)))
	for _, s := range strs {
		w.WriteString(s)
		w.u8(0)
	}
	w.u32(uint32(len(wide)))
	for _, s := range wide {
		units := utf16.Encode([]rune(s))
		w.u32(uint32(len(units)))
		for _, u := range units {
			w.u16(u)
		}
	}

	out := w.Bytes()
	binary.LittleEndian.PutUint32(out[0:4], uint32(sto))
	return out
}

// scenarioObjectBuffer is a minimal Object-format file: root class
// cPrismScreen with _RefID = 1.0 and Name = "MainMenu".
func scenarioObjectBuffer() []byte {
	var body writer
	body.u32(2) // prop_count
	body.u32(0) // child_count
	body.u32(1) // _RefID
	body.u8(1)
	body.u8(ValueDouble)
	body.f64(1.0)
	body.u32(2) // Name
	body.u8(1)
	body.u8(ValueString)
	body.u32(3) // MainMenu

	return buildBuffer(nil, body.Bytes(),
		[]string{"cPrismScreen", "_RefID", "Name", "MainMenu"}, nil)
}
