package inf

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Tables holds the two shared string pools of a decompressed buffer. Index
// order is read order and is the only valid index space; lookups outside it
// fail rather than substituting placeholders.
type Tables struct {
	Offset  uint32 // string-table offset, from the first 4 bytes of the buffer
	Strings []string
	Wide    []string
}

// LoadTables reads the narrow table (count, then NUL-terminated UTF-8
// strings) and the wide table immediately after it (count, then per-entry
// UTF-16 code-unit count plus that many little-endian code units).
func LoadTables(data []byte) (*Tables, error) {
	if len(data) < 16 {
		return nil, fmt.Errorf("buffer is %d bytes: %w", len(data), ErrTruncatedStringTable)
	}
	sto := binary.LittleEndian.Uint32(data[0:4])
	if sto < 16 || int(sto) >= len(data) {
		return nil, fmt.Errorf("string table offset 0x%X out of bounds: %w", sto, ErrTruncatedStringTable)
	}

	t := &Tables{Offset: sto}
	pos := int(sto)

	count, pos, err := tableCount(data, pos)
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		end := bytes.IndexByte(data[pos:], 0)
		if end == -1 {
			return nil, fmt.Errorf("string %d of %d unterminated at 0x%X: %w",
				i, count, pos, ErrTruncatedStringTable)
		}
		t.Strings = append(t.Strings, string(data[pos:pos+end]))
		pos += end + 1
	}

	count, pos, err = tableCount(data, pos)
	if err != nil {
		return nil, err
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	for i := 0; i < count; i++ {
		if pos+4 > len(data) {
			return nil, fmt.Errorf("wide string %d of %d header at 0x%X: %w",
				i, count, pos, ErrTruncatedStringTable)
		}
		units := int(binary.LittleEndian.Uint32(data[pos:]))
		pos += 4
		if units < 0 || units > (len(data)-pos)/2 {
			return nil, fmt.Errorf("wide string %d of %d: %d code units at 0x%X: %w",
				i, count, units, pos, ErrTruncatedStringTable)
		}
		decoded, derr := dec.Bytes(data[pos : pos+units*2])
		if derr != nil {
			return nil, fmt.Errorf("wide string %d at 0x%X: %v: %w", i, pos, derr, ErrTruncatedStringTable)
		}
		t.Wide = append(t.Wide, string(decoded))
		pos += units * 2
	}

	return t, nil
}

func tableCount(data []byte, pos int) (int, int, error) {
	if pos+4 > len(data) {
		return 0, 0, fmt.Errorf("table count at 0x%X: %w", pos, ErrTruncatedStringTable)
	}
	return int(binary.LittleEndian.Uint32(data[pos:])), pos + 4, nil
}

// Lookup resolves a narrow string index.
func (t *Tables) Lookup(idx uint32) (string, error) {
	if int(idx) >= len(t.Strings) {
		return "", fmt.Errorf("string %d of %d: %w", idx, len(t.Strings), ErrStringIndexOutOfRange)
	}
	return t.Strings[idx], nil
}

// LookupWide resolves a wide string index.
func (t *Tables) LookupWide(idx uint32) (string, error) {
	if int(idx) >= len(t.Wide) {
		return "", fmt.Errorf("wide string %d of %d: %w", idx, len(t.Wide), ErrStringIndexOutOfRange)
	}
	return t.Wide[idx], nil
}
