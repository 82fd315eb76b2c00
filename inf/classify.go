package inf

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// terrainFingerprint is the fixed pattern at offset 0x04 of a
// TerrainTypeTable buffer: version flag 1, reserved 1, reserved 0.
var terrainFingerprint = []byte{
	0x01, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// maxSaneCount bounds declared prop/child counts during probing. Real files
// stay far below it; a count above it means we are reading the wrong grammar.
const maxSaneCount = 1 << 20

// Classify selects one of the three grammars from structural fingerprints,
// before any object parsing. The decision is heuristic: a wrong pick is
// expected to fail cleanly in the grammar decoder, not to be prevented here.
//
// When the TerrainTypeTable fingerprint matches but table slot 0 is not
// "StringID", the heuristics conflict; Classify then returns FormatObject
// together with ErrAmbiguousFormat so the caller can surface a warning if
// the default grammar also fails.
func Classify(data []byte, tables *Tables) (Format, error) {
	if len(data) < 0x18 {
		return FormatObject, fmt.Errorf("buffer is %d bytes: %w", len(data), ErrStructuralOverrun)
	}

	if bytes.Equal(data[0x04:0x10], terrainFingerprint) {
		if len(tables.Strings) > 0 && tables.Strings[0] == "StringID" {
			return FormatTerrainTypeTable, nil
		}
		return FormatObject, fmt.Errorf("terrain fingerprint without StringID table: %w", ErrAmbiguousFormat)
	}

	sectionCount := binary.LittleEndian.Uint32(data[0x08:0x0C])
	if sectionCount > 1 && !plausibleObjectRoot(data, tables) {
		return FormatSimple, nil
	}

	return FormatObject, nil
}

// plausibleObjectRoot checks whether offset 0x10 could hold an Object-format
// root: sane prop/child counts and, when properties are declared, a first
// property whose name index and value tag are valid. Cheap structural probe
// only - the real decode still validates everything.
func plausibleObjectRoot(data []byte, tables *Tables) bool {
	propCount := binary.LittleEndian.Uint32(data[0x10:0x14])
	childCount := binary.LittleEndian.Uint32(data[0x14:0x18])
	if propCount > maxSaneCount || childCount > maxSaneCount {
		return false
	}

	if propCount > 0 {
		// First property: name_idx u32, value count u8, first value tag u8.
		if len(data) < 0x18+6 {
			return false
		}
		nameIdx := binary.LittleEndian.Uint32(data[0x18:0x1C])
		if int(nameIdx) >= len(tables.Strings) {
			return false
		}
		if data[0x1C] == 0 {
			return false
		}
		return data[0x1D] <= ValueBlob
	}

	if childCount > 0 {
		// First section: name_idx u32.
		if len(data) < 0x18+4 {
			return false
		}
		nameIdx := binary.LittleEndian.Uint32(data[0x18:0x1C])
		return int(nameIdx) < len(tables.Strings)
	}

	// Empty root object.
	return true
}
