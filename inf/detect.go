package inf

import (
	"bytes"
	"encoding/binary"
	"strings"
	"unicode/utf8"
)

// Kind classifies raw file bytes before any decoding.
type Kind int

const (
	KindUnknown Kind = iota
	KindCompressed
	KindBinary // already-decompressed binary INF
	KindText   // text-form INF, passed through untouched
)

func (k Kind) String() string {
	switch k {
	case KindCompressed:
		return "compressed"
	case KindBinary:
		return "binary"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// DetectKind sniffs the payload kind. Binary INF starts with a plausible
// string-table offset followed by reserved zeros; text INF is readable and
// INI-shaped. Anything else is unknown and skipped by the driver.
func DetectKind(data []byte) Kind {
	if len(data) >= HeaderSize {
		if hdr, err := ParseCompressedHeader(data); err == nil {
			if _, ok := hdr.Version(); ok {
				return KindCompressed
			}
		}
	}
	if len(data) < 20 {
		return KindUnknown
	}

	// A plausible string-table offset marks a bare binary INF. The reserved
	// bytes are usually zero, but TerrainTypeTable buffers carry their
	// fingerprint there, so both shapes are accepted.
	sto := binary.LittleEndian.Uint32(data[0:4])
	if sto >= 16 && int(sto) < len(data) {
		if binary.LittleEndian.Uint32(data[4:8]) == 0 ||
			bytes.Equal(data[4:16], terrainFingerprint) {
			return KindBinary
		}
	}

	if looksLikeText(data) {
		return KindText
	}
	return KindUnknown
}

func looksLikeText(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
		// Do not let a clipped multi-byte rune fail the check.
		for i := 0; i < utf8.UTFMax-1 && len(head) > 0 && !utf8.Valid(head); i++ {
			head = head[:len(head)-1]
		}
	}
	if !utf8.Valid(head) {
		return false
	}
	text := string(head)
	if strings.ContainsRune(text, 0) {
		return false
	}
	if strings.Contains(text, "[") && strings.Contains(text, "]") &&
		strings.Contains(text, "{") {
		return true
	}
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "[") ||
		strings.HasPrefix(trimmed, ";") ||
		strings.HasPrefix(trimmed, "#")
}
