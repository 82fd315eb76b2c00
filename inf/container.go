package inf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
)

// HeaderSize is the fixed size of the compressed-container header.
const HeaderSize = 12

// Compressed-container magics, little-endian. Newest version first.
const (
	MagicV3 = 0xFFFFA5AA
	MagicV2 = 0xFFFFA5AB
	MagicV1 = 0xFFFFA5AC
	MagicV0 = 0xFFFFA5AD
)

// CompressedHeader is the 12-byte header of a compressed INF container.
type CompressedHeader struct {
	Magic            uint32
	CompressedSize   uint32
	UncompressedSize uint32
}

// Version maps the magic to a container version. ok is false for any value
// outside the four known magics.
func (h CompressedHeader) Version() (version int, ok bool) {
	switch h.Magic {
	case MagicV3:
		return 3, true
	case MagicV2:
		return 2, true
	case MagicV1:
		return 1, true
	case MagicV0:
		return 0, true
	default:
		return 0, false
	}
}

// ParseCompressedHeader reads the 12-byte header. It does not validate the
// magic; callers use Version for that.
func ParseCompressedHeader(data []byte) (CompressedHeader, error) {
	if len(data) < HeaderSize {
		return CompressedHeader{}, fmt.Errorf("file is %d bytes, header needs %d: %w",
			len(data), HeaderSize, ErrStructuralOverrun)
	}
	b := newBlob(data)
	return CompressedHeader{
		Magic:            b.u32(),
		CompressedSize:   b.u32(),
		UncompressedSize: b.u32(),
	}, nil
}

// UnwrapInfo reports what Unwrap found alongside the decompressed buffer.
type UnwrapInfo struct {
	Header  CompressedHeader
	Version int

	// SizeMismatch is set when the header sizes disagree with the actual
	// payload or inflated lengths. Tolerated: it is a corruption signal,
	// not a failure, as long as inflation itself succeeded.
	SizeMismatch bool
}

// Unwrap strips the container header and inflates the payload. Fails with
// ErrUnsupportedMagic when the magic is unknown (the caller may then try
// treating the input as already-decompressed binary or as text) and with
// ErrDecompression when no inflate strategy succeeds.
func Unwrap(data []byte) ([]byte, *UnwrapInfo, error) {
	hdr, err := ParseCompressedHeader(data)
	if err != nil {
		return nil, nil, err
	}
	version, ok := hdr.Version()
	if !ok {
		return nil, nil, fmt.Errorf("magic 0x%08X: %w", hdr.Magic, ErrUnsupportedMagic)
	}

	payload := data[HeaderSize:]
	out, err := inflate(payload)
	if err != nil && int(hdr.CompressedSize) < len(payload) {
		// Some files carry trailing garbage past the declared payload.
		out, err = inflate(payload[:hdr.CompressedSize])
	}
	if err != nil {
		return nil, nil, fmt.Errorf("version %d container: %v: %w", version, err, ErrDecompression)
	}

	info := &UnwrapInfo{
		Header:  hdr,
		Version: version,
		SizeMismatch: int(hdr.CompressedSize) != len(payload) ||
			int(hdr.UncompressedSize) != len(out),
	}
	return out, info, nil
}

// inflate tries zlib first, then raw DEFLATE. Both wrappings occur in the
// wild for this container.
func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err == nil {
		out, rerr := io.ReadAll(zr)
		zr.Close()
		if rerr == nil {
			return out, nil
		}
		err = rerr
	}

	fr := flate.NewReader(bytes.NewReader(data))
	out, ferr := io.ReadAll(fr)
	fr.Close()
	if ferr != nil {
		return nil, err
	}
	return out, nil
}
