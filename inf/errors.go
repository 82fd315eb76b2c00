package inf

import "errors"

var (
	// ErrUnsupportedMagic means the 12-byte header does not start with any
	// known compressed-container magic.
	ErrUnsupportedMagic = errors.New("unsupported magic")

	// ErrDecompression means the DEFLATE payload could not be inflated.
	ErrDecompression = errors.New("decompression failed")

	// ErrTruncatedStringTable means a string length or terminator ran past
	// the end of the decompressed buffer.
	ErrTruncatedStringTable = errors.New("truncated string table")

	// ErrStringIndexOutOfRange means an object referenced a string slot
	// outside the loaded table.
	ErrStringIndexOutOfRange = errors.New("string index out of range")

	// ErrUnknownValueType means a property value carried a type tag outside
	// the known set {0, 1, 2, 3}.
	ErrUnknownValueType = errors.New("unknown value type")

	// ErrStructuralOverrun means a declared count or length would read past
	// the end of the buffer.
	ErrStructuralOverrun = errors.New("structural overrun")

	// ErrAmbiguousFormat means the classifier heuristics conflicted; the
	// default Object grammar was attempted anyway.
	ErrAmbiguousFormat = errors.New("ambiguous format")
)

// parseFault carries a decode error up through the recursive descent.
// Decoders panic with it and the exported entry points recover, so the
// descent itself never threads error returns (same pattern the file parse
// trial uses: abort the whole file on the first structural violation).
type parseFault struct {
	err error
}

// catch converts a parseFault panic into the caller's error return.
// Any other panic is re-raised.
func catch(errp *error) {
	switch r := recover().(type) {
	case nil:
	case parseFault:
		*errp = r.err
	default:
		panic(r)
	}
}
