package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/wfront-tools/go-inf-converter/inf"
)

// Options configures a conversion run.
type Options struct {
	ToText  bool // convert decoded trees to text instead of writing binary
	Analyze bool // report structure only, write nothing
	InPlace bool // overwrite inputs
	Verbose bool // diagnostic detail
}

// Status classifies the outcome of one file.
type Status int

const (
	StatusDecompressed   Status = iota // binary written after inflation
	StatusConverted                    // decoded and written as text
	StatusText                         // input was already text, copied through
	StatusBinaryFallback               // inflated but undecodable, binary written
	StatusSkipped                      // not an INF payload
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusDecompressed:
		return "decompressed"
	case StatusConverted:
		return "converted"
	case StatusText:
		return "text"
	case StatusBinaryFallback:
		return "binary"
	case StatusSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// FileResult records one file's outcome. Err is set for StatusFailed and,
// as the decode reason, for StatusBinaryFallback.
type FileResult struct {
	Input  string
	Output string
	Status Status
	Err    error
}

// Converter runs the per-file pipeline: unwrap, decode, render, write.
// Files share no state, so one Converter may process files concurrently.
type Converter struct {
	opts Options
}

func NewConverter(opts Options) *Converter {
	return &Converter{opts: opts}
}

// ConvertFile processes a single input. outPath may be empty for a dry run.
func (c *Converter) ConvertFile(inPath, outPath string) FileResult {
	res := FileResult{Input: inPath, Output: outPath}

	data, err := readFile(inPath)
	if err != nil {
		res.Status, res.Err = StatusFailed, err
		return res
	}

	if len(data) < inf.HeaderSize {
		if c.opts.Verbose {
			fmt.Printf("  Skipping %s - too small\n", inPath)
		}
		res.Status = StatusSkipped
		return res
	}

	var decompressed []byte
	switch kind := inf.DetectKind(data); kind {
	case inf.KindText:
		if c.opts.Verbose {
			fmt.Printf("  Skipping %s - text format\n", inPath)
		}
		res.Status = StatusText
		res.Err = writeOutput(outPath, data)
		if res.Err != nil {
			res.Status = StatusFailed
		}
		return res

	case inf.KindCompressed:
		out, info, err := inf.Unwrap(data)
		if err != nil {
			res.Status, res.Err = StatusFailed, err
			return res
		}
		if c.opts.Verbose {
			fmt.Printf("  Version: %d, Compressed: %d, Uncompressed: %d\n",
				info.Version, info.Header.CompressedSize, info.Header.UncompressedSize)
			if info.SizeMismatch {
				fmt.Printf("  Warning: header sizes disagree with payload (%d bytes inflated)\n", len(out))
			}
		}
		decompressed = out

	case inf.KindBinary:
		if c.opts.Verbose {
			fmt.Printf("  Processing %s - already decompressed binary\n", inPath)
		}
		decompressed = data

	default:
		if c.opts.Verbose {
			fmt.Printf("  Skipping %s - unknown format\n", inPath)
		}
		res.Status = StatusSkipped
		return res
	}

	if c.opts.ToText {
		doc, err := inf.Decode(decompressed)
		if err == nil {
			text := inf.Render(doc)
			if werr := writeOutput(outPath, []byte(text)); werr != nil {
				res.Status, res.Err = StatusFailed, werr
				return res
			}
			fmt.Printf("  Converted: %s -> text (%d chars)\n", filepath.Base(inPath), len(text))
			res.Status = StatusConverted
			return res
		}

		// Keep the decompressed bytes rather than discarding the file.
		fmt.Printf("  Error converting %s to text: %v\n", inPath, err)
		if werr := writeOutput(outPath, decompressed); werr != nil {
			res.Status, res.Err = StatusFailed, werr
			return res
		}
		res.Status, res.Err = StatusBinaryFallback, err
		return res
	}

	if err := writeOutput(outPath, decompressed); err != nil {
		res.Status, res.Err = StatusFailed, err
		return res
	}
	fmt.Printf("  Decompressed: %s (%d -> %d bytes)\n",
		filepath.Base(inPath), len(data), len(decompressed))
	res.Status = StatusDecompressed
	return res
}

// readFile maps the input read-only and returns a private copy, so in-place
// output can truncate the same path safely afterwards.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size() == 0 {
		return nil, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		// Some filesystems refuse to map; plain reads still work.
		return io.ReadAll(f)
	}
	defer m.Unmap()

	buf := make([]byte, len(m))
	copy(buf, m)
	return buf, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// outputFileFor derives the single-file output path. Explicit -o wins, then
// in-place, then an extension swap next to the input.
func outputFileFor(opts Options, inPath, output string) string {
	if output != "" {
		return output
	}
	if opts.InPlace {
		return inPath
	}
	base := strings.TrimSuffix(inPath, filepath.Ext(inPath))
	if opts.ToText {
		return base + ".txt"
	}
	return base + ".dec.inf"
}

// outputDirFor derives the directory-mode output root.
func outputDirFor(opts Options, inDir, output string) string {
	if output != "" {
		return output
	}
	if opts.InPlace {
		return inDir
	}
	if opts.ToText {
		return inDir + "_text"
	}
	return inDir + "_decompressed"
}
