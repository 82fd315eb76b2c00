package main

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/wfront-tools/go-inf-converter/inf"
)

// AnalyzeFile reports a file's structure without materializing the object
// tree: container version, grammar, table sizes, top-level counts. It
// degrades gracefully, printing whatever was established before a failure
// and returning that failure.
func (c *Converter) AnalyzeFile(path string) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}

	var decompressed []byte
	switch kind := inf.DetectKind(data); kind {
	case inf.KindCompressed:
		out, info, err := inf.Unwrap(data)
		if err != nil {
			fmt.Printf("Compressed INF (magic recognized), but: %v\n", err)
			return err
		}
		fmt.Printf("Compressed INF, version %d\n", info.Version)
		fmt.Printf("Magic: 0x%08X\n", info.Header.Magic)
		fmt.Printf("Compressed size: %d\n", info.Header.CompressedSize)
		fmt.Printf("Uncompressed size: %d\n", info.Header.UncompressedSize)
		if info.SizeMismatch {
			fmt.Printf("Warning: header sizes disagree with payload\n")
		}
		decompressed = out

	case inf.KindText:
		fmt.Println("Text INF file")
		head := data
		if len(head) > 500 {
			head = head[:500]
		}
		fmt.Println(string(head))
		return nil

	case inf.KindBinary:
		fmt.Println("Already decompressed binary INF")
		decompressed = data

	default:
		fmt.Println("Unknown format")
		return fmt.Errorf("%s: unrecognized payload", path)
	}

	fmt.Printf("Decompressed: %d bytes (digest %016x)\n",
		len(decompressed), xxhash.Sum64(decompressed))

	tables, err := inf.LoadTables(decompressed)
	if err != nil {
		fmt.Printf("String tables unreadable: %v\n", err)
		return err
	}
	fmt.Printf("String table at 0x%X: %d strings, %d wide strings\n",
		tables.Offset, len(tables.Strings), len(tables.Wide))
	for i, s := range tables.Strings {
		if i == 20 {
			fmt.Printf("  ... %d more\n", len(tables.Strings)-20)
			break
		}
		fmt.Printf("  [%d] %s\n", i, s)
	}

	format, cerr := inf.Classify(decompressed, tables)
	fmt.Printf("Grammar: %s\n", format)
	if cerr != nil {
		fmt.Printf("Warning: %v\n", cerr)
	}

	printTopLevel(decompressed, format)
	return nil
}

// printTopLevel reads only the root counts of each grammar.
func printTopLevel(data []byte, format inf.Format) {
	le := binary.LittleEndian
	switch format {
	case inf.FormatSimple:
		fmt.Printf("Top-level sections: %d\n", le.Uint32(data[0x08:0x0C]))
	case inf.FormatTerrainTypeTable:
		if len(data) >= 0x22 {
			fmt.Printf("Root: %d properties, %d sections, %d child objects\n",
				le.Uint16(data[0x10:0x12]), le.Uint16(data[0x12:0x14]),
				le.Uint16(data[0x1E:0x20]))
		}
	default:
		if len(data) >= 0x18 {
			fmt.Printf("Root: %d properties, %d sections\n",
				le.Uint32(data[0x10:0x14]), le.Uint32(data[0x14:0x18]))
		}
	}
}
