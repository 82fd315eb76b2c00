package inf

import (
	"errors"
	"testing"
)

func TestLoadTables(t *testing.T) {
	data := buildBuffer(nil, []byte{0, 0, 0, 0, 0, 0, 0, 0},
		[]string{"cPrismScreen", "_RefID", ""},
		[]string{"Hello", "wideé"})

	tables, err := LoadTables(data)
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}

	if len(tables.Strings) != 3 {
		t.Fatalf("got %d strings, want 3", len(tables.Strings))
	}
	if tables.Strings[0] != "cPrismScreen" || tables.Strings[1] != "_RefID" || tables.Strings[2] != "" {
		t.Errorf("narrow table = %q", tables.Strings)
	}

	if len(tables.Wide) != 2 {
		t.Fatalf("got %d wide strings, want 2", len(tables.Wide))
	}
	if tables.Wide[0] != "Hello" || tables.Wide[1] != "wideé" {
		t.Errorf("wide table = %q", tables.Wide)
	}
}

func TestLoadTablesTruncated(t *testing.T) {
	full := buildBuffer(nil, nil, []string{"alpha", "beta"}, []string{"wide"})

	tests := []struct {
		name string
		cut  int // bytes to drop from the end
	}{
		{"missing wide data", 2},
		{"missing wide header", 9},
		{"unterminated string", 18},
		{"missing narrow count", 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTables(full[:len(full)-tt.cut])
			if !errors.Is(err, ErrTruncatedStringTable) {
				t.Fatalf("got %v, want ErrTruncatedStringTable", err)
			}
		})
	}
}

func TestLoadTablesBadOffset(t *testing.T) {
	tests := []struct {
		name string
		sto  uint32
	}{
		{"zero", 0},
		{"inside header", 8},
		{"past end", 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildBuffer(nil, nil, []string{"x"}, nil)
			data[0] = byte(tt.sto)
			data[1] = byte(tt.sto >> 8)
			data[2] = 0
			data[3] = 0
			_, err := LoadTables(data)
			if !errors.Is(err, ErrTruncatedStringTable) {
				t.Fatalf("got %v, want ErrTruncatedStringTable", err)
			}
		})
	}
}

func TestLookupOutOfRange(t *testing.T) {
	tables := &Tables{Strings: []string{"a", "b"}, Wide: []string{"w"}}

	if s, err := tables.Lookup(1); err != nil || s != "b" {
		t.Fatalf("Lookup(1) = %q, %v", s, err)
	}
	// Index == count must fail, never return a default.
	if _, err := tables.Lookup(2); !errors.Is(err, ErrStringIndexOutOfRange) {
		t.Errorf("Lookup(2) = %v, want ErrStringIndexOutOfRange", err)
	}
	if _, err := tables.Lookup(0xFFFFFFFF); !errors.Is(err, ErrStringIndexOutOfRange) {
		t.Errorf("Lookup(max) = %v, want ErrStringIndexOutOfRange", err)
	}
	if _, err := tables.LookupWide(1); !errors.Is(err, ErrStringIndexOutOfRange) {
		t.Errorf("LookupWide(1) = %v, want ErrStringIndexOutOfRange", err)
	}
}
