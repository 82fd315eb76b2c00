package inf

import (
	"fmt"
	"strings"
)

// rootStart is where the format-specific root structure begins in every
// decompressed buffer.
const rootStart = 0x10

// Decode reconstructs the object tree of one decompressed buffer: load the
// string tables, classify the grammar, run the matching decoder. The buffer
// is read-only throughout.
func Decode(data []byte) (*Document, error) {
	tables, err := LoadTables(data)
	if err != nil {
		return nil, err
	}

	format, cerr := Classify(data, tables)
	doc, err := DecodeAs(data, format, tables)
	if err != nil && cerr != nil {
		// Classification was already suspect; say so alongside the failure.
		return nil, fmt.Errorf("%w (classification: %v)", err, cerr)
	}
	return doc, err
}

// DecodeAs runs one specific grammar decoder against a buffer whose string
// tables are already loaded. Any structural violation aborts the decode;
// no partial tree is returned.
func DecodeAs(data []byte, format Format, tables *Tables) (doc *Document, err error) {
	defer catch(&err)

	d := &decoder{b: newBlob(data), tables: tables}
	d.b.seek(rootStart)

	var root *Object
	switch format {
	case FormatSimple:
		root = d.simpleRoot(data)
	case FormatTerrainTypeTable:
		root = d.terrainRoot()
	default:
		root = d.objectRoot()
	}

	return &Document{Format: format, Tables: tables, Root: root}, nil
}

// decoder is the shared state of one recursive descent: the cursor and the
// read-only string table context. Depth-first, no backtracking.
type decoder struct {
	b      *blob
	tables *Tables
}

func (d *decoder) str(idx uint32) string {
	s, err := d.tables.Lookup(idx)
	if err != nil {
		panic(parseFault{fmt.Errorf("at 0x%X: %w", d.b.pos, err)})
	}
	return s
}

func (d *decoder) wstr(idx uint32) string {
	s, err := d.tables.LookupWide(idx)
	if err != nil {
		panic(parseFault{fmt.Errorf("at 0x%X: %w", d.b.pos, err)})
	}
	return s
}

// checkCount rejects absurd declared counts before they turn into giant
// allocations. Anything this large necessarily overruns the buffer anyway.
func (d *decoder) checkCount(n uint32, what string) {
	if n > maxSaneCount {
		panic(parseFault{fmt.Errorf("%s count %d at 0x%X: %w",
			what, n, d.b.pos, ErrStructuralOverrun)})
	}
}

// value reads one tagged value. Tag dispatch: 0 narrow string index,
// 1 float64, 2 wide string index, 3 length-prefixed blob.
func (d *decoder) value() Value {
	tag := d.b.u8()
	switch tag {
	case ValueString:
		return Value{Type: ValueString, Data: d.str(d.b.u32())}
	case ValueDouble:
		return Value{Type: ValueDouble, Data: d.b.f64()}
	case ValueWideString:
		return Value{Type: ValueWideString, Data: d.wstr(d.b.u32())}
	case ValueBlob:
		n := d.b.u32()
		d.checkCount(n, "blob byte")
		return Value{Type: ValueBlob, Data: d.b.bytes(int(n))}
	default:
		panic(parseFault{fmt.Errorf("tag %d at 0x%X: %w", tag, d.b.pos-1, ErrUnknownValueType)})
	}
}

// property reads a u32 name index, a u8 value count, then that many values.
func (d *decoder) property() Property {
	p := Property{Name: d.str(d.b.u32())}
	count := d.b.u8()
	p.Values = make([]Value, 0, count)
	for i := 0; i < int(count); i++ {
		p.Values = append(p.Values, d.value())
	}
	return p
}

// fill reads the declared properties then sections into obj, in order.
func (d *decoder) fill(obj *Object, propCount, childCount uint32) {
	d.checkCount(propCount, "property")
	d.checkCount(childCount, "section")
	for i := uint32(0); i < propCount; i++ {
		obj.Properties = append(obj.Properties, d.property())
	}
	for i := uint32(0); i < childCount; i++ {
		obj.Sections = append(obj.Sections, d.section())
	}
}

// splitSectionName pulls an embedded class name out of a section name, e.g.
// "ToolTip : cPrismToolTip" -> ("ToolTip", "cPrismToolTip"). A name without
// " : " has no class; that is not an error.
func splitSectionName(name string) (section, class string) {
	if before, after, found := strings.Cut(name, " : "); found {
		return before, after
	}
	return name, ""
}
