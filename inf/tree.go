package inf

// Value type tags as stored in the binary property encoding.
const (
	ValueString     = 0 // narrow string table index
	ValueDouble     = 1 // IEEE-754 float64
	ValueWideString = 2 // wide string table index
	ValueBlob       = 3 // length-prefixed raw bytes
)

// Value is one entry of a property's value list. String and wide-string
// indices are resolved against the tables during decode, so Data holds a
// string (narrow or wide), a float64, or a []byte depending on Type.
type Value struct {
	Type uint8
	Data interface{}
}

// Property is a named, ordered list of values. Values are heterogeneous:
// each carries its own type tag in the binary form.
type Property struct {
	Name   string
	Values []Value
}

// Section is a named child container. A container section holds sibling
// objects in Objects; an inline object section holds its payload in Inline
// (with the class name parsed out of the section's own name). Exactly one
// of the two is populated.
type Section struct {
	Name    string
	Objects []*Object
	Inline  *Object
}

// Object is the recursive unit of the tree. Property and section order is
// preserved from the binary form and is semantically significant - it is
// never sorted.
type Object struct {
	Class      string
	Properties []Property
	Sections   []Section
}

// Format identifies which of the three binary grammars a buffer uses.
type Format int

const (
	FormatObject Format = iota
	FormatSimple
	FormatTerrainTypeTable
)

func (f Format) String() string {
	switch f {
	case FormatObject:
		return "Object"
	case FormatSimple:
		return "Simple"
	case FormatTerrainTypeTable:
		return "TerrainTypeTable"
	default:
		return "Unknown"
	}
}

// Document is one fully decoded INF file: the grammar it used, the string
// tables it resolved against, and the root of the object tree. The tree is
// immutable once built.
type Document struct {
	Format Format
	Tables *Tables
	Root   *Object
}
