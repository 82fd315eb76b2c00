package inf

import "encoding/binary"

// Simple grammar: pure nested key/section data with no class indices and no
// polymorphism. The decompressed header's u32 at 0x08 is the top-level
// section count; the sections follow from 0x10. Whether the first top-level
// section is really nameless or the reference files just happened that way
// is unsettled, so its name is treated as optional: decoded as empty, never
// required.

// simpleRoot decodes all top-level sections into a synthetic root object
// with no class of its own.
func (d *decoder) simpleRoot(data []byte) *Object {
	sectionCount := binary.LittleEndian.Uint32(data[0x08:0x0C])
	d.checkCount(sectionCount, "section")

	root := &Object{}
	for i := uint32(0); i < sectionCount; i++ {
		name := ""
		if i > 0 {
			name = d.str(d.b.u32())
		}
		root.Sections = append(root.Sections, d.simpleSection(name))
	}
	return root
}

// simpleSection decodes {prop_count, child_count, properties, nested
// sections}. Nested sections always carry a name index. The body is modeled
// as an inline object with an empty class, which is exactly what it is: a
// section that owns its payload directly.
func (d *decoder) simpleSection(name string) Section {
	propCount := d.b.u32()
	childCount := d.b.u32()
	d.checkCount(propCount, "property")
	d.checkCount(childCount, "section")

	obj := &Object{}
	for i := uint32(0); i < propCount; i++ {
		obj.Properties = append(obj.Properties, d.property())
	}
	for i := uint32(0); i < childCount; i++ {
		obj.Sections = append(obj.Sections, d.simpleSection(d.str(d.b.u32())))
	}
	return Section{Name: name, Inline: obj}
}
