package inf

// TerrainTypeTable grammar: a hybrid. The root container has a fixed,
// minimal shape described by 16-bit fields - exactly one string property
// and one section - while the section's members are regular 32-bit
// Object-grammar objects. The root header runs from 0x10 to 0x22:
//
//	prop_count:u16 sec_count:u16 prop_name_idx:u16 sec_name_idx:u16
//	prop_value:u32 pad:u16 child_count:u16 pad:u16
//
// prop_value is a narrow string index; zero means the property has no value.
func (d *decoder) terrainRoot() *Object {
	propCount := d.b.u16()
	secCount := d.b.u16()
	propNameIdx := d.b.u16()
	secNameIdx := d.b.u16()
	propValue := d.b.u32()
	d.b.u16() // padding
	childCount := d.b.u16()
	d.b.u16() // padding

	root := &Object{}

	if propCount > 0 {
		p := Property{Name: d.str(uint32(propNameIdx))}
		if propValue != 0 {
			p.Values = append(p.Values, Value{Type: ValueString, Data: d.str(propValue)})
		}
		root.Properties = append(root.Properties, p)
	}

	if secCount > 0 {
		s := Section{Name: d.str(uint32(secNameIdx))}
		for i := 0; i < int(childCount); i++ {
			s.Objects = append(s.Objects, d.childObject())
		}
		root.Sections = append(root.Sections, s)
	}

	return root
}
