package inf

// Object grammar: the default and most common layout. The root object has
// no class index (its class is table slot 0); every child object carries an
// explicit one. Sections discriminate on their second u32 field: zero means
// a container of sibling objects, nonzero means the section is itself an
// object and the field is its property count.

// objectRoot decodes {prop_count, child_count, properties, sections} with
// the cursor at the root structure.
func (d *decoder) objectRoot() *Object {
	obj := &Object{Class: d.str(0)}
	propCount := d.b.u32()
	childCount := d.b.u32()
	d.fill(obj, propCount, childCount)
	return obj
}

// childObject decodes a container member, which prefixes the root layout
// with its class index.
func (d *decoder) childObject() *Object {
	obj := &Object{Class: d.str(d.b.u32())}
	propCount := d.b.u32()
	childCount := d.b.u32()
	d.fill(obj, propCount, childCount)
	return obj
}

// section decodes either section variant, discriminated by the second field.
func (d *decoder) section() Section {
	name := d.str(d.b.u32())
	discriminant := d.b.u32()

	if discriminant == 0 {
		objCount := d.b.u32()
		d.checkCount(objCount, "object")
		s := Section{Name: name}
		for i := uint32(0); i < objCount; i++ {
			s.Objects = append(s.Objects, d.childObject())
		}
		return s
	}

	// Inline object section: the discriminant is the property count and the
	// class name is embedded in the section name.
	propCount := discriminant
	childCount := d.b.u32()
	sectionName, class := splitSectionName(name)
	inline := &Object{Class: class}
	d.fill(inline, propCount, childCount)
	return Section{Name: sectionName, Inline: inline}
}
