package inf

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Render serializes a decoded tree to the canonical text form: tab-indented,
// newline-delimited, declaration order preserved.
//
// Headers: an object renders as "[: Class]" above its braced body; an inline
// object section as "[Name : Class]" (or "[Name]" when the section name
// carried no class); a container section as a bare name line followed by
// each member object with its own header. A synthetic root (Simple and
// TerrainTypeTable grammars) has no class and renders its content at the
// top level without a wrapper.
//
// Values: doubles print without a decimal point when integral, wide strings
// as L"...", blobs as "blob:" plus lowercase hex. Narrow strings print bare
// unless they are empty or contain the format's own delimiters, in which
// case they are double-quoted with backslash escapes. All value forms are
// free of commas and newlines, so "Name = v1, v2" stays unambiguous.
func Render(doc *Document) string {
	var r renderer
	if doc.Root.Class == "" {
		r.body(doc.Root, 0)
	} else {
		r.object(doc.Root, 0)
	}
	return r.sb.String()
}

type renderer struct {
	sb strings.Builder
}

func (r *renderer) line(depth int, s string) {
	for i := 0; i < depth; i++ {
		r.sb.WriteByte('\t')
	}
	r.sb.WriteString(s)
	r.sb.WriteByte('\n')
}

func (r *renderer) object(obj *Object, depth int) {
	r.line(depth, "[: "+obj.Class+"]")
	r.braced(obj, depth)
}

func (r *renderer) braced(obj *Object, depth int) {
	r.line(depth, "{")
	r.body(obj, depth+1)
	r.line(depth, "}")
}

func (r *renderer) body(obj *Object, depth int) {
	for _, p := range obj.Properties {
		r.line(depth, formatProperty(p))
	}
	for _, s := range obj.Sections {
		r.section(s, depth)
	}
}

func (r *renderer) section(s Section, depth int) {
	if s.Inline != nil {
		switch {
		case s.Name != "" && s.Inline.Class != "":
			r.line(depth, "["+s.Name+" : "+s.Inline.Class+"]")
		case s.Name != "":
			r.line(depth, "["+s.Name+"]")
		case s.Inline.Class != "":
			r.line(depth, "[: "+s.Inline.Class+"]")
		}
		r.braced(s.Inline, depth)
		return
	}

	// Container: the section name once, then each member in original order.
	r.line(depth, s.Name)
	for _, obj := range s.Objects {
		r.object(obj, depth)
	}
}

func formatProperty(p Property) string {
	vals := make([]string, len(p.Values))
	for i, v := range p.Values {
		vals[i] = formatValue(v)
	}
	return fmt.Sprintf("%s = %s", p.Name, strings.Join(vals, ", "))
}

func formatValue(v Value) string {
	switch v.Type {
	case ValueString:
		return formatString(v.Data.(string))
	case ValueDouble:
		return formatDouble(v.Data.(float64))
	case ValueWideString:
		return "L" + strconv.Quote(v.Data.(string))
	case ValueBlob:
		return "blob:" + hex.EncodeToString(v.Data.([]byte))
	default:
		// The decoder only ever produces the four tags above; anything else
		// is a programming error, not data to render.
		panic(fmt.Sprintf("inf: value type %d cannot be rendered", v.Type))
	}
}

// formatDouble shows integral values without decimals, like the engine's
// own text files do.
func formatDouble(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatString(s string) string {
	if needsQuoting(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, ",\"[]{}\\") {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			return true
		}
	}
	return false
}
