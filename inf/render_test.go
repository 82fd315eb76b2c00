package inf

import (
	"math"
	"testing"
)

func TestFormatDouble(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{255, "255"},
		{-3, "-3"},
		{1.5, "1.5"},
		{-0.25, "-0.25"},
		{1e15, "1e+15"},
		{math.Inf(1), "+Inf"},
	}

	for _, tt := range tests {
		if got := formatDouble(tt.in); got != tt.want {
			t.Errorf("formatDouble(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"bare string", Value{ValueString, "MainMenu"}, "MainMenu"},
		{"empty string", Value{ValueString, ""}, `""`},
		{"comma", Value{ValueString, "a,b"}, `"a,b"`},
		{"brackets", Value{ValueString, "x[0]"}, `"x[0]"`},
		{"trailing space", Value{ValueString, "pad "}, `"pad "`},
		{"embedded quote", Value{ValueString, `say "hi"`}, `"say \"hi\""`},
		{"newline", Value{ValueString, "a\nb"}, `"a\nb"`},
		{"spaces inside are fine", Value{ValueString, "Controls *"}, "Controls *"},
		{"wide", Value{ValueWideString, `wide "x"`}, `L"wide \"x\""`},
		{"blob", Value{ValueBlob, []byte{0xDE, 0xAD, 0xBE, 0xEF}}, "blob:deadbeef"},
		{"empty blob", Value{ValueBlob, []byte{}}, "blob:"},
		{"double", Value{ValueDouble, 2.5}, "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.v); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatValueRejectsUnknownType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an unknown value type")
		}
	}()
	formatValue(Value{Type: 9})
}

func TestRenderGolden(t *testing.T) {
	doc := &Document{
		Format: FormatObject,
		Root: &Object{
			Class: "cPrismScreen",
			Properties: []Property{
				{Name: "_RefID", Values: []Value{{ValueDouble, 1.0}}},
			},
			Sections: []Section{
				{
					Name: "Controls *",
					Objects: []*Object{
						{
							Class: "cButton",
							Properties: []Property{
								{Name: "Text", Values: []Value{{ValueWideString, "OK"}}},
							},
						},
					},
				},
				{
					Name: "ToolTip",
					Inline: &Object{
						Class: "cPrismToolTip",
						Properties: []Property{
							{Name: "Delay", Values: []Value{{ValueDouble, 0.5}}},
						},
					},
				},
			},
		},
	}

	want := "[: cPrismScreen]\n" +
		"{\n" +
		"\t_RefID = 1\n" +
		"\tControls *\n" +
		"\t[: cButton]\n" +
		"\t{\n" +
		"\t\tText = L\"OK\"\n" +
		"\t}\n" +
		"\t[ToolTip : cPrismToolTip]\n" +
		"\t{\n" +
		"\t\tDelay = 0.5\n" +
		"\t}\n" +
		"}\n"

	if got := Render(doc); got != want {
		t.Errorf("render mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEmptyValueList(t *testing.T) {
	doc := &Document{
		Format: FormatTerrainTypeTable,
		Root: &Object{
			Properties: []Property{{Name: "StringID"}},
			Sections: []Section{
				{Name: "TerrainTypes *", Objects: []*Object{{Class: "cTerrainType"}}},
			},
		},
	}

	want := "StringID = \n" +
		"TerrainTypes *\n" +
		"[: cTerrainType]\n" +
		"{\n" +
		"}\n"

	if got := Render(doc); got != want {
		t.Errorf("render mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}
