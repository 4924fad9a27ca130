package shelf

import (
	"encoding/json"
	"regexp"
	"testing"
)

func TestColorClasses(t *testing.T) {
	want := []string{
		"book-darkgreen", "book-green", "book-blue", "book-umber",
		"book-springer", "book-red", "book-brightorange", "book-lightblue",
	}
	if len(Colors) != len(want) {
		t.Fatalf("palette has %d colors, want %d", len(Colors), len(want))
	}
	for i, c := range Colors {
		if c.Class() != want[i] {
			t.Errorf("Colors[%d].Class() = %q, want %q", i, c.Class(), want[i])
		}
	}
}

func TestColorHex(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	seen := make(map[string]Color)
	for _, c := range Colors {
		h := c.Hex()
		if !hex.MatchString(h) {
			t.Errorf("%s.Hex() = %q, not a hex color", c, h)
		}
		if prev, dup := seen[h]; dup {
			t.Errorf("%s and %s share hex %s", prev, c, h)
		}
		seen[h] = c
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"umber", ColorUmber, false},
		{"book-umber", ColorUmber, false},
		{"book-lightblue", ColorLightBlue, false},
		{"darkgreen", ColorDarkGreen, false},
		{"purple", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(ColorSpringer)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"book-springer"` {
		t.Errorf("Marshal = %s, want %q", data, "book-springer")
	}

	var c Color
	if err := json.Unmarshal([]byte(`"book-red"`), &c); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if c != ColorRed {
		t.Errorf("Unmarshal = %v, want %v", c, ColorRed)
	}

	if _, err := json.Marshal(Color(42)); err == nil {
		t.Error("Marshal of out-of-palette color should fail")
	}
	if err := json.Unmarshal([]byte(`"book-mauve"`), &c); err == nil {
		t.Error("Unmarshal of unknown class should fail")
	}
}

func TestColorValid(t *testing.T) {
	for _, c := range Colors {
		if !c.Valid() {
			t.Errorf("%s.Valid() = false", c)
		}
	}
	if Color(-1).Valid() || Color(NumColors).Valid() {
		t.Error("out-of-range colors reported valid")
	}
	if got := Color(99).String(); got != "Color(99)" {
		t.Errorf("String() = %q, want %q", got, "Color(99)")
	}
}
