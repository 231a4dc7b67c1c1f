package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"red", ColorRed, false},
		{" Blue ", ColorBlue, false},
		{"bright-cyan", ColorBrightCyan, false},
		{"grey", ColorGray, false},
		{"purple", ColorPurple, false},
		{"#ff0000", ColorBrightRed, false},
		{"#0000f0", ColorBlue, false},
		{"#ff8800", ColorOrange, false},
		{"", ColorDefault, true},
		{"chartreuse-ish", ColorDefault, true},
		{"#zzzzzz", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) expected error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestColorRoundTripNames(t *testing.T) {
	for _, c := range SpellPalette {
		got, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseColor(%q) = %v, expected %v", c.String(), got, c)
		}
	}
}

func TestColorNext(t *testing.T) {
	if ColorRed.Next() != ColorBlue {
		t.Errorf("ColorRed.Next() = %v, expected blue", ColorRed.Next())
	}
	last := SpellPalette[len(SpellPalette)-1]
	if last.Next() != SpellPalette[0] {
		t.Errorf("last palette entry should wrap to %v, got %v", SpellPalette[0], last.Next())
	}
	if ColorGray.Next() != SpellPalette[0] {
		t.Errorf("color outside palette should restart at %v, got %v", SpellPalette[0], ColorGray.Next())
	}
}
