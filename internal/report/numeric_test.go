package report

import "testing"

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    float64
		unset   bool
	}{
		{"plain integer", "42", 42, false},
		{"decimal", "3.14", 3.14, false},
		{"mega suffix", "11.2M", 11_200_000, false},
		{"mega suffix lowercase", "2m", 2_000_000, false},
		{"kilo suffix", "850K", 850_000, false},
		{"kilo suffix lowercase", "3.5k", 3_500, false},
		{"percentage stripped, value as given", "95%", 95, false},
		{"currency marker stripped", "$0.42", 0.42, false},
		{"thousands separators", "1,234,567", 1_234_567, false},
		{"surrounding whitespace", "  128  ", 128, false},
		{"not a number", "abc", 0, true},
		{"suffix only", "K", 0, true},
		{"empty", "", 0, true},
		{"unset sentinel passthrough", "unset", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumeric(tt.literal)
			if got.Valid == tt.unset {
				t.Fatalf("ParseNumeric(%q).Valid = %v, want %v", tt.literal, got.Valid, !tt.unset)
			}
			if !tt.unset && got.Value != tt.want {
				t.Errorf("ParseNumeric(%q) = %v, want %v", tt.literal, got.Value, tt.want)
			}
		})
	}
}
