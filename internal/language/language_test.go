package language

import (
	"testing"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Plain ISO codes resolve through the display tables.
		{"eng", "English"},
		{"deu", "German"},
		{"fra", "French"},
		{"jpn", "Japanese"},
		{"ita", "Italian"},
		// Normalization.
		{" ENG ", "English"},
		// Script and era variants.
		{"srp_latn", "Serbian (Latin)"},
		{"aze_cyrl", "Azerbaijani (Cyrillic)"},
		{"uzb_cyrl", "Uzbek (Cyrillic)"},
		{"deu_latf", "German (Fraktur)"},
		{"gle_uncial", "Irish (Uncial)"},
		{"ita_old", "Italian (Old)"},
		{"spa_old", "Spanish (Old)"},
		{"kat_old", "Georgian (Old)"},
		{"jav_java", "Javanese (Javanese script)"},
		{"kur_ara", "Kurdish (Arabic script)"},
		// Overrides the ISO tables miss or mislabel.
		{"chi_sim", "Chinese (Simplified)"},
		{"chi_tra", "Chinese (Traditional)"},
		{"frk", "German (Fraktur)"},
		{"iast", "Sanskrit (IAST)"},
		{"lat_lid", "Latin script identifier"},
		{"cyr_lid", "Cyrillic script identifier"},
		{"enm", "Middle English"},
		{"grc", "Ancient Greek"},
		// Unknown input comes back unchanged.
		{"xyzzy", "xyzzy"},
		{"eng_bork", "English (bork)"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := DisplayName(tt.input)
			if result != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
