package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// overrides carries codes whose names the ISO tables get wrong or miss:
// synthetic training sets, historic languages, and the bibliographic chi_*
// pair the tables refuse to parse.
var overrides = map[string]string{
	"bih":     "Bihari",
	"chi_sim": "Chinese (Simplified)",
	"chi_tra": "Chinese (Traditional)",
	"cyr_lid": "Cyrillic script identifier",
	"enm":     "Middle English",
	"frk":     "German (Fraktur)",
	"frm":     "Middle French",
	"grc":     "Ancient Greek",
	"iast":    "Sanskrit (IAST)",
	"kmr":     "Kurdish (Northern)",
	"lat_lid": "Latin script identifier",
}

// variantLabels maps training-code suffixes to the qualifier shown after the
// base language name.
var variantLabels = map[string]string{
	"ara":    "Arabic script",
	"cyrl":   "Cyrillic",
	"java":   "Javanese script",
	"latf":   "Fraktur",
	"latn":   "Latin",
	"old":    "Old",
	"uncial": "Uncial",
}

// DisplayName renders a human-readable name for a training language code.
// Unrecognized codes come back unchanged.
func DisplayName(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if name, ok := overrides[code]; ok {
		return name
	}

	base, suffix, _ := strings.Cut(code, "_")
	name := baseName(base)
	if suffix == "" {
		return name
	}
	if label, ok := variantLabels[suffix]; ok {
		return name + " (" + label + ")"
	}
	return name + " (" + suffix + ")"
}

func baseName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
