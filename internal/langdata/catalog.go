package langdata

import "sort"

// validCodes is every language code the pipeline accepts, in the upstream
// langdata order.
var validCodes = []string{
	"afr", "amh", "ara", "asm", "aze", "aze_cyrl", "bel", "ben", "bih", "bod", "bos", "bul", "cat",
	"ceb", "ces", "chi_sim", "chi_tra", "chr", "cym", "cyr_lid", "dan", "deu", "div", "dzo",
	"ell", "eng", "enm", "epo", "est", "eus", "fas", "fil", "fin", "fra", "frk", "frm", "gle", "glg",
	"grc", "guj", "hat", "heb", "hin", "hrv", "hun", "hye", "iast", "iku", "ind", "isl", "ita", "ita_old",
	"jav", "jav_java", "jpn", "kan", "kat", "kat_old", "kaz", "khm", "kir", "kmr", "kor", "kur_ara", "lao", "lat",
	"lat_lid", "lav", "lit", "mal", "mar", "mkd", "mlt", "msa", "mya", "nep", "nld", "nor", "ori",
	"pan", "pol", "por", "pus", "ron", "rus", "san", "sin", "slk", "slv", "snd", "spa", "spa_old",
	"sqi", "srp", "srp_latn", "swa", "swe", "syr", "tam", "tel", "tgk", "tgl", "tha", "tir", "tur",
	"uig", "ukr", "urd", "uzb", "uzb_cyrl", "vie", "yid", "gle_uncial", "deu_latf",
}

var validCodeSet map[string]bool

func init() {
	validCodeSet = make(map[string]bool, len(validCodes))
	for _, code := range validCodes {
		validCodeSet[code] = true
	}
}

// Known reports whether code is an accepted language code.
func Known(code string) bool {
	return validCodeSet[code]
}

// Codes returns all accepted language codes sorted alphabetically.
func Codes() []string {
	out := make([]string, len(validCodes))
	copy(out, validCodes)
	sort.Strings(out)
	return out
}
