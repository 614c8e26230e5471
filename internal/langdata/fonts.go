package langdata

// Per-script font lists. A language rule assigns one of these when the caller
// supplies no fonts; the generic Latin list is the final fallback.

var frakturFonts = []string{
	"CaslonishFraxx Medium",
	"Cloister Black, Light",
	"Proclamate Light",
	"UnifrakturMaguntia",
	"Walbaum-Fraktur",
}

var latinFonts = []string{
	"Arial Bold",
	"Arial Bold Italic",
	"Arial Italic",
	"Arial",
	"Courier New Bold",
	"Courier New Bold Italic",
	"Courier New Italic",
	"Courier New",
	"Times New Roman, Bold",
	"Times New Roman, Bold Italic",
	"Times New Roman, Italic",
	"Times New Roman,",
	"Georgia Bold",
	"Georgia Italic",
	"Georgia",
	"Georgia Bold Italic",
	"Trebuchet MS Bold",
	"Trebuchet MS Bold Italic",
	"Trebuchet MS Italic",
	"Trebuchet MS",
	"Verdana Bold",
	"Verdana Italic",
	"Verdana",
	"Verdana Bold Italic",
	"Tex Gyre Bonum Bold",
	"Tex Gyre Bonum Italic",
	"Tex Gyre Bonum Bold Italic",
	"Tex Gyre Schola Bold",
	"Tex Gyre Schola Italic",
	"Tex Gyre Schola Bold Italic",
	"Tex Gyre Schola Regular",
	"DejaVu Sans Ultra-Light",
}

// Printed/neo-Latin for the lat language code, distinct from Latin script.
var neoLatinFonts = []string{
	"GFS Bodoni",
	"GFS Bodoni Bold",
	"GFS Bodoni Italic",
	"GFS Bodoni Bold Italic",
	"GFS Didot",
	"GFS Didot Bold",
	"GFS Didot Italic",
	"GFS Didot Bold Italic",
	"Cardo",
	"Cardo Bold",
	"Cardo Italic",
	"Wyld",
	"Wyld Italic",
	"EB Garamond",
	"EB Garamond Italic",
	"Junicode",
	"Junicode Bold",
	"Junicode Italic",
	"Junicode Bold Italic",
	"IM FELL DW Pica PRO",
	"IM FELL English PRO",
	"IM FELL Double Pica PRO",
	"IM FELL French Canon PRO",
	"IM FELL Great Primer PRO",
	"IM FELL DW Pica PRO Italic",
	"IM FELL English PRO Italic",
	"IM FELL Double Pica PRO Italic",
	"IM FELL French Canon PRO Italic",
	"IM FELL Great Primer PRO Italic",
}

var irishUncialFonts = []string{
	"Bunchlo Arsa Dubh GC",
	"Bunchlo Arsa GC",
	"Bunchlo Arsa GC Bold",
	"Bunchlo Dubh GC",
	"Bunchlo GC",
	"Bunchlo GC Bold",
	"Bunchlo Nua GC Bold",
	"Bunchló na Nod GC",
	"Gadelica",
	"Glanchlo Dubh GC",
	"Glanchlo GC",
	"Glanchlo GC Bold",
	"Seanchló Dubh GC",
	"Seanchló GC",
	"Seanchló GC Bold",
	"Seanchló na Nod GC",
	"Seanchló Ársa Dubh GC",
	"Seanchló Ársa GC",
	"Seanchló Ársa GC Bold",
	"Tromchlo Beag GC",
	"Tromchlo Mor GC",
	"Urchlo GC",
	"Urchlo GC Bold",
}

// earlyLatinFonts extends the Fraktur and Latin sets with the Wyld family,
// which renders early modern ligatures encoded in the private unicode area,
// and GentiumAlt, which renders the Yogh symbol (U+021C, U+021D) found in
// Old English.
var earlyLatinFonts = concatFonts(frakturFonts, latinFonts, []string{
	"Wyld",
	"Wyld Italic",
	"GentiumAlt",
})

var vietnameseFonts = []string{
	"Arial Unicode MS Bold",
	"Arial Bold Italic",
	"Arial Italic",
	"Arial Unicode MS",
	"FreeMono Bold",
	"Courier New Bold Italic",
	"FreeMono Italic",
	"FreeMono",
	"GentiumAlt Italic",
	"GentiumAlt",
	"Palatino Linotype Bold",
	"Palatino Linotype Bold Italic",
	"Palatino Linotype Italic",
	"Palatino Linotype",
	"Really No 2 LT W2G Light",
	"Really No 2 LT W2G Light Italic",
	"Really No 2 LT W2G Medium",
	"Really No 2 LT W2G Medium Italic",
	"Really No 2 LT W2G Semi-Bold",
	"Really No 2 LT W2G Semi-Bold Italic",
	"Really No 2 LT W2G Ultra-Bold",
	"Really No 2 LT W2G Ultra-Bold Italic",
	"Times New Roman, Bold",
	"Times New Roman, Bold Italic",
	"Times New Roman, Italic",
	"Times New Roman,",
	"Verdana Bold",
	"Verdana Italic",
	"Verdana",
	"Verdana Bold Italic",
	"VL Gothic",
	"VL PGothic",
}

var devanagariFonts = []string{
	"FreeSans",
	"Chandas",
	"Kalimati",
	"Uttara",
	"Lucida Sans",
	"gargi Medium",
	"Lohit Devanagari",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"Noto Sans Devanagari Bold",
	"Noto Sans Devanagari",
	"Samyak Devanagari Medium",
	"Sarai",
	"Saral LT Bold",
	"Saral LT Light",
	"Nakula",
	"Sahadeva",
	"Samanata",
	"Santipur OT Medium",
}

var kannadaFonts = []string{
	"Kedage Bold",
	"Kedage Italic",
	"Kedage",
	"Kedage Bold Italic",
	"Mallige Bold",
	"Mallige Italic",
	"Mallige",
	"Mallige Bold Italic",
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"cheluvi Medium",
	"Noto Sans Kannada Bold",
	"Noto Sans Kannada",
	"Lohit Kannada",
	"Tunga",
	"Tunga Bold",
}

var teluguFonts = []string{
	"Pothana2000",
	"Vemana2000",
	"Lohit Telugu",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"Dhurjati",
	"Gautami Bold",
	"Gidugu",
	"Gurajada",
	"Lakki Reddy",
	"Mallanna",
	"Mandali",
	"NATS",
	"NTR",
	"Noto Sans Telugu Bold",
	"Noto Sans Telugu",
	"Peddana",
	"Ponnala",
	"Ramabhadra",
	"Ravi Prakash",
	"Sree Krushnadevaraya",
	"Suranna",
	"Suravaram",
	"Tenali Ramakrishna",
	"Gautami",
}

var tamilFonts = []string{
	"TAMu_Kadambri",
	"TAMu_Kalyani",
	"TAMu_Maduram",
	"TSCu_Paranar",
	"TSCu_Times",
	"TSCu_Paranar Bold",
	"FreeSans",
	"FreeSerif",
	"Lohit Tamil",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"Droid Sans Tamil Bold",
	"Droid Sans Tamil",
	"Karla Tamil Inclined Bold Italic",
	"Karla Tamil Inclined Italic",
	"Karla Tamil Upright Bold",
	"Karla Tamil Upright",
	"Noto Sans Tamil Bold",
	"Noto Sans Tamil",
	"Noto Sans Tamil UI Bold",
	"Noto Sans Tamil UI",
	"TSCu_Comic Normal",
	"Lohit Tamil Classical",
}

var thaiFonts = []string{
	"FreeSerif",
	"FreeSerif Italic",
	"Garuda",
	"Norasi",
	"Lucida Sans Typewriter",
	"Lucida Sans",
	"Garuda Oblique",
	"Norasi Oblique",
	"Norasi Italic",
	"Garuda Bold",
	"Norasi Bold",
	"Lucida Sans Typewriter Bold",
	"Lucida Sans Semi-Bold",
	"Garuda Bold Oblique",
	"Norasi Bold Italic",
	"Norasi Bold Oblique",
	"AnuParp LT Thai",
	"Arial Unicode MS Bold",
	"Arial Unicode MS",
	"Ascender Uni",
	"Loma",
	"Noto Serif Thai Bold",
	"Noto Serif Thai",
	"Purisa Light",
	"Sirichana LT Bold",
	"Sirichana LT",
	"Sukothai LT Bold",
	"Sukothai LT",
	"UtSaHaGumm LT Thai",
	"Tahoma",
}

var koreanFonts = []string{
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"Baekmuk Batang Patched",
	"Baekmuk Batang",
	"Baekmuk Dotum",
	"Baekmuk Gulim",
	"Baekmuk Headline",
}

var chiSimFonts = []string{
	"AR PL UKai CN",
	"AR PL UMing Patched Light",
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"WenQuanYi Zen Hei Medium",
}

var chiTraFonts = []string{
	"AR PL UKai TW",
	"AR PL UMing TW MBE Light",
	"AR PL UKai Patched",
	"AR PL UMing Patched Light",
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"WenQuanYi Zen Hei Medium",
}

var jpnFonts = []string{
	"TakaoExGothic",
	"TakaoExMincho",
	"TakaoGothic",
	"TakaoMincho",
	"TakaoPGothic",
	"TakaoPMincho",
	"VL Gothic",
	"VL PGothic",
	"Noto Sans Japanese Bold",
	"Noto Sans Japanese Light",
}

var russianFonts = []string{
	"Arial Bold",
	"Arial Bold Italic",
	"Arial Italic",
	"Arial",
	"Courier New Bold",
	"Courier New Bold Italic",
	"Courier New Italic",
	"Courier New",
	"Times New Roman, Bold",
	"Times New Roman, Bold Italic",
	"Times New Roman, Italic",
	"Times New Roman,",
	"Georgia Bold",
	"Georgia Italic",
	"Georgia",
	"Georgia Bold Italic",
	"Trebuchet MS Bold",
	"Trebuchet MS Bold Italic",
	"Trebuchet MS Italic",
	"Trebuchet MS",
	"Verdana Bold",
	"Verdana Italic",
	"Verdana",
	"Verdana Bold Italic",
	"DejaVu Serif",
	"DejaVu Serif Oblique",
	"DejaVu Serif Bold",
	"DejaVu Serif Bold Oblique",
	"Lucida Bright",
	"FreeSerif Bold",
	"FreeSerif Bold Italic",
	"DejaVu Sans Ultra-Light",
}

var greekFonts = []string{
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"DejaVu Sans Mono",
	"DejaVu Sans Mono Oblique",
	"DejaVu Sans Mono Bold",
	"DejaVu Sans Mono Bold Oblique",
	"DejaVu Serif",
	"DejaVu Serif Semi-Condensed",
	"DejaVu Serif Oblique",
	"DejaVu Serif Bold",
	"DejaVu Serif Bold Oblique",
	"DejaVu Serif Bold Semi-Condensed",
	"FreeSerif Bold",
	"FreeSerif Bold Italic",
	"FreeSerif Italic",
	"FreeSerif",
	"GentiumAlt",
	"GentiumAlt Italic",
	"Linux Biolinum O Bold",
	"Linux Biolinum O",
	"Linux Libertine O Bold",
	"Linux Libertine O",
	"Linux Libertine O Bold Italic",
	"Linux Libertine O Italic",
	"Palatino Linotype Bold",
	"Palatino Linotype Bold Italic",
	"Palatino Linotype Italic",
	"Palatino Linotype",
	"UmePlus P Gothic",
	"VL PGothic",
}

var ancientGreekFonts = []string{
	"GFS Artemisia",
	"GFS Artemisia Bold",
	"GFS Artemisia Bold Italic",
	"GFS Artemisia Italic",
	"GFS Bodoni",
	"GFS Bodoni Bold",
	"GFS Bodoni Bold Italic",
	"GFS Bodoni Italic",
	"GFS Didot",
	"GFS Didot Bold",
	"GFS Didot Bold Italic",
	"GFS Didot Italic",
	"GFS DidotClassic",
	"GFS Neohellenic",
	"GFS Neohellenic Bold",
	"GFS Neohellenic Bold Italic",
	"GFS Neohellenic Italic",
	"GFS Philostratos",
	"GFS Porson",
	"GFS Pyrsos",
	"GFS Solomos",
}

var arabicFonts = []string{
	"Arabic Transparent Bold",
	"Arabic Transparent",
	"Arab",
	"Arial Unicode MS Bold",
	"Arial Unicode MS",
	"ASVCodar LT Bold",
	"ASVCodar LT Light",
	"Badiya LT Bold",
	"Badiya LT",
	"Badr LT Bold",
	"Badr LT",
	"Dimnah",
	"Frutiger LT Arabic Bold",
	"Frutiger LT Arabic",
	"Furat",
	"Hassan LT Bold",
	"Hassan LT Light",
	"Jalal LT Bold",
	"Jalal LT Light",
	"Midan Bold",
	"Midan",
	"Mitra LT Bold",
	"Mitra LT Light",
	"Palatino LT Arabic",
	"Palatino Sans Arabic Bold",
	"Palatino Sans Arabic",
	"Simplified Arabic Bold",
	"Simplified Arabic",
	"Times New Roman, Bold",
	"Times New Roman,",
	"Traditional Arabic Bold",
	"Traditional Arabic",
}

var hebrewFonts = []string{
	"Arial Bold",
	"Arial Bold Italic",
	"Arial Italic",
	"Arial",
	"Courier New Bold",
	"Courier New Bold Italic",
	"Courier New Italic",
	"Courier New",
	"Ergo Hebrew Semi-Bold",
	"Ergo Hebrew Semi-Bold Italic",
	"Ergo Hebrew",
	"Ergo Hebrew Italic",
	"Really No 2 LT W2G Light",
	"Really No 2 LT W2G Light Italic",
	"Really No 2 LT W2G Medium",
	"Really No 2 LT W2G Medium Italic",
	"Really No 2 LT W2G Semi-Bold",
	"Really No 2 LT W2G Semi-Bold Italic",
	"Really No 2 LT W2G Ultra-Bold",
	"Really No 2 LT W2G Ultra-Bold Italic",
	"Times New Roman, Bold",
	"Times New Roman, Bold Italic",
	"Times New Roman, Italic",
	"Times New Roman,",
	"Lucida Sans",
	"Tahoma",
}

var bengaliFonts = []string{
	"Bangla Medium",
	"Lohit Bengali",
	"Mukti Narrow",
	"Mukti Narrow Bold",
	"Jamrul Medium Semi-Expanded",
	"Likhan Medium",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"FreeSans",
	"FreeSans Oblique",
	"FreeSerif",
	"FreeSerif Italic",
	"Noto Sans Bengali Bold",
	"Noto Sans Bengali",
	"Ani",
	"Lohit Assamese",
	"Lohit Bengali",
	"Mitra Mono",
}

var kyrgyzFonts = []string{
	"Arial",
	"Arial Bold",
	"Arial Italic",
	"Arial Bold Italic",
	"Courier New",
	"Courier New Bold",
	"Courier New Italic",
	"Courier New Bold Italic",
	"Times New Roman,",
	"Times New Roman, Bold",
	"Times New Roman, Bold Italic",
	"Times New Roman, Italic",
	"DejaVu Serif",
	"DejaVu Serif Oblique",
	"DejaVu Serif Bold",
	"DejaVu Serif Bold Oblique",
	"Lucida Bright",
	"FreeSerif Bold",
	"FreeSerif Bold Italic",
}

var persianFonts = []string{
	"Amiri Bold Italic",
	"Amiri Bold",
	"Amiri Italic",
	"Amiri",
	"Andale Sans Arabic Farsi",
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"Lateef",
	"Lucida Bright",
	"Lucida Sans Oblique",
	"Lucida Sans Semi-Bold",
	"Lucida Sans",
	"Lucida Sans Typewriter Bold",
	"Lucida Sans Typewriter Oblique",
	"Lucida Sans Typewriter",
	"Scheherazade",
	"Tahoma",
	"Times New Roman,",
	"Times New Roman, Bold",
	"Times New Roman, Bold Italic",
	"Times New Roman, Italic",
	"Yakout Linotype Bold",
	"Yakout Linotype",
}

var amharicFonts = []string{
	"Abyssinica SIL",
	"Droid Sans Ethiopic Bold",
	"Droid Sans Ethiopic",
	"FreeSerif",
	"Noto Sans Ethiopic Bold",
	"Noto Sans Ethiopic",
}

var armenianFonts = []string{
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"FreeMono",
	"FreeMono Italic",
	"FreeSans",
	"FreeSans Bold",
	"FreeSans Oblique",
}

var burmeseFonts = []string{
	"Myanmar Sans Pro",
	"Noto Sans Myanmar Bold",
	"Noto Sans Myanmar",
	"Padauk Bold",
	"Padauk",
	"TharLon",
}

var javaneseFonts = []string{"Prada"}

var northAmericanAboriginalFonts = []string{
	"Aboriginal Sans",
	"Aboriginal Sans Bold Italic",
	"Aboriginal Sans Italic",
	"Aboriginal Sans Bold",
	"Aboriginal Serif Bold",
	"Aboriginal Serif Bold Italic",
	"Aboriginal Serif Italic",
	"Aboriginal Serif",
}

var georgianFonts = []string{
	"Arial Unicode MS Bold",
	"Arial Unicode MS",
	"BPG Algeti GPL\\&GNU",
	"BPG Chveulebrivi GPL\\&GNU",
	"BPG Courier GPL\\&GNU",
	"BPG Courier S GPL\\&GNU",
	"BPG DejaVu Sans 2011 GNU-GPL",
	"BPG Elite GPL\\&GNU",
	"BPG Excelsior GPL\\&GNU",
	"BPG Glaho GPL\\&GNU",
	"BPG Gorda GPL\\&GNU",
	"BPG Ingiri GPL\\&GNU",
	"BPG Mrgvlovani Caps GNU\\&GPL",
	"BPG Mrgvlovani GPL\\&GNU",
	"BPG Nateli Caps GPL\\&GNU Light",
	"BPG Nateli Condenced GPL\\&GNU Light",
	"BPG Nateli GPL\\&GNU Light",
	"BPG Nino Medium Cond GPL\\&GNU",
	"BPG Nino Medium GPL\\&GNU Medium",
	"BPG Sans GPL\\&GNU",
	"BPG Sans Medium GPL\\&GNU",
	"BPG Sans Modern GPL\\&GNU",
	"BPG Sans Regular GPL\\&GNU",
	"BPG Serif GPL\\&GNU",
	"BPG Serif Modern GPL\\&GNU",
	"FreeMono",
	"FreeMono Bold Italic",
	"FreeSans",
	"FreeSerif",
	"FreeSerif Bold",
	"FreeSerif Bold Italic",
	"FreeSerif Italic",
}

var oldGeorgianFonts = []string{
	"Arial Unicode MS Bold",
	"Arial Unicode MS",
	"BPG Algeti GPL\\&GNU",
	"BPG Courier S GPL\\&GNU",
	"BPG DejaVu Sans 2011 GNU-GPL",
	"BPG Elite GPL\\&GNU",
	"BPG Excelsior GPL\\&GNU",
	"BPG Glaho GPL\\&GNU",
	"BPG Ingiri GPL\\&GNU",
	"BPG Mrgvlovani Caps GNU\\&GPL",
	"BPG Mrgvlovani GPL\\&GNU",
	"BPG Nateli Caps GPL\\&GNU Light",
	"BPG Nateli Condenced GPL\\&GNU Light",
	"BPG Nateli GPL\\&GNU Light",
	"BPG Nino Medium Cond GPL\\&GNU",
	"BPG Nino Medium GPL\\&GNU Medium",
	"BPG Sans GPL\\&GNU",
	"BPG Sans Medium GPL\\&GNU",
	"BPG Sans Modern GPL\\&GNU",
	"BPG Sans Regular GPL\\&GNU",
	"BPG Serif GPL\\&GNU",
	"BPG Serif Modern GPL\\&GNU",
	"FreeSans",
	"FreeSerif",
	"FreeSerif Bold",
	"FreeSerif Bold Italic",
	"FreeSerif Italic",
}

var khmerFonts = []string{
	"Khmer OS",
	"Khmer OS System",
	"Khmer OS Battambang",
	"Khmer OS Bokor",
	"Khmer OS Content",
	"Khmer OS Fasthand",
	"Khmer OS Freehand",
	"Khmer OS Metal Chrieng",
	"Khmer OS Muol Light",
	"Khmer OS Muol Pali",
	"Khmer OS Muol",
	"Khmer OS Siemreap",
	"Noto Sans Bold",
	"Noto Sans",
	"Noto Serif Khmer Bold",
	"Noto Serif Khmer Light",
}

var kurdishFonts = []string{
	"Amiri Bold Italic",
	"Amiri Bold",
	"Amiri Italic",
	"Amiri",
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"Lateef",
	"Lucida Bright",
	"Lucida Sans Oblique",
	"Lucida Sans Semi-Bold",
	"Lucida Sans",
	"Lucida Sans Typewriter Bold",
	"Lucida Sans Typewriter Oblique",
	"Lucida Sans Typewriter",
	"Scheherazade",
	"Tahoma",
	"Times New Roman,",
	"Times New Roman, Bold",
	"Times New Roman, Bold Italic",
	"Times New Roman, Italic",
	"Unikurd Web",
	"Yakout Linotype Bold",
	"Yakout Linotype",
}

var laothianFonts = []string{
	"Phetsarath OT",
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"Dhyana Bold",
	"Dhyana",
	"Lao Muang Don",
	"Lao Muang Khong",
	"Lao Sans Pro",
	"Noto Sans Lao Bold",
	"Noto Sans Lao",
	"Noto Sans Lao UI Bold",
	"Noto Sans Lao UI",
	"Noto Serif Lao Bold",
	"Noto Serif Lao",
	"Phetsarath Bold",
	"Phetsarath",
	"Souliyo Unicode",
}

var gujaratiFonts = []string{
	"Lohit Gujarati",
	"Rekha Medium",
	"Samyak Gujarati Medium",
	"aakar Medium",
	"padmaa Bold",
	"padmaa Medium",
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"FreeSans",
	"Noto Sans Gujarati Bold",
	"Noto Sans Gujarati",
	"Shruti",
	"Shruti Bold",
}

var malayalamFonts = []string{
	"AnjaliOldLipi",
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"Dyuthi",
	"FreeSerif",
	"Kalyani",
	"Kartika",
	"Kartika Bold",
	"Lohit Malayalam",
	"Meera",
	"Noto Sans Malayalam Bold",
	"Noto Sans Malayalam",
	"Rachana",
	"Rachana_w01",
	"RaghuMalayalam",
	"suruma",
}

var oriyaFonts = []string{
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"ori1Uni Medium",
	"Samyak Oriya Medium",
	"Lohit Oriya",
}

var punjabiFonts = []string{
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"Saab",
	"Lohit Punjabi",
	"Noto Sans Gurmukhi",
	"Noto Sans Gurmukhi Bold",
	"FreeSans",
	"FreeSans Bold",
	"FreeSerif",
}

var sinhalaFonts = []string{
	"Noto Sans Sinhala Bold",
	"Noto Sans Sinhala",
	"OCRUnicode",
	"Yagpo",
	"LKLUG",
	"FreeSerif",
}

var syriacFonts = []string{
	"East Syriac Adiabene",
	"East Syriac Ctesiphon",
	"Estrangelo Antioch",
	"Estrangelo Edessa",
	"Estrangelo Midyat",
	"Estrangelo Nisibin",
	"Estrangelo Quenneshrin",
	"Estrangelo Talada",
	"Estrangelo TurAbdin",
	"Serto Batnan Bold",
	"Serto Batnan",
	"Serto Jerusalem Bold",
	"Serto Jerusalem Italic",
	"Serto Jerusalem",
	"Serto Kharput",
	"Serto Malankara",
	"Serto Mardin Bold",
	"Serto Mardin",
	"Serto Urhoy Bold",
	"Serto Urhoy",
	"FreeSans",
}

var thaanaFonts = []string{"FreeSerif"}

var tibetanFonts = []string{
	"Arial Unicode MS",
	"Arial Unicode MS Bold",
	"Ascender Uni",
	"DDC Uchen",
	"Jomolhari",
	"Kailasa",
	"Kokonor",
	"Tibetan Machine Uni",
	"TibetanTsugRing",
	"Yagpo",
}

// verticalFonts are rendered in vertical-upright writing mode during image
// generation.
var verticalFonts = map[string]bool{
	"TakaoExGothic":             true,
	"TakaoExMincho":             true,
	"AR PL UKai Patched":        true,
	"AR PL UMing Patched Light": true,
	"Baekmuk Batang Patched":    true,
}

// IsVerticalFont reports whether the font must be rendered vertically.
func IsVerticalFont(name string) bool {
	return verticalFonts[name]
}

func concatFonts(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}
