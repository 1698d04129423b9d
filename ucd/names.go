package ucd

// ScriptNames enumerates the script property values in table order; a
// script's id is its index here. The order is append-only: new Unicode
// versions add names at the end so existing ids stay stable.
var ScriptNames = []string{
	"Arabic", "Armenian", "Bengali", "Bopomofo", "Braille", "Buginese", "Buhid", "Canadian_Aboriginal",
	"Cherokee", "Common", "Coptic", "Cypriot", "Cyrillic", "Deseret", "Devanagari", "Ethiopic", "Georgian",
	"Glagolitic", "Gothic", "Greek", "Gujarati", "Gurmukhi", "Han", "Hangul", "Hanunoo", "Hebrew", "Hiragana",
	"Inherited", "Kannada", "Katakana", "Kharoshthi", "Khmer", "Lao", "Latin", "Limbu", "Linear_B", "Malayalam",
	"Mongolian", "Myanmar", "New_Tai_Lue", "Ogham", "Old_Italic", "Old_Persian", "Oriya", "Osmanya", "Runic",
	"Shavian", "Sinhala", "Syloti_Nagri", "Syriac", "Tagalog", "Tagbanwa", "Tai_Le", "Tamil", "Telugu", "Thaana",
	"Thai", "Tibetan", "Tifinagh", "Ugaritic", "Yi",
	// Unicode 5.0
	"Balinese", "Cuneiform", "Nko", "Phags_Pa", "Phoenician",
	// Unicode 5.1
	"Carian", "Cham", "Kayah_Li", "Lepcha", "Lycian", "Lydian", "Ol_Chiki", "Rejang", "Saurashtra", "Sundanese", "Vai",
	// Unicode 5.2
	"Avestan", "Bamum", "Egyptian_Hieroglyphs", "Imperial_Aramaic",
	"Inscriptional_Pahlavi", "Inscriptional_Parthian",
	"Javanese", "Kaithi", "Lisu", "Meetei_Mayek",
	"Old_South_Arabian", "Old_Turkic", "Samaritan", "Tai_Tham", "Tai_Viet",
	// Unicode 6.0
	"Batak", "Brahmi", "Mandaic",
}

// CategoryNames enumerates the general category property values in table
// order; a category's id is its index here.
var CategoryNames = []string{
	"Cc", "Cf", "Cn", "Co", "Cs", "Ll", "Lm", "Lo", "Lt", "Lu",
	"Mc", "Me", "Mn", "Nd", "Nl", "No", "Pc", "Pd", "Pe", "Pf", "Pi", "Po", "Ps",
	"Sc", "Sk", "Sm", "So", "Zl", "Zp", "Zs",
}

// DefaultScript is the script id assigned to code points no data file
// mentions.
func DefaultScript() int { return nameIndex(ScriptNames, "Common") }

// DefaultCategory is the general category id for unassigned code points.
func DefaultCategory() int { return nameIndex(CategoryNames, "Cn") }

func nameIndex(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	panic("ucd: name missing from enumeration list: " + name)
}
