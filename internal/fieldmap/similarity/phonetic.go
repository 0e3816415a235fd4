package similarity

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/antzucaro/matchr"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Macedonian and Serbian Cyrillic -> Latin, so Cyrillic headers get a phonetic key too.
var translit = strings.NewReplacer(
	"а", "a", "б", "b", "в", "v", "г", "g", "д", "d", "ѓ", "gj", "ђ", "dj",
	"е", "e", "ж", "zh", "з", "z", "ѕ", "dz", "и", "i", "ј", "j", "й", "j",
	"к", "k", "л", "l", "љ", "lj", "м", "m", "н", "n", "њ", "nj", "о", "o",
	"п", "p", "р", "r", "с", "s", "т", "t", "ќ", "kj", "ћ", "c", "у", "u",
	"ф", "f", "х", "h", "ц", "c", "ч", "ch", "џ", "dzh", "ш", "sh",
	"ы", "y", "э", "e", "ю", "ju", "я", "ja", "ь", "", "ъ", "",
	"đ", "dj",
)

// foldLatin strips diacritics (č -> c, š -> s). A fresh chain per call: transform
// chains carry buffers and must not be shared between goroutines.
func foldLatin(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// PhoneticKey returns the Double Metaphone primary code of s after
// transliteration and accent folding. Separators are dropped.
func PhoneticKey(s string) string {
	if s == "" {
		return ""
	}
	s = foldLatin(translit.Replace(strings.ToLower(s)))
	s = strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return ""
	}
	primary, _ := matchr.DoubleMetaphone(strings.ToUpper(s))
	return primary
}

// Phonetic compares the phonetic keys of a and b: identical keys score 1,
// an empty key scores 0, otherwise the edit similarity of the keys.
func Phonetic(a, b string) float64 {
	return CompareKeys(PhoneticKey(a), PhoneticKey(b))
}

// CompareKeys scores two phonetic keys the way Phonetic does.
func CompareKeys(ka, kb string) float64 {
	if ka == kb {
		return 1
	}
	if ka == "" || kb == "" {
		return 0
	}
	m := len(ka)
	if len(kb) > m {
		m = len(kb)
	}
	return clamp(1 - float64(levenshtein.ComputeDistance(ka, kb))/float64(m))
}
