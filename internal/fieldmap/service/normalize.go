package service

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	// пробелы, дефисы и точки -> один "_"
	reSeparators = regexp.MustCompile(`[\s\-.]+`)
	reQuotes     = regexp.MustCompile(`[\[\]()"'\x{201C}\x{201D}\x{2018}\x{2019}]`)
	// "name_2", "name2" -> "name" (дубликаты колонок)
	reTrailingDigits = regexp.MustCompile(`_?\d+$`)
	reGenericPrefix  = regexp.MustCompile(`^(field_|col_|column_|attr_)`)
)

// Normalize brings a raw header into the form the corpus and rules are written in.
func Normalize(raw string) string {
	s := norm.NFC.String(strings.TrimSpace(raw))
	// Caser хранит состояние, поэтому новый на каждый вызов
	s = cases.Lower(language.Und).String(s)
	s = reSeparators.ReplaceAllString(s, "_")
	s = reQuotes.ReplaceAllString(s, "")
	s = reTrailingDigits.ReplaceAllString(s, "")
	s = reGenericPrefix.ReplaceAllString(s, "")
	return s
}

func isCyrillic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}
