package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d.\-]`)

var spaceStripper = strings.NewReplacer(" ", "", "\u00A0", "", "\u202F", "", "\t", "", "'", "")

// ParseDecimal парсит числа в местной и английской записи:
// "0,8", "1 234,50", "1.234,50", "1,234.50". Десятичным считается последний
// из разделителей "," и ".", остальные считаются разделителями тысяч.
func ParseDecimal(s string) (float64, bool) {
	s = spaceStripper.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
		s = strings.ReplaceAll(s, ",", "")
	case dot > comma:
		s = strings.ReplaceAll(s, ",", "")
	}
	// оставить только цифры, точку и минус (на случай мусора)
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// DecimalOr: ParseDecimal с дефолтом для пустых и кривых значений.
func DecimalOr(s string, def float64) float64 {
	if f, ok := ParseDecimal(s); ok {
		return f
	}
	return def
}
