// Package similarity implements the string scorers used by fuzzy field matching.
// Every scorer takes two already-normalized strings and returns a value in [0,1].
// Lengths are counted in runes so Cyrillic headers score the same as Latin ones.
package similarity

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Ensemble weights. Changing them changes every stored confidence score.
const (
	WeightEdit      = 0.25
	WeightJaro      = 0.25
	WeightSubstring = 0.20
	WeightPhonetic  = 0.15
	WeightNgram     = 0.15
)

// Scores keeps the individual components of a Combined call.
type Scores struct {
	Edit      float64
	Jaro      float64
	Substring float64
	Phonetic  float64
	Ngram     float64
	Combined  float64
}

// Edit is 1 - levenshtein(a,b)/max(len(a),len(b)).
func Edit(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	m := la
	if lb > m {
		m = lb
	}
	if m == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return clamp(1 - float64(d)/float64(m))
}

// Substring scores len(shorter)/len(longer) when the shorter string occurs inside
// the longer one, 0 otherwise. An empty shorter string scores 0.
func Substring(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longer, shorter := a, b
	ll, ls := la, lb
	if lb > la {
		longer, shorter = b, a
		ll, ls = lb, la
	}
	if ls == 0 {
		return 0
	}
	if !strings.Contains(longer, shorter) {
		return 0
	}
	return float64(ls) / float64(ll)
}

// Ngram is the Jaccard index of the character bigram sets of a and b.
func Ngram(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	ga, gb := bigramSet(a), bigramSet(b)
	if len(ga) == 0 || len(gb) == 0 {
		// одиночный символ: биграмм нет, сравниваем как есть
		if a == b {
			return 1
		}
		return 0
	}
	inter := 0
	for g := range ga {
		if _, ok := gb[g]; ok {
			inter++
		}
	}
	union := len(ga) + len(gb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func bigramSet(s string) map[string]struct{} {
	r := []rune(s)
	m := make(map[string]struct{}, len(r))
	for i := 0; i+2 <= len(r); i++ {
		m[string(r[i:i+2])] = struct{}{}
	}
	return m
}

// Combined is the weighted ensemble used by fuzzy matching.
func Combined(a, b string) float64 {
	return Score(a, b).Combined
}

// Score computes every component and the weighted ensemble.
func Score(a, b string) Scores {
	return ScoreKeyed(a, PhoneticKey(a), b, PhoneticKey(b))
}

// ScoreKeyed is Score with precomputed phonetic keys; the corpus side of a
// fuzzy scan reuses its keys across inputs.
func ScoreKeyed(a, keyA, b, keyB string) Scores {
	s := Scores{
		Edit:      Edit(a, b),
		Jaro:      Jaro(a, b),
		Substring: Substring(a, b),
		Phonetic:  CompareKeys(keyA, keyB),
		Ngram:     Ngram(a, b),
	}
	s.Combined = clamp(WeightEdit*s.Edit +
		WeightJaro*s.Jaro +
		WeightSubstring*s.Substring +
		WeightPhonetic*s.Phonetic +
		WeightNgram*s.Ngram)
	return s
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
