package service

import (
	"sort"
	"strings"
	"unicode/utf8"

	"fieldmap-service/internal/fieldmap/corpus"
	"fieldmap-service/internal/fieldmap/model"
	"fieldmap-service/internal/fieldmap/similarity"
)

// Strategy proposes candidates for one normalized input field.
type Strategy interface {
	Algorithm() model.Algorithm
	Match(input string, c model.Context) []model.MatchCandidate
}

// ===== exact =====

type exactStrategy struct{}

func (exactStrategy) Algorithm() model.Algorithm { return model.AlgorithmExactMatch }

func (exactStrategy) Match(input string, _ model.Context) []model.MatchCandidate {
	field, ok := corpus.Lookup(input)
	if !ok {
		return nil
	}
	return []model.MatchCandidate{{
		Field:            field,
		Confidence:       1.0,
		Algorithm:        model.AlgorithmExactMatch,
		MatchedVariation: input,
	}}
}

// ===== fuzzy =====

const (
	baseFuzzyThreshold  = 0.65
	shortFieldThreshold = 0.5
	looseThreshold      = 0.6
)

var (
	competitorPrefixes = []string{"customer_", "invoice_", "item_", "payment_", "partner_", "dokument_", "stavka_"}
	competitorSuffixes = []string{"_kupca", "_robe", "_racuna", "_iznos", "_datum"}
)

type variant struct {
	field string
	text  string
	key   string // phonetic key, precomputed
}

type fuzzyStrategy struct {
	base     float64
	variants []variant
}

func newFuzzyStrategy() *fuzzyStrategy {
	fs := &fuzzyStrategy{base: baseFuzzyThreshold}
	for _, e := range corpus.Entries() {
		for _, v := range e.Variations {
			fs.variants = append(fs.variants, variant{field: e.Field, text: v, key: similarity.PhoneticKey(v)})
		}
	}
	return fs
}

func (*fuzzyStrategy) Algorithm() model.Algorithm { return model.AlgorithmFuzzyMatch }

func (fs *fuzzyStrategy) Match(input string, _ model.Context) []model.MatchCandidate {
	if input == "" {
		return nil
	}
	key := similarity.PhoneticKey(input)

	var out []model.MatchCandidate
	for _, v := range fs.variants {
		score := similarity.ScoreKeyed(input, key, v.text, v.key).Combined
		th := adaptiveThreshold(input, v.text, fs.base)
		if score >= th {
			out = append(out, model.MatchCandidate{
				Field:            v.field,
				Confidence:       score,
				Algorithm:        model.AlgorithmFuzzyMatch,
				MatchedVariation: v.text,
				Threshold:        th,
			})
		}
	}
	return rankUnique(out)
}

// adaptiveThreshold lowers the fuzzy cut-off for short, very long and
// competitor-styled names.
func adaptiveThreshold(input, variation string, base float64) float64 {
	li, lv := utf8.RuneCountInString(input), utf8.RuneCountInString(variation)

	if li <= 4 || lv <= 4 {
		return maxf(shortFieldThreshold, base-0.1)
	}
	if li > 20 || lv > 20 {
		return maxf(looseThreshold, base-0.05)
	}
	for _, p := range competitorPrefixes {
		if strings.HasPrefix(input, p) || strings.HasPrefix(variation, p) {
			return maxf(looseThreshold, base-0.05)
		}
	}
	for _, s := range competitorSuffixes {
		if strings.HasSuffix(input, s) || strings.HasSuffix(variation, s) {
			return maxf(looseThreshold, base-0.05)
		}
	}
	return base
}

// rankUnique sorts by confidence (stable) and keeps the first candidate per field.
func rankUnique(in []model.MatchCandidate) []model.MatchCandidate {
	sort.SliceStable(in, func(i, j int) bool { return in[i].Confidence > in[j].Confidence })
	seen := make(map[string]struct{}, len(in))
	out := make([]model.MatchCandidate, 0, len(in))
	for _, c := range in {
		if _, ok := seen[c.Field]; ok {
			continue
		}
		seen[c.Field] = struct{}{}
		out = append(out, c)
	}
	return out
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
