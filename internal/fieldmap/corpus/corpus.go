// Package corpus holds the static vocabulary of the field mapper: canonical fields,
// their known surface forms, and competitor naming conventions. Everything here is
// built once at init and never mutated afterwards, so it is safe to share.
package corpus

import "strings"

// Entry binds a canonical field to its known spellings.
type Entry struct {
	Field      string
	Variations []string
}

// Pattern is a substring that marks a competitor's naming style, with a hint
// about which field family it points to.
type Pattern struct {
	Substr string
	Target string
}

var (
	byField   map[string]int    // field -> index in entries
	byVariant map[string]string // lowercased variation -> first field declaring it
	fields    []string
)

func init() {
	byField = make(map[string]int, len(entries))
	byVariant = make(map[string]string, len(entries)*16)
	fields = make([]string, 0, len(entries))

	for i := range entries {
		e := &entries[i]
		e.Variations = dedupeLower(e.Variations)
		byField[e.Field] = i
		fields = append(fields, e.Field)
		for _, v := range e.Variations {
			if _, taken := byVariant[v]; !taken {
				byVariant[v] = e.Field
			}
		}
	}
}

func dedupeLower(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.ToLower(v)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Entries returns the corpus in declaration order. Callers must not modify the
// returned variation slices.
func Entries() []Entry { return entries }

// Fields lists canonical field names in declaration order.
func Fields() []string {
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// IsField reports whether name is a canonical field.
func IsField(name string) bool {
	_, ok := byField[name]
	return ok
}

// Variations returns a copy of the known spellings of field, or nil.
func Variations(field string) []string {
	i, ok := byField[field]
	if !ok {
		return nil
	}
	out := make([]string, len(entries[i].Variations))
	copy(out, entries[i].Variations)
	return out
}

// Lookup finds the canonical field owning an exact (lowercased) variation.
// When two fields share a spelling the one declared first wins.
func Lookup(variation string) (string, bool) {
	f, ok := byVariant[strings.ToLower(variation)]
	return f, ok
}

// CompetitorPatterns returns the naming-convention table of a software product.
func CompetitorPatterns(software string) []Pattern {
	return competitorPatterns[software]
}

// IsKnownSoftware reports whether software is one of the supported competitor products.
func IsKnownSoftware(software string) bool {
	for _, s := range softwareNames {
		if s == software {
			return true
		}
	}
	return false
}
