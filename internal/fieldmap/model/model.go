package model

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Algorithm is the strategy that produced a candidate.
type Algorithm int

const (
	AlgorithmNone Algorithm = iota
	AlgorithmExactMatch
	AlgorithmFuzzyMatch
	AlgorithmHeuristicPattern
	AlgorithmSemanticAI
	AlgorithmCompetitorPattern
	AlgorithmFallbackHeuristic
)

var algorithmNames = map[Algorithm]string{
	AlgorithmNone:              "none",
	AlgorithmExactMatch:        "exact_match",
	AlgorithmFuzzyMatch:        "fuzzy_match",
	AlgorithmHeuristicPattern:  "heuristic_pattern",
	AlgorithmSemanticAI:        "semantic_ai",
	AlgorithmCompetitorPattern: "competitor_pattern",
	AlgorithmFallbackHeuristic: "fallback_heuristic",
}

// шаблоны пояснений для подсказок (процент подставляется)
var algorithmReasons = map[Algorithm]string{
	AlgorithmExactMatch:       "Exact match found in Macedonian corpus (%d%% confidence)",
	AlgorithmFuzzyMatch:       "Similar field name detected (%d%% confidence)",
	AlgorithmHeuristicPattern: "Pattern matching suggests this mapping (%d%% confidence)",
	AlgorithmSemanticAI:       "Semantic analysis indicates this field (%d%% confidence)",
}

func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return "unknown"
}

// Reason renders the human-readable justification shown next to a suggestion.
func (a Algorithm) Reason(confidence float64) string {
	pct := int(math.Round(confidence * 100))
	if tpl, ok := algorithmReasons[a]; ok {
		return fmt.Sprintf(tpl, pct)
	}
	return fmt.Sprintf("Automated suggestion (%d%% confidence)", pct)
}

func ParseAlgorithm(s string) (Algorithm, bool) {
	for a, name := range algorithmNames {
		if name == s {
			return a, true
		}
	}
	return AlgorithmNone, false
}

func (a Algorithm) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Algorithm) UnmarshalText(b []byte) error {
	v, ok := ParseAlgorithm(string(b))
	if !ok {
		return fmt.Errorf("unknown algorithm %q", string(b))
	}
	*a = v
	return nil
}

// Context carries optional hints supplied with a mapping request.
type Context struct {
	Software string            `json:"software,omitempty"` // onivo | megasoft | pantheon
	Extra    map[string]string `json:"extra,omitempty"`
}

// MatchCandidate is one strategy's opinion about one input field.
type MatchCandidate struct {
	Field            string    `json:"field"`
	Confidence       float64   `json:"confidence"`
	Algorithm        Algorithm `json:"algorithm"`
	MatchedVariation string    `json:"matched_variation,omitempty"` // fuzzy only
	Threshold        float64   `json:"threshold_used,omitempty"`    // fuzzy only
	SemanticGroup    string    `json:"semantic_group,omitempty"`    // semantic only
	MatchType        string    `json:"match_type,omitempty"`        // basic | competitor
}

// FieldMapping is the engine output for a single input field.
// An empty MappedField means no match and is encoded as JSON null.
type FieldMapping struct {
	InputField   string           `json:"input_field"`
	MappedField  string           `json:"-"`
	Confidence   float64          `json:"confidence"`
	Algorithm    Algorithm        `json:"algorithm"`
	Alternatives []MatchCandidate `json:"alternatives"`
	DataType     string           `json:"data_type"`
}

type fieldMappingJSON struct {
	InputField   string           `json:"input_field"`
	MappedField  *string          `json:"mapped_field"`
	Confidence   float64          `json:"confidence"`
	Algorithm    Algorithm        `json:"algorithm"`
	Alternatives []MatchCandidate `json:"alternatives"`
	DataType     string           `json:"data_type"`
}

func (m FieldMapping) MarshalJSON() ([]byte, error) {
	out := fieldMappingJSON{
		InputField:   m.InputField,
		Confidence:   m.Confidence,
		Algorithm:    m.Algorithm,
		Alternatives: m.Alternatives,
		DataType:     m.DataType,
	}
	if out.Alternatives == nil {
		out.Alternatives = []MatchCandidate{}
	}
	if m.MappedField != "" {
		f := m.MappedField
		out.MappedField = &f
	}
	return json.Marshal(out)
}

func (m *FieldMapping) UnmarshalJSON(b []byte) error {
	var in fieldMappingJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*m = FieldMapping{
		InputField:   in.InputField,
		Confidence:   in.Confidence,
		Algorithm:    in.Algorithm,
		Alternatives: in.Alternatives,
		DataType:     in.DataType,
	}
	if in.MappedField != nil {
		m.MappedField = *in.MappedField
	}
	return nil
}

// Mapped reports whether a canonical field was found.
func (m FieldMapping) Mapped() bool { return m.MappedField != "" }

type Suggestion struct {
	InputField     string           `json:"input_field"`
	SuggestedField string           `json:"suggested_field"`
	Confidence     float64          `json:"confidence"`
	Reason         string           `json:"reason"`
	Alternatives   []MatchCandidate `json:"alternatives"`
}

type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Coverage float64  `json:"coverage"` // % of required fields covered, 2 decimals
}

// LearnedMapping is the audit record written by LearnFromMapping.
type LearnedMapping struct {
	InputField  string    `json:"input_field"`
	MappedField string    `json:"mapped_field"`
	Confidence  float64   `json:"confidence"`
	Context     Context   `json:"context"`
	Timestamp   time.Time `json:"timestamp"`
}
