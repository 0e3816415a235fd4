package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldmap-service/internal/fieldmap/model"
)

func TestAdaptiveThreshold(t *testing.T) {
	tests := []struct {
		name             string
		input, variation string
		want             float64
	}{
		{"short input", "abcd", "customer_name", 0.55},
		{"short variation", "naziv_kupca", "kol", 0.55},
		{"long input", strings.Repeat("x", 21), "customer_name", 0.6},
		{"competitor prefix", "customer_naem", "kupac_naziv", 0.6},
		{"competitor prefix on variation", "ime_klienta", "partner_ime", 0.6},
		{"competitor suffix", "naziv_robe", "opis_stavka", 0.6},
		{"plain", "ime_klienta", "kupac_naziv", 0.65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, adaptiveThreshold(tt.input, tt.variation, baseFuzzyThreshold), 1e-9)
		})
	}
}

func TestHeuristicStrategy(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		software string
		field    string
		conf     float64
		algo     model.Algorithm
	}{
		{"base rule", "iznos_ukupno", "", "amount", 0.8, model.AlgorithmHeuristicPattern},
		{"base rule boosted by software pattern", "iznos_ukupno", "megasoft", "amount", 0.85, model.AlgorithmHeuristicPattern},
		{"boost capped at one", "pib_kupca", "megasoft", "tax_id", 1.0, model.AlgorithmHeuristicPattern},
		{"software rule before base rule", "iznos_pdv", "megasoft", "vat_amount", 1.0, model.AlgorithmHeuristicPattern},
		{"same input without software", "iznos_pdv", "", "amount", 0.8, model.AlgorithmHeuristicPattern},
		{"abbreviated pantheon rule boosted", "prt_naziv", "pantheon", "customer_name", 0.95, model.AlgorithmHeuristicPattern},
		{"rule fired so no competitor fallback", "amount_stavka_x", "pantheon", "amount", 0.85, model.AlgorithmHeuristicPattern},
		// 0.7 + 7/15*0.2
		{"competitor fallback", "stavka_jedinica", "pantheon", "item_name", 0.7 + 7.0/15.0*0.2, model.AlgorithmCompetitorPattern},
		{"competitor fallback with keyword", "partner_kod_x", "pantheon", "customer_id", 0.7 + 8.0/13.0*0.2, model.AlgorithmCompetitorPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := heuristicStrategy{}.Match(tt.input, model.Context{Software: tt.software})
			require.Len(t, got, 1)
			assert.Equal(t, tt.field, got[0].Field)
			assert.InDelta(t, tt.conf, got[0].Confidence, 1e-9)
			assert.LessOrEqual(t, got[0].Confidence, 1.0)
			assert.Equal(t, tt.algo, got[0].Algorithm)
		})
	}
}

func TestHeuristicStrategyNoMatch(t *testing.T) {
	assert.Empty(t, heuristicStrategy{}.Match("stavka_jedinica", model.Context{}))
	assert.Empty(t, heuristicStrategy{}.Match("xyz", model.Context{Software: "onivo"}))
	assert.Empty(t, heuristicStrategy{}.Match("", model.Context{Software: "onivo"}))
}

func TestCompetitorFallbackIsBounded(t *testing.T) {
	// весь вход совпадает с шаблоном: coverage 1
	cand, ok := matchCompetitorPattern("stavka_", "pantheon")
	require.True(t, ok)
	assert.InDelta(t, 0.9, cand.Confidence, 1e-9)
	assert.LessOrEqual(t, cand.Confidence, competitorMaxConfidence)
}

func TestSemanticStrategy(t *testing.T) {
	tests := []struct {
		input     string
		field     string
		conf      float64
		group     string
		matchType string
	}{
		{"iznos", "amount", 0.6, "financial", "basic"},
		{"stavka_iznos", "amount", 0.75, "financial", "competitor"},
		{"iznos_pdv", "vat_amount", 0.6, "financial", "basic"},
		{"iznos_pdv_stopa", "vat_rate", 0.6, "financial", "basic"},
		{"vat_rate_value", "vat_rate", 0.75, "tax", "competitor"},
		// identity и temporal оба basic: раньше объявленная группа выигрывает
		{"broj_datum", "customer_id", 0.6, "identity", "basic"},
		// competitor более поздней группы сильнее basic ранней
		{"iznos_uplata_datum", "payment_date", 0.75, "temporal", "competitor"},
		{"customer_id", "customer_id", 0.75, "identity", "competitor"},
		{"opis", "description", 0.6, "descriptive", "basic"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := semanticStrategy{}.Match(tt.input, model.Context{})
			require.Len(t, got, 1)
			assert.Equal(t, tt.field, got[0].Field)
			assert.InDelta(t, tt.conf, got[0].Confidence, 1e-9)
			assert.Equal(t, tt.group, got[0].SemanticGroup)
			assert.Equal(t, tt.matchType, got[0].MatchType)
			assert.Equal(t, model.AlgorithmSemanticAI, got[0].Algorithm)
		})
	}

	assert.Empty(t, semanticStrategy{}.Match("xyz", model.Context{}))
	assert.Empty(t, semanticStrategy{}.Match("", model.Context{}))
}
