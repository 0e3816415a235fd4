package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsCoverDomains(t *testing.T) {
	got := Fields()
	require.GreaterOrEqual(t, len(got), 40)

	for _, f := range []string{
		"customer_name", "invoice_number", "item_name", "amount", "vat_rate",
		"payment_date", "bank_account", "address", "warehouse", "expense_category", "email",
	} {
		assert.Contains(t, got, f)
	}
	assert.Equal(t, "customer_name", got[0])
}

func TestFieldsReturnsCopy(t *testing.T) {
	a := Fields()
	a[0] = "mutated"
	assert.Equal(t, "customer_name", Fields()[0])
}

func TestVariations(t *testing.T) {
	v := Variations("customer_name")
	assert.Contains(t, v, "naziv")
	assert.Contains(t, v, "klient")
	assert.Contains(t, v, "назив")

	assert.Nil(t, Variations("not_a_field"))
}

func TestVariationsAreDeduplicated(t *testing.T) {
	for _, e := range Entries() {
		seen := map[string]bool{}
		for _, v := range e.Variations {
			assert.False(t, seen[v], "%s repeats %q", e.Field, v)
			seen[v] = true
		}
	}
}

func TestLookupFirstDeclaredWins(t *testing.T) {
	tests := []struct {
		variation string
		want      string
	}{
		{"embs", "tax_id"},
		{"EMBS", "tax_id"},
		{"total", "amount"},
		{"valuta", "due_date"},
		{"status", "invoice_status"},
		{"unit_price", "unit_price"},
		{"купувач", "customer_name"},
		// albanian
		{"nipt", "tax_id"},
		{"cmimi", "unit_price"},
		{"pershkrimi", "item_name"},
		{"totali", "amount"},
		{"data_pageses", "due_date"},
		{"data", "date"},
	}
	for _, tt := range tests {
		t.Run(tt.variation, func(t *testing.T) {
			got, ok := Lookup(tt.variation)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Lookup("xyz")
	assert.False(t, ok)
}

func TestCompetitorPatterns(t *testing.T) {
	assert.NotEmpty(t, CompetitorPatterns("pantheon"))
	assert.Empty(t, CompetitorPatterns("unknown"))
	assert.True(t, IsKnownSoftware("megasoft"))
	assert.False(t, IsKnownSoftware("Megasoft"))
	assert.True(t, IsField("contact_person"))
	assert.False(t, IsField("not_a_real_field"))
}
