package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Naziv kupca":         "naziv_kupca",
		"  Датум на фактура ": "датум_на_фактура",
		"ИЗНОС-ПДВ":           "износ_пдв",
		"customer.name":       "customer_name",
		"field_email":         "email",
		"col_Total2":          "total",
		"kolicina_3":          "kolicina",
		`"Цена" (ден)`:        "цена_ден",
		"Šifra":               "šifra",
		"":                    "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"Naziv kupca", "Датум на фактура", "column_Amount 2", "E-mail адреса"} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), in)
	}
}

func TestIsCyrillic(t *testing.T) {
	assert.True(t, isCyrillic("купувач"))
	assert.True(t, isCyrillic("naziv_купувач"))
	assert.False(t, isCyrillic("naziv_kupca"))
}
