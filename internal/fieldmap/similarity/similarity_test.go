package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var pairs = [][2]string{
	{"", ""},
	{"a", ""},
	{"", "naziv"},
	{"a", "b"},
	{"naziv", "naziv"},
	{"kitten", "sitting"},
	{"customer_naem", "customer_name"},
	{"broj_faktura", "faktura_broj"},
	{"iznos", "iznos_pdv"},
	{"количина", "kolicina"},
	{"назив_купца", "naziv_kupca"},
	{"šifra_robe", "sifra_robe"},
	{"xyz", "invoice_number"},
	{"pdv", "ddv"},
	{"datum_dospeća_računa", "datum_dospeanos"},
}

type scorer struct {
	name string
	fn   func(a, b string) float64
}

var scorers = []scorer{
	{"edit", Edit},
	{"jaro", Jaro},
	{"substring", Substring},
	{"phonetic", Phonetic},
	{"ngram", Ngram},
	{"combined", Combined},
}

func TestScorersStayInUnitInterval(t *testing.T) {
	for _, s := range scorers {
		for _, p := range pairs {
			v := s.fn(p[0], p[1])
			assert.GreaterOrEqual(t, v, 0.0, "%s(%q,%q)", s.name, p[0], p[1])
			assert.LessOrEqual(t, v, 1.0, "%s(%q,%q)", s.name, p[0], p[1])
		}
	}
}

func TestScorersAreSymmetric(t *testing.T) {
	for _, s := range scorers {
		for _, p := range pairs {
			assert.Equal(t, s.fn(p[0], p[1]), s.fn(p[1], p[0]), "%s(%q,%q)", s.name, p[0], p[1])
		}
	}
}

func TestEmptyInputs(t *testing.T) {
	for _, s := range []scorer{{"edit", Edit}, {"jaro", Jaro}, {"phonetic", Phonetic}, {"ngram", Ngram}} {
		assert.Equal(t, 1.0, s.fn("", ""), s.name)
		assert.Equal(t, 0.0, s.fn("naziv", ""), s.name)
		assert.Equal(t, 0.0, s.fn("", "naziv"), s.name)
	}
	assert.Equal(t, 0.0, Substring("", ""))
	assert.Equal(t, 0.0, Substring("naziv", ""))
}

func TestEdit(t *testing.T) {
	assert.InDelta(t, 1-3.0/7, Edit("kitten", "sitting"), 1e-12)
	assert.InDelta(t, 1-2.0/13, Edit("customer_naem", "customer_name"), 1e-12)
	// руны, а не байты
	assert.InDelta(t, 1-1.0/8, Edit("количина", "количинa"), 1e-12)
}

func TestJaro(t *testing.T) {
	assert.InDelta(t, 0.944444, Jaro("martha", "marhta"), 1e-6)
	assert.InDelta(t, 0.822222, Jaro("dwayne", "duane"), 1e-6)
	assert.InDelta(t, 0.766667, Jaro("dixon", "dicksonx"), 1e-6)
	assert.Equal(t, 0.0, Jaro("abc", "xyz"))
}

func TestSubstring(t *testing.T) {
	assert.InDelta(t, 5.0/9, Substring("iznos", "iznos_pdv"), 1e-12)
	assert.InDelta(t, 5.0/9, Substring("iznos_pdv", "iznos"), 1e-12)
	assert.Equal(t, 0.0, Substring("pdv_iznos", "iznos_pdv"))
	assert.Equal(t, 1.0, Substring("naziv", "naziv"))
}

func TestNgram(t *testing.T) {
	assert.InDelta(t, 1.0/3, Ngram("abc", "abd"), 1e-12)
	assert.Equal(t, 1.0, Ngram("a", "a"))
	assert.Equal(t, 0.0, Ngram("a", "b"))
	assert.Equal(t, 0.0, Ngram("a", "ab"))
}

func TestPhonetic(t *testing.T) {
	assert.Equal(t, 1.0, Phonetic("naziv", "naziv"))
	assert.Equal(t, 1.0, Phonetic("šifra", "sifra"))
	assert.Equal(t, 1.0, Phonetic("назив", "naziv"))
	assert.NotEmpty(t, PhoneticKey("количина"))
	assert.Empty(t, PhoneticKey("123"))
}

func TestCombinedIdentityAndWeights(t *testing.T) {
	assert.InDelta(t, 1.0, Combined("invoice_number", "invoice_number"), 1e-12)
	assert.InDelta(t, 1.0, WeightEdit+WeightJaro+WeightSubstring+WeightPhonetic+WeightNgram, 1e-12)

	s := Score("customer_naem", "customer_name")
	want := 0.25*s.Edit + 0.25*s.Jaro + 0.20*s.Substring + 0.15*s.Phonetic + 0.15*s.Ngram
	assert.InDelta(t, want, s.Combined, 1e-12)
	assert.GreaterOrEqual(t, s.Combined, 0.65)
}

func TestCombinedIsDeterministic(t *testing.T) {
	for _, p := range pairs {
		assert.Equal(t, Combined(p[0], p[1]), Combined(p[0], p[1]))
	}
}
