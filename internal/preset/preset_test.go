package preset

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestPresets(t *testing.T) {
	cases := []struct {
		source, entity string
		want           map[string]string
	}{
		{"onivo", "customers", map[string]string{"name": "Партнер", "email": "Email", "phone": "Телефон", "vat_number": "ЕДБ"}},
		{"megasoft", "customers", map[string]string{"name": "ParnerName", "email": "ParnerEmail", "phone": "ParnerTel", "vat_number": "ParnerEDB"}},
		{"onivo", "items", map[string]string{"name": "Производ", "description": "Опис", "price": "Цена", "unit_name": "Единица"}},
		{"megasoft", "items", map[string]string{"name": "ArtikalNaziv", "description": "ArtikalOpis", "price": "ArtikalCena", "unit_name": "MernaEdinica"}},
		{"onivo", "invoices", map[string]string{"invoice_number": "Број на фактура", "customer_name": "Купувач", "invoice_date": "Датум на фактура", "total": "Вкупно"}},
		{"megasoft", "invoices", map[string]string{"invoice_number": "FakturaBroj", "customer_name": "Kupuvac", "invoice_date": "FakturaDatum", "total": "Vkupno"}},
	}
	for _, tc := range cases {
		t.Run(tc.source+"/"+tc.entity, func(t *testing.T) {
			got := Preset(tc.source, tc.entity)
			for k, v := range tc.want {
				assert.Equal(t, v, got[k], k)
			}
		})
	}
}

func TestPresetUnknownIsEmpty(t *testing.T) {
	assert.Empty(t, Preset("unknown", "customers"))
	assert.Empty(t, Preset("onivo", "unknown"))
	assert.NotNil(t, Preset("unknown", "unknown"))
	assert.Equal(t, "Партнер", Preset(" ONIVO ", "Customers")["name"])
}

func TestEveryPresetCoversAllEntities(t *testing.T) {
	for src := range AvailableSources() {
		for ent := range AvailableEntityTypes() {
			assert.NotEmpty(t, Preset(src, ent), "%s/%s", src, ent)
		}
	}
}

func TestAvailable(t *testing.T) {
	src := AvailableSources()
	assert.Equal(t, "Onivo", src["onivo"])
	assert.Equal(t, "Megasoft", src["megasoft"])

	ent := AvailableEntityTypes()
	for _, k := range []string{"customers", "items", "invoices", "bills"} {
		assert.Contains(t, ent, k)
	}

	src["onivo"] = "changed"
	assert.Equal(t, "Onivo", AvailableSources()["onivo"])
}

func TestPresetStructure(t *testing.T) {
	s := PresetStructure("onivo", "customers")
	assert.Equal(t, "onivo", s.Source)
	assert.Equal(t, "customers", s.EntityType)
	require.Len(t, s.Columns, len(s.Fields))
	assert.Equal(t, "name", s.Fields[0])
	assert.Equal(t, "Партнер", s.Columns[0])
	assert.Equal(t, len(s.Fields), len(s.Mapping))

	empty := PresetStructure("nope", "items")
	assert.Empty(t, empty.Fields)
	assert.NotNil(t, empty.Columns)
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, ",", DetectDelimiter("name,email,phone\nJohn,john@example.com,123456\n"))
	assert.Equal(t, ";", DetectDelimiter("name;email;phone\nJohn;john@example.com;123456\n"))
	assert.Equal(t, "\t", DetectDelimiter("name\temail\tphone\nJohn\tjohn@example.com\t123456\n"))
	assert.Equal(t, "|", DetectDelimiter("a|b|c,d\r\n1,2,3,4,5"))
	assert.Equal(t, ",", DetectDelimiter("a;b,c"), "tie goes to the earlier candidate")
	assert.Equal(t, ",", DetectDelimiter("single"))
	assert.Equal(t, ",", DetectDelimiter(""))
}

func TestDetectEncoding(t *testing.T) {
	assert.Equal(t, EncodingUTF8, DetectEncoding([]byte("name,email\nЈован,jovan@example.com\n")))
	assert.Equal(t, EncodingUTF8, DetectEncoding(nil))

	cp, err := charmap.Windows1251.NewEncoder().String("Партнер,Телефон,Адреса\nМакедонска компанија,070123456,Скопје\n")
	require.NoError(t, err)
	got := DetectEncoding([]byte(cp))
	assert.Contains(t, Encodings, got)
	assert.NotEqual(t, EncodingUTF8, got)
}

func TestConvertToUTF8(t *testing.T) {
	src := "Производ;Цена"
	cp, err := charmap.Windows1251.NewEncoder().Bytes([]byte(src))
	require.NoError(t, err)

	out, err := ConvertToUTF8(cp, "windows-1251")
	require.NoError(t, err)
	assert.Equal(t, src, string(out))

	out, err = ConvertToUTF8(append([]byte{0xEF, 0xBB, 0xBF}, "Опис"...), "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "Опис", string(out))

	_, err = ConvertToUTF8([]byte("x"), "EBCDIC")
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}

func TestMatchColumns(t *testing.T) {
	entity, hits := MatchColumns("megasoft", []string{"FakturaBroj", " kupuvac ", "Nepoznato", "Vkupno"})
	assert.Equal(t, "invoices", entity)
	assert.Equal(t, map[string]string{"FakturaBroj": "invoice_number", " kupuvac ": "customer_name", "Vkupno": "total"}, hits)

	entity, hits = MatchColumns("onivo", []string{"Партнер", "ЕДБ"})
	assert.Equal(t, "customers", entity)
	assert.Len(t, hits, 2)

	entity, hits = MatchColumns("unknown", []string{"Партнер"})
	assert.Empty(t, entity)
	assert.Empty(t, hits)
}
