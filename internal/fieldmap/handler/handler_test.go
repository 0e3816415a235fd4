package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldmap-service/internal/cache"
	"fieldmap-service/internal/fieldmap/model"
	"fieldmap-service/internal/fieldmap/service"
	"fieldmap-service/internal/middleware"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := service.New(cache.NewMemory(time.Minute), zerolog.Nop())
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	New(svc, zerolog.Nop(), 1<<20).Mount(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMapFieldsEndpoint(t *testing.T) {
	h := newRouter(t)
	rec := do(t, h, http.MethodPost, "/mappings", `{"fields":["naziv_kupca","xyz123"],"context":{"software":"megasoft"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Mappings []model.FieldMapping `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Mappings, 2)
	assert.Equal(t, "customer_name", resp.Mappings[0].MappedField)
	assert.Equal(t, model.AlgorithmExactMatch, resp.Mappings[0].Algorithm)
	assert.False(t, resp.Mappings[1].Mapped())
	assert.Contains(t, rec.Body.String(), `"mapped_field": null`)
}

func TestMapFieldsBadRequests(t *testing.T) {
	h := newRouter(t)
	for _, body := range []string{``, `{`, `{"fields":[]}`, `{"fields":["a"],"bogus":1}`} {
		rec := do(t, h, http.MethodPost, "/mappings", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		var e errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
		assert.NotEmpty(t, e.Error)
		assert.NotEmpty(t, e.RequestID)
	}
}

func TestAutoMapEndpoint(t *testing.T) {
	h := newRouter(t)
	rec := do(t, h, http.MethodPost, "/mappings/auto?threshold=0,9", `{"fields":["kolicina","xyz"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Threshold float64           `json:"threshold"`
		Mappings  map[string]string `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0.9, resp.Threshold)
	assert.Equal(t, map[string]string{"kolicina": "quantity"}, resp.Mappings)

	rec = do(t, h, http.MethodPost, "/mappings/auto", `{"fields":["kolicina"],"threshold":1.5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggestionsEndpoint(t *testing.T) {
	rec := do(t, newRouter(t), http.MethodPost, "/mappings/suggestions", `{"fields":["kolicina","naziv_kupca","xyz"],"limit":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Suggestions []model.Suggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "quantity", resp.Suggestions[0].SuggestedField)
}

func TestValidateEndpoint(t *testing.T) {
	rec := do(t, newRouter(t), http.MethodPost, "/mappings/validate",
		`{"mappings":{"a":"customer_name","b":"invoice_number"},"required":["customer_name","invoice_number","total"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var res model.ValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Valid)
	assert.Equal(t, 66.67, res.Coverage)
	assert.Equal(t, []string{"Required field missing: total"}, res.Errors)
}

func TestLearnEndpoint(t *testing.T) {
	h := newRouter(t)
	rec := do(t, h, http.MethodPost, "/mappings/learn", `{"input_field":"Kupac","mapped_field":"customer_name","confidence":0.9}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"learned":true}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/mappings/learn", `{"input_field":"Kupac"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportEndpoint(t *testing.T) {
	h := newRouter(t)
	body := `{"mappings":[{"input_field":"Kupac","mapped_field":"customer_name","confidence":0.9,"algorithm":"fuzzy_match","alternatives":[],"data_type":"string"}]}`

	rec := do(t, h, http.MethodPost, "/mappings/export?format=csv", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"Kupac","customer_name","0.90","fuzzy_match",""`)

	rec = do(t, h, http.MethodPost, "/mappings/export", body)
	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "1.0", doc["version"])

	rec = do(t, h, http.MethodPost, "/mappings/export?format=xml", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClearCacheEndpoint(t *testing.T) {
	rec := do(t, newRouter(t), http.MethodDelete, "/mappings/cache", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cleared":true}`, rec.Body.String())
}

func TestMapFileEndpoint(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "fakturi.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("FakturaBroj;Kupuvac;FakturaDatum;Vkupno\n1;ACME;2024-01-01;100\n"))
	require.NoError(t, mw.WriteField("software", "Megasoft"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/mappings/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Headers  []string             `json:"headers"`
		Mappings []model.FieldMapping `json:"mappings"`
		Preset   *presetMatch         `json:"preset"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"FakturaBroj", "Kupuvac", "FakturaDatum", "Vkupno"}, resp.Headers)
	assert.Len(t, resp.Mappings, 4)
	require.NotNil(t, resp.Preset)
	assert.Equal(t, "invoices", resp.Preset.EntityType)
	assert.Equal(t, "total", resp.Preset.Matched["Vkupno"])
}

func TestMapFileRejectsUnknownType(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "data.pdf")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("%PDF"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/mappings/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFieldsAndPresets(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodGet, "/fields", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"customer_name"`)

	rec = do(t, h, http.MethodGet, "/fields/tax_id/variations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"embs"`)

	rec = do(t, h, http.MethodGet, "/fields/nope/variations", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Megasoft"`)

	rec = do(t, h, http.MethodGet, "/presets/onivo/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Партнер"`)

	rec = do(t, h, http.MethodGet, "/presets/onivo/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
