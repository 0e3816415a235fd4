package handler

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"fieldmap-service/internal/fieldmap/model"
	"fieldmap-service/internal/fieldmap/service"
	"fieldmap-service/internal/fileio"
	"fieldmap-service/internal/preset"
)

const maxFields = 1000

// Handler exposes the field mapper over HTTP.
type Handler struct {
	svc       *service.Service
	log       zerolog.Logger
	maxUpload int64
}

func New(svc *service.Service, logger zerolog.Logger, maxUpload int64) *Handler {
	return &Handler{svc: svc, log: logger, maxUpload: maxUpload}
}

// Mount вешает все маршруты на r.
func (h *Handler) Mount(r chi.Router) {
	r.Route("/mappings", func(r chi.Router) {
		r.Post("/", h.MapFields)
		r.Post("/auto", h.AutoMap)
		r.Post("/suggestions", h.Suggestions)
		r.Post("/validate", h.Validate)
		r.Post("/learn", h.Learn)
		r.Post("/export", h.Export)
		r.Post("/file", h.MapFile)
		r.Delete("/cache", h.ClearCache)
	})
	r.Get("/fields", h.Fields)
	r.Get("/fields/{field}/variations", h.Variations)
	r.Get("/presets", h.Presets)
	r.Get("/presets/{source}/{entity}", h.Preset)
}

type mapRequest struct {
	Fields  []string      `json:"fields"`
	Format  string        `json:"format"`
	Context model.Context `json:"context"`
}

type mapResponse struct {
	Mappings []model.FieldMapping `json:"mappings"`
	Took     string               `json:"took"`
}

func checkFields(fields []string) error {
	switch {
	case len(fields) == 0:
		return errors.New("fields must not be empty")
	case len(fields) > maxFields:
		return errors.Newf("too many fields: %d > %d", len(fields), maxFields)
	}
	return nil
}

func (h *Handler) MapFields(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req mapRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := checkFields(req.Fields); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res := h.svc.MapFields(r.Context(), req.Fields, req.Format, req.Context)
	log := reqLogger(h.log, r)
	log.Debug().
		Int("fields", len(req.Fields)).
		Str("software", req.Context.Software).
		Dur("took", time.Since(start)).
		Msg("fields mapped")
	writeJSON(w, http.StatusOK, mapResponse{Mappings: res, Took: time.Since(start).String()})
}

type autoRequest struct {
	Fields    []string `json:"fields"`
	Threshold *float64 `json:"threshold"`
}

func (h *Handler) AutoMap(w http.ResponseWriter, r *http.Request) {
	var req autoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := checkFields(req.Fields); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	// ?threshold=0,85 тоже принимаем
	threshold := toFloat(r.URL.Query().Get("threshold"), service.DefaultAutoThreshold)
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	if threshold < 0 || threshold > 1 {
		writeError(w, r, http.StatusBadRequest, "threshold must be within [0,1]")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"threshold": threshold,
		"mappings":  h.svc.AutoMapFields(r.Context(), req.Fields, threshold),
	})
}

type suggestRequest struct {
	Fields []string `json:"fields"`
	Limit  int      `json:"limit"`
}

func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := checkFields(req.Fields); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Limit < 0 {
		writeError(w, r, http.StatusBadRequest, "limit must not be negative")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions": h.svc.Suggestions(r.Context(), req.Fields, req.Limit),
	})
}

type validateRequest struct {
	Mappings map[string]string `json:"mappings"`
	Required []string          `json:"required"`
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.svc.ValidateMappings(req.Mappings, req.Required))
}

type learnRequest struct {
	InputField  string        `json:"input_field"`
	MappedField string        `json:"mapped_field"`
	Confidence  float64       `json:"confidence"`
	Context     model.Context `json:"context"`
}

func (h *Handler) Learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.InputField) == "" || strings.TrimSpace(req.MappedField) == "" {
		writeError(w, r, http.StatusBadRequest, "input_field and mapped_field are required")
		return
	}
	ok := h.svc.LearnFromMapping(r.Context(), req.InputField, req.MappedField, req.Confidence, req.Context)
	writeJSON(w, http.StatusOK, map[string]bool{"learned": ok})
}

type exportRequest struct {
	Mappings []model.FieldMapping `json:"mappings"`
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "json"
	}
	out, err := h.svc.ExportMappings(req.Mappings, format)
	if errors.Is(err, service.ErrUnsupportedFormat) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log := reqLogger(h.log, r)
		log.Error().Err(err).Msg("export failed")
		writeError(w, r, http.StatusInternalServerError, "export failed")
		return
	}

	ct := "application/json; charset=utf-8"
	if format == "csv" {
		ct = "text/csv; charset=utf-8"
		w.Header().Set("Content-Disposition", `attachment; filename="field-mappings.csv"`)
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(out))
}

func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"cleared": h.svc.ClearCache(r.Context())})
}

type presetMatch struct {
	EntityType string            `json:"entity_type"`
	Matched    map[string]string `json:"matched"`
}

type fileResponse struct {
	Filename string               `json:"filename"`
	Headers  []string             `json:"headers"`
	Mappings []model.FieldMapping `json:"mappings"`
	Preset   *presetMatch         `json:"preset,omitempty"`
}

// MapFile читает только шапку загруженного csv/xls/xlsx и маппит её.
func (h *Handler) MapFile(w http.ResponseWriter, r *http.Request) {
	log := reqLogger(h.log, r)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "missing file: "+err.Error())
		return
	}
	defer file.Close()

	headers, err := fileio.ReadHeaders(file, header.Filename, atoi(r.FormValue("header_row"), 1))
	if err != nil {
		log.Warn().Err(err).Str("file", header.Filename).Msg("header extraction failed")
		writeError(w, r, http.StatusBadRequest, "failed to read headers: "+err.Error())
		return
	}

	software := strings.ToLower(strings.TrimSpace(r.FormValue("software")))
	resp := fileResponse{
		Filename: header.Filename,
		Headers:  headers,
		Mappings: h.svc.MapFields(r.Context(), headers, fileio.Format(header.Filename), model.Context{Software: software}),
	}
	if software != "" {
		if entity, hits := preset.MatchColumns(software, headers); entity != "" {
			resp.Preset = &presetMatch{EntityType: entity, Matched: hits}
		}
	}
	log.Info().
		Str("file", header.Filename).
		Int("headers", len(headers)).
		Str("software", software).
		Msg("file headers mapped")
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Fields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"fields": h.svc.SupportedFields()})
}

func (h *Handler) Variations(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")
	v := h.svc.FieldVariations(field)
	if len(v) == 0 {
		writeError(w, r, http.StatusNotFound, "unknown field: "+field)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"field": field, "variations": v})
}

type option struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func sortedOptions(m map[string]string) []option {
	out := make([]option, 0, len(m))
	for k, v := range m {
		out = append(out, option{Key: k, Name: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (h *Handler) Presets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]option{
		"sources":      sortedOptions(preset.AvailableSources()),
		"entity_types": sortedOptions(preset.AvailableEntityTypes()),
	})
}

func (h *Handler) Preset(w http.ResponseWriter, r *http.Request) {
	st := preset.PresetStructure(chi.URLParam(r, "source"), chi.URLParam(r, "entity"))
	if len(st.Fields) == 0 {
		writeError(w, r, http.StatusNotFound, "no preset for "+st.Source+"/"+st.EntityType)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
