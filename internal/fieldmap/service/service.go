package service

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fieldmap-service/internal/cache"
	"fieldmap-service/internal/fieldmap/corpus"
	"fieldmap-service/internal/fieldmap/model"
)

const (
	cachePrefix   = "field_mapper_"
	learnedPrefix = cachePrefix + "learned_"

	DefaultMappingTTL    = 60 * time.Minute
	DefaultLearnedTTL    = 24 * time.Hour
	DefaultAutoThreshold = 0.8
	DefaultSuggestLimit  = 5

	maxAlternatives     = 3
	highConfidence      = 0.8
	suggestionMinConf   = 0.3
	exportFormatVersion = "1.0"
)

// ErrUnsupportedFormat is returned by ExportMappings for anything but json/csv.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Service maps foreign column headers onto the canonical field set.
// It holds no mutable state besides the cache store and is safe for concurrent use.
type Service struct {
	strategies []Strategy
	store      cache.Store
	log        zerolog.Logger

	mappingTTL time.Duration
	learnedTTL time.Duration
	now        func() time.Time
	newID      func() string
}

type Option func(*Service)

func WithMappingTTL(d time.Duration) Option { return func(s *Service) { s.mappingTTL = d } }

func WithLearnedTTL(d time.Duration) Option { return func(s *Service) { s.learnedTTL = d } }

// WithClock подменяет время и id экспорта (для тестов).
func WithClock(now func() time.Time, newID func() string) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
		if newID != nil {
			s.newID = newID
		}
	}
}

func New(store cache.Store, log zerolog.Logger, opts ...Option) *Service {
	if store == nil {
		store = cache.Nop{}
	}
	s := &Service{
		strategies: []Strategy{exactStrategy{}, newFuzzyStrategy(), heuristicStrategy{}, semanticStrategy{}},
		store:      store,
		log:        log,
		mappingTTL: DefaultMappingTTL,
		learnedTTL: DefaultLearnedTTL,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Match is the ranked outcome for one input field.
type Match struct {
	Best         model.MatchCandidate
	Alternatives []model.MatchCandidate
}

// FindBestMatch runs every strategy on the normalized input and ranks the union.
func (s *Service) FindBestMatch(raw string, c model.Context) Match {
	c = s.validateContext(c)
	input := Normalize(raw)

	var all []model.MatchCandidate
	for _, st := range s.strategies {
		all = append(all, st.Match(input, c)...)
	}
	ranked := rankUnique(all)

	var best model.MatchCandidate
	if len(ranked) > 0 {
		best = ranked[0]
	}
	best = refine(input, best, ranked, c.Software)

	alts := make([]model.MatchCandidate, 0, maxAlternatives)
	for _, cand := range ranked {
		if len(alts) == maxAlternatives {
			break
		}
		if cand.Field == best.Field {
			continue
		}
		alts = append(alts, cand)
	}
	return Match{Best: best, Alternatives: alts}
}

func (s *Service) validateContext(c model.Context) model.Context {
	c.Software = strings.ToLower(strings.TrimSpace(c.Software))
	if c.Software != "" && !corpus.IsKnownSoftware(c.Software) {
		s.log.Warn().Str("software", c.Software).Msg("unknown competitor software in context")
	}
	return c
}

func (s *Service) mapOne(raw string, c model.Context) model.FieldMapping {
	m := s.FindBestMatch(raw, c)
	algo := m.Best.Algorithm
	if m.Best.Field == "" {
		algo = model.AlgorithmNone
	}
	return model.FieldMapping{
		InputField:   raw,
		MappedField:  m.Best.Field,
		Confidence:   m.Best.Confidence,
		Algorithm:    algo,
		Alternatives: m.Alternatives,
		DataType:     inferDataType(m.Best.Field),
	}
}

// MapFields maps every input field, one output per input in input order.
// Results are cached; any cache problem degrades to direct computation.
func (s *Service) MapFields(ctx context.Context, fields []string, format string, c model.Context) []model.FieldMapping {
	if format == "" {
		format = "csv"
	}
	c = s.validateContext(c)

	key, err := mappingKey(fields, format, c)
	if err != nil {
		s.log.Warn().Err(err).Msg("field mapper cache key failed, computing directly")
		return s.computeMappings(fields, c)
	}

	if b, ok, err := s.store.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("field mapper cache read failed")
	} else if ok {
		var cached []model.FieldMapping
		if err := json.Unmarshal(b, &cached); err == nil && len(cached) == len(fields) {
			return cached
		}
		s.log.Warn().Str("key", key).Msg("field mapper cache entry unusable, recomputing")
	}

	out := s.computeMappings(fields, c)
	if b, err := json.Marshal(out); err != nil {
		s.log.Warn().Err(err).Msg("field mapper cache encode failed")
	} else if err := s.store.Put(ctx, key, b, s.mappingTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("field mapper cache write failed")
	}
	return out
}

func (s *Service) computeMappings(fields []string, c model.Context) []model.FieldMapping {
	out := make([]model.FieldMapping, 0, len(fields))
	for _, f := range fields {
		out = append(out, s.mapOne(f, c))
	}
	return out
}

// MapField is MapFields for a single header.
func (s *Service) MapField(ctx context.Context, field, format string, c model.Context) model.FieldMapping {
	res := s.MapFields(ctx, []string{field}, format, c)
	if len(res) == 0 {
		return model.FieldMapping{InputField: field, Alternatives: []model.MatchCandidate{}, DataType: "string"}
	}
	return res[0]
}

// AutoMapFields keeps only mappings the caller can apply without review.
func (s *Service) AutoMapFields(ctx context.Context, fields []string, threshold float64) map[string]string {
	out := make(map[string]string)
	for _, m := range s.MapFields(ctx, fields, "csv", model.Context{}) {
		if m.Mapped() && m.Confidence >= threshold {
			out[m.InputField] = m.MappedField
		}
	}
	return out
}

func (s *Service) Suggestions(ctx context.Context, fields []string, limit int) []model.Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	out := make([]model.Suggestion, 0, len(fields))
	for _, m := range s.MapFields(ctx, fields, "csv", model.Context{}) {
		if !m.Mapped() || m.Confidence <= suggestionMinConf {
			continue
		}
		alts := m.Alternatives
		if len(alts) > maxAlternatives {
			alts = alts[:maxAlternatives]
		}
		out = append(out, model.Suggestion{
			InputField:     m.InputField,
			SuggestedField: m.MappedField,
			Confidence:     m.Confidence,
			Reason:         m.Algorithm.Reason(m.Confidence),
			Alternatives:   alts,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ValidateMappings checks input->target pairs against the canonical schema.
func (s *Service) ValidateMappings(mappings map[string]string, required []string) model.ValidationResult {
	res := model.ValidationResult{Valid: true, Errors: []string{}, Warnings: []string{}}

	inputs := make([]string, 0, len(mappings))
	for k := range mappings {
		inputs = append(inputs, k)
	}
	sort.Strings(inputs)

	counts := make(map[string]int, len(mappings))
	var order []string
	for _, in := range inputs {
		target := mappings[in]
		if !corpus.IsField(target) {
			res.Errors = append(res.Errors, "Invalid target field: "+target)
			res.Valid = false
		}
		if counts[target] == 0 {
			order = append(order, target)
		}
		counts[target]++
	}

	missing := 0
	for _, req := range required {
		if counts[req] == 0 {
			res.Errors = append(res.Errors, "Required field missing: "+req)
			res.Valid = false
			missing++
		}
	}
	if len(required) > 0 {
		covered := float64(len(required)-missing) / float64(len(required)) * 100
		res.Coverage = round2(covered)
	}

	for _, target := range order {
		if counts[target] > 1 {
			res.Warnings = append(res.Warnings, "Multiple fields mapped to: "+target)
		}
	}
	return res
}

// LearnFromMapping records a confirmed mapping. Nothing reads it back yet;
// it is kept for later analysis.
func (s *Service) LearnFromMapping(ctx context.Context, input, mapped string, confidence float64, c model.Context) bool {
	rec := model.LearnedMapping{
		InputField:  Normalize(input),
		MappedField: mapped,
		Confidence:  confidence,
		Context:     c,
		Timestamp:   s.now().UTC(),
	}
	fail := func(err error) bool {
		s.log.Error().Err(err).Str("input_field", input).Str("mapped_field", mapped).Msg("failed to learn from mapping")
		return false
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return fail(err)
	}
	if err := s.store.Put(ctx, learnedPrefix+md5hex([]byte(input)), b, s.learnedTTL); err != nil {
		return fail(err)
	}
	s.log.Info().
		Str("input_field", rec.InputField).
		Str("mapped_field", mapped).
		Float64("confidence", confidence).
		Str("software", c.Software).
		Msg("field mapping learned")
	return true
}

type exportStats struct {
	TotalFields    int `json:"total_fields"`
	MappedFields   int `json:"mapped_fields"`
	HighConfidence int `json:"high_confidence"`
}

type exportDoc struct {
	Version    string               `json:"version"`
	ExportID   string               `json:"export_id"`
	CreatedAt  string               `json:"created_at"`
	Mappings   []model.FieldMapping `json:"mappings"`
	Statistics exportStats          `json:"statistics"`
}

// ExportMappings renders mappings as "json" or "csv".
func (s *Service) ExportMappings(mappings []model.FieldMapping, format string) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		return s.exportJSON(mappings)
	case "csv":
		return exportCSV(mappings), nil
	}
	return "", errors.Mark(errors.Newf("unsupported export format: %q", format), ErrUnsupportedFormat)
}

func (s *Service) exportJSON(mappings []model.FieldMapping) (string, error) {
	if mappings == nil {
		mappings = []model.FieldMapping{}
	}
	doc := exportDoc{
		Version:   exportFormatVersion,
		ExportID:  s.newID(),
		CreatedAt: s.now().Format(time.RFC3339),
		Mappings:  mappings,
	}
	doc.Statistics.TotalFields = len(mappings)
	for _, m := range mappings {
		if m.Mapped() {
			doc.Statistics.MappedFields++
		}
		if m.Confidence >= highConfidence {
			doc.Statistics.HighConfidence++
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return "", errors.Wrap(err, "encode export")
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

var csvQuote = strings.NewReplacer(`"`, `""`)

func exportCSV(mappings []model.FieldMapping) string {
	var b strings.Builder
	b.WriteString("Input Field,Mapped Field,Confidence,Algorithm,Alternatives\n")
	for _, m := range mappings {
		alts := make([]string, 0, len(m.Alternatives))
		for _, a := range m.Alternatives {
			alts = append(alts, a.Field)
		}
		fmt.Fprintf(&b, "\"%s\",\"%s\",\"%.2f\",\"%s\",\"%s\"\n",
			csvQuote.Replace(m.InputField),
			csvQuote.Replace(m.MappedField),
			m.Confidence,
			m.Algorithm,
			csvQuote.Replace(strings.Join(alts, ";")),
		)
	}
	return b.String()
}

// ClearCache drops cached mappings and learned records.
func (s *Service) ClearCache(ctx context.Context) bool {
	n, err := s.store.DeleteByPrefix(ctx, cachePrefix)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to clear field mapper cache")
		return false
	}
	s.log.Info().Int("deleted", n).Msg("field mapper cache cleared")
	return true
}

func (s *Service) SupportedFields() []string { return corpus.Fields() }

func (s *Service) FieldVariations(field string) []string {
	if v := corpus.Variations(field); v != nil {
		return v
	}
	return []string{}
}

func mappingKey(fields []string, format string, c model.Context) (string, error) {
	b, err := json.Marshal(struct {
		Fields  []string      `json:"fields"`
		Format  string        `json:"format"`
		Context model.Context `json:"context"`
	}{fields, format, c})
	if err != nil {
		return "", err
	}
	return cachePrefix + md5hex(b), nil
}

func md5hex(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
