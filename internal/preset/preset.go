// Package preset holds exact column tables for known competitor exports and
// the small sniffers (encoding, delimiter) used before reading their files.
package preset

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	EncodingUTF8        = "UTF-8"
	EncodingWindows1251 = "Windows-1251"
	EncodingWindows1250 = "Windows-1250"
	EncodingISO88595    = "ISO-8859-5"
	EncodingISO88592    = "ISO-8859-2"
)

// Encodings lists the candidates DetectEncoding chooses from, in priority order.
var Encodings = []string{EncodingUTF8, EncodingWindows1251, EncodingWindows1250, EncodingISO88595, EncodingISO88592}

var decoders = map[string]*charmap.Charmap{
	EncodingWindows1251: charmap.Windows1251,
	EncodingWindows1250: charmap.Windows1250,
	EncodingISO88595:    charmap.ISO8859_5,
	EncodingISO88592:    charmap.ISO8859_2,
}

// Delimiters are tried in order; the first one wins a tie.
var Delimiters = []string{",", ";", "\t", "|"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrUnknownEncoding is returned by ConvertToUTF8 for names outside Encodings.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Preset returns canonical field -> source column for one product and entity.
// Unknown source or entity yields an empty map.
func Preset(source, entity string) map[string]string {
	cols := presets[key(source)][key(entity)]
	out := make(map[string]string, len(cols))
	for _, c := range cols {
		out[c.Field] = c.Column
	}
	return out
}

func AvailableSources() map[string]string { return copyMap(sourceNames) }

func AvailableEntityTypes() map[string]string { return copyMap(entityNames) }

// Structure is the preset together with its ordered field and column lists.
type Structure struct {
	Source     string            `json:"source"`
	EntityType string            `json:"entity_type"`
	Mapping    map[string]string `json:"mapping"`
	Fields     []string          `json:"fields"`
	Columns    []string          `json:"columns"`
}

func PresetStructure(source, entity string) Structure {
	s := Structure{
		Source:     key(source),
		EntityType: key(entity),
		Mapping:    Preset(source, entity),
		Fields:     []string{},
		Columns:    []string{},
	}
	for _, c := range presets[s.Source][s.EntityType] {
		s.Fields = append(s.Fields, c.Field)
		s.Columns = append(s.Columns, c.Column)
	}
	return s
}

// MatchColumns picks the entity of source whose preset columns cover most of
// headers and returns header -> canonical field for the hits. Comparison is
// exact up to case and surrounding spaces; ties go to the earlier entity.
func MatchColumns(source string, headers []string) (string, map[string]string) {
	bestEntity, best := "", map[string]string{}
	for _, entity := range entityOrder {
		byColumn := make(map[string]string)
		for _, c := range presets[key(source)][entity] {
			byColumn[key(c.Column)] = c.Field
		}
		hits := make(map[string]string)
		for _, h := range headers {
			if f, ok := byColumn[key(h)]; ok {
				hits[h] = f
			}
		}
		if len(hits) > len(best) {
			bestEntity, best = entity, hits
		}
	}
	return bestEntity, best
}

// DetectEncoding guesses the charset of content among Encodings.
// Valid UTF-8 wins outright; otherwise chardet decides, Windows-1251 by default.
func DetectEncoding(content []byte) string {
	if utf8.Valid(content) {
		return EncodingUTF8
	}
	results, err := chardet.NewTextDetector().DetectAll(content)
	if err != nil {
		return EncodingWindows1251
	}
	for _, r := range results {
		if name := canonicalEncoding(r.Charset); name != "" && name != EncodingUTF8 {
			return name
		}
	}
	return EncodingWindows1251
}

// ConvertToUTF8 decodes content from the given encoding. A UTF-8 BOM is dropped.
func ConvertToUTF8(content []byte, from string) ([]byte, error) {
	name := canonicalEncoding(from)
	if name == EncodingUTF8 {
		return bytes.TrimPrefix(content, utf8BOM), nil
	}
	cm, ok := decoders[name]
	if !ok {
		return nil, errors.Mark(errors.Newf("convert from %q", from), ErrUnknownEncoding)
	}
	out, err := cm.NewDecoder().Bytes(content)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return out, nil
}

// Decoder exposes the charmap decoder for streaming readers; nil for UTF-8.
func Decoder(name string) *encoding.Decoder {
	if cm, ok := decoders[canonicalEncoding(name)]; ok {
		return cm.NewDecoder()
	}
	return nil
}

// DetectDelimiter counts candidates on the first line and returns the most frequent.
func DetectDelimiter(content string) string {
	line := content
	if i := strings.IndexAny(content, "\r\n"); i >= 0 {
		line = content[:i]
	}
	best, bestN := Delimiters[0], 0
	for _, d := range Delimiters {
		if n := strings.Count(line, d); n > bestN {
			best, bestN = d, n
		}
	}
	return best
}

func canonicalEncoding(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "-", " ", "-").Replace(n)
	switch n {
	case "utf-8", "utf8":
		return EncodingUTF8
	case "windows-1251", "cp1251":
		return EncodingWindows1251
	case "windows-1250", "cp1250":
		return EncodingWindows1250
	case "iso-8859-5":
		return EncodingISO88595
	case "iso-8859-2", "latin2":
		return EncodingISO88592
	}
	return ""
}

func key(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
