package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"fieldmap-service/internal/fieldmap/corpus"
	"fieldmap-service/internal/fieldmap/model"
)

type rule struct {
	re         *regexp.Regexp
	field      string
	confidence float64
}

func r(pattern, field string, confidence float64) rule {
	return rule{re: regexp.MustCompile(`(?i)` + pattern), field: field, confidence: confidence}
}

// Общие правила для македонских/сербских выгрузок.
var baseRules = []rule{
	r(`^(broj|br|no).*faktura`, "invoice_number", 0.9),
	r(`^(datum|data).*faktura`, "invoice_date", 0.9),
	r(`^(iznos|suma|amount)`, "amount", 0.8),
	r(`^(kolicina|qty|quantity)`, "quantity", 0.8),
	r(`^(cena|price)`, "unit_price", 0.8),
	r(`^(pdv|ddv|vat).*stapka`, "vat_rate", 0.9),
	r(`^(pdv|ddv|vat).*iznos`, "vat_amount", 0.9),
	r(`^(klient|customer|kupuvach)`, "customer_name", 0.8),
	r(`^embs$`, "tax_id", 1.0),
	r(`^edb$`, "tax_id", 1.0),
}

var softwareRules = map[string][]rule{
	"onivo": {
		r(`^customer_name$`, "customer_name", 0.95),
		r(`^customer_id$`, "customer_id", 0.95),
		r(`^customer_tax_id$`, "tax_id", 0.95),
		r(`^invoice_id$`, "invoice_number", 0.95),
		r(`^invoice_date$`, "invoice_date", 0.95),
		r(`^invoice_due_date$`, "due_date", 0.95),
		r(`^item_name$`, "item_name", 0.95),
		r(`^item_quantity$`, "quantity", 0.95),
		r(`^item_unit_price$`, "unit_price", 0.95),
		r(`^payment_date$`, "payment_date", 0.95),
		r(`^payment_amount$`, "payment_amount", 0.95),
	},
	"megasoft": {
		r(`^naziv_kupca$`, "customer_name", 0.95),
		r(`^pib_?kupca?$`, "tax_id", 0.95),
		r(`^broj_ra[cč]una$`, "invoice_number", 0.95),
		r(`^datum_ra[cč]una$`, "invoice_date", 0.95),
		r(`^naziv_robe$`, "item_name", 0.95),
		r(`^[sš]ifra_robe$`, "item_code", 0.95),
		r(`^koli[cč]ina_robe$`, "quantity", 0.95),
		r(`^cena_robe$`, "unit_price", 0.95),
		r(`^stopa_pdv$`, "vat_rate", 0.95),
		r(`^iznos_pdv$`, "vat_amount", 0.95),
		r(`^na[cč]in_pla[cć]anja$`, "payment_method", 0.95),
	},
	"pantheon": {
		r(`^partner_naziv$`, "customer_name", 0.95),
		r(`^partner_[sš]ifra$`, "customer_id", 0.95),
		r(`^partner_pib$`, "tax_id", 0.95),
		r(`^dokument_broj$`, "invoice_number", 0.95),
		r(`^dokument_datum$`, "invoice_date", 0.95),
		r(`^stavka_naziv$`, "item_name", 0.95),
		r(`^stavka_[sš]ifra$`, "item_code", 0.95),
		r(`^stavka_koli[cč]ina$`, "quantity", 0.95),
		r(`^stavka_cena$`, "unit_price", 0.95),
		r(`^stavka_pdv_stopa$`, "vat_rate", 0.95),
		r(`^uplata_datum$`, "payment_date", 0.95),
		r(`^uplata_iznos$`, "payment_amount", 0.95),
		// сокращения
		r(`^prt_naziv$`, "customer_name", 0.9),
		r(`^dok_broj$`, "invoice_number", 0.9),
		r(`^stv_naziv$`, "item_name", 0.9),
		r(`^upl_datum$`, "payment_date", 0.9),
	},
}

const (
	competitorBoost          = 0.05
	competitorBaseConfidence = 0.7
	competitorMaxConfidence  = 0.95
)

// heuristicStrategy: first matching regex wins; software rules are tried before
// the generic ones. Falls back to competitor naming conventions.
type heuristicStrategy struct{}

func (heuristicStrategy) Algorithm() model.Algorithm { return model.AlgorithmHeuristicPattern }

func (heuristicStrategy) Match(input string, c model.Context) []model.MatchCandidate {
	if input == "" {
		return nil
	}
	software := c.Software

	rules := make([]rule, 0, len(baseRules)+len(softwareRules[software]))
	rules = append(rules, softwareRules[software]...)
	rules = append(rules, baseRules...)

	for _, rl := range rules {
		if !rl.re.MatchString(input) {
			continue
		}
		conf := rl.confidence
		if software != "" && hasCompetitorPattern(input, software) {
			conf = minf(1.0, conf+competitorBoost)
		}
		return []model.MatchCandidate{{
			Field:      rl.field,
			Confidence: conf,
			Algorithm:  model.AlgorithmHeuristicPattern,
		}}
	}

	if cand, ok := matchCompetitorPattern(input, software); ok {
		return []model.MatchCandidate{cand}
	}
	return nil
}

func hasCompetitorPattern(input, software string) bool {
	for _, p := range corpus.CompetitorPatterns(software) {
		if strings.Contains(input, p.Substr) {
			return true
		}
	}
	return false
}

func matchCompetitorPattern(input, software string) (model.MatchCandidate, bool) {
	var best model.MatchCandidate
	found := false
	n := utf8.RuneCountInString(input)

	for _, p := range corpus.CompetitorPatterns(software) {
		if !strings.Contains(input, p.Substr) {
			continue
		}
		field := fieldFromPattern(input, p)
		if field == "" {
			continue
		}
		coverage := float64(utf8.RuneCountInString(p.Substr)) / float64(n)
		conf := minf(competitorMaxConfidence, competitorBaseConfidence+coverage*0.2)
		if !found || conf > best.Confidence {
			best = model.MatchCandidate{Field: field, Confidence: conf, Algorithm: model.AlgorithmCompetitorPattern}
			found = true
		}
	}
	return best, found
}

// fieldFromPattern resolves the canonical field a competitor pattern points at.
// Family hints ("customer_", "item_", ...) are refined by keywords of the input.
func fieldFromPattern(input string, p corpus.Pattern) string {
	switch p.Target {
	case "customer_":
		switch {
		case containsAny(input, "pib", "tax", "edb", "embs"):
			return "tax_id"
		case containsAny(input, "id", "sifra", "šifra", "kod", "code"):
			return "customer_id"
		}
		return "customer_name"
	case "invoice_":
		switch {
		case containsAny(input, "due", "valuta", "dospe"):
			return "due_date"
		case containsAny(input, "date", "datum"):
			return "invoice_date"
		}
		return "invoice_number"
	case "item_":
		switch {
		case containsAny(input, "sifra", "šifra", "code", "kod"):
			return "item_code"
		case containsAny(input, "kolicina", "količina", "kol", "qty", "quantity"):
			return "quantity"
		case containsAny(input, "cena", "price"):
			return "unit_price"
		}
		return "item_name"
	case "payment_":
		switch {
		case containsAny(input, "iznos", "amount", "suma"):
			return "payment_amount"
		case containsAny(input, "nacin", "način", "method", "tip", "type"):
			return "payment_method"
		case containsAny(input, "referenc", "reference"):
			return "payment_reference"
		}
		return "payment_date"
	}
	if corpus.IsField(p.Target) {
		return p.Target
	}

	switch {
	case containsAny(input, "name", "naziv"):
		return "customer_name"
	case containsAny(input, "id", "sifra"):
		return "customer_id"
	case containsAny(input, "date", "datum"):
		return "invoice_date"
	case containsAny(input, "amount", "iznos"):
		return "amount"
	}
	return ""
}
