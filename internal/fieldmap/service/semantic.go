package service

import (
	"strings"

	"fieldmap-service/internal/fieldmap/model"
)

const (
	semanticBasicConfidence      = 0.6
	semanticCompetitorConfidence = 0.75
)

type semanticGroup struct {
	name       string
	basic      []string
	competitor []string
	resolve    func(input string) string
}

// Order matters: on equal confidence the earlier group wins.
var semanticGroups = []semanticGroup{
	{
		name:       "financial",
		basic:      []string{"iznos", "suma", "cena", "amount", "price", "cost", "value", "vrednost"},
		competitor: []string{"total_price", "line_amount", "cena_robe", "iznos_stavke", "stavka_iznos"},
		resolve: func(s string) string {
			switch {
			case containsAny(s, "vat", "pdv", "ddv"):
				if containsAny(s, "rate", "stopa") {
					return "vat_rate"
				}
				return "vat_amount"
			case containsAny(s, "unit", "jedinic"):
				return "unit_price"
			case containsAny(s, "total", "ukupno"):
				return "total"
			}
			return "amount"
		},
	},
	{
		name:       "identity",
		basic:      []string{"broj", "id", "sifra", "number", "code", "reference"},
		competitor: []string{"customer_id", "sifra_kupca", "partner_sifra", "dok_broj"},
		resolve: func(s string) string {
			switch {
			case containsAny(s, "customer", "kupac", "partner"):
				return "customer_id"
			case containsAny(s, "invoice", "faktura", "racun"):
				return "invoice_number"
			case containsAny(s, "item", "stavka", "roba"):
				return "item_code"
			case containsAny(s, "tax", "pib", "embs"):
				return "tax_id"
			}
			return "customer_id"
		},
	},
	{
		name:       "temporal",
		basic:      []string{"datum", "data", "date", "time", "period"},
		competitor: []string{"invoice_date", "datum_racuna", "dokument_datum", "uplata_datum"},
		resolve: func(s string) string {
			switch {
			case containsAny(s, "due", "dospe", "valuta"):
				return "due_date"
			case containsAny(s, "payment", "plac", "uplata"):
				return "payment_date"
			case containsAny(s, "invoice", "faktura"):
				return "invoice_date"
			}
			return "date"
		},
	},
	{
		name:       "quantity",
		basic:      []string{"kolicina", "broj", "count", "quantity", "amount"},
		competitor: []string{"item_quantity", "kolicina_robe", "stavka_kolicina"},
		resolve:    func(string) string { return "quantity" },
	},
	{
		name:       "descriptive",
		basic:      []string{"naziv", "ime", "opis", "name", "description", "title"},
		competitor: []string{"customer_name", "naziv_kupca", "partner_naziv", "item_name"},
		resolve: func(s string) string {
			switch {
			case containsAny(s, "customer", "kupac", "partner"):
				return "customer_name"
			case containsAny(s, "item", "stavka", "proizvod"):
				return "item_name"
			}
			return "description"
		},
	},
	{
		name:       "tax",
		basic:      []string{"pdv", "ddv", "vat", "tax", "porez"},
		competitor: []string{"vat_rate", "stopa_pdv", "stavka_pdv_stopa"},
		resolve: func(s string) string {
			if containsAny(s, "rate", "stopa", "percent") {
				return "vat_rate"
			}
			return "vat_amount"
		},
	},
	{
		name:       "payment",
		basic:      []string{"plakanje", "uplata", "payment", "paid"},
		competitor: []string{"payment_date", "datum_placanja", "uplata_datum"},
		resolve: func(s string) string {
			switch {
			case containsAny(s, "amount", "iznos"):
				return "payment_amount"
			case containsAny(s, "method", "nacin"):
				return "payment_method"
			case containsAny(s, "reference", "referenc"):
				return "payment_reference"
			}
			return "payment_date"
		},
	},
}

// semanticStrategy groups keywords by meaning; a competitor keyword is a stronger
// signal than a generic one. Only the single best group match is returned.
type semanticStrategy struct{}

func (semanticStrategy) Algorithm() model.Algorithm { return model.AlgorithmSemanticAI }

func (semanticStrategy) Match(input string, _ model.Context) []model.MatchCandidate {
	if input == "" {
		return nil
	}
	s := strings.ToLower(input)

	var best model.MatchCandidate
	for _, g := range semanticGroups {
		if kwHit(s, g.competitor) && semanticCompetitorConfidence > best.Confidence {
			best = semanticCandidate(g, s, "competitor", semanticCompetitorConfidence)
		}
		if kwHit(s, g.basic) && semanticBasicConfidence > best.Confidence {
			best = semanticCandidate(g, s, "basic", semanticBasicConfidence)
		}
	}
	if best.Field == "" {
		return nil
	}
	return []model.MatchCandidate{best}
}

func kwHit(s string, words []string) bool { return containsAny(s, words...) }

func semanticCandidate(g semanticGroup, s, matchType string, conf float64) model.MatchCandidate {
	return model.MatchCandidate{
		Field:         g.resolve(s),
		Confidence:    conf,
		Algorithm:     model.AlgorithmSemanticAI,
		SemanticGroup: g.name,
		MatchType:     matchType,
	}
}
