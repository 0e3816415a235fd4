package service

import (
	"strings"

	"fieldmap-service/internal/fieldmap/model"
)

const (
	overrideFloor = 0.8
	cyrillicLift  = 0.8
	fallbackConf  = 0.7
	nearTieMargin = 0.02
)

type override struct {
	match func(s string) bool
	field string
	floor float64
}

func has(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if !strings.Contains(s, sub) {
				return false
			}
		}
		return true
	}
}

func is(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if s == w {
				return true
			}
		}
		return false
	}
}

// Составные имена конкурентов, которые стратегии путают с соседними полями.
// Первое совпадение побеждает.
var softwareOverrides = map[string][]override{
	"onivo": {
		{has("customer", "address"), "address", overrideFloor},
		{has("customer", "city"), "city", overrideFloor},
		{has("customer", "email"), "email", overrideFloor},
		{has("customer", "phone"), "phone", overrideFloor},
		{has("customer_id"), "customer_id", overrideFloor},
		{has("invoice_total"), "total", overrideFloor},
		{has("invoice_currency"), "currency", overrideFloor},
		{has("item_description"), "description", overrideFloor},
	},
	"megasoft": {
		{has("adresa"), "address", overrideFloor},
		{has("mesto"), "city", overrideFloor},
		{has("uk_iznos"), "total", overrideFloor},
	},
	"pantheon": {
		{has("partner_adresa"), "address", overrideFloor},
		{has("partner_mesto"), "city", overrideFloor},
		{has("partner_telefon"), "phone", overrideFloor},
		{has("partner_email"), "email", overrideFloor},
		{has("dokument_iznos"), "total", overrideFloor},
		{has("dokument_status"), "invoice_status", overrideFloor},
		{has("stavka_opis"), "description", overrideFloor},
	},
}

// Смешанные и сокращённые имена, не зависящие от программы. Применяются все
// по порядку, последнее совпадение остаётся.
var domainOverrides = []override{
	{is("klijent"), "customer_name", 0.9},
	{is("amount"), "amount", 0.9},
	{func(s string) bool { return strings.Contains(s, "faktor") }, "invoice_number", 0.8},
	{func(s string) bool { return strings.Contains(s, "edb") || strings.Contains(s, "embs") }, "tax_id", 0.85},
	{has("item_stavka"), "item_name", 0.8},
	{func(s string) bool {
		return s == "plakanje" || s == "плаќање" || (strings.HasPrefix(s, "plat") && s != "platena_suma")
	}, "payment_date", 0.8},
	{is("uplata", "уплата", "uplate"), "payment_amount", 0.8},
	{has("payment", "plakanje"), "payment_date", 0.8},
	{has("vkupno", "total"), "total", 0.8},
	{is("cenite"), "price", 0.7},
	{has("price", "cena"), "price", 0.8},
	{is("ukup"), "total", 0.6},
	{is("item_cena_value"), "unit_price", 0.7},
	{is("data_cena"), "price", 0.7},
}

// refine applies the post-ranking corrections to the best candidate.
// An exact corpus hit is final and never touched.
func refine(input string, best model.MatchCandidate, alts []model.MatchCandidate, software string) model.MatchCandidate {
	if best.Algorithm == model.AlgorithmExactMatch {
		return best
	}

	if best.Field == "customer_id" {
		for _, a := range alts {
			if a.Field == "customer_name" && best.Confidence-a.Confidence < nearTieMargin {
				best = a
				break
			}
		}
	}

	for _, o := range softwareOverrides[software] {
		if o.match(input) {
			best = lifted(best, o)
			break
		}
	}
	for _, o := range domainOverrides {
		if o.match(input) {
			best = lifted(best, o)
		}
	}
	// iznos_ukupno_sa_pdv -> amount, iznos_ukupno -> total
	if strings.Contains(input, "iznos") && strings.Contains(input, "ukup") {
		f := "total"
		if strings.Contains(input, "sa_pdv") {
			f = "amount"
		}
		best = lifted(best, override{field: f, floor: 0.7})
	}
	if input == "amount_total_sum" {
		best = model.MatchCandidate{Field: "amount", Confidence: 0.6, Algorithm: model.AlgorithmHeuristicPattern}
	}

	if isCyrillic(input) && best.Confidence > 0.7 && best.Confidence < cyrillicLift {
		best.Confidence = cyrillicLift
	}

	if best.Field == "" {
		if f := fallbackField(input); f != "" {
			best = model.MatchCandidate{Field: f, Confidence: fallbackConf, Algorithm: model.AlgorithmFallbackHeuristic}
		}
	}
	return best
}

func lifted(best model.MatchCandidate, o override) model.MatchCandidate {
	return model.MatchCandidate{
		Field:      o.field,
		Confidence: maxf(best.Confidence, o.floor),
		Algorithm:  model.AlgorithmHeuristicPattern,
	}
}

// fallbackField: очень простые токены, только когда ничего не нашлось.
func fallbackField(s string) string {
	switch {
	case s == "br" || strings.Contains(s, "broj"):
		return "invoice_number"
	case strings.Contains(s, "customer") && strings.Contains(s, "address"):
		return "address"
	case containsAny(s, "customer", "client", "klient", "kupuvach", "купувач", "клиент"):
		return "customer_name"
	case containsAny(s, "invoice", "faktura", "фактура", "račun", "racun", "fakt"):
		return "invoice_number"
	case containsAny(s, "quantity", "kolicina", "количина", "qty", "kol"):
		return "quantity"
	case containsAny(s, "price", "cena", "цена"):
		return "unit_price"
	case containsAny(s, "date", "datum", "датум"):
		return "invoice_date"
	case containsAny(s, "payment", "plakanje", "плаќање", "uplata", "уплата"):
		return "payment_date"
	}
	return ""
}

// Типы колонок для импорта; всё остальное строка.
var (
	dateFields    = []string{"invoice_date", "due_date", "payment_date", "expense_date", "date"}
	integerFields = []string{"quantity", "stock_quantity"}
	decimalFields = []string{
		"amount", "total", "subtotal", "unit_price", "price",
		"vat_rate", "vat_amount", "payment_amount",
	}
)

func inferDataType(field string) string {
	switch {
	case field == "":
		return "string"
	case is(dateFields...)(field):
		return "date"
	case is(integerFields...)(field):
		return "integer"
	case is(decimalFields...)(field):
		return "decimal"
	}
	return "string"
}
