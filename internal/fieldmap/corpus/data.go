package corpus

// Macedonian / Serbian / Albanian / English surface forms per canonical field, including the
// spellings used by the Onivo, Megasoft and Pantheon exports. Order matters: on an
// exact-match tie the field declared first wins.
var entries = []Entry{
	// клиент
	{Field: "customer_name", Variations: []string{
		"naziv", "ime_klient", "klient", "kupuvach", "kupac", "ime_kupac",
		"imeto_na_klientot", "customer", "client", "customer_name", "client_name",
		"назив", "клиент", "купувач", "име_клиент", "име_купац",
		// onivo
		"customer_full_name", "client_name_field",
		// megasoft
		"naziv_kupca", "ime_klijenta", "klijent_naziv", "naziv_partnera", "ime_firme",
		"naz_kupca", "naziv_klijenta", "poslovni_partner", "kupac_naziv",
		// pantheon
		"partner_naziv", "partner_ime", "prt_naziv", "partner_name", "kompanija_naziv",
		"firm_naziv", "organizacija_naziv", "entitet_naziv",
		// albanian
		"emri_klientit", "emri_klienti", "emri", "klienti", "klient_emri", "bleresi",
		"emri_bleresit", "emri_subjektit", "subjekti",
	}},
	{Field: "customer_id", Variations: []string{
		"id_klient", "klient_id", "customer_id", "id_kupac", "kupac_id",
		"ид_клиент", "клиент_ид",
		"customer_code", "client_id", "client_code",
		"sifra_kupca", "kod_kupca", "id_partnera", "sifra_klijenta",
		"partner_sifra", "partner_id", "partner_kod", "prt_id", "prt_sifra",
		// albanian
		"id_klienti", "klient_id", "kodi_klientit", "kodi_klienti", "id_bleresi", "bleresi_id",
		"kodi_subjektit",
	}},
	{Field: "tax_id", Variations: []string{
		"embs", "edb", "danocen_broj", "tax_number", "vat_number", "tax_id",
		"данок_број", "данок_ид", "ембс", "едб",
		"customer_tax_id", "customer_vat_number", "vat_id", "tax_registration",
		"pib", "pib_kupca", "poreski_broj", "danocni_broj", "pdv_broj",
		"maticni_broj", "mb", "registracijski_broj",
		"partner_pib", "partner_tax_id", "prt_pib", "porez_broj",
		"evidencijski_broj", "registarski_broj",
		// albanian
		"nipt", "numri_fiskal", "numri_tatimor", "nuis", "numri_identifikimit", "nid", "nsh",
		"nr_fiskal", "nr_tatimor", "tvsh_numri",
	}},
	{Field: "company_id", Variations: []string{
		"firma_id", "kompanija_id", "company_id", "firm_id", "preduzece_id",
		"фирма_ид", "компанија_ид",
	}},

	// фактура
	{Field: "invoice_number", Variations: []string{
		"broj_faktura", "faktura_broj", "invoice_no", "invoice_number",
		"број_фактура", "фактура_број",
		"invoice_id", "invoice_reference", "document_number", "doc_number",
		"broj_računa", "račun_broj", "br_računa", "broj_dokumenta",
		"dokument_broj", "račun_id", "faktura_id",
		"dok_broj", "dokument_id", "dok_id",
		"broj_dokuemnta", "dokumenta_broj",
		// albanian
		"numri_fatures", "numri_fature", "nr_fatures", "fature_numri", "numri", "numri_dokumentit",
		"nr_dokumentit", "nr_fature",
	}},
	{Field: "invoice_date", Variations: []string{
		"datum_faktura", "faktura_datum", "invoice_date", "date_issued",
		"дата_фактура", "датум_фактура",
		"created_date", "issue_date", "document_date",
		"datum_računa", "račun_datum", "dat_računa", "datum_izdavanja",
		"datum_kreiranja", "datum_dokumenta",
		"dokument_datum", "dok_datum", "datum_dok", "datum_izdavanje",
		// albanian
		"data_fatures", "data_fature", "data_leshimit", "data_dokumentit", "dt_fatures",
		"dt_fature",
	}},
	{Field: "due_date", Variations: []string{
		"datum_dospeanos", "dospeanos", "due_date", "payment_due",
		"датум_доспевање", "доспевање",
		"invoice_due_date", "payment_due_date", "maturity_date",
		"datum_dospeća", "dospeće", "valuta", "datum_valute",
		"rok_plaćanja", "datum_dospeća_računa",
		"dokument_valuta", "dok_valuta", "datum_dospeće",
		"dospeće_dokumenta",
		// albanian
		"afati_pageses", "data_pageses", "data_skadimit", "afati", "dt_pageses", "dt_skadimit",
	}},
	{Field: "invoice_status", Variations: []string{
		"status_faktura", "faktura_status", "invoice_status", "status",
		"статус_фактура", "статус",
	}},

	// ставки
	{Field: "item_name", Variations: []string{
		"naziv_stavka", "ime_proizvod", "proizvod", "stavka", "item_name", "product_name",
		"назив_ставка", "производ", "ставка",
		"service_name", "article_name", "goods_name",
		"naziv_robe", "ime_artikla", "artikal", "roba_naziv", "proizvod_naziv",
		"naziv_proizvoda", "stavka_naziv", "artikel_naziv",
		"stavka_ime", "stv_naziv", "proizvod_opis",
		// albanian
		"produkti", "emri_produktit", "pershkrimi", "artikulli", "emri_artikullit", "malli",
		"sherbimi", "emri_mallit",
	}},
	{Field: "item_code", Variations: []string{
		"kod_stavka", "sifra_proizvod", "item_code", "product_code", "sku",
		"код_ставка", "шифра_производ",
		"item_id", "product_id", "article_code", "sku_code",
		"šifra_robe", "kod_artikla", "šifra_artikla", "kod_robe",
		"šifra_proizvoda", "sifra_robe",
		"stavka_sifra", "stavka_kod", "stv_sifra", "artikel_sifra",
		"roba_sifra", "proizvod_kod",
		// albanian
		"kodi_produktit", "kodi", "kodi_artikullit", "kodi_mallit",
	}},
	{Field: "description", Variations: []string{
		"opis", "opis_stavka", "description", "item_description",
		"опис", "опис_ставка",
		// albanian
		"pershkrimi", "pershkrim", "detajet", "shenim",
	}},
	{Field: "quantity", Variations: []string{
		"kolicina", "kolichestvo", "qty", "quantity",
		"количина", "количество",
		"item_quantity", "count", "pieces",
		"količina", "količina_robe", "kol", "broj_komada", "komada",
		"količina_artikla", "količina_proizvoda",
		"stavka_kolicina", "stavka_kol", "stv_kolicina", "kol_stavke",
		"broj_stavke", "komad_broj",
		// albanian
		"sasia", "sasi", "sasija", "numri_njesi", "nr_njesi",
	}},
	{Field: "unit", Variations: []string{
		"edinica", "mera", "unit", "unit_of_measure", "uom",
		"единица", "мера",
		// albanian
		"njesia", "njesi_matese", "nj", "njesia_matjes",
	}},
	{Field: "unit_price", Variations: []string{
		"edinichna_cena", "cena_po_edinica", "unit_price", "price_per_unit",
		"единична_цена", "цена_по_единица",
		"item_unit_price", "single_price", "base_price", "list_price",
		"cena_robe", "jedinična_cena", "cena_po_komadu", "cena_artikla",
		"osnovna_cena", "cena_proizvoda",
		"stavka_cena", "stavka_jedinica_cena", "stv_cena", "jedinicna_cena",
		"cena_po_jedinici", "osnovna_stavka_cena",
		// albanian
		"cmimi_njesie", "cmimi", "cmimi_per_njesi", "cmimi_produktit", "cmimi_artikullit",
		"cmim_njesi",
	}},
	{Field: "price", Variations: []string{
		"cena", "cenata", "price", "unit_price",
		"цена", "цената",
		"cost", "rate", "value",
		"cena_robe", "vrednost", "iznos_cene",
		"cena_stavke", "vrednost_stavke", "cena_artikla",
		// albanian
		"cmimi", "cmim",
	}},

	// износи
	{Field: "amount", Variations: []string{
		"iznos", "suma", "amount", "total", "vrednost",
		"износ", "сума", "вредност",
		"item_total_price", "line_amount", "total_amount", "sum",
		"line_total", "item_amount",
		"iznos_stavke", "ukupan_iznos_stavke", "vrednost_stavke",
		"suma_stavke", "ukupno_stavka", "iznos_robe",
		"stavka_iznos", "stavka_vrednost", "stv_iznos",
		"iznos_ukupno_stavka", "stavka_suma",
		// albanian
		"vlera", "shuma", "totali", "vlera_totale", "shuma_totale",
	}},
	{Field: "subtotal", Variations: []string{
		"podvkupen_iznos", "subtotal", "osnovica", "net_amount",
		"подвкупен_износ", "основица",
		// albanian
		"nentotali", "vlera_neto", "shuma_neto",
	}},
	{Field: "total", Variations: []string{
		"vkupen_iznos", "vkupno", "total", "grand_total",
		"вкупен_износ", "вкупно",
		"ukupan_iznos", "ukupno_iznos", "suma_ukupno", "ukupna_vrednost",
		// albanian
		"totali", "shuma_totale", "vlera_totale", "totali_pergjithshem",
	}},
	{Field: "currency", Variations: []string{
		"valuta", "currency", "валута",
		// albanian
		"monedha", "valuta",
	}},

	// ДДВ
	{Field: "vat_rate", Variations: []string{
		"pdv_stapka", "ddv_stapka", "vat_rate", "tax_rate", "danocna_stapka",
		"пдв_стапка", "ддв_стапка", "данок_стапка",
		"item_vat_rate", "vat_percentage", "tax_percentage", "vat_percent",
		"stopa_pdv", "pdv_stopa", "procenat_pdv", "stopa_poreza",
		"porez_stopa", "pdv_procenat",
		"stavka_pdv_stopa", "stavka_pdv_procenat", "stv_pdv", "pdv_stavka",
		"porez_stavka", "stavka_porez_stopa",
		// albanian
		"norma_tvsh", "norma", "perqindja_tvsh", "tvsh_norma", "shkalla_tvsh", "tvsh_perqindja",
	}},
	{Field: "vat_amount", Variations: []string{
		"pdv_iznos", "ddv_iznos", "vat_amount", "tax_amount", "danocen_iznos",
		"пдв_износ", "ддв_износ", "данок_износ",
		"item_vat_amount", "vat_sum", "tax_sum", "vat_value",
		"iznos_pdv", "pdv_vrednost", "suma_pdv", "ukupan_pdv",
		"porez_iznos", "vrednost_pdv",
		"stavka_pdv_iznos", "stavka_pdv_vrednost", "stv_pdv_iznos",
		"pdv_stavka_iznos", "porez_stavka_iznos",
		// albanian
		"vlera_tvsh", "shuma_tvsh", "tvsh", "tvsh_vlera", "tvsh_shuma",
	}},
	{Field: "tax_inclusive", Variations: []string{
		"so_ddv", "vkluchuvajki_ddv", "tax_inclusive", "including_tax",
		"со_ддв", "вклучувајќи_ддв",
	}},
	{Field: "tax_exclusive", Variations: []string{
		"bez_ddv", "iskljuchuvajki_ddv", "tax_exclusive", "excluding_tax",
		"без_ддв", "исклучувајќи_ддв",
	}},

	// плаќања
	{Field: "payment_date", Variations: []string{
		"datum_plakanje", "plakanje_datum", "payment_date", "paid_date",
		"датум_плаќање", "плаќање_датум",
		"payment_received_date", "transaction_date",
		"datum_plaćanja", "plaćanje_datum", "dat_plaćanja", "datum_uplate",
		"uplata_datum", "datum_transakcije",
		"uplata_dat", "upl_datum", "transakcija_datum",
		// albanian
		"data_pageses", "data_pagesave", "dt_pageses",
	}},
	{Field: "payment_method", Variations: []string{
		"nachin_plakanje", "metod_plakanje", "payment_method", "pay_method",
		"начин_плаќање", "метод_плаќање",
		"payment_type", "pay_type", "payment_mode",
		"način_plaćanja", "metod_plaćanja", "tip_plaćanja", "vrsta_plaćanja",
		"način_uplate", "metod_uplate",
		"uplata_nacin", "uplata_tip", "upl_nacin", "tip_uplate",
		// albanian
		"metoda_pageses", "menyra_pageses", "lloji_pageses",
	}},
	{Field: "payment_amount", Variations: []string{
		"iznos_plakanje", "platena_suma", "payment_amount", "paid_amount",
		"износ_плаќање", "платена_сума",
		"amount_paid", "payment_sum",
		"iznos_plaćanja", "plaćeni_iznos", "suma_plaćanja", "vrednost_plaćanja",
		"iznos_uplate", "uplata_iznos",
		"uplata_suma", "upl_iznos", "plaćanje_iznos", "vrednost_uplate",
		// albanian
		"shuma_paguar", "vlera_pageses", "shuma_pageses",
	}},
	{Field: "payment_reference", Variations: []string{
		"referenca_plakanje", "payment_reference", "reference_no",
		"референца_плаќање",
		"payment_id", "transaction_id", "reference_number",
		"referenca_plaćanja", "oznaka_plaćanja", "broj_plaćanja",
		"id_plaćanja", "referenca_uplate",
		"uplata_referenca", "uplata_oznaka", "upl_referenca", "broj_uplate",
		// albanian
		"referenca_pageses", "nr_reference", "kodi_pageses",
	}},

	// банка
	{Field: "bank_account", Variations: []string{
		"bankovska_smetka", "smetka", "account_number", "bank_account",
		"банковска_сметка", "сметка",
		// albanian
		"llogaria_bankare", "llogaria", "nr_llogarie",
	}},
	{Field: "bank_name", Variations: []string{
		"ime_banka", "banka", "bank_name", "bank",
		"име_банка", "банка",
		// albanian
		"banka", "emri_bankes", "institucioni_bankar",
	}},

	// адреса
	{Field: "address", Variations: []string{
		"adresa", "address", "street", "ulica",
		"адреса", "улица",
		// albanian
		"adresa", "rruga", "adresa_rruga",
	}},
	{Field: "city", Variations: []string{
		"grad", "city", "место", "град",
		// albanian
		"qyteti", "qytet", "vendbanimi",
	}},
	{Field: "postal_code", Variations: []string{
		"postanski_broj", "zip", "postal_code", "zip_code",
		"поштански_број",
		// albanian
		"kodi_postar", "kodi_postal", "kp",
	}},
	{Field: "country", Variations: []string{
		"zemja", "drzava", "country", "земја", "држава",
		// albanian
		"shteti", "vendi", "shteti_i_origjines",
	}},

	// магацин
	{Field: "warehouse", Variations: []string{
		"skladiste", "magacin", "warehouse", "stock_location",
		"складиште", "магацин",
	}},
	{Field: "stock_quantity", Variations: []string{
		"kolicina_skladiste", "zaliha", "stock_qty", "inventory",
		"количина_складиште", "залиха",
	}},

	// трошоци
	{Field: "expense_category", Variations: []string{
		"kategorija_trosok", "vid_trosok", "expense_category", "cost_center",
		"категорија_трошок", "вид_трошок",
	}},
	{Field: "expense_date", Variations: []string{
		"datum_trosok", "trosok_datum", "expense_date",
		"датум_трошок", "трошок_датум",
	}},

	{Field: "date", Variations: []string{
		"datum", "data", "date", "датум", "дата",
	}},
	{Field: "status", Variations: []string{
		"status", "sostojba", "condition", "статус", "состојба",
	}},
	{Field: "notes", Variations: []string{
		"zabeleska", "komentar", "notes", "comments", "remarks",
		"забелешка", "коментар",
	}},

	// контакт
	{Field: "email", Variations: []string{
		"email", "e_mail", "elektronska_posta", "mail",
		"електронска_пошта", "меил",
		// albanian
		"email", "posta_elektronike", "posta", "e_mail",
	}},
	{Field: "phone", Variations: []string{
		"telefon", "tel", "phone", "mobile", "телефон",
		// albanian
		"telefoni", "tel", "nr_telefoni", "numri_tel", "celular",
	}},
	{Field: "contact_person", Variations: []string{
		"kontakt_lice", "odgovorno_lice", "contact_person", "representative",
		"контакт_лице", "одговорно_лице",
		// albanian
		"personi_kontaktit", "personi", "perfaqesuesi",
	}},
}

// Competitor naming conventions: substring -> hint. Used both to boost heuristic
// confidence and as the last-resort competitor pattern match.
var competitorPatterns = map[string][]Pattern{
	"onivo": {
		{"customer_", "customer_"},
		{"invoice_", "invoice_"},
		{"item_", "item_"},
		{"payment_", "payment_"},
		{"_id", "_id"},
		{"_name", "_name"},
		{"_date", "_date"},
		{"_amount", "_amount"},
	},
	"megasoft": {
		{"naziv_", "customer_name"},
		{"_kupca", "customer_"},
		{"broj_", "_number"},
		{"_računa", "invoice_"},
		{"_robe", "item_"},
		{"količina_", "quantity"},
		{"cena_", "price"},
		{"iznos_", "amount"},
		{"pdv_", "vat_"},
		{"pib", "tax_id"},
	},
	"pantheon": {
		{"partner_", "customer_"},
		{"dokument_", "invoice_"},
		{"stavka_", "item_"},
		{"uplata_", "payment_"},
		{"prt_", "customer_"},
		{"dok_", "invoice_"},
		{"stv_", "item_"},
		{"upl_", "payment_"},
	},
}

var softwareNames = []string{"onivo", "megasoft", "pantheon"}
