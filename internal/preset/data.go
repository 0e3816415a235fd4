package preset

// column: каноническое поле -> имя колонки в выгрузке конкурента.
type column struct {
	Field  string
	Column string
}

var sourceNames = map[string]string{
	"onivo":    "Onivo",
	"megasoft": "Megasoft",
	"pantheon": "Pantheon",
}

var entityNames = map[string]string{
	"customers": "Customers",
	"items":     "Items",
	"invoices":  "Invoices",
	"bills":     "Bills",
}

var entityOrder = []string{"customers", "items", "invoices", "bills"}

var presets = map[string]map[string][]column{
	"onivo": {
		"customers": {
			{"name", "Партнер"},
			{"email", "Email"},
			{"phone", "Телефон"},
			{"vat_number", "ЕДБ"},
			{"tax_id", "ЕМБС"},
			{"address", "Адреса"},
			{"city", "Град"},
			{"postal_code", "Поштенски број"},
			{"country", "Држава"},
			{"website", "Веб страна"},
			{"contact_name", "Контакт лице"},
		},
		"items": {
			{"name", "Производ"},
			{"description", "Опис"},
			{"price", "Цена"},
			{"unit_name", "Единица"},
			{"sku", "Шифра"},
			{"tax_rate", "ДДВ стапка"},
			{"barcode", "Баркод"},
		},
		"invoices": {
			{"invoice_number", "Број на фактура"},
			{"customer_name", "Купувач"},
			{"invoice_date", "Датум на фактура"},
			{"due_date", "Рок на плаќање"},
			{"sub_total", "Износ без ДДВ"},
			{"tax", "ДДВ"},
			{"total", "Вкупно"},
			{"currency", "Валута"},
			{"status", "Статус"},
			{"notes", "Забелешка"},
		},
		"bills": {
			{"bill_number", "Број на влезна фактура"},
			{"supplier_name", "Добавувач"},
			{"bill_date", "Датум на фактура"},
			{"due_date", "Рок на плаќање"},
			{"sub_total", "Износ без ДДВ"},
			{"tax", "ДДВ"},
			{"total", "Вкупно"},
			{"currency", "Валута"},
			{"notes", "Забелешка"},
		},
	},
	"megasoft": {
		"customers": {
			{"name", "ParnerName"},
			{"email", "ParnerEmail"},
			{"phone", "ParnerTel"},
			{"vat_number", "ParnerEDB"},
			{"tax_id", "ParnerEMBS"},
			{"address", "ParnerAdresa"},
			{"city", "ParnerMesto"},
			{"postal_code", "ParnerPosta"},
			{"country", "ParnerDrzava"},
			{"contact_name", "ParnerKontakt"},
		},
		"items": {
			{"name", "ArtikalNaziv"},
			{"description", "ArtikalOpis"},
			{"price", "ArtikalCena"},
			{"unit_name", "MernaEdinica"},
			{"sku", "ArtikalSifra"},
			{"tax_rate", "ArtikalDDV"},
			{"barcode", "ArtikalBarkod"},
		},
		"invoices": {
			{"invoice_number", "FakturaBroj"},
			{"customer_name", "Kupuvac"},
			{"invoice_date", "FakturaDatum"},
			{"due_date", "FakturaValuta"},
			{"sub_total", "IznosBezDDV"},
			{"tax", "IznosDDV"},
			{"total", "Vkupno"},
			{"currency", "Valuta"},
			{"status", "Status"},
			{"notes", "Zabeleska"},
		},
		"bills": {
			{"bill_number", "VleznaFakturaBroj"},
			{"supplier_name", "Dobavuvac"},
			{"bill_date", "VleznaFakturaDatum"},
			{"due_date", "RokPlakanje"},
			{"sub_total", "IznosBezDDV"},
			{"tax", "IznosDDV"},
			{"total", "Vkupno"},
			{"currency", "Valuta"},
			{"notes", "Zabeleska"},
		},
	},
	"pantheon": {
		"customers": {
			{"name", "PartnerNaziv"},
			{"email", "PartnerEmail"},
			{"phone", "PartnerTelefon"},
			{"vat_number", "PartnerPIB"},
			{"tax_id", "PartnerMB"},
			{"address", "PartnerAdresa"},
			{"city", "PartnerMesto"},
			{"postal_code", "PartnerPosta"},
			{"country", "PartnerDrzava"},
		},
		"items": {
			{"name", "IdentNaziv"},
			{"description", "IdentOpis"},
			{"price", "IdentCena"},
			{"unit_name", "IdentEM"},
			{"sku", "IdentSifra"},
			{"tax_rate", "IdentPDV"},
			{"barcode", "IdentEAN"},
		},
		"invoices": {
			{"invoice_number", "DokumentBroj"},
			{"customer_name", "PartnerNaziv"},
			{"invoice_date", "DokumentDatum"},
			{"due_date", "DatumDospeca"},
			{"sub_total", "IznosBezPDV"},
			{"tax", "IznosPDV"},
			{"total", "UkupnoIznos"},
			{"currency", "Valuta"},
			{"status", "DokumentStatus"},
			{"notes", "Napomena"},
		},
		"bills": {
			{"bill_number", "UlazniDokumentBroj"},
			{"supplier_name", "DobavljacNaziv"},
			{"bill_date", "UlazniDokumentDatum"},
			{"due_date", "DatumDospeca"},
			{"sub_total", "IznosBezPDV"},
			{"tax", "IznosPDV"},
			{"total", "UkupnoIznos"},
			{"currency", "Valuta"},
			{"notes", "Napomena"},
		},
	},
}
