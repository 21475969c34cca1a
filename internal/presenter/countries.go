package presenter

// countryNames maps ISO 3166-1 codes to localized country names,
// historical codes included
var countryNames = map[string]string{
	// Historical
	"SU": "Советский Союз",
	"CS": "Чехословакия",
	"YU": "Югославия",
	"DD": "Восточная Германия",

	// Main producing countries
	"US": "США",
	"GB": "Великобритания",
	"RU": "Россия",
	"FR": "Франция",
	"DE": "Германия",
	"JP": "Япония",
	"CN": "Китай",
	"KR": "Южная Корея",
	"CA": "Канада",
	"IT": "Италия",
	"ES": "Испания",
	"IN": "Индия",
	"BR": "Бразилия",
	"MX": "Мексика",
	"AU": "Австралия",

	// Europe
	"NL": "Нидерланды",
	"BE": "Бельгия",
	"SE": "Швеция",
	"NO": "Норвегия",
	"DK": "Дания",
	"FI": "Финляндия",
	"CH": "Швейцария",
	"AT": "Австрия",
	"GR": "Греция",
	"PL": "Польша",
	"CZ": "Чехия",
	"HU": "Венгрия",
	"PT": "Португалия",
	"IE": "Ирландия",

	// Asia
	"TW": "Тайвань",
	"HK": "Гонконг",
	"SG": "Сингапур",
	"ID": "Индонезия",
	"TH": "Таиланд",

	// Middle East
	"IL": "Израиль",
	"TR": "Турция",
	"AE": "ОАЭ",

	// Others
	"NZ": "Новая Зеландия",
	"AR": "Аргентина",
	"CO": "Колумбия",
	"CL": "Чили",
	"ZA": "Южная Африка",
	"EG": "Египет",
}

// wizardCountries is the ordered country grid offered by the filter
// wizard; payloads carry the ISO code, labels the localized name
var wizardCountries = []string{
	"US", "RU",
	"GB", "FR",
	"DE", "JP",
	"KR", "CN",
	"IT", "ES",
	"CA", "AU",
	"IN", "BR",
}

// CountryName resolves an ISO code to its localized name, falling back to
// the code itself
func CountryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}
