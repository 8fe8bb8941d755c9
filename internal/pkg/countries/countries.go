// Package countries maps ISO-3166 alpha-2 codes to display names, with the
// two CORDIS quirks: the data uses UK where the standard says GB, and XK
// (Kosovo) exists even though it has no ISO assignment.
package countries

import "strings"

// Translate maps a caller-supplied code onto the code the CORDIS data
// actually uses. Only GB differs.
func Translate(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "GB" {
		return "UK"
	}
	return code
}

// Name returns the display name for a two-letter code, or "" when the code is
// not known. Lookup is case-insensitive and UK-aware.
func Name(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "UK" {
		code = "GB"
	}
	return names[code]
}

// Known reports whether the code resolves to a name.
func Known(code string) bool {
	return Name(code) != ""
}

var names = map[string]string{
	"AL": "Albania",
	"AM": "Armenia",
	"AR": "Argentina",
	"AT": "Austria",
	"AU": "Australia",
	"AZ": "Azerbaijan",
	"BA": "Bosnia and Herzegovina",
	"BD": "Bangladesh",
	"BE": "Belgium",
	"BF": "Burkina Faso",
	"BG": "Bulgaria",
	"BJ": "Benin",
	"BO": "Bolivia, Plurinational State of",
	"BR": "Brazil",
	"BY": "Belarus",
	"CA": "Canada",
	"CD": "Congo, The Democratic Republic of the",
	"CH": "Switzerland",
	"CI": "Côte d'Ivoire",
	"CL": "Chile",
	"CM": "Cameroon",
	"CN": "China",
	"CO": "Colombia",
	"CR": "Costa Rica",
	"CU": "Cuba",
	"CV": "Cabo Verde",
	"CY": "Cyprus",
	"CZ": "Czechia",
	"DE": "Germany",
	"DK": "Denmark",
	"DZ": "Algeria",
	"EC": "Ecuador",
	"EE": "Estonia",
	"EG": "Egypt",
	"ES": "Spain",
	"ET": "Ethiopia",
	"FI": "Finland",
	"FJ": "Fiji",
	"FO": "Faroe Islands",
	"FR": "France",
	"GB": "United Kingdom",
	"GE": "Georgia",
	"GH": "Ghana",
	"GL": "Greenland",
	"GR": "Greece",
	"GT": "Guatemala",
	"HK": "Hong Kong",
	"HR": "Croatia",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"IN": "India",
	"IS": "Iceland",
	"IT": "Italy",
	"JO": "Jordan",
	"JP": "Japan",
	"KE": "Kenya",
	"KG": "Kyrgyzstan",
	"KH": "Cambodia",
	"KI": "Kiribati",
	"KR": "Korea, Republic of",
	"KZ": "Kazakhstan",
	"LB": "Lebanon",
	"LI": "Liechtenstein",
	"LK": "Sri Lanka",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"MA": "Morocco",
	"MD": "Moldova, Republic of",
	"ME": "Montenegro",
	"MG": "Madagascar",
	"MH": "Marshall Islands",
	"MK": "North Macedonia",
	"ML": "Mali",
	"MM": "Myanmar",
	"MN": "Mongolia",
	"MT": "Malta",
	"MX": "Mexico",
	"MY": "Malaysia",
	"MZ": "Mozambique",
	"NA": "Namibia",
	"NG": "Nigeria",
	"NL": "Netherlands",
	"NO": "Norway",
	"NP": "Nepal",
	"NR": "Nauru",
	"NZ": "New Zealand",
	"PE": "Peru",
	"PG": "Papua New Guinea",
	"PH": "Philippines",
	"PK": "Pakistan",
	"PL": "Poland",
	"PS": "Palestine, State of",
	"PT": "Portugal",
	"PW": "Palau",
	"PY": "Paraguay",
	"RO": "Romania",
	"RS": "Serbia",
	"RU": "Russian Federation",
	"RW": "Rwanda",
	"SA": "Saudi Arabia",
	"SB": "Solomon Islands",
	"SE": "Sweden",
	"SG": "Singapore",
	"SI": "Slovenia",
	"SK": "Slovakia",
	"SN": "Senegal",
	"TH": "Thailand",
	"TJ": "Tajikistan",
	"TN": "Tunisia",
	"TO": "Tonga",
	"TR": "Türkiye",
	"TV": "Tuvalu",
	"TW": "Taiwan, Province of China",
	"TZ": "Tanzania, United Republic of",
	"UA": "Ukraine",
	"UG": "Uganda",
	"US": "United States",
	"UY": "Uruguay",
	"UZ": "Uzbekistan",
	"VN": "Viet Nam",
	"VU": "Vanuatu",
	"WS": "Samoa",
	"XK": "Kosovo",
	"ZA": "South Africa",
	"ZM": "Zambia",
	"ZW": "Zimbabwe",
}
