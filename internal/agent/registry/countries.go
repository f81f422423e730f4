package registry

// iso3ToName is the canonical ISO3 → display name table. Loaded once into a
// Registry at startup; never mutated afterwards.
var iso3ToName = map[string]string{
	"AFG": "Afghanistan", "ALB": "Albania", "DZA": "Algeria", "AND": "Andorra",
	"AGO": "Angola", "ATG": "Antigua and Barbuda", "ARG": "Argentina", "ARM": "Armenia",
	"AUS": "Australia", "AUT": "Austria", "AZE": "Azerbaijan", "BHS": "Bahamas",
	"BHR": "Bahrain", "BGD": "Bangladesh", "BRB": "Barbados", "BLR": "Belarus",
	"BEL": "Belgium", "BLZ": "Belize", "BEN": "Benin", "BTN": "Bhutan",
	"BOL": "Bolivia", "BIH": "Bosnia and Herzegovina", "BWA": "Botswana", "BRA": "Brazil",
	"BRN": "Brunei", "BGR": "Bulgaria", "BFA": "Burkina Faso", "BDI": "Burundi",
	"KHM": "Cambodia", "CMR": "Cameroon", "CAN": "Canada", "CPV": "Cape Verde",
	"CAF": "Central African Republic", "TCD": "Chad", "CHL": "Chile", "CHN": "China",
	"COL": "Colombia", "COM": "Comoros", "COG": "Congo", "COD": "DR Congo",
	"CRI": "Costa Rica", "CIV": "Ivory Coast", "HRV": "Croatia", "CUB": "Cuba",
	"CYP": "Cyprus", "CZE": "Czech Republic", "DNK": "Denmark", "DJI": "Djibouti",
	"DMA": "Dominica", "DOM": "Dominican Republic", "ECU": "Ecuador", "EGY": "Egypt",
	"SLV": "El Salvador", "GNQ": "Equatorial Guinea", "ERI": "Eritrea", "EST": "Estonia",
	"SWZ": "Eswatini", "ETH": "Ethiopia", "FJI": "Fiji", "FIN": "Finland",
	"FRA": "France", "GAB": "Gabon", "GMB": "Gambia", "GEO": "Georgia",
	"DEU": "Germany", "GHA": "Ghana", "GRC": "Greece", "GRD": "Grenada",
	"GTM": "Guatemala", "GIN": "Guinea", "GNB": "Guinea-Bissau", "GUY": "Guyana",
	"HTI": "Haiti", "HND": "Honduras", "HKG": "Hong Kong", "HUN": "Hungary",
	"ISL": "Iceland", "IND": "India", "IDN": "Indonesia", "IRN": "Iran",
	"IRQ": "Iraq", "IRL": "Ireland", "ISR": "Israel", "ITA": "Italy",
	"JAM": "Jamaica", "JPN": "Japan", "JOR": "Jordan", "KAZ": "Kazakhstan",
	"KEN": "Kenya", "KIR": "Kiribati", "XKX": "Kosovo", "KWT": "Kuwait",
	"KGZ": "Kyrgyzstan", "LAO": "Laos", "LVA": "Latvia", "LBN": "Lebanon",
	"LSO": "Lesotho", "LBR": "Liberia", "LBY": "Libya", "LIE": "Liechtenstein",
	"LTU": "Lithuania", "LUX": "Luxembourg", "MAC": "Macau", "MDG": "Madagascar",
	"MWI": "Malawi", "MYS": "Malaysia", "MDV": "Maldives", "MLI": "Mali",
	"MLT": "Malta", "MHL": "Marshall Islands", "MRT": "Mauritania", "MUS": "Mauritius",
	"MEX": "Mexico", "FSM": "Micronesia", "MDA": "Moldova", "MCO": "Monaco",
	"MNG": "Mongolia", "MNE": "Montenegro", "MAR": "Morocco", "MOZ": "Mozambique",
	"MMR": "Myanmar", "NAM": "Namibia", "NRU": "Nauru", "NPL": "Nepal",
	"NLD": "Netherlands", "NZL": "New Zealand", "NIC": "Nicaragua", "NER": "Niger",
	"NGA": "Nigeria", "PRK": "North Korea", "MKD": "North Macedonia", "NOR": "Norway",
	"OMN": "Oman", "PAK": "Pakistan", "PLW": "Palau", "PSE": "Palestine",
	"PAN": "Panama", "PNG": "Papua New Guinea", "PRY": "Paraguay", "PER": "Peru",
	"PHL": "Philippines", "POL": "Poland", "PRT": "Portugal", "QAT": "Qatar",
	"ROU": "Romania", "RUS": "Russia", "RWA": "Rwanda", "KNA": "Saint Kitts and Nevis",
	"LCA": "Saint Lucia", "WSM": "Samoa", "SMR": "San Marino", "STP": "São Tomé and Príncipe",
	"SAU": "Saudi Arabia", "SEN": "Senegal", "SRB": "Serbia", "SYC": "Seychelles",
	"SLE": "Sierra Leone", "SGP": "Singapore", "SVK": "Slovakia", "SVN": "Slovenia",
	"SLB": "Solomon Islands", "SOM": "Somalia", "ZAF": "South Africa", "KOR": "South Korea",
	"SSD": "South Sudan", "ESP": "Spain", "LKA": "Sri Lanka", "VCT": "Saint Vincent and the Grenadines",
	"SDN": "Sudan", "SUR": "Suriname", "SWE": "Sweden", "CHE": "Switzerland",
	"SYR": "Syria", "TWN": "Taiwan", "TJK": "Tajikistan", "TZA": "Tanzania",
	"THA": "Thailand", "TLS": "Timor-Leste", "TGO": "Togo", "TON": "Tonga",
	"TTO": "Trinidad and Tobago", "TUN": "Tunisia", "TKM": "Turkmenistan", "TUV": "Tuvalu",
	"TUR": "Turkey", "UGA": "Uganda", "UKR": "Ukraine", "ARE": "United Arab Emirates",
	"GBR": "United Kingdom", "USA": "United States", "URY": "Uruguay", "UZB": "Uzbekistan",
	"VUT": "Vanuatu", "VAT": "Vatican City", "VEN": "Venezuela", "VNM": "Vietnam",
	"YEM": "Yemen", "ZMB": "Zambia", "ZWE": "Zimbabwe",
}

// countryAliases maps informal names, abbreviations, and demonyms to ISO3.
// All keys lowercase. Place aliases ("dubai") resolve to a country but are
// not demonyms; the demonym set below is what decides nationality form.
var countryAliases = map[string]string{
	// UK variations
	"uk": "GBR", "britain": "GBR", "england": "GBR", "british": "GBR",
	"great britain": "GBR", "united kingdom": "GBR",

	// US variations
	"us": "USA", "usa": "USA", "america": "USA", "american": "USA",
	"americans": "USA", "united states": "USA", "united states of america": "USA",

	// UAE variations
	"uae": "ARE", "dubai": "ARE", "abu dhabi": "ARE", "emirates": "ARE",
	"united arab emirates": "ARE",

	// Other common aliases
	"south korea": "KOR", "korea": "KOR", "korean": "KOR", "koreans": "KOR",
	"czech republic": "CZE", "czechia": "CZE",
	"holland": "NLD", "dutch": "NLD",
	"russia": "RUS", "russian": "RUS", "russians": "RUS",

	// Nationality forms (demonyms), singular and plural
	"pakistani": "PAK", "pakistanis": "PAK",
	"indian": "IND", "indians": "IND",
	"chinese": "CHN",
	"japanese": "JPN",
	"german": "DEU", "germans": "DEU",
	"french": "FRA",
	"italian": "ITA", "italians": "ITA",
	"spanish": "ESP",
	"brazilian": "BRA", "brazilians": "BRA",
	"canadian": "CAN", "canadians": "CAN",
	"australian": "AUS", "australians": "AUS",
	"mexican": "MEX", "mexicans": "MEX",
	"turkish": "TUR",
	"egyptian": "EGY", "egyptians": "EGY",
	"saudi": "SAU", "saudis": "SAU",
	"emirati": "ARE", "emiratis": "ARE",
	"singaporean": "SGP", "singaporeans": "SGP",
	"malaysian": "MYS", "malaysians": "MYS",
	"thai": "THA", "thais": "THA",
	"filipino": "PHL", "filipinos": "PHL",
	"indonesian": "IDN", "indonesians": "IDN",
	"vietnamese": "VNM",
	"bangladeshi": "BGD", "bangladeshis": "BGD",
	"sri lankan": "LKA", "sri lankans": "LKA",
	"nepali": "NPL", "nepalis": "NPL",
	"afghan": "AFG", "afghans": "AFG",
	"iranian": "IRN", "iranians": "IRN",
	"iraqi": "IRQ", "iraqis": "IRQ",
	"syrian": "SYR", "syrians": "SYR",
	"lebanese": "LBN",
	"jordanian": "JOR", "jordanians": "JOR",
	"qatari": "QAT", "qataris": "QAT",
	"kuwaiti": "KWT", "kuwaitis": "KWT",
	"omani": "OMN", "omanis": "OMN",
	"bahraini": "BHR", "bahrainis": "BHR",
	"yemeni": "YEM", "yemenis": "YEM",
	"nigerian": "NGA", "nigerians": "NGA",
	"south african": "ZAF", "south africans": "ZAF",
	"kenyan": "KEN", "kenyans": "KEN",
	"ethiopian": "ETH", "ethiopians": "ETH",
	"moroccan": "MAR", "moroccans": "MAR",
	"algerian": "DZA", "algerians": "DZA",
	"tunisian": "TUN", "tunisians": "TUN",
	"sudanese": "SDN",
	"brits": "GBR",
}

// knownDemonyms is the closed set of surface forms that are nationality words
// (people, not places). "dubai" and "mali" resolve to countries but are not
// in this set, so a lone mention of them stays ambiguous.
var knownDemonyms = map[string]struct{}{
	"pakistani": {}, "pakistanis": {}, "indian": {}, "indians": {},
	"chinese": {}, "japanese": {},
	"german": {}, "germans": {}, "french": {}, "italian": {}, "italians": {},
	"spanish": {},
	"brazilian": {}, "brazilians": {}, "canadian": {}, "canadians": {},
	"australian": {}, "australians": {},
	"mexican": {}, "mexicans": {}, "american": {}, "americans": {},
	"british": {}, "brits": {},
	"turkish": {}, "egyptian": {}, "egyptians": {}, "saudi": {}, "saudis": {},
	"emirati": {}, "emiratis": {}, "singaporean": {}, "singaporeans": {},
	"malaysian": {}, "malaysians": {}, "thai": {}, "thais": {},
	"filipino": {}, "filipinos": {},
	"indonesian": {}, "indonesians": {}, "vietnamese": {},
	"bangladeshi": {}, "bangladeshis": {},
	"sri lankan": {}, "sri lankans": {}, "nepali": {}, "nepalis": {},
	"afghan": {}, "afghans": {},
	"iranian": {}, "iranians": {}, "iraqi": {}, "iraqis": {},
	"syrian": {}, "syrians": {},
	"lebanese": {}, "jordanian": {}, "jordanians": {}, "qatari": {}, "qataris": {},
	"kuwaiti": {}, "kuwaitis": {}, "omani": {}, "omanis": {},
	"bahraini": {}, "bahrainis": {},
	"yemeni": {}, "yemenis": {}, "nigerian": {}, "nigerians": {},
	"south african": {}, "south africans": {},
	"kenyan": {}, "kenyans": {}, "ethiopian": {}, "ethiopians": {},
	"moroccan": {}, "moroccans": {},
	"algerian": {}, "algerians": {}, "tunisian": {}, "tunisians": {},
	"sudanese": {},
	"russian": {}, "russians": {}, "korean": {}, "koreans": {}, "dutch": {},
}
