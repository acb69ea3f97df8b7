package country

// ISO-3166 reference data, current as of authoring. Pure data; Lookup
// indexes it once at init and nothing mutates it afterwards.
var countries = []Country{
	{"Afghanistan", "AF", "AFG", "AFN"},
	{"Åland Islands", "AX", "ALA", "EUR"},
	{"Albania", "AL", "ALB", "ALL"},
	{"Algeria", "DZ", "DZA", "DZD"},
	{"American Samoa", "AS", "ASM", "USD"},
	{"Andorra", "AD", "AND", "EUR"},
	{"Angola", "AO", "AGO", "AOA"},
	{"Anguilla", "AI", "AIA", "XCD"},
	{"Antarctica", "AQ", "ATA", "USD"},
	{"Antigua and Barbuda", "AG", "ATG", "XCD"},
	{"Argentina", "AR", "ARG", "ARS"},
	{"Armenia", "AM", "ARM", "AMD"},
	{"Aruba", "AW", "ABW", "AWG"},
	{"Australia", "AU", "AUS", "AUD"},
	{"Austria", "AT", "AUT", "EUR"},
	{"Azerbaijan", "AZ", "AZE", "AZN"},
	{"Bahamas", "BS", "BHS", "BSD"},
	{"Bahrain", "BH", "BHR", "BHD"},
	{"Bangladesh", "BD", "BGD", "BDT"},
	{"Barbados", "BB", "BRB", "BBD"},
	{"Belarus", "BY", "BLR", "BYN"},
	{"Belgium", "BE", "BEL", "EUR"},
	{"Belize", "BZ", "BLZ", "BZD"},
	{"Benin", "BJ", "BEN", "XOF"},
	{"Bermuda", "BM", "BMU", "BMD"},
	{"Bhutan", "BT", "BTN", "BTN"},
	{"Bolivia", "BO", "BOL", "BOB"},
	{"Bonaire, Sint Eustatius and Saba", "BQ", "BES", "USD"},
	{"Bosnia and Herzegovina", "BA", "BIH", "BAM"},
	{"Botswana", "BW", "BWA", "BWP"},
	{"Bouvet Island", "BV", "BVT", "NOK"},
	{"Brazil", "BR", "BRA", "BRL"},
	{"British Indian Ocean Territory", "IO", "IOT", "USD"},
	{"Brunei Darussalam", "BN", "BRN", "BND"},
	{"Bulgaria", "BG", "BGR", "BGN"},
	{"Burkina Faso", "BF", "BFA", "XOF"},
	{"Burundi", "BI", "BDI", "BIF"},
	{"Cabo Verde", "CV", "CPV", "CVE"},
	{"Cambodia", "KH", "KHM", "KHR"},
	{"Cameroon", "CM", "CMR", "XAF"},
	{"Canada", "CA", "CAN", "CAD"},
	{"Cayman Islands", "KY", "CYM", "KYD"},
	{"Central African Republic", "CF", "CAF", "XAF"},
	{"Chad", "TD", "TCD", "XAF"},
	{"Chile", "CL", "CHL", "CLP"},
	{"China", "CN", "CHN", "CNY"},
	{"Christmas Island", "CX", "CXR", "AUD"},
	{"Cocos (Keeling) Islands", "CC", "CCK", "AUD"},
	{"Colombia", "CO", "COL", "COP"},
	{"Comoros", "KM", "COM", "KMF"},
	{"Congo", "CG", "COG", "XAF"},
	{"Congo, Democratic Republic of the", "CD", "COD", "CDF"},
	{"Cook Islands", "CK", "COK", "NZD"},
	{"Costa Rica", "CR", "CRI", "CRC"},
	{"Côte d'Ivoire", "CI", "CIV", "XOF"},
	{"Croatia", "HR", "HRV", "EUR"},
	{"Cuba", "CU", "CUB", "CUP"},
	{"Curaçao", "CW", "CUW", "ANG"},
	{"Cyprus", "CY", "CYP", "EUR"},
	{"Czechia", "CZ", "CZE", "CZK"},
	{"Denmark", "DK", "DNK", "DKK"},
	{"Djibouti", "DJ", "DJI", "DJF"},
	{"Dominica", "DM", "DMA", "XCD"},
	{"Dominican Republic", "DO", "DOM", "DOP"},
	{"Ecuador", "EC", "ECU", "USD"},
	{"Egypt", "EG", "EGY", "EGP"},
	{"El Salvador", "SV", "SLV", "USD"},
	{"Equatorial Guinea", "GQ", "GNQ", "XAF"},
	{"Eritrea", "ER", "ERI", "ERN"},
	{"Estonia", "EE", "EST", "EUR"},
	{"Eswatini", "SZ", "SWZ", "SZL"},
	{"Ethiopia", "ET", "ETH", "ETB"},
	{"Falkland Islands (Malvinas)", "FK", "FLK", "FKP"},
	{"Faroe Islands", "FO", "FRO", "DKK"},
	{"Fiji", "FJ", "FJI", "FJD"},
	{"Finland", "FI", "FIN", "EUR"},
	{"France", "FR", "FRA", "EUR"},
	{"French Guiana", "GF", "GUF", "EUR"},
	{"French Polynesia", "PF", "PYF", "XPF"},
	{"French Southern Territories", "TF", "ATF", "EUR"},
	{"Gabon", "GA", "GAB", "XAF"},
	{"Gambia", "GM", "GMB", "GMD"},
	{"Georgia", "GE", "GEO", "GEL"},
	{"Germany", "DE", "DEU", "EUR"},
	{"Ghana", "GH", "GHA", "GHS"},
	{"Gibraltar", "GI", "GIB", "GIP"},
	{"Greece", "GR", "GRC", "EUR"},
	{"Greenland", "GL", "GRL", "DKK"},
	{"Grenada", "GD", "GRD", "XCD"},
	{"Guadeloupe", "GP", "GLP", "EUR"},
	{"Guam", "GU", "GUM", "USD"},
	{"Guatemala", "GT", "GTM", "GTQ"},
	{"Guernsey", "GG", "GGY", "GBP"},
	{"Guinea", "GN", "GIN", "GNF"},
	{"Guinea-Bissau", "GW", "GNB", "XOF"},
	{"Guyana", "GY", "GUY", "GYD"},
	{"Haiti", "HT", "HTI", "HTG"},
	{"Heard Island and McDonald Islands", "HM", "HMD", "AUD"},
	{"Holy See", "VA", "VAT", "EUR"},
	{"Honduras", "HN", "HND", "HNL"},
	{"Hong Kong", "HK", "HKG", "HKD"},
	{"Hungary", "HU", "HUN", "HUF"},
	{"Iceland", "IS", "ISL", "ISK"},
	{"India", "IN", "IND", "INR"},
	{"Indonesia", "ID", "IDN", "IDR"},
	{"Iran, Islamic Republic of", "IR", "IRN", "IRR"},
	{"Iraq", "IQ", "IRQ", "IQD"},
	{"Ireland", "IE", "IRL", "EUR"},
	{"Isle of Man", "IM", "IMN", "GBP"},
	{"Israel", "IL", "ISR", "ILS"},
	{"Italy", "IT", "ITA", "EUR"},
	{"Jamaica", "JM", "JAM", "JMD"},
	{"Japan", "JP", "JPN", "JPY"},
	{"Jersey", "JE", "JEY", "GBP"},
	{"Jordan", "JO", "JOR", "JOD"},
	{"Kazakhstan", "KZ", "KAZ", "KZT"},
	{"Kenya", "KE", "KEN", "KES"},
	{"Kiribati", "KI", "KIR", "AUD"},
	{"Korea, Democratic People's Republic of", "KP", "PRK", "KPW"},
	{"Korea, Republic of", "KR", "KOR", "KRW"},
	{"Kuwait", "KW", "KWT", "KWD"},
	{"Kyrgyzstan", "KG", "KGZ", "KGS"},
	{"Lao People's Democratic Republic", "LA", "LAO", "LAK"},
	{"Latvia", "LV", "LVA", "EUR"},
	{"Lebanon", "LB", "LBN", "LBP"},
	{"Lesotho", "LS", "LSO", "LSL"},
	{"Liberia", "LR", "LBR", "LRD"},
	{"Libya", "LY", "LBY", "LYD"},
	{"Liechtenstein", "LI", "LIE", "CHF"},
	{"Lithuania", "LT", "LTU", "EUR"},
	{"Luxembourg", "LU", "LUX", "EUR"},
	{"Macao", "MO", "MAC", "MOP"},
	{"Madagascar", "MG", "MDG", "MGA"},
	{"Malawi", "MW", "MWI", "MWK"},
	{"Malaysia", "MY", "MYS", "MYR"},
	{"Maldives", "MV", "MDV", "MVR"},
	{"Mali", "ML", "MLI", "XOF"},
	{"Malta", "MT", "MLT", "EUR"},
	{"Marshall Islands", "MH", "MHL", "USD"},
	{"Martinique", "MQ", "MTQ", "EUR"},
	{"Mauritania", "MR", "MRT", "MRU"},
	{"Mauritius", "MU", "MUS", "MUR"},
	{"Mayotte", "YT", "MYT", "EUR"},
	{"Mexico", "MX", "MEX", "MXN"},
	{"Micronesia, Federated States of", "FM", "FSM", "USD"},
	{"Moldova, Republic of", "MD", "MDA", "MDL"},
	{"Monaco", "MC", "MCO", "EUR"},
	{"Mongolia", "MN", "MNG", "MNT"},
	{"Montenegro", "ME", "MNE", "EUR"},
	{"Montserrat", "MS", "MSR", "XCD"},
	{"Morocco", "MA", "MAR", "MAD"},
	{"Mozambique", "MZ", "MOZ", "MZN"},
	{"Myanmar", "MM", "MMR", "MMK"},
	{"Namibia", "NA", "NAM", "NAD"},
	{"Nauru", "NR", "NRU", "AUD"},
	{"Nepal", "NP", "NPL", "NPR"},
	{"Netherlands", "NL", "NLD", "EUR"},
	{"New Caledonia", "NC", "NCL", "XPF"},
	{"New Zealand", "NZ", "NZL", "NZD"},
	{"Nicaragua", "NI", "NIC", "NIO"},
	{"Niger", "NE", "NER", "XOF"},
	{"Nigeria", "NG", "NGA", "NGN"},
	{"Niue", "NU", "NIU", "NZD"},
	{"Norfolk Island", "NF", "NFK", "AUD"},
	{"North Macedonia", "MK", "MKD", "MKD"},
	{"Northern Mariana Islands", "MP", "MNP", "USD"},
	{"Norway", "NO", "NOR", "NOK"},
	{"Oman", "OM", "OMN", "OMR"},
	{"Pakistan", "PK", "PAK", "PKR"},
	{"Palau", "PW", "PLW", "USD"},
	{"Palestine, State of", "PS", "PSE", "ILS"},
	{"Panama", "PA", "PAN", "PAB"},
	{"Papua New Guinea", "PG", "PNG", "PGK"},
	{"Paraguay", "PY", "PRY", "PYG"},
	{"Peru", "PE", "PER", "PEN"},
	{"Philippines", "PH", "PHL", "PHP"},
	{"Pitcairn", "PN", "PCN", "NZD"},
	{"Poland", "PL", "POL", "PLN"},
	{"Portugal", "PT", "PRT", "EUR"},
	{"Puerto Rico", "PR", "PRI", "USD"},
	{"Qatar", "QA", "QAT", "QAR"},
	{"Réunion", "RE", "REU", "EUR"},
	{"Romania", "RO", "ROU", "RON"},
	{"Russian Federation", "RU", "RUS", "RUB"},
	{"Rwanda", "RW", "RWA", "RWF"},
	{"Saint Barthélemy", "BL", "BLM", "EUR"},
	{"Saint Helena, Ascension and Tristan da Cunha", "SH", "SHN", "SHP"},
	{"Saint Kitts and Nevis", "KN", "KNA", "XCD"},
	{"Saint Lucia", "LC", "LCA", "XCD"},
	{"Saint Martin (French part)", "MF", "MAF", "EUR"},
	{"Saint Pierre and Miquelon", "PM", "SPM", "EUR"},
	{"Saint Vincent and the Grenadines", "VC", "VCT", "XCD"},
	{"Samoa", "WS", "WSM", "WST"},
	{"San Marino", "SM", "SMR", "EUR"},
	{"Sao Tome and Principe", "ST", "STP", "STN"},
	{"Saudi Arabia", "SA", "SAU", "SAR"},
	{"Senegal", "SN", "SEN", "XOF"},
	{"Serbia", "RS", "SRB", "RSD"},
	{"Seychelles", "SC", "SYC", "SCR"},
	{"Sierra Leone", "SL", "SLE", "SLL"},
	{"Singapore", "SG", "SGP", "SGD"},
	{"Sint Maarten (Dutch part)", "SX", "SXM", "ANG"},
	{"Slovakia", "SK", "SVK", "EUR"},
	{"Slovenia", "SI", "SVN", "EUR"},
	{"Solomon Islands", "SB", "SLB", "SBD"},
	{"Somalia", "SO", "SOM", "SOS"},
	{"South Africa", "ZA", "ZAF", "ZAR"},
	{"South Georgia and the South Sandwich Islands", "GS", "SGS", "GBP"},
	{"South Sudan", "SS", "SSD", "SSP"},
	{"Spain", "ES", "ESP", "EUR"},
	{"Sri Lanka", "LK", "LKA", "LKR"},
	{"Sudan", "SD", "SDN", "SDG"},
	{"Suriname", "SR", "SUR", "SRD"},
	{"Svalbard and Jan Mayen", "SJ", "SJM", "NOK"},
	{"Sweden", "SE", "SWE", "SEK"},
	{"Switzerland", "CH", "CHE", "CHF"},
	{"Syrian Arab Republic", "SY", "SYR", "SYP"},
	{"Taiwan, Province of China", "TW", "TWN", "TWD"},
	{"Tajikistan", "TJ", "TJK", "TJS"},
	{"Tanzania, United Republic of", "TZ", "TZA", "TZS"},
	{"Thailand", "TH", "THA", "THB"},
	{"Timor-Leste", "TL", "TLS", "USD"},
	{"Togo", "TG", "TGO", "XOF"},
	{"Tokelau", "TK", "TKL", "NZD"},
	{"Tonga", "TO", "TON", "TOP"},
	{"Trinidad and Tobago", "TT", "TTO", "TTD"},
	{"Tunisia", "TN", "TUN", "TND"},
	{"Türkiye", "TR", "TUR", "TRY"},
	{"Turkmenistan", "TM", "TKM", "TMT"},
	{"Turks and Caicos Islands", "TC", "TCA", "USD"},
	{"Tuvalu", "TV", "TUV", "AUD"},
	{"Uganda", "UG", "UGA", "UGX"},
	{"Ukraine", "UA", "UKR", "UAH"},
	{"United Arab Emirates", "AE", "ARE", "AED"},
	{"United Kingdom", "GB", "GBR", "GBP"},
	{"United States", "US", "USA", "USD"},
	{"United States Minor Outlying Islands", "UM", "UMI", "USD"},
	{"Uruguay", "UY", "URY", "UYU"},
	{"Uzbekistan", "UZ", "UZB", "UZS"},
	{"Vanuatu", "VU", "VUT", "VUV"},
	{"Venezuela, Bolivarian Republic of", "VE", "VEN", "VES"},
	{"Viet Nam", "VN", "VNM", "VND"},
	{"Virgin Islands, British", "VG", "VGB", "USD"},
	{"Virgin Islands, U.S.", "VI", "VIR", "USD"},
	{"Wallis and Futuna", "WF", "WLF", "XPF"},
	{"Western Sahara", "EH", "ESH", "MAD"},
	{"Yemen", "YE", "YEM", "YER"},
	{"Zambia", "ZM", "ZMB", "ZMW"},
	{"Zimbabwe", "ZW", "ZWE", "ZWL"},
}
