package pools

// Location is a city with the country it belongs to.
type Location struct {
	City    string
	Country string
}

const CountryTurkey = "Turkey"

var USStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

var USCities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
	"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Jacksonville",
	"Fort Worth", "Columbus", "Charlotte", "San Francisco", "Indianapolis", "Seattle",
	"Denver", "Boston", "Nashville", "Portland", "Las Vegas", "Atlanta", "Miami",
}

var USStreets = []string{
	"Main St", "Park Ave", "Oak St", "Cedar Rd", "Maple Dr", "Pine St", "Elm St",
	"Washington St", "Lake Ave", "Hill Rd", "River Rd", "Church St", "High St",
	"Sunset Blvd", "Lincoln Ave", "Ridge Rd", "Meadow Ln", "Valley View Dr",
	"Highland Ave", "Forest Dr", "Spring St", "Madison Ave", "Jefferson St",
}

// CareSettings are the workplace labels shown as a nurse's location.
var CareSettings = []string{"Hospital", "Clinic", "Medical Center", "Health Center"}

var Locations = []Location{
	{"Istanbul", CountryTurkey},
	{"Ankara", CountryTurkey},
	{"Izmir", CountryTurkey},
	{"Bursa", CountryTurkey},
	{"Antalya", CountryTurkey},
	{"Adana", CountryTurkey},
	{"Konya", CountryTurkey},
	{"Gaziantep", CountryTurkey},
	{"Mersin", CountryTurkey},
	{"Diyarbakır", CountryTurkey},
	{"Kayseri", CountryTurkey},
	{"Eskişehir", CountryTurkey},
	{"Dubai", "UAE"},
	{"Abu Dhabi", "UAE"},
	{"Riyadh", "Saudi Arabia"},
	{"Jeddah", "Saudi Arabia"},
	{"Cairo", "Egypt"},
	{"Alexandria", "Egypt"},
	{"Beirut", "Lebanon"},
	{"Amman", "Jordan"},
	{"Baghdad", "Iraq"},
	{"Tehran", "Iran"},
	{"Doha", "Qatar"},
	{"Kuwait City", "Kuwait"},
}

// LocationsIn returns the locations of one country.
func LocationsIn(country string) []Location {
	var out []Location
	for _, l := range Locations {
		if l.Country == country {
			out = append(out, l)
		}
	}
	return out
}

var Hospitals = map[string][]string{
	"Turkey": {
		"Acıbadem Hospital", "Memorial Hospital", "Medicana International Hospital",
		"Medical Park Hospital", "Liv Hospital", "Amerikan Hospital", "Florence Nightingale Hospital",
		"Bayındır Hospital", "Güven Hospital", "Başkent University Hospital",
	},
	"UAE": {
		"Cleveland Clinic Abu Dhabi", "Burjeel Hospital", "Zulekha Hospital",
		"American Hospital Dubai", "Saudi German Hospital",
	},
	"Saudi Arabia": {
		"King Faisal Specialist Hospital", "Dr. Sulaiman Al Habib Hospital",
		"King Fahad Medical City", "Saudi German Hospital",
	},
	"Egypt": {
		"As-Salam International Hospital", "Dar Al Fouad Hospital",
		"Cleopatra Hospital", "El Katib Hospital",
	},
	"Lebanon": {
		"American University of Beirut Medical Center", "Clemenceau Medical Center",
		"Hotel Dieu de France Hospital", "Rizk Hospital",
	},
	"Jordan": {
		"Jordan University Hospital", "King Abdullah University Hospital",
		"Al-Khalidi Hospital", "Arab Medical Center",
	},
	"Iraq":   {"Baghdad Medical City", "Ibn Sina Hospital", "Al-Yarmouk Teaching Hospital"},
	"Iran":   {"Tehran Heart Center", "Shahid Beheshti Medical Center", "Milad Hospital"},
	"Qatar":  {"Hamad Medical Corporation", "Sidra Medicine", "Al Ahli Hospital"},
	"Kuwait": {"Kuwait Hospital", "Al-Sabah Hospital", "Mubarak Al-Kabeer Hospital"},
}

var DialCodes = map[string]string{
	"Turkey":       "+90",
	"UAE":          "+971",
	"Saudi Arabia": "+966",
	"Egypt":        "+20",
	"Lebanon":      "+961",
	"Jordan":       "+962",
	"Iraq":         "+964",
	"Iran":         "+98",
	"Qatar":        "+974",
	"Kuwait":       "+965",
}

// GulfStates share mobile number and address conventions.
var GulfStates = map[string]bool{
	"UAE":          true,
	"Saudi Arabia": true,
	"Qatar":        true,
	"Kuwait":       true,
}

var StreetTypes = map[string][]string{
	"Turkey":       {"Caddesi", "Sokak", "Bulvarı", "Mahallesi"},
	"UAE":          {"Street", "Road", "Avenue"},
	"Saudi Arabia": {"Street", "Road", "Way"},
	"Egypt":        {"Street", "Avenue", "Square"},
	"Lebanon":      {"Street", "Avenue", "Boulevard"},
	"Jordan":       {"Street", "Road", "Avenue"},
	"Iraq":         {"Street", "Road", "Square"},
	"Iran":         {"Street", "Avenue", "Boulevard"},
	"Qatar":        {"Street", "Road", "Zone"},
	"Kuwait":       {"Street", "Road", "Block"},
}

var DefaultStreetTypes = []string{"Street", "Road", "Avenue"}

var TurkishStreets = []string{
	"Atatürk", "Cumhuriyet", "İstiklal", "Millet", "Bağdat", "Istiklal",
	"İnönü", "Vatan", "Gazi", "Fatih", "Fevzi Çakmak", "Kızılay",
}

var ArabicStreets = []string{
	"Al Wahda", "Al Salam", "Al Quds", "Al Nahda", "Al Jazeera", "Al Noor",
	"Mohammed", "Sultan Qaboos", "King Abdullah", "Sheikh Zayed", "Hamdan",
}

var TurkishDistricts = []string{
	"Beyoğlu", "Kadıköy", "Şişli", "Beşiktaş", "Üsküdar", "Bahçelievler", "Bağcılar", "Bakırköy", "Fatih", "Gaziosmanpaşa",
}

var GulfDistricts = []string{
	"Al Nahyan", "Al Bateen", "Al Manhal", "Al Mushrif", "Al Khalidiya", "Al Danah", "Al Markaziyah",
}

// LocalLanguages maps a country to the language spoken besides English.
var LocalLanguages = map[string]string{
	"Turkey":       "Turkish",
	"UAE":          "Arabic",
	"Saudi Arabia": "Arabic",
	"Egypt":        "Arabic",
	"Lebanon":      "Arabic",
	"Jordan":       "Arabic",
	"Iraq":         "Arabic",
	"Iran":         "Persian",
}

var DoctorExtraLanguages = []string{"French", "German", "Spanish", "Russian", "Italian"}

var NurseExtraLanguages = []string{"Spanish", "French", "Chinese", "Tagalog", "Vietnamese", "Korean", "Russian", "Arabic"}
