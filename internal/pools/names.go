// Package pools holds the curated reference tables the generators draw from.
// Nothing here has behavior beyond lookups.
package pools

// NamePool groups first names by gender with a shared surname list.
type NamePool struct {
	Male   []string
	Female []string
	Last   []string
}

var PatientFirstNames = []string{
	"Emma", "Liam", "Olivia", "Noah", "Ava", "William", "Sophia", "James",
	"Isabella", "Benjamin", "Mia", "Elijah", "Charlotte", "Lucas", "Amelia",
	"Mason", "Harper", "Ethan", "Evelyn", "Alexander", "Abigail", "Henry",
	"Emily", "Jacob", "Elizabeth", "Michael", "Sofia", "Daniel", "Avery", "Matthew",
}

var PatientLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
}

var TurkishNames = NamePool{
	Male:   []string{"Ahmet", "Mehmet", "Mustafa", "Ali", "Ibrahim", "Hasan", "Hüseyin", "Can", "Emre", "Oğuz"},
	Female: []string{"Ayşe", "Fatma", "Emine", "Hatice", "Zeynep", "Elif", "Meryem", "Özge", "Selin", "Deniz"},
	Last: []string{
		"Yılmaz", "Kaya", "Demir", "Şahin", "Çelik", "Yıldız", "Erdoğan", "Öztürk", "Aydın", "Özdemir",
		"Arslan", "Doğan", "Kılıç", "Aslan", "Çetin", "Koç", "Kurt", "Yıldırım", "Polat", "Şimşek",
	},
}

var MiddleEasternNames = NamePool{
	Male: []string{
		"Mohammed", "Ahmed", "Hassan", "Abdullah", "Samir", "Omar", "Ali", "Khalid", "Tariq", "Ziad",
		"Reza", "Amir", "Arash", "Darius", "Farhad", "Javad", "Kamran", "Mehran", "Nima", "Parsa",
	},
	Female: []string{
		"Fatima", "Aisha", "Maryam", "Layla", "Zainab", "Noor", "Huda", "Amira", "Rania", "Samira",
		"Leila", "Zahra", "Shirin", "Yasmin", "Azadeh", "Bahar", "Firouzeh", "Golnar", "Nasrin", "Parisa",
	},
	Last: []string{
		"Al-Farsi", "Al-Hashemi", "Al-Mahmoud", "Al-Sharif", "Al-Hassan", "Al-Qasim", "Al-Said", "Al-Zaidi", "Al-Rahman", "Al-Najjar",
		"Hosseini", "Ahmadi", "Mohammadi", "Rahimi", "Jafari", "Karimi", "Moradi", "Rezaei", "Mousavi", "Naseri",
	},
}

var NurseNames = NamePool{
	Female: []string{
		"Sarah", "Jessica", "Emily", "Ashley", "Amanda", "Rachel", "Megan", "Lauren",
		"Jennifer", "Melissa", "Nicole", "Michelle", "Stephanie", "Elizabeth", "Rebecca",
	},
	Male: []string{
		"Michael", "John", "David", "James", "Robert", "William", "Joseph", "Richard",
		"Daniel", "Thomas", "Christopher", "Matthew", "Anthony", "Mark", "Steven",
	},
	Last: []string{
		"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller", "Wilson",
		"Moore", "Taylor", "Anderson", "Thomas", "Jackson", "White", "Harris", "Martin",
		"Thompson", "Garcia", "Martinez", "Robinson", "Clark", "Rodriguez", "Lewis", "Lee",
		"Walker", "Hall", "Allen", "Young", "Hernandez", "King", "Wright", "Lopez", "Hill",
	},
}

var EmergencyRelations = []string{"Spouse", "Parent", "Child", "Sibling", "Friend"}

var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var PatientGenders = []string{"male", "female", "other", "prefer not to say"}

var Allergies = []string{
	"Penicillin", "Sulfa drugs", "Aspirin", "Ibuprofen", "Latex", "Peanuts",
	"Tree nuts", "Shellfish", "Eggs", "Milk", "Soy", "Wheat", "Dust mites",
	"Pet dander", "Mold", "Pollen", "Bee stings", "Contrast dye",
}

var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
