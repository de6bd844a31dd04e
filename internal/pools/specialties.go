package pools

var Specialties = []string{
	"Family Medicine", "Internal Medicine", "Pediatrics", "General Surgery",
	"Obstetrics and Gynecology", "Cardiology", "Orthopedics", "Dermatology",
	"Neurology", "Psychiatry", "Ophthalmology", "Oncology", "Endocrinology",
	"Gastroenterology", "Nephrology", "Urology", "Pulmonology", "Rheumatology",
	"Hematology", "Infectious Disease", "Allergy and Immunology", "Nuclear Medicine",
	"Plastic Surgery", "Vascular Surgery", "Neonatology", "Geriatrics",
}

// specialtyDepartments lists only specialties whose department differs from their name.
var specialtyDepartments = map[string]string{
	"General Surgery":           "Surgery",
	"Obstetrics and Gynecology": "OB/GYN",
	"Plastic Surgery":           "Surgery",
	"Vascular Surgery":          "Surgery",
	"Neonatology":               "Pediatrics",
}

// DepartmentFor returns the hospital department a doctor specialty belongs to.
func DepartmentFor(specialty string) string {
	if d, ok := specialtyDepartments[specialty]; ok {
		return d
	}
	return specialty
}

var MedicalSchools = []string{
	"Istanbul University Faculty of Medicine", "Hacettepe University Faculty of Medicine",
	"Ankara University Faculty of Medicine", "Ege University Faculty of Medicine",
	"Çukurova University Faculty of Medicine", "Marmara University Faculty of Medicine",
	"King Saud University College of Medicine", "King Abdulaziz University Faculty of Medicine",
	"Cairo University Faculty of Medicine", "Ain Shams University Faculty of Medicine",
	"American University of Beirut Faculty of Medicine", "Lebanese University Faculty of Medicine",
	"United Arab Emirates University College of Medicine", "Mohammed Bin Rashid University of Medicine",
	"University of Jordan School of Medicine", "Jordan University of Science and Technology",
	"Harvard Medical School", "Johns Hopkins School of Medicine",
	"University of Oxford Medical School", "Imperial College London School of Medicine",
}

// NursingSpecialty ties a nursing role to its department and certification.
type NursingSpecialty struct {
	Name          string
	Department    string
	Certification string
}

var NursingSpecialties = []NursingSpecialty{
	{"Registered Nurse (RN)", "General Nursing", "RN License"},
	{"Licensed Practical Nurse (LPN)", "General Nursing", "LPN License"},
	{"Certified Nursing Assistant (CNA)", "Support Care", "CNA Certification"},
	{"Nurse Practitioner (NP)", "Family Medicine", "AANP Certification"},
	{"Clinical Nurse Specialist (CNS)", "Specialized Care", "CNS Certification"},
	{"Certified Registered Nurse Anesthetist (CRNA)", "Anesthesiology", "CRNA Certification"},
	{"Intensive Care Unit (ICU) Nurse", "Intensive Care", "CCRN (Critical Care RN) Certification"},
	{"Emergency Room (ER) Nurse", "Emergency Medicine", "CEN (Certified Emergency Nurse)"},
	{"Operating Room (OR) Nurse", "Surgery", "CNOR Certification"},
	{"Pediatric Nurse", "Pediatrics", "CPN (Certified Pediatric Nurse)"},
	{"Neonatal Nurse", "Neonatal Care", "RNC-NIC (Neonatal Intensive Care)"},
	{"Obstetric (OB) Nurse", "OB/GYN", "RNC-OB Certification"},
	{"Geriatric Nurse", "Geriatrics", "GERO-BC Certification"},
	{"Oncology Nurse", "Oncology", "OCN (Oncology Certified Nurse)"},
	{"Psychiatric Nurse", "Psychiatry", "PMH-BC (Psychiatric-Mental Health)"},
	{"Home Health Nurse", "Home Health", "HCS-D (Home Care Coding Specialist-Diagnosis)"},
	{"Hospice Nurse", "Palliative Care", "CHPN (Certified Hospice and Palliative Nurse)"},
	{"Public Health Nurse", "Public Health", "PHN Certification"},
	{"School Nurse", "School Health", "NCSN (National Certified School Nurse)"},
	{"Nurse Educator", "Education", "CNE (Certified Nurse Educator)"},
	{"Nurse Manager", "Administration", "CNML (Certified Nurse Manager and Leader)"},
	{"Case Management Nurse", "Case Management", "CCM (Certified Case Manager)"},
}

var NursingDegrees = []string{
	"Associate Degree in Nursing (ADN)",
	"Bachelor of Science in Nursing (BSN)",
	"Master of Science in Nursing (MSN)",
	"Doctor of Nursing Practice (DNP)",
	"PhD in Nursing",
}

var NursingSchools = []string{
	"Johns Hopkins School of Nursing",
	"University of Pennsylvania School of Nursing",
	"Duke University School of Nursing",
	"University of Washington School of Nursing",
	"New York University Rory Meyers College of Nursing",
	"University of Michigan School of Nursing",
	"University of California, San Francisco School of Nursing",
	"Emory University Nell Hodgson Woodruff School of Nursing",
	"University of North Carolina at Chapel Hill School of Nursing",
	"University of Pittsburgh School of Nursing",
	"Columbia University School of Nursing",
	"Yale School of Nursing",
	"Vanderbilt University School of Nursing",
	"University of Illinois Chicago College of Nursing",
	"Ohio State University College of Nursing",
	"University of Texas Health Science Center at Houston School of Nursing",
	"University of Maryland School of Nursing",
	"Rush University College of Nursing",
	"Villanova University M. Louise Fitzpatrick College of Nursing",
	"Boston College Connell School of Nursing",
}

var NursingCertifications = []string{
	"Basic Life Support (BLS)",
	"Advanced Cardiac Life Support (ACLS)",
	"Pediatric Advanced Life Support (PALS)",
	"Trauma Nursing Core Course (TNCC)",
	"Emergency Nursing Pediatric Course (ENPC)",
	"Certified Emergency Nurse (CEN)",
	"Critical Care Registered Nurse (CCRN)",
	"Medical-Surgical Nursing Certification (MEDSURG-BC)",
}

var NurseShifts = []string{"Morning (7AM-3PM)", "Evening (3PM-11PM)", "Night (11PM-7AM)", "Rotating"}

var DoctorEmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "icloud.com", "doctor.com", "medmail.com"}

var NurseEmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "icloud.com", "nurse.com", "healthcare.org"}

var PatientEmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "aol.com", "icloud.com"}

var DoctorEmailPrefixes = []string{"dr", "doctor", "med", "doc"}

var NurseEmailPrefixes = []string{"nurse", "rn", "healthcare", "medical"}
