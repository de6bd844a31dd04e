package pools

// DefaultKey is the fallback key of the specialty and diagnosis tables.
const DefaultKey = "default"

var DiagnosesBySpecialty = map[string][]string{
	"Family Medicine": {
		"Upper respiratory infection", "Hypertension", "Type 2 diabetes",
		"Gastroenteritis", "Anxiety disorder", "Urinary tract infection",
		"Allergic rhinitis", "Osteoarthritis", "Hyperlipidemia", "Sinusitis",
	},
	"Internal Medicine": {
		"Hypertension", "Type 2 diabetes", "Chronic obstructive pulmonary disease",
		"Congestive heart failure", "Hypothyroidism", "Pneumonia",
		"Acute kidney injury", "Anemia", "Atrial fibrillation", "Chronic kidney disease",
	},
	"Pediatrics": {
		"Acute otitis media", "Upper respiratory infection", "Pharyngitis",
		"Asthma exacerbation", "Viral gastroenteritis", "Bronchiolitis",
		"Eczema", "Attention deficit hyperactivity disorder", "Growth delay", "Allergic rhinitis",
	},
	"Cardiology": {
		"Coronary artery disease", "Heart failure with reduced ejection fraction",
		"Atrial fibrillation", "Ventricular tachycardia", "Hypertension",
		"Aortic stenosis", "Mitral valve regurgitation", "Pericarditis",
		"Cardiomyopathy", "Hyperlipidemia",
	},
	"Orthopedics": {
		"Osteoarthritis", "Rotator cuff tear", "Anterior cruciate ligament tear",
		"Lumbar disc herniation", "Carpal tunnel syndrome", "Plantar fasciitis",
		"Osteoporosis", "Tennis elbow", "Meniscus tear", "Fracture follow-up",
	},
	"Dermatology": {
		"Acne vulgaris", "Atopic dermatitis", "Psoriasis", "Seborrheic dermatitis",
		"Basal cell carcinoma", "Rosacea", "Contact dermatitis", "Urticaria",
		"Tinea pedis", "Alopecia areata",
	},
	"Neurology": {
		"Migraine", "Epilepsy", "Multiple sclerosis", "Parkinson's disease",
		"Myasthenia gravis", "Stroke follow-up", "Peripheral neuropathy",
		"Essential tremor", "Alzheimer's disease", "Tension headache",
	},
	"Psychiatry": {
		"Major depressive disorder", "Generalized anxiety disorder", "Bipolar disorder",
		"Post-traumatic stress disorder", "Attention deficit hyperactivity disorder",
		"Schizophrenia", "Obsessive-compulsive disorder", "Panic disorder",
		"Substance use disorder", "Insomnia",
	},
	DefaultKey: {
		"Routine follow-up", "Preventive health check", "Management of chronic condition",
		"Medication review", "Post-procedure check", "Ongoing care for multiple issues",
		"Health maintenance", "Consultation for new symptoms", "Second opinion",
		"Pre-surgical evaluation",
	},
}

var SymptomsByDiagnosis = map[string][]string{
	"Upper respiratory infection": {"Cough", "Nasal congestion", "Sore throat", "Fever", "Headache"},
	"Hypertension":                {"Headache", "Dizziness", "Shortness of breath", "Visual changes", "Chest pain"},
	"Type 2 diabetes":             {"Increased thirst", "Frequent urination", "Fatigue", "Blurred vision", "Slow-healing wounds"},
	"Gastroenteritis":             {"Diarrhea", "Nausea", "Vomiting", "Abdominal pain", "Fever"},
	"Anxiety disorder":            {"Restlessness", "Fatigue", "Difficulty concentrating", "Irritability", "Sleep disturbance"},
	"Urinary tract infection":     {"Painful urination", "Frequency", "Urgency", "Lower abdominal pain", "Cloudy urine"},
	"Allergic rhinitis":           {"Sneezing", "Itchy nose", "Runny nose", "Nasal congestion", "Watery eyes"},
	"Osteoarthritis":              {"Joint pain", "Joint stiffness", "Reduced range of motion", "Swelling", "Crepitus"},
	"Hyperlipidemia":              {"Generally asymptomatic", "Family history of cardiovascular disease"},
	"Sinusitis":                   {"Facial pain", "Nasal congestion", "Headache", "Post-nasal drip", "Reduced smell"},
	DefaultKey:                    {"Fatigue", "Pain", "Discomfort", "Mobility issues", "Reported symptoms during evaluation"},
}

// DiagnosesFor resolves the diagnosis pool of a doctor: specialty first,
// then department, then the default pool.
func DiagnosesFor(specialty, department string) []string {
	if d, ok := DiagnosesBySpecialty[specialty]; ok {
		return d
	}
	if d, ok := DiagnosesBySpecialty[department]; ok {
		return d
	}
	return DiagnosesBySpecialty[DefaultKey]
}

// SymptomsFor returns the symptom pool of a diagnosis, or the default pool.
func SymptomsFor(diagnosis string) []string {
	if s, ok := SymptomsByDiagnosis[diagnosis]; ok {
		return s
	}
	return SymptomsByDiagnosis[DefaultKey]
}

var AppointmentReasons = []string{
	"Annual physical examination",
	"Follow-up appointment",
	"Consultation for new symptoms",
	"Medication review",
	"Chronic condition management",
	"Lab result discussion",
	"Specialist referral",
	"Preventive care",
	"Immunization",
	"Mental health consultation",
	"Pain management",
	"Minor procedure",
	"Wellness check",
	"Skin condition evaluation",
	"Cardiovascular assessment",
	"Digestive issues",
	"Respiratory problems",
	"Joint pain evaluation",
	"Neurological assessment",
	"Pre-surgery consultation",
}

// VisitNotes are attached to completed appointments.
var VisitNotes = []string{
	"Patient reported improvement from previous treatment",
	"Patient experiencing mild symptoms",
	"Symptoms have subsided since last visit",
	"Patient reports no new symptoms",
	"Patient experiencing some side effects from medication",
	"All vitals normal, patient in good health",
	"Patient responding well to treatment plan",
	"Patient showing signs of improvement",
	"Recommended lifestyle changes for better management",
	"Discussed test results with patient",
}

var Frequencies = []string{
	"Once daily", "Twice daily", "Three times daily", "Four times daily",
	"Every morning", "Every evening", "Every 12 hours", "Every 8 hours",
	"As needed", "With meals",
}

var Durations = []string{
	"7 days", "10 days", "14 days", "30 days", "3 months", "6 months",
	"Indefinitely", "Until next appointment", "As directed",
}

// PrescriptionNotes are format strings taking the lower-cased frequency.
// The empty entry is the no-note slot.
var PrescriptionNotes = []string{
	"Take %s with food",
	"Take %s on an empty stomach",
	"Take %s with plenty of water",
	"Avoid alcohol while taking this medication",
	"May cause drowsiness",
	"Do not drive or operate machinery until you know how this medication affects you",
	"",
}

// Closing phrases of the five clinical note layouts, in layout order.
var (
	NoteClosingsPresenting = []string{"Treatment plan discussed.", "Patient education provided.", "Follow-up recommended."}
	NoteClosingsEvaluation = []string{"Responding well to current treatment.", "New treatment approach discussed.", "Monitoring for improvement."}
	NoteClosingsFollowUp   = []string{"Adjusted treatment regimen.", "Continuing current treatment plan.", "Additional testing ordered."}
	NoteClosingsConfirmed  = []string{"Patient advised on self-care measures.", "Reviewed medication adherence.", "Discussed lifestyle modifications."}
	NoteClosingsAssessment = []string{"Treatment initiated.", "Medication prescribed.", "Referral provided."}
	NoteOnsetPeriods       = []string{"several days", "about a week", "approximately two weeks", "over a month"}
)
