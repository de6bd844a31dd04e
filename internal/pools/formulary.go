package pools

import "github.com/jwalitptl/healthbridge-seeder/internal/model"

func med(name, description, form, strength, manufacturer string, warnings, sideEffects []string) model.Medication {
	return model.Medication{
		Name:         name,
		Description:  description,
		DosageForm:   form,
		Strength:     strength,
		Manufacturer: manufacturer,
		Warnings:     warnings,
		SideEffects:  sideEffects,
	}
}

// Formulary returns a fresh copy of the catalog inserted by the medications command.
func Formulary() []model.Medication {
	return []model.Medication{
		med("Escitalopram", "Selective serotonin reuptake inhibitor (SSRI) used to treat depression and anxiety disorders",
			"Tablet", "5mg, 10mg, 20mg", "Forest Laboratories",
			[]string{"May cause suicidal thoughts in young adults", "Do not use with MAO inhibitors", "May cause withdrawal symptoms if stopped abruptly"},
			[]string{"Nausea", "Insomnia", "Drowsiness", "Sexual dysfunction", "Dry mouth"}),
		med("Rosuvastatin", "Statin medication used to lower cholesterol levels and prevent cardiovascular disease",
			"Tablet", "5mg, 10mg, 20mg, 40mg", "AstraZeneca",
			[]string{"May cause muscle damage", "Avoid grapefruit juice", "May affect liver function"},
			[]string{"Muscle pain", "Headache", "Nausea", "Elevated liver enzymes"}),
		med("Montelukast", "Leukotriene receptor antagonist used to treat asthma and seasonal allergies",
			"Tablet, Chewable tablet", "4mg, 5mg, 10mg", "Merck",
			[]string{"May cause psychological reactions", "Not for acute asthma attacks", "May cause suicidal thoughts"},
			[]string{"Headache", "Nausea", "Respiratory infection", "Behavioral changes"}),
		med("Pantoprazole", "Proton pump inhibitor used to treat acid reflux, ulcers, and other gastric conditions",
			"Tablet, Injection", "20mg, 40mg", "Pfizer",
			[]string{"Long-term use may increase risk of bone fractures", "May decrease magnesium levels"},
			[]string{"Headache", "Diarrhea", "Nausea", "Abdominal pain"}),
		med("Duloxetine", "Serotonin-norepinephrine reuptake inhibitor (SNRI) used to treat depression, anxiety, and chronic pain",
			"Delayed-release capsule", "20mg, 30mg, 60mg", "Eli Lilly",
			[]string{"May increase suicidal thoughts", "Do not use with MAO inhibitors", "May cause liver damage"},
			[]string{"Nausea", "Dry mouth", "Constipation", "Dizziness", "Fatigue"}),
		med("Venlafaxine", "Serotonin-norepinephrine reuptake inhibitor (SNRI) used to treat depression and anxiety disorders",
			"Extended-release capsule, Tablet", "37.5mg, 75mg, 150mg, 225mg", "Wyeth",
			[]string{"May increase blood pressure", "May cause withdrawal symptoms", "May cause suicidal thoughts"},
			[]string{"Nausea", "Headache", "Dry mouth", "Dizziness", "Insomnia"}),
		med("Clopidogrel", "Antiplatelet drug used to prevent blood clots in patients with heart disease or stroke",
			"Tablet", "75mg, 300mg", "Sanofi-Aventis",
			[]string{"May increase bleeding risk", "Genetic variations may affect effectiveness", "Interactions with proton pump inhibitors"},
			[]string{"Bleeding", "Bruising", "Abdominal pain", "Headache"}),
		med("Candesartan", "Angiotensin II receptor blocker used to treat hypertension and heart failure",
			"Tablet", "4mg, 8mg, 16mg, 32mg", "AstraZeneca",
			[]string{"May cause birth defects", "May cause kidney problems", "Avoid potassium supplements"},
			[]string{"Dizziness", "Back pain", "Upper respiratory infection", "Headache"}),
		med("Azithromycin", "Macrolide antibiotic used to treat various bacterial infections",
			"Tablet, Suspension", "250mg, 500mg, 600mg", "Pfizer",
			[]string{"May cause heart rhythm abnormalities", "May cause liver damage", "May interact with other medications"},
			[]string{"Nausea", "Diarrhea", "Abdominal pain", "Headache"}),
		med("Trazodone", "Serotonin antagonist and reuptake inhibitor used to treat depression and insomnia",
			"Tablet", "50mg, 100mg, 150mg, 300mg", "Various manufacturers",
			[]string{"May cause priapism", "May cause orthostatic hypotension", "May cause sedation"},
			[]string{"Drowsiness", "Dizziness", "Dry mouth", "Blurred vision", "Headache"}),
		med("Bupropion", "Antidepressant used to treat depression and aid in smoking cessation",
			"Extended-release tablet", "100mg, 150mg, 200mg, 300mg, 450mg", "GlaxoSmithKline",
			[]string{"May cause seizures", "May cause high blood pressure", "May cause agitation"},
			[]string{"Dry mouth", "Insomnia", "Headache", "Nausea", "Dizziness"}),
		med("Telmisartan", "Angiotensin II receptor blocker used to treat hypertension and reduce cardiovascular risk",
			"Tablet", "20mg, 40mg, 80mg", "Boehringer Ingelheim",
			[]string{"May cause birth defects", "May cause kidney problems", "Avoid potassium supplements"},
			[]string{"Back pain", "Dizziness", "Sinus pain", "Diarrhea"}),
		med("Methylphenidate", "Central nervous system stimulant used to treat ADHD and narcolepsy",
			"Tablet, Extended-release tablet, Capsule", "5mg, 10mg, 18mg, 20mg, 27mg, 36mg, 54mg", "Novartis",
			[]string{"May cause heart problems", "May cause psychosis", "Potential for abuse and dependence"},
			[]string{"Decreased appetite", "Insomnia", "Nervousness", "Headache", "Increased heart rate"}),
		med("Clonazepam", "Benzodiazepine used to treat seizures, panic disorder, and anxiety",
			"Tablet, Orally disintegrating tablet", "0.125mg, 0.25mg, 0.5mg, 1mg, 2mg", "Roche",
			[]string{"May cause physical dependence", "May cause drowsiness", "Risk of abuse and addiction"},
			[]string{"Drowsiness", "Dizziness", "Cognitive impairment", "Depression", "Fatigue"}),
		med("Memantine", "NMDA receptor antagonist used to treat moderate to severe Alzheimer's disease",
			"Tablet, Solution", "5mg, 10mg, 28mg", "Forest Laboratories",
			[]string{"May cause dizziness", "Caution in patients with kidney disease", "May interact with other CNS medications"},
			[]string{"Dizziness", "Headache", "Confusion", "Constipation", "Hypertension"}),
		med("Doxycycline", "Tetracycline antibiotic used to treat various bacterial infections and certain parasite infections",
			"Capsule, Tablet, Suspension", "50mg, 75mg, 100mg, 150mg, 200mg", "Various manufacturers",
			[]string{"May cause photosensitivity", "Not for use in children under 8", "May decrease effectiveness of oral contraceptives"},
			[]string{"Nausea", "Diarrhea", "Sun sensitivity", "Esophageal irritation", "Headache"}),
		med("Aripiprazole", "Atypical antipsychotic used to treat schizophrenia, bipolar disorder, and depression",
			"Tablet, Solution, Injection", "2mg, 5mg, 10mg, 15mg, 20mg, 30mg", "Otsuka",
			[]string{"May cause tardive dyskinesia", "May increase risk of stroke in elderly", "May cause metabolic changes"},
			[]string{"Weight gain", "Restlessness", "Dizziness", "Insomnia", "Nausea"}),
		med("Tamsulosin", "Alpha-blocker used to treat symptoms of benign prostatic hyperplasia (BPH)",
			"Capsule", "0.4mg", "Boehringer Ingelheim",
			[]string{"May cause orthostatic hypotension", "May cause priapism", "May affect cataract surgery"},
			[]string{"Dizziness", "Headache", "Decreased ejaculation", "Nasal congestion", "Weakness"}),
		med("Levofloxacin", "Fluoroquinolone antibiotic used to treat bacterial infections",
			"Tablet, Solution, Injection", "250mg, 500mg, 750mg", "Janssen",
			[]string{"May damage tendons", "May cause peripheral neuropathy", "May cause QT interval prolongation"},
			[]string{"Nausea", "Diarrhea", "Headache", "Dizziness", "Insomnia"}),
		med("Acyclovir", "Antiviral medication used to treat herpes virus infections",
			"Tablet, Capsule, Suspension, Cream, Injection", "200mg, 400mg, 800mg", "GlaxoSmithKline",
			[]string{"May cause kidney damage", "Requires adequate hydration", "May cause neurological effects"},
			[]string{"Nausea", "Headache", "Dizziness", "Diarrhea", "Fatigue"}),
	}
}

// FallbackFormulary is offered when a history run finds no medications at all.
func FallbackFormulary() []model.Medication {
	return []model.Medication{
		med("Acetaminophen", "Pain reliever and fever reducer",
			"Tablet", "500mg", "Various",
			[]string{"May cause liver damage in high doses", "Avoid alcohol consumption"},
			[]string{"Nausea", "Stomach pain", "Headache"}),
		med("Amoxicillin", "Penicillin antibiotic used to treat bacterial infections",
			"Capsule", "250mg, 500mg", "Various",
			[]string{"May cause allergic reactions", "Take full course as prescribed"},
			[]string{"Diarrhea", "Rash", "Nausea"}),
		med("Lisinopril", "ACE inhibitor used to treat high blood pressure and heart failure",
			"Tablet", "5mg, 10mg, 20mg", "Various",
			[]string{"May cause dizziness", "Avoid pregnancy", "Monitor kidney function"},
			[]string{"Dry cough", "Dizziness", "Headache"}),
		med("Metformin", "Oral diabetes medicine to control blood sugar levels",
			"Tablet", "500mg, 850mg, 1000mg", "Various",
			[]string{"May cause lactic acidosis", "Avoid with kidney disease"},
			[]string{"Diarrhea", "Nausea", "Stomach pain"}),
		med("Atorvastatin", "Statin medication used to lower blood cholesterol",
			"Tablet", "10mg, 20mg, 40mg, 80mg", "Various",
			[]string{"May cause muscle pain", "Avoid grapefruit juice"},
			[]string{"Muscle pain", "Joint pain", "Digestive issues"}),
	}
}
