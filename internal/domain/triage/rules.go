package triage

// ruleTable is the fixed suggestion table. Order matters: Match takes the
// first hit, so keep entries in this exact sequence.
var ruleTable = []rule{
	{
		Key: "fever,cough,fatigue",
		Suggestion: Suggestion{
			Diagnoses:             []string{"Common Cold", "Influenza", "COVID-19", "Bronchitis"},
			Risk:                  RiskMedium,
			RecommendedTests:      []string{"COVID-19 Test", "Complete Blood Count", "Chest X-ray"},
			RecommendedSpecialist: "Pulmonologist",
		},
	},
	{
		Key: "headache,nausea,sensitivity to light",
		Suggestion: Suggestion{
			Diagnoses:             []string{"Migraine", "Tension Headache", "Sinusitis"},
			Risk:                  RiskLow,
			RecommendedTests:      []string{"Physical Examination", "Neurological Assessment"},
			RecommendedSpecialist: "Neurologist",
		},
	},
	{
		Key: "chest pain,shortness of breath,dizziness",
		Suggestion: Suggestion{
			Diagnoses:             []string{"Angina", "Myocardial Infarction", "Pulmonary Embolism"},
			Risk:                  RiskHigh,
			RecommendedTests:      []string{"ECG", "Cardiac Enzymes", "Chest X-ray"},
			RecommendedSpecialist: "Cardiologist",
		},
	},
	{
		Key: "abdominal pain,vomiting,diarrhea",
		Suggestion: Suggestion{
			Diagnoses:             []string{"Gastroenteritis", "Food Poisoning", "Appendicitis"},
			Risk:                  RiskMedium,
			RecommendedTests:      []string{"Stool Analysis", "Abdominal Ultrasound", "Complete Blood Count"},
			RecommendedSpecialist: "Gastroenterologist",
		},
	},
	{
		// Source data said "Low to Medium"; normalized to the conservative end.
		Key: "rash,itching,swelling",
		Suggestion: Suggestion{
			Diagnoses:             []string{"Allergic Reaction", "Contact Dermatitis", "Urticaria"},
			Risk:                  RiskMedium,
			RecommendedTests:      []string{"Allergy Tests", "Physical Examination"},
			RecommendedSpecialist: "Dermatologist",
		},
	},
}

// defaultSuggestion is returned when no rule matches.
var defaultSuggestion = Suggestion{
	Diagnoses:             []string{"Unspecified condition", "Requires specialist evaluation"},
	Risk:                  RiskMedium,
	RecommendedTests:      []string{"Physical Examination", "Basic Blood Work"},
	RecommendedSpecialist: "General Physician",
}
