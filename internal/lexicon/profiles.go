package lexicon

import "github.com/UtsavYadav1/WellSure/internal/domain"

// diseaseProfiles is the ordered knowledge base. Order is the tie break when
// two candidates score the same, so entries must not be reordered.
func diseaseProfiles() []domain.DiseaseProfile {
	return []domain.DiseaseProfile{
		{
			Disease:    domain.Psoriasis,
			Primary:    []string{"silvery scales", "thick plaques", "chronic scaly rash", "scaly plaques"},
			Supporting: []string{"itching", "peeling"},
			Exclusions: []string{"fever"},
		},
		{
			Disease:    domain.ChickenPox,
			Primary:    []string{"fluid filled blisters"},
			Supporting: []string{"fever", "itching"},
		},
		{
			Disease:    domain.Impetigo,
			Primary:    []string{"honey colored crust", "oozing sores"},
			Supporting: []string{"blister", "red skin"},
		},
		{
			Disease:    domain.Allergy,
			Primary:    []string{"sneezing", "hives", "runny nose"},
			Supporting: []string{"itching", "watery eyes"},
			Exclusions: []string{"sore throat", "fever"},
		},
		{
			Disease:    domain.FungalInfection,
			Primary:    []string{"ring shaped rash", "scaly border", "itchy round rash", "ringworm", "round rash"},
			Supporting: []string{"itching", "spreading"},
		},
		{
			Disease:    domain.GERD,
			Primary:    []string{"heartburn", "acid reflux"},
			Supporting: []string{"burning chest", "regurgitation"},
			Exclusions: []string{"shortness of breath"},
		},
		{
			Disease:    domain.Pneumonia,
			Primary:    []string{"high fever", "cough with mucus", "cough with phlegm", "chest pain while breathing", "chest pain while coughing"},
			Supporting: []string{"chills", "shortness of breath", "fatigue", "weakness", "rapid breathing", "nausea", "vomiting", "rusty sputum", "fever with chills"},
		},
		{
			Disease:    domain.BronchialAsthma,
			Primary:    []string{"wheezing", "breathlessness", "chest tightness", "difficulty breathing"},
			Supporting: []string{"cough", "shortness of breath", "cough at night", "triggered by allergens", "triggered by exercise", "tight chest"},
			Exclusions: []string{"high fever", "fever with chills", "rusty sputum"},
		},

		// Dermatology
		{
			Disease:    domain.Eczema,
			Primary:    []string{"dry itchy patches", "red inflamed skin", "cracked skin", "eczema flare"},
			Supporting: []string{"itching", "scaling", "oozing", "thickened skin", "skin discoloration"},
			Exclusions: []string{"fever", "ring shaped rash", "circular rash", "fungal", "ringworm", "scalp"},
		},
		{
			Disease:    domain.ContactDermatitis,
			Primary:    []string{"localized rash", "skin irritation after contact", "blistering at contact site", "contact rash"},
			Supporting: []string{"itching", "burning", "redness", "swelling", "dry patches"},
			Exclusions: []string{"ring shaped rash", "scalp", "dandruff", "fungal"},
		},
		{
			Disease:    domain.Rosacea,
			Primary:    []string{"facial redness", "visible blood vessels", "facial flushing"},
			Supporting: []string{"bumps on face", "eye irritation", "burning sensation", "thickened skin", "sensitive skin"},
		},
		{
			Disease:    domain.Shingles,
			Primary:    []string{"painful blisters one side", "band like rash", "burning pain before rash"},
			Supporting: []string{"fever", "headache", "sensitivity to light", "fatigue", "tingling sensation"},
		},
		{
			Disease:    domain.Acne,
			Primary:    []string{"pimples", "blackheads", "whiteheads"},
			Supporting: []string{"oily skin", "scarring", "cysts", "nodules", "skin inflammation"},
		},
		{
			Disease:    domain.Urticaria,
			Primary:    []string{"hives", "raised welts", "itchy wheals"},
			Supporting: []string{"swelling", "itching", "burning", "comes and goes", "triggered by allergen"},
		},
		{
			Disease:    domain.Conjunctivitis,
			Primary:    []string{"red eye", "eye discharge", "itchy eyes", "pink eye"},
			Supporting: []string{"watery eyes", "burning eyes", "sensitivity to light", "gritty feeling", "swollen eyelids"},
		},
		{
			Disease:    domain.SeborrheicDermatitis,
			Primary:    []string{"dandruff", "itchy scalp", "flaky scalp", "scalp irritation"},
			Supporting: []string{"oily skin", "red patches", "hair loss", "crusty scales", "eyebrow flakes"},
		},
		{
			Disease:    domain.Ringworm,
			Primary:    []string{"ring shaped rash", "circular rash", "scaly border", "itchy round rash"},
			Supporting: []string{"itching", "red patches", "spreading rash", "raised edges", "clear center"},
		},

		// Respiratory
		{
			Disease:    domain.COPD,
			Primary:    []string{"chronic cough", "mucus production", "progressive breathlessness"},
			Supporting: []string{"wheezing", "chest tightness", "fatigue", "frequent respiratory infections", "weight loss"},
			Exclusions: []string{"high fever", "fever", "rusty sputum"},
		},
		{
			Disease:    domain.Sinusitis,
			Primary:    []string{"facial pain", "nasal congestion", "thick nasal discharge"},
			Supporting: []string{"headache", "post nasal drip", "reduced smell", "cough", "fever", "bad breath"},
		},
		{
			Disease:    domain.Tonsillitis,
			Primary:    []string{"sore throat", "swollen tonsils", "difficulty swallowing"},
			Supporting: []string{"fever", "white patches on tonsils", "swollen lymph nodes", "bad breath", "voice changes"},
		},
		{
			Disease:    domain.PostViralCough,
			Primary:    []string{"persistent dry cough", "cough after cold"},
			Supporting: []string{"tickle in throat", "no fever", "clear airways", "cough worse at night", "recent viral illness"},
			Exclusions: []string{"productive cough", "fever"},
		},
		{
			Disease:    domain.CommonCold,
			Primary:    []string{"runny nose", "sneezing", "sore throat", "nazla", "zukam", "cold symptoms"},
			Supporting: []string{"mild fever", "cough", "congestion", "body aches", "fatigue", "nasal congestion"},
		},
		{
			Disease:    domain.Pharyngitis,
			Primary:    []string{"sore throat", "throat pain", "painful swallowing"},
			Supporting: []string{"fever", "swollen glands", "hoarse voice", "cough", "headache"},
		},

		// Gastroenterology
		{
			Disease:    domain.IBS,
			Primary:    []string{"abdominal cramping", "bloating", "altered bowel habits"},
			Supporting: []string{"gas", "mucus in stool", "incomplete evacuation", "symptoms after eating", "stress related"},
			Exclusions: []string{"blood in stool", "weight loss"},
		},
		{
			Disease:    domain.Gastritis,
			Primary:    []string{"upper abdominal pain", "nausea", "stomach burning"},
			Supporting: []string{"bloating", "indigestion", "loss of appetite", "vomiting", "feeling full quickly"},
		},
		{
			Disease:    domain.FoodPoisoning,
			Primary:    []string{"sudden vomiting", "diarrhea", "abdominal cramps"},
			Supporting: []string{"nausea", "fever", "weakness", "dehydration", "recent suspicious food"},
		},
		{
			Disease:    domain.PepticUlcer,
			Primary:    []string{"burning stomach pain", "pain between meals", "pain relieved by eating"},
			Supporting: []string{"bloating", "nausea", "heartburn", "dark stool", "weight loss"},
		},
		{
			Disease:    domain.Gastroenteritis,
			Primary:    []string{"watery diarrhea", "vomiting", "stomach cramps"},
			Supporting: []string{"nausea", "fever", "headache", "muscle aches", "dehydration"},
		},

		// Neurology
		{
			Disease:    domain.TensionHeadache,
			Primary:    []string{"band like head pain", "pressure around head", "bilateral headache"},
			Supporting: []string{"neck stiffness", "shoulder tension", "stress related", "mild sensitivity to light", "no nausea"},
			Exclusions: []string{"severe vomiting", "visual aura"},
		},
		{
			Disease:    domain.Migraine,
			Primary:    []string{"throbbing headache", "one sided head pain", "severe headache", "one sided headache"},
			Supporting: []string{"nausea", "vomiting", "sensitivity to light", "sensitivity to sound", "visual aura", "dizziness"},
		},
		{
			Disease:    domain.CervicalRadiculopathy,
			Primary:    []string{"neck pain radiating to arm", "arm numbness", "arm weakness"},
			Supporting: []string{"tingling in fingers", "neck stiffness", "pain worse with movement", "muscle spasms"},
		},
		{
			Disease:    domain.Vertigo,
			Primary:    []string{"spinning sensation", "room spinning", "loss of balance"},
			Supporting: []string{"nausea", "vomiting", "sweating", "abnormal eye movements", "hearing changes"},
		},

		// Endocrine
		{
			Disease:    domain.PCOS,
			Primary:    []string{"irregular periods", "excess hair growth", "polycystic ovaries"},
			Supporting: []string{"weight gain", "acne", "hair thinning", "difficulty conceiving", "dark skin patches"},
		},
		{
			Disease:    domain.Hypothyroidism,
			Primary:    []string{"persistent fatigue", "weight gain", "cold intolerance"},
			Supporting: []string{"constipation", "dry skin", "hair loss", "depression", "slow heart rate", "muscle weakness", "fatigue"},
			Exclusions: []string{"irregular periods", "excess hair growth"},
		},
		{
			Disease:    domain.Hyperthyroidism,
			Primary:    []string{"weight loss", "rapid heartbeat", "heat intolerance", "fast heartbeat", "racing heart"},
			Supporting: []string{"anxiety", "tremor", "sweating", "frequent bowel movements", "difficulty sleeping", "nervousness"},
		},
		{
			Disease:    domain.Diabetes,
			Primary:    []string{"increased thirst", "excessive urination", "unexplained weight loss"},
			Supporting: []string{"fatigue", "blurred vision", "slow healing", "tingling in feet", "frequent infections", "frequent urination"},
			Exclusions: []string{"burning urination"},
		},

		// General medicine
		{
			Disease:    domain.ViralFever,
			Primary:    []string{"fever", "high fever", "body aches", "low grade fever", "fatigue", "tiredness", "weakness", "feeling weak"},
			Supporting: []string{"headache", "chills", "loss of appetite", "mild cough", "lethargy"},
			Exclusions: []string{"shortness of breath", "productive cough", "chest infection", "difficulty breathing", "rusty sputum"},
		},
		{
			Disease:    domain.Flu,
			Primary:    []string{"sudden fever", "muscle aches", "extreme fatigue"},
			Supporting: []string{"headache", "dry cough", "sore throat", "runny nose", "chills"},
		},
		{
			Disease:    domain.Dengue,
			Primary:    []string{"high fever", "severe headache", "pain behind eyes", "mosquito fever", "mosquito bite fever"},
			Supporting: []string{"joint pain", "muscle pain", "rash", "nausea", "bleeding gums", "body aches"},
		},
		{
			Disease:    domain.Typhoid,
			Primary:    []string{"prolonged fever", "abdominal pain", "weakness"},
			Supporting: []string{"headache", "constipation", "diarrhea", "rose spots", "enlarged spleen"},
		},
		{
			Disease:    domain.Malaria,
			Primary:    []string{"cyclic fever", "chills and rigors", "sweating"},
			Supporting: []string{"headache", "nausea", "vomiting", "fatigue", "muscle pain"},
		},
		{
			Disease:    domain.Tuberculosis,
			Primary:    []string{"persistent cough", "night sweats", "unexplained weight loss", "coughing blood"},
			Supporting: []string{"low grade fever", "fatigue", "loss of appetite", "chest pain", "shortness of breath"},
		},
		{
			Disease:    domain.COVID19,
			Primary:    []string{"fever", "dry cough", "loss of taste", "loss of smell", "shortness of breath"},
			Supporting: []string{"fatigue", "body aches", "headache", "sore throat", "congestion", "diarrhea"},
			Exclusions: []string{"productive cough", "rusty sputum", "phlegm"},
		},
		{
			Disease:    domain.HepatitisA,
			Primary:    []string{"jaundice", "dark urine", "fatigue", "nausea"},
			Supporting: []string{"abdominal pain", "loss of appetite", "low grade fever", "joint pain", "clay colored stool"},
			Exclusions: []string{"yellow skin", "yellow eyes", "burning urination", "frequent urination", "pelvic pain"},
		},
		{
			Disease:    domain.HepatitisB,
			Primary:    []string{"jaundice", "dark urine", "fatigue", "abdominal pain"},
			Supporting: []string{"nausea", "vomiting", "joint pain", "loss of appetite", "fever"},
			Exclusions: []string{"yellow skin", "yellow eyes", "burning urination", "frequent urination", "pelvic pain"},
		},
		{
			Disease:    domain.HepatitisC,
			Primary:    []string{"jaundice", "fatigue", "dark urine"},
			Supporting: []string{"nausea", "joint pain", "abdominal discomfort", "poor appetite"},
			Exclusions: []string{"yellow skin", "yellow eyes", "burning urination", "frequent urination", "pelvic pain"},
		},
		{
			Disease:    domain.Jaundice,
			Primary:    []string{"yellow skin", "yellow eyes", "dark urine"},
			Supporting: []string{"fatigue", "abdominal pain", "itching", "pale stool", "nausea", "weight loss"},
		},
		{
			Disease:    domain.Meningitis,
			Primary:    []string{"stiff neck", "severe headache", "high fever", "sensitivity to light"},
			Supporting: []string{"nausea", "vomiting", "confusion", "rash", "drowsiness"},
			Exclusions: []string{"productive cough", "cough", "chest infection"},
		},
		{
			Disease:    domain.Anemia,
			Primary:    []string{"fatigue", "pale skin", "weakness", "shortness of breath"},
			Supporting: []string{"dizziness", "cold hands", "brittle nails", "fast heartbeat", "headache", "chest pain"},
			Exclusions: []string{"fever", "cough", "productive cough"},
		},

		// Cardiac, non-emergency presentations
		{
			Disease:    domain.Angina,
			Primary:    []string{"chest discomfort on exertion", "chest tightness with activity", "pain relieved by rest"},
			Supporting: []string{"shortness of breath", "fatigue", "nausea", "sweating", "pain in arm or jaw"},
		},
		{
			Disease:    domain.Palpitations,
			Primary:    []string{"heart racing", "skipped beats", "fluttering in chest"},
			Supporting: []string{"anxiety", "dizziness", "shortness of breath", "fatigue", "caffeine related"},
		},
		{
			Disease:    domain.Hypertension,
			Primary:    []string{"high blood pressure", "persistent elevated bp"},
			Supporting: []string{"headache", "dizziness", "blurred vision", "nosebleeds", "fatigue"},
		},

		// Urology
		{
			Disease:    domain.UrinaryTractInfection,
			Primary:    []string{"burning urination", "frequent urination", "urinary urgency", "pelvic pain"},
			Supporting: []string{"cloudy urine", "blood in urine", "strong urine odor", "low grade fever", "lower abdominal pain"},
		},
		{
			Disease:    domain.KidneyStones,
			Primary:    []string{"severe flank pain", "pain radiating to groin", "colicky pain"},
			Supporting: []string{"blood in urine", "nausea", "vomiting", "painful urination", "urinary urgency"},
		},

		// Pediatrics
		{
			Disease:    domain.DiaperRash,
			Primary:    []string{"red irritated diaper area", "skin irritation in diaper region"},
			Supporting: []string{"fussiness", "discomfort during diaper change", "warm skin", "peeling skin"},
		},
		{
			Disease:    domain.OtitisMedia,
			Primary:    []string{"ear pain", "ear tugging", "irritability in child"},
			Supporting: []string{"fever", "difficulty sleeping", "fluid drainage", "hearing difficulty", "loss of appetite"},
		},
		{
			Disease:    domain.HandFootMouthDisease,
			Primary:    []string{"mouth sores", "rash on hands and feet", "fever in child"},
			Supporting: []string{"sore throat", "drooling", "loss of appetite", "irritability"},
		},

		// Musculoskeletal
		{
			Disease:    domain.Arthritis,
			Primary:    []string{"joint pain", "joint swelling", "joint stiffness"},
			Supporting: []string{"morning stiffness", "reduced range of motion", "warmth around joint", "fatigue", "weakness"},
			Exclusions: []string{"pain behind eyes", "high fever"},
		},
		{
			Disease:    domain.MuscleStrain,
			Primary:    []string{"muscle pain", "muscle tenderness", "limited movement"},
			Supporting: []string{"swelling", "bruising", "muscle spasm", "weakness", "stiffness"},
		},
		{
			Disease:    domain.Sciatica,
			Primary:    []string{"lower back pain radiating to leg", "shooting pain down leg", "leg numbness"},
			Supporting: []string{"tingling", "muscle weakness", "pain worse sitting", "difficulty standing"},
		},
		{
			Disease:    domain.Osteoarthritis,
			Primary:    []string{"joint pain", "joint stiffness", "morning stiffness"},
			Supporting: []string{"reduced range of motion", "joint swelling", "cracking sound", "pain after activity", "age related"},
			Exclusions: []string{"fever", "rash"},
		},
	}
}
