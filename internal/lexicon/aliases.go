package lexicon

// GlobalAlias rewrites a raw input phrase into one or more canonical phrases.
type GlobalAlias struct {
	Alias     string
	Canonical string
}

// PhraseFix is a compound-phrase rewrite applied before tokenization.
type PhraseFix struct {
	Pattern     string
	Replacement string
}

type symptomAlias struct {
	Canonical string
	Variants  []string
}

type wordFold struct {
	Plural   string
	Singular string
}

// phraseFixes collapse multi-word patterns, mostly Hinglish, that the
// alias table cannot express. Applied in order, case-insensitively.
func phraseFixes() []PhraseFix {
	return []PhraseFix{
		{Pattern: `saans\s*phool\s*rahi`, Replacement: "saans phoolna"},
		{Pattern: `jal\s*raha\s*hai`, Replacement: "burning"},
		{Pattern: `gol\s+daane`, Replacement: "ring shaped rash"},
		{Pattern: `itchy\s+round\s+rash`, Replacement: "ring shaped rash itching"},
		{Pattern: `round\s+itchy\s+rash`, Replacement: "ring shaped rash itching"},
		{Pattern: `rash\s+spreading`, Replacement: "ring shaped rash itching"},
		{Pattern: `spreading\s+rash`, Replacement: "ring shaped rash"},
		{Pattern: `weight\s+loss.*?fast\s+heart`, Replacement: "weight loss rapid heartbeat"},
		{Pattern: `fast\s+heart.*?weight\s+loss`, Replacement: "weight loss rapid heartbeat"},
		{Pattern: `burning\s+urin.*?pelvic`, Replacement: "burning urination pelvic pain"},
		{Pattern: `pelvic.*?burning\s+urin`, Replacement: "burning urination pelvic pain"},
		{Pattern: `mosquito.*?fever`, Replacement: "high fever pain behind eyes joint pain"},
		{Pattern: `fever.*?mosquito`, Replacement: "high fever pain behind eyes joint pain"},
	}
}

// plurals folds plural tokens onto their singular form.
func plurals() []wordFold {
	return []wordFold{
		{"rashes", "rash"},
		{"blisters", "blister"},
		{"patches", "patch"},
		{"sores", "sore"},
		{"scales", "scale"},
		{"pimples", "pimple"},
		{"bumps", "bump"},
		{"spots", "spot"},
		{"lesions", "lesion"},
		{"welts", "welt"},
		{"wheals", "wheal"},
		{"eyes", "eye"},
		{"ears", "ear"},
		{"joints", "joint"},
		{"muscles", "muscle"},
		{"fingers", "finger"},
		{"toes", "toe"},
		{"legs", "leg"},
		{"arms", "arm"},
		{"headaches", "headache"},
		{"aches", "ache"},
		{"pains", "pain"},
		{"cramps", "cramp"},
		{"coughs", "cough"},
		{"sneezes", "sneeze"},
		{"chills", "chill"},
		{"fevers", "fever"},
		{"infections", "infection"},
		{"vomits", "vomit"},
		{"itches", "itch"},
		{"burns", "burn"},
		{"motions", "motion"},
		{"movements", "movement"},
		{"episodes", "episode"},
		{"attacks", "attack"},
		{"flares", "flare"},
	}
}

// symptomAliases lists variant phrases accepted for a canonical profile phrase.
func symptomAliases() []symptomAlias {
	return []symptomAlias{
		{Canonical: "silvery scales", Variants: []string{"silver scale", "white scales", "flaky white", "silvery plate", "silver rashes"}},
		{Canonical: "thick plaques", Variants: []string{"thick skin", "hard patches", "raised plaques"}},
		{Canonical: "chronic scaly rash", Variants: []string{"old rash", "persistent scaling", "long term rash"}},
		{Canonical: "ring shaped rash", Variants: []string{"round rash", "circular rash", "red ring", "ringworm", "curvy rash"}},
		{Canonical: "scaly border", Variants: []string{"rough edges", "peeling border", "crusty edge"}},
		{Canonical: "honey colored crust", Variants: []string{"yellow crust", "gold crust", "pustules with crust"}},
		{Canonical: "oozing sores", Variants: []string{"wet sores", "leaking skin", "damp rashes"}},
		{Canonical: "itching", Variants: []string{"itchy", "scratchy", "irritated skin", "pruritus", "wants to scratch"}},
		{Canonical: "peeling", Variants: []string{"skin falling off", "skin shedding", "flaking"}},
		{Canonical: "fever", Variants: []string{"high temperature", "feeling hot", "chills", "pyrexia"}},
		{Canonical: "blister", Variants: []string{"fluid filled", "bulla", "vesicle", "skin bubble"}},
		{Canonical: "sneezing", Variants: []string{"sneeze", "hay fever"}},
		{Canonical: "hives", Variants: []string{"urticaria", "red bumps", "wheals"}},
		{Canonical: "heartburn", Variants: []string{"acid in chest", "chest burning after eating"}},
		{Canonical: "shortness of breath", Variants: []string{"breathless", "difficulty breathing", "sob", "stuffy breathing", "can't breathe"}},
		{Canonical: "wheezing", Variants: []string{"whistling sound when breathing", "noisy breathing"}},
		{Canonical: "cough", Variants: []string{"coughing", "hacking"}},
	}
}

// globalAliases rewrites raw input phrases (English, Hinglish and common
// misspellings) into canonical symptom phrases. Entries are applied longest
// first and equal lengths keep table order. Where a phrase was listed twice
// it keeps its first position with the later expansion.
func globalAliases() []GlobalAlias {
	return []GlobalAlias{
		{Alias: "khujli", Canonical: "itching rash"},
		{Alias: "kharish", Canonical: "itching"},
		{Alias: "itchy", Canonical: "itching"},
		{Alias: "itch", Canonical: "itching"},
		{Alias: "scratchy", Canonical: "itching"},
		{Alias: "pruritus", Canonical: "itching"},
		{Alias: "khujli ho rahi", Canonical: "itching"},
		{Alias: "irritated skin", Canonical: "itching"},
		{Alias: "wants to scratch", Canonical: "itching"},
		{Alias: "laal daane", Canonical: "red rash skin rash hives"},
		{Alias: "daane", Canonical: "rash"},
		{Alias: "gol daag", Canonical: "ring shaped rash scaly border"},
		{Alias: "rash", Canonical: "rash"},
		{Alias: "red spots", Canonical: "rash"},
		{Alias: "skin eruption", Canonical: "rash"},
		{Alias: "round rash", Canonical: "ring shaped rash scaly border itching"},
		{Alias: "circular rash", Canonical: "ring shaped rash circular rash scaly border"},
		{Alias: "ring rash", Canonical: "ring shaped rash circular rash scaly border"},
		{Alias: "ringworm", Canonical: "ring shaped rash scaly border"},
		{Alias: "round itchy", Canonical: "ring shaped rash itching scaly border"},
		{Alias: "silvery scales", Canonical: "silvery scales thick plaques"},
		{Alias: "white flaky", Canonical: "silvery scales chronic scaly rash thick plaques"},
		{Alias: "silvery", Canonical: "silvery scales thick plaques"},
		{Alias: "white scale", Canonical: "silvery scales thick plaques"},
		{Alias: "silver scale", Canonical: "silvery scales"},
		{Alias: "thick skin", Canonical: "thick plaques"},
		{Alias: "hard patch", Canonical: "thick plaques"},
		{Alias: "scaly rash", Canonical: "chronic scaly rash scaly border"},
		{Alias: "old rash", Canonical: "chronic scaly rash"},
		{Alias: "peeling", Canonical: "peeling"},
		{Alias: "skin peeling", Canonical: "peeling"},
		{Alias: "dry patches", Canonical: "dry itchy patches"},
		{Alias: "cracked skin", Canonical: "cracked skin"},
		{Alias: "red inflamed", Canonical: "red inflamed skin"},
		{Alias: "sookhi chamdi", Canonical: "dry itchy patches"},
		{Alias: "phati hui skin", Canonical: "cracked skin"},
		{Alias: "itchy patches", Canonical: "dry itchy patches"},
		{Alias: "dry itchy patches", Canonical: "dry itchy patches"},
		{Alias: "dry skin patches", Canonical: "dry itchy patches"},
		{Alias: "pimple", Canonical: "pimples"},
		{Alias: "muhase", Canonical: "pimples"},
		{Alias: "blackhead", Canonical: "blackheads"},
		{Alias: "whitehead", Canonical: "whiteheads"},
		{Alias: "zit", Canonical: "pimples"},
		{Alias: "breakout", Canonical: "pimples"},
		{Alias: "acne", Canonical: "pimples"},
		{Alias: "saans phoolna", Canonical: "wheezing breathlessness shortness of breath"},
		{Alias: "saans phool rahi", Canonical: "wheezing breathlessness shortness of breath"},
		{Alias: "saans phool", Canonical: "wheezing breathlessness shortness of breath"},
		{Alias: "saans nahi aa rahi", Canonical: "shortness of breath breathlessness"},
		{Alias: "saans lene me takleef", Canonical: "shortness of breath breathlessness"},
		{Alias: "saans ruk rahi", Canonical: "shortness of breath"},
		{Alias: "dum ghutna", Canonical: "breathlessness"},
		{Alias: "breathlessness", Canonical: "wheezing breathlessness shortness of breath"},
		{Alias: "shortness of breath", Canonical: "breathlessness shortness of breath"},
		{Alias: "cant breathe", Canonical: "shortness of breath"},
		{Alias: "difficulty breathing", Canonical: "shortness of breath"},
		{Alias: "sob", Canonical: "shortness of breath"},
		{Alias: "breathless", Canonical: "breathlessness"},
		{Alias: "wheezing", Canonical: "wheezing"},
		{Alias: "whistling breath", Canonical: "wheezing"},
		{Alias: "saans me siti", Canonical: "wheezing"},
		{Alias: "siti", Canonical: "wheezing"},
		{Alias: "noisy breathing", Canonical: "wheezing"},
		{Alias: "weezing", Canonical: "wheezing"},
		{Alias: "cough", Canonical: "cough"},
		{Alias: "khansi", Canonical: "cough"},
		{Alias: "khaansi", Canonical: "cough"},
		{Alias: "productive cough", Canonical: "productive cough mucus production"},
		{Alias: "balgam", Canonical: "productive cough mucus production"},
		{Alias: "wet cough", Canonical: "productive cough"},
		{Alias: "phlegm", Canonical: "productive cough mucus production"},
		{Alias: "dry cough", Canonical: "persistent dry cough cough"},
		{Alias: "sookhi khansi", Canonical: "persistent dry cough cough"},
		{Alias: "dry cough for", Canonical: "persistent dry cough cough after cold"},
		{Alias: "coughing", Canonical: "cough"},
		{Alias: "hacking", Canonical: "cough"},
		{Alias: "chronic cough", Canonical: "chronic cough"},
		{Alias: "gala dard", Canonical: "sore throat"},
		{Alias: "sore throat", Canonical: "sore throat"},
		{Alias: "throat pain", Canonical: "sore throat throat pain"},
		{Alias: "gala jal raha", Canonical: "sore throat burning"},
		{Alias: "strep throat", Canonical: "sore throat"},
		{Alias: "painful swallowing", Canonical: "difficulty swallowing painful swallowing"},
		{Alias: "nigalne me takleef", Canonical: "difficulty swallowing"},
		{Alias: "naak band", Canonical: "nasal congestion"},
		{Alias: "nasal congestion", Canonical: "nasal congestion"},
		{Alias: "blocked nose", Canonical: "nasal congestion"},
		{Alias: "runny nose", Canonical: "runny nose"},
		{Alias: "naak behna", Canonical: "runny nose"},
		{Alias: "stuffy nose", Canonical: "nasal congestion"},
		{Alias: "sinus", Canonical: "facial pain nasal congestion"},
		{Alias: "sinusitis", Canonical: "facial pain nasal congestion thick nasal discharge"},
		{Alias: "pet dard", Canonical: "abdominal pain abdominal cramping"},
		{Alias: "stomach ache", Canonical: "abdominal pain"},
		{Alias: "abdominal pain", Canonical: "abdominal pain"},
		{Alias: "tummy ache", Canonical: "abdominal pain"},
		{Alias: "pet me dard", Canonical: "abdominal pain stomach cramps"},
		{Alias: "stomach pain", Canonical: "abdominal pain upper abdominal pain stomach burning"},
		{Alias: "cramps", Canonical: "abdominal cramping stomach cramps"},
		{Alias: "cramping", Canonical: "abdominal cramping stomach cramps"},
		{Alias: "heartburn", Canonical: "heartburn acid reflux"},
		{Alias: "acid reflux", Canonical: "heartburn acid reflux"},
		{Alias: "burning chest", Canonical: "heartburn burning chest"},
		{Alias: "seene me jalan", Canonical: "heartburn burning chest"},
		{Alias: "acid in throat", Canonical: "acid reflux regurgitation"},
		{Alias: "khatta pani", Canonical: "regurgitation"},
		{Alias: "acidity", Canonical: "heartburn acid reflux"},
		{Alias: "indigestion", Canonical: "indigestion bloating"},
		{Alias: "gas", Canonical: "bloating gas"},
		{Alias: "bloating", Canonical: "bloating gas"},
		{Alias: "pet phulna", Canonical: "bloating"},
		{Alias: "afara", Canonical: "bloating gas"},
		{Alias: "after spicy food", Canonical: "heartburn"},
		{Alias: "after eating", Canonical: "heartburn"},
		{Alias: "ulti", Canonical: "vomiting sudden vomiting"},
		{Alias: "vomit", Canonical: "vomiting"},
		{Alias: "vomiting", Canonical: "vomiting sudden vomiting"},
		{Alias: "nausea", Canonical: "nausea"},
		{Alias: "ji machlana", Canonical: "nausea"},
		{Alias: "feeling sick", Canonical: "nausea"},
		{Alias: "nausia", Canonical: "nausea"},
		{Alias: "throwing up", Canonical: "vomiting"},
		{Alias: "dast", Canonical: "diarrhea watery diarrhea abdominal cramps"},
		{Alias: "loose motion", Canonical: "diarrhea abdominal cramps"},
		{Alias: "loose stool", Canonical: "diarrhea"},
		{Alias: "diarrhea", Canonical: "diarrhea watery diarrhea"},
		{Alias: "diarhea", Canonical: "diarrhea"},
		{Alias: "runny tummy", Canonical: "diarrhea"},
		{Alias: "pet kharab", Canonical: "diarrhea abdominal cramps nausea"},
		{Alias: "loose motions", Canonical: "diarrhea abdominal cramps"},
		{Alias: "constipation", Canonical: "constipation"},
		{Alias: "qabz", Canonical: "constipation"},
		{Alias: "kabz", Canonical: "constipation"},
		{Alias: "peshab me jalan", Canonical: "burning urination"},
		{Alias: "peshab mein jalan", Canonical: "burning urination"},
		{Alias: "peshab me dard", Canonical: "burning urination pelvic pain"},
		{Alias: "jalan peshab", Canonical: "burning urination"},
		{Alias: "khujli aur laal daane", Canonical: "itching red rash skin rash hives"},
		{Alias: "lal dane", Canonical: "red rash skin rash"},
		{Alias: "fever", Canonical: "fever"},
		{Alias: "bukhaar", Canonical: "fever"},
		{Alias: "bukhar", Canonical: "fever"},
		{Alias: "high fever", Canonical: "high fever fever"},
		{Alias: "tez bukhaar", Canonical: "high fever"},
		{Alias: "body hot", Canonical: "fever"},
		{Alias: "temperature", Canonical: "fever"},
		{Alias: "pyrexia", Canonical: "fever"},
		{Alias: "chills", Canonical: "chills"},
		{Alias: "thand", Canonical: "chills"},
		{Alias: "kapkapi", Canonical: "chills"},
		{Alias: "kaapna", Canonical: "chills"},
		{Alias: "bukhar aur sir dard", Canonical: "fever headache body aches"},
		{Alias: "bukhar sir dard", Canonical: "fever headache"},
		{Alias: "rigor", Canonical: "chills and rigors"},
		{Alias: "shivering", Canonical: "chills"},
		{Alias: "fatigue", Canonical: "fatigue"},
		{Alias: "thakan", Canonical: "fatigue"},
		{Alias: "weakness", Canonical: "weakness fatigue"},
		{Alias: "kamzori", Canonical: "weakness fatigue"},
		{Alias: "tired", Canonical: "fatigue"},
		{Alias: "exhausted", Canonical: "extreme fatigue"},
		{Alias: "body aches", Canonical: "body aches muscle aches"},
		{Alias: "badan dard", Canonical: "body aches muscle pain"},
		{Alias: "pain", Canonical: "pain"},
		{Alias: "dard", Canonical: "pain"},
		{Alias: "ache", Canonical: "pain"},
		{Alias: "soreness", Canonical: "pain tenderness"},
		{Alias: "discomfort", Canonical: "discomfort"},
		{Alias: "throbbing", Canonical: "throbbing"},
		{Alias: "sharp pain", Canonical: "severe pain"},
		{Alias: "dull pain", Canonical: "pain"},
		{Alias: "burning", Canonical: "burning sensation"},
		{Alias: "tenderness", Canonical: "tenderness"},
		{Alias: "stiffness", Canonical: "stiffness joint stiffness"},
		{Alias: "akdan", Canonical: "stiffness"},
		{Alias: "headache", Canonical: "headache"},
		{Alias: "sir dard", Canonical: "headache"},
		{Alias: "sar dard", Canonical: "headache"},
		{Alias: "migraine", Canonical: "throbbing headache one sided head pain severe headache"},
		{Alias: "head pain", Canonical: "headache"},
		{Alias: "tension headache", Canonical: "band like head pain pressure around head"},
		{Alias: "dizziness", Canonical: "dizziness loss of balance nausea"},
		{Alias: "chakkar", Canonical: "dizziness nausea"},
		{Alias: "vertigo", Canonical: "spinning sensation room spinning nausea"},
		{Alias: "giddiness", Canonical: "dizziness nausea"},
		{Alias: "lightheaded", Canonical: "dizziness"},
		{Alias: "sir ghoom raha", Canonical: "dizziness spinning sensation"},
		{Alias: "dizziness with headache", Canonical: "throbbing headache dizziness nausea sensitivity to light"},
		{Alias: "one sided", Canonical: "one sided head pain one sided headache"},
		{Alias: "unconscious", Canonical: "unconscious"},
		{Alias: "behosh", Canonical: "unconscious"},
		{Alias: "collapsed", Canonical: "unconscious collapsed"},
		{Alias: "fainting", Canonical: "unconscious fainting"},
		{Alias: "gir gaya", Canonical: "unconscious"},
		{Alias: "chest pain", Canonical: "chest pain chest discomfort"},
		{Alias: "seene me dard", Canonical: "chest pain"},
		{Alias: "thoracic pain", Canonical: "chest pain"},
		{Alias: "dil me dard", Canonical: "chest pain"},
		{Alias: "sudden", Canonical: "sudden"},
		{Alias: "ek dum se", Canonical: "sudden"},
		{Alias: "achanak", Canonical: "sudden"},
		{Alias: "slurred speech", Canonical: "slurred speech"},
		{Alias: "bolne me takleef", Canonical: "slurred speech"},
		{Alias: "facial droop", Canonical: "facial droop"},
		{Alias: "muh tedha", Canonical: "facial droop"},
		{Alias: "one side weak", Canonical: "one side weak arm weakness"},
		{Alias: "ek side kamzori", Canonical: "one side weak"},
		{Alias: "burning urination", Canonical: "burning urination"},
		{Alias: "frequent urination", Canonical: "frequent urination"},
		{Alias: "baar baar peshab", Canonical: "frequent urination"},
		{Alias: "uti", Canonical: "burning urination frequent urination urinary urgency"},
		{Alias: "urine infection", Canonical: "burning urination frequent urination"},
		{Alias: "eye irritation", Canonical: "eye irritation watery eyes"},
		{Alias: "aankh me jalan", Canonical: "eye irritation"},
		{Alias: "watery eyes", Canonical: "watery eyes"},
		{Alias: "red eyes", Canonical: "eye irritation"},
		{Alias: "ear pain", Canonical: "ear pain"},
		{Alias: "kaan dard", Canonical: "ear pain"},
		{Alias: "earache", Canonical: "ear pain"},
		{Alias: "irregular periods", Canonical: "irregular periods"},
		{Alias: "mahwari problem", Canonical: "irregular periods"},
		{Alias: "period irregular", Canonical: "irregular periods"},
		{Alias: "pcod", Canonical: "irregular periods polycystic ovaries"},
		{Alias: "pcos", Canonical: "irregular periods excess hair growth polycystic ovaries"},
		{Alias: "diarrhoea", Canonical: "diarrhea"},
		{Alias: "brething", Canonical: "breathing"},
		{Alias: "headach", Canonical: "headache"},
		{Alias: "stomache", Canonical: "stomach"},
		{Alias: "throbing", Canonical: "throbbing"},
		{Alias: "itchiness", Canonical: "itching"},
		{Alias: "fevar", Canonical: "fever"},
		{Alias: "fevr", Canonical: "fever"},
		{Alias: "cof", Canonical: "cough"},
		{Alias: "koff", Canonical: "cough"},
		{Alias: "baby rash", Canonical: "rash red irritated diaper area"},
		{Alias: "diaper rash", Canonical: "red irritated diaper area"},
		{Alias: "ear tugging", Canonical: "ear pain ear tugging"},
		{Alias: "fussiness", Canonical: "irritability in child fussiness"},
		{Alias: "irritable child", Canonical: "irritability in child"},
		{Alias: "mouth sores", Canonical: "mouth sores"},
		{Alias: "joint pain", Canonical: "joint pain joint swelling"},
		{Alias: "jodo me dard", Canonical: "joint pain"},
		{Alias: "arthritis", Canonical: "joint pain joint swelling joint stiffness"},
		{Alias: "gathiya", Canonical: "joint pain arthritis"},
		{Alias: "muscle pain", Canonical: "muscle pain muscle aches"},
		{Alias: "muscle strain", Canonical: "muscle pain muscle tenderness"},
		{Alias: "back pain", Canonical: "lower back pain radiating to leg back pain"},
		{Alias: "kamar dard", Canonical: "lower back pain"},
		{Alias: "neck pain", Canonical: "neck pain neck stiffness"},
		{Alias: "gardan dard", Canonical: "neck pain"},
		{Alias: "jal raha", Canonical: "burning burning sensation"},
		{Alias: "jal raha hai", Canonical: "burning burning sensation"},
		{Alias: "jalन", Canonical: "burning"},
		{Alias: "gol daane", Canonical: "ring shaped rash scaly border itching"},
		{Alias: "gol rash", Canonical: "ring shaped rash scaly border"},
		{Alias: "itchy round rash", Canonical: "ring shaped rash itching scaly border"},
		{Alias: "round itchy rash", Canonical: "ring shaped rash itching scaly border"},
		{Alias: "spreading rash", Canonical: "rash ring shaped rash"},
		{Alias: "itchy rash spreading", Canonical: "ring shaped rash itching scaly border"},
		{Alias: "rash spreading", Canonical: "ring shaped rash itching"},
		{Alias: "scaly plaque", Canonical: "silvery scales thick plaques chronic scaly rash"},
		{Alias: "scaly plaques", Canonical: "silvery scales thick plaques chronic scaly rash"},
		{Alias: "thick scaly patches", Canonical: "thick plaques silvery scales chronic scaly rash"},
		{Alias: "papdi wali chamdi", Canonical: "silvery scales thick plaques"},
		{Alias: "pelvic pain", Canonical: "pelvic pain urinary urgency"},
		{Alias: "jalan with peshab", Canonical: "burning urination pelvic pain"},
		{Alias: "weight loss with fast heartbeat", Canonical: "weight loss rapid heartbeat heat intolerance"},
		{Alias: "fast heart rate", Canonical: "rapid heartbeat"},
		{Alias: "racing heart", Canonical: "rapid heartbeat"},
		{Alias: "fast heartbeat", Canonical: "rapid heartbeat"},
		{Alias: "heart racing", Canonical: "rapid heartbeat"},
		{Alias: "heat intolerant", Canonical: "heat intolerance"},
		{Alias: "tez dhadkan", Canonical: "rapid heartbeat"},
		{Alias: "dil tez", Canonical: "rapid heartbeat"},
		{Alias: "garmi bardaasht nahi", Canonical: "heat intolerance"},
		{Alias: "garmi se pareshani", Canonical: "heat intolerance"},
		{Alias: "mosquito fever", Canonical: "high fever severe headache pain behind eyes joint pain"},
		{Alias: "macchar se bukhar", Canonical: "high fever severe headache pain behind eyes joint pain"},
		{Alias: "machhar", Canonical: "high fever pain behind eyes"},
		{Alias: "macchar", Canonical: "high fever pain behind eyes"},
		{Alias: "aankh ke peeche dard", Canonical: "pain behind eyes"},
		{Alias: "eyes ke peeche", Canonical: "pain behind eyes"},
		{Alias: "mosquito bite fever", Canonical: "high fever pain behind eyes joint pain"},
		{Alias: "cold symptoms", Canonical: "runny nose sneezing sore throat"},
		{Alias: "nazla", Canonical: "runny nose nasal congestion"},
		{Alias: "zukam", Canonical: "runny nose sneezing nasal congestion"},
		{Alias: "common cold", Canonical: "runny nose sneezing sore throat"},
		{Alias: "thand lag gayi", Canonical: "runny nose sneezing cough"},
		{Alias: "old age joint pain", Canonical: "joint pain joint stiffness morning stiffness"},
		{Alias: "ghutno mein dard", Canonical: "joint pain joint stiffness"},
		{Alias: "ghutne mein dard", Canonical: "joint pain joint stiffness"},
		{Alias: "joint pain worse in morning", Canonical: "joint pain morning stiffness joint stiffness"},
		{Alias: "subah akdan", Canonical: "morning stiffness joint stiffness"},
		{Alias: "corona", Canonical: "fever dry cough loss of taste loss of smell shortness of breath"},
		{Alias: "covid", Canonical: "fever dry cough loss of taste loss of smell"},
		{Alias: "loss of smell", Canonical: "loss of smell"},
		{Alias: "loss of taste", Canonical: "loss of taste"},
		{Alias: "soonghne ki shakti khatam", Canonical: "loss of smell"},
		{Alias: "taste nahi pata", Canonical: "loss of taste"},
		{Alias: "tb symptoms", Canonical: "persistent cough night sweats unexplained weight loss"},
		{Alias: "persistent cough", Canonical: "persistent cough"},
		{Alias: "night sweats", Canonical: "night sweats"},
		{Alias: "raat ko pasina", Canonical: "night sweats"},
		{Alias: "bina wajan kam", Canonical: "unexplained weight loss"},
		{Alias: "khoon thookna", Canonical: "coughing blood"},
		{Alias: "coughing blood", Canonical: "coughing blood"},
		{Alias: "piliya", Canonical: "jaundice yellow skin yellow eyes dark urine"},
		{Alias: "peeli skin", Canonical: "yellow skin jaundice"},
		{Alias: "peeli aankh", Canonical: "yellow eyes jaundice"},
		{Alias: "yellow skin", Canonical: "yellow skin jaundice"},
		{Alias: "yellow eyes", Canonical: "yellow eyes jaundice"},
		{Alias: "dark urine", Canonical: "dark urine"},
		{Alias: "dark peshab", Canonical: "dark urine"},
		{Alias: "liver disease", Canonical: "jaundice fatigue abdominal pain"},
		{Alias: "stiff neck", Canonical: "stiff neck"},
		{Alias: "gardan akad", Canonical: "stiff neck"},
		{Alias: "gardan mein dard", Canonical: "stiff neck"},
		{Alias: "neck stiffness", Canonical: "stiff neck"},
		{Alias: "pale skin", Canonical: "pale skin weakness fatigue"},
		{Alias: "khoon ki kami", Canonical: "fatigue pale skin weakness shortness of breath"},
		{Alias: "anemia symptoms", Canonical: "fatigue pale skin weakness"},
		{Alias: "kamzori aur thakan", Canonical: "fatigue weakness"},
		{Alias: "pink eye", Canonical: "red eye eye discharge itchy eyes"},
		{Alias: "aankh laal", Canonical: "red eye"},
		{Alias: "red eye", Canonical: "red eye"},
		{Alias: "eye discharge", Canonical: "eye discharge"},
		{Alias: "aankh se paani", Canonical: "watery eyes eye discharge"},
		{Alias: "itchy eyes", Canonical: "itchy eyes"},
		{Alias: "aankh mein khujli", Canonical: "itchy eyes"},
		{Alias: "eye infection", Canonical: "red eye eye discharge"},
		{Alias: "dandruff", Canonical: "dandruff flaky scalp itchy scalp"},
		{Alias: "roosi", Canonical: "dandruff flaky scalp"},
		{Alias: "sir mein khujli", Canonical: "itchy scalp dandruff"},
		{Alias: "scalp problem", Canonical: "dandruff itchy scalp flaky scalp"},
		{Alias: "baal jhadna", Canonical: "hair loss"},
		{Alias: "hair fall", Canonical: "hair loss"},
		{Alias: "itchy skin", Canonical: "itching rash dry itchy patches"},
		{Alias: "red patches", Canonical: "red patches rash itching"},
		{Alias: "skin irritation", Canonical: "skin irritation after contact localized rash"},
		{Alias: "skin rash", Canonical: "rash itching red patches"},
		{Alias: "itchy red patches", Canonical: "dry itchy patches red inflamed skin"},
		{Alias: "laal daag", Canonical: "red patches rash"},
		{Alias: "daad", Canonical: "ring shaped rash circular rash itching"},
		{Alias: "gol daad", Canonical: "ring shaped rash circular rash scaly border"},
		{Alias: "yellow skin yellow eyes", Canonical: "yellow skin yellow eyes jaundice"},
		{Alias: "jaundice symptoms", Canonical: "yellow skin yellow eyes dark urine jaundice"},
		{Alias: "high fever cough", Canonical: "high fever with cough fever with cough"},
		{Alias: "cough high fever", Canonical: "cough with high fever high fever with cough"},
		{Alias: "fever cough", Canonical: "fever with cough high fever with cough"},
		{Alias: "cough fever", Canonical: "cough with high fever fever with cough"},
		{Alias: "severe cough fever", Canonical: "productive cough high fever with cough"},
		{Alias: "lung infection", Canonical: "lung infection chest infection productive cough"},
	}
}
