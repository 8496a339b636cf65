package lexicon

import "github.com/UtsavYadav1/WellSure/internal/domain"

type questionSymptom struct {
	QuestionID string
	Symptoms   string
}

type followUpBank struct {
	Disease   domain.Disease
	Questions []domain.FollowUpQuestion
}

func yesNo(id, text string) domain.FollowUpQuestion {
	return domain.FollowUpQuestion{ID: id, Text: text, Type: domain.QuestionTypeYesNo}
}

// questionSymptoms maps a question id to the exact profile phrases an
// affirmative answer confirms. Multiple phrases are joined with ", ".
func questionSymptoms() []questionSymptom {
	return []questionSymptom{
		{"psoriasis_silvery", "silvery scales, thick plaques"},
		{"psoriasis_chronic", "chronic scaly rash"},
		{"psoriasis_nails", "nail changes"},
		{"fungal_ring", "ring shaped rash, scaly border"},
		{"fungal_itch", "itching"},
		{"fungal_spread", "spreading rash"},
		{"fungal_moist", "moist area"},
		{"eczema_dry", "dry itchy patches, cracked skin"},
		{"eczema_inflamed", "red inflamed skin"},
		{"eczema_ooze", "oozing"},
		{"acne_pimples", "pimples"},
		{"acne_blackheads", "blackheads, whiteheads"},
		{"acne_oily", "oily skin"},
		{"contact_localized", "localized rash, skin irritation after contact"},
		{"contact_blister", "blistering at contact site"},
		{"dandruff_flaky", "dandruff, flaky scalp"},
		{"dandruff_itchy", "itchy scalp"},
		{"dandruff_oily", "oily skin, red patches"},
		{"urticaria_hives", "hives, raised welts"},
		{"urticaria_comes_goes", "comes and goes"},
		{"pneumonia_mucus", "cough with mucus, productive cough"},
		{"pneumonia_chest", "chest pain while breathing"},
		{"pneumonia_fever", "high fever, chills"},
		{"asthma_wheeze", "wheezing"},
		{"asthma_trigger", "triggered by allergens, triggered by exercise"},
		{"asthma_night", "cough at night"},
		{"asthma_tight", "chest tightness"},
		{"copd_chronic", "chronic cough"},
		{"copd_mucus", "mucus production"},
		{"copd_breathless", "progressive breathlessness"},
		{"sinusitis_facial", "facial pain"},
		{"sinusitis_discharge", "thick nasal discharge"},
		{"sinusitis_congestion", "nasal congestion"},
		{"cold_runny", "runny nose"},
		{"cold_sneeze", "sneezing"},
		{"cold_throat", "sore throat"},
		{"gerd_heartburn", "heartburn, acid reflux"},
		{"gerd_regurg", "regurgitation"},
		{"gerd_lying", "burning chest"},
		{"gastritis_burning", "stomach burning, upper abdominal pain"},
		{"gastritis_nausea", "nausea"},
		{"gastritis_bloat", "bloating, indigestion"},
		{"ulcer_pain", "burning stomach pain, pain between meals"},
		{"ulcer_relief", "pain relieved by eating"},
		{"ulcer_nsaid", "nsaid use"},
		{"ibs_cramping", "abdominal cramping"},
		{"ibs_bloating", "bloating"},
		{"ibs_bowel", "altered bowel habits"},
		{"gastro_diarrhea", "watery diarrhea"},
		{"gastro_vomit", "vomiting"},
		{"gastro_cramps", "stomach cramps"},
		{"foodpois_sudden", "sudden vomiting, diarrhea"},
		{"foodpois_food", "recent suspicious food"},
		{"uti_burn", "burning urination"},
		{"uti_frequent", "frequent urination, urinary urgency"},
		{"uti_cloudy", "cloudy urine, strong urine odor"},
		{"uti_pelvic", "pelvic pain, lower abdominal pain"},
		{"kidney_flank", "severe flank pain, pain radiating to groin"},
		{"kidney_blood", "blood in urine"},
		{"kidney_nausea", "nausea, painful urination"},
		{"diabetes_thirst", "increased thirst, excessive urination"},
		{"diabetes_weight", "unexplained weight loss"},
		{"diabetes_fatigue", "fatigue, blurred vision"},
		{"hypo_fatigue", "persistent fatigue"},
		{"hypo_cold", "cold intolerance"},
		{"hypo_weight", "weight gain"},
		{"hypo_constip", "constipation, dry skin"},
		{"hyper_weight", "weight loss"},
		{"hyper_heart", "rapid heartbeat, racing heart"},
		{"hyper_heat", "heat intolerance"},
		{"hyper_anxiety", "anxiety, tremor"},
		{"pcos_periods", "irregular periods"},
		{"pcos_hair", "excess hair growth"},
		{"pcos_acne", "acne, weight gain"},
		{"arthritis_joint", "joint pain, joint swelling"},
		{"arthritis_stiff", "joint stiffness, morning stiffness"},
		{"arthritis_motion", "reduced range of motion"},
		{"sciatica_radiating", "lower back pain radiating to leg, shooting pain down leg"},
		{"sciatica_numb", "leg numbness, tingling"},
		{"sciatica_sitting", "pain worse sitting"},
		{"strain_tender", "muscle pain, muscle tenderness"},
		{"strain_limited", "limited movement"},
		{"strain_swelling", "swelling, bruising"},
		{"migraine_one_side", "one sided head pain, one sided headache"},
		{"migraine_throb", "throbbing headache"},
		{"migraine_light", "sensitivity to light, sensitivity to sound"},
		{"migraine_nausea", "nausea, vomiting"},
		{"tension_band", "band like head pain, pressure around head"},
		{"tension_neck", "neck stiffness, shoulder tension"},
		{"vertigo_spinning", "spinning sensation, room spinning"},
		{"vertigo_balance", "loss of balance"},
		{"vertigo_nausea", "nausea, sweating"},
		{"viral_fever", "fever, high fever"},
		{"viral_body", "body aches"},
		{"viral_fatigue", "fatigue, weakness"},
		{"dengue_eyes", "pain behind eyes"},
		{"dengue_rash", "rash"},
		{"dengue_joint", "joint pain, muscle pain"},
		{"dengue_mosquito", "mosquito bite"},
		{"typhoid_prolonged", "prolonged fever"},
		{"typhoid_weakness", "weakness, abdominal pain"},
		{"typhoid_appetite", "loss of appetite"},
		{"malaria_cyclic", "cyclic fever, chills and rigors"},
		{"malaria_sweating", "sweating"},
		{"malaria_travel", "malaria-endemic area travel"},
		{"covid_taste", "loss of taste, loss of smell"},
		{"covid_cough", "dry cough"},
		{"covid_sob", "shortness of breath"},
		{"tb_cough", "persistent cough"},
		{"tb_night", "night sweats"},
		{"tb_weight", "unexplained weight loss"},
		{"angina_exertion", "chest discomfort on exertion, chest tightness with activity"},
		{"angina_rest", "pain relieved by rest"},
		{"palp_racing", "heart racing, skipped beats"},
		{"palp_flutter", "fluttering in chest"},
		{"conj_red", "red eye, pink eye"},
		{"conj_discharge", "eye discharge"},
		{"conj_itchy", "itchy eyes"},
	}
}

// followUpBanks holds the disease specific clarification questions.
func followUpBanks() []followUpBank {
	return []followUpBank{
		{
			Disease:   domain.Psoriasis,
			Questions: []domain.FollowUpQuestion{
				yesNo("psoriasis_silvery", "Do you see silvery-white scales on raised, thick skin patches?"),
				yesNo("psoriasis_chronic", "Have these skin patches been present for weeks or longer?"),
			},
		},
		{
			Disease:   domain.FungalInfection,
			Questions: []domain.FollowUpQuestion{
				yesNo("fungal_ring", "Is the rash ring-shaped with a clearer center and scaly border?"),
				yesNo("fungal_itch", "Is the affected area intensely itchy?"),
				yesNo("fungal_spread", "Has the rash been spreading or getting larger?"),
			},
		},
		{
			Disease:   domain.Ringworm,
			Questions: []domain.FollowUpQuestion{
				yesNo("fungal_ring", "Is the rash circular with raised scaly edges?"),
				yesNo("fungal_itch", "Is the area itchy?"),
				yesNo("fungal_spread", "Is the rash spreading to other areas?"),
			},
		},
		{
			Disease:   domain.Eczema,
			Questions: []domain.FollowUpQuestion{
				yesNo("eczema_dry", "Is your skin dry, cracked, or rough in patches?"),
				yesNo("eczema_inflamed", "Are the affected areas red and inflamed?"),
				yesNo("eczema_ooze", "Do the patches sometimes ooze or weep fluid?"),
			},
		},
		{
			Disease:   domain.ContactDermatitis,
			Questions: []domain.FollowUpQuestion{
				yesNo("contact_localized", "Did the rash appear after contact with something specific (soap, jewelry, plants)?"),
				yesNo("contact_blister", "Are there blisters at the contact site?"),
			},
		},
		{
			Disease:   domain.Acne,
			Questions: []domain.FollowUpQuestion{
				yesNo("acne_pimples", "Do you have pimples, pustules, or cysts on your face, chest, or back?"),
				yesNo("acne_blackheads", "Do you see blackheads or whiteheads?"),
				yesNo("acne_oily", "Is your skin oilier than normal?"),
			},
		},
		{
			Disease:   domain.SeborrheicDermatitis,
			Questions: []domain.FollowUpQuestion{
				yesNo("dandruff_flaky", "Do you have dandruff or flaky patches on your scalp?"),
				yesNo("dandruff_itchy", "Is your scalp itchy?"),
				yesNo("dandruff_oily", "Is your scalp or face oily with red patches?"),
			},
		},
		{
			Disease:   domain.Urticaria,
			Questions: []domain.FollowUpQuestion{
				yesNo("urticaria_hives", "Do you have raised, itchy welts or hives on your skin?"),
				yesNo("urticaria_comes_goes", "Do the welts appear and disappear within hours?"),
			},
		},
		{
			Disease:   domain.Pneumonia,
			Questions: []domain.FollowUpQuestion{
				yesNo("pneumonia_mucus", "Do you have a cough with phlegm or mucus?"),
				yesNo("pneumonia_chest", "Do you feel chest pain when breathing deeply or coughing?"),
				yesNo("pneumonia_fever", "Do you have high fever with chills?"),
			},
		},
		{
			Disease:   domain.BronchialAsthma,
			Questions: []domain.FollowUpQuestion{
				yesNo("asthma_wheeze", "Do you hear a whistling or wheezing sound when breathing?"),
				yesNo("asthma_trigger", "Do symptoms worsen with exercise, cold air, or allergens?"),
				yesNo("asthma_tight", "Does your chest feel tight?"),
			},
		},
		{
			Disease:   domain.COPD,
			Questions: []domain.FollowUpQuestion{
				yesNo("copd_chronic", "Have you had a cough that has persisted for many weeks or months?"),
				yesNo("copd_mucus", "Do you regularly cough up mucus?"),
				yesNo("copd_breathless", "Do you get short of breath even with mild activity?"),
			},
		},
		{
			Disease:   domain.Sinusitis,
			Questions: []domain.FollowUpQuestion{
				yesNo("sinusitis_facial", "Do you have pain or pressure around your forehead, cheeks, or eyes?"),
				yesNo("sinusitis_discharge", "Do you have thick, colored nasal discharge?"),
				yesNo("sinusitis_congestion", "Is your nose blocked or congested?"),
			},
		},
		{
			Disease:   domain.CommonCold,
			Questions: []domain.FollowUpQuestion{
				yesNo("cold_runny", "Do you have a runny or stuffy nose?"),
				yesNo("cold_sneeze", "Are you sneezing frequently?"),
				yesNo("cold_throat", "Is your throat sore or scratchy?"),
			},
		},
		{
			Disease:   domain.Tonsillitis,
			Questions: []domain.FollowUpQuestion{
				yesNo("cold_throat", "Is your throat very sore?"),
				yesNo("pneumonia_fever", "Do you have fever?"),
			},
		},
		{
			Disease:   domain.Pharyngitis,
			Questions: []domain.FollowUpQuestion{
				yesNo("cold_throat", "Do you have throat pain, especially when swallowing?"),
				yesNo("pneumonia_fever", "Do you have fever?"),
			},
		},
		{
			Disease:   domain.GERD,
			Questions: []domain.FollowUpQuestion{
				yesNo("gerd_heartburn", "Do you experience burning in your chest after eating?"),
				yesNo("gerd_regurg", "Do you have acid or food coming back up into your throat?"),
				yesNo("gerd_lying", "Do symptoms worsen when lying down?"),
			},
		},
		{
			Disease:   domain.Gastritis,
			Questions: []domain.FollowUpQuestion{
				yesNo("gastritis_burning", "Do you have burning pain in your upper stomach?"),
				yesNo("gastritis_nausea", "Do you feel nauseous?"),
				yesNo("gastritis_bloat", "Do you feel bloated or have indigestion?"),
			},
		},
		{
			Disease:   domain.PepticUlcer,
			Questions: []domain.FollowUpQuestion{
				yesNo("ulcer_pain", "Do you have burning stomach pain between meals or at night?"),
				yesNo("ulcer_relief", "Does eating or taking antacids temporarily relieve the pain?"),
			},
		},
		{
			Disease:   domain.IBS,
			Questions: []domain.FollowUpQuestion{
				yesNo("ibs_cramping", "Do you experience abdominal cramping or pain?"),
				yesNo("ibs_bloating", "Do you feel bloated frequently?"),
				yesNo("ibs_bowel", "Do you have irregular bowel movements (alternating constipation/diarrhea)?"),
			},
		},
		{
			Disease:   domain.Gastroenteritis,
			Questions: []domain.FollowUpQuestion{
				yesNo("gastro_diarrhea", "Do you have watery diarrhea?"),
				yesNo("gastro_vomit", "Have you been vomiting?"),
				yesNo("gastro_cramps", "Do you have stomach cramps?"),
			},
		},
		{
			Disease:   domain.FoodPoisoning,
			Questions: []domain.FollowUpQuestion{
				yesNo("foodpois_sudden", "Did vomiting or diarrhea start suddenly?"),
				yesNo("foodpois_food", "Did you eat anything suspicious or undercooked recently?"),
			},
		},
		{
			Disease:   domain.UrinaryTractInfection,
			Questions: []domain.FollowUpQuestion{
				yesNo("uti_burn", "Do you feel burning or pain when urinating?"),
				yesNo("uti_frequent", "Are you urinating more frequently or feeling urgent need?"),
				yesNo("uti_cloudy", "Is your urine cloudy or has an unusual smell?"),
				yesNo("uti_pelvic", "Do you have pain in your lower abdomen or pelvic area?"),
			},
		},
		{
			Disease:   domain.KidneyStones,
			Questions: []domain.FollowUpQuestion{
				yesNo("kidney_flank", "Do you have severe pain in your side or back that radiates to groin?"),
				yesNo("kidney_blood", "Have you noticed blood in your urine?"),
				yesNo("kidney_nausea", "Do you have nausea or pain when urinating?"),
			},
		},
		{
			Disease:   domain.Diabetes,
			Questions: []domain.FollowUpQuestion{
				yesNo("diabetes_thirst", "Are you experiencing excessive thirst and frequent urination?"),
				yesNo("diabetes_weight", "Have you had unexplained weight loss?"),
				yesNo("diabetes_fatigue", "Do you feel unusually tired or have blurred vision?"),
			},
		},
		{
			Disease:   domain.Hypothyroidism,
			Questions: []domain.FollowUpQuestion{
				yesNo("hypo_fatigue", "Are you feeling unusually tired or sluggish?"),
				yesNo("hypo_cold", "Are you more sensitive to cold than usual?"),
				yesNo("hypo_weight", "Have you gained weight without changing your diet?"),
				yesNo("hypo_constip", "Do you have constipation or dry skin?"),
			},
		},
		{
			Disease:   domain.Hyperthyroidism,
			Questions: []domain.FollowUpQuestion{
				yesNo("hyper_weight", "Have you lost weight despite eating normally?"),
				yesNo("hyper_heart", "Is your heart racing or beating rapidly?"),
				yesNo("hyper_heat", "Do you feel overheated or intolerant to heat?"),
				yesNo("hyper_anxiety", "Do you feel anxious, nervous, or have hand tremors?"),
			},
		},
		{
			Disease:   domain.PCOS,
			Questions: []domain.FollowUpQuestion{
				yesNo("pcos_periods", "Are your periods irregular or infrequent?"),
				yesNo("pcos_hair", "Do you have excess facial or body hair growth?"),
				yesNo("pcos_acne", "Do you have acne or have you gained weight recently?"),
			},
		},
		{
			Disease:   domain.Arthritis,
			Questions: []domain.FollowUpQuestion{
				yesNo("arthritis_joint", "Do you have pain and swelling in your joints?"),
				yesNo("arthritis_stiff", "Are your joints stiff, especially in the morning?"),
				yesNo("arthritis_motion", "Is your range of motion in affected joints reduced?"),
			},
		},
		{
			Disease:   domain.Osteoarthritis,
			Questions: []domain.FollowUpQuestion{
				yesNo("arthritis_joint", "Do you have joint pain that worsens with activity?"),
				yesNo("arthritis_stiff", "Do you have morning stiffness lasting less than 30 minutes?"),
			},
		},
		{
			Disease:   domain.Sciatica,
			Questions: []domain.FollowUpQuestion{
				yesNo("sciatica_radiating", "Does pain radiate from your lower back down your leg?"),
				yesNo("sciatica_numb", "Do you have numbness or tingling in your leg?"),
				yesNo("sciatica_sitting", "Is the pain worse when sitting?"),
			},
		},
		{
			Disease:   domain.MuscleStrain,
			Questions: []domain.FollowUpQuestion{
				yesNo("strain_tender", "Is the affected muscle tender to touch?"),
				yesNo("strain_limited", "Is your movement limited in that area?"),
				yesNo("strain_swelling", "Is there swelling or bruising?"),
			},
		},
		{
			Disease:   domain.Migraine,
			Questions: []domain.FollowUpQuestion{
				yesNo("migraine_one_side", "Is the headache on one side of your head?"),
				yesNo("migraine_throb", "Is the pain throbbing or pulsating?"),
				yesNo("migraine_light", "Does light or sound make the headache worse?"),
				yesNo("migraine_nausea", "Do you feel nauseous or have you vomited?"),
			},
		},
		{
			Disease:   domain.TensionHeadache,
			Questions: []domain.FollowUpQuestion{
				yesNo("tension_band", "Does it feel like a tight band around your head?"),
				yesNo("tension_neck", "Do you have neck stiffness or shoulder tension?"),
			},
		},
		{
			Disease:   domain.Vertigo,
			Questions: []domain.FollowUpQuestion{
				yesNo("vertigo_spinning", "Does the room feel like it's spinning around you?"),
				yesNo("vertigo_balance", "Do you have trouble keeping your balance?"),
				yesNo("vertigo_nausea", "Do you feel nauseous or sweaty with these episodes?"),
			},
		},
		{
			Disease:   domain.ViralFever,
			Questions: []domain.FollowUpQuestion{
				yesNo("viral_fever", "Do you have a fever?"),
				yesNo("viral_body", "Do you have body aches or muscle pain?"),
				yesNo("viral_fatigue", "Are you feeling very tired or weak?"),
			},
		},
		{
			Disease:   domain.Flu,
			Questions: []domain.FollowUpQuestion{
				yesNo("viral_fever", "Did fever come on suddenly?"),
				yesNo("viral_body", "Do you have severe body aches?"),
				yesNo("viral_fatigue", "Are you feeling extremely fatigued?"),
			},
		},
		{
			Disease:   domain.Dengue,
			Questions: []domain.FollowUpQuestion{
				yesNo("dengue_eyes", "Do you have pain behind your eyes?"),
				yesNo("dengue_rash", "Have you noticed any skin rash?"),
				yesNo("dengue_joint", "Do you have severe joint or muscle pain?"),
			},
		},
		{
			Disease:   domain.Typhoid,
			Questions: []domain.FollowUpQuestion{
				yesNo("typhoid_prolonged", "Has your fever been persistent for several days?"),
				yesNo("typhoid_weakness", "Do you feel very weak with abdominal discomfort?"),
				yesNo("typhoid_appetite", "Have you lost your appetite?"),
			},
		},
		{
			Disease:   domain.Malaria,
			Questions: []domain.FollowUpQuestion{
				yesNo("malaria_cyclic", "Do you have fever episodes with chills and sweating that come and go?"),
				yesNo("malaria_sweating", "Do you experience intense sweating after the fever subsides?"),
			},
		},
		{
			Disease:   domain.COVID19,
			Questions: []domain.FollowUpQuestion{
				yesNo("covid_taste", "Have you lost your sense of taste or smell?"),
				yesNo("covid_cough", "Do you have a dry cough?"),
				yesNo("covid_sob", "Are you experiencing shortness of breath?"),
			},
		},
		{
			Disease:   domain.Tuberculosis,
			Questions: []domain.FollowUpQuestion{
				yesNo("tb_cough", "Have you had a persistent cough for more than 2 weeks?"),
				yesNo("tb_night", "Do you have night sweats?"),
				yesNo("tb_weight", "Have you had unexplained weight loss?"),
			},
		},
		{
			Disease:   domain.Angina,
			Questions: []domain.FollowUpQuestion{
				yesNo("angina_exertion", "Do you get chest discomfort or tightness during physical activity?"),
				yesNo("angina_rest", "Does the discomfort go away with rest?"),
			},
		},
		{
			Disease:   domain.Palpitations,
			Questions: []domain.FollowUpQuestion{
				yesNo("palp_racing", "Does your heart feel like it's racing or skipping beats?"),
				yesNo("palp_flutter", "Do you feel a fluttering sensation in your chest?"),
			},
		},
		{
			Disease:   domain.Conjunctivitis,
			Questions: []domain.FollowUpQuestion{
				yesNo("conj_red", "Are your eyes red or pink?"),
				yesNo("conj_discharge", "Do you have discharge from your eyes?"),
				yesNo("conj_itchy", "Are your eyes itchy?"),
			},
		},
		{
			Disease:   domain.Allergy,
			Questions: []domain.FollowUpQuestion{
				yesNo("cold_sneeze", "Are you sneezing frequently?"),
				yesNo("urticaria_hives", "Do you have hives or itchy skin?"),
				yesNo("cold_runny", "Do you have a runny nose or watery eyes?"),
			},
		},
		{
			Disease:   domain.Jaundice,
			Questions: []domain.FollowUpQuestion{
				yesNo("viral_fatigue", "Are you feeling fatigued?"),
				yesNo("gastritis_nausea", "Do you feel nauseous?"),
			},
		},
		{
			Disease:   domain.HepatitisA,
			Questions: []domain.FollowUpQuestion{
				yesNo("viral_fatigue", "Are you feeling very tired?"),
				yesNo("gastritis_nausea", "Do you have nausea or loss of appetite?"),
			},
		},
		{
			Disease:   domain.HepatitisB,
			Questions: []domain.FollowUpQuestion{
				yesNo("viral_fatigue", "Are you feeling very tired?"),
				yesNo("gastritis_nausea", "Do you have nausea or abdominal pain?"),
			},
		},
		{
			Disease:   domain.Anemia,
			Questions: []domain.FollowUpQuestion{
				yesNo("viral_fatigue", "Are you feeling unusually tired or weak?"),
				yesNo("vertigo_balance", "Do you feel dizzy or lightheaded?"),
			},
		},
	}
}

// defaultFollowUp is offered when a disease has no bank of its own.
func defaultFollowUp() []domain.FollowUpQuestion {
	return []domain.FollowUpQuestion{
		yesNo("viral_fatigue", "Are you feeling unusually tired or weak?"),
		yesNo("viral_fever", "Do you have a fever?"),
		yesNo("gastritis_nausea", "Do you feel nauseous?"),
	}
}
