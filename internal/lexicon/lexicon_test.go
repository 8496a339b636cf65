package lexicon

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UtsavYadav1/WellSure/internal/domain"
)

func TestDefault_Validates(t *testing.T) {
	lex, err := New()
	require.NoError(t, err)
	assert.NoError(t, lex.Validate())
	assert.Same(t, Default(), Default())
}

func TestProfiles_CoverEveryKnownDisease(t *testing.T) {
	lex := Default()
	profiles := lex.Profiles()
	require.Len(t, profiles, domain.KnownDiseaseCount())

	seen := make(map[domain.Disease]bool)
	for _, p := range profiles {
		assert.True(t, p.Disease.IsValid(), "profile %q", p.Disease)
		assert.False(t, seen[p.Disease], "duplicate profile %q", p.Disease)
		seen[p.Disease] = true
	}
}

func TestProfiles_RedefinedDiseasesKeepFirstPosition(t *testing.T) {
	profiles := Default().Profiles()

	assert.Equal(t, domain.Psoriasis, profiles[0].Disease)

	pneumonia, ok := Default().Profile(domain.Pneumonia)
	require.True(t, ok)
	assert.Contains(t, pneumonia.Primary, "cough with mucus")

	var pneumoniaPos, lastPos int
	for i, p := range profiles {
		if p.Disease == domain.Pneumonia {
			pneumoniaPos = i
		}
		lastPos = i
	}
	assert.Less(t, pneumoniaPos, lastPos/2)
}

func TestGlobalAliases_LongestFirstStable(t *testing.T) {
	aliases := Default().GlobalAliases()
	require.NotEmpty(t, aliases)

	for i := 1; i < len(aliases); i++ {
		prev := utf8.RuneCountInString(aliases[i-1].Alias)
		cur := utf8.RuneCountInString(aliases[i].Alias)
		assert.GreaterOrEqual(t, prev, cur, "%q before %q", aliases[i-1].Alias, aliases[i].Alias)
	}

	// Longer aliases containing shorter ones must be applied first.
	idx := func(alias string) int {
		for i, a := range aliases {
			if a.Alias == alias {
				return i
			}
		}
		return -1
	}
	assert.Less(t, idx("itchy"), idx("itch"))
	assert.Less(t, idx("khujli ho rahi"), idx("khujli"))
}

func TestPhraseFixes_CaseInsensitive(t *testing.T) {
	fixes := Default().PhraseFixes()
	require.NotEmpty(t, fixes)
	assert.True(t, fixes[0].Pattern.MatchString("SAANS PHOOL RAHI"))
	assert.Equal(t, "saans phoolna", fixes[0].Replacement)
}

func TestSingular(t *testing.T) {
	lex := Default()
	assert.Equal(t, "rash", lex.Singular("rashes"))
	assert.Equal(t, "chill", lex.Singular("chills"))
	assert.Equal(t, "fever", lex.Singular("fever"))
}

func TestSymptomVariants(t *testing.T) {
	lex := Default()
	assert.Contains(t, lex.SymptomVariants("ring shaped rash"), "ringworm")
	assert.Nil(t, lex.SymptomVariants("not a canonical phrase"))
}

func TestFollowUpBank(t *testing.T) {
	lex := Default()

	qs, ok := lex.FollowUpBank(domain.FungalInfection)
	require.True(t, ok)
	require.Len(t, qs, 3)
	assert.Equal(t, "fungal_ring", qs[0].ID)
	assert.Equal(t, domain.QuestionTypeYesNo, qs[0].Type)

	fallback, ok := lex.FollowUpBank(domain.Disease("UTI"))
	assert.False(t, ok)
	require.Len(t, fallback, 3)
	assert.Equal(t, "viral_fatigue", fallback[0].ID)

	symptoms, ok := lex.QuestionSymptoms("fungal_ring")
	require.True(t, ok)
	assert.Equal(t, "ring shaped rash, scaly border", symptoms)
}

func TestSpecialist(t *testing.T) {
	lex := Default()

	tests := []struct {
		disease  domain.Disease
		expected string
	}{
		{domain.Psoriasis, "Dermatologist"},
		{domain.Urticaria, "Dermatologist"},
		{domain.Conjunctivitis, "Dermatologist"},
		{domain.HepatitisA, "Gastroenterologist"},
		{domain.Tuberculosis, "Pulmonologist"},
		{domain.Sciatica, "Rheumatologist"},
		{domain.Anemia, domain.GeneralPhysician},
		{domain.Meningitis, "Neurologist"},
		{domain.EmergencyAlert, domain.GeneralPhysician},
		{domain.Disease("Heart attack"), domain.GeneralPhysician},
	}

	for _, tt := range tests {
		t.Run(tt.disease.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, lex.Specialist(tt.disease))
		})
	}
}

func TestAgeBrackets_Boundaries(t *testing.T) {
	brackets := Default().AgeBrackets()

	find := func(age int) string {
		for _, b := range brackets {
			if b.Contains(age) {
				return b.Name
			}
		}
		return ""
	}

	assert.Equal(t, "elderly", find(65))
	assert.Equal(t, "middle_aged", find(64))
	assert.Equal(t, "middle_aged", find(45))
	assert.Equal(t, "", find(44))
	assert.Equal(t, "", find(31))
	assert.Equal(t, "young_adult", find(30))
	assert.Equal(t, "young_adult", find(18))
	assert.Equal(t, "pediatric", find(17))
	assert.Equal(t, "pediatric", find(0))
}

func TestReservedAnswerKeys(t *testing.T) {
	lex := Default()
	assert.True(t, lex.IsReservedAnswerKey("symptoms"))
	assert.True(t, lex.IsReservedAnswerKey("original_confidence"))
	assert.False(t, lex.IsReservedAnswerKey("fungal_ring"))
}

func TestValidate_ReportsBrokenTables(t *testing.T) {
	lex, err := New()
	require.NoError(t, err)

	lex.profiles = append(lex.profiles,
		domain.DiseaseProfile{Disease: domain.Psoriasis, Primary: []string{"x"}},
		domain.DiseaseProfile{Disease: domain.Disease("Gout")},
	)
	lex.routes = append(lex.routes, SpecialistRoute{Specialist: "Vascular Surgeon", Diseases: []domain.Disease{"Varicose veins"}})

	err = lex.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate disease "Psoriasis"`)
	assert.Contains(t, err.Error(), `unknown disease "Gout"`)
	assert.Contains(t, err.Error(), `"Gout" has no primary or supporting symptoms`)
	assert.ErrorIs(t, err, domain.ErrUnknownDisease)
}
