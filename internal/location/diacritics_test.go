package location_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TirlaP/lista-firme-backend/internal/location"
)

func TestFlexiblePattern_DiacriticsBothWays(t *testing.T) {
	cases := []struct {
		term    string
		matches []string
	}{
		// ASCII input matches diacritic forms.
		{"Brasov", []string{"Brașov", "Brasov", "BRAȘOV"}},
		{"Timisoara", []string{"Timișoara", "Timisoara"}},
		// Diacritic input matches ASCII forms.
		{"Brașov", []string{"Brasov", "Brașov"}},
		{"Constanța", []string{"Constanta", "Constanța", "Constanţa"}},
		// Cedilla and comma-below forms are interchangeable.
		{"Constanţa", []string{"Constanța", "Constanta"}},
	}

	for _, tc := range cases {
		pattern := location.FlexiblePattern(tc.term, true)
		re, err := regexp.Compile("(?i)" + pattern)
		assert.NoError(t, err, pattern)
		for _, m := range tc.matches {
			assert.True(t, re.MatchString(m), "%q should match %q via %s", tc.term, m, pattern)
		}
	}
}

func TestFlexiblePattern_Anchoring(t *testing.T) {
	exact := location.FlexiblePattern("Cluj", true)
	re := regexp.MustCompile("(?i)" + exact)
	assert.True(t, re.MatchString("Cluj"))
	assert.False(t, re.MatchString("Cluj-Napoca"))

	loose := location.FlexiblePattern("Cluj", false)
	re = regexp.MustCompile("(?i)" + loose)
	assert.True(t, re.MatchString("Cluj-Napoca"))
}

func TestFlexiblePattern_EscapesRegexSpecials(t *testing.T) {
	pattern := location.FlexiblePattern("Piatra (Neamt)", true)
	re, err := regexp.Compile("(?i)" + pattern)
	assert.NoError(t, err)
	assert.True(t, re.MatchString("Piatra (Neamț)"))
	assert.False(t, re.MatchString("Piatra Neamț"))
}
