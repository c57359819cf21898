package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importance(v float64) *float64 {
	return &v
}

func TestExtractDomains(t *testing.T) {
	payload := map[string]any{
		"sectionA": map[string]any{"selfConcept": "builder"},
		"sectionB": map[string]any{
			"domains": []any{
				map[string]any{"name": "Family", "importance": float64(9)},
				map[string]any{"name": "Career", "importance": "high"},
				map[string]any{"name": "Health"},
				"not-a-map",
				float64(42),
			},
		},
	}

	domains := ExtractDomains(payload)
	require.Len(t, domains, 3, "scalar entries are dropped silently")

	assert.Equal(t, "Family", domains[0].Name)
	require.NotNil(t, domains[0].Importance)
	assert.Equal(t, float64(9), *domains[0].Importance)

	assert.Equal(t, "Career", domains[1].Name)
	assert.Nil(t, domains[1].Importance, "non-numeric importance becomes absent")

	assert.Equal(t, "Health", domains[2].Name)
	assert.Nil(t, domains[2].Importance)
}

func TestExtractDomains_DegradesToEmpty(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"nil payload", nil},
		{"missing section", map[string]any{"sectionA": map[string]any{}}},
		{"section not a map", map[string]any{"sectionB": "oops"}},
		{"domains missing", map[string]any{"sectionB": map[string]any{}}},
		{"domains not a list", map[string]any{"sectionB": map[string]any{"domains": "Family"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, ExtractDomains(tc.payload))
		})
	}
}

func TestExtractDomains_IntImportance(t *testing.T) {
	// Payloads built in-process (CLI onboarding form) carry Go ints rather
	// than JSON float64s.
	payload := map[string]any{
		"sectionB": map[string]any{
			"domains": []any{
				map[string]any{"name": "Craft", "importance": 8},
			},
		},
	}
	domains := ExtractDomains(payload)
	require.Len(t, domains, 1)
	require.NotNil(t, domains[0].Importance)
	assert.Equal(t, float64(8), *domains[0].Importance)
}

func TestTokenizeDomainName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"ampersand", "Health & Fitness", []string{"health", "fitness"}},
		{"word and", "Family and Friends", []string{"family", "friends"}},
		{"mixed delimiters", "Family & Friends, and community", []string{"family", "friends", "community"}},
		{"slash", "Work/Life", []string{"work", "life"}},
		{"single token", "Career", []string{"career"}},
		{"and inside a word stays whole", "Band practice", []string{"band practice"}},
		{"only delimiters", " & , / ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TokenizeDomainName(tc.in))
		})
	}
}

func TestMissingDomains_MentionedAndSubThreshold(t *testing.T) {
	domains := []Domain{
		{Name: "Family", Importance: importance(9)},
		{Name: "Career", Importance: importance(3)},
	}

	missing := MissingDomains("spent time with family", domains, DefaultImportanceThreshold)
	assert.Empty(t, missing, "Career excluded by importance, Family mentioned")
}

func TestMissingDomains_ReportsUnmentioned(t *testing.T) {
	domains := []Domain{
		{Name: "Family", Importance: importance(9)},
		{Name: "Career", Importance: importance(3)},
	}

	missing := MissingDomains("worked all day", domains, DefaultImportanceThreshold)
	assert.Equal(t, []string{"Family"}, missing)
}

func TestMissingDomains_SkipsUnevaluable(t *testing.T) {
	domains := []Domain{
		{Name: "Health", Importance: nil},
		{Name: "   ", Importance: importance(9)},
		{Name: " & ", Importance: importance(9)},
	}

	missing := MissingDomains("nothing relevant", domains, DefaultImportanceThreshold)
	assert.Empty(t, missing, "absent importance, blank names, and token-free names are never reported")
}

func TestMissingDomains_PreservesInputOrder(t *testing.T) {
	domains := []Domain{
		{Name: "Zen", Importance: importance(8)},
		{Name: "Art", Importance: importance(10)},
		{Name: "Music", Importance: importance(7)},
	}

	missing := MissingDomains("a plain day", domains, DefaultImportanceThreshold)
	assert.Equal(t, []string{"Zen", "Art", "Music"}, missing)
}

func TestMissingDomains_TokenSubstringMatch(t *testing.T) {
	domains := []Domain{
		{Name: "Health & Fitness", Importance: importance(9)},
	}

	assert.Empty(t, MissingDomains("went to the fitness studio", domains, DefaultImportanceThreshold))
	assert.Equal(t, []string{"Health & Fitness"},
		MissingDomains("answered email", domains, DefaultImportanceThreshold))
}
