package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsOrder(t *testing.T) {
	steps := Steps()
	require.Len(t, steps, 4)
	keys := []string{"health", "lifestyle", "financial", "results"}
	for i, s := range steps {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, keys[i], s.Key)
	}
	assert.Empty(t, steps[3].Fields)
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("Lifestyle")
	require.True(t, ok)
	assert.Equal(t, 2, s.ID)

	s, ok = Lookup("3")
	require.True(t, ok)
	assert.Equal(t, "financial", s.Key)

	_, ok = Lookup("payment")
	assert.False(t, ok)
}

func TestMultiSelectOptionsIncludeNone(t *testing.T) {
	for _, s := range Steps() {
		for _, f := range s.Fields {
			if f.Kind != KindMulti || f.Name == "financialGoals" {
				continue
			}
			assert.Contains(t, f.Options, "None", "%s.%s", s.Key, f.Name)
		}
	}
}

func TestValidateRequired(t *testing.T) {
	step, _ := Lookup("health")

	errs := Validate(step, map[string]any{})
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	assert.ElementsMatch(t, []string{"age", "height", "weight", "smokingStatus", "alcoholConsumption"}, names)

	errs = Validate(step, map[string]any{
		"age":                "34",
		"height":             float64(170),
		"weight":             "70",
		"smokingStatus":      "never",
		"alcoholConsumption": "none",
	})
	assert.Empty(t, errs)
}

func TestValidateBlankCountsAsMissing(t *testing.T) {
	step, _ := Lookup("lifestyle")
	answers := map[string]any{
		"exerciseFrequency": "  ",
		"sleepHours":        "7-8",
		"dietType":          "balanced",
		"stressLevel":       "low",
		"workEnvironment":   "office",
		"travelFrequency":   "never",
		"socialSupport":     "strong",
		"workLifeBalance":   "good",
	}
	errs := Validate(step, answers)
	require.Len(t, errs, 1)
	assert.Equal(t, "exerciseFrequency", errs[0].Field)
	assert.Equal(t, "exerciseFrequency: Exercise frequency is required", errs[0].Error())
}

func TestValidateIgnoresOptionalAndUnknown(t *testing.T) {
	step, _ := Lookup("financial")
	answers := map[string]any{}
	for _, f := range step.Fields {
		if f.Required {
			answers[f.Name] = f.Options[0]
		}
	}
	answers["unexpected"] = "value"
	assert.Empty(t, Validate(step, answers))
}
