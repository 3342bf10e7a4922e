package tryon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"textile-tryon-backend/internal/tryon"
)

func TestParseModel_Defaults(t *testing.T) {
	model, err := tryon.ParseModel("")
	assert.NoError(t, err)
	assert.Equal(t, tryon.ModelStandard, model)
}

func TestParseModel_CaseInsensitive(t *testing.T) {
	model, err := tryon.ParseModel("Google-Tryon-Detailed")
	assert.NoError(t, err)
	assert.Equal(t, tryon.ModelDetailed, model)
}

func TestParseModel_Unknown(t *testing.T) {
	_, err := tryon.ParseModel("dall-e")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported AI model")
}

func TestPromptFor_MaleDrapingCategories(t *testing.T) {
	for _, category := range []string{"vesti", "Dhoti", "LUNGI"} {
		prompt := tryon.PromptFor(tryon.ModelStandard, "Cotton Vesti", category)
		assert.Contains(t, prompt, "Cotton Vesti")
		assert.Contains(t, prompt, "waist and legs")
		assert.NotContains(t, prompt, "pallu")
	}
}

func TestPromptFor_SareeCategories(t *testing.T) {
	for _, category := range []string{"saree", "Sari", "SAREE"} {
		prompt := tryon.PromptFor(tryon.ModelStandard, "Silk Saree", category)
		assert.Contains(t, prompt, "Silk Saree")
		assert.Contains(t, prompt, "pallu")
	}
}

func TestPromptFor_UnknownCategoryUsesGenericTemplate(t *testing.T) {
	prompt := tryon.PromptFor(tryon.ModelStandard, "Festival Kurta", "Kurta")
	assert.Contains(t, prompt, "Festival Kurta")
	assert.Contains(t, prompt, "(Kurta)")
	assert.NotContains(t, prompt, "pallu")
	assert.NotContains(t, prompt, "waist and legs")
}

func TestPromptFor_DetailedAppendsDirective(t *testing.T) {
	standard := tryon.PromptFor(tryon.ModelStandard, "Silk Saree", "saree")
	detailed := tryon.PromptFor(tryon.ModelDetailed, "Silk Saree", "saree")

	assert.True(t, len(detailed) > len(standard))
	assert.Contains(t, detailed, standard)
	assert.Contains(t, detailed, "weave, texture")
	assert.NotContains(t, standard, "weave, texture")
}
