package tryon

import (
	"fmt"
	"strings"
)

// Model is the closed set of try-on variants a caller may request. The
// variants share the same generation endpoint and differ only in prompt
// strategy.
type Model string

const (
	// ModelStandard uses the category prompt template as-is.
	ModelStandard Model = "google-tryon"
	// ModelDetailed appends a fabric fidelity directive to the prompt.
	ModelDetailed Model = "google-tryon-detailed"
)

// ParseModel resolves the requested model name. An empty name selects the
// standard variant.
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(ModelStandard):
		return ModelStandard, nil
	case string(ModelDetailed):
		return ModelDetailed, nil
	default:
		return "", fmt.Errorf("unsupported AI model: %s", name)
	}
}

const (
	maleDrapingTemplate = "Create a photorealistic virtual try-on image showing the person from the second " +
		"photo wearing the \"%s\" from the first photo, draped in the traditional South Indian " +
		"style around the waist and legs. Preserve the person's face, pose and lighting exactly " +
		"as in their photo, and faithfully reproduce the garment's fabric, pattern and color."

	femaleDrapingTemplate = "Create a photorealistic virtual try-on image showing the person from the second " +
		"photo elegantly wearing the \"%s\" from the first photo, draped in the classic saree " +
		"style with the pallu over the shoulder. Preserve the person's face, pose and lighting " +
		"exactly as in their photo, and faithfully reproduce the saree's fabric, pattern, border " +
		"and color."

	genericTemplate = "Create a photorealistic virtual try-on image showing the person from the second " +
		"photo wearing the \"%s\" (%s) from the first photo, fitted naturally on their body. " +
		"Preserve the person's face, pose and lighting exactly as in their photo, and faithfully " +
		"reproduce the garment's fabric, pattern and color."

	detailDirective = " Render the weave, texture and any embroidery of the fabric in close detail, " +
		"keeping every motif and color transition true to the original garment."
)

// PromptFor selects the prompt template by garment category,
// case-insensitively, and interpolates the garment's display name.
func PromptFor(model Model, garmentName, category string) string {
	var prompt string
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "vesti", "dhoti", "lungi":
		prompt = fmt.Sprintf(maleDrapingTemplate, garmentName)
	case "saree", "sari":
		prompt = fmt.Sprintf(femaleDrapingTemplate, garmentName)
	default:
		prompt = fmt.Sprintf(genericTemplate, garmentName, category)
	}

	if model == ModelDetailed {
		prompt += detailDirective
	}
	return prompt
}
