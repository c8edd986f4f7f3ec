package generate

import "strings"

// PromptDivider separates the positive prompt from the negative prompt
// inside a single combined prompt string. The backend splits on the same
// token.
const PromptDivider = "###"

// promptPlaceholder marks where the user's positive prompt is substituted
// into a style preset template.
const promptPlaceholder = "{p}"

// PresetLibrary maps a style preset name to its prompt template. A template
// contains a {p} placeholder and may carry its own negative segment behind
// the prompt divider, e.g. "{p}, artstation ### blurry".
type PresetLibrary map[string]string

// DefaultPresets is a small built-in library. Deployments normally replace
// it with the table fetched from the backend.
var DefaultPresets = PresetLibrary{
	"artstation":   "{p}, artstation ### blurry, lowres",
	"photorealism": "{p}, photorealistic, 4k, sharp focus ### cartoon, painting, illustration",
	"anime":        "anime style, {p}, key visual ### photo, deformed, lowres",
	"watercolor":   "{p}, watercolor painting, soft wash ### photo, 3d render",
}

// Apply merges a prompt into the named preset's template. Unknown or empty
// preset names leave the prompt untouched. Both the template and the prompt
// may carry a negative segment behind the prompt divider; the merged output
// keeps the preset's negative first, comma-joined with the user's.
func (lib PresetLibrary) Apply(prompt, preset string) string {
	if preset == "" || preset == "none" {
		return prompt
	}
	template, ok := lib[preset]
	if !ok {
		return prompt
	}
	return injectPrompt(template, prompt)
}

func injectPrompt(template, prompt string) string {
	templatePos, templateNeg := SplitPrompt(template)
	promptPos, promptNeg := SplitPrompt(prompt)

	positive := replacePlaceholder(templatePos, promptPos)

	var negatives []string
	if templateNeg != "" {
		negatives = append(negatives, templateNeg)
	}
	if promptNeg != "" {
		negatives = append(negatives, promptNeg)
	}
	if len(negatives) == 0 {
		return strings.TrimSpace(positive)
	}
	return strings.TrimSpace(positive) + " " + PromptDivider + " " + strings.Join(negatives, ", ")
}

// SplitPrompt separates a combined prompt into its positive and negative
// halves. Text after the first divider, dividers included, belongs to the
// negative channel.
func SplitPrompt(prompt string) (positive, negative string) {
	before, after, found := strings.Cut(prompt, PromptDivider)
	if !found {
		return strings.TrimSpace(prompt), ""
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// replacePlaceholder substitutes the first {p} occurrence, matched without
// regard to case, with the user's positive prompt.
func replacePlaceholder(template, prompt string) string {
	idx := strings.Index(strings.ToLower(template), promptPlaceholder)
	if idx < 0 {
		return template
	}
	return template[:idx] + prompt + template[idx+len(promptPlaceholder):]
}
