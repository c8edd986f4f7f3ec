package generate

import "testing"

func TestApplyStylePreset(t *testing.T) {
	lib := PresetLibrary{"x": "{p}, artstation ### blurry"}
	got := lib.Apply("cat", "x")
	want := "cat, artstation ### blurry"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApplyUnknownPresetLeavesPromptAlone(t *testing.T) {
	lib := PresetLibrary{"x": "{p}, artstation"}
	if got := lib.Apply("cat", "missing"); got != "cat" {
		t.Fatalf("unknown preset should pass through, got %q", got)
	}
	if got := lib.Apply("cat", ""); got != "cat" {
		t.Fatalf("empty preset should pass through, got %q", got)
	}
	if got := lib.Apply("cat", "none"); got != "cat" {
		t.Fatalf("preset none should pass through, got %q", got)
	}
}

func TestApplyMergesNegativeSegments(t *testing.T) {
	lib := PresetLibrary{"x": "{p}, oil painting ### frame, canvas"}
	got := lib.Apply("dog ### watermark", "x")
	want := "dog, oil painting ### frame, canvas, watermark"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApplyUserNegativeOnly(t *testing.T) {
	lib := PresetLibrary{"x": "{p}, sketch"}
	got := lib.Apply("dog ### watermark", "x")
	want := "dog, sketch ### watermark"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestApplyPlaceholderCaseInsensitiveFirstOccurrence(t *testing.T) {
	lib := PresetLibrary{"x": "{P} and then {p}"}
	got := lib.Apply("cat", "x")
	want := "cat and then {p}"
	if got != want {
		t.Fatalf("Apply = %q, want %q", got, want)
	}
}

func TestSplitPrompt(t *testing.T) {
	pos, neg := SplitPrompt("cat ### blurry, lowres")
	if pos != "cat" || neg != "blurry, lowres" {
		t.Fatalf("SplitPrompt mismatch: %q / %q", pos, neg)
	}
	pos, neg = SplitPrompt("cat")
	if pos != "cat" || neg != "" {
		t.Fatalf("SplitPrompt without divider mismatch: %q / %q", pos, neg)
	}
}
