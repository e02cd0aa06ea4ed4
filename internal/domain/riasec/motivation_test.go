package riasec

import "testing"

var testMotivations = map[string]string{
	"RI":                 "pemecah masalah yang praktis",
	"AS":                 "seni yang menyentuh hati",
	MotivationDefaultKey: "kombinasi minat yang unik",
}

func TestResolveMotivation_ExactCode(t *testing.T) {
	if got := ResolveMotivation("RI", testMotivations); got != testMotivations["RI"] {
		t.Fatalf("unexpected motivation: %q", got)
	}
}

func TestResolveMotivation_ReversedCode(t *testing.T) {
	if got := ResolveMotivation("IR", testMotivations); got != testMotivations["RI"] {
		t.Fatalf("expected reversed-code lookup, got %q", got)
	}
	if ResolveMotivation("SA", testMotivations) != ResolveMotivation("AS", testMotivations) {
		t.Fatalf("motivation lookup must be symmetric")
	}
}

func TestResolveMotivation_UnknownAndEmptyFallBack(t *testing.T) {
	if got := ResolveMotivation("XX", testMotivations); got != testMotivations[MotivationDefaultKey] {
		t.Fatalf("expected default for unknown code, got %q", got)
	}
	if got := ResolveMotivation("", testMotivations); got != testMotivations[MotivationDefaultKey] {
		t.Fatalf("expected default for empty code, got %q", got)
	}
}
