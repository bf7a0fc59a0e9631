package challenge

import "testing"

func TestTypeValid(t *testing.T) {
	for _, ct := range AllTypes() {
		if !ct.Valid() {
			t.Errorf("Valid() = false for %q", ct)
		}
	}
	if Type("timed_sprint").Valid() {
		t.Error("Valid() = true for unknown type")
	}
	if Type("").Valid() {
		t.Error("Valid() = true for empty type")
	}
}

func TestTypeDisplayName(t *testing.T) {
	tests := []struct {
		ct   Type
		want string
	}{
		{TypeErrorSpotting, "Error Spotting"},
		{TypeMicroQuiz, "Micro Quiz"},
		{TypeNativeCheck, "Native Check"},
		{Type("custom"), "custom"},
	}
	for _, tt := range tests {
		if got := tt.ct.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.ct, got, tt.want)
		}
	}
}

func TestValidLevel(t *testing.T) {
	for _, l := range CEFRLevels() {
		if !ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = false", l)
		}
	}
	if ValidLevel("D1") {
		t.Error("ValidLevel(D1) = true")
	}
	if ValidLevel("a1") {
		t.Error("ValidLevel(a1) = true, levels are uppercase")
	}
}
