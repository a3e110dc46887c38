package domain

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple word", "chat", "CHAT"},
		{"extended letters preserved", "gård", "GÅRD"},
		{"mixed diacritics", "café", "CAFÉ"},
		{"all extended", "åäöé", "ÅÄÖÉ"},
		{"strips digits and punctuation", "Ko3-rs,ord!", "KORSORD"},
		{"empty string", "", ""},
		{"already uppercase", "ÖRNSKÖLDSVIK", "ÖRNSKÖLDSVIK"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fold(tc.input); got != tc.expected {
				t.Errorf("Fold(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestStripBlockGlyph(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"■KATT■\n", "KATT"},
		{" KATT ", "KATT"},
		{"KATT", "KATT"},
	}
	for _, tc := range tests {
		if got := StripBlockGlyph(tc.input); got != tc.expected {
			t.Errorf("StripBlockGlyph(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestIsAlphabet(t *testing.T) {
	for _, r := range []rune{'A', 'Z', 'Å', 'Ä', 'Ö', 'É'} {
		if !IsAlphabet(r) {
			t.Errorf("IsAlphabet(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '1', ' ', '#', 'Ø'} {
		if IsAlphabet(r) {
			t.Errorf("IsAlphabet(%q) = true, want false", r)
		}
	}
}
