package engine

import "testing"

func TestCanonicalGCode(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"G1", "G1"},
		{"G01", "G1"},
		{"G00", "G0"},
		{"G90", "G90"},
		{"M08", "M8"},
		{"X10", "X10"},
		{"G", "G"},
	}
	for _, c := range cases {
		if got := canonicalGCode(c.raw); got != c.want {
			t.Errorf("canonicalGCode(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestHasGCode(t *testing.T) {
	if !hasGCode([]string{"G01", "G96"}, "G1") {
		t.Error("expected leading-zero G01 to match canonical G1")
	}
	if hasGCode([]string{"G2"}, "G1") {
		t.Error("did not expect G2 to match G1")
	}
}
