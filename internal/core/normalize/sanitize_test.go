package normalize

import "testing"

func TestScrub(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"empty", "", ""},
		{"clean ascii", "select all facilities", "select all facilities"},
		{"clean multibyte", "limits in € for Łódź", "limits in € for Łódź"},
		{"nul and bell", "erste\x00 lines\x07", "erste lines"},
		{"keeps tab and newline", "a\tb\nc\r", "a\tb\nc\r"},
		{"del", "pko\x7f bp", "pko bp"},
		{"c1 control", "oxnard\u0085 facilities", "oxnard facilities"},
		{"invalid bytes", string([]byte{'e', 0xff, 'u', 0xc3, 'r'}), "eur"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Scrub(tc.in); got != tc.out {
				t.Fatalf("Scrub(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestScrub_CleanInputNotCopied(t *testing.T) {
	in := "which companies have utilization over 80%?"
	if got := Scrub(in); got != in {
		t.Fatalf("Scrub changed clean input: %q", got)
	}
	if allocs := testing.AllocsPerRun(100, func() { _ = Scrub(in) }); allocs != 0 {
		t.Fatalf("Scrub allocated %v times on clean input", allocs)
	}
}
