package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " bizquery-api ")
	log := New().Prefix("LOG_")

	if got := log.Get("SERVICE", "x"); got != "bizquery-api" {
		t.Fatalf("Get(SERVICE) = %q", got)
	}
	if got := log.Get("COMPONENT", "none"); got != "none" {
		t.Fatalf("Get(COMPONENT) = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	log := New().Prefix("LOG_")
	tests := []struct {
		env  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{" TRUE ", false, true},
		{"yes", false, true},
		{"on", false, true},
		{"0", true, false},
		{"no", true, false},
		{"garbage", true, false},
	}
	for _, tc := range tests {
		t.Run("env="+tc.env, func(t *testing.T) {
			t.Setenv("LOG_CALLER", tc.env)
			if got := log.GetBool("CALLER", tc.def); got != tc.want {
				t.Fatalf("GetBool(%q, %v) = %v", tc.env, tc.def, got)
			}
		})
	}
}

func TestGetInt(t *testing.T) {
	log := New().Prefix("LOG_")
	tests := []struct {
		env  string
		want int
	}{
		{"", 7},
		{"10", 10},
		{" 3 ", 3},
		{"-1", 7},
		{"ten", 7},
	}
	for _, tc := range tests {
		t.Run("env="+tc.env, func(t *testing.T) {
			t.Setenv("LOG_SAMPLE_EVERY", tc.env)
			if got := log.GetInt("SAMPLE_EVERY", 7); got != tc.want {
				t.Fatalf("GetInt(%q) = %d, want %d", tc.env, got, tc.want)
			}
		})
	}
}
