package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"longenough1", true},
		{"short", false},
		{" padded-pass", false},
		{"padded-pass ", false},
		{"exactly8", true},
	}
	for _, c := range cases {
		if got, _ := ValidatePassword(c.password); got != c.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", c.password, got, c.want)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"with\x00null", "withnull"},
		{"line1\nline2", "line1\nline2"},
		{"tab\there", "tab\there"},
		{"bell\x07gone", "bellgone"},
		{"中文保留", "中文保留"},
	}
	for _, c := range cases {
		if got := SanitizeInput(c.in); got != c.want {
			t.Errorf("SanitizeInput(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
