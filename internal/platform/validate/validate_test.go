package validate

import "testing"

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"test@clinica.es", true},
		{"ana.garcia@gmail.com", true},
		{"error", false},
		{"sin-arroba.com", false},
		{"sin@punto", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidEmail(c.in); got != c.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  ana garcia  ", "Ana Garcia"},
		{"CARLOS LOPEZ", "Carlos Lopez"},
		{"beatriz", "Beatriz"},
		{"", ""},
	}
	for _, c := range cases {
		if got := FormatName(c.in); got != c.want {
			t.Errorf("FormatName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
