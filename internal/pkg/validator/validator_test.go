package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDNI(t *testing.T) {
	valid := []string{"0801199912345", "1234567890123"}
	invalid := []string{"080119991234", "08011999123456", "0801-1999-1234", "abcdefghijklm", ""}
	for _, dni := range valid {
		if !IsValidDNI(dni) {
			t.Errorf("IsValidDNI(%q) = false, want true", dni)
		}
	}
	for _, dni := range invalid {
		if IsValidDNI(dni) {
			t.Errorf("IsValidDNI(%q) = true, want false", dni)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestHasWhitespace(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"admin", false},
		{"admin user", true},
		{"admin\tuser", true},
		{" admin", true},
		{"", false},
	}
	for _, c := range cases {
		got := HasWhitespace(c.input)
		if got != c.want {
			t.Errorf("HasWhitespace(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}
