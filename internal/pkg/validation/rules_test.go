package validation

import "testing"

func TestValidIDNumber(t *testing.T) {
	tests := []struct {
		idNumber string
		want     bool
	}{
		{"2021-1234", true},
		{"0000-0000", true},
		{"2021-123", false},
		{"202-1234", false},
		{"20211234", false},
		{"2021-12345", false},
		{"abcd-efgh", false},
		{" 2021-1234", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidIDNumber(tt.idNumber); got != tt.want {
			t.Errorf("ValidIDNumber(%q) = %v, want %v", tt.idNumber, got, tt.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"admin@gmail.com", true},
		{"first.last+tag@sub.example.edu", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestRequiredString(t *testing.T) {
	if RequiredString("   ") {
		t.Error("whitespace-only string should not satisfy RequiredString")
	}
	if !RequiredString("CCS") {
		t.Error("non-empty string should satisfy RequiredString")
	}
}
