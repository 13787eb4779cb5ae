package domain_test

import (
	"testing"

	"github.com/davargas/usuario-crud/internal/domain"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"john", "John"},
		{"JOHN", "John"},
		{"jOhN", "John"},
		{"j", "J"},
		{"", ""},
		{"álvaro", "Álvaro"},
		{"de la cruz", "De la cruz"},
	}

	for _, tc := range tests {
		if got := domain.Capitalize(tc.in); got != tc.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAccount_NormalizeNames(t *testing.T) {
	a := &domain.Account{FirstName: "john", LastName: "DOE"}
	a.NormalizeNames()

	if a.FirstName != "John" {
		t.Fatalf("expected first name John, got %q", a.FirstName)
	}
	if a.LastName != "Doe" {
		t.Fatalf("expected last name Doe, got %q", a.LastName)
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag_1-2@dominio.cl", true},
		{"u@d.co", true},
		{"no-at-sign.com", false},
		{"user@", false},
		{"@example.com", false},
		{"user@example", false},
		{"user@example.", false},
		{"user@exam-ple.com", false},
		{"user@example.c0m", false},
		{"user@@example.com", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := domain.ValidEmail(tc.email); got != tc.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
