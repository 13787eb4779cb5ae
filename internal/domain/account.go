package domain

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// emailPattern is the format rule for account emails: a local part, an @,
// an alphanumeric domain, and an alphabetic TLD.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9.+_-]+@[A-Za-z0-9]+\.[A-Za-z]+$`)

// Account represents one registered user account.
//
// PasswordHash holds a bcrypt hash once the account is persisted; plaintext
// only passes through form structs during validation and is never stored.
type Account struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeNames applies the capitalization rule to both name fields.
func (a *Account) NormalizeNames() {
	a.FirstName = Capitalize(a.FirstName)
	a.LastName = Capitalize(a.LastName)
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
// Name fields are always stored in this form.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// ValidEmail reports whether s matches the account email format.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// AccountRepository defines persistence operations for accounts.
//
// The two update shapes are deliberate: UpdateProfile never touches the
// stored password column, UpdateProfileAndPassword overwrites it. Write
// operations return the affected row count so callers can tell a no-op
// from a hit without a re-fetch.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) (int64, error)
	GetByID(ctx context.Context, id int64) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error)
	UpdateProfile(ctx context.Context, account *Account) (int64, error)
	UpdateProfileAndPassword(ctx context.Context, account *Account) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
