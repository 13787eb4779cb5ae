// Package service implements the account business rules: form validation,
// password hashing, and persistence orchestration.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/davargas/usuario-crud/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	minNameLength     = 3
	minPasswordLength = 8
)

// AccountService handles registration, login checks, profile updates, and
// account deletion. Every validation failure is reported to the notifier as
// a user-facing message; the boolean results tell the caller whether to
// proceed, and error returns are reserved for store failures.
type AccountService struct {
	accounts   domain.AccountRepository
	notifier   domain.Notifier
	bcryptCost int
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts domain.AccountRepository, notifier domain.Notifier, bcryptCost int) *AccountService {
	return &AccountService{
		accounts:   accounts,
		notifier:   notifier,
		bcryptCost: bcryptCost,
	}
}

// RegistrationForm carries raw registration input from the web layer.
type RegistrationForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// UpdateForm carries raw profile-update input. A blank Password means the
// stored hash must not be changed.
type UpdateForm struct {
	ID              int64
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginForm carries raw login credentials.
type LoginForm struct {
	Email    string
	Password string
}

// ValidateRegistration checks every registration rule and emits one message
// per violation, so the user sees all problems at once. It returns true only
// when every rule passes.
func (s *AccountService) ValidateRegistration(ctx context.Context, form RegistrationForm) (bool, error) {
	valid := true

	inUse, err := s.accounts.EmailInUse(ctx, form.Email, 0)
	if err != nil {
		return false, fmt.Errorf("check email in use: %w", err)
	}
	if inUse {
		s.notifier.Notify("El email ya está registrado.", domain.CategoryRegistration)
		valid = false
	}

	if !domain.ValidEmail(form.Email) {
		s.notifier.Notify("Formato de email es inválido.", domain.CategoryRegistration)
		valid = false
	}

	if utf8.RuneCountInString(form.FirstName) < minNameLength {
		s.notifier.Notify("El nombre debe tener al menos 3 caracteres.", domain.CategoryRegistration)
		valid = false
	}

	if utf8.RuneCountInString(form.LastName) < minNameLength {
		s.notifier.Notify("El apellido debe tener al menos 3 caracteres.", domain.CategoryRegistration)
		valid = false
	}

	if len(form.Password) < minPasswordLength {
		s.notifier.Notify("La contraseña debe tener al menos 8 caracteres.", domain.CategoryRegistration)
		valid = false
	}

	if form.Password != form.ConfirmPassword {
		s.notifier.Notify("Las contraseñas no coinciden.", domain.CategoryRegistration)
		valid = false
	}

	return valid, nil
}

// ValidateUpdate checks every profile-update rule. The uniqueness check
// excludes the account's own row, so keeping an unchanged email is valid.
// Password rules only apply when a new password was supplied.
func (s *AccountService) ValidateUpdate(ctx context.Context, form UpdateForm) (bool, error) {
	valid := true

	inUse, err := s.accounts.EmailInUse(ctx, form.Email, form.ID)
	if err != nil {
		return false, fmt.Errorf("check email in use: %w", err)
	}
	if inUse {
		s.notifier.Notify("El email ya está siendo usado por otro usuario.", domain.CategoryUpdate)
		valid = false
	}

	if !domain.ValidEmail(form.Email) {
		s.notifier.Notify("Formato de email es inválido.", domain.CategoryUpdate)
		valid = false
	}

	if utf8.RuneCountInString(form.FirstName) < minNameLength {
		s.notifier.Notify("El nombre debe tener al menos 3 caracteres.", domain.CategoryUpdate)
		valid = false
	}

	if utf8.RuneCountInString(form.LastName) < minNameLength {
		s.notifier.Notify("El apellido debe tener al menos 3 caracteres.", domain.CategoryUpdate)
		valid = false
	}

	if strings.TrimSpace(form.Password) != "" {
		if len(form.Password) < minPasswordLength {
			s.notifier.Notify("La contraseña debe tener al menos 8 caracteres.", domain.CategoryUpdate)
			valid = false
		}
		if form.ConfirmPassword != "" && form.Password != form.ConfirmPassword {
			s.notifier.Notify("Las contraseñas no coinciden.", domain.CategoryUpdate)
			valid = false
		}
	}

	return valid, nil
}

// ValidateLogin checks the supplied credentials. When the email is not
// registered it stops there and never attempts a hash comparison.
func (s *AccountService) ValidateLogin(ctx context.Context, form LoginForm) (bool, error) {
	account, err := s.accounts.GetByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notifier.Notify("Email no registrado.", domain.CategoryLogin)
			return false, nil
		}
		return false, fmt.Errorf("get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(form.Password)); err != nil {
		s.notifier.Notify("Contraseña incorrecta.", domain.CategoryLogin)
		return false, nil
	}

	return true, nil
}

// Register validates the form, hashes the password, and inserts the account.
// Invalid input returns domain.ErrInvalidInput after the messages have been
// emitted through the notifier.
func (s *AccountService) Register(ctx context.Context, form RegistrationForm) (*domain.Account, error) {
	form.FirstName = domain.Capitalize(form.FirstName)
	form.LastName = domain.Capitalize(form.LastName)

	ok, err := s.ValidateRegistration(ctx, form)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
		PasswordHash: string(hash),
	}
	if _, err := s.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// Update validates the form and applies one of the two update shapes: with a
// blank password only the profile columns change, so an empty form field can
// never wipe the stored hash. Returns the affected row count.
func (s *AccountService) Update(ctx context.Context, form UpdateForm) (int64, error) {
	form.FirstName = domain.Capitalize(form.FirstName)
	form.LastName = domain.Capitalize(form.LastName)

	ok, err := s.ValidateUpdate(ctx, form)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, domain.ErrInvalidInput
	}

	account := &domain.Account{
		ID:        form.ID,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
	}

	if strings.TrimSpace(form.Password) == "" {
		rows, err := s.accounts.UpdateProfile(ctx, account)
		if err != nil {
			return 0, fmt.Errorf("update account: %w", err)
		}
		return rows, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	account.PasswordHash = string(hash)

	rows, err := s.accounts.UpdateProfileAndPassword(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("update account with password: %w", err)
	}
	return rows, nil
}

// Delete removes the account with the given id. Deleting a missing id is a
// no-op; the returned row count tells the caller which case occurred.
func (s *AccountService) Delete(ctx context.Context, id int64) (int64, error) {
	rows, err := s.accounts.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete account: %w", err)
	}
	return rows, nil
}

// GetByID retrieves an account by its id.
func (s *AccountService) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// GetByEmail retrieves an account by its email.
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.accounts.GetByEmail(ctx, email)
}
