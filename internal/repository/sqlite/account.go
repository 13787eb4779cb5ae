package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/davargas/usuario-crud/internal/domain"
)

// AccountRepository implements domain.AccountRepository using SQLite.
// All statements bind parameters by name.
type AccountRepository struct {
	db *sql.DB
}

var _ domain.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates a new SQLite-backed AccountRepository.
func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db.SqlDB}
}

// Create inserts a new account and returns its assigned id. Timestamps are
// assigned by the store. Callers must validate and hash the input first;
// Create trusts what it receives.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO usuarios (nombre, apellido, email, password)
		 VALUES (:nombre, :apellido, :email, :password)`,
		sql.Named("nombre", account.FirstName),
		sql.Named("apellido", account.LastName),
		sql.Named("email", account.Email),
		sql.Named("password", account.PasswordHash),
	)
	if err != nil {
		return 0, fmt.Errorf("insert account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id: %w", err)
	}

	account.ID = id
	return id, nil
}

// GetByID returns the account with the given id, or domain.ErrNotFound.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	account := &domain.Account{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nombre, apellido, email, password, creado_en, actualizado_en
		 FROM usuarios WHERE id = :id`,
		sql.Named("id", id),
	).Scan(&account.ID, &account.FirstName, &account.LastName, &account.Email,
		&account.PasswordHash, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query account by id: %w", err)
	}
	return account, nil
}

// GetByEmail returns the account with the given email, or domain.ErrNotFound.
// Email uniqueness is a validation-time discipline, so at most one row is
// expected to match.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account := &domain.Account{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nombre, apellido, email, password, creado_en, actualizado_en
		 FROM usuarios WHERE email = :email`,
		sql.Named("email", email),
	).Scan(&account.ID, &account.FirstName, &account.LastName, &account.Email,
		&account.PasswordHash, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query account by email: %w", err)
	}
	return account, nil
}

// EmailInUse reports whether any account other than excludeID holds the
// given email. Pass 0 to check against every row (registration); ids are
// assigned from 1, so 0 never excludes anything.
func (r *AccountRepository) EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM usuarios WHERE email = :email AND id != :id`,
		sql.Named("email", email),
		sql.Named("id", excludeID),
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count accounts by email: %w", err)
	}
	return count > 0, nil
}

// UpdateProfile updates the name and email columns, leaving the stored
// password untouched. Returns the number of affected rows.
func (r *AccountRepository) UpdateProfile(ctx context.Context, account *domain.Account) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE usuarios
		 SET nombre = :nombre, apellido = :apellido, email = :email,
		     actualizado_en = CURRENT_TIMESTAMP
		 WHERE id = :id`,
		sql.Named("nombre", account.FirstName),
		sql.Named("apellido", account.LastName),
		sql.Named("email", account.Email),
		sql.Named("id", account.ID),
	)
	if err != nil {
		return 0, fmt.Errorf("update account: %w", err)
	}
	return rowsAffected(result)
}

// UpdateProfileAndPassword updates the name and email columns and overwrites
// the stored password hash. Returns the number of affected rows.
func (r *AccountRepository) UpdateProfileAndPassword(ctx context.Context, account *domain.Account) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE usuarios
		 SET nombre = :nombre, apellido = :apellido, email = :email,
		     password = :password, actualizado_en = CURRENT_TIMESTAMP
		 WHERE id = :id`,
		sql.Named("nombre", account.FirstName),
		sql.Named("apellido", account.LastName),
		sql.Named("email", account.Email),
		sql.Named("password", account.PasswordHash),
		sql.Named("id", account.ID),
	)
	if err != nil {
		return 0, fmt.Errorf("update account with password: %w", err)
	}
	return rowsAffected(result)
}

// Delete removes the account with the given id. Deleting a missing id is
// not an error; the returned count is 0.
func (r *AccountRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM usuarios WHERE id = :id`,
		sql.Named("id", id),
	)
	if err != nil {
		return 0, fmt.Errorf("delete account: %w", err)
	}
	return rowsAffected(result)
}

func rowsAffected(result sql.Result) (int64, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return rows, nil
}
