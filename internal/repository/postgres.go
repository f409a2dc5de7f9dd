package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/otterbank/bank/internal/db"
	"github.com/otterbank/bank/internal/models"
)

// EnsureSchema creates the ledger tables if they do not exist yet.
func EnsureSchema(ctx context.Context, database *db.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS accounts (
			iban           TEXT PRIMARY KEY,
			type           TEXT NOT NULL,
			reference_iban TEXT,
			created_at     TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS transactions (
			id         UUID PRIMARY KEY,
			from_iban  TEXT,
			to_iban    TEXT,
			amount     NUMERIC NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS transactions_from_iban_idx ON transactions (from_iban);
		CREATE INDEX IF NOT EXISTS transactions_to_iban_idx ON transactions (to_iban);
	`

	if _, err := database.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// postgresLedgerStore implements LedgerStore on postgres. Cash legs are
// stored as NULL.
type postgresLedgerStore struct {
	db *db.DB
}

// NewPostgresLedgerStore creates a postgres-backed LedgerStore.
func NewPostgresLedgerStore(database *db.DB) LedgerStore {
	return &postgresLedgerStore{db: database}
}

// Append inserts a committed transaction into the log.
func (s *postgresLedgerStore) Append(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, from_iban, to_iban, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.ID,
		endpointValue(tx.From),
		endpointValue(tx.To),
		tx.Amount.String(),
		tx.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

// FindAllForAccount returns every transaction touching the account in commit order.
func (s *postgresLedgerStore) FindAllForAccount(ctx context.Context, iban models.IBAN) ([]*models.Transaction, error) {
	query := `
		SELECT id, from_iban, to_iban, amount, created_at
		FROM transactions
		WHERE from_iban = $1 OR to_iban = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, string(iban))
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var out []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return out, nil
}

// Clear truncates the log. Test isolation only.
func (s *postgresLedgerStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}

func scanTransaction(rows *sql.Rows) (*models.Transaction, error) {
	var (
		tx       models.Transaction
		from, to sql.NullString
		amount   string
	)
	if err := rows.Scan(&tx.ID, &from, &to, &amount, &tx.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	tx.From = nullableEndpoint(from)
	tx.To = nullableEndpoint(to)

	parsed, err := models.NewMoneyFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction amount: %w", err)
	}
	tx.Amount = parsed

	return &tx, nil
}

func endpointValue(e models.Endpoint) any {
	iban, ok := e.IBAN()
	if !ok {
		return nil
	}
	return string(iban)
}

func nullableEndpoint(v sql.NullString) models.Endpoint {
	if !v.Valid {
		return models.Cash
	}
	return models.AccountOf(models.IBAN(v.String))
}

// postgresAccountDirectory implements AccountDirectory on postgres.
type postgresAccountDirectory struct {
	db *db.DB
}

// NewPostgresAccountDirectory creates a postgres-backed AccountDirectory.
func NewPostgresAccountDirectory(database *db.DB) AccountDirectory {
	return &postgresAccountDirectory{db: database}
}

// FindByIBAN retrieves an account by its IBAN.
func (d *postgresAccountDirectory) FindByIBAN(ctx context.Context, iban models.IBAN) (*models.Account, error) {
	query := `
		SELECT iban, type, reference_iban, created_at
		FROM accounts
		WHERE iban = $1
	`

	account, err := scanAccount(d.db.QueryRowContext(ctx, query, string(iban)))
	if err == sql.ErrNoRows {
		return nil, models.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by iban: %w", err)
	}
	return account, nil
}

// Exists reports whether an account with the given IBAN is registered.
func (d *postgresAccountDirectory) Exists(ctx context.Context, iban models.IBAN) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE iban = $1)`, string(iban),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

// FindAll returns all registered accounts.
func (d *postgresAccountDirectory) FindAll(ctx context.Context) ([]*models.Account, error) {
	query := `
		SELECT iban, type, reference_iban, created_at
		FROM accounts
		ORDER BY created_at, iban
	`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var out []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		out = append(out, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return out, nil
}

// Save registers an account under its IBAN.
func (d *postgresAccountDirectory) Save(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (iban, type, reference_iban, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (iban) DO NOTHING
	`

	var reference any
	if ref, ok := account.ReferenceCheckingAccount(); ok {
		reference = string(ref)
	}

	if _, err := d.db.ExecContext(ctx, query, string(account.IBAN), string(account.Type), reference, account.CreatedAt); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// Clear drops all accounts. Test isolation only.
func (d *postgresAccountDirectory) Clear(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("failed to clear accounts: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		account   models.Account
		typeName  string
		reference sql.NullString
	)
	if err := row.Scan(&account.IBAN, &typeName, &reference, &account.CreatedAt); err != nil {
		return nil, err
	}

	account.Type = models.AccountType(typeName)
	if reference.Valid {
		account.Properties = map[string]string{models.ReferenceAccountProperty: reference.String}
	}
	return &account, nil
}
