// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never ORM models or driver types
//   - Error returns use domain error types (ErrNotFound, ErrConflict)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/quotes-api/internal/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// FindByUsername returns the user with the exact username.
	// Returns domain.ErrNotFound if no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Create stores a new user and returns it with its assigned id.
	// Returns domain.ErrConflict if the username is already taken.
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
}

// QuoteRepository persists quotes together with their tag links.
type QuoteRepository interface {
	// ListByUser returns the user's quotes with tags, in ascending id order.
	ListByUser(ctx context.Context, userID int64) ([]domain.Quote, error)

	// Create stores the quote, links it to the given tag ids and returns it
	// with its tags resolved.
	Create(ctx context.Context, q domain.NewQuote) (*domain.Quote, error)

	// GetByID returns the quote with its tags.
	// Returns domain.ErrNotFound if the quote does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)

	// Delete removes the quote and its tag links in one transaction and
	// returns the deleted quote.
	// Returns domain.ErrNotFound if the quote does not exist.
	Delete(ctx context.Context, id int64) (*domain.Quote, error)
}

// TagRepository persists the global tag set.
type TagRepository interface {
	// FindByNames returns the tags whose names are in names, in any order.
	FindByNames(ctx context.Context, names []string) ([]domain.Tag, error)

	// CreateIgnoringConflicts inserts the tags in one statement. Rows whose
	// name already exists are skipped. Returns the number of inserted rows.
	CreateIgnoringConflicts(ctx context.Context, tags []domain.Tag) (int64, error)

	// DeleteOrphaned deletes the listed tags that no quote references and
	// returns how many were removed.
	DeleteOrphaned(ctx context.Context, ids []int64) (int64, error)

	// WithinTx runs fn with a repository bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx TagRepository) error) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of the password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch is not an
	// error; malformed hashes are.
	Compare(hash, password string) (bool, error)
}

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	// Generate issues a signed token for the user id.
	Generate(userID int64) (string, error)

	// Verify checks signature and expiry and returns the user id.
	Verify(token string) (int64, error)
}
