package store

import (
	"context"
	"errors"

	"github.com/inkwell-press/inkwell/internal/blog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Accounts() Accounts
	Posts() Posts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to make an ownership check and the following write
	// atomic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByUsername is used during login and duplicate checks.
	// Absence is reported as ErrNotFound and is a normal result.
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by app via ULID).
	// The unique index on username makes concurrent duplicate registrations
	// lose with ErrAlreadyExists rather than both succeeding.
	CreateAccount(ctx context.Context, a domain.Account) error

	// IsEmpty returns true if there are no accounts.
	IsEmpty(ctx context.Context) (bool, error)
}

type Posts interface {
	// CreatePost inserts a new post.
	CreatePost(ctx context.Context, p domain.Post) error

	// GetPostByID returns a post with the author's username joined in.
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPosts returns up to limit posts ordered by created_at descending,
	// authors joined.
	ListPosts(ctx context.Context, limit int) ([]domain.Post, error)

	// UpdatePost persists title/summary/content/cover and bumps updated_at.
	// The author column is deliberately not part of the statement.
	UpdatePost(ctx context.Context, p domain.Post) error

	// DeletePost removes a post by id.
	DeletePost(ctx context.Context, id string) error
}
