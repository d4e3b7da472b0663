package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/inkwell-press/inkwell/internal/blog/store"
	"github.com/inkwell-press/inkwell/internal/blog/store/drivers/sqlite"
	"github.com/inkwell-press/inkwell/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "inkwell-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore("file:" + t.TempDir() + "/blog.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestRegisterCreatesAccountOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := &UserService{Store: newTestStore(t)}

	account, err := users.Register(ctx, "alice", "hunter2-is-weak")
	require.NoError(t, err)
	require.NotEmpty(t, account.ID)
	require.Equal(t, "alice", account.Username)
	require.NotEmpty(t, account.PasswordHash)
	require.NotContains(t, account.PasswordHash, "hunter2-is-weak")
	require.False(t, account.CreatedAt.IsZero())

	// Second registration with the same username must fail, never creating
	// a second account.
	_, err = users.Register(ctx, "alice", "different password")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterValidatesInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := &UserService{Store: newTestStore(t)}

	_, err := users.Register(ctx, "bob", "password")
	require.ErrorIs(t, err, ErrInvalidInput, "three-character username")

	_, err = users.Register(ctx, "", "password")
	require.ErrorIs(t, err, ErrInvalidInput, "empty username")

	_, err = users.Register(ctx, "charlie", "")
	require.ErrorIs(t, err, ErrInvalidInput, "empty password")

	// Exactly four characters is the minimum.
	_, err = users.Register(ctx, "dave", "password")
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := &UserService{Store: newTestStore(t)}

	created, err := users.Register(ctx, "alice", "correct password")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		account, err := users.Login(ctx, "alice", "correct password")
		require.NoError(t, err)
		require.Equal(t, created.ID, account.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := users.Login(ctx, "alice", "wrong password")
		require.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := users.Login(ctx, "nobody", "whatever")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
