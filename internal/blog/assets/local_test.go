package assets

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStoreSavePreservesExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewLocalStore(dir, "uploads")
	require.NoError(t, err)

	ref, err := s.Save(context.Background(), "holiday photo.PNG", strings.NewReader("imagebytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref, "uploads/"))
	require.True(t, strings.HasSuffix(ref, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	require.NoError(t, err)
	require.Equal(t, "imagebytes", string(data))
}

func TestLocalStoreUniqueReferences(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStore(t.TempDir(), "uploads")
	require.NoError(t, err)

	a, err := s.Save(context.Background(), "same.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := s.Save(context.Background(), "same.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestObjectNameDropsSuspiciousExtensions(t *testing.T) {
	t.Parallel()

	require.False(t, strings.Contains(objectName("../../etc/passwd"), "/"))
	require.True(t, strings.HasSuffix(objectName("photo.JPeG"), ".jpeg"))
	require.False(t, strings.Contains(objectName("noext"), "."))
}
