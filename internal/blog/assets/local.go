package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalStore writes uploads to a directory on disk. References are paths
// under the public mount prefix so they can be served statically.
type LocalStore struct {
	dir    string
	prefix string
}

// NewLocalStore ensures dir exists and returns a store whose references are
// prefixed with publicPrefix (e.g. "uploads").
func NewLocalStore(dir, publicPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("assets: create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, prefix: publicPrefix}, nil
}

// Dir returns the directory uploads land in, for static serving.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := objectName(originalName)

	f, err := os.Create(filepath.Join(s.dir, name)) // #nosec G304 - name is generated, not user input
	if err != nil {
		return "", fmt.Errorf("assets: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("assets: write file: %w", err)
	}

	return path.Join(s.prefix, name), nil
}
