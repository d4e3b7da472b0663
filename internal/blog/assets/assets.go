// Package assets stores uploaded cover images. The rest of the system only
// ever sees the opaque reference string a driver hands back.
package assets

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/inkwell-press/inkwell/pkg/idx"
)

// Store is the asset storage collaborator. Save persists the uploaded bytes
// and returns a reference (a path under the static mount for the local
// driver, an object key for S3).
type Store interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

// objectName builds a collision-free name that keeps the upload's original
// extension so browsers infer the right content type.
func objectName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	// Drop anything that doesn't look like a simple extension.
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		ext = ""
	}
	return idx.New().String() + ext
}
