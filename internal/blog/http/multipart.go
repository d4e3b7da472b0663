package http

import (
	"errors"
	"net/http"

	"github.com/inkwell-press/inkwell/internal/blog/service"
)

// parseMultipart caps the request body and parses the multipart form.
// maxBytes bounds the whole body, upload included; the in-memory threshold
// stays small and the rest spills to temp files.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	return r.ParseMultipartForm(1 << 20)
}

// formUpload returns the optional cover upload, nil when the client sent no
// file part. The caller owns closing nothing: the reader lives until the
// request ends.
func formUpload(r *http.Request) (*service.Upload, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return &service.Upload{Filename: header.Filename, Reader: file}, nil
}

// formValuePtr distinguishes "field absent" (nil) from "field set to empty"
// so partial updates only touch provided fields.
func formValuePtr(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
