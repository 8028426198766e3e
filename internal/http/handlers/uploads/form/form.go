package form

import (
	"errors"
	"mime/multipart"
	"net/http"
)

const FILE_FIELD = "file"

var ErrMissingFile = errors.New("no file uploaded")

// File returns the uploaded "file" part. Bodies over maxBytes are rejected.
func File(rw http.ResponseWriter, r *http.Request, maxBytes int64) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(rw, r.Body, maxBytes)
	file, header, err := r.FormFile(FILE_FIELD)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, ErrMissingFile
	}
	if err != nil {
		return nil, nil, err
	}
	return file, header, nil
}
