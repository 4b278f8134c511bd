package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-social-network/internal/services"
)

// maxUploadMemory bounds the in-memory multipart buffer, 10MB as the
// upload middleware of the frontend expects.
const maxUploadMemory = 10 << 20

var errNotAnImage = errors.New("only image files are allowed")

// readMultipartFiles reads every file uploaded under the given form field.
// Non-image content types are rejected. A request without a multipart body
// yields no files and no error.
func readMultipartFiles(r *http.Request, field string) ([]services.UploadFile, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			if errors.Is(err, http.ErrNotMultipart) {
				return nil, nil
			}
			return nil, err
		}
	}
	if r.MultipartForm == nil {
		return nil, nil
	}

	headers := r.MultipartForm.File[field]
	files := make([]services.UploadFile, 0, len(headers))
	for _, header := range headers {
		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return nil, errNotAnImage
		}

		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		files = append(files, services.UploadFile{
			Name:        header.Filename,
			Data:        data,
			ContentType: contentType,
		})
	}
	return files, nil
}

// multipartValue returns a multipart form value, falling back to the
// regular form so JSON-less clients keep working.
func multipartValue(r *http.Request, key string) string {
	if r.MultipartForm != nil {
		if vals := r.MultipartForm.Value[key]; len(vals) > 0 {
			return vals[0]
		}
	}
	return r.FormValue(key)
}
