package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/adrianliechti/medlens/pkg/provider"
)

const maxMemory = 32 << 20

var errMissingFile = errors.New("missing file")

func valueText(r *http.Request) (string, error) {
	if val := r.FormValue("text"); val != "" {
		return val, nil
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
		data, err := io.ReadAll(r.Body)

		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	return "", nil
}

// readFile takes the upload from the "file" or "image" form field, or
// the raw request body otherwise.
func readFile(r *http.Request) (*provider.File, error) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if contentType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, err
		}

		for _, field := range []string{"file", "image"} {
			file, header, err := r.FormFile(field)

			if err != nil {
				continue
			}

			defer file.Close()

			data, err := io.ReadAll(file)

			if err != nil {
				return nil, err
			}

			return &provider.File{
				Name: header.Filename,

				Content:     data,
				ContentType: header.Header.Get("Content-Type"),
			}, nil
		}

		return nil, errMissingFile
	}

	contentDisposition := r.Header.Get("Content-Disposition")

	_, params, _ := mime.ParseMediaType(contentDisposition)

	filename := params["filename*"]
	filename = strings.TrimPrefix(filename, "UTF-8''")
	filename = strings.TrimPrefix(filename, "utf-8''")

	if filename == "" {
		filename = params["filename"]
	}

	data, err := io.ReadAll(r.Body)

	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, errMissingFile
	}

	return &provider.File{
		Name: filename,

		Content:     data,
		ContentType: r.Header.Get("Content-Type"),
	}, nil
}
