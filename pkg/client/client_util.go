package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
)

type Error struct {
	StatusCode int

	Type    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return http.StatusText(e.StatusCode)
	}

	return e.Message
}

type File struct {
	Name   string
	Reader io.Reader
}

func uploadFile(ctx context.Context, c *RequestConfig, path string, input File, v any) error {
	if input.Reader == nil {
		return errors.New("missing file reader")
	}

	var data bytes.Buffer
	w := multipart.NewWriter(&data)

	file, err := w.CreateFormFile("file", input.Name)

	if err != nil {
		return err
	}

	if _, err := io.Copy(file, input.Reader); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+path, &data)

	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", w.FormDataContentType())

	return do(c, req, v)
}

func do(c *RequestConfig, req *http.Request, v any) error {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return convertError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

func convertError(resp *http.Response) error {
	result := &Error{
		StatusCode: resp.StatusCode,
	}

	var body struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		result.Type = body.Error.Type
		result.Message = body.Error.Message
	}

	return result
}
