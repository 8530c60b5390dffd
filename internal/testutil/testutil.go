package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"libraryapi/internal/catalog"
)

// SampleDraft returns a book draft with every required field filled in;
// override fields per test as needed.
func SampleDraft() catalog.Draft {
	return catalog.Draft{
		Title:         "Dune",
		Author:        "Frank Herbert",
		ISBN:          "9780441013593",
		Category:      "Science Fiction",
		Description:   "The desert planet Arrakis.",
		TotalCopies:   2,
		PublishedYear: 1965,
	}
}

// NewRequest creates a JSON request for handler tests.
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	raw, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth creates a JSON request carrying a bearer token.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// DecodeBody decodes a recorded JSON response body into a generic map.
func DecodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	result := w.Result()
	defer result.Body.Close()

	raw, _ := io.ReadAll(result.Body)
	var body map[string]interface{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}
	return body
}
