package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Beka01247/bistro-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	maxBodyBytes = 1 << 20

	defaultPageLimit = 20
	maxPageLimit     = 100
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

func writeJson(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func readJson(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	type envelope struct {
		Error string `json:"error"`
	}

	return writeJson(w, status, &envelope{Error: message})
}

// readPage parses ?page= and ?limit=. Page defaults to 1, limit to 20 and is
// capped at 100.
func readPage(r *http.Request) (domain.Page, error) {
	page := domain.Page{Page: 1, Limit: defaultPageLimit}

	q := r.URL.Query()
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return page, errors.New("page must be a positive integer")
		}
		page.Page = n
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return page, errors.New("limit must be a positive integer")
		}
		page.Limit = min(n, maxPageLimit)
	}

	return page, nil
}
