package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/schema"
)

// Submission is the form body for POST /subscriptions. It only lives for the request.
type Submission struct {
	Name  string `schema:"name"`
	Email string `schema:"email"`
}

// submissionFields must each appear exactly once in the body. Empty values are allowed.
var submissionFields = []string{"name", "email"}

// ErrMissingField and ErrDuplicateField report a form key that is absent or repeated.
var (
	ErrMissingField   = errors.New("missing form field")
	ErrDuplicateField = errors.New("duplicate form field")
)

// formDecoder is safe for concurrent use; it caches struct metadata internally.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// decodeSubmission parses the URL-encoded body of r into a Submission.
// Query string values are ignored.
func decodeSubmission(r *http.Request) (*Submission, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	for _, key := range submissionFields {
		switch values, ok := r.PostForm[key]; {
		case !ok:
			return nil, fmt.Errorf("%w: %s", ErrMissingField, key)
		case len(values) > 1:
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, key)
		}
	}
	var s Submission
	if err := formDecoder.Decode(&s, r.PostForm); err != nil {
		return nil, err
	}
	return &s, nil
}

// Subscribe handles POST /subscriptions.
//
// @Summary      Subscribe
// @Description  Accept a newsletter subscription form. Nothing is stored.
// @Tags         subscriptions
// @Accept       x-www-form-urlencoded
// @Param        name   formData  string  true  "Subscriber name"
// @Param        email  formData  string  true  "Subscriber email"
// @Success      200
// @Failure      400  {string}  string  "Missing or repeated field, or malformed form body"
// @Failure      413  {string}  string  "Request body too large"
// @Router       /subscriptions [post]
func Subscribe(w http.ResponseWriter, r *http.Request) {
	if _, err := decodeSubmission(r); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}
