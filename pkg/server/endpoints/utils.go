package endpoints

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Envelope is the response shape used by every endpoint. Business outcomes,
// including failures, are carried in the envelope with HTTP 200; the status
// code is not part of the API contract.
type Envelope struct {
	Succeeded bool        `json:"succeeded"`
	Payload   interface{} `json:"payload"`
	Message   *string     `json:"message"`
}

func respond(w http.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(env)
}

func succeededWithData(w http.ResponseWriter, payload interface{}) {
	respond(w, Envelope{Succeeded: true, Payload: payload})
}

func succeededWithMessage(w http.ResponseWriter, message string) {
	respond(w, Envelope{Succeeded: true, Message: &message})
}

func failedWithMessage(w http.ResponseWriter, message string) {
	respond(w, Envelope{Succeeded: false, Message: &message})
}

// formValues returns the form fields from the request body. ParseForm only
// reads the body for POST, PUT and PATCH, but the DELETE routes carry their
// parameters in a form-encoded body as well.
func formValues(r *http.Request) (url.Values, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	if len(r.PostForm) > 0 || r.Body == nil {
		return r.PostForm, nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	return url.ParseQuery(string(body))
}

// parseIDList parses a comma-separated list of numeric ids. The ids reach a
// SQL IN clause, so anything that is not an integer is rejected here.
func parseIDList(raw string) ([]int64, bool) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, false
	}
	return ids, true
}
