package endpoints

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

// performForm runs a handler against a form-encoded request and decodes the
// response envelope. vars are injected as route variables.
func performForm(t *testing.T, handler http.HandlerFunc, method, target string, form url.Values, vars map[string]string) Envelope {
	t.Helper()

	var body string
	if form != nil {
		body = form.Encode()
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return env
}

// performFormWithHeaders is performForm with extra request headers.
func performFormWithHeaders(t *testing.T, handler http.HandlerFunc, method, target string, form url.Values, headers http.Header) Envelope {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	return decodeEnvelope(t, resp.Body)
}

func decodeEnvelope(t *testing.T, body io.Reader) Envelope {
	t.Helper()
	var env Envelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return env
}

func message(env Envelope) string {
	if env.Message == nil {
		return ""
	}
	return *env.Message
}
