package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "spamwatch/internal/platform/errors"
	"spamwatch/internal/platform/net/http/bind"
)

type checkPayload struct {
	Text        string `json:"text" validate:"required"`
	NotifyEmail string `json:"notifyEmail,omitempty" validate:"omitempty,email"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/spam/check", strings.NewReader(body))
}

func TestParseJSON_Valid(t *testing.T) {
	in, err := bind.ParseJSON[checkPayload](post(`{"text":"win a free prize","notifyEmail":"ops@example.com"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if in.Text != "win a free prize" || in.NotifyEmail != "ops@example.com" {
		t.Fatalf("payload mismatch: %+v", in)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	_, err := bind.ParseJSON[checkPayload](post(""))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error, got %v", err)
	}
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := bind.ParseJSON[checkPayload](post(`{"text":`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error, got %v", err)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	_, err := bind.ParseJSON[checkPayload](post(`{"text":"x","bogus":1}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error for unknown field, got %v", err)
	}
}

func TestParseJSON_TrailingData(t *testing.T) {
	_, err := bind.ParseJSON[checkPayload](post(`{"text":"x"}{"text":"y"}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error for trailing data, got %v", err)
	}
}

func TestParseJSON_ValidationFailure(t *testing.T) {
	_, err := bind.ParseJSON[checkPayload](post(`{"text":"x","notifyEmail":"not-an-email"}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	e, ok := perr.As(err)
	if !ok || e.Field() != "notifyEmail" {
		t.Fatalf("want field notifyEmail, got %+v", err)
	}
}

func TestParseJSON_MissingRequired(t *testing.T) {
	_, err := bind.ParseJSON[checkPayload](post(`{}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error for missing text, got %v", err)
	}
}

func TestParseJSON_EmptyBodyToleratedOnGet(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/spam/history", nil)
	if _, err := bind.ParseJSON[checkPayload](r); err != nil {
		t.Fatalf("GET with empty body should not error: %v", err)
	}
}
