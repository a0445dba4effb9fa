package errors_test

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	perr "spamwatch/internal/platform/errors"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation is 400", perr.ValidationErrf("text must not be blank"), http.StatusBadRequest},
		{"json is 400", perr.JSONErrf("invalid JSON"), http.StatusBadRequest},
		{"invalid arg is 400", perr.InvalidArgf("bad limit"), http.StatusBadRequest},
		{"db is 500", perr.DBf("insert failed"), http.StatusInternalServerError},
		{"unavailable is 503", perr.Unavailablef("store down"), http.StatusServiceUnavailable},
		{"not found is 404", perr.ErrNotFound, http.StatusNotFound},
		{"notify is 500 if ever surfaced", perr.Notifyf("smtp refused"), http.StatusInternalServerError},
		{"foreign error is 500", stderrs.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := perr.HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus got %d want %d", got, tc.want)
			}
		})
	}
}

func TestWrapAndRoot(t *testing.T) {
	cause := stderrs.New("connection refused")
	err := perr.Wrap(cause, perr.ErrorCodeDB, "append record")

	if got := perr.CodeOf(err); got != perr.ErrorCodeDB {
		t.Fatalf("CodeOf got %d", got)
	}
	if root := perr.Root(err); root != cause {
		t.Fatalf("Root got %v want %v", root, cause)
	}
	if !stderrs.Is(err, cause) {
		t.Fatalf("wrapped error should match cause via errors.Is")
	}
	wantMsg := "append record: connection refused"
	if err.Error() != wantMsg {
		t.Fatalf("Error() got %q want %q", err.Error(), wantMsg)
	}
}

func TestWireFrom(t *testing.T) {
	w := perr.WireFrom(perr.ValidationErrf("text is required"))
	if w.Message != "text is required" {
		t.Fatalf("wire message got %q", w.Message)
	}

	// foreign errors pass their message through
	w = perr.WireFrom(fmt.Errorf("plain"))
	if w.Message != "plain" {
		t.Fatalf("foreign wire message got %q", w.Message)
	}

	if w := perr.WireFrom(nil); w.Message != "" {
		t.Fatalf("nil error should produce zero wire")
	}
}

func TestWithOpAndField(t *testing.T) {
	err := perr.ValidationErrf("blank")
	err = perr.WithOp(err, "spam.check")
	err = perr.WithField(err, "text")

	e, ok := perr.As(err)
	if !ok {
		t.Fatalf("expected project error")
	}
	if e.Op() != "spam.check" || e.Field() != "text" {
		t.Fatalf("op/field got %q/%q", e.Op(), e.Field())
	}
}

func TestWrapIf(t *testing.T) {
	if perr.WrapIf(nil, perr.ErrorCodeDB, "x") != nil {
		t.Fatalf("WrapIf(nil) must be nil")
	}
	if perr.WrapIf(stderrs.New("y"), perr.ErrorCodeDB, "x") == nil {
		t.Fatalf("WrapIf(non-nil) must wrap")
	}
}
