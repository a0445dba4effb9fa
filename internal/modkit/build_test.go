package modkit

import (
	"net/http"
	"testing"

	phttp "spamwatch/internal/platform/net/http"
)

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatal("hooks should default to no-ops, not nil")
	}
	// the default hooks must be callable
	if got := b.Subrouter(nil); got != nil {
		t.Fatal("default subrouter should pass through")
	}
	b.Register(nil)
}

func TestBuild_AppliesOptions(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	registered := false

	b := Build(
		WithName("spam"),
		WithPrefix("/spam"),
		WithMiddlewares(mw),
		WithPorts(42),
		WithRegister(func(phttp.Router) { registered = true }),
	)

	if b.Name != "spam" || b.Prefix != "/spam" {
		t.Fatalf("name/prefix mismatch: %+v", b)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("middleware not applied")
	}
	if b.Ports != 42 {
		t.Fatalf("ports not applied: %v", b.Ports)
	}
	b.Register(nil)
	if !registered {
		t.Fatal("register hook not applied")
	}
}
