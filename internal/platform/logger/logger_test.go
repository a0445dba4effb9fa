package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "spamwatch/internal/platform/testkit"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"fatal", "fatal"},
		{"panic", "panic"},
		{"", "debug"},
		{"   nonsense   ", "debug"},
	}
	for _, c := range cases {
		lvl := parseLevel(c.in)
		if strings.ToLower(lvl.String()) != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, lvl, c.want)
		}
	}
}

func TestInit_Get_Named_C(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:     "info",
		Format:    "console",
		Service:   "spamwatch-api",
		Component: "root",
		Writer:    &buf,
		StaticFields: map[string]string{
			"build": "test",
		},
	})

	Get().Info().Str("k", "v").Msg("root-msg")
	Named("classifier").Info().Msg("named-msg")

	ctx := WithRequest(context.Background(), "req-123")
	C(ctx).Info().Msg("ctx-msg")

	// background child (exercise only)
	C(context.Background()).Info().Msg("ctx-empty")

	out := buf.String()

	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, "named-msg")
	kit.MustContain(t, out, "ctx-msg")
	kit.MustContain(t, out, "component=")
	kit.MustContain(t, out, "request_id=")
}
