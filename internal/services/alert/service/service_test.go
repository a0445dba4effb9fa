package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"spamwatch/internal/platform/logger"
	"spamwatch/internal/services/alert/domain"
	"spamwatch/internal/services/alert/service"
)

type fakeSender struct {
	recipient string
	subject   string
	body      string
	calls     int
	err       error
}

func (f *fakeSender) Send(_ context.Context, recipient, subject, body string) error {
	f.calls++
	f.recipient = recipient
	f.subject = subject
	f.body = body
	return f.err
}

func TestNotify_SendsComposedMessage(t *testing.T) {
	f := &fakeSender{}
	s := service.New(f, *logger.Get())

	s.Notify(context.Background(), domain.Alert{
		Recipient:   "ops@example.com",
		Probability: 1.0,
		Matched:     []string{"free", "prize"},
		Text:        "claim your free prize",
	})

	if f.calls != 1 {
		t.Fatalf("send calls = %d, want 1", f.calls)
	}
	if f.recipient != "ops@example.com" {
		t.Fatalf("recipient = %q", f.recipient)
	}
	if !strings.Contains(f.subject, "100%") {
		t.Fatalf("subject missing percentage: %q", f.subject)
	}
	if !strings.Contains(f.body, "free, prize") {
		t.Fatalf("body missing matched list: %q", f.body)
	}
	if !strings.Contains(f.body, "claim your free prize") {
		t.Fatalf("body missing original text: %q", f.body)
	}
}

func TestNotify_TransportFailureDoesNotPanicOrPropagate(t *testing.T) {
	f := &fakeSender{err: errors.New("smtp down")}
	s := service.New(f, *logger.Get())

	// Notify has no error return by design; this must simply not panic
	s.Notify(context.Background(), domain.Alert{
		Recipient:   "ops@example.com",
		Probability: 0.6,
	})

	if f.calls != 1 {
		t.Fatalf("send calls = %d, want 1", f.calls)
	}
}

func TestCompose(t *testing.T) {
	cases := []struct {
		name        string
		alert       domain.Alert
		wantSubject string
		wantInBody  []string
	}{
		{
			name: "rounds percent and lists matches",
			alert: domain.Alert{
				Probability: 0.4,
				Matched:     []string{"winner"},
				Text:        "you are a winner",
			},
			wantSubject: "Spam alert: 40% spam probability",
			wantInBody:  []string{"Spam probability: 40%", "Matched indicators: winner", "you are a winner"},
		},
		{
			name: "empty matches get an explicit marker",
			alert: domain.Alert{
				Probability: 0.0,
				Text:        "hello",
			},
			wantSubject: "Spam alert: 0% spam probability",
			wantInBody:  []string{"Matched indicators: none"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			subject, body := service.Compose(c.alert)
			if subject != c.wantSubject {
				t.Fatalf("subject = %q, want %q", subject, c.wantSubject)
			}
			for _, w := range c.wantInBody {
				if !strings.Contains(body, w) {
					t.Fatalf("body missing %q:\n%s", w, body)
				}
			}
		})
	}
}

func TestNew_NilSenderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("want panic for nil sender")
		}
	}()
	service.New(nil, *logger.Get())
}
