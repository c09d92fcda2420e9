package clear

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"tableflip.dev/nongdam/pkg/app"
	"tableflip.dev/nongdam/pkg/checklist"
)

func newService() *app.Service {
	svc := app.New(nil, nil)
	svc.Log = zap.NewNop()
	svc.Toggle(checklist.Owned, "1")
	svc.Toggle(checklist.Owned, "2")
	svc.Toggle(checklist.Wish, "3")
	return svc
}

func TestClearPrompt(t *testing.T) {
	tests := []struct {
		answer  string
		cleared bool
	}{
		{answer: "y\n", cleared: true},
		{answer: "YES\n", cleared: true},
		{answer: "n\n", cleared: false},
		{answer: "", cleared: false},
	}
	for _, tt := range tests {
		svc := newService()
		var out bytes.Buffer
		n := &Clear{Service: svc, Tab: checklist.Owned, In: strings.NewReader(tt.answer), Out: &out}
		if err := n.Do(context.Background()); err != nil {
			t.Fatalf("clear: %v", err)
		}
		if got := !svc.IsOwned("1") && !svc.IsOwned("2"); got != tt.cleared {
			t.Fatalf("answer %q: cleared=%v, want %v", tt.answer, got, tt.cleared)
		}
		if !svc.IsWished("3") {
			t.Fatalf("the wish set must not be touched")
		}
	}
}

func TestClearYes(t *testing.T) {
	svc := newService()
	var out bytes.Buffer
	n := &Clear{Service: svc, Tab: checklist.Wish, Yes: true, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if svc.IsWished("3") {
		t.Fatalf("expected the wish set cleared")
	}
	if !strings.Contains(out.String(), "cleared 1 items") {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !strings.Contains(out.String(), "already empty") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
