package notify

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestPushWritesAccentedMessage(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf)

	n.Error("Analysis failed")
	if !strings.Contains(buf.String(), "Analysis failed") {
		t.Errorf("output missing message: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "✖") {
		t.Errorf("output missing error accent marker: %q", buf.String())
	}
}

func TestAutoDismiss(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf)
	n.SetTTL(30 * time.Millisecond)

	n.Warning("Ticker symbol too long")
	if len(n.Active()) != 1 {
		t.Fatalf("active = %d, want 1", len(n.Active()))
	}

	deadline := time.After(time.Second)
	for len(n.Active()) != 0 {
		select {
		case <-deadline:
			t.Fatal("notification never auto-dismissed")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestExplicitDismissBeatsTimer(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf)
	n.SetTTL(time.Hour)

	id := n.Info("Working...")
	n.Dismiss(id)
	if len(n.Active()) != 0 {
		t.Error("explicit dismissal should remove the notification")
	}
	n.Dismiss(id) // unknown id is a no-op
}

func TestMultipleSimultaneousNotifications(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf)
	n.SetTTL(time.Hour)

	n.Error("first failure")
	n.Error("first failure")
	n.Success("done")
	if got := len(n.Active()); got != 3 {
		t.Errorf("active = %d, want 3 (no de-duplication)", got)
	}
}
