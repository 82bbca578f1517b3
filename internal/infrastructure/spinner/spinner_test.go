package spinner

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/doeshing/spinit/internal/domain"
)

func TestStartReturnsBeforeFrameInterval(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	begin := time.Now()
	handle, err := c.Start("Processing...")
	elapsed := time.Since(begin)

	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if elapsed >= domain.FrameInterval {
		t.Fatalf("Start() blocked for %v, want well under %v", elapsed, domain.FrameInterval)
	}
	c.Stop(handle, domain.StatusSuccess)
}

func TestStartWhileRunningFails(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	handle, err := c.Start("first")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if _, err := c.Start("second"); !errors.Is(err, domain.ErrSpinnerRunning) {
		t.Fatalf("second Start() error = %v, want ErrSpinnerRunning", err)
	}

	c.Stop(handle, domain.StatusSuccess)

	// A stopped controller accepts a fresh spinner again.
	again, err := c.Start("third")
	if err != nil {
		t.Fatalf("Start() after Stop error = %v", err)
	}
	c.Stop(again, domain.StatusSuccess)
}

func TestStopWritesResultLine(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.ExitStatus
		wantMark string
	}{
		{name: "success mark", status: domain.StatusSuccess, wantMark: "✓"},
		{name: "failure mark", status: domain.StatusFailure, wantMark: "✗"},
		{name: "non-zero code is failure", status: domain.StatusFromCode(42), wantMark: "✗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := New(&buf)

			handle, err := c.Start("Processing...")
			if err != nil {
				t.Fatalf("Start() error = %v", err)
			}
			time.Sleep(domain.FrameInterval / 2)
			c.Stop(handle, tt.status)

			out := buf.String()
			if !strings.Contains(out, tt.wantMark+" Processing...") {
				t.Fatalf("output %q missing result line with %q", out, tt.wantMark)
			}
			if !strings.Contains(out, "\r\033[K") {
				t.Fatalf("output %q missing clear-line sequence", out)
			}
			if got := strings.Count(out, "\n"); got != 1 {
				t.Fatalf("output has %d result lines, want exactly 1", got)
			}
		})
	}
}

func TestStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	handle, err := c.Start("Deploying")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	c.Stop(handle, domain.StatusSuccess)
	first := buf.String()

	// Redundant stops, even with a different status, change nothing.
	c.Stop(handle, domain.StatusFailure)
	c.Stop(handle, domain.StatusSuccess)

	if got := buf.String(); got != first {
		t.Fatalf("redundant Stop changed output:\nfirst: %q\nafter: %q", first, got)
	}
	if got := strings.Count(first, "\n"); got != 1 {
		t.Fatalf("output has %d result lines, want exactly 1", got)
	}
}

func TestStopUnknownHandleIsNoop(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Stop(nil, domain.StatusSuccess)
	c.Stop(strangerHandle{}, domain.StatusFailure)

	if buf.Len() != 0 {
		t.Fatalf("Stop on unknown handle wrote %q", buf.String())
	}
}

func TestNoOutputAfterStop(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	handle, err := c.Start("Working")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	time.Sleep(domain.FrameInterval / 2)
	c.Stop(handle, domain.StatusSuccess)

	size := buf.Len()
	time.Sleep(3 * domain.FrameInterval)
	if buf.Len() != size {
		t.Fatalf("output grew from %d to %d bytes after Stop", size, buf.Len())
	}
}

func TestControllersAreIndependent(t *testing.T) {
	var first, second bytes.Buffer
	a := New(&first)
	b := New(&second)

	ha, err := a.Start("one")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	hb, err := b.Start("two")
	if err != nil {
		t.Fatalf("second controller Start() error = %v", err)
	}

	a.Stop(ha, domain.StatusSuccess)
	b.Stop(hb, domain.StatusFailure)

	if !strings.Contains(first.String(), "one") || strings.Contains(first.String(), "two") {
		t.Fatalf("first controller output wrong: %q", first.String())
	}
	if !strings.Contains(second.String(), "two") {
		t.Fatalf("second controller output wrong: %q", second.String())
	}
}

// strangerHandle satisfies ports.SpinnerHandle without coming from any
// controller.
type strangerHandle struct{}

func (strangerHandle) Message() string { return "stranger" }
