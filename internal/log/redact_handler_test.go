package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	handler := NewRedactHandler(slog.NewTextHandler(buf, nil))
	return slog.New(handler)
}

func TestRedactHandler(t *testing.T) {
	t.Parallel()

	t.Run("masks contact keys", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf)

		logger.Info("lead stored", "email", "jane@acme-corp.io", "phone", "+49 30 1234 5678")

		out := buf.String()
		if strings.Contains(out, "jane@acme-corp.io") {
			t.Errorf("email leaked into log output:\n%s", out)
		}
		if strings.Contains(out, "1234 5678") {
			t.Errorf("phone leaked into log output:\n%s", out)
		}
		if !strings.Contains(out, MaskValue) {
			t.Errorf("expected mask marker in output:\n%s", out)
		}
	})

	t.Run("masks contact-shaped values under other keys", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf)

		logger.Info("scan result", "detail", "found jane@acme-corp.io on page")

		out := buf.String()
		if strings.Contains(out, "jane@acme-corp.io") {
			t.Errorf("address leaked via value matching:\n%s", out)
		}
		if !strings.Contains(out, "found") {
			t.Errorf("non-contact text must survive:\n%s", out)
		}
	})

	t.Run("leaves plain attributes alone", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf)

		logger.Info("query executed", "query", "cto berlin", "results", 7)

		out := buf.String()
		if !strings.Contains(out, "cto berlin") || !strings.Contains(out, "results=7") {
			t.Errorf("plain attributes were altered:\n%s", out)
		}
	})

	t.Run("masks inside groups", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := newTestLogger(&buf)

		logger.Info("lead", slog.Group("contact", slog.String("email", "jane@acme-corp.io")))

		if strings.Contains(buf.String(), "jane@acme-corp.io") {
			t.Errorf("grouped attribute leaked:\n%s", buf.String())
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true, false)
		logger.Debug("details")

		if !strings.Contains(buf.String(), "details") {
			t.Error("debug output missing in verbose mode")
		}
	})

	t.Run("default level hides debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false, false)
		logger.Debug("details")

		if buf.Len() != 0 {
			t.Errorf("debug output present without verbose: %s", buf.String())
		}
	})

	t.Run("redaction wired through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false, true)
		logger.Info("lead", "email", "jane@acme-corp.io")

		if strings.Contains(buf.String(), "jane@acme-corp.io") {
			t.Errorf("redaction not applied:\n%s", buf.String())
		}
	})
}
