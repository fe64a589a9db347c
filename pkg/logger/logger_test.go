package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	l.Debug("hidden")
	l.Info("email sent", String("email", "a@example.com"), Int("n", 2), Bool("force", true), Error(errors.New("boom")))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %s", len(lines), buf.String())
	}
	var got map[string]interface{}
	if err := json.Unmarshal(lines[0], &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["message"] != "email sent" || got["email"] != "a@example.com" || got["error"] != "boom" {
		t.Fatalf("unexpected entry %v", got)
	}
	if got["n"] != float64(2) || got["force"] != true {
		t.Fatalf("unexpected typed fields %v", got)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(&Config{Level: "loud"}); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&Config{Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.With(String("run", "r1")).Warn("careful")
	if !bytes.Contains(buf.Bytes(), []byte(`"run":"r1"`)) {
		t.Fatalf("missing child field: %s", buf.String())
	}
}
