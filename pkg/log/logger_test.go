package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": DebugLevel,
		"INFO":  InfoLevel,
		"warn":  WarnLevel,
		"error": ErrorLevel,
		"fatal": FatalLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q): got %v want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLevelGate(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithLevel(WarnLevel), WithOutput(NewWriterOutput(&buf)))
	l.Info("dropped")
	l.Warn("kept")
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info must be gated below warn: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn must pass: %q", out)
	}
}

func TestTextFormatterFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(NewWriterOutput(&buf)))
	l.Info("generated", Int("count", 3), Str("output", "hex"))
	out := buf.String()
	if !strings.Contains(out, "INFO generated") {
		t.Fatalf("missing level/message: %q", out)
	}
	if !strings.Contains(out, "count=3") || !strings.Contains(out, "output=hex") {
		t.Fatalf("missing fields: %q", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithFormatter(&JSONFormatter{}), WithOutput(NewWriterOutput(&buf)))
	l.WithComponent("inspect").Info("decoded", Uint64("raw", 42))
	var obj map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &obj); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if obj["message"] != "decoded" || obj["component"] != "inspect" {
		t.Fatalf("unexpected object: %v", obj)
	}
	if obj["raw"] != float64(42) {
		t.Fatalf("field lost: %v", obj)
	}
}
