package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_StampsServiceField(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Service: "claims-intake", Output: &buf})

	log.Info().Msg("listening")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if line["service"] != "claims-intake" {
		t.Errorf("expected service field, got %v", line["service"])
	}
	if line["message"] != "listening" {
		t.Errorf("expected message field, got %v", line["message"])
	}
}

func TestNew_LevelFloor(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Output: &buf})

	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info event below the warn floor must not be written, got %q", buf.String())
	}

	log.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Fatal("warn event at the floor must be written")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
