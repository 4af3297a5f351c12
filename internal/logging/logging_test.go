package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{" WARN ", zerolog.WarnLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Fatalf("ParseLevel(%q)=(%v,%v) want (%v, err=%v)", tt.in, got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestComponentLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(&buf, zerolog.InfoLevel), "pager")
	log.Debug().Msg("hidden")
	log.Info().Int("lines", 3).Msg("loaded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected debug to be filtered, got %d lines: %q", len(lines), buf.String())
	}
	var event map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &event); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if event["component"] != "pager" || event["message"] != "loaded" || event["lines"] != float64(3) {
		t.Fatalf("unexpected event %v", event)
	}
	if _, ok := event["time"]; !ok {
		t.Fatalf("expected timestamp field in %v", event)
	}
}

func TestOpenWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpager.log")
	log, closer, err := Open(path, "debug")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	log.Debug().Msg("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"message":"hello"`) {
		t.Fatalf("log file missing event: %q", data)
	}
}

func TestOpenWithoutPathDiscards(t *testing.T) {
	_, closer, err := Open("", "info")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, _, err := Open("", "loud"); err == nil {
		t.Fatalf("expected invalid level error")
	}
}
