package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rpager/internal/config"
	pagerui "github.com/kk-code-lab/rpager/internal/ui/pager"
	"github.com/rs/zerolog"
)

func testConfig() config.Config {
	return config.Config{Theme: "monokai", TabWidth: 4, HighlightContext: 40}
}

func loadTestDocument(t *testing.T, text string, cfg config.Config) *Document {
	t.Helper()
	doc, err := LoadDocument(Options{
		Input:  strings.NewReader(text),
		Config: cfg,
		Logger: zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	return doc
}

func newTestApp(t *testing.T, text string, width, height int) (*Application, tcell.SimulationScreen) {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	scr.SetSize(width, height)
	t.Cleanup(scr.Fini)

	cfg := testConfig()
	doc := loadTestDocument(t, text, cfg)
	return newApplication(scr, doc, Options{Config: cfg, Logger: zerolog.Nop()}), scr
}

func TestLoadDocumentFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	if err := os.WriteFile(path, []byte("package main\n\nfunc main() {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := testConfig()
	cfg.LineNumbers = true
	doc, err := LoadDocument(Options{Path: path, Config: cfg, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if doc.Name != "main.go" || doc.Lexer != "Go" || doc.Style != "monokai" {
		t.Fatalf("unexpected document %+v", doc)
	}
	if doc.Content.Len() != 3 {
		t.Fatalf("expected 3 lines, got %d", doc.Content.Len())
	}
	if _, ok := doc.Content.Decorator().(pagerui.LineNumberDecorator[pagerui.TextLine]); !ok {
		t.Fatalf("expected line number decorator, got %T", doc.Content.Decorator())
	}
}

func TestLoadDocumentSanitizesName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evil\x1b[2Jname.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := LoadDocument(Options{Path: path, Config: testConfig(), Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if doc.Name != "evil?[2Jname.txt" {
		t.Fatalf("expected control characters replaced in name, got %q", doc.Name)
	}
}

func TestLoadDocumentFromStdin(t *testing.T) {
	doc := loadTestDocument(t, "#!/usr/bin/env python\nprint(1)\n", testConfig())
	if doc.Name != "stdin" {
		t.Fatalf("expected stdin name, got %q", doc.Name)
	}
	if doc.Lexer != "Python" {
		t.Fatalf("expected content analysis to pick Python, got %q", doc.Lexer)
	}

	if _, err := LoadDocument(Options{Path: "-", Config: testConfig(), Logger: zerolog.Nop()}); err == nil {
		t.Fatalf("expected error without input reader")
	}
}

func TestLoadDocumentRejectsBinary(t *testing.T) {
	_, err := LoadDocument(Options{Input: strings.NewReader("\x00\x01\x02\x03"), Config: testConfig(), Logger: zerolog.Nop()})
	if err == nil {
		t.Fatalf("expected binary input to be rejected")
	}
}

func TestWritePlain(t *testing.T) {
	doc := loadTestDocument(t, "a\tb\nc\n", testConfig())
	var buf bytes.Buffer
	if err := WritePlain(&buf, doc); err != nil {
		t.Fatalf("WritePlain: %v", err)
	}
	if got := buf.String(); got != "a   b\nc\n" {
		t.Fatalf("WritePlain wrote %q", got)
	}
}

func TestLineMatcherSmartCase(t *testing.T) {
	tests := []struct {
		query string
		line  string
		want  bool
	}{
		{"foo", "a FOO b", true},
		{"Foo", "a foo b", false},
		{"Foo", "a Foo b", true},
		{"bar", "a foo b", false},
	}
	for _, tt := range tests {
		if got := lineMatcher(tt.query)(tt.line); got != tt.want {
			t.Fatalf("lineMatcher(%q)(%q)=%v want %v", tt.query, tt.line, got, tt.want)
		}
	}
}
