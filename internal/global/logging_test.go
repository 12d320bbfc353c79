package global

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func readLog(t *testing.T, path string) string {
	t.Helper()

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %s", path, err)
	}

	return string(contents)
}

func TestRollingWriterRotates(t *testing.T) {
	dir := t.TempDir()
	w, err := NewRollingFileWriter(dir, "test", 10, 3)
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{"first\n", "second\n", "third\n", "fourth\n"} {
		if _, err := w.Write([]byte(line)); err != nil {
			t.Fatalf("write: %s", err)
		}
	}

	if got := readLog(t, filepath.Join(dir, "test.log")); got != "fourth\n" {
		t.Fatalf("expected the live log to hold the last line, got %q", got)
	}
	if got := readLog(t, filepath.Join(dir, "test-1.log")); got != "third\n" {
		t.Fatalf("expected the newest archive to hold the third line, got %q", got)
	}
	if got := readLog(t, filepath.Join(dir, "test-2.log")); got != "second\n" {
		t.Fatalf("expected the oldest archive to hold the second line, got %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "test-3.log")); err == nil {
		t.Fatalf("expected only three log files to be kept")
	}
}

func TestRollingWriterAppendsUnderLimit(t *testing.T) {
	dir := t.TempDir()
	w, err := NewRollingFileWriter(dir, "test", 1000, 2)
	if err != nil {
		t.Fatal(err)
	}

	w.Write([]byte("a\n"))
	w.Write([]byte("b\n"))

	if got := readLog(t, filepath.Join(dir, "test.log")); got != "a\nb\n" {
		t.Fatalf("expected both lines in one file, got %q", got)
	}
}

func TestArchiveIndex(t *testing.T) {
	tests := map[string]int{
		"dondozo-1.log":  1,
		"dondozo-12.log": 12,
		"dondozo-x.log":  -1,
		"dondozo-0.log":  -1,
		"dondozo.log":    -1,
		"other-2.log":    -1,
	}

	for file, want := range tests {
		index, ok := archiveIndex("dondozo", file)
		if want < 0 && ok {
			t.Fatalf("%s: expected no index, got %d", file, index)
		}
		if want >= 0 && (!ok || index != want) {
			t.Fatalf("%s: expected %d, got %d", file, want, index)
		}
	}
}

func TestInitWritesToConsole(t *testing.T) {
	var console strings.Builder
	config := DefaultConfig()
	config.LogDir = ""
	config.Color = false

	if err := Init(config, &console); err != nil {
		t.Fatal(err)
	}

	log.Info().Msg("hello from the test")

	if !strings.Contains(console.String(), "hello from the test") {
		t.Fatalf("expected the message on the console, got %q", console.String())
	}
}
