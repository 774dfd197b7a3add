package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/Garsondee/glyphmaze/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	cfg := config.Default().Log
	cfg.File = path
	cfg.Level = "warn"

	log := New(cfg)
	log.Info("dropped")
	log.Warn("kept")
	Sync(log)

	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(buf)
	if !strings.Contains(out, "kept") || !strings.Contains(out, "WARN") {
		t.Fatalf("warn entry missing: %q", out)
	}
	if strings.Contains(out, "dropped") {
		t.Fatalf("info entry should be filtered at warn: %q", out)
	}
}

func TestNew_NoSinks(t *testing.T) {
	log := New(config.LogConfig{})
	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("logger without sinks should be a no-op")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q)=%v, want %v", in, got, want)
		}
	}
}
