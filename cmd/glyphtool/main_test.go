package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Garsondee/glyphmaze/internal/config"
	"github.com/Garsondee/glyphmaze/internal/game"
)

func TestPreview(t *testing.T) {
	refs := game.LoadReferences(config.Default(), zap.NewNop())
	refs[1] = nil
	out, err := preview(refs, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"== 0 infinity ==", "== 1 knot ==\n(missing)", "32x32", "#"} {
		if !strings.Contains(out, want) {
			t.Fatalf("preview missing %q:\n%s", want, out)
		}
	}
	if _, err := preview(refs, "dragon"); err == nil {
		t.Fatal("unknown name should fail")
	}
	one, _ := preview(refs, "bee")
	if strings.Contains(one, "infinity") {
		t.Fatal("-name should filter the preview")
	}
}

func TestScoreReport_RecognizesReference(t *testing.T) {
	cfg := config.Default()
	refs := game.LoadReferences(cfg, zap.NewNop())
	path := filepath.Join(t.TempDir(), "drawing.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, refs[3].Image); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	out, err := scoreReport(cfg, refs, path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "best: pentagram") {
		t.Fatalf("report:\n%s", out)
	}
}
