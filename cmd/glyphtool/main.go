package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/Garsondee/glyphmaze/internal/config"
	"github.com/Garsondee/glyphmaze/internal/game"
	"github.com/Garsondee/glyphmaze/internal/glyph"
	"github.com/Garsondee/glyphmaze/internal/logging"
)

func main() {
	var cfgPath, glyphDir, name, scorePath string
	var copyOut, verbose bool

	flag.StringVar(&cfgPath, "config", "", "JSON config file")
	flag.StringVar(&glyphDir, "glyphs", "", "directory of reference glyph images (built-in glyphs when empty)")
	flag.StringVar(&name, "name", "", "only show this glyph")
	flag.StringVar(&scorePath, "score", "", "image of a drawing to normalize and score against the references")
	flag.BoolVar(&copyOut, "copy", false, "copy the output to the clipboard")
	flag.BoolVar(&verbose, "v", false, "log to stderr")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}
	if glyphDir != "" {
		cfg.Sim.GlyphDir = glyphDir
	}
	cfg.Log.File = ""
	cfg.Log.Stderr = verbose
	logger := logging.New(cfg.Log)
	defer logging.Sync(logger)

	refs := game.LoadReferences(cfg, logger)
	var out string
	var err error
	if scorePath != "" {
		out, err = scoreReport(cfg, refs, scorePath, logger)
	} else {
		out, err = preview(refs, name)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Print(out)

	if copyOut {
		if err := clipboard.WriteAll(out); err != nil {
			fmt.Fprintln(os.Stderr, "error: clipboard:", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "copied to clipboard")
	}
}

// preview renders every reference (or the one called name) as ASCII.
func preview(refs []*glyph.Reference, name string) (string, error) {
	var sb strings.Builder
	shown := 0
	for i, ref := range refs {
		label := glyph.BuiltinNames[i]
		if name != "" && name != label {
			continue
		}
		shown++
		fmt.Fprintf(&sb, "== %d %s ==\n", i, label)
		switch {
		case ref == nil:
			sb.WriteString("(missing)\n")
		case ref.Err != nil:
			fmt.Fprintf(&sb, "(unreadable: %v)\n", ref.Err)
		default:
			b := ref.Image.Bounds()
			fmt.Fprintf(&sb, "%dx%d\n%s", b.Dx(), b.Dy(), glyph.ASCII(ref.Image))
		}
	}
	if shown == 0 {
		return "", fmt.Errorf("no glyph named %q", name)
	}
	return sb.String(), nil
}

// scoreReport normalizes the drawing at path like a canvas gesture and
// lists its score against each reference.
func scoreReport(cfg config.Config, refs []*glyph.Reference, path string, logger *zap.Logger) (string, error) {
	drawing := glyph.Load(-1, "drawing", path)
	if drawing.Err != nil {
		return "", drawing.Err
	}
	n := glyph.Normalize(drawing.Image, game.CanvasConfig(cfg.Canvas))

	var sb strings.Builder
	fmt.Fprintf(&sb, "normalized %s\n%s", path, glyph.ASCII(n))
	for i, ref := range refs {
		switch {
		case ref == nil:
			fmt.Fprintf(&sb, "%-10s missing\n", glyph.BuiltinNames[i])
		case ref.Err != nil:
			fmt.Fprintf(&sb, "%-10s unreadable\n", ref.Name)
		default:
			fmt.Fprintf(&sb, "%-10s %.3f\n", ref.Name, glyph.Score(n, ref.Image))
		}
	}
	r := glyph.NewMatcher(cfg.Match.Threshold, logger).BestMatch(n, refs)
	if r.OK() {
		fmt.Fprintf(&sb, "best: %s (%.3f)\n", glyph.BuiltinNames[r.Index], r.Score)
	} else {
		fmt.Fprintf(&sb, "best: no match (%.3f < %.2f)\n", r.Score, cfg.Match.Threshold)
	}
	return sb.String(), nil
}
