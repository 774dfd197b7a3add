package game

import (
	"go.uber.org/zap"

	"github.com/Garsondee/glyphmaze/internal/config"
	"github.com/Garsondee/glyphmaze/internal/glyph"
)

// LoadReferences reads one reference glyph per faction from
// cfg.Sim.GlyphDir, or rasterizes the built-in set when no directory is
// configured. Missing files leave nil slots.
func LoadReferences(cfg config.Config, log *zap.Logger) []*glyph.Reference {
	if cfg.Sim.GlyphDir == "" {
		return glyph.Builtin(CanvasConfig(cfg.Canvas))
	}
	return glyph.LoadSet(cfg.Sim.GlyphDir, glyph.BuiltinNames, log)
}

// CanvasConfig maps the canvas section of the configuration onto the
// default drawing colours.
func CanvasConfig(c config.CanvasConfig) glyph.CanvasConfig {
	out := glyph.DefaultCanvasConfig()
	out.Resolution = c.Resolution
	out.OutputResolution = c.OutputResolution
	out.BrushRadius = c.BrushRadius
	out.Padding = c.Padding
	out.Threshold = c.Threshold
	return out
}
