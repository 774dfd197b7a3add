package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Garsondee/glyphmaze/internal/config"
	"github.com/Garsondee/glyphmaze/internal/game"
	"github.com/Garsondee/glyphmaze/internal/grid"
	"github.com/Garsondee/glyphmaze/internal/logging"
)

func main() {
	var cfgPath, levelPath, glyphDir string
	var seed int64
	var verbose bool

	flag.StringVar(&cfgPath, "config", "", "JSON config file (defaults when empty)")
	flag.StringVar(&levelPath, "level", "", "ASCII level file (built-in maze when empty)")
	flag.StringVar(&glyphDir, "glyphs", "", "directory of reference glyph images (built-in glyphs when empty)")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = config value, or the clock)")
	flag.BoolVar(&verbose, "v", false, "also log to stderr at debug level")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	if levelPath != "" {
		cfg.Sim.Level = levelPath
	}
	if glyphDir != "" {
		cfg.Sim.GlyphDir = glyphDir
	}
	if seed != 0 {
		cfg.Sim.Seed = seed
	}
	if cfg.Sim.Seed == 0 {
		cfg.Sim.Seed = time.Now().UnixNano()
	}
	if verbose {
		cfg.Log.Stderr = true
		cfg.Log.Level = "debug"
	}

	logger := logging.New(cfg.Log)
	defer logging.Sync(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("glyphmaze stopped", zap.Error(err))
		log.Fatal(err)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	level, err := loadLevel(cfg.Sim.Level)
	if err != nil {
		return err
	}
	refs := game.LoadReferences(cfg, logger)

	s, err := game.NewSession(cfg, level, refs, logger)
	if err != nil {
		return err
	}
	app := game.NewApp(s, cfg.Sim.TicksPerSecond, logger)

	ebiten.SetWindowTitle("Glyph Maze")
	ebiten.SetWindowSize(app.WindowSize())
	return ebiten.RunGame(app)
}

func loadLevel(path string) (*grid.Level, error) {
	if path == "" {
		return grid.DefaultLevel(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open level %s", path)
	}
	defer f.Close()
	lvl, err := grid.ParseLevel(f)
	if err != nil {
		return nil, errors.Wrapf(err, "level %s", path)
	}
	return lvl, nil
}
