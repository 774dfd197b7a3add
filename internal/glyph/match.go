package glyph

import (
	"image"
	"image/color"

	"go.uber.org/zap"
)

// ActiveThreshold is the level above which a pixel counts as part of a glyph.
const ActiveThreshold = 0.1

// DefaultMatchThreshold is the minimum score accepted as a recognition.
const DefaultMatchThreshold = 0.25

// Result is the outcome of one recognition attempt.
type Result struct {
	Index int     // winning reference index, -1 for no match
	Score float64 // best score seen, even when below threshold
}

// NoMatch is the result when nothing clears the threshold.
var NoMatch = Result{Index: -1}

// OK reports whether a reference was recognized.
func (r Result) OK() bool { return r.Index >= 0 }

// referenceActive classifies a reference pixel by alpha.
func referenceActive(c color.Color) bool {
	return alphaVisible(c, ActiveThreshold)
}

// drawnActive classifies a drawn pixel by alpha or grayscale intensity, so
// both transparent-background and opaque drawings work.
func drawnActive(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if float64(n.A)/255 > ActiveThreshold {
		return true
	}
	gray := (0.299*float64(n.R) + 0.587*float64(n.G) + 0.114*float64(n.B)) / 255
	return gray > ActiveThreshold
}

// Score compares drawn against ref over the reference's own pixel grid.
// Each reference pixel samples the drawn bitmap at the same relative position
// (nearest pixel). Only positions active in either bitmap count; the score is
// the share of those where both agree. Returns 0 when nothing is active.
func Score(drawn, ref image.Image) float64 {
	if drawn == nil || ref == nil {
		return 0
	}
	rb, db := ref.Bounds(), drawn.Bounds()
	w, h := rb.Dx(), rb.Dy()
	dw, dh := db.Dx(), db.Dy()
	if w == 0 || h == 0 || dw == 0 || dh == 0 {
		return 0
	}

	matches, significant := 0, 0
	for y := 0; y < h; y++ {
		dy := clampInt(y*dh/h, 0, dh-1)
		for x := 0; x < w; x++ {
			dx := clampInt(x*dw/w, 0, dw-1)
			refOn := referenceActive(ref.At(rb.Min.X+x, rb.Min.Y+y))
			drawnOn := drawnActive(drawn.At(db.Min.X+dx, db.Min.Y+dy))
			if !refOn && !drawnOn {
				continue
			}
			significant++
			if refOn == drawnOn {
				matches++
			}
		}
	}
	if significant == 0 {
		return 0
	}
	return float64(matches) / float64(significant)
}

// Matcher picks the best reference glyph for a drawing.
type Matcher struct {
	threshold float64
	log       *zap.Logger
}

// NewMatcher returns a matcher accepting scores at or above threshold.
func NewMatcher(threshold float64, log *zap.Logger) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{threshold: threshold, log: log}
}

// Threshold returns the acceptance threshold.
func (m *Matcher) Threshold() float64 { return m.threshold }

// BestMatch scores drawn against every reference in order. Missing (nil)
// references are skipped; unreadable ones score 0. Ties keep the earliest.
func (m *Matcher) BestMatch(drawn image.Image, refs []*Reference) Result {
	if drawn == nil || len(refs) == 0 {
		return NoMatch
	}
	m.log.Debug("matching drawing",
		zap.Int("width", drawn.Bounds().Dx()),
		zap.Int("height", drawn.Bounds().Dy()),
		zap.Int("references", len(refs)))

	bestIndex, bestScore := -1, -1.0
	for i, ref := range refs {
		if ref == nil || (ref.Image == nil && ref.Err == nil) {
			m.log.Warn("reference glyph missing; skipped", zap.Int("slot", i))
			continue
		}
		score := 0.0
		if ref.Err != nil {
			m.log.Error("reference glyph unreadable; scoring 0",
				zap.String("glyph", ref.Name), zap.Error(ref.Err))
		} else {
			score = Score(drawn, ref.Image)
		}
		m.log.Debug("glyph score", zap.String("glyph", ref.Name), zap.Float64("score", score))
		if score > bestScore {
			bestScore = score
			bestIndex = ref.Index
		}
	}

	if bestIndex < 0 {
		return NoMatch
	}
	m.log.Info("best match",
		zap.Int("index", bestIndex),
		zap.Float64("score", bestScore),
		zap.Float64("threshold", m.threshold))
	if bestScore < m.threshold {
		return Result{Index: -1, Score: bestScore}
	}
	return Result{Index: bestIndex, Score: bestScore}
}
