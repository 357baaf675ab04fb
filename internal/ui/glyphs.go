package ui

import "github.com/BobbyKostko/Astron1221-project2/internal/lunar"

// phaseGlyphs maps each phase to its calendar glyph.
var phaseGlyphs = map[lunar.Phase]string{
	lunar.PhaseNew:            "🌑",
	lunar.PhaseWaxingCrescent: "🌒",
	lunar.PhaseFirstQuarter:   "🌓",
	lunar.PhaseWaxingGibbous:  "🌔",
	lunar.PhaseFull:           "🌕",
	lunar.PhaseWaningGibbous:  "🌖",
	lunar.PhaseLastQuarter:    "🌗",
	lunar.PhaseWaningCrescent: "🌘",
}

// PhaseGlyph returns the moon glyph for a phase.
func PhaseGlyph(p lunar.Phase) string {
	if g, ok := phaseGlyphs[p]; ok {
		return g
	}
	return "🌙"
}

// illuminationBarChars grade a 0-100 illumination into an eighth-block rune.
var illuminationBarChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// illuminationSpark returns the spark character for an illumination percent.
func illuminationSpark(pct float64) rune {
	idx := int(pct / 100 * float64(len(illuminationBarChars)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(illuminationBarChars) {
		idx = len(illuminationBarChars) - 1
	}
	return illuminationBarChars[idx]
}
