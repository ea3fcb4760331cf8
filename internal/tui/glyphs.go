package tui

import (
	"os"
	"strings"
	"sync/atomic"
)

// The terminal's font is out of our hands; what we can control is falling
// back from the Unicode affordances (twisties, check marks, chip closers,
// dropdown hints) to plain ASCII on terminals that render them badly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var currentGlyphs atomic.Int32

func setGlyphs(gs glyphSet) { currentGlyphs.Store(int32(gs)) }

func glyphs() glyphSet { return glyphSet(currentGlyphs.Load()) }

// applyGlyphPreference honors LIVADM_GLYPHS: "unicode"/"utf8" (the
// default) or "ascii". Unknown values keep the current set.
func applyGlyphPreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LIVADM_GLYPHS"))) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func pickGlyph(unicode, ascii string) string {
	if glyphs() == glyphSetASCII {
		return ascii
	}
	return unicode
}

func glyphTwistyCollapsed() string { return pickGlyph("▸", ">") }
func glyphTwistyExpanded() string  { return pickGlyph("▾", "v") }
func glyphCheck() string           { return pickGlyph("✓", "x") }
func glyphChipClose() string       { return pickGlyph("×", "x") }
func glyphDropdownHint() string    { return pickGlyph("▾", "v") }
