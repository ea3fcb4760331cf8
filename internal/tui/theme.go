package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"livadm/internal/reconcile"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal
// backgrounds, so every color is a lipgloss.AdaptiveColor and "faint"
// styling only applies on dark backgrounds (faint on light terminals
// often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

// Semantic colors used across the TUI. The slate profile swaps a few of
// these; resetPaletteToDefaults restores the stock set.
var (
	defaultColorMuted lipgloss.TerminalColor = ac("240", "243")
	colorMuted                               = defaultColorMuted

	defaultColorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorSurfaceFg                               = defaultColorSurfaceFg

	defaultColorSelectedBg                        = ac("#e9e9e9", "#262626")
	defaultColorSelectedFg                        = ac("235", "255")
	colorSelectedBg        lipgloss.TerminalColor = defaultColorSelectedBg
	colorSelectedFg        lipgloss.TerminalColor = defaultColorSelectedFg

	// Slightly elevated surfaces for controls/inputs so they stay
	// visible on light terminals.
	defaultColorControlBg lipgloss.TerminalColor = ac("252", "235")
	colorControlBg                               = defaultColorControlBg
	defaultColorInputBg   lipgloss.TerminalColor = ac("254", "234")
	colorInputBg                                 = defaultColorInputBg

	defaultColorAccent   lipgloss.TerminalColor = ac("27", "62") // blue
	colorAccent                                 = defaultColorAccent
	defaultColorAccentFg lipgloss.TerminalColor = ac("255", "235")
	colorAccentFg                               = defaultColorAccentFg

	// Toast severities and status pills.
	defaultColorError   lipgloss.TerminalColor = ac("160", "196")
	colorError                                 = defaultColorError
	defaultColorSuccess lipgloss.TerminalColor = ac("28", "40")
	colorSuccess                               = defaultColorSuccess
	defaultColorInfo    lipgloss.TerminalColor = ac("24", "39")
	colorInfo                                  = defaultColorInfo

	// Modal chrome; tracks the control surface by default.
	defaultColorModalHeaderBg lipgloss.TerminalColor = defaultColorControlBg
	colorModalHeaderBg                               = defaultColorModalHeaderBg
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// Appearance profiles. Two ship: "default" (stock blues) and "slate"
// (cooler steel accents). The choice persists in prefs and can be
// forced with LIVADM_THEME.

type themeProfileID string

const (
	themeDefault themeProfileID = "default"
	themeSlate   themeProfileID = "slate"
)

var (
	themeMu      sync.RWMutex
	currentTheme = themeDefault
)

func resetPaletteToDefaults() {
	colorMuted = defaultColorMuted
	colorSurfaceFg = defaultColorSurfaceFg
	colorSelectedBg = defaultColorSelectedBg
	colorSelectedFg = defaultColorSelectedFg
	colorControlBg = defaultColorControlBg
	colorInputBg = defaultColorInputBg
	colorAccent = defaultColorAccent
	colorAccentFg = defaultColorAccentFg
	colorError = defaultColorError
	colorSuccess = defaultColorSuccess
	colorInfo = defaultColorInfo
	colorModalHeaderBg = defaultColorModalHeaderBg
}

func setThemeProfile(id themeProfileID) {
	themeMu.Lock()
	defer themeMu.Unlock()

	switch id {
	case themeSlate:
		currentTheme = themeSlate
		resetPaletteToDefaults()
		colorAccent = ac("60", "103")
		colorAccentFg = ac("255", "234")
		colorSelectedBg = ac("#dde3ea", "#2c3340")
		colorControlBg = ac("253", "236")
		colorInfo = ac("60", "110")
	default:
		currentTheme = themeDefault
		resetPaletteToDefaults()
	}
}

func themeProfile() themeProfileID {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

func otherThemeProfile(id themeProfileID) themeProfileID {
	if id == themeSlate {
		return themeDefault
	}
	return themeSlate
}

func parseThemeProfile(s string) (themeProfileID, bool) {
	switch themeProfileID(strings.ToLower(strings.TrimSpace(s))) {
	case themeDefault:
		return themeDefault, true
	case themeSlate:
		return themeSlate, true
	}
	return themeDefault, false
}

// applyThemePreference picks the appearance profile. Priority: the
// LIVADM_THEME environment variable, then the saved preference, then
// default.
func applyThemePreference(saved string) {
	if id, ok := parseThemeProfile(os.Getenv("LIVADM_THEME")); ok {
		setThemeProfile(id)
		return
	}
	if id, ok := parseThemeProfile(saved); ok {
		setThemeProfile(id)
		return
	}
	setThemeProfile(themeDefault)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which
// is right for piped CLI output but can accidentally disable colors in
// a TUI. Here we only honor NO_COLOR and otherwise follow the
// terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If TERM/COLORTERM indicate stronger support than the detector
	// reports, trust the env. Some terminals under-report on probing.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyBackgroundPreference configures Lip Gloss's background
// detection. Some terminals don't report their background reliably,
// which makes AdaptiveColor pick the wrong variant.
//
// Priority:
// 1) LIVADM_DARKBG=true|false
// 2) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyBackgroundPreference() {
	if v := strings.TrimSpace(os.Getenv("LIVADM_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			// Common xterm palette: 0-6 dark, 7-15 light.
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}
}

func severityColor(sev reconcile.Severity) lipgloss.TerminalColor {
	switch sev {
	case reconcile.SeverityError:
		return colorError
	case reconcile.SeveritySuccess:
		return colorSuccess
	}
	return colorInfo
}
