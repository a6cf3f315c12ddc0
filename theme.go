package kinko

import "github.com/gogpu/gg"

// Theme is the color set of one render pass. Themes only affect paint;
// they never affect geometry, so switching themes does not invalidate
// note bounding boxes.
type Theme struct {
	// Name identifies the theme ("light", "dark", ...).
	Name string
	// Ink is the primary glyph and modifier color.
	Ink gg.RGBA
	// Accent is the color of alteration and technique marks.
	Accent gg.RGBA
	// Debug is the color of debug labels.
	Debug gg.RGBA
}

// ThemeLight is the default theme: dark ink on a light page.
var ThemeLight = Theme{
	Name:   "light",
	Ink:    gg.RGB(0.1, 0.1, 0.12),
	Accent: gg.RGB(0.55, 0.15, 0.12),
	Debug:  gg.RGB(0.5, 0.5, 0.55),
}

// ThemeDark is the inverted theme for dark backgrounds.
var ThemeDark = Theme{
	Name:   "dark",
	Ink:    gg.RGB(0.92, 0.92, 0.9),
	Accent: gg.RGB(0.95, 0.55, 0.45),
	Debug:  gg.RGB(0.6, 0.6, 0.62),
}

// ThemeByName returns the named built-in theme, falling back to
// ThemeLight for unknown names.
func ThemeByName(name string) Theme {
	switch name {
	case "dark":
		return ThemeDark
	default:
		return ThemeLight
	}
}
