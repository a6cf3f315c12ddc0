package kinko

// Option configures a Renderer during creation.
// Use functional options to customize rendering behavior.
//
// Example:
//
//	// Default configuration
//	r := kinko.NewRenderer()
//
//	// Debug labels, dark theme
//	r := kinko.NewRenderer(
//	    kinko.WithDebugLabels(true),
//	    kinko.WithTheme(kinko.ThemeDark),
//	)
type Option func(*rendererOptions)

// rendererOptions holds the optional configuration of a Renderer.
type rendererOptions struct {
	debugLabels bool
	octaveDots  bool
	theme       Theme
	layout      LayoutConfig
	fontFamily  string
	fontSize    float64
}

// defaultRendererOptions returns the default renderer configuration:
// octave dots on, debug labels off, light theme, standard layout.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		octaveDots: true,
		theme:      ThemeLight,
		layout:     DefaultLayout(),
		fontFamily: DefaultFontFamily,
		fontSize:   DefaultFontSize,
	}
}

// WithDebugLabels toggles the small romaji label drawn under each
// resolved note. Off by default.
func WithDebugLabels(on bool) Option {
	return func(o *rendererOptions) {
		o.debugLabels = on
	}
}

// WithOctaveDots toggles the kan/daikan register dots. On by default.
// Turning them off re-runs the full pipeline on the next Render call;
// there is no incremental re-layout.
func WithOctaveDots(on bool) Option {
	return func(o *rendererOptions) {
		o.octaveDots = on
	}
}

// WithTheme sets the color theme.
func WithTheme(t Theme) Option {
	return func(o *rendererOptions) {
		o.theme = t
	}
}

// WithLayout sets the layout configuration.
func WithLayout(cfg LayoutConfig) Option {
	return func(o *rendererOptions) {
		o.layout = cfg
	}
}

// WithFontFamily sets the glyph font family.
func WithFontFamily(family string) Option {
	return func(o *rendererOptions) {
		if family != "" {
			o.fontFamily = family
		}
	}
}

// WithFontSize sets the glyph font size.
func WithFontSize(size float64) Option {
	return func(o *rendererOptions) {
		if size > 0 {
			o.fontSize = size
		}
	}
}
