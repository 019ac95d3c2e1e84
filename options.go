package md2html

// converterConfig holds options applied at construction time.
type converterConfig struct {
	style     Style
	assetPath string
}

// Option configures a Converter.
type Option func(*Converter)

// WithStyle sets the page theme. Default: StyleDefault.
func WithStyle(s Style) Option {
	return func(c *Converter) {
		c.cfg.style = s
	}
}

// WithAssetPath sets a directory whose styles/ and highlight/ files
// override the built-in themes. Empty means built-in assets only.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}
