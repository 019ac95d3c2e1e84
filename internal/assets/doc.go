// Package assets provides the CSS themes embedded in every generated document.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - body themes from go:embed, code themes from chroma
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// A theme is made of two stylesheets: a Markdown body theme (the GitHub
// markdown CSS) and a code highlight theme (a chroma style rendered as CSS
// classes). LoadTheme maps a style name to that pair.
//
// # Directory Structure
//
// A custom asset directory overrides individual files:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # body themes (e.g., github-markdown-dark.css)
//	└── highlight/
//	    └── {name}.css           # code themes (e.g., github-dark.css)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
