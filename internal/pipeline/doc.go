// Package pipeline implements the Markdown-to-HTML conversion stages.
//
// The stages run in order, each taking the previous stage's output:
//   - Source normalization (BOM, line endings)
//   - Markdown to HTML fragment via Goldmark, code highlighted by chroma
//   - Image inlining: local <img> sources become base64 data URIs (optional)
//   - Document assembly: the fragment is wrapped in a page with embedded CSS
//
// Theme loading lives in internal/assets; the root md2html package wires the
// stages together and owns file I/O.
package pipeline
