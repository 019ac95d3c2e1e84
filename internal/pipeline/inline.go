package pipeline

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for image inlining. Both are reported as warnings.
var (
	ErrImageNotFound = errors.New("image not found")
	ErrImageRead     = errors.New("failed to read image")
)

// ImageInliner defines the contract for embedding local images in a fragment.
type ImageInliner interface {
	InlineImages(ctx context.Context, fragment, sourceDir string) (string, []ImageWarning, error)
}

// ImageWarning describes an <img> left unchanged because its local file
// could not be used. Warnings never stop a conversion.
type ImageWarning struct {
	Src  string // src attribute as found in the document
	Path string // local path derived from Src
	Err  error  // wraps ErrImageNotFound or ErrImageRead
}

// String formats the warning for the console.
func (w ImageWarning) String() string {
	if errors.Is(w.Err, ErrImageNotFound) {
		return fmt.Sprintf("Error: image '%s' not found", w.Path)
	}
	return fmt.Sprintf("Error: image '%s' could not be read: %v", w.Path, w.Err)
}

// ImageRef is an <img> element collected for rewriting. Attr indexes its
// src attribute in Node.Attr.
type ImageRef struct {
	Node *html.Node
	Attr int
}

// Src returns the current src value.
func (r ImageRef) Src() string {
	return r.Node.Attr[r.Attr].Val
}

// DataURIInliner replaces local image sources with base64 data URIs.
type DataURIInliner struct{}

// InlineImages rewrites the src of every <img> referencing a local file to a
// data:<mime>;base64 URI. Relative paths resolve against sourceDir, or the
// working directory when sourceDir is empty.
//
// Left untouched:
//   - http and https URLs (remote images are never fetched)
//   - data URIs, so inlining is idempotent
//   - images without a src attribute
//   - local paths that do not exist or cannot be read (reported as warnings)
//
// When no element changes, the fragment is returned byte for byte.
func (d *DataURIInliner) InlineImages(ctx context.Context, fragment, sourceDir string) (string, []ImageWarning, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	tree, err := parseTree(fragment)
	if err != nil {
		return "", nil, err
	}

	refs := tree.images()
	if len(refs) == 0 {
		return fragment, nil, nil
	}

	var warnings []ImageWarning
	changed := false
	for _, ref := range refs {
		uri, warning := resolveDataURI(ref.Src(), sourceDir)
		if warning != nil {
			warnings = append(warnings, *warning)
			continue
		}
		if uri == "" {
			continue
		}
		ref.Node.Attr[ref.Attr].Val = uri
		changed = true
	}

	if !changed {
		return fragment, warnings, nil
	}

	out, err := tree.render()
	if err != nil {
		return "", warnings, err
	}
	return out, warnings, nil
}

// htmlTree holds parsed markup. A fragment keeps its top-level nodes under
// a bare document node so rendering adds no <body> wrapper.
type htmlTree struct {
	root     *html.Node
	document bool
}

func parseTree(content string) (*htmlTree, error) {
	head := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html") {
		root, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		return &htmlTree{root: root, document: true}, nil
	}

	bodyCtx := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: atom.Body.String()}
	nodes, err := html.ParseFragment(strings.NewReader(content), bodyCtx)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &htmlTree{root: root}, nil
}

func (t *htmlTree) render() (string, error) {
	var sb strings.Builder
	if t.document {
		err := html.Render(&sb, t.root)
		return sb.String(), err
	}
	for n := t.root.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(&sb, n); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// images returns every <img> with a non-empty src, in document order.
func (t *htmlTree) images() []ImageRef {
	var refs []ImageRef
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Img {
			for i, a := range n.Attr {
				if a.Namespace == "" && a.Key == "src" {
					if a.Val != "" {
						refs = append(refs, ImageRef{Node: n, Attr: i})
					}
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(t.root)
	return refs
}

// resolveDataURI returns the data URI for src, an empty string when src is
// not a local reference, or a warning when the local file is unusable.
func resolveDataURI(src, sourceDir string) (string, *ImageWarning) {
	path, local := localImagePath(stripQuery(src))
	if !local {
		return "", nil
	}

	resolved, ok := findImage(path, sourceDir)
	if !ok {
		return "", &ImageWarning{Src: src, Path: path, Err: ErrImageNotFound}
	}

	data, err := os.ReadFile(resolved) // #nosec G304 -- image paths come from the user's own document
	if err != nil {
		return "", &ImageWarning{Src: src, Path: path, Err: fmt.Errorf("%w: %v", ErrImageRead, err)}
	}

	return "data:" + imageMIMEType(resolved) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// stripQuery drops everything from the first '?'.
func stripQuery(src string) string {
	if i := strings.IndexByte(src, '?'); i >= 0 {
		return src[:i]
	}
	return src
}

// localImagePath classifies a candidate by URL scheme. Remote and data URLs
// are not local; file URLs map to their path; anything else, including
// relative paths and unknown schemes, is tried as a local path.
func localImagePath(candidate string) (string, bool) {
	// C:\img.png parses as scheme "c"
	if filepath.VolumeName(candidate) != "" {
		return candidate, true
	}

	switch urlScheme(candidate) {
	case "http", "https", "data":
		return "", false
	case "file":
		u, err := url.Parse(candidate)
		if err != nil {
			return candidate, true
		}
		return filepath.FromSlash(u.Path), true
	default:
		return candidate, true
	}
}

// urlScheme returns the lowercased scheme of an absolute URL, or "" for
// relative references. net/url rejects some URLs browsers accept (control
// bytes in a wrapped data payload, a stray '%' in a fragment), so a failed
// parse falls back to reading the scheme prefix directly.
func urlScheme(s string) string {
	u, err := url.Parse(s)
	if err != nil {
		return schemePrefix(s)
	}
	if !u.IsAbs() {
		return ""
	}
	return u.Scheme
}

// schemePrefix reads an RFC 3986 scheme: a letter, then letters, digits,
// '+', '-' or '.', terminated by ':'.
func schemePrefix(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		case i > 0 && c == ':':
			return strings.ToLower(s[:i])
		default:
			return ""
		}
	}
	return ""
}

// findImage locates path on disk, retrying once percent-decoded since
// goldmark escapes characters such as spaces in link destinations.
func findImage(path, sourceDir string) (string, bool) {
	candidates := []string{path}
	if unescaped, err := url.PathUnescape(path); err == nil && unescaped != path {
		candidates = append(candidates, unescaped)
	}

	for _, p := range candidates {
		full := p
		if sourceDir != "" && !filepath.IsAbs(p) {
			full = filepath.Join(sourceDir, p)
		}
		if fileutil.FileExists(full) {
			return full, true
		}
	}
	return "", false
}
