package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html -f <markdown-file> -o <html-file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file to a standalone HTML page with GitHub styling.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -f, --file <path>         Markdown file to convert (required)")
	fmt.Fprintln(w, "  -o, --output <path>       HTML file to write, must end with .html (required)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -s, --style <name>        Theme: light, dark (default follows the reader's color scheme)")
	fmt.Fprintln(w, "      --asset-path <dir>    Override themes from <dir>/styles and <dir>/highlight")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Images:")
	fmt.Fprintln(w, "  -sc, --self_contained     Embed local images as base64 data URIs")
	fmt.Fprintln(w, "                            (also accepted as --self-contained)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output control:")
	fmt.Fprintln(w, "  -q, --quiet               Only print errors")
	fmt.Fprintln(w, "  -v, --verbose             Print stage timings")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG            Config file name or path")
	fmt.Fprintln(w, "  MD2HTML_STYLE             Theme (overridden by --style)")
	fmt.Fprintln(w, "  MD2HTML_ASSET_PATH        Custom asset directory")
	fmt.Fprintln(w, "  MD2HTML_SELF_CONTAINED    true or false")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general error, 2 usage error, 3 I/O error, 4 missing theme asset")
}
