// Package docs carries the embedded pattern corpus. Each file under
// patterns/ is one pattern document: YAML front matter, prose sections, a
// runnable example and its expected console transcript.
package docs

import "embed"

//go:embed patterns/*.md
var FS embed.FS

// Root is the directory inside FS that holds the pattern documents.
const Root = "patterns"
