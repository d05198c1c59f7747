// Package lessons ships the built-in course content.
// The Markdown files are embedded so the binary is self-contained; the
// markdown adapter can still load a directory from disk to override them.
package lessons

import "embed"

// FS holds the embedded lesson files.
//
//go:embed *.md
var FS embed.FS
