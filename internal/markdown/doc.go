// Package markdown reads content files from a filesystem: it discovers files
// per directory, splits front matter from the Markdown body, and derives body
// statistics (word count, first image) from the goldmark AST. It does not
// render HTML.
package markdown
