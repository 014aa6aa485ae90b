package markdown

import (
	"crypto/sha256"
	"path"
	"strings"
	"time"
)

// Document is one parsed content file.
type Document struct {
	// Path is slash separated and relative to the loader root.
	Path string
	// Stem is the file name without its extension.
	Stem         string
	Metadata     Metadata
	Body         []byte
	Checksum     []byte
	LastModified time.Time
}

// BuildDocument parses source read from filePath into a Document.
func BuildDocument(filePath string, source []byte, modified time.Time) (*Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(source)
	return &Document{
		Path:         filePath,
		Stem:         Stem(filePath),
		Metadata:     meta,
		Body:         body,
		Checksum:     sum[:],
		LastModified: modified,
	}, nil
}

// Stem returns the base name of p without its extension.
func Stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
