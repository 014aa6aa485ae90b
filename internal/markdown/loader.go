package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// LoaderConfig configures content discovery.
type LoaderConfig struct {
	// Extensions lists accepted file extensions (with dot) in lookup
	// priority order. Defaults to .mdx then .md.
	Extensions []string
}

// Loader turns files of a filesystem into Documents. A Loader only reads one
// directory level at a time.
type Loader struct {
	fs         fs.FS
	extensions []string
}

// NewLoader constructs a Loader over filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	exts := make([]string, 0, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = []string{".mdx", ".md"}
	}
	return &Loader{fs: filesystem, extensions: exts}
}

// Extensions returns the accepted extensions in priority order.
func (l *Loader) Extensions() []string {
	return append([]string(nil), l.extensions...)
}

// DirExists reports whether dir exists and is a directory.
func (l *Loader) DirExists(dir string) bool {
	info, err := fs.Stat(l.fs, cleanRel(dir))
	return err == nil && info.IsDir()
}

// Files lists the content files directly inside dir in fs.ReadDir order
// (lexical by name). When several files share a stem only the one with the
// highest priority extension is returned. A missing directory yields no
// files and no error.
func (l *Loader) Files(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir = cleanRel(dir)

	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("markdown loader read dir %s: %w", dir, err)
	}

	var files []string
	byStem := make(map[string]int, len(entries))
	ranks := make([]int, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		rank := l.rank(name)
		if rank < 0 {
			continue
		}
		stem := strings.TrimSuffix(name, path.Ext(name))
		if idx, ok := byStem[stem]; ok {
			if rank < ranks[idx] {
				files[idx] = path.Join(dir, name)
				ranks[idx] = rank
			}
			continue
		}
		byStem[stem] = len(files)
		files = append(files, path.Join(dir, name))
		ranks = append(ranks, rank)
	}
	return files, nil
}

// Load reads and parses the file at filePath.
func (l *Loader) Load(ctx context.Context, filePath string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filePath = cleanRel(filePath)

	data, err := fs.ReadFile(l.fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", filePath, err)
	}
	info, err := fs.Stat(l.fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("markdown loader stat %s: %w", filePath, err)
	}
	return BuildDocument(filePath, data, info.ModTime())
}

// rank returns the priority of name's extension, or -1 when it is not
// accepted.
func (l *Loader) rank(name string) int {
	ext := strings.ToLower(path.Ext(name))
	for i, allowed := range l.extensions {
		if ext == allowed {
			return i
		}
	}
	return -1
}

func cleanRel(p string) string {
	p = path.Clean(strings.ReplaceAll(strings.TrimSpace(p), "\\", "/"))
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return p
}
