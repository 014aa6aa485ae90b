package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Stats summarises a Markdown body.
type Stats struct {
	Words      int
	FirstImage string
}

var imageTagPattern = regexp.MustCompile(`(?i)<Image\s+[^>]*src=["']([^"']+)["']`)

var statsEngine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Analyze walks the goldmark AST of body. Words covers prose, inline code and
// code blocks; raw HTML is not counted. FirstImage prefers an <Image src>
// component over Markdown image syntax.
func Analyze(body []byte) Stats {
	root := statsEngine.Parser().Parse(text.NewReader(body))

	var (
		builder  strings.Builder
		mdImage  string
		appendSp = func() { builder.WriteByte(' ') }
	)

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if node.Type() == ast.TypeBlock {
			appendSp()
		}
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Text:
			builder.Write(n.Segment.Value(body))
			if n.SoftLineBreak() || n.HardLineBreak() {
				appendSp()
			}
		case *ast.String:
			builder.Write(n.Value)
		case *ast.AutoLink:
			builder.Write(n.Label(body))
		case *ast.Image:
			if mdImage == "" {
				mdImage = string(n.Destination)
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				segment := lines.At(i)
				builder.Write(segment.Value(body))
				appendSp()
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	stats := Stats{Words: len(strings.Fields(builder.String()))}
	if match := imageTagPattern.FindSubmatch(body); match != nil {
		stats.FirstImage = string(match[1])
	} else {
		stats.FirstImage = mdImage
	}
	return stats
}
