package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatterInvalid reports a front matter block that could not be decoded.
var ErrFrontMatterInvalid = errors.New("markdown: front matter invalid")

// Metadata is the loosely typed front matter block of a content file, with
// values normalised to JSON compatible types.
type Metadata map[string]any

// ParseFrontMatter splits source into its front matter and Markdown body.
// Files without a front matter block yield empty metadata and the whole
// source as body.
func ParseFrontMatter(source []byte) (Metadata, []byte, error) {
	raw := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrFrontMatterInvalid, err)
	}

	meta := make(Metadata, len(raw))
	for key, value := range raw {
		meta[key] = normalizeValue(value)
	}
	return meta, body, nil
}

// normalizeValue converts decoder specific shapes (yaml maps keyed by any,
// timestamps) into the JSON compatible forms the rest of the module expects.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = normalizeValue(inner)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[fmt.Sprint(key)] = normalizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = normalizeValue(inner)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = normalizeValue(inner)
		}
		return out
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	case *time.Time:
		if v == nil {
			return nil
		}
		return normalizeValue(*v)
	default:
		return v
	}
}
