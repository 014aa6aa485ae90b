package content

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// fields reads typed values out of loosely typed front matter. Every getter
// tolerates missing keys and mismatched types by returning the zero value.
type fields map[string]any

func (f fields) text(key string) string {
	value, ok := f[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(v)
	}
	return ""
}

func (f fields) textOr(key, fallback string) string {
	if value := f.text(key); value != "" {
		return value
	}
	return fallback
}

func (f fields) number(key string) (int, bool) {
	switch v := f[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func (f fields) flag(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed
	}
	return false
}

// list accepts a list or a comma separated string. Blank entries and
// duplicates are dropped; first occurrence order is kept.
func (f fields) list(key string) []string {
	var raw []string
	switch v := f[key].(type) {
	case []any:
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				raw = append(raw, s)
			} else if entry != nil {
				raw = append(raw, fmt.Sprint(entry))
			}
		}
	case []string:
		raw = v
	case string:
		raw = strings.Split(v, ",")
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}
	return out
}

func (f fields) objects(key string) []fields {
	list, ok := f[key].([]any)
	if !ok {
		return nil
	}
	out := make([]fields, 0, len(list))
	for _, entry := range list {
		if obj, ok := entry.(map[string]any); ok {
			out = append(out, fields(obj))
		}
	}
	return out
}

func (f fields) links(key string) []Link {
	var links []Link
	for _, obj := range f.objects(key) {
		url := obj.text("url")
		if url == "" {
			continue
		}
		links = append(links, Link{Label: obj.textOr("label", url), URL: url})
	}
	return links
}

func (f fields) affiliations(key string) []Affiliation {
	var out []Affiliation
	for _, obj := range f.objects(key) {
		name := obj.text("name")
		if name == "" {
			continue
		}
		out = append(out, Affiliation{Name: name, Logo: obj.text("logo")})
	}
	return out
}

func (f fields) stringMap(key string) map[string]string {
	obj, ok := f[key].(map[string]any)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(obj))
	for label := range obj {
		if value := fields(obj).text(label); value != "" {
			out[label] = value
		}
	}
	return out
}

// oneOf returns value lowercased when it is one of allowed, otherwise
// fallback.
func oneOf(value, fallback string, allowed ...string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	rules := make([]any, len(allowed))
	for i, entry := range allowed {
		rules[i] = entry
	}
	if err := validation.Validate(value, validation.Required, validation.In(rules...)); err != nil {
		return fallback
	}
	return value
}

// parseDate parses authored dates in any common layout. ok is false when the
// value is blank or unparsable.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
