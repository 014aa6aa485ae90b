package validation

// Content type keys shared with the content repository.
const (
	TypeBlog         = "blog"
	TypeResearch     = "research"
	TypePublications = "publications"
	TypeTalks        = "talks"
	TypePosters      = "posters"
	TypePages        = "pages"
	TypePerson       = "person"
)

func stringProp() map[string]any { return map[string]any{"type": "string"} }

func nullableString() map[string]any {
	return map[string]any{"type": []any{"string", "null"}}
}

func enumProp(values ...string) map[string]any {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}
	return map[string]any{"type": "string", "enum": enum}
}

func stringList() map[string]any {
	return map[string]any{"type": "array", "items": stringProp()}
}

func linkList() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"url"},
			"properties": map[string]any{
				"label": stringProp(),
				"url":   stringProp(),
			},
		},
	}
}

func namedList() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"name"},
			"properties": map[string]any{
				"name": stringProp(),
				"logo": stringProp(),
			},
		},
	}
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		list := make([]any, len(required))
		for i, name := range required {
			list[i] = name
		}
		schema["required"] = list
	}
	return schema
}

// ContentSchemas returns the front matter schemas for every content type.
// They describe the expected shape; the repository still applies defaults
// when a file does not conform.
func ContentSchemas() map[string]map[string]any {
	common := func(extra map[string]any) map[string]any {
		props := map[string]any{
			"id":    stringProp(),
			"slug":  stringProp(),
			"title": stringProp(),
		}
		for key, value := range extra {
			props[key] = value
		}
		return props
	}

	return map[string]map[string]any{
		TypeBlog: objectSchema(common(map[string]any{
			"publishedAt": stringProp(),
			"author":      nullableString(),
			"draft":       map[string]any{"type": "boolean"},
			"tags":        stringList(),
			"excerpt":     nullableString(),
			"ogImage":     nullableString(),
		}), "title", "publishedAt"),
		TypeResearch: objectSchema(common(map[string]any{
			"shortTitle":  stringProp(),
			"institution": stringProp(),
			"department":  stringProp(),
			"dateRange":   stringProp(),
			"status":      enumProp("ongoing", "completed"),
			"category":    enumProp("thesis", "project", "experiment", "bootcamp", "other"),
			"description": stringProp(),
			"supervisors": stringProp(),
			"tags":        stringList(),
			"links":       linkList(),
			"featured":    map[string]any{"type": "boolean"},
		}), "title", "status"),
		TypePublications: objectSchema(common(map[string]any{
			"type":     enumProp("journal", "preprint", "thesis", "report", "book", "conference"),
			"authors":  stringProp(),
			"venue":    stringProp(),
			"year":     map[string]any{"type": "integer"},
			"status":   enumProp("published", "in-prep", "preprint", "accepted"),
			"doi":      stringProp(),
			"url":      stringProp(),
			"abstract": stringProp(),
		}), "title", "year"),
		TypeTalks: objectSchema(common(map[string]any{
			"event":       stringProp(),
			"location":    stringProp(),
			"date":        stringProp(),
			"year":        map[string]any{"type": "integer"},
			"type":        enumProp("keynote", "presentation", "workshop", "panel", "invited"),
			"url":         stringProp(),
			"description": stringProp(),
		}), "title", "event", "year"),
		TypePosters: objectSchema(common(map[string]any{
			"event":     stringProp(),
			"location":  stringProp(),
			"date":      stringProp(),
			"year":      map[string]any{"type": "integer"},
			"coAuthors": stringProp(),
			"url":       stringProp(),
		}), "title", "event", "year"),
		TypePages: objectSchema(common(nil), "title"),
		TypePerson: objectSchema(map[string]any{
			"name":         stringProp(),
			"tagline":      stringProp(),
			"institution":  nullableString(),
			"department":   nullableString(),
			"bio":          nullableString(),
			"heroImage":    nullableString(),
			"heroTitle":    nullableString(),
			"heroSubtitle": nullableString(),
			"heroTagline":  nullableString(),
			"email":        nullableString(),
			"social": map[string]any{
				"type":                 "object",
				"additionalProperties": stringProp(),
			},
			"profileUrls": linkList(),
			"employers":   namedList(),
			"memberships": namedList(),
		}, "name"),
	}
}
