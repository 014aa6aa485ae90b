package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const namespace = "go-portfolio"

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by entity kind so different kinds cannot collide.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ContentUUID identifies a content item by its type directory and slug, so the
// same file yields the same id across builds.
func ContentUUID(contentType, slug string) uuid.UUID {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	slug = strings.ToLower(strings.TrimSpace(slug))
	if contentType == "" || slug == "" {
		return uuid.Nil
	}
	return UUID(namespace + ":content:" + contentType + ":" + slug)
}

// ProfileUUID identifies the singleton person profile.
func ProfileUUID() uuid.UUID {
	return UUID(namespace + ":profile")
}
