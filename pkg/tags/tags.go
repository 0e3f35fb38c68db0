// Package tags implements tag normalization, entity slugs, and file tag
// signatures. Normalization is idempotent so tags from different sources
// collapse to one row.
package tags

import (
	"sort"
	"strings"
)

// Normalize canonicalizes a tag: lowercase, whitespace and punctuation runs
// collapsed to single hyphens, keeping only [a-z0-9:_-]. The colon survives
// because system tags are namespaced (series:<slug>).
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))

	var b strings.Builder
	b.Grow(len(tag))
	lastHyphen := false
	for _, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ':', r == '_':
			b.WriteRune(r)
			lastHyphen = false
		case r == '-' || r == ' ' || r == '\t':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		default:
			// Punctuation is dropped, not separated: "p.g.&e." → "pge".
		}
	}
	return strings.Trim(b.String(), "-")
}

// Slug converts an entity name into a stable identifier: lowercase, "&"
// becomes "and", non-alphanumeric runs become single hyphens.
// "Pacific Gas & Electric" → "pacific-gas-and-electric".
func Slug(entity string) string {
	entity = strings.ToLower(strings.TrimSpace(entity))
	entity = strings.ReplaceAll(entity, "&", " and ")

	var b strings.Builder
	b.Grow(len(entity))
	lastHyphen := false
	for _, r := range entity {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// SeriesTag returns the synthetic tag that binds a document to a series.
func SeriesTag(entity string) string {
	return "series:" + Slug(entity)
}

// Signature canonicalizes a tag list into the file signature: normalized,
// deduplicated, sorted, colon-joined.
func Signature(tagList []string) (normalized []string, signature string) {
	seen := make(map[string]struct{}, len(tagList))
	for _, t := range tagList {
		n := Normalize(t)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}
	sort.Strings(normalized)
	return normalized, strings.Join(normalized, ":")
}

// IsSubset reports whether every tag in sub is present in super. Both sides
// are normalized before comparison. Used to derive file membership: a
// document belongs to a file when the file's tag set is a subset of the
// document's.
func IsSubset(sub, super []string) bool {
	superSet := make(map[string]struct{}, len(super))
	for _, t := range super {
		superSet[Normalize(t)] = struct{}{}
	}
	for _, t := range sub {
		if _, ok := superSet[Normalize(t)]; !ok {
			return false
		}
	}
	return true
}
