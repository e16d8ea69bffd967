package textbundle

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds header parsing against oversized input.
const maxAcceptLanguageLength = 4096

// acceptedTag is one entry of an Accept-Language header.
type acceptedTag struct {
	code    string
	quality float64
}

// MatchLanguage returns the configured language code that best satisfies an
// Accept-Language header, for example "en-US,en;q=0.9,pl;q=0.8". Exact matches
// win over base-language matches ("en" for "en-US"), higher quality values win
// within each class, and wildcards are ignored. When nothing matches, or the
// header is empty, the first configured code is returned; when no languages
// are configured, the empty string is returned.
//
// Matching only selects among the configured codes. It never performs
// lookup-time fallback between bundles.
func MatchLanguage(header string, config Config) string {
	available := config.Languages()
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	tags := parseAcceptLanguage(header)

	for _, tag := range tags {
		for _, code := range available {
			if normalizeTag(code) == tag.code {
				return code
			}
		}
	}

	for _, tag := range tags {
		for _, code := range available {
			if baseTag(normalizeTag(code)) == baseTag(tag.code) {
				return code
			}
		}
	}

	return available[0]
}

// parseAcceptLanguage splits a header into tags ordered by descending quality.
// Header order breaks quality ties.
func parseAcceptLanguage(header string) []acceptedTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []acceptedTag
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		code, qPart, hasQuality := strings.Cut(part, ";")
		code = normalizeTag(code)
		if code == "" || code == "*" {
			continue
		}

		quality := 1.0
		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if after, ok := strings.CutPrefix(qPart, "q="); ok {
				if q, err := strconv.ParseFloat(after, 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		tags = append(tags, acceptedTag{code: code, quality: quality})
	}

	slices.SortStableFunc(tags, func(a, b acceptedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// baseTag strips the region from a language tag ("en-us" becomes "en").
func baseTag(tag string) string {
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return tag[:i]
	}
	return tag
}
