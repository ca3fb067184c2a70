// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import "strings"

// Slugify reduces s to a lowercase ASCII hyphenated identifier matching
// [a-z0-9]+(-[a-z0-9]+)*. Runs of separators collapse to one hyphen and all
// other characters (including non-Latin scripts) are dropped, so the result
// may be empty; callers must handle that.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ', r == '\t', r == '\n', r == '-', r == '_', r == '.', r == '/':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
