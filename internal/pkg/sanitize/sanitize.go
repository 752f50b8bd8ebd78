// Package sanitize strips markup from user-supplied free text. Every field that
// reaches the database goes through Strip on the way in, and again on the way
// out as defense in depth against anything that slipped past earlier versions.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict allows no elements and no attributes at all.
var strict = bluemonday.StrictPolicy()

// Strip removes all HTML markup from s and trims surrounding whitespace.
func Strip(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// StripPtr sanitizes through a pointer, passing nil through unchanged.
func StripPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := Strip(*s)
	return &clean
}
