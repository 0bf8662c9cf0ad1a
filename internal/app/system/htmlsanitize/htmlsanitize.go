// Package htmlsanitize strips dangerous markup from user-submitted
// content before it is stored.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows basic user-generated-content formatting while removing
// scripts, event handlers, and javascript: URLs.
var policy = bluemonday.UGCPolicy()

// Sanitize returns s with unsafe HTML removed. Plain text passes
// through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
