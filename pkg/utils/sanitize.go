package utils

import (
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// SanitizeFilename replaces filesystem-unsafe characters and spaces with
// underscores so titles can be used as file names on any platform.
func SanitizeFilename(s string) string {
	return unsafeChars.ReplaceAllString(strings.ReplaceAll(s, " ", "_"), "_")
}
