package utils

import (
	"net/url"
	"strings"
)

// SafeRedirect returns target when it is a local absolute path and fallback
// otherwise. Scheme-relative ("//host") and backslash forms are rejected so a
// crafted callback cannot send the browser to another origin.
func SafeRedirect(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") {
		return fallback
	}
	if strings.HasPrefix(target, "//") || strings.Contains(target, `\`) {
		return fallback
	}

	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}

	return target
}
