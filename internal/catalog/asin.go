package catalog

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	asinPattern = regexp.MustCompile(`^[A-Z0-9]{10}$`)

	// Product URLs carry the ASIN after /dp/ or /gp/product/.
	urlASINPattern = regexp.MustCompile(`/(?:dp|gp/product)/([A-Z0-9]{10})(?:[/?]|$)`)
)

// ValidASIN reports whether s looks like an Amazon Standard Identification
// Number: exactly ten uppercase alphanumeric characters.
func ValidASIN(s string) bool {
	return asinPattern.MatchString(s)
}

// ExtractASIN resolves a user-supplied product reference to an ASIN.
// It accepts a bare ASIN or an amazon product URL containing /dp/<asin>
// or /gp/product/<asin>.
func ExtractASIN(ref string) (string, error) {
	ref = strings.TrimSpace(ref)

	if ValidASIN(ref) {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("not an ASIN or product URL: %q", ref)
	}

	m := urlASINPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return "", fmt.Errorf("no ASIN found in URL path %q", u.Path)
	}

	return m[1], nil
}
