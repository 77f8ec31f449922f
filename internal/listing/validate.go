package listing

import "strings"

// Validate reports whether a raw listing candidate is well-formed and
// in-scope for the given two-letter region code. Sponsored entries carry
// an ad-network identifier and a different data shape; they are rejected
// outright.
func Validate(l *Listing, regionCode string) bool {
	if l.ListID == 0 {
		return false
	}
	if strings.TrimSpace(l.Subject) == "" {
		return false
	}
	if strings.TrimSpace(l.URL) == "" {
		return false
	}
	if strings.TrimSpace(l.Location) == "" {
		return false
	}
	if l.AdvertisingID != "" {
		return false
	}
	return strings.HasSuffix(l.Location, "/"+regionCode)
}
