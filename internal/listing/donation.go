package listing

import "strings"

// donateAffirmative is the localized "yes" the site uses for the donate property
const donateAffirmative = "Sim"

// IsDonation reports whether a listing is a free give-away. A listing is a
// donation when it carries donate="Sim", when its price text is absent, or
// when the price text denotes zero. The absence check runs before any
// parsing so a donation never depends on the price being parseable. The
// zero check accepts any display format that parses to exactly 0 ("R$ 0",
// "R$ 0,00"), which is wider than an exact-string match on one format.
func IsDonation(l *Listing) bool {
	if value, ok := l.PropertyValue("donate"); ok && value == donateAffirmative {
		return true
	}
	if strings.TrimSpace(l.Price) == "" {
		return true
	}
	return ParsePrice(l.Price) == 0
}
