package record

import "strings"

// Common name suffixes to keep with the family name.
var nameSuffixes = map[string]bool{
	"jr":   true,
	"jr.":  true,
	"sr":   true,
	"sr.":  true,
	"ii":   true,
	"iii":  true,
	"iv":   true,
	"v":    true,
	"phd":  true,
	"ph.d": true,
	"md":   true,
	"m.d":  true,
}

// SplitName splits a full name into given and family name.
// Handles common suffixes (Jr, Sr, II, III, IV, PhD, MD).
//
// Known limitations:
// - Multi-part surnames (von Neumann, van der Waals) split incorrectly
// - Non-Western name formats may not be handled correctly
// - Middle names are included in the given name
func SplitName(name string) (given, family string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		// Single name (e.g., "Madonna")
		return "", parts[0]
	}

	lastPart := strings.ToLower(parts[len(parts)-1])
	if nameSuffixes[lastPart] && len(parts) > 2 {
		family = parts[len(parts)-2] + " " + parts[len(parts)-1]
		given = strings.Join(parts[:len(parts)-2], " ")
		return given, family
	}

	family = parts[len(parts)-1]
	given = strings.Join(parts[:len(parts)-1], " ")
	return given, family
}

// Honorifics recognized in front of a name.
var nameTitles = map[string]string{
	"dr":    "Dr",
	"dr.":   "Dr",
	"prof":  "Prof",
	"prof.": "Prof",
	"mr":    "Mr",
	"mr.":   "Mr",
	"ms":    "Ms",
	"ms.":   "Ms",
	"mrs":   "Mrs",
	"mrs.":  "Mrs",
}

// ParsePerson builds a Person from a free-form string such as
// "Dr. Jane Doe <jd@example.com>". A trailing address in angle brackets
// becomes the email and a leading honorific the title; the rest is split
// with SplitName.
func ParsePerson(s string) Person {
	var opts []PersonOption

	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, ">") {
		if i := strings.LastIndex(s, "<"); i >= 0 {
			if email := strings.TrimSpace(s[i+1 : len(s)-1]); email != "" {
				opts = append(opts, WithEmail(email))
			}
			s = s[:i]
		}
	}

	if first, rest, ok := strings.Cut(strings.TrimSpace(s), " "); ok {
		if title, known := nameTitles[strings.ToLower(first)]; known {
			opts = append(opts, WithTitle(title))
			s = rest
		}
	}

	given, family := SplitName(s)
	return NewPerson(given, family, opts...)
}
