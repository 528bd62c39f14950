package export

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jasonthiese/commonmetadata/internal/record"
)

// ToBibTeX converts a citation to a BibTeX entry with the given key.
func ToBibTeX(key string, c record.Citation) string {
	entryType := determineEntryType(c)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, key))

	// Authors
	if authors := formatAuthors(c.Authors); authors != "" {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", authors))
	}

	if c.Title != "" {
		b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(c.Title)))
	}

	if entryType == "article" {
		writeField(&b, "journal", c.Journal)
		writeField(&b, "volume", c.Volume)
		writeField(&b, "number", c.Issue)
		writeField(&b, "pages", c.PageLocation)
	} else {
		writeField(&b, "edition", c.Edition)
		writeField(&b, "address", c.PublicationLocation)
		writeField(&b, "publisher", c.Publisher)
		writeField(&b, "note", c.Notes)
	}

	writeField(&b, "year", c.Year)

	// Identifiers are not escaped
	if c.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", c.DOI))
	}
	if c.URL != "" {
		b.WriteString(fmt.Sprintf("  url = {%s},\n", c.URL))
	}

	b.WriteString("}\n")

	return b.String()
}

// ToBibTeXList converts multiple citations to BibTeX, generating keys with
// CiteKey and disambiguating collisions with a numeric suffix.
func ToBibTeXList(cs []record.Citation) string {
	seen := make(map[string]int)
	var entries []string
	for _, c := range cs {
		key := CiteKey(c)
		seen[key]++
		if n := seen[key]; n > 1 {
			key = fmt.Sprintf("%s%d", key, n)
		}
		entries = append(entries, ToBibTeX(key, c))
	}
	return strings.Join(entries, "\n")
}

// determineEntryType returns the BibTeX entry type for a citation.
func determineEntryType(c record.Citation) string {
	if c.IsJournal() {
		return "article"
	}
	return "book"
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(fmt.Sprintf("  %s = {%s},\n", name, escapeLatex(value)))
}

// formatAuthors formats authors in BibTeX style: "Last, First and Last, First"
func formatAuthors(authors []record.Person) string {
	var formatted []string
	for _, a := range authors {
		switch {
		case a.FamilyName == "":
			continue
		case a.GivenName != "":
			formatted = append(formatted, fmt.Sprintf("%s, %s", escapeLatex(a.FamilyName), escapeLatex(a.GivenName)))
		default:
			formatted = append(formatted, escapeLatex(a.FamilyName))
		}
	}
	return strings.Join(formatted, " and ")
}

// CiteKey generates a citation key from citation metadata.
// Format: FamilyName + Year + suffix (e.g., "Doe2001-xa")
func CiteKey(c record.Citation) string {
	family := "Unknown"
	for _, a := range c.Authors {
		if a.FamilyName != "" {
			family = sanitizeForCiteKey(a.FamilyName)
			break
		}
	}

	year := sanitizeForCiteKey(c.Year)
	if year == "" {
		year = "nd"
	}

	return fmt.Sprintf("%s%s-%s", family, year, generateTitleSuffix(c.Title))
}

// sanitizeForCiteKey removes non-alphanumeric characters.
func sanitizeForCiteKey(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// generateTitleSuffix creates a 2-letter suffix from the title.
func generateTitleSuffix(title string) string {
	words := strings.Fields(strings.ToLower(title))
	stopWords := map[string]bool{"a": true, "an": true, "the": true, "of": true, "and": true, "in": true, "on": true, "for": true, "to": true, "with": true}

	var suffix strings.Builder
	for _, word := range words {
		if !stopWords[word] && len(word) > 0 {
			suffix.WriteByte(word[0])
			if suffix.Len() >= 2 {
				break
			}
		}
	}

	// Pad if needed
	for suffix.Len() < 2 {
		suffix.WriteByte('x')
	}

	return suffix.String()
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before other escapes that might produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
