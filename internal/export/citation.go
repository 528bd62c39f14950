// Package export renders citations as formatted strings and BibTeX entries.
package export

import (
	"strings"

	"github.com/jasonthiese/commonmetadata/internal/record"
)

const sep = ". "

// Citation renders c as a single bibliographic string.
//
// Journals:  Author(s). Year. Title. Journal. Volume(Issue):Pages.
// Books:     Author(s). Year. Title. Edition. Place: Publisher. Extent. Notes.
//
// A citation with a journal is always rendered as a journal article, and
// book fields are then ignored. URLs and DOIs are not rendered.
func Citation(c record.Citation) string {
	var b strings.Builder

	if len(c.Authors) > 0 {
		b.WriteString(formatCitationAuthors(c.Authors))
		b.WriteString(sep)
	}
	if c.Year != "" {
		b.WriteString(c.Year + sep)
	}
	if c.Title != "" {
		b.WriteString(c.Title + sep)
	}

	if c.IsJournal() {
		writeJournal(&b, c)
	} else {
		writeBook(&b, c)
	}

	return strings.TrimSpace(b.String())
}

// Citations renders each citation in order.
func Citations(cs []record.Citation) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = Citation(c)
	}
	return out
}

func writeJournal(b *strings.Builder, c record.Citation) {
	b.WriteString(c.Journal + sep)
	if c.Volume == "" {
		return
	}
	b.WriteString(c.Volume)
	if c.Issue != "" {
		b.WriteString("(" + c.Issue + ")")
	}
	if c.PageLocation != "" {
		b.WriteString(":" + c.PageLocation + sep)
	}
}

func writeBook(b *strings.Builder, c record.Citation) {
	if c.Edition != "" {
		b.WriteString(c.Edition + sep)
	}
	switch {
	case c.PublicationLocation != "":
		b.WriteString(c.PublicationLocation)
		if c.Publisher != "" {
			b.WriteString(": " + c.Publisher + sep)
		}
	case c.Publisher != "":
		b.WriteString(c.Publisher + sep)
	}
	if c.Extent != "" {
		b.WriteString(c.Extent + sep)
	}
	if c.Notes != "" {
		b.WriteString(c.Notes + sep)
	}
}

// formatCitationAuthors formats authors as "Family Given, Family Given".
// Authors without a family name are skipped.
func formatCitationAuthors(authors []record.Person) string {
	var formatted []string
	for _, a := range authors {
		if a.FamilyName == "" {
			continue
		}
		name := a.FamilyName
		if a.GivenName != "" {
			name += " " + a.GivenName
		}
		formatted = append(formatted, name)
	}
	return strings.Join(formatted, ", ")
}
