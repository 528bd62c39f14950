package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/jasonthiese/commonmetadata/internal/record"
)

// BibEntry identifies one entry of a .bib file.
type BibEntry struct {
	Type string // lowercased, e.g. "article"
	Key  string
	DOI  string // canonical form, see CanonicalDOI
}

// Bibliography is the set of entries already present in a .bib file.
// Citations are matched by DOI first and by cite key otherwise.
type Bibliography struct {
	path    string
	entries []BibEntry
	keys    map[string]bool
	dois    map[string]string // canonical DOI -> key
}

// LoadBibliography reads the entries of the .bib file at path. A missing
// file yields an empty bibliography that Append will create.
func LoadBibliography(path string) (*Bibliography, error) {
	b := &Bibliography{
		path: path,
		keys: make(map[string]bool),
		dois: make(map[string]string),
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening bib file: %w", err)
	}
	defer f.Close()

	entries, err := ParseBibliography(f)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		b.add(e)
	}
	return b, nil
}

// Entries returns the known entries in file order.
func (b *Bibliography) Entries() []BibEntry {
	return slices.Clone(b.entries)
}

// Contains reports whether the bibliography already holds a work with the
// given DOI, or, when the DOI is unknown or empty, the given cite key.
func (b *Bibliography) Contains(key, doi string) bool {
	if doi := CanonicalDOI(doi); doi != "" {
		if _, ok := b.dois[doi]; ok {
			return true
		}
	}
	return b.keys[key]
}

func (b *Bibliography) add(e BibEntry) {
	b.entries = append(b.entries, e)
	b.keys[e.Key] = true
	if e.DOI != "" {
		b.dois[e.DOI] = e.Key
	}
}

// Append writes the citations that are not yet present to the end of the
// file, creating it if needed, and returns how many were written. A
// citation repeated within cs is written once.
func (b *Bibliography) Append(cs []record.Citation) (int, error) {
	var out strings.Builder
	written := 0
	for _, c := range cs {
		key := CiteKey(c)
		if b.Contains(key, c.DOI) {
			continue
		}
		b.add(BibEntry{Type: determineEntryType(c), Key: key, DOI: CanonicalDOI(c.DOI)})
		out.WriteString("\n")
		out.WriteString(ToBibTeX(key, c))
		written++
	}
	if written == 0 {
		return 0, nil
	}

	f, err := os.OpenFile(b.path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return 0, fmt.Errorf("opening bib file: %w", err)
	}
	if _, err := f.WriteString(out.String()); err != nil {
		f.Close()
		return 0, fmt.Errorf("writing bib file: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing bib file: %w", err)
	}
	return written, nil
}

// ParseBibliography scans BibTeX source for entries. Field values may span
// lines and nest braces; @comment, @string and @preamble blocks are
// skipped.
func ParseBibliography(r io.Reader) ([]BibEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bib file: %w", err)
	}

	var entries []BibEntry
	text := string(data)
	for {
		at := strings.IndexByte(text, '@')
		if at < 0 {
			break
		}
		text = text[at+1:]
		open := strings.IndexAny(text, "{(")
		if open < 0 {
			break
		}
		typ := strings.ToLower(strings.TrimSpace(text[:open]))
		var body string
		body, text = entryBody(text[open:])
		if !isEntryType(typ) {
			continue
		}

		key, fields, _ := strings.Cut(body, ",")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		e := BibEntry{Type: typ, Key: key}
		for _, field := range splitFields(fields) {
			name, value, ok := strings.Cut(field, "=")
			if ok && strings.EqualFold(strings.TrimSpace(name), "doi") {
				e.DOI = CanonicalDOI(fieldValue(value))
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func isEntryType(typ string) bool {
	switch typ {
	case "", "comment", "string", "preamble":
		return false
	}
	for _, r := range typ {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// entryBody splits s, which starts at an entry's opening delimiter, into
// the text inside the delimiters and the text after them. An unterminated
// entry runs to the end of s.
func entryBody(s string) (body, rest string) {
	closer := byte('}')
	if s[0] == '(' {
		closer = ')'
	}
	depth := 0
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			if closer == '}' && depth == 0 {
				return s[1:i], s[i+1:]
			}
			depth--
		case ')':
			if closer == ')' && depth == 0 {
				return s[1:i], s[i+1:]
			}
		}
	}
	return s[1:], ""
}

// splitFields splits an entry body on the commas that separate fields,
// ignoring commas inside braces or quotes.
func splitFields(s string) []string {
	var fields []string
	depth, start := 0, 0
	quoted := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"' && depth == 0:
			quoted = !quoted
		case c == '{':
			depth++
		case c == '}':
			depth--
		case c == ',' && depth == 0 && !quoted:
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	return append(fields, s[start:])
}

// fieldValue strips one level of braces or quotes from a field value.
func fieldValue(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 {
		if (v[0] == '{' && v[len(v)-1] == '}') || (v[0] == '"' && v[len(v)-1] == '"') {
			v = v[1 : len(v)-1]
		}
	}
	return strings.TrimSpace(v)
}

// Resolver and scheme prefixes stripped from DOIs, lowercased.
var doiPrefixes = []string{
	"https://doi.org/",
	"http://doi.org/",
	"https://dx.doi.org/",
	"http://dx.doi.org/",
	"doi.org/",
	"doi:",
}

// CanonicalDOI reduces a DOI to its bare lowercase form so that
// "https://doi.org/10.1/X" and "doi:10.1/x" compare equal.
func CanonicalDOI(doi string) string {
	doi = strings.ToLower(strings.TrimSpace(doi))
	for _, prefix := range doiPrefixes {
		if rest, ok := strings.CutPrefix(doi, prefix); ok {
			return strings.TrimSpace(rest)
		}
	}
	return doi
}
