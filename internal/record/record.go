// Package record defines the common description of a research dataset that
// every publication payload is derived from.
package record

// Record is the common record: one dataset description shared by all
// target services. All fields are optional here; each service enforces its
// own requirements.
type Record struct {
	Title            string     `json:"title,omitempty" mapstructure:"title"`
	Source           *Source    `json:"source,omitempty" mapstructure:"source"`
	DataContacts     []Person   `json:"data_contacts,omitempty" mapstructure:"data_contacts"`
	DataContributors []Person   `json:"data_contributors,omitempty" mapstructure:"data_contributors"`
	Authors          []Person   `json:"authors,omitempty" mapstructure:"authors"`
	Links            *Links     `json:"links,omitempty" mapstructure:"links"`
	Licenses         []License  `json:"licenses,omitempty" mapstructure:"licenses"`
	Citations        []Citation `json:"citations,omitempty" mapstructure:"citations"`
	Repository       string     `json:"repository,omitempty" mapstructure:"repository"`
	Collection       string     `json:"collection,omitempty" mapstructure:"collection"`
	Tags             []string   `json:"tags,omitempty" mapstructure:"tags"`
	Description      string     `json:"description,omitempty" mapstructure:"description"`
	Raw              any        `json:"raw,omitempty" mapstructure:"raw"`
	Year             int        `json:"year,omitempty" mapstructure:"year"`
	Composition      string     `json:"composition,omitempty" mapstructure:"composition"`

	// Additional holds caller-supplied keys that are not known fields.
	Additional map[string]any `json:"-" mapstructure:"-"`
}

// Source describes where the dataset comes from.
type Source struct {
	Name     string   `json:"name,omitempty" mapstructure:"name"`
	Producer string   `json:"producer,omitempty" mapstructure:"producer"`
	URL      string   `json:"url,omitempty" mapstructure:"url"`
	Tags     []string `json:"tags,omitempty" mapstructure:"tags"`
}

// Links groups the URIs and identifiers that point at or around the dataset.
type Links struct {
	LandingPage string   `json:"landing_page,omitempty" mapstructure:"landing_page"`
	Publication []string `json:"publication,omitempty" mapstructure:"publication"`
	DataDOI     string   `json:"data_doi,omitempty" mapstructure:"data_doi"`
	RelatedID   []string `json:"related_id,omitempty" mapstructure:"related_id"`
	ParentID    string   `json:"parent_id,omitempty" mapstructure:"parent_id"`
}

// License is a usage license attached to the dataset.
type License struct {
	Name        string   `json:"name,omitempty" mapstructure:"name"`
	Description string   `json:"description,omitempty" mapstructure:"description"`
	URL         string   `json:"url,omitempty" mapstructure:"url"`
	Tags        []string `json:"tags,omitempty" mapstructure:"tags"`

	// Extra holds unrecognized keys supplied with the license.
	Extra map[string]any `json:"-" mapstructure:",remain"`
}

// Citation is a bibliographic reference. It carries either journal fields
// (Journal, Volume, Issue, PageLocation) or book fields (Edition,
// PublicationLocation, Publisher, Extent, Notes); both may be set.
type Citation struct {
	Authors []Person `json:"authors,omitempty" mapstructure:"authors"`
	Year    string   `json:"year,omitempty" mapstructure:"year"`
	Title   string   `json:"title,omitempty" mapstructure:"title"`

	// Journal
	Journal      string `json:"journal,omitempty" mapstructure:"journal"`
	Volume       string `json:"volume,omitempty" mapstructure:"volume"`
	Issue        string `json:"issue,omitempty" mapstructure:"issue"`
	PageLocation string `json:"page_location,omitempty" mapstructure:"page_location"`

	// Book
	Edition             string `json:"edition,omitempty" mapstructure:"edition"`
	PublicationLocation string `json:"publication_location,omitempty" mapstructure:"publication_location"`
	Publisher           string `json:"publisher,omitempty" mapstructure:"publisher"`
	Extent              string `json:"extent,omitempty" mapstructure:"extent"`
	Notes               string `json:"notes,omitempty" mapstructure:"notes"`

	// Identifiers
	DOI string `json:"doi,omitempty" mapstructure:"doi"`
	URL string `json:"url,omitempty" mapstructure:"url"`
}

// IsJournal reports whether the citation is rendered as a journal article.
func (c Citation) IsJournal() bool {
	return c.Journal != ""
}

// Tree returns a generic view of the present fields of r, keyed by wire
// name. Nested structures become map[string]any and sequences []any.
// A field is present when it holds a non-zero value.
func (r Record) Tree() map[string]any {
	t := make(map[string]any)
	putString(t, "title", r.Title)
	if r.Source != nil {
		t["source"] = r.Source.tree()
	}
	if len(r.DataContacts) > 0 {
		t["data_contacts"] = peopleTree(r.DataContacts)
	}
	if len(r.DataContributors) > 0 {
		t["data_contributors"] = peopleTree(r.DataContributors)
	}
	if len(r.Authors) > 0 {
		t["authors"] = peopleTree(r.Authors)
	}
	if r.Links != nil {
		t["links"] = r.Links.tree()
	}
	if len(r.Licenses) > 0 {
		licenses := make([]any, len(r.Licenses))
		for i, l := range r.Licenses {
			licenses[i] = l.Tree()
		}
		t["licenses"] = licenses
	}
	if len(r.Citations) > 0 {
		citations := make([]any, len(r.Citations))
		for i, c := range r.Citations {
			citations[i] = c.Tree()
		}
		t["citations"] = citations
	}
	putString(t, "repository", r.Repository)
	putString(t, "collection", r.Collection)
	putStrings(t, "tags", r.Tags)
	putString(t, "description", r.Description)
	if r.Raw != nil {
		t["raw"] = r.Raw
	}
	if r.Year != 0 {
		t["year"] = r.Year
	}
	putString(t, "composition", r.Composition)
	return t
}

func (s Source) tree() map[string]any {
	t := make(map[string]any)
	putString(t, "name", s.Name)
	putString(t, "producer", s.Producer)
	putString(t, "url", s.URL)
	putStrings(t, "tags", s.Tags)
	return t
}

func (l Links) tree() map[string]any {
	t := make(map[string]any)
	putString(t, "landing_page", l.LandingPage)
	putStrings(t, "publication", l.Publication)
	putString(t, "data_doi", l.DataDOI)
	putStrings(t, "related_id", l.RelatedID)
	putString(t, "parent_id", l.ParentID)
	return t
}

// Tree returns the generic view of the license, including any extra keys.
func (l License) Tree() map[string]any {
	t := make(map[string]any, 4+len(l.Extra))
	for k, v := range l.Extra {
		t[k] = v
	}
	putString(t, "name", l.Name)
	putString(t, "description", l.Description)
	putString(t, "url", l.URL)
	putStrings(t, "tags", l.Tags)
	return t
}

// Tree returns the generic view of the citation's present fields.
func (c Citation) Tree() map[string]any {
	t := make(map[string]any)
	if len(c.Authors) > 0 {
		t["authors"] = peopleTree(c.Authors)
	}
	putString(t, "year", c.Year)
	putString(t, "title", c.Title)
	putString(t, "journal", c.Journal)
	putString(t, "volume", c.Volume)
	putString(t, "issue", c.Issue)
	putString(t, "page_location", c.PageLocation)
	putString(t, "edition", c.Edition)
	putString(t, "publication_location", c.PublicationLocation)
	putString(t, "publisher", c.Publisher)
	putString(t, "extent", c.Extent)
	putString(t, "notes", c.Notes)
	putString(t, "doi", c.DOI)
	putString(t, "url", c.URL)
	return t
}

func putString(t map[string]any, key, value string) {
	if value != "" {
		t[key] = value
	}
}

func putStrings(t map[string]any, key string, values []string) {
	if len(values) == 0 {
		return
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	t[key] = out
}
