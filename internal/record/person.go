package record

import "slices"

// Role tags attached to people when they are flattened into a single list.
const (
	RoleAuthor      = "author"
	RoleContact     = "contact"
	RoleContributor = "contributor"
)

// Person is a named individual: an author, a data contact or a contributor.
// Person is a value type; methods that change it return a copy.
type Person struct {
	GivenName   string   `json:"given_name,omitempty" mapstructure:"given_name"`
	FamilyName  string   `json:"family_name,omitempty" mapstructure:"family_name"`
	Title       string   `json:"title,omitempty" mapstructure:"title"`
	ORCID       string   `json:"orcid,omitempty" mapstructure:"orcid"` // Reserved, not validated
	Email       string   `json:"email,omitempty" mapstructure:"email"`
	Institution string   `json:"institution,omitempty" mapstructure:"institution"`
	Tags        []string `json:"tags,omitempty" mapstructure:"tags"` // Role labels, e.g. "author"
}

// PersonOption sets an optional attribute in NewPerson.
type PersonOption func(*Person)

// WithEmail sets the email address.
func WithEmail(email string) PersonOption {
	return func(p *Person) { p.Email = email }
}

// WithTitle sets the honorific or academic title.
func WithTitle(title string) PersonOption {
	return func(p *Person) { p.Title = title }
}

// NewPerson builds a finished Person.
func NewPerson(given, family string, opts ...PersonOption) Person {
	p := Person{GivenName: given, FamilyName: family}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Tagged returns a copy of p whose tags are replaced by tags.
func (p Person) Tagged(tags ...string) Person {
	p.Tags = slices.Clone(tags)
	return p
}

// Equal reports whether p and other have identical field values.
func (p Person) Equal(other Person) bool {
	return p.GivenName == other.GivenName &&
		p.FamilyName == other.FamilyName &&
		p.Title == other.Title &&
		p.ORCID == other.ORCID &&
		p.Email == other.Email &&
		p.Institution == other.Institution &&
		slices.Equal(p.Tags, other.Tags)
}

// tree returns the generic view of the non-empty fields.
func (p Person) tree() map[string]any {
	t := make(map[string]any)
	putString(t, "given_name", p.GivenName)
	putString(t, "family_name", p.FamilyName)
	putString(t, "title", p.Title)
	putString(t, "orcid", p.ORCID)
	putString(t, "email", p.Email)
	putString(t, "institution", p.Institution)
	putStrings(t, "tags", p.Tags)
	return t
}

func peopleTree(people []Person) []any {
	out := make([]any, len(people))
	for i, p := range people {
		out[i] = p.tree()
	}
	return out
}
