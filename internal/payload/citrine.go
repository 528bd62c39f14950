package payload

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/jasonthiese/commonmetadata/internal/record"
	"github.com/jasonthiese/commonmetadata/internal/schema"
)

// Citrine Reference fields kept when a citation is projected.
// http://citrineinformatics.github.io/pif-documentation/schema_definition/common/Reference.html
var citrineReferenceFields = map[string]bool{
	"doi": true, "isbn": true, "issn": true, "url": true, "title": true,
	"publisher": true, "journal": true, "volume": true, "issue": true,
	"year": true, "figure": true, "table": true, "pages": true,
	"authors": true, "editors": true, "affiliations": true,
	"acknowledgements": true, "references": true, "tags": true,
}

// Citrine Name fields kept for each citation author.
// http://citrineinformatics.github.io/pif-documentation/schema_definition/common/Name.html
var citrineNameFields = map[string]bool{
	"title": true, "given": true, "family": true, "suffix": true, "tags": true,
}

// citrineNameRenames maps common record person keys to Citrine Name keys.
var citrineNameRenames = map[string]string{
	"given_name":  "given",
	"family_name": "family",
}

// pifValidate checks licenses and references before they are accepted
// into a system.
var pifValidate = validator.New()

// CitrineSystem is a PIF System object carrying only dataset metadata.
type CitrineSystem struct {
	Category   string             `json:"category"`
	Source     *CitrineSource     `json:"source,omitempty"`
	Contacts   []CitrinePerson    `json:"contacts,omitempty"`
	Licenses   []CitrineLicense   `json:"licenses,omitempty"`
	References []CitrineReference `json:"references,omitempty"`
}

// Service implements Payload.
func (*CitrineSystem) Service() schema.Service { return schema.Citrine }

// CitrineSource is the PIF Source object.
type CitrineSource struct {
	Producer string   `json:"producer,omitempty"`
	URL      string   `json:"url,omitempty"`
	Tags     []string `json:"tags"`
}

// CitrineName is the PIF Name object.
type CitrineName struct {
	Title  string   `json:"title" mapstructure:"title"`
	Given  string   `json:"given" mapstructure:"given"`
	Family string   `json:"family" mapstructure:"family"`
	Suffix string   `json:"suffix,omitempty" mapstructure:"suffix"`
	Tags   []string `json:"tags,omitempty" mapstructure:"tags"`
}

// CitrinePerson is the PIF Person object.
type CitrinePerson struct {
	Name  CitrineName `json:"name"`
	ORCID string      `json:"orcid,omitempty"`
	Email string      `json:"email,omitempty"`
	Tags  []string    `json:"tags"`
}

// CitrineLicense is the PIF License object.
type CitrineLicense struct {
	Name        string   `json:"name,omitempty" validate:"required_without=URL"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty" validate:"omitempty,url"`
	Tags        []string `json:"tags,omitempty"`
}

// CitrineReference is the PIF Reference object.
type CitrineReference struct {
	DOI              string             `json:"doi,omitempty" mapstructure:"doi"`
	ISBN             string             `json:"isbn,omitempty" mapstructure:"isbn"`
	ISSN             string             `json:"issn,omitempty" mapstructure:"issn"`
	URL              string             `json:"url,omitempty" mapstructure:"url" validate:"omitempty,url"`
	Title            string             `json:"title,omitempty" mapstructure:"title" validate:"required_without_all=DOI URL"`
	Publisher        string             `json:"publisher,omitempty" mapstructure:"publisher"`
	Journal          string             `json:"journal,omitempty" mapstructure:"journal"`
	Volume           string             `json:"volume,omitempty" mapstructure:"volume"`
	Issue            string             `json:"issue,omitempty" mapstructure:"issue"`
	Year             string             `json:"year,omitempty" mapstructure:"year"`
	Figure           any                `json:"figure,omitempty" mapstructure:"figure"`
	Table            any                `json:"table,omitempty" mapstructure:"table"`
	Pages            any                `json:"pages,omitempty" mapstructure:"pages"`
	Authors          []CitrineName      `json:"authors,omitempty" mapstructure:"authors"`
	Editors          []CitrineName      `json:"editors,omitempty" mapstructure:"editors"`
	Affiliations     []string           `json:"affiliations,omitempty" mapstructure:"affiliations"`
	Acknowledgements []string           `json:"acknowledgements,omitempty" mapstructure:"acknowledgements"`
	References       []CitrineReference `json:"references,omitempty" mapstructure:"references"`
	Tags             []string           `json:"tags,omitempty" mapstructure:"tags"`
}

// CitrineProjector builds Citrine PIF systems. Citrine requires no fields.
type CitrineProjector struct {
	logger *zap.Logger
}

// Service implements Projector.
func (p *CitrineProjector) Service() schema.Service { return schema.Citrine }

// Project implements Projector.
func (p *CitrineProjector) Project(rec record.Record) (Payload, error) {
	if err := Validate(schema.Citrine, rec); err != nil {
		return nil, err
	}

	system := &CitrineSystem{Category: "system"}
	system.Source = citrineSource(rec.Source)
	system.Contacts = citrinePeople(rec)
	system.Licenses = p.licenses(rec.Licenses)
	system.References = p.references(rec.Citations)
	return system, nil
}

func citrineSource(src *record.Source) *CitrineSource {
	if src == nil {
		return nil
	}
	tags := append([]string{}, src.Tags...)
	return &CitrineSource{
		Producer: src.Producer,
		URL:      src.URL,
		Tags:     tags,
	}
}

// citrinePeople flattens authors, contacts and contributors into one list,
// tagging each person with their role.
func citrinePeople(rec record.Record) []CitrinePerson {
	groups := []struct {
		people []record.Person
		role   string
	}{
		{rec.Authors, record.RoleAuthor},
		{rec.DataContacts, record.RoleContact},
		{rec.DataContributors, record.RoleContributor},
	}

	var people []CitrinePerson
	for _, g := range groups {
		for _, person := range g.people {
			people = append(people, CitrinePerson{
				Name: CitrineName{
					Given:  person.GivenName,
					Family: person.FamilyName,
					Title:  person.Title,
				},
				ORCID: person.ORCID,
				Email: person.Email,
				Tags:  []string{g.role},
			})
		}
	}
	return people
}

// licenses passes licenses through, skipping any that cannot be coerced.
func (p *CitrineProjector) licenses(in []record.License) []CitrineLicense {
	var out []CitrineLicense
	for i, l := range in {
		license, err := citrineLicense(l)
		if err != nil {
			p.logger.Warn("skipping license",
				zap.Error(&UnformattableLicenseError{Index: i, Name: l.Name, Err: err}))
			continue
		}
		out = append(out, license)
	}
	return out
}

func citrineLicense(l record.License) (CitrineLicense, error) {
	if len(l.Extra) > 0 {
		return CitrineLicense{}, fmt.Errorf("unexpected fields: %s", strings.Join(sortedKeys(l.Extra), ", "))
	}
	license := CitrineLicense{
		Name:        l.Name,
		Description: l.Description,
		URL:         l.URL,
		Tags:        append([]string(nil), l.Tags...),
	}
	if err := pifValidate.Struct(license); err != nil {
		return CitrineLicense{}, err
	}
	return license, nil
}

// references converts citations to Citrine references, skipping any that
// cannot be decoded or do not identify a work.
func (p *CitrineProjector) references(in []record.Citation) []CitrineReference {
	var out []CitrineReference
	for i, c := range in {
		ref, err := citrineReference(c)
		if err != nil {
			p.logger.Warn("skipping citation",
				zap.Error(&UnformattableCitationError{Index: i, Err: err}))
			continue
		}
		out = append(out, ref)
	}
	return out
}

// citrineReference filters the citation down to the Reference fields and
// each author down to the Name fields, renaming given_name and family_name.
// The result must carry a title, DOI or URL, and a URL must be absolute.
func citrineReference(c record.Citation) (CitrineReference, error) {
	filtered := filterKeys(c.Tree(), citrineReferenceFields, nil)
	if authors, ok := filtered["authors"].([]any); ok {
		names := make([]any, 0, len(authors))
		for _, a := range authors {
			author, ok := a.(map[string]any)
			if !ok {
				continue
			}
			names = append(names, filterKeys(author, citrineNameFields, citrineNameRenames))
		}
		filtered["authors"] = names
	}

	var ref CitrineReference
	if err := mapstructure.Decode(filtered, &ref); err != nil {
		return CitrineReference{}, fmt.Errorf("decoding reference: %w", err)
	}
	if err := pifValidate.Struct(ref); err != nil {
		return CitrineReference{}, err
	}
	return ref, nil
}

// filterKeys returns the entries of in whose (renamed) key is allowed.
func filterKeys(in map[string]any, allowed map[string]bool, renames map[string]string) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if renamed, ok := renames[k]; ok {
			k = renamed
		}
		if allowed[k] {
			out[k] = v
		}
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
