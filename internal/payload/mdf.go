package payload

import (
	"maps"
	"slices"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/jasonthiese/commonmetadata/internal/export"
	"github.com/jasonthiese/commonmetadata/internal/record"
	"github.com/jasonthiese/commonmetadata/internal/schema"
)

// ACLPublic grants public read access to an MDF dataset.
const ACLPublic = "public"

// MDFDataset is the Materials Data Facility ingest envelope.
//
// Additional properties of the record are emitted under their own
// top-level key, named after the source, never inside the mdf block.
type MDFDataset struct {
	MDF MDFMetadata
	DC  map[string]any

	Namespace  string
	Additional map[string]any
}

// Service implements Payload.
func (*MDFDataset) Service() schema.Service { return schema.MaterialsDataFacility }

// MDFMetadata is the "mdf" block of the envelope.
type MDFMetadata struct {
	Title           string          `json:"title"`
	ACL             []string        `json:"acl"`
	SourceName      string          `json:"source_name"`
	Links           *record.Links   `json:"links"`
	DataContact     []record.Person `json:"data_contact"`
	DataContributor []record.Person `json:"data_contributor"`
	Citation        []string        `json:"citation,omitempty"`

	// Optional fields, present only when set on the record.
	Authors     []record.Person  `json:"authors,omitempty"`
	Licenses    []record.License `json:"licenses,omitempty"`
	Repository  string           `json:"repository,omitempty"`
	Collection  string           `json:"collection,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Description string           `json:"description,omitempty"`
	Raw         any              `json:"raw,omitempty"`
	Year        int              `json:"year,omitempty"`
	Composition string           `json:"composition,omitempty"`
}

// AdditionalKey returns the top-level key additional properties are
// emitted under. A source named "mdf" or "dc" gets a suffix so it cannot
// shadow the envelope.
func (d *MDFDataset) AdditionalKey() string {
	switch d.Namespace {
	case "mdf", "dc":
		return d.Namespace + "_additional"
	}
	return d.Namespace
}

// MarshalJSON renders the envelope as {"mdf": ..., "dc": ..., <source>: ...}.
func (d *MDFDataset) MarshalJSON() ([]byte, error) {
	dc := d.DC
	if dc == nil {
		dc = map[string]any{}
	}
	out := map[string]any{
		"mdf": d.MDF,
		"dc":  dc,
	}
	if len(d.Additional) > 0 {
		out[d.AdditionalKey()] = d.Additional
	}
	return json.Marshal(out)
}

// MDFProjector builds Materials Data Facility datasets.
type MDFProjector struct {
	logger *zap.Logger
}

// Service implements Projector.
func (p *MDFProjector) Service() schema.Service { return schema.MaterialsDataFacility }

// Project implements Projector.
func (p *MDFProjector) Project(rec record.Record) (Payload, error) {
	if err := Validate(schema.MaterialsDataFacility, rec); err != nil {
		return nil, err
	}

	links := *rec.Links
	links.Publication = slices.Clone(links.Publication)
	links.RelatedID = slices.Clone(links.RelatedID)

	md := MDFMetadata{
		Title:           rec.Title,
		ACL:             []string{ACLPublic},
		SourceName:      rec.Source.Name,
		Links:           &links,
		DataContact:     clonePeople(rec.DataContacts),
		DataContributor: clonePeople(rec.DataContributors),

		Authors:     clonePeople(rec.Authors),
		Licenses:    slices.Clone(rec.Licenses),
		Repository:  rec.Repository,
		Collection:  rec.Collection,
		Tags:        slices.Clone(rec.Tags),
		Description: rec.Description,
		Raw:         rec.Raw,
		Year:        rec.Year,
		Composition: rec.Composition,
	}
	if len(rec.Citations) > 0 {
		md.Citation = export.Citations(rec.Citations)
	}

	dataset := &MDFDataset{
		MDF:        md,
		DC:         map[string]any{},
		Namespace:  rec.Source.Name,
		Additional: maps.Clone(rec.Additional),
	}
	p.logger.Debug("projected MDF dataset",
		zap.String("source_name", md.SourceName),
		zap.Int("citations", len(md.Citation)),
		zap.Int("additional", len(dataset.Additional)))
	return dataset, nil
}

func clonePeople(people []record.Person) []record.Person {
	if people == nil {
		return nil
	}
	out := make([]record.Person, len(people))
	for i, person := range people {
		out[i] = person.Tagged(person.Tags...)
	}
	return out
}
