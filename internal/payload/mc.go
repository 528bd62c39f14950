package payload

import (
	"github.com/jasonthiese/commonmetadata/internal/record"
	"github.com/jasonthiese/commonmetadata/internal/schema"
)

// MCProject is the Materials Commons project payload. It surfaces only the
// source name and description.
type MCProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Service implements Payload.
func (*MCProject) Service() schema.Service { return schema.MaterialsCommons }

// MCProjector builds Materials Commons projects.
type MCProjector struct{}

// Service implements Projector.
func (p *MCProjector) Service() schema.Service { return schema.MaterialsCommons }

// Project implements Projector.
func (p *MCProjector) Project(rec record.Record) (Payload, error) {
	if err := Validate(schema.MaterialsCommons, rec); err != nil {
		return nil, err
	}
	return &MCProject{
		Name:        rec.Source.Name,
		Description: rec.Description,
	}, nil
}
