// Package payload projects a common record into the metadata payload of
// each supported publication service.
//
// Every projector validates the record against its service's required
// fields before building anything, so a caller gets either a complete
// payload or a single error naming every missing field.
package payload

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jasonthiese/commonmetadata/internal/logging"
	"github.com/jasonthiese/commonmetadata/internal/record"
	"github.com/jasonthiese/commonmetadata/internal/schema"
	"github.com/jasonthiese/commonmetadata/internal/validate"
)

// Payload is a finished, service-specific metadata payload, ready to be
// handed to that service's ingestion API.
type Payload interface {
	Service() schema.Service
}

// Projector transforms a common record into one service's payload.
type Projector interface {
	Service() schema.Service
	Project(rec record.Record) (Payload, error)
}

// Option configures a projector.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used to report skipped elements.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logging.OrNop(o.logger)
	return o
}

// Ensure projectors implement the interface
var (
	_ Projector = (*CitrineProjector)(nil)
	_ Projector = (*MDFProjector)(nil)
	_ Projector = (*MCProjector)(nil)
)

// constructors maps each service to its projector.
var constructors = map[schema.Service]func(options) Projector{
	schema.Citrine:               func(o options) Projector { return &CitrineProjector{logger: o.logger} },
	schema.MaterialsDataFacility: func(o options) Projector { return &MDFProjector{logger: o.logger} },
	schema.MaterialsCommons:      func(o options) Projector { return &MCProjector{} },
}

// For returns the projector for service s.
func For(s schema.Service, opts ...Option) (Projector, error) {
	newProjector, ok := constructors[s]
	if !ok {
		return nil, fmt.Errorf("no projector for service %q", s)
	}
	return newProjector(newOptions(opts)), nil
}

// Validate checks rec against the required fields of service s without
// building a payload.
func Validate(s schema.Service, rec record.Record) error {
	return validate.Validate(rec.Tree(), schema.RequirementsFor(s))
}
