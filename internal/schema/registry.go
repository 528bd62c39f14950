package schema

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Service identifies a target publication service.
type Service string

const (
	Citrine               Service = "citrine"
	MaterialsCommons      Service = "materials_commons"
	MaterialsDataFacility Service = "materials_data_facility"
)

// serviceAliases maps short names accepted on the command line.
var serviceAliases = map[string]Service{
	"cit": Citrine,
	"mc":  MaterialsCommons,
	"mdf": MaterialsDataFacility,
}

// Services returns every known service in canonical order.
func Services() []Service {
	return []Service{Citrine, MaterialsCommons, MaterialsDataFacility}
}

// ParseService resolves a service name or alias.
func ParseService(name string) (Service, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := serviceAliases[name]; ok {
		return alias, nil
	}
	for _, s := range Services() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown service %q (valid: %v)", name, Services())
}

//go:embed requirements.yaml
var requirementsYAML []byte

// document is the layout of requirements.yaml.
type document struct {
	AllFields map[string]any            `yaml:"all_fields"`
	Services  map[string]map[string]any `yaml:"services"`
}

// registry is the parsed schema document. It is loaded once and never
// modified; accessors hand out copies.
type registry struct {
	allFields    Schema
	requirements map[Service]Schema
}

var (
	loadOnce sync.Once
	loaded   *registry
)

func mustRegistry() *registry {
	loadOnce.Do(func() {
		reg, err := parseRegistry(requirementsYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded requirements.yaml: %v", err))
		}
		loaded = reg
	})
	return loaded
}

func parseRegistry(data []byte) (*registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schema YAML: %w", err)
	}

	all, err := parseSchema(doc.AllFields, "")
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("all_fields must list at least one field")
	}

	reg := &registry{allFields: all, requirements: make(map[Service]Schema)}
	for _, s := range Services() {
		raw, ok := doc.Services[string(s)]
		if !ok {
			return nil, fmt.Errorf("no requirements for service %q", s)
		}
		req, err := parseSchema(raw, "")
		if err != nil {
			return nil, fmt.Errorf("service %q: %w", s, err)
		}
		for _, key := range req.Keys() {
			if _, known := all[key]; !known {
				return nil, fmt.Errorf("service %q requires unknown field %q", s, key)
			}
		}
		reg.requirements[s] = req
	}
	for name := range doc.Services {
		if _, err := ParseService(name); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// RequirementsFor returns the union of the required-field trees of the
// given services, in the order given. Unknown services are ignored; when
// none remain, every service is used.
//
// The union is shallow: the first service to require a top-level key
// supplies its whole subtree, and later services' subtrees for the same
// key are not merged in.
func RequirementsFor(services ...Service) Schema {
	reg := mustRegistry()

	selected := make([]Service, 0, len(services))
	for _, s := range services {
		if _, ok := reg.requirements[s]; ok {
			selected = append(selected, s)
		}
	}
	if len(selected) == 0 {
		selected = Services()
	}

	combined := make(Schema)
	for _, s := range selected {
		for key, node := range reg.requirements[s] {
			if _, exists := combined[key]; !exists {
				combined[key] = node.clone()
			}
		}
	}
	return combined
}

// AllFields returns the full attribute schema of the common record.
func AllFields() Schema {
	return mustRegistry().allFields.Clone()
}

// IsKnownField reports whether key is a top-level field of the common record.
func IsKnownField(key string) bool {
	_, ok := mustRegistry().allFields[key]
	return ok
}

// Usage is the hint returned alongside a template.
const Usage = "projector, err := payload.For(<service>); out, err := projector.Project(record)"

// Template is the description handed to callers assembling a record: every
// known field, the fields the selected services require, and a usage hint.
type Template struct {
	AllFields      map[string]any `json:"all_fields" yaml:"all_fields"`
	RequiredFields map[string]any `json:"required_fields" yaml:"required_fields"`
	Usage          string         `json:"usage" yaml:"usage"`
}

// NewTemplate builds the template for the given services (all when empty).
func NewTemplate(services ...Service) Template {
	return Template{
		AllFields:      AllFields().Describe(),
		RequiredFields: RequirementsFor(services...).Describe(),
		Usage:          Usage,
	}
}
