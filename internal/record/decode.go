package record

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"

	"github.com/jasonthiese/commonmetadata/internal/schema"
	"github.com/jasonthiese/commonmetadata/internal/validate"
)

var personType = reflect.TypeOf(Person{})

// Decode builds a Record from a generic mapping such as the output of a
// JSON or YAML decoder. Top-level keys that the field schema does not know
// are kept in Record.Additional. Scalars are coerced where the intent is
// unambiguous (a numeric citation year becomes a string, "2017" becomes
// 2017), and a person given as a single string is parsed with ParsePerson.
func Decode(in map[string]any) (Record, error) {
	if src, ok := in["source"]; ok && src != nil {
		if !isMapping(src) {
			return Record{}, &validate.MalformedSubstructureError{
				Path: "source",
				Got:  fmt.Sprintf("%T", src),
			}
		}
	}
	if links, ok := in["links"]; ok && links != nil {
		if !isMapping(links) {
			return Record{}, &validate.MalformedSubstructureError{
				Path: "links",
				Got:  fmt.Sprintf("%T", links),
			}
		}
	}

	known, additional := splitKnown(in)

	var rec Record
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			personFromString,
			coerceScalar,
		),
		Result: &rec,
	})
	if err != nil {
		return Record{}, fmt.Errorf("creating decoder: %w", err)
	}
	if err := dec.Decode(known); err != nil {
		return Record{}, fmt.Errorf("decoding record: %w", err)
	}
	rec.Additional = additional
	for i := range rec.Licenses {
		if len(rec.Licenses[i].Extra) == 0 {
			rec.Licenses[i].Extra = nil
		}
	}
	return rec, nil
}

// splitKnown separates the keys of in that are fields of the common record
// from the rest. The second map is nil when every key is known.
func splitKnown(in map[string]any) (known, additional map[string]any) {
	known = make(map[string]any, len(in))
	for k, v := range in {
		if schema.IsKnownField(k) {
			known[k] = v
			continue
		}
		if additional == nil {
			additional = make(map[string]any)
		}
		additional[k] = v
	}
	return known, additional
}

// personFromString lets callers list people as strings, e.g.
// "Dr. Jane Doe <jd@example.com>".
func personFromString(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != personType || from.Kind() != reflect.String {
		return data, nil
	}
	return ParsePerson(reflect.ValueOf(data).String()), nil
}

// coerceScalar converts between numeric and string scalars. Named types
// (type Year int) are reduced to their underlying kind first.
func coerceScalar(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int:
		if from.Kind() == reflect.String || isNumeric(from.Kind()) {
			return cast.ToIntE(underlying(data))
		}
	case reflect.String:
		if isNumeric(from.Kind()) {
			return cast.ToStringE(underlying(data))
		}
	}
	return data, nil
}

func underlying(data any) any {
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	}
	return data
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isMapping(v any) bool {
	switch v.(type) {
	case map[string]any, *Source, Source, *Links, Links:
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Map
}
