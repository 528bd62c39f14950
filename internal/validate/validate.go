// Package validate checks a record's structural view against a requirement
// schema before a payload is built from it.
package validate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jasonthiese/commonmetadata/internal/schema"
)

// Validate checks that every field named in req is present in tree,
// recursing into nested requirement schemas. It returns nil, or an error
// that names every missing field at once.
//
// Known gap: list requirements (e.g. data_contacts[*]) only check that the
// list is present; elements are not validated.
func Validate(tree map[string]any, req schema.Schema) error {
	var missing []string
	var malformed []error
	check(tree, req, "", &missing, &malformed)

	var errs []error
	if len(missing) > 0 {
		sort.Strings(missing)
		errs = append(errs, &MissingFieldError{Paths: missing})
	}
	errs = append(errs, malformed...)
	return errors.Join(errs...)
}

func check(tree map[string]any, req schema.Schema, prefix string, missing *[]string, malformed *[]error) {
	for _, key := range req.Keys() {
		path := joinPath(prefix, key)
		value, ok := tree[key]
		if !ok || value == nil {
			*missing = append(*missing, path)
			continue
		}

		node := req[key]
		if !node.IsNested() {
			continue
		}
		sub, ok := value.(map[string]any)
		if !ok {
			*malformed = append(*malformed, &MalformedSubstructureError{
				Path: path,
				Got:  fmt.Sprintf("%T", value),
			})
			continue
		}
		check(sub, node.Fields, path, missing, malformed)
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
