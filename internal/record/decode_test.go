package record

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jasonthiese/commonmetadata/internal/schema"
	"github.com/jasonthiese/commonmetadata/internal/validate"
)

type (
	fullName string
	yearNum  int
)

func TestDecode_KnownFields(t *testing.T) {
	in := map[string]any{
		"title": "Band gaps",
		"source": map[string]any{
			"name":     "bandgaps",
			"producer": "Lab",
			"url":      "https://example.com",
		},
		"data_contacts": []any{
			map[string]any{"given_name": "Jane", "family_name": "Doe", "email": "jd@example.com"},
		},
		"links": map[string]any{"landing_page": "https://example.com/data"},
		"tags":  []any{"dft", "oxides"},
		"year":  2017,
	}

	rec, err := Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := Record{
		Title:        "Band gaps",
		Source:       &Source{Name: "bandgaps", Producer: "Lab", URL: "https://example.com"},
		DataContacts: []Person{NewPerson("Jane", "Doe", WithEmail("jd@example.com"))},
		Links:        &Links{LandingPage: "https://example.com/data"},
		Tags:         []string{"dft", "oxides"},
		Year:         2017,
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_AdditionalProperties(t *testing.T) {
	rec, err := Decode(map[string]any{
		"title":       "T",
		"temperature": 300,
		"notes":       "annealed",
	})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := map[string]any{"temperature": 300, "notes": "annealed"}
	if diff := cmp.Diff(want, rec.Additional); diff != "" {
		t.Errorf("Additional mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_NoAdditionalIsNil(t *testing.T) {
	rec, err := Decode(map[string]any{"title": "T"})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if rec.Additional != nil {
		t.Errorf("Additional = %v, want nil", rec.Additional)
	}
}

func TestDecode_Coercion(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want Record
	}{
		{
			name: "string year",
			in:   map[string]any{"year": "2017"},
			want: Record{Year: 2017},
		},
		{
			name: "float year",
			in:   map[string]any{"year": float64(2017)},
			want: Record{Year: 2017},
		},
		{
			name: "numeric citation fields",
			in: map[string]any{"citations": []any{
				map[string]any{"year": 2001, "volume": 5, "issue": 2},
			}},
			want: Record{Citations: []Citation{{Year: "2001", Volume: "5", Issue: "2"}}},
		},
		{
			name: "person as string",
			in:   map[string]any{"authors": []any{"Jane Quinn Doe", "Madonna"}},
			want: Record{Authors: []Person{
				{GivenName: "Jane Quinn", FamilyName: "Doe"},
				{FamilyName: "Madonna"},
			}},
		},
		{
			name: "person string with title and email",
			in:   map[string]any{"data_contacts": []any{"Dr. Jane Doe <jd@example.com>"}},
			want: Record{DataContacts: []Person{
				{GivenName: "Jane", FamilyName: "Doe", Title: "Dr", Email: "jd@example.com"},
			}},
		},
		{
			name: "named string person",
			in:   map[string]any{"authors": []any{fullName("Ada Lovelace")}},
			want: Record{Authors: []Person{{GivenName: "Ada", FamilyName: "Lovelace"}}},
		},
		{
			name: "named numeric year",
			in: map[string]any{
				"year":      yearNum(2017),
				"citations": []any{map[string]any{"year": yearNum(2001)}},
			},
			want: Record{Year: 2017, Citations: []Citation{{Year: "2001"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_LicenseExtra(t *testing.T) {
	rec, err := Decode(map[string]any{
		"licenses": []any{
			map[string]any{"name": "CC-BY", "spdx": "CC-BY-4.0"},
			map[string]any{"name": "MIT"},
		},
	})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(rec.Licenses) != 2 {
		t.Fatalf("got %d licenses, want 2", len(rec.Licenses))
	}
	if got := rec.Licenses[0].Extra["spdx"]; got != "CC-BY-4.0" {
		t.Errorf("Extra[spdx] = %v, want CC-BY-4.0", got)
	}
	if rec.Licenses[1].Extra != nil {
		t.Errorf("Extra = %v, want nil", rec.Licenses[1].Extra)
	}
}

func TestDecode_MalformedSubstructure(t *testing.T) {
	tests := []struct {
		name     string
		in       map[string]any
		wantPath string
	}{
		{"source string", map[string]any{"source": "bandgaps"}, "source"},
		{"links list", map[string]any{"links": []any{"https://example.com"}}, "links"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			var malformed *validate.MalformedSubstructureError
			if !errors.As(err, &malformed) {
				t.Fatalf("Decode() error = %v, want MalformedSubstructureError", err)
			}
			if malformed.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", malformed.Path, tt.wantPath)
			}
		})
	}
}

func TestDecode_NullSourceIsAbsent(t *testing.T) {
	rec, err := Decode(map[string]any{"source": nil})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if rec.Source != nil {
		t.Errorf("Source = %+v, want nil", rec.Source)
	}
}

func TestDecode_WrongShapeFails(t *testing.T) {
	_, err := Decode(map[string]any{"tags": map[string]any{"a": 1}})
	if err == nil {
		t.Fatal("Decode() succeeded for tags given as a mapping")
	}
}

func TestDecode_AdditionalFollowsFieldSchema(t *testing.T) {
	in := make(map[string]any)
	for _, key := range schema.AllFields().Keys() {
		in[key] = nil
	}
	in["temperature"] = 300

	rec, err := Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := map[string]any{"temperature": 300}
	if diff := cmp.Diff(want, rec.Additional); diff != "" {
		t.Errorf("Additional mismatch (-want +got):\n%s", diff)
	}
}

// The decoder fills Record through its mapstructure tags, while the field
// schema decides which keys are known. Both must name the same fields.
func TestRecordFieldsMatchSchema(t *testing.T) {
	var tags []string
	typ := reflect.TypeOf(Record{})
	for i := 0; i < typ.NumField(); i++ {
		name, _, _ := strings.Cut(typ.Field(i).Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			continue
		}
		tags = append(tags, name)
	}
	slices.Sort(tags)

	if diff := cmp.Diff(schema.AllFields().Keys(), tags); diff != "" {
		t.Errorf("Record fields differ from the field schema (-schema +struct):\n%s", diff)
	}
}
