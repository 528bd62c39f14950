package payload

import (
	"testing"

	"github.com/jasonthiese/commonmetadata/internal/record"
	"github.com/jasonthiese/commonmetadata/internal/schema"
	"github.com/jasonthiese/commonmetadata/internal/validate"
)

func TestFor(t *testing.T) {
	for _, s := range schema.Services() {
		t.Run(string(s), func(t *testing.T) {
			p, err := For(s)
			if err != nil {
				t.Fatalf("For(%s) error = %v", s, err)
			}
			if p.Service() != s {
				t.Errorf("Service() = %s, want %s", p.Service(), s)
			}
		})
	}

	if _, err := For("zenodo"); err == nil {
		t.Error("For(zenodo) succeeded, want error")
	}
}

func TestProject_AllServicesAcceptFullRecord(t *testing.T) {
	rec := fullRecord()
	for _, s := range schema.Services() {
		t.Run(string(s), func(t *testing.T) {
			p, err := For(s)
			if err != nil {
				t.Fatal(err)
			}
			out, err := p.Project(rec)
			if err != nil {
				t.Fatalf("Project() error = %v", err)
			}
			if out.Service() != s {
				t.Errorf("payload Service() = %s, want %s", out.Service(), s)
			}
		})
	}
}

func TestProject_EachServiceValidatesOnlyItsOwnFields(t *testing.T) {
	// Enough for Materials Commons, nowhere near enough for MDF.
	rec := record.Record{
		Source:      &record.Source{Name: "S"},
		Description: "d",
	}

	tests := []struct {
		service     schema.Service
		wantMissing []string
	}{
		{schema.Citrine, nil},
		{schema.MaterialsCommons, nil},
		{schema.MaterialsDataFacility, []string{"data_contacts", "data_contributors", "links", "title"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.service), func(t *testing.T) {
			p, _ := For(tt.service)
			out, err := p.Project(rec)
			if tt.wantMissing == nil {
				if err != nil {
					t.Fatalf("Project() error = %v", err)
				}
				return
			}
			if out != nil {
				t.Errorf("Project() returned a payload alongside an error: %+v", out)
			}
			got := validate.MissingPaths(err)
			if len(got) != len(tt.wantMissing) {
				t.Fatalf("missing = %v, want %v", got, tt.wantMissing)
			}
			for i := range got {
				if got[i] != tt.wantMissing[i] {
					t.Errorf("missing[%d] = %q, want %q", i, got[i], tt.wantMissing[i])
				}
			}
		})
	}
}

func TestProject_DoesNotMutateRecord(t *testing.T) {
	rec := fullRecord()
	before := rec.Tree()

	for _, s := range schema.Services() {
		p, _ := For(s)
		if _, err := p.Project(rec); err != nil {
			t.Fatalf("%s: Project() error = %v", s, err)
		}
	}

	after := rec.Tree()
	if len(before) != len(after) {
		t.Fatalf("record changed: %d fields before, %d after", len(before), len(after))
	}
	if rec.DataContacts[0].Tags[0] != "pi" {
		t.Errorf("contact tags changed to %v", rec.DataContacts[0].Tags)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(schema.Citrine, record.Record{}); err != nil {
		t.Errorf("Validate(citrine, empty) error = %v", err)
	}
	if err := Validate(schema.MaterialsCommons, record.Record{}); !validate.IsMissing(err) {
		t.Errorf("Validate(mc, empty) error = %v, want missing fields", err)
	}
}
