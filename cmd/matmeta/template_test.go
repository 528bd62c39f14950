package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jasonthiese/commonmetadata/internal/config"
	"github.com/jasonthiese/commonmetadata/internal/schema"
)

func TestDescribeLines(t *testing.T) {
	got := describeLines(schema.RequirementsFor(schema.MaterialsDataFacility), "  ")
	want := []string{
		"  data_contacts[]:",
		"    email: string",
		"    family_name: string",
		"    given_name: string",
		"  data_contributors[]:",
		"    email: string",
		"    family_name: string",
		"    given_name: string",
		"  links:",
		"    landing_page: uri",
		"  source:",
		"    name: string",
		"  title: string",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("describeLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribeLines_ScalarList(t *testing.T) {
	src, ok := schema.AllFields().Lookup("source")
	if !ok {
		t.Fatal("source not found")
	}
	got := describeLines(src.Fields, "")
	want := []string{
		"name: string",
		"producer: string",
		"tags: [string]",
		"url: uri",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("describeLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinServices(t *testing.T) {
	got := joinServices([]schema.Service{schema.MaterialsDataFacility, schema.Citrine})
	if want := "citrine, materials_data_facility"; got != want {
		t.Errorf("joinServices() = %q, want %q", got, want)
	}
}

func TestResolveServices(t *testing.T) {
	config.ResetGlobalConfigCache()
	t.Cleanup(config.ResetGlobalConfigCache)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvServices, "mc")

	tests := []struct {
		name    string
		names   []string
		want    []schema.Service
		wantErr bool
	}{
		{"configured default", nil, []schema.Service{schema.MaterialsCommons}, false},
		{"explicit", []string{"mdf", "cit"}, []schema.Service{schema.MaterialsDataFacility, schema.Citrine}, false},
		{"unknown", []string{"zenodo"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveServices(tt.names)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveServices() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("resolveServices() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
