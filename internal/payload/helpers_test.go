package payload

import "github.com/jasonthiese/commonmetadata/internal/record"

// fullRecord returns a record that satisfies every service.
func fullRecord() record.Record {
	return record.Record{
		Title: "Band gaps of oxides",
		Source: &record.Source{
			Name:     "oxide_gaps",
			Producer: "Thiese Lab",
			URL:      "https://example.com/lab",
			Tags:     []string{"dft"},
		},
		DataContacts: []record.Person{
			record.NewPerson("Jane", "Doe", record.WithEmail("jd@example.com")).Tagged("pi"),
		},
		DataContributors: []record.Person{
			record.NewPerson("Sam", "Roe", record.WithEmail("sr@example.com")),
		},
		Authors: []record.Person{
			{GivenName: "Ada", FamilyName: "Lovelace", ORCID: "0000-0001-2345-6789", Title: "Dr"},
		},
		Links: &record.Links{
			LandingPage: "https://example.com/data",
			Publication: []string{"https://doi.org/10.1234/abc"},
		},
		Licenses: []record.License{
			{Name: "CC-BY 4.0", URL: "https://creativecommons.org/licenses/by/4.0/"},
		},
		Citations: []record.Citation{
			{
				Authors:      []record.Person{record.NewPerson("J", "Doe")},
				Year:         "2001",
				Title:        "X",
				Journal:      "Y",
				Volume:       "5",
				Issue:        "2",
				PageLocation: "10-20",
				DOI:          "10.1234/abc",
			},
		},
		Description: "DFT band gaps for binary oxides",
		Year:        2017,
	}
}
