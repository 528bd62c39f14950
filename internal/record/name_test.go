package record

import "testing"

func TestSplitName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantGiven  string
		wantFamily string
	}{
		{"empty", "", "", ""},
		{"whitespace", "   ", "", ""},
		{"single name", "Madonna", "", "Madonna"},
		{"two parts", "Jane Doe", "Jane", "Doe"},
		{"middle name", "Jane Quinn Doe", "Jane Quinn", "Doe"},
		{"suffix jr", "Martin Luther King Jr.", "Martin Luther", "King Jr."},
		{"suffix roman", "John Smith III", "John", "Smith III"},
		{"suffix phd", "Ada Lovelace PhD", "Ada", "Lovelace PhD"},
		{"suffix only two parts", "Smith Jr", "Smith", "Jr"},
		{"extra spaces", "  Jane   Doe  ", "Jane", "Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			given, family := SplitName(tt.input)
			if given != tt.wantGiven || family != tt.wantFamily {
				t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)",
					tt.input, given, family, tt.wantGiven, tt.wantFamily)
			}
		})
	}
}

func TestParsePerson(t *testing.T) {
	tests := []struct {
		input string
		want  Person
	}{
		{"Jane Doe", Person{GivenName: "Jane", FamilyName: "Doe"}},
		{"Jane Doe <jd@example.com>", Person{GivenName: "Jane", FamilyName: "Doe", Email: "jd@example.com"}},
		{"Dr. Jane Quinn Doe", Person{GivenName: "Jane Quinn", FamilyName: "Doe", Title: "Dr"}},
		{"prof Ada Lovelace <ada@example.com>", Person{GivenName: "Ada", FamilyName: "Lovelace", Title: "Prof", Email: "ada@example.com"}},
		{"Martin Luther King Jr. <mlk@example.com>", Person{GivenName: "Martin Luther", FamilyName: "King Jr.", Email: "mlk@example.com"}},
		{"<nobody@example.com>", Person{Email: "nobody@example.com"}},
		{"Jane Doe <>", Person{GivenName: "Jane", FamilyName: "Doe"}},
		{"Dr", Person{FamilyName: "Dr"}},
		{"", Person{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParsePerson(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("ParsePerson(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
