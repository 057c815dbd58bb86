package constants

import "testing"

func TestCategoryOfIsTotal(t *testing.T) {
	for _, typ := range AllContractTypes() {
		cat := CategoryOf(typ)
		found := false
		for _, c := range AllCategories() {
			if c == cat {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("CategoryOf(%q) = %q, not a known category", typ, cat)
		}
	}
}

func TestCategoryOfFallbackType(t *testing.T) {
	if got := CategoryOf(SonstigerVertrag); got != KundenBauprojekte {
		t.Errorf("expected fallback type in default bucket, got %q", got)
	}
	if got := CategoryOf(ContractType("does not exist")); got != KundenBauprojekte {
		t.Errorf("expected unknown type in default bucket, got %q", got)
	}
}

func TestTypesForCategoryCoversAllTypes(t *testing.T) {
	total := 0
	for _, cat := range AllCategories() {
		total += len(TypesForCategory(cat))
	}
	if total != len(AllContractTypes()) {
		t.Errorf("types grouped by category = %d, want %d", total, len(AllContractTypes()))
	}
}

func TestResolveContractTypeExactMatch(t *testing.T) {
	tests := []struct {
		input string
		want  ContractType
	}{
		{"Mietvertrag", Mietvertrag},
		{"mietvertrag", Mietvertrag},
		{"MIETVERTRAG", Mietvertrag},
		{"  IT-Vertrag  ", ITVertrag},
		{"vob/b-vertrag", VOBBVertrag},
	}
	for _, tt := range tests {
		got, match := ResolveContractType(tt.input)
		if got != tt.want {
			t.Errorf("ResolveContractType(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if match != MatchExact {
			t.Errorf("ResolveContractType(%q) match = %q, want exact", tt.input, match)
		}
	}
}

func TestResolveContractTypeFuzzyMatch(t *testing.T) {
	tests := []struct {
		input string
		want  ContractType
	}{
		{"softwarevertrag", ITVertrag},
		{"Softwarevertrag 2024", ITVertrag},
		{"Lizenzvertrag", ITVertrag},
		{"Kreditvertrag", Darlehensvertrag},
		{"NDA", Beratungsvertrag},
		{"Anstellungsvertrag", Arbeitsvertrag},
		{"Gewerbemietvertrag", Mietvertrag},
		{"GmbH-Vertrag", Gesellschaftsvertrag},
	}
	for _, tt := range tests {
		got, match := ResolveContractType(tt.input)
		if got != tt.want {
			t.Errorf("ResolveContractType(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if match != MatchFuzzy {
			t.Errorf("ResolveContractType(%q) match = %q, want fuzzy", tt.input, match)
		}
	}
}

// An exact label match must win even when the input would also hit an
// earlier fuzzy table entry.
func TestResolveContractTypePrecedence(t *testing.T) {
	// "Mietvertrag Maschinen" contains "miet", which the fuzzy table maps
	// to the real-estate Mietvertrag; the exact label must win.
	got, match := ResolveContractType("Mietvertrag Maschinen")
	if got != MietvertragMaschinen || match != MatchExact {
		t.Errorf("got (%q, %q), want exact Mietvertrag Maschinen", got, match)
	}

	// "Wartungsvertrag" is both an exact label and a fuzzy needle.
	got, match = ResolveContractType("wartungsvertrag")
	if got != WartungsvertragBau || match != MatchExact {
		t.Errorf("got (%q, %q), want exact Wartungsvertrag", got, match)
	}
}

func TestResolveContractTypeFallback(t *testing.T) {
	for _, input := range []string{"", "   ", "Völlig unbekannt", "xyz"} {
		got, match := ResolveContractType(input)
		if got != SonstigerVertrag || match != MatchFallback {
			t.Errorf("ResolveContractType(%q) = (%q, %q), want fallback", input, got, match)
		}
	}
}

// Fuzzy table order is significant: "dienstleistungsvertrag" appears after
// the IT needles, so an IT-Dienstleistungsvertrag resolves to IT-Vertrag.
func TestResolveContractTypeTableOrder(t *testing.T) {
	got, match := ResolveContractType("IT-Dienstleistungsvertrag")
	if got != ITVertrag || match != MatchFuzzy {
		t.Errorf("got (%q, %q), want fuzzy IT-Vertrag", got, match)
	}
}
