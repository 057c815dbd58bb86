package constants

import "strings"

// ContractCategory is one of the five top-level business buckets.
type ContractCategory string

const (
	KundenBauprojekte      ContractCategory = "Kunden & Bauprojekte"
	PersonalDienstleister  ContractCategory = "Personal & Dienstleister"
	LieferantenEinkauf     ContractCategory = "Lieferanten & Einkauf"
	Immobilien             ContractCategory = "Immobilien"
	FinanzenVersicherungen ContractCategory = "Finanzen & Versicherungen"
)

var allCategories = []ContractCategory{
	KundenBauprojekte,
	PersonalDienstleister,
	LieferantenEinkauf,
	Immobilien,
	FinanzenVersicherungen,
}

// ContractType is the fine-grained classification. Every type maps to
// exactly one category via typeToCategory.
type ContractType string

const (
	// Kunden & Bauprojekte
	Werkvertrag        ContractType = "Werkvertrag"
	WartungsvertragBau ContractType = "Wartungsvertrag"
	Rahmenvertrag      ContractType = "Rahmenvertrag"
	VOBBVertrag        ContractType = "VOB/B-Vertrag"

	// Personal & Dienstleister
	Arbeitsvertrag        ContractType = "Arbeitsvertrag"
	Tarifvertrag          ContractType = "Tarifvertrag"
	Subunternehmervertrag ContractType = "Subunternehmervertrag"
	Beratungsvertrag      ContractType = "Beratungsvertrag"
	ITVertrag             ContractType = "IT-Vertrag"

	// Lieferanten & Einkauf
	Kaufvertrag             ContractType = "Kaufvertrag"
	Liefervertrag           ContractType = "Liefervertrag"
	Rahmenliefervertrag     ContractType = "Rahmenliefervertrag"
	Leasingvertrag          ContractType = "Leasingvertrag"
	MietvertragMaschinen    ContractType = "Mietvertrag Maschinen"
	WartungsvertragFuhrpark ContractType = "Wartungsvertrag Fuhrpark"

	// Immobilien
	Mietvertrag            ContractType = "Mietvertrag"
	Pachtvertrag           ContractType = "Pachtvertrag"
	Hausverwaltungsvertrag ContractType = "Hausverwaltungsvertrag"
	Maklervertrag          ContractType = "Maklervertrag"
	Hausmeistervertrag     ContractType = "Hausmeistervertrag"
	Reinigungsvertrag      ContractType = "Reinigungsvertrag"

	// Finanzen & Versicherungen
	Darlehensvertrag     ContractType = "Darlehensvertrag"
	Kontovertrag         ContractType = "Kontovertrag"
	Buergschaft          ContractType = "Bürgschaft"
	Bankaval             ContractType = "Bankaval"
	Versicherungsvertrag ContractType = "Versicherungsvertrag"
	Gesellschaftsvertrag ContractType = "Gesellschaftsvertrag"

	// Fallback for anything the model could not place.
	SonstigerVertrag ContractType = "Sonstiger Vertrag"
)

var allContractTypes = []ContractType{
	Werkvertrag, WartungsvertragBau, Rahmenvertrag, VOBBVertrag,
	Arbeitsvertrag, Tarifvertrag, Subunternehmervertrag, Beratungsvertrag, ITVertrag,
	Kaufvertrag, Liefervertrag, Rahmenliefervertrag, Leasingvertrag, MietvertragMaschinen, WartungsvertragFuhrpark,
	Mietvertrag, Pachtvertrag, Hausverwaltungsvertrag, Maklervertrag, Hausmeistervertrag, Reinigungsvertrag,
	Darlehensvertrag, Kontovertrag, Buergschaft, Bankaval, Versicherungsvertrag, Gesellschaftsvertrag,
	SonstigerVertrag,
}

var typeToCategory = map[ContractType]ContractCategory{
	Werkvertrag:        KundenBauprojekte,
	WartungsvertragBau: KundenBauprojekte,
	Rahmenvertrag:      KundenBauprojekte,
	VOBBVertrag:        KundenBauprojekte,

	Arbeitsvertrag:        PersonalDienstleister,
	Tarifvertrag:          PersonalDienstleister,
	Subunternehmervertrag: PersonalDienstleister,
	Beratungsvertrag:      PersonalDienstleister,
	ITVertrag:             PersonalDienstleister,

	Kaufvertrag:             LieferantenEinkauf,
	Liefervertrag:           LieferantenEinkauf,
	Rahmenliefervertrag:     LieferantenEinkauf,
	Leasingvertrag:          LieferantenEinkauf,
	MietvertragMaschinen:    LieferantenEinkauf,
	WartungsvertragFuhrpark: LieferantenEinkauf,

	Mietvertrag:            Immobilien,
	Pachtvertrag:           Immobilien,
	Hausverwaltungsvertrag: Immobilien,
	Maklervertrag:          Immobilien,
	Hausmeistervertrag:     Immobilien,
	Reinigungsvertrag:      Immobilien,

	Darlehensvertrag:     FinanzenVersicherungen,
	Kontovertrag:         FinanzenVersicherungen,
	Buergschaft:          FinanzenVersicherungen,
	Bankaval:             FinanzenVersicherungen,
	Versicherungsvertrag: FinanzenVersicherungen,
	Gesellschaftsvertrag: FinanzenVersicherungen,

	SonstigerVertrag: KundenBauprojekte,
}

// AllCategories returns the five top-level categories in display order.
func AllCategories() []ContractCategory {
	out := make([]ContractCategory, len(allCategories))
	copy(out, allCategories)
	return out
}

// AllContractTypes returns every canonical contract type, fallback included.
func AllContractTypes() []ContractType {
	out := make([]ContractType, len(allContractTypes))
	copy(out, allContractTypes)
	return out
}

// CategoryOf derives the category for a contract type. The lookup is total
// over the canonical types; unknown input lands in the default bucket so
// callers never have to handle a missing mapping.
func CategoryOf(t ContractType) ContractCategory {
	if c, ok := typeToCategory[t]; ok {
		return c
	}
	return KundenBauprojekte
}

// TypesForCategory lists the contract types belonging to a category, in
// canonical order.
func TypesForCategory(c ContractCategory) []ContractType {
	var out []ContractType
	for _, t := range allContractTypes {
		if typeToCategory[t] == c {
			out = append(out, t)
		}
	}
	return out
}

// MatchKind records how a raw model-supplied type string was resolved.
type MatchKind string

const (
	MatchExact    MatchKind = "exact"
	MatchFuzzy    MatchKind = "fuzzy"
	MatchFallback MatchKind = "fallback"
)

// typeVariant maps a known synonym, abbreviation or spelling variant to its
// canonical type. Matching is by substring containment; slice order is
// significant, the first matching entry wins.
type typeVariant struct {
	needle string
	typ    ContractType
}

var typeVariants = []typeVariant{
	{"it-dienstleistung", ITVertrag},
	{"it dienstleistung", ITVertrag},
	{"it-dienstleistungsvertrag", ITVertrag},
	{"softwarevertrag", ITVertrag},
	{"lizenzvertrag", ITVertrag},
	{"dienstleistungsvertrag", Beratungsvertrag},
	{"dienstvertrag", Beratungsvertrag},
	{"servicevertrag", WartungsvertragBau},
	{"service", WartungsvertragBau},
	{"miete", Mietvertrag},
	{"miet", Mietvertrag},
	{"pacht", Pachtvertrag},
	{"arbeit", Arbeitsvertrag},
	{"anstellung", Arbeitsvertrag},
	{"anstellungsvertrag", Arbeitsvertrag},
	{"kauf", Kaufvertrag},
	{"lieferung", Liefervertrag},
	{"leasing", Leasingvertrag},
	{"versicherung", Versicherungsvertrag},
	{"darlehen", Darlehensvertrag},
	{"kredit", Darlehensvertrag},
	{"kreditvertrag", Darlehensvertrag},
	{"nda", Beratungsvertrag},
	{"geheimhaltung", Beratungsvertrag},
	{"geheimhaltungsvertrag", Beratungsvertrag},
	{"werk", Werkvertrag},
	{"bauvertrag", VOBBVertrag},
	{"bau", VOBBVertrag},
	{"vob", VOBBVertrag},
	{"rahmen", Rahmenvertrag},
	{"makler", Maklervertrag},
	{"hausverwaltung", Hausverwaltungsvertrag},
	{"hausmeister", Hausmeistervertrag},
	{"reinigung", Reinigungsvertrag},
	{"gesellschaft", Gesellschaftsvertrag},
	{"gmbh", Gesellschaftsvertrag},
	{"wartung", WartungsvertragBau},
	{"subunternehmer", Subunternehmervertrag},
	{"beratung", Beratungsvertrag},
	{"consulting", Beratungsvertrag},
}

// ResolveContractType maps a raw model-supplied type string to a canonical
// ContractType. Precedence: case-insensitive exact label match, then the
// ordered substring variant table, then the catch-all type. It always
// returns a usable type; the MatchKind tells the caller how approximate the
// resolution was.
func ResolveContractType(raw string) (ContractType, MatchKind) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return SonstigerVertrag, MatchFallback
	}

	for _, t := range allContractTypes {
		if normalized == strings.ToLower(string(t)) {
			return t, MatchExact
		}
	}

	for _, v := range typeVariants {
		if strings.Contains(normalized, v.needle) {
			return v.typ, MatchFuzzy
		}
	}

	return SonstigerVertrag, MatchFallback
}
