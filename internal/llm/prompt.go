package llm

import (
	"strings"

	"github.com/bauwerk-digital/contracts-tracker/constants"
)

// typeHints explains each contract type in one line; the model picks better
// with the short gloss next to the label.
var typeHints = map[constants.ContractType]string{
	constants.Werkvertrag:             "Herstellung eines Werkes",
	constants.WartungsvertragBau:      "Wartung/Instandhaltung für Kunden",
	constants.Rahmenvertrag:           "Langfristige Geschäftsbeziehung",
	constants.VOBBVertrag:             "Bauverträge nach VOB",
	constants.Arbeitsvertrag:          "Anstellung von Mitarbeitern",
	constants.Tarifvertrag:            "Kollektive Arbeitsbedingungen",
	constants.Subunternehmervertrag:   "Werk/Dienstleistung durch Subunternehmer",
	constants.Beratungsvertrag:        "Beratungsdienstleistungen",
	constants.ITVertrag:               "Software, IT-Dienstleistungen, Lizenzen",
	constants.Kaufvertrag:             "Einmaliger Kauf von Waren",
	constants.Liefervertrag:           "Regelmäßige Lieferung von Waren",
	constants.Rahmenliefervertrag:     "Langfristiger Liefervertrag",
	constants.Leasingvertrag:          "Leasing von Gegenständen",
	constants.MietvertragMaschinen:    "Anmietung von Maschinen/Geräten",
	constants.WartungsvertragFuhrpark: "Wartung von Fahrzeugen",
	constants.Mietvertrag:             "Anmietung von Immobilien/Räumen",
	constants.Pachtvertrag:            "Pacht von Grundstücken/Betrieben",
	constants.Hausverwaltungsvertrag:  "Verwaltung von Immobilien",
	constants.Maklervertrag:           "Immobilienvermittlung",
	constants.Hausmeistervertrag:      "Hausmeisterservice",
	constants.Reinigungsvertrag:       "Gebäudereinigung",
	constants.Darlehensvertrag:        "Kredite, Darlehen",
	constants.Kontovertrag:            "Bankkonten",
	constants.Buergschaft:             "Bürgschaftsvereinbarungen",
	constants.Bankaval:                "Bankgarantien",
	constants.Versicherungsvertrag:    "Alle Arten von Versicherungen",
	constants.Gesellschaftsvertrag:    "GmbH, GbR, etc.",
}

const promptHeader = `Du bist ein Vertragsanalyse-Experte. Analysiere den folgenden Vertragstext und extrahiere die Metadaten.

WICHTIG: Antworte NUR mit einem gültigen JSON-Objekt, ohne zusätzlichen Text oder Markdown.

Das JSON muss folgende Struktur haben:
{
  "title": "Kurzer beschreibender Titel des Vertrags",
  "partnerName": "Name des Vertragspartners (Firma/Person)",
  "contractType": "Einer der erlaubten Vertragstypen (siehe Liste unten)",
  "value": 0,
  "currency": "EUR",
  "startDate": "YYYY-MM-DD",
  "endDate": "YYYY-MM-DD oder null wenn unbefristet",
  "noticePeriod": "Kündigungsfrist (z.B. 3 Monate zum Jahresende)",
  "riskLevel": "Niedrig|Mittel|Hoch|Unbekannt",
  "summary": "Kurze Zusammenfassung des Vertragsinhalts (max 2 Sätze)",
  "tags": ["tag1", "tag2"]
}`

const riskRules = `Regeln für riskLevel:
- "Hoch": Mehrdeutige Klauseln, automatische Verlängerungen > 1 Jahr, unbegrenzte Haftung
- "Mittel": Standardrisiken, normale Vertragsbedingungen
- "Niedrig": Standardverträge ohne besondere Risiken
- "Unbekannt": Wenn nicht bestimmbar`

// buildTypeCatalog renders the allowed type labels grouped under their
// category headings, plus the literal fallback.
func buildTypeCatalog() string {
	var b strings.Builder
	b.WriteString("ERLAUBTE VERTRAGSTYPEN (wähle den passendsten):\n")
	for _, cat := range constants.AllCategories() {
		b.WriteString("\n")
		b.WriteString(string(cat))
		b.WriteString(":\n")
		for _, t := range constants.TypesForCategory(cat) {
			if t == constants.SonstigerVertrag {
				continue
			}
			b.WriteString("- ")
			b.WriteString(string(t))
			if hint, ok := typeHints[t]; ok {
				b.WriteString(" (")
				b.WriteString(hint)
				b.WriteString(")")
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\nFalls kein Typ passt: \"")
	b.WriteString(string(constants.SonstigerVertrag))
	b.WriteString("\"")
	return b.String()
}

// BuildExtractionPrompt renders the fixed instruction template with the
// extracted file text appended verbatim and a trailing "JSON:" cue. Pure
// string templating: same input, same prompt.
func BuildExtractionPrompt(fileContent string) string {
	parts := []string{
		promptHeader,
		buildTypeCatalog(),
		riskRules,
		"VERTRAGSTEXT:\n" + fileContent,
		"JSON:",
	}
	return strings.Join(parts, "\n\n")
}

// BuildVisionPrompt is the variant for binary-capable backends: the document
// travels as an attached image payload, so the template references the
// attachment instead of embedding text.
func BuildVisionPrompt() string {
	parts := []string{
		promptHeader,
		buildTypeCatalog(),
		riskRules,
		"Analysiere das angehängte Vertragsdokument.",
		"JSON:",
	}
	return strings.Join(parts, "\n\n")
}
