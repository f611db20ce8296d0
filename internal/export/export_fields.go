package export

import (
	"strconv"
	"strings"

	"github.com/TirlaP/lista-firme-backend/internal/company"
)

// Column is one exported field: its CSV/XLSX header and the projection
// from the canonical view.
type Column struct {
	Header string
	Value  func(v *company.CompanyView) string
}

// Columns is the fixed export whitelist. Exports never include fields
// outside this list regardless of what the stored record carries.
var Columns = []Column{
	{"CUI", func(v *company.CompanyView) string { return strconv.FormatInt(v.CUI, 10) }},
	{"Denumire", func(v *company.CompanyView) string { return v.Denumire }},
	{"Cod Inmatriculare", func(v *company.CompanyView) string { return v.CodInmatriculare }},
	{"Stare", func(v *company.CompanyView) string { return v.Stare }},
	{"Data Inregistrare", func(v *company.CompanyView) string { return v.DataInregistrare }},
	{"Cod CAEN", func(v *company.CompanyView) string {
		if v.CAEN == nil {
			return ""
		}
		return v.CAEN.Code
	}},
	{"Activitate", func(v *company.CompanyView) string {
		if v.CAEN == nil {
			return ""
		}
		return v.CAEN.Name
	}},
	{"Adresa", func(v *company.CompanyView) string { return v.Adresa.Completa }},
	{"Judet", func(v *company.CompanyView) string { return v.Adresa.Judet }},
	{"Localitate", func(v *company.CompanyView) string { return v.Adresa.Localitate }},
	{"Cod Postal", func(v *company.CompanyView) string { return v.Adresa.CodPostal }},
	{"Telefon", func(v *company.CompanyView) string { return v.Contact.Telefon }},
	{"Email", func(v *company.CompanyView) string { return v.Contact.Email }},
	{"Website", func(v *company.CompanyView) string { return v.Contact.Website }},
	{"Administratori", func(v *company.CompanyView) string { return strings.Join(v.Administratori, "; ") }},
}

// Headers returns the header row in whitelist order.
func Headers() []string {
	out := make([]string, len(Columns))
	for i, col := range Columns {
		out[i] = col.Header
	}
	return out
}

// Row projects one view onto the whitelist.
func Row(v *company.CompanyView) []string {
	out := make([]string, len(Columns))
	for i, col := range Columns {
		out[i] = col.Value(v)
	}
	return out
}
