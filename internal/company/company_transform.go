package company

import (
	"strings"

	"github.com/TirlaP/lista-firme-backend/internal/caen"
)

// Transform projects a stored record onto the canonical API shape. The
// authority-sourced address wins over the legacy flat shape field by field,
// never wholesale: an empty authority field falls through to the legacy
// value for that field alone. All optional outputs default to "" except the
// CAEN enrichment, which stays null when the code is unknown.
func Transform(c *Company, caenSvc caen.Service) CompanyView {
	view := CompanyView{
		CUI:              c.CUI,
		Denumire:         firstNonEmpty(c.Denumire, c.DateGenerale.Denumire),
		CodInmatriculare: firstNonEmpty(c.CodInmatriculare, c.DateGenerale.NrRegCom),
		Stare:            c.StareFirma,
		DataInregistrare: c.DateGenerale.DataInregistrare,
		FormaJuridica:    c.DateGenerale.FormaJuridica,
		Administratori:   c.Administratori,
		Contact: ContactView{
			Telefon: c.DateGenerale.Telefon,
			Fax:     c.DateGenerale.Fax,
			Email:   c.DateGenerale.Email,
			Website: c.DateGenerale.Website,
		},
	}
	if view.Stare == "" {
		view.Stare = DeriveStatus(c.DateGenerale.StareInregistrare, c.StareInactiv.StatusInactivi)
	}

	ss := c.AdresaAnaf.SediuSocial
	addr := AddressView{
		Strada:     firstNonEmpty(ss.Strada, c.Adresa.Strada),
		Numar:      firstNonEmpty(ss.Numar, c.Adresa.Numar),
		Localitate: firstNonEmpty(ss.Localitate, c.Adresa.Localitate),
		Judet:      firstNonEmpty(ss.Judet, c.Adresa.Judet),
		CodPostal:  firstNonEmpty(ss.CodPostal, c.Adresa.CodPostal),
		Detalii:    ss.Detalii,
		Tara:       firstNonEmpty(ss.Tara, c.Adresa.Tara),
	}
	addr.Completa = FormatAddress(addr)
	if addr.Completa == "" {
		addr.Completa = c.Adresa.Completa
	}
	view.Adresa = addr

	if codes := strings.TrimSpace(c.CodCAEN); codes != "" && caenSvc != nil {
		if entry := caenSvc.Lookup(codes); entry != nil {
			view.CAEN = &CAENView{
				Code:     entry.Code,
				Name:     entry.Name,
				Division: entry.DivisionName,
				Section:  entry.SectionName,
			}
		}
	}

	if c.Bilant.An != 0 || c.Bilant.CifraAfaceri != 0 || c.Bilant.Angajati != 0 {
		view.Bilant = &BilantView{
			An:           c.Bilant.An,
			CifraAfaceri: c.Bilant.CifraAfaceri,
			Profit:       c.Bilant.Profit,
			Angajati:     c.Bilant.Angajati,
		}
	}

	return view
}

// FormatAddress composes the display address from its parts. Missing parts
// drop out without leaving dangling separators.
func FormatAddress(a AddressView) string {
	var parts []string
	if a.Strada != "" {
		parts = append(parts, a.Strada)
	}
	if a.Numar != "" {
		parts = append(parts, "Nr. "+a.Numar)
	}
	if a.Detalii != "" {
		parts = append(parts, a.Detalii)
	}
	if a.Localitate != "" {
		parts = append(parts, a.Localitate)
	}
	if a.Judet != "" {
		parts = append(parts, "Jud. "+a.Judet)
	}
	if a.CodPostal != "" {
		parts = append(parts, "CP "+a.CodPostal)
	}
	return strings.Join(parts, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
