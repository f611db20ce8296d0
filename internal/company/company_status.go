package company

import "strings"

// Derived status labels. These are the exact strings stored in
// companies.stare_firma and returned by the API.
const (
	StatusSuspended  = "Întrerupere temporară de activitate"
	StatusInactive   = "Inactivă"
	StatusStruckOff  = "Radiată"
	StatusDissolved  = "Dizolvare"
	StatusFunctional = "Funcțională"
)

// AllStatuses in precedence order, highest first.
var AllStatuses = []string{
	StatusSuspended,
	StatusInactive,
	StatusStruckOff,
	StatusDissolved,
	StatusFunctional,
}

// DeriveStatus classifies a company from its registry state string and
// inactivity flag. Suspension and inactivity both require the flag.
// Precedence is fixed: suspension beats inactivity beats
// strike-off beats dissolution; anything else is functional. The same
// ordering is mirrored by the SQL predicates in statusPredicate, so the
// two must change together.
func DeriveStatus(stareInregistrare string, inactiv bool) string {
	upper := strings.ToUpper(stareInregistrare)
	switch {
	case inactiv && strings.Contains(upper, "SUSPENDARE ACTIVITATE"):
		return StatusSuspended
	case inactiv && (strings.Contains(upper, "INREGISTRAT") || strings.Contains(upper, "TRANSFER")):
		return StatusInactive
	case strings.Contains(upper, "RADIERE"):
		return StatusStruckOff
	case strings.Contains(upper, "DIZOLVARE"):
		return StatusDissolved
	default:
		return StatusFunctional
	}
}

const (
	stareExpr   = "upper(coalesce(date_generale->>'stare_inregistrare',''))"
	inactivExpr = "coalesce((stare_inactiv->>'statusInactivi')::boolean, false)"
)

// status match fragments, each the positive form of one DeriveStatus arm.
var (
	suspendedCond = inactivExpr + " AND " + stareExpr + " LIKE '%SUSPENDARE ACTIVITATE%'"
	inactiveCond  = inactivExpr + " AND (" + stareExpr + " LIKE '%INREGISTRAT%' OR " + stareExpr + " LIKE '%TRANSFER%')"
	struckOffCond = stareExpr + " LIKE '%RADIERE%'"
	dissolvedCond = stareExpr + " LIKE '%DIZOLVARE%'"
)

// statusPredicate returns a SQL condition selecting exactly the rows that
// DeriveStatus would label with the given status. Each arm negates every
// higher-precedence arm so first-match-wins semantics survive translation
// to set predicates. Unknown labels return the empty string.
func statusPredicate(status string) string {
	switch status {
	case StatusSuspended:
		return suspendedCond
	case StatusInactive:
		return "NOT (" + suspendedCond + ") AND (" + inactiveCond + ")"
	case StatusStruckOff:
		return "NOT (" + suspendedCond + ") AND NOT (" + inactiveCond + ") AND " + struckOffCond
	case StatusDissolved:
		return "NOT (" + suspendedCond + ") AND NOT (" + inactiveCond + ") AND NOT (" + struckOffCond + ") AND " + dissolvedCond
	case StatusFunctional:
		return "NOT (" + suspendedCond + ") AND NOT (" + inactiveCond + ") AND NOT (" + struckOffCond + ") AND NOT (" + dissolvedCond + ")"
	default:
		return ""
	}
}

// IsKnownStatus reports whether s is one of the derived labels.
func IsKnownStatus(s string) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}
