package company

import (
	"encoding/base64"
	"encoding/json"
)

// SortField identifies one of the sortable column expressions.
type SortField string

const (
	SortRegistrationDate SortField = "registration_date"
	SortCUI              SortField = "cui"
	SortName             SortField = "name"
)

// Sort pairs a field with a direction.
type Sort struct {
	Field SortField
	Desc  bool
}

// ParseSortBy maps the public sortBy values to a Sort. Unknown values fall
// back to the default ordering (registration date, newest first).
func ParseSortBy(sortBy string) Sort {
	switch sortBy {
	case "registration_date_asc":
		return Sort{Field: SortRegistrationDate, Desc: false}
	case "registration_date_desc":
		return Sort{Field: SortRegistrationDate, Desc: true}
	case "cui_asc":
		return Sort{Field: SortCUI, Desc: false}
	case "cui_desc":
		return Sort{Field: SortCUI, Desc: true}
	case "name_asc":
		return Sort{Field: SortName, Desc: false}
	case "name_desc":
		return Sort{Field: SortName, Desc: true}
	default:
		return Sort{Field: SortRegistrationDate, Desc: true}
	}
}

// columnExpr returns the SQL expression the field sorts and resumes on.
// Registration dates are stored as YYYY-MM-DD strings, so lexicographic
// order is chronological.
func (f SortField) columnExpr() string {
	switch f {
	case SortCUI:
		return "cui"
	case SortName:
		return "denumire"
	default:
		return "coalesce(date_generale->>'data_inregistrare','')"
	}
}

// Cursor is the decoded pagination token: the sort field it was minted
// under, the boundary value of that field, and the CUI of the last row as
// tie-break. Tokens are opaque to clients.
type Cursor struct {
	Field SortField `json:"f"`
	Value string    `json:"v"`
	CUI   int64     `json:"c"`
}

// EncodeCursor serializes a cursor to its wire form.
func EncodeCursor(c Cursor) string {
	raw, _ := json.Marshal(c)
	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeCursor parses a wire token. Malformed tokens decode to (nil, false)
// rather than an error: a bad cursor means "start from the beginning", and
// the caller reports the page as a fresh first page.
func DecodeCursor(token string) (*Cursor, bool) {
	if token == "" {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, false
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, false
	}
	if c.Field == "" {
		return nil, false
	}
	return &c, true
}
