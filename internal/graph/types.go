package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/TirlaP/lista-firme-backend/internal/company"
)

var caenType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CAENInfo",
	Fields: graphql.Fields{
		"code":     &graphql.Field{Type: graphql.String},
		"name":     &graphql.Field{Type: graphql.String},
		"division": &graphql.Field{Type: graphql.String},
		"section":  &graphql.Field{Type: graphql.String},
	},
})

var addressType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Address",
	Fields: graphql.Fields{
		"completa":   &graphql.Field{Type: graphql.String},
		"strada":     &graphql.Field{Type: graphql.String},
		"numar":      &graphql.Field{Type: graphql.String},
		"localitate": &graphql.Field{Type: graphql.String},
		"judet":      &graphql.Field{Type: graphql.String},
		"cod_postal": &graphql.Field{Type: graphql.String},
	},
})

var contactType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Contact",
	Fields: graphql.Fields{
		"telefon": &graphql.Field{Type: graphql.String},
		"email":   &graphql.Field{Type: graphql.String},
		"website": &graphql.Field{Type: graphql.String},
	},
})

var bilantType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Bilant",
	Fields: graphql.Fields{
		"an":            &graphql.Field{Type: graphql.Int},
		"cifra_afaceri": &graphql.Field{Type: graphql.Float},
		"profit":        &graphql.Field{Type: graphql.Float},
		"angajati":      &graphql.Field{Type: graphql.Int},
	},
})

var companyType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Company",
	Fields: graphql.Fields{
		"cui":              &graphql.Field{Type: graphql.Float, Resolve: viewField(func(v *company.CompanyView) any { return v.CUI })},
		"denumire":         &graphql.Field{Type: graphql.String, Resolve: viewField(func(v *company.CompanyView) any { return v.Denumire })},
		"codInmatriculare": &graphql.Field{Type: graphql.String, Resolve: viewField(func(v *company.CompanyView) any { return v.CodInmatriculare })},
		"stare":            &graphql.Field{Type: graphql.String, Resolve: viewField(func(v *company.CompanyView) any { return v.Stare })},
		"dataInregistrare": &graphql.Field{Type: graphql.String, Resolve: viewField(func(v *company.CompanyView) any { return v.DataInregistrare })},
		"adresa":           &graphql.Field{Type: addressType, Resolve: viewField(func(v *company.CompanyView) any { return v.Adresa })},
		"contact":          &graphql.Field{Type: contactType, Resolve: viewField(func(v *company.CompanyView) any { return v.Contact })},
		"caen":             &graphql.Field{Type: caenType, Resolve: viewField(func(v *company.CompanyView) any { return v.CAEN })},
		"bilant":           &graphql.Field{Type: bilantType, Resolve: viewField(func(v *company.CompanyView) any { return v.Bilant })},
		"administratori":   &graphql.Field{Type: graphql.NewList(graphql.String), Resolve: viewField(func(v *company.CompanyView) any { return v.Administratori })},
	},
})

var edgeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CompanyEdge",
	Fields: graphql.Fields{
		"cursor": &graphql.Field{Type: graphql.String},
		"node":   &graphql.Field{Type: companyType},
	},
})

var pageInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PageInfo",
	Fields: graphql.Fields{
		"hasNextPage": &graphql.Field{Type: graphql.Boolean},
		"endCursor":   &graphql.Field{Type: graphql.String},
	},
})

var connectionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CompanyConnection",
	Fields: graphql.Fields{
		"edges":      &graphql.Field{Type: graphql.NewList(edgeType)},
		"pageInfo":   &graphql.Field{Type: pageInfoType},
		"totalCount": &graphql.Field{Type: graphql.Float},
	},
})

var statsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CompanyStats",
	Fields: graphql.Fields{
		"total":       &graphql.Field{Type: graphql.Float},
		"active":      &graphql.Field{Type: graphql.Float},
		"withWebsite": &graphql.Field{Type: graphql.Float},
		"withContact": &graphql.Field{Type: graphql.Float},
	},
})

var optionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LocationOption",
	Fields: graphql.Fields{
		"value": &graphql.Field{Type: graphql.String},
		"label": &graphql.Field{Type: graphql.String},
	},
})

var exportPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ExportPayload",
	Fields: graphql.Fields{
		"fileName": &graphql.Field{Type: graphql.String},
		"content":  &graphql.Field{Type: graphql.String},
		"mimeType": &graphql.Field{Type: graphql.String},
	},
})

var sortByInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CompanySortInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"field":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"direction": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var companyFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CompanyFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"first":      &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"after":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"cod_CAEN":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"judet":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"oras":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"stare":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"hasWebsite": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"hasContact": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"sortBy":     &graphql.InputObjectFieldConfig{Type: sortByInput},
	},
})

var exportInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ExportCompaniesInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"format":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"cod_CAEN":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"judet":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"oras":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"stare":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"hasWebsite": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"hasContact": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"maxRows":    &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

// viewField adapts a typed projection to a graphql resolver over either a
// value or pointer source.
func viewField(project func(v *company.CompanyView) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		switch src := p.Source.(type) {
		case company.CompanyView:
			return project(&src), nil
		case *company.CompanyView:
			return project(src), nil
		default:
			return nil, nil
		}
	}
}
