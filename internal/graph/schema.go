package graph

import (
	"strings"

	"github.com/graphql-go/graphql"

	"github.com/TirlaP/lista-firme-backend/internal/company"
	"github.com/TirlaP/lista-firme-backend/internal/export"
	"github.com/TirlaP/lista-firme-backend/internal/location"
)

// Resolver wires the domain services behind the GraphQL schema.
type Resolver struct {
	companies    company.Service
	locations    location.Service
	exports      export.Service
	inlineMaxRow int
}

func NewResolver(companies company.Service, locations location.Service, exports export.Service, inlineMaxRows int) *Resolver {
	return &Resolver{
		companies:    companies,
		locations:    locations,
		exports:      exports,
		inlineMaxRow: inlineMaxRows,
	}
}

// NewSchema builds the executable schema over the resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"companies": &graphql.Field{
				Type: connectionType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: companyFilterInput},
				},
				Resolve: r.resolveCompanies,
			},
			"company": &graphql.Field{
				Type: companyType,
				Args: graphql.FieldConfigArgument{
					"cui": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolveCompany,
			},
			"companyStats": &graphql.Field{
				Type:    statsType,
				Resolve: r.resolveStats,
			},
			"counties": &graphql.Field{
				Type:    graphql.NewList(optionType),
				Resolve: r.resolveCounties,
			},
			"searchCounties": &graphql.Field{
				Type: graphql.NewList(optionType),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveSearchCounties,
			},
			"citiesByCounty": &graphql.Field{
				Type: graphql.NewList(optionType),
				Args: graphql.FieldConfigArgument{
					"countyCode": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveCitiesByCounty,
			},
			"searchCities": &graphql.Field{
				Type: graphql.NewList(optionType),
				Args: graphql.FieldConfigArgument{
					"query":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"countyCode": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveSearchCities,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"exportCompanies": &graphql.Field{
				Type: exportPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: exportInput},
				},
				Resolve: r.resolveExport,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

func (r *Resolver) resolveCompanies(p graphql.ResolveParams) (any, error) {
	input, _ := p.Args["input"].(map[string]any)
	f := filterFromInput(input)

	opts := company.ConnectionOptions{First: 20}
	if first, ok := input["first"].(int); ok {
		opts.First = first
	}
	if after, ok := input["after"].(string); ok {
		opts.After = after
	}
	if sortBy, ok := input["sortBy"].(map[string]any); ok {
		opts.SortBy = sortByString(sortBy)
	}

	return r.companies.Connection(p.Context, f, opts)
}

func (r *Resolver) resolveCompany(p graphql.ResolveParams) (any, error) {
	cui, _ := p.Args["cui"].(int)
	return r.companies.GetByCUI(p.Context, int64(cui))
}

func (r *Resolver) resolveStats(p graphql.ResolveParams) (any, error) {
	return r.companies.Stats(p.Context)
}

func (r *Resolver) resolveCounties(p graphql.ResolveParams) (any, error) {
	return r.locations.Counties(p.Context)
}

func (r *Resolver) resolveSearchCounties(p graphql.ResolveParams) (any, error) {
	query, _ := p.Args["query"].(string)
	return r.locations.SearchCounties(p.Context, query)
}

func (r *Resolver) resolveCitiesByCounty(p graphql.ResolveParams) (any, error) {
	code, _ := p.Args["countyCode"].(string)
	return r.locations.CitiesByCounty(p.Context, code)
}

func (r *Resolver) resolveSearchCities(p graphql.ResolveParams) (any, error) {
	query, _ := p.Args["query"].(string)
	county, _ := p.Args["countyCode"].(string)
	return r.locations.SearchCities(p.Context, query, county)
}

func (r *Resolver) resolveExport(p graphql.ResolveParams) (any, error) {
	input, _ := p.Args["input"].(map[string]any)
	f := filterFromInput(input)

	opts := export.Options{Format: export.FormatCSV, MaxRows: r.inlineMaxRow}
	if format, ok := input["format"].(string); ok && format != "" {
		opts.Format = format
	}
	if maxRows, ok := input["maxRows"].(int); ok && maxRows > 0 && maxRows < opts.MaxRows {
		opts.MaxRows = maxRows
	}
	return r.exports.ExportInline(p.Context, f, opts)
}

func filterFromInput(input map[string]any) company.Filter {
	var f company.Filter
	if input == nil {
		return f
	}
	if raw, ok := input["cod_CAEN"].(string); ok {
		for _, code := range strings.Split(raw, ",") {
			if code = strings.TrimSpace(code); code != "" {
				f.CAENCodes = append(f.CAENCodes, code)
			}
		}
	}
	if v, ok := input["judet"].(string); ok {
		f.Judet = v
	}
	if v, ok := input["oras"].(string); ok {
		f.Oras = v
	}
	if v, ok := input["stare"].(string); ok {
		f.Status = v
	}
	if v, ok := input["hasWebsite"].(bool); ok {
		f.HasWebsite = &v
	}
	if v, ok := input["hasContact"].(bool); ok {
		f.HasContact = &v
	}
	return f
}

// sortByString folds the structured sort input onto the shared sortBy
// vocabulary, e.g. {field: "cui", direction: "ASC"} -> "cui_asc".
func sortByString(input map[string]any) string {
	field, _ := input["field"].(string)
	direction, _ := input["direction"].(string)
	if field == "" {
		return ""
	}
	if direction == "" {
		direction = "desc"
	}
	return strings.ToLower(field) + "_" + strings.ToLower(direction)
}
