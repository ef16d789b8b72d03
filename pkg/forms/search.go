package forms

import (
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// SortOptions is the closed set of accepted sort orders.
var SortOptions = []string{"relevance", "newest", "oldest", "name"}

// Search is the paginated search form.
type Search struct {
	Query  string
	Page   int
	Limit  int
	SortBy string
}

// SearchSchema validates search queries and their pagination bounds.
var SearchSchema = schema.New(
	schema.F("query", func(f Search) []validator.Rule {
		return []validator.Rule{
			validator.Required("query", f.Query),
			validator.MaxLen("query", f.Query, 200),
		}
	}),
	schema.F("page", func(f Search) []validator.Rule {
		return []validator.Rule{
			validator.Min("page", f.Page, 1),
		}
	}),
	schema.F("limit", func(f Search) []validator.Rule {
		return []validator.Rule{
			validator.Min("limit", f.Limit, 1),
			validator.Max("limit", f.Limit, 100),
		}
	}),
	schema.F("sortBy", func(f Search) []validator.Rule {
		return []validator.Rule{
			validator.OneOf("sortBy", f.SortBy, SortOptions),
		}
	}),
)
