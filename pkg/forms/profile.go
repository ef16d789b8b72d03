package forms

import (
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ProfileUpdate edits an existing account's public details. Phone, website,
// and bio are optional and only validated when supplied.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Phone     string
	Website   string
	Bio       string
}

// ProfileUpdateSchema validates profile edits.
var ProfileUpdateSchema = schema.New(
	schema.F("firstName", func(f ProfileUpdate) []validator.Rule {
		return nameRules("firstName", f.FirstName)
	}),
	schema.F("lastName", func(f ProfileUpdate) []validator.Rule {
		return nameRules("lastName", f.LastName)
	}),
	schema.F("phone", func(f ProfileUpdate) []validator.Rule {
		if f.Phone == "" {
			return nil
		}
		return []validator.Rule{
			validator.ValidPhone("phone", f.Phone),
		}
	}),
	schema.F("website", func(f ProfileUpdate) []validator.Rule {
		if f.Website == "" {
			return nil
		}
		return []validator.Rule{
			validator.ValidURL("website", f.Website),
		}
	}),
	schema.F("bio", func(f ProfileUpdate) []validator.Rule {
		if f.Bio == "" {
			return nil
		}
		return []validator.Rule{
			validator.MaxLen("bio", f.Bio, 500),
		}
	}),
)
