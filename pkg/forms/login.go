package forms

import (
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Login is the sign-in form. The password only has to be present; policy
// checks apply at registration, not on the way back in.
type Login struct {
	Email    string
	Password string
	Remember bool
}

// LoginSchema validates sign-in attempts.
var LoginSchema = schema.New(
	schema.F("email", func(f Login) []validator.Rule {
		return []validator.Rule{
			validator.Required("email", f.Email),
			validator.ValidEmail("email", f.Email),
		}
	}),
	schema.F("password", func(f Login) []validator.Rule {
		return []validator.Rule{
			validator.Required("password", f.Password),
		}
	}),
)
