package forms

import (
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Cross-field refinement messages shared by the account forms.
const (
	MsgPasswordMismatch = "passwords do not match"
	MsgPasswordSame     = "new password must be different from current password"
)

// Registration is the sign-up form. Phone is optional; everything else is
// required and AcceptTerms must be checked.
type Registration struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	AcceptTerms     bool
}

// RegistrationSchema validates new account sign-ups.
var RegistrationSchema = schema.New(
	schema.F("firstName", func(f Registration) []validator.Rule {
		return nameRules("firstName", f.FirstName)
	}),
	schema.F("lastName", func(f Registration) []validator.Rule {
		return nameRules("lastName", f.LastName)
	}),
	schema.F("username", func(f Registration) []validator.Rule {
		return []validator.Rule{
			validator.Required("username", f.Username),
			validator.ValidUsername("username", f.Username, 3, 20),
		}
	}),
	schema.F("email", func(f Registration) []validator.Rule {
		return []validator.Rule{
			validator.Required("email", f.Email),
			validator.ValidEmail("email", f.Email),
		}
	}),
	schema.F("password", func(f Registration) []validator.Rule {
		return []validator.Rule{
			validator.Required("password", f.Password),
			validator.StrongPassword("password", f.Password),
		}
	}),
	schema.F("confirmPassword", func(f Registration) []validator.Rule {
		return []validator.Rule{
			validator.Required("confirmPassword", f.ConfirmPassword),
		}
	}),
	schema.F("phone", func(f Registration) []validator.Rule {
		if f.Phone == "" {
			return nil
		}
		return []validator.Rule{
			validator.ValidPhone("phone", f.Phone),
		}
	}),
	schema.F("acceptTerms", func(f Registration) []validator.Rule {
		return []validator.Rule{
			validator.MustAccept("acceptTerms", f.AcceptTerms),
		}
	}),
).Refine("confirmPassword", MsgPasswordMismatch, func(f Registration) bool {
	return f.ConfirmPassword == f.Password
})

// nameRules is the shared rule set for person-name fields: required, 2-50
// characters, letters/spaces/apostrophes/hyphens only.
func nameRules(field, value string) []validator.Rule {
	return []validator.Rule{
		validator.Required(field, value),
		validator.MinLen(field, value, 2),
		validator.MaxLen(field, value, 50),
		validator.ValidName(field, value),
	}
}
