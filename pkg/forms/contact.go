package forms

import (
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Contact is the public contact form.
type Contact struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactSchema validates contact form submissions.
var ContactSchema = schema.New(
	schema.F("name", func(f Contact) []validator.Rule {
		return []validator.Rule{
			validator.Required("name", f.Name),
			validator.MinLen("name", f.Name, 2),
			validator.MaxLen("name", f.Name, 100),
		}
	}),
	schema.F("email", func(f Contact) []validator.Rule {
		return []validator.Rule{
			validator.Required("email", f.Email),
			validator.ValidEmail("email", f.Email),
		}
	}),
	schema.F("subject", func(f Contact) []validator.Rule {
		return []validator.Rule{
			validator.Required("subject", f.Subject),
			validator.MinLen("subject", f.Subject, 3),
			validator.MaxLen("subject", f.Subject, 100),
		}
	}),
	schema.F("message", func(f Contact) []validator.Rule {
		return []validator.Rule{
			validator.Required("message", f.Message),
			validator.MinLen("message", f.Message, 10),
			validator.MaxLen("message", f.Message, 1000),
		}
	}),
)
