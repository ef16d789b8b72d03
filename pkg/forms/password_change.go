package forms

import (
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// PasswordChange rotates an account password.
type PasswordChange struct {
	CurrentPassword    string
	NewPassword        string
	ConfirmNewPassword string
}

// PasswordChangeSchema validates password rotation. Two refinements apply on
// top of the field rules: the confirmation must match the new password, and
// the new password must differ from the current one. Both always run, so a
// submission can be flagged on both fields at once.
var PasswordChangeSchema = schema.New(
	schema.F("currentPassword", func(f PasswordChange) []validator.Rule {
		return []validator.Rule{
			validator.Required("currentPassword", f.CurrentPassword),
		}
	}),
	schema.F("newPassword", func(f PasswordChange) []validator.Rule {
		return []validator.Rule{
			validator.Required("newPassword", f.NewPassword),
			validator.StrongPassword("newPassword", f.NewPassword),
		}
	}),
	schema.F("confirmNewPassword", func(f PasswordChange) []validator.Rule {
		return []validator.Rule{
			validator.Required("confirmNewPassword", f.ConfirmNewPassword),
		}
	}),
).Refine("confirmNewPassword", MsgPasswordMismatch, func(f PasswordChange) bool {
	return f.ConfirmNewPassword == f.NewPassword
}).Refine("newPassword", MsgPasswordSame, func(f PasswordChange) bool {
	return f.NewPassword != f.CurrentPassword
})
