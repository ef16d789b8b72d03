package forms_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/forms"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestLoginSchema(t *testing.T) {
	t.Run("accepts valid credentials", func(t *testing.T) {
		err := forms.LoginSchema.Validate(forms.Login{
			Email:    "user@example.com",
			Password: "anything",
		})
		assert.NoError(t, err)
	})

	t.Run("password presence is the only password rule", func(t *testing.T) {
		// Weak but present passwords must pass: policy applies at
		// registration, not at sign-in.
		err := forms.LoginSchema.Validate(forms.Login{
			Email:    "user@example.com",
			Password: "x",
		})
		assert.NoError(t, err)
	})

	t.Run("both fields are reported when missing", func(t *testing.T) {
		err := forms.LoginSchema.Validate(forms.Login{})
		require.Error(t, err)

		verrs := schema.Extract(err)
		assert.Equal(t, []string{"email", "password"}, verrs.Fields())
	})
}

func TestContactSchema(t *testing.T) {
	valid := forms.Contact{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello there",
		Message: "This message is long enough to pass.",
	}

	t.Run("accepts a valid submission", func(t *testing.T) {
		assert.NoError(t, forms.ContactSchema.Validate(valid))
	})

	t.Run("short message is rejected with the bound in the message", func(t *testing.T) {
		form := valid
		form.Message = "too short"

		err := forms.ContactSchema.Validate(form)
		require.Error(t, err)
		assert.Equal(t, validator.MinLengthMessage(10), schema.Extract(err).Get("message"))
	})

	t.Run("overlong message is rejected", func(t *testing.T) {
		form := valid
		form.Message = strings.Repeat("a", 1001)
		assert.Error(t, forms.ContactSchema.Validate(form))
	})
}

func TestProfileUpdateSchema(t *testing.T) {
	valid := forms.ProfileUpdate{
		FirstName: "Jane",
		LastName:  "Doe",
	}

	t.Run("optional fields may be empty", func(t *testing.T) {
		assert.NoError(t, forms.ProfileUpdateSchema.Validate(valid))
	})

	t.Run("website must be a URL when present", func(t *testing.T) {
		form := valid
		form.Website = "https://example.com"
		assert.NoError(t, forms.ProfileUpdateSchema.Validate(form))

		form.Website = "not-a-url"
		err := forms.ProfileUpdateSchema.Validate(form)
		require.Error(t, err)
		assert.Equal(t, validator.MsgURL, schema.Extract(err).Get("website"))
	})

	t.Run("bio is capped at 500 characters", func(t *testing.T) {
		form := valid
		form.Bio = strings.Repeat("b", 500)
		assert.NoError(t, forms.ProfileUpdateSchema.Validate(form))

		form.Bio = strings.Repeat("b", 501)
		assert.Error(t, forms.ProfileUpdateSchema.Validate(form))
	})
}

func TestFromValues(t *testing.T) {
	t.Run("registration decodes and trims text fields", func(t *testing.T) {
		form := forms.RegistrationFromValues(url.Values{
			"firstName":       {"  John "},
			"lastName":        {"Doe"},
			"username":        {"john_doe"},
			"email":           {" john@example.com "},
			"password":        {" Abcdef1! "},
			"confirmPassword": {" Abcdef1! "},
			"acceptTerms":     {"on"},
			"unknownField":    {"ignored"},
		})

		assert.Equal(t, "John", form.FirstName)
		assert.Equal(t, "john@example.com", form.Email)
		// Passwords keep their exact bytes, whitespace included.
		assert.Equal(t, " Abcdef1! ", form.Password)
		assert.True(t, form.AcceptTerms)
	})

	t.Run("checkbox values decode to booleans", func(t *testing.T) {
		for _, raw := range []string{"1", "true", "on", "yes", "TRUE"} {
			form := forms.LoginFromValues(url.Values{"remember": {raw}})
			assert.True(t, form.Remember, "raw value %q", raw)
		}
		for _, raw := range []string{"", "0", "false", "off"} {
			form := forms.LoginFromValues(url.Values{"remember": {raw}})
			assert.False(t, form.Remember, "raw value %q", raw)
		}
	})

	t.Run("password change keeps exact bytes", func(t *testing.T) {
		form := forms.PasswordChangeFromValues(url.Values{
			"currentPassword":    {"Old 1!pass"},
			"newPassword":        {"New 2@pass"},
			"confirmNewPassword": {"New 2@pass"},
		})
		assert.Equal(t, "Old 1!pass", form.CurrentPassword)
		assert.Equal(t, "New 2@pass", form.NewPassword)
	})
}
