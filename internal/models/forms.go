package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for all form types.
var validate = validator.New()

// RegisterForm holds the registration form fields.
type RegisterForm struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=12,max=30"`
}

// LoginForm holds the login form fields.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// PostForm holds the create/edit post form fields.
type PostForm struct {
	Title    string `validate:"required"`
	Subtitle string `validate:"required"`
	ImgURL   string `validate:"required,url"`
	Body     string `validate:"required"`
}

// CommentForm holds the comment form fields.
type CommentForm struct {
	Body string `validate:"required"`
}

// fieldMessages maps validator tags to user-facing messages.
var fieldMessages = map[string]string{
	"required": "This field is required.",
	"email":    "Enter a valid email address.",
	"url":      "Enter a valid URL.",
	"min":      "Password must be between 12 and 30 characters.",
	"max":      "Password must be between 12 and 30 characters.",
}

// checkStruct runs the validator on a form and converts failures into a
// field name to message map suitable for inline form rendering. A nil
// map means the form is valid.
func checkStruct(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": "Invalid input."}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "Invalid value."
		}
		out[fe.Field()] = msg
	}
	return out
}

// Validate reports field errors for the registration form.
func (f RegisterForm) Validate() map[string]string { return checkStruct(f) }

// Validate reports field errors for the login form.
func (f LoginForm) Validate() map[string]string { return checkStruct(f) }

// Validate reports field errors for the post form.
func (f PostForm) Validate() map[string]string { return checkStruct(f) }

// Validate reports field errors for the comment form.
func (f CommentForm) Validate() map[string]string { return checkStruct(f) }
