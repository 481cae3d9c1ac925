package services

import "errors"

// Error variables
var (
	// ErrUserExists means the username or email is already registered.
	ErrUserExists = errors.New("username or email already exists")
	// ErrTitleExists means a post with the same title already exists.
	ErrTitleExists = errors.New("post title already exists")
	// ErrUnknownEmail means no account exists for the login email. It is
	// surfaced distinctly from ErrWrongPassword on purpose; revealing
	// whether an email is registered reproduces the product's original
	// login messages.
	ErrUnknownEmail = errors.New("email is not registered")
	// ErrWrongPassword means the account exists but the password did not
	// verify.
	ErrWrongPassword = errors.New("wrong password")
	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the caller is not the administrator.
	ErrForbidden = errors.New("forbidden")
	// ErrBadReference means a write referenced a row that does not exist.
	ErrBadReference = errors.New("referenced row does not exist")
)
