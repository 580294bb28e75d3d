package author

import (
	"errors"
	"fmt"

	"blogging-backend/internal/shared/apperror"
)

// Request validation
var (
	ErrEmptyBody      = apperror.Validation("Invalid request parameter, please provide author details")
	ErrEmptyLoginBody = apperror.Validation("Invalid request parameters. Please provide login details")

	ErrFirstNameRequired = apperror.Validation("First name is required")
	ErrLastNameRequired  = apperror.Validation("Last name is required")
	ErrTitleRequired     = apperror.Validation("Title is required")
	ErrTitleInvalid      = apperror.Validation("Title should be among Mr, Mrs, Miss and Mast")
	ErrEmailRequired     = apperror.Validation("Email is required")
	ErrEmailInvalid      = apperror.Validation("Email should be a valid email address")
	ErrPasswordRequired  = apperror.Validation("Password is required")
)

// Business rules
var (
	ErrDuplicateEmail     = errors.New("email address is already registered")
	ErrInvalidCredentials = apperror.Authorization("Invalid login credentials")
)

// Repository
var (
	ErrAuthorNotFound = apperror.NotFound("author not found")
)

// EmailTaken builds the conflict returned for an already registered email
func EmailTaken(email string) *apperror.Error {
	return &apperror.Error{
		Kind:    apperror.KindConflict,
		Message: fmt.Sprintf("%s email address is already registered", email),
		Err:     ErrDuplicateEmail,
	}
}
