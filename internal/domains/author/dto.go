package author

import "blogging-backend/internal/shared/validator"

// RegisterRequest - POST /authors
type RegisterRequest struct {
	FirstName *string `json:"fname"`
	LastName  *string `json:"lname"`
	Title     *string `json:"title"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// Validate runs the registration checks in order and stops at the first failure
func (r RegisterRequest) Validate() error {
	if !validator.IsPresent(r.FirstName) {
		return ErrFirstNameRequired
	}
	if !validator.IsPresent(r.LastName) {
		return ErrLastNameRequired
	}
	if !validator.IsPresent(r.Title) {
		return ErrTitleRequired
	}
	if !validator.IsValidTitle(*r.Title) {
		return ErrTitleInvalid
	}
	if !validator.IsPresent(r.Email) {
		return ErrEmailRequired
	}
	if !validator.IsValidEmail(*r.Email) {
		return ErrEmailInvalid
	}
	if !validator.IsPresent(r.Password) {
		return ErrPasswordRequired
	}
	return nil
}

// ToEntity converts a validated request; the password is set by the service
func (r RegisterRequest) ToEntity() *Author {
	return &Author{
		FirstName: *r.FirstName,
		LastName:  *r.LastName,
		Title:     *r.Title,
		Email:     *r.Email,
	}
}

// LoginRequest - POST /login
type LoginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if !validator.IsPresent(r.Email) {
		return ErrEmailRequired
	}
	if !validator.IsValidEmail(*r.Email) {
		return ErrEmailInvalid
	}
	if !validator.IsPresent(r.Password) {
		return ErrPasswordRequired
	}
	return nil
}

// LoginResponse carries the issued token, also sent in the x-api-key header
type LoginResponse struct {
	Token  string  `json:"token"`
	Author *Author `json:"-"`
}
