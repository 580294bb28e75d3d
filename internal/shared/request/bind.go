package request

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"blogging-backend/internal/shared/apperror"
	"blogging-backend/internal/shared/validator"
)

// ErrMalformedBody is returned when the body is not a JSON object
var ErrMalformedBody = apperror.Validation("Request body must be a valid JSON object")

// BindObject decodes a JSON object body into dest. A missing, null or {}
// body yields emptyErr, so each endpoint keeps its own message.
func BindObject(c *gin.Context, dest interface{}, emptyErr error) error {
	empty, err := isEmpty(c)
	if err != nil {
		return err
	}
	if empty {
		return emptyErr
	}
	return bind(c, dest)
}

// BindOptional is BindObject for endpoints that validate fields later:
// an empty body leaves dest untouched.
func BindOptional(c *gin.Context, dest interface{}) error {
	empty, err := isEmpty(c)
	if err != nil || empty {
		return err
	}
	return bind(c, dest)
}

// The body is cached by ShouldBindBodyWith so it can be decoded twice
func isEmpty(c *gin.Context) (bool, error) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, &apperror.Error{Kind: apperror.KindValidation, Message: ErrMalformedBody.Message, Err: err}
	}
	return !validator.IsNonEmptyObject(raw), nil
}

func bind(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBindBodyWith(dest, binding.JSON); err != nil {
		return &apperror.Error{Kind: apperror.KindValidation, Message: ErrMalformedBody.Message, Err: err}
	}
	return nil
}
