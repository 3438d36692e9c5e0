package utils

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Validation Functions

func (res Response) Validate() error {
	return validation.ValidateStruct(&res,
		validation.Field(&res.StatusCode, validation.Required, validation.Min(100), validation.Max(599)),
		validation.Field(&res.Headers, validation.Required, validation.By(hasJSONContentType)),
		validation.Field(&res.Body, validation.Required, is.JSON))
}

func (msg Message) Validate() error {
	return validation.ValidateStruct(&msg,
		validation.Field(&msg.Message, validation.Required),
		validation.Field(&msg.Visibility, validation.Required, validation.In(Constants["VISIBILITY_PUBLIC"])))
}

func hasJSONContentType(value interface{}) error {
	headers, ok := value.(map[string]string)
	if !ok {
		return errors.New("must be a map of header names to values")
	}
	if headers[Constants["CONTENT_TYPE_HEADER"]] != Constants["CONTENT_TYPE_JSON"] {
		return errors.New("must set Content-Type to application/json")
	}
	return nil
}
