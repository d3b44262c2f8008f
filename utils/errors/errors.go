package errors

import "github.com/muhammadheryan/bhrc-portal/constant"

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CustomError struct {
	errType constant.ErrorType
	message string
	fields  []FieldError
	meta    map[string]any
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func (c CustomError) Fields() []FieldError {
	return c.fields
}

func (c CustomError) Meta() map[string]any {
	return c.meta
}

// WithMessage returns a copy carrying a more specific client message.
func (c CustomError) WithMessage(msg string) CustomError {
	c.message = msg
	return c
}

// WithMeta returns a copy carrying extra response data (e.g. retry_after_seconds).
func (c CustomError) WithMeta(key string, value any) CustomError {
	meta := make(map[string]any, len(c.meta)+1)
	for k, v := range c.meta {
		meta[k] = v
	}
	meta[key] = value
	c.meta = meta
	return c
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func ValidationError(fields []FieldError) CustomError {
	return CustomError{
		errType: constant.ErrValidation,
		fields:  fields,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := err.(CustomError)
	return ok && ce.errType == errorType
}
