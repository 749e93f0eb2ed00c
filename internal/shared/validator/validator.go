// Package validator shapes request validation failures into the
// {message, errors[]} rejection returned with HTTP 400.
package validator

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"movie-catalog-backend/internal/shared/apperror"
	"movie-catalog-backend/pkg/database/patch"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidBody  = "INVALID_REQUEST"
	CodeEmptyPayload = "EMPTY_PAYLOAD"
	CodeNoValidField = "NO_VALID_FIELD"

	MessageValidation = "validation failed"
)

// Messages flattens an ozzo validation.Errors (or patch.FieldErrors) into
// "field: reason" strings, sorted by field.
func Messages(err error) []string {
	var fe patch.FieldErrors
	if errors.As(err, &fe) {
		return fe.Messages()
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f, ve[f].Error()))
	}
	return msgs
}

// Reject converts a validation failure into a BadRequest apperror.
// Empty and unrecognized partial updates keep their own codes.
func Reject(err error) *apperror.Error {
	switch {
	case errors.Is(err, patch.ErrEmptyPatch):
		return apperror.BadRequest(CodeEmptyPayload, patch.ErrEmptyPatch.Error())
	case errors.Is(err, patch.ErrNoRecognizedFields):
		return apperror.BadRequest(CodeNoValidField, patch.ErrNoRecognizedFields.Error())
	default:
		return apperror.BadRequest(CodeValidation, MessageValidation, Messages(err)...)
	}
}

// AsAppError is the last step of every service method: partial-update
// rejections become BadRequest, *apperror.Error values pass through and
// anything else is a storage failure.
func AsAppError(err error) error {
	if err == nil {
		return nil
	}

	var fe patch.FieldErrors
	if errors.Is(err, patch.ErrEmptyPatch) || errors.Is(err, patch.ErrNoRecognizedFields) || errors.As(err, &fe) {
		return Reject(err)
	}
	return apperror.Wrap(err)
}
