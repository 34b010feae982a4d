package types

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Error taxonomy type tags. Handlers and middleware attach one of these to
// every CustomError so clients can distinguish failure classes.
const (
	ErrTypeValidation      = "validation"
	ErrTypeDuplicate       = "duplicate"
	ErrTypeReference       = "reference"
	ErrTypeUnauthenticated = "unauthenticated"
	ErrTypeForbidden       = "forbidden"
	ErrTypeNotFound        = "notfound"
	ErrTypeInternal        = "internal"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// ValidationError reports a missing or malformed request field.
func ValidationError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusBadRequest, Message: message, Type: ErrTypeValidation}
}

// DuplicateKeyError reports a natural-key collision, naming the field.
func DuplicateKeyError(field string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusBadRequest,
		Message: fmt.Sprintf("%s already exists", field),
		Type:    ErrTypeDuplicate,
	}
}

// ReferenceNotFoundError reports a dangling parent or child reference.
func ReferenceNotFoundError(entity string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Type:    ErrTypeReference,
	}
}

// UnauthenticatedError reports a missing or invalid bearer credential.
func UnauthenticatedError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusUnauthorized, Message: message, Type: ErrTypeUnauthenticated}
}

// ForbiddenError reports an authenticated user lacking the required role.
func ForbiddenError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusForbidden, Message: message, Type: ErrTypeForbidden}
}

// NotFoundError reports an absent record.
func NotFoundError(entity string) *CustomError {
	return &CustomError{
		Code:    fiber.StatusNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Type:    ErrTypeNotFound,
	}
}

// InternalError logs a store or infrastructure fault and returns a generic
// error. The underlying detail is not exposed to the caller.
func InternalError(err error) *CustomError {
	if err != nil {
		log.Printf("internal error: %v", err)
	}
	return &CustomError{Code: fiber.StatusInternalServerError, Message: "Server Error", Type: ErrTypeInternal}
}

// AsCustomError extracts a *CustomError from err, if it is one.
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
