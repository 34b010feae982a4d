package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wardenapp/corrections-api/internal/types"
)

// ErrorResponse sends a standard error envelope
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// FromError renders a service error. CustomErrors keep their status and type
// tag; anything else is surfaced as a generic 500.
func FromError(c *fiber.Ctx, err error) error {
	if ce, ok := types.AsCustomError(err); ok {
		return ErrorResponse(c, ce.Message, ce.Code, ce.Type)
	}
	ce := types.InternalError(err)
	return ErrorResponse(c, ce.Message, ce.Code, ce.Type)
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, types.ErrTypeNotFound)
}

// DeleteSuccessResponse confirms a completed delete
func DeleteSuccessResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   message,
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// DeleteResponseStruct defines the schema for delete confirmations
type DeleteResponseStruct struct {
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}
