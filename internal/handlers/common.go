// common.go
//
// Shared request parsing for the corrections records handlers.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wardenapp/corrections-api/internal/types"
)

// parseBody decodes the JSON request body into dst. Unknown fields are
// rejected rather than silently merged.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		msg := "Invalid input"
		if strings.Contains(err.Error(), "unknown field") {
			msg = "Unknown field in request body"
		}
		return types.ValidationError(msg)
	}
	return nil
}

// validEmail reports whether s parses as an address.
func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}
