package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the response shape every endpoint returns. Field names are part
// of the public API contract and match what the clients already parse.
type Envelope struct {
	Status  int         `json:"estado"`
	Valid   bool        `json:"validar"`
	Message string      `json:"mensaje"`
	Data    interface{} `json:"dato,omitempty"`
}

// Respond writes a successful envelope with an optional payload.
func Respond(c *fiber.Ctx, status int, message string, data ...interface{}) error {
	response := Envelope{
		Status:  status,
		Valid:   true,
		Message: message,
	}

	if len(data) > 0 {
		response.Data = data[0]
	}

	return c.Status(status).JSON(response)
}

// Fail writes an error envelope. Errors never carry a payload.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{
		Status:  status,
		Valid:   false,
		Message: message,
	})
}

// OK sends 200 with a message and optional payload.
func OK(c *fiber.Ctx, message string, data ...interface{}) error {
	return Respond(c, fiber.StatusOK, message, data...)
}

// Created sends 201 with a message.
func Created(c *fiber.Ctx, message string, data ...interface{}) error {
	return Respond(c, fiber.StatusCreated, message, data...)
}

// BadRequest sends 400. Used for every client-correctable failure: malformed
// input, violated validation rules, bad credentials, expired tokens and
// missing domain entities alike.
func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends 401 for missing or unusable authentication.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusUnauthorized, message)
}

// ServerError sends 500 with the message passed through verbatim.
func ServerError(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusInternalServerError, message)
}
