// Package common holds the response envelope, problem details and request
// binding shared by the HTTP handlers.
package common

import (
	"errors"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON returns a response following RFC 9457 Problem Details.
// A string detail lands in the detail field, anything else in errors.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")

	return c.Status(status).JSON(pd)
}

// ViolationsResponseJSON writes the 400 body for rejected writes.
func ViolationsResponseJSON(c *fiber.Ctx, violations []domain.Violation) error {
	return ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", violations)
}

// ErrorToStatusCode maps domain errors to HTTP status codes. Absent
// entities answer 204 without a body.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrBookletNotFound),
		errors.Is(err, domain.ErrBookletPercentNotFound),
		errors.Is(err, domain.ErrCurrentAccountNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPictureNotFound):
		return fiber.StatusNoContent
	case errors.Is(err, domain.ErrUserUnauthorized):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// DomainErrorJSON answers a service error: not-found errors become an
// empty 204, everything else a problem document.
func DomainErrorJSON(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	if status == fiber.StatusNoContent {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if status == fiber.StatusUnauthorized {
		return ErrorResponseJSON(c, status, "Unauthorized", err.Error())
	}
	return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
}

// BindAndValidate parses the request body into T. Returns nil after
// writing the error response when the body is unreadable.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	return &input, nil
}

// ParamID parses the :id route parameter. On failure the 400 response is
// already written and the returned error is non-nil.
func ParamID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		if err == nil {
			err = errors.New("negative id")
		}
		_ = ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid id", "id must be a non-negative integer")
		return 0, err
	}
	return uint(id), nil
}

// SendJSONString writes an already-serialized JSON document verbatim.
// Cached reads and view-rendered entities go through here.
func SendJSONString(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(status).SendString(body)
}
