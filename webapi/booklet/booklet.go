// Package booklet wires the savings booklet HTTP routes.
package booklet

import (
	"fmt"
	"time"

	"github.com/Forgos-ynov/Vault-API/pkg/config"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/middleware"
	bookletsvc "github.com/Forgos-ynov/Vault-API/pkg/service/booklet"
	"github.com/Forgos-ynov/Vault-API/pkg/view"
	"github.com/Forgos-ynov/Vault-API/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the booklet endpoints. Reads need a valid token,
// writes and deletes need the admin role.
func Routes(app *fiber.App, svc *bookletsvc.Service, cfg *config.Jwt) {
	jwt := middleware.JwtProtected(cfg)
	admin := middleware.RequireRole(domain.RoleAdmin)

	app.Get("/api/booklets", jwt, ListBooklets(svc))
	app.Get("/api/booklets/betweenDates", jwt, ListBookletsBetweenDates(svc))
	app.Get("/api/booklets/:id", jwt, GetBooklet(svc))
	app.Post("/api/booklets", jwt, admin, CreateBooklet(svc))
	app.Put("/api/booklets/:id", jwt, UpdateBooklet(svc))
	app.Delete("/api/booklets/:id/force", jwt, admin, DeleteBooklet(svc))
	app.Delete("/api/booklets/:id", jwt, admin, TurnOffBooklet(svc))
}

// ListBooklets returns all activated booklets.
// @Summary List booklets
// @Description Retrieve all activated booklets, served from the response cache
// @Tags booklets
// @Produce json
// @Success 200 {array} domain.Booklet
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/booklets [get]
// @Security Bearer
func ListBooklets(svc *bookletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := svc.ListCached(c.Context())
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SendJSONString(c, fiber.StatusOK, body)
	}
}

// ListBookletsBetweenDates returns the booklets created inside the closed
// date range given by the start and end query parameters.
// @Summary List booklets by creation date
// @Description Retrieve booklets created between two dates, bounds included
// @Tags booklets
// @Produce json
// @Param start query string true "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param end query string true "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {array} domain.Booklet
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /api/booklets/betweenDates [get]
// @Security Bearer
func ListBookletsBetweenDates(svc *bookletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, err := parseDate(c.Query("start"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date range", "start must be RFC 3339 or YYYY-MM-DD")
		}
		end, err := parseDate(c.Query("end"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date range", "end must be RFC 3339 or YYYY-MM-DD")
		}
		body, err := svc.ListBetweenDates(c.Context(), start, end)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SendJSONString(c, fiber.StatusOK, body)
	}
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// GetBooklet returns one activated booklet.
// @Summary Get booklet by ID
// @Description Retrieve an activated booklet, served from the response cache
// @Tags booklets
// @Produce json
// @Param id path int true "Booklet ID"
// @Success 200 {object} domain.Booklet
// @Success 204 "Booklet absent or turned off"
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /api/booklets/{id} [get]
// @Security Bearer
func GetBooklet(svc *bookletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c)
		if err != nil {
			return nil
		}
		body, err := svc.GetCached(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SendJSONString(c, fiber.StatusOK, body)
	}
}

// CreateBooklet creates a booklet.
// @Summary Create booklet
// @Description Create a booklet attached to an interest tier and a current account
// @Tags booklets
// @Accept json
// @Produce json
// @Param request body bookletsvc.CreateInput true "Booklet creation data"
// @Success 201 {object} domain.Booklet
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /api/booklets [post]
// @Security Bearer
func CreateBooklet(svc *bookletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[bookletsvc.CreateInput](c)
		if input == nil {
			return err
		}
		b, violations, err := svc.Create(c.Context(), *input)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		if len(violations) > 0 {
			return common.ViolationsResponseJSON(c, violations)
		}
		raw, err := view.Render(b, view.GroupBooklet)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/booklets/%d", b.ID))
		return common.SendJSONString(c, fiber.StatusCreated, string(raw))
	}
}

// UpdateBooklet merges the provided fields onto an existing booklet.
// @Summary Update booklet
// @Description Update booklet fields; absent fields keep their value
// @Tags booklets
// @Accept json
// @Produce json
// @Param id path int true "Booklet ID"
// @Param request body bookletsvc.UpdateInput true "Booklet update data"
// @Success 201 {object} domain.Booklet
// @Success 204 "Booklet absent"
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /api/booklets/{id} [put]
// @Security Bearer
func UpdateBooklet(svc *bookletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c)
		if err != nil {
			return nil
		}
		input, err := common.BindAndValidate[bookletsvc.UpdateInput](c)
		if input == nil {
			return err
		}
		b, violations, err := svc.Update(c.Context(), id, *input)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		if len(violations) > 0 {
			return common.ViolationsResponseJSON(c, violations)
		}
		raw, err := view.Render(b, view.GroupBooklet)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/booklets/%d", b.ID))
		return common.SendJSONString(c, fiber.StatusCreated, string(raw))
	}
}

// TurnOffBooklet soft-deletes a booklet.
// @Summary Turn off booklet
// @Description Flip the booklet status flag so it disappears from reads
// @Tags booklets
// @Param id path int true "Booklet ID"
// @Success 204 "Turned off or already absent"
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /api/booklets/{id} [delete]
// @Security Bearer
func TurnOffBooklet(svc *bookletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c)
		if err != nil {
			return nil
		}
		if err := svc.TurnOff(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteBooklet removes a booklet row entirely.
// @Summary Delete booklet
// @Description Remove the booklet row from the database
// @Tags booklets
// @Param id path int true "Booklet ID"
// @Success 204 "Deleted or already absent"
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /api/booklets/{id}/force [delete]
// @Security Bearer
func DeleteBooklet(svc *bookletsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c)
		if err != nil {
			return nil
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
