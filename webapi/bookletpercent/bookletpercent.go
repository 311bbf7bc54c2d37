// Package bookletpercent wires the interest tier HTTP routes.
package bookletpercent

import (
	"fmt"

	"github.com/Forgos-ynov/Vault-API/pkg/config"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/middleware"
	percentsvc "github.com/Forgos-ynov/Vault-API/pkg/service/bookletpercent"
	"github.com/Forgos-ynov/Vault-API/pkg/view"
	"github.com/Forgos-ynov/Vault-API/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the interest tier endpoints.
func Routes(app *fiber.App, svc *percentsvc.Service, cfg *config.Jwt) {
	jwt := middleware.JwtProtected(cfg)
	admin := middleware.RequireRole(domain.RoleAdmin)

	app.Get("/api/bookletPercents", jwt, ListBookletPercents(svc))
	app.Get("/api/bookletPercents/:id", jwt, GetBookletPercent(svc))
	app.Post("/api/bookletPercents", jwt, admin, CreateBookletPercent(svc))
	app.Put("/api/bookletPercents/:id", jwt, UpdateBookletPercent(svc))
	app.Delete("/api/bookletPercents/:id", jwt, admin, TurnOffBookletPercent(svc))
}

// ListBookletPercents returns all activated interest tiers.
// @Summary List interest tiers
// @Description Retrieve all activated interest tiers, served from the response cache
// @Tags bookletPercents
// @Produce json
// @Success 200 {array} domain.BookletPercent
// @Failure 401 {object} common.ProblemDetails
// @Router /api/bookletPercents [get]
// @Security Bearer
func ListBookletPercents(svc *percentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := svc.ListCached(c.Context())
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SendJSONString(c, fiber.StatusOK, body)
	}
}

// GetBookletPercent returns one activated interest tier.
// @Summary Get interest tier by ID
// @Tags bookletPercents
// @Produce json
// @Param id path int true "Tier ID"
// @Success 200 {object} domain.BookletPercent
// @Success 204 "Tier absent or turned off"
// @Failure 401 {object} common.ProblemDetails
// @Router /api/bookletPercents/{id} [get]
// @Security Bearer
func GetBookletPercent(svc *percentsvc.Service) fiber.Handler {
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

// CreateBookletPercent creates an interest tier.
// @Summary Create interest tier
// @Tags bookletPercents
// @Accept json
// @Produce json
// @Param request body percentsvc.CreateInput true "Tier creation data"
// @Success 201 {object} domain.BookletPercent
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /api/bookletPercents [post]
// @Security Bearer
func CreateBookletPercent(svc *percentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[percentsvc.CreateInput](c)
		if input == nil {
			return err
		}
		bp, violations, err := svc.Create(c.Context(), *input)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		if len(violations) > 0 {
			return common.ViolationsResponseJSON(c, violations)
		}
		raw, err := view.Render(bp, view.GroupBookletPercent)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/bookletPercents/%d", bp.ID))
		return common.SendJSONString(c, fiber.StatusCreated, string(raw))
	}
}

// UpdateBookletPercent merges the provided fields onto an existing tier.
// @Summary Update interest tier
// @Tags bookletPercents
// @Accept json
// @Produce json
// @Param id path int true "Tier ID"
// @Param request body percentsvc.UpdateInput true "Tier update data"
// @Success 201 {object} domain.BookletPercent
// @Success 204 "Tier absent"
// @Failure 400 {object} common.ProblemDetails
// @Router /api/bookletPercents/{id} [put]
// @Security Bearer
func UpdateBookletPercent(svc *percentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c)
		if err != nil {
			return nil
		}
		input, err := common.BindAndValidate[percentsvc.UpdateInput](c)
		if input == nil {
			return err
		}
		bp, violations, err := svc.Update(c.Context(), id, *input)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		if len(violations) > 0 {
			return common.ViolationsResponseJSON(c, violations)
		}
		raw, err := view.Render(bp, view.GroupBookletPercent)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/bookletPercents/%d", bp.ID))
		return common.SendJSONString(c, fiber.StatusCreated, string(raw))
	}
}

// TurnOffBookletPercent soft-deletes an interest tier.
// @Summary Turn off interest tier
// @Tags bookletPercents
// @Param id path int true "Tier ID"
// @Success 204 "Turned off or already absent"
// @Failure 403 {object} common.ProblemDetails
// @Router /api/bookletPercents/{id} [delete]
// @Security Bearer
func TurnOffBookletPercent(svc *percentsvc.Service) fiber.Handler {
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
