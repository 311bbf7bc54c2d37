// Package currentaccount wires the current account HTTP routes.
package currentaccount

import (
	"fmt"

	"github.com/Forgos-ynov/Vault-API/pkg/config"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/middleware"
	accountsvc "github.com/Forgos-ynov/Vault-API/pkg/service/currentaccount"
	"github.com/Forgos-ynov/Vault-API/pkg/view"
	"github.com/Forgos-ynov/Vault-API/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the current account endpoints.
func Routes(app *fiber.App, svc *accountsvc.Service, cfg *config.Jwt) {
	jwt := middleware.JwtProtected(cfg)
	admin := middleware.RequireRole(domain.RoleAdmin)

	app.Get("/api/currentAccounts", jwt, ListCurrentAccounts(svc))
	app.Get("/api/currentAccounts/:id", jwt, GetCurrentAccount(svc))
	app.Post("/api/currentAccounts", jwt, admin, CreateCurrentAccount(svc))
	app.Put("/api/currentAccounts/:id", jwt, admin, UpdateCurrentAccount(svc))
	app.Delete("/api/currentAccounts/:id", jwt, TurnOffCurrentAccount(svc))
}

// ListCurrentAccounts returns all activated current accounts.
// @Summary List current accounts
// @Description Retrieve all activated current accounts, served from the response cache
// @Tags currentAccounts
// @Produce json
// @Success 200 {array} domain.CurrentAccount
// @Failure 401 {object} common.ProblemDetails
// @Router /api/currentAccounts [get]
// @Security Bearer
func ListCurrentAccounts(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := svc.ListCached(c.Context())
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SendJSONString(c, fiber.StatusOK, body)
	}
}

// GetCurrentAccount returns one activated current account.
// @Summary Get current account by ID
// @Tags currentAccounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} domain.CurrentAccount
// @Success 204 "Account absent or turned off"
// @Failure 401 {object} common.ProblemDetails
// @Router /api/currentAccounts/{id} [get]
// @Security Bearer
func GetCurrentAccount(svc *accountsvc.Service) fiber.Handler {
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

// CreateCurrentAccount creates a current account.
// @Summary Create current account
// @Tags currentAccounts
// @Accept json
// @Produce json
// @Param request body accountsvc.CreateInput true "Account creation data"
// @Success 201 {object} domain.CurrentAccount
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /api/currentAccounts [post]
// @Security Bearer
func CreateCurrentAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[accountsvc.CreateInput](c)
		if input == nil {
			return err
		}
		ca, violations, err := svc.Create(c.Context(), *input)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		if len(violations) > 0 {
			return common.ViolationsResponseJSON(c, violations)
		}
		raw, err := view.Render(ca, view.GroupCurrentAccount)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/currentAccounts/%d", ca.ID))
		return common.SendJSONString(c, fiber.StatusCreated, string(raw))
	}
}

// UpdateCurrentAccount merges the provided fields onto an existing account.
// @Summary Update current account
// @Tags currentAccounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body accountsvc.UpdateInput true "Account update data"
// @Success 201 {object} domain.CurrentAccount
// @Success 204 "Account absent"
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /api/currentAccounts/{id} [put]
// @Security Bearer
func UpdateCurrentAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c)
		if err != nil {
			return nil
		}
		input, err := common.BindAndValidate[accountsvc.UpdateInput](c)
		if input == nil {
			return err
		}
		ca, violations, err := svc.Update(c.Context(), id, *input)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		if len(violations) > 0 {
			return common.ViolationsResponseJSON(c, violations)
		}
		raw, err := view.Render(ca, view.GroupCurrentAccount)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/currentAccounts/%d", ca.ID))
		return common.SendJSONString(c, fiber.StatusCreated, string(raw))
	}
}

// TurnOffCurrentAccount soft-deletes a current account.
// @Summary Turn off current account
// @Tags currentAccounts
// @Param id path int true "Account ID"
// @Success 204 "Turned off or already absent"
// @Failure 401 {object} common.ProblemDetails
// @Router /api/currentAccounts/{id} [delete]
// @Security Bearer
func TurnOffCurrentAccount(svc *accountsvc.Service) fiber.Handler {
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
