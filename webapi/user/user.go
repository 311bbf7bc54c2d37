// Package user wires the account holder HTTP routes.
package user

import (
	"fmt"
	"strconv"

	"github.com/Forgos-ynov/Vault-API/pkg/config"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/pkg/middleware"
	usersvc "github.com/Forgos-ynov/Vault-API/pkg/service/user"
	"github.com/Forgos-ynov/Vault-API/pkg/view"
	"github.com/Forgos-ynov/Vault-API/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the user endpoints.
func Routes(app *fiber.App, svc *usersvc.Service, cfg *config.Jwt) {
	jwt := middleware.JwtProtected(cfg)
	admin := middleware.RequireRole(domain.RoleAdmin)

	app.Get("/api/users", jwt, ListUsers(svc))
	app.Get("/api/users/filterMoney/:miniMoney", jwt, FilterUsersByMoney(svc))
	app.Get("/api/users/:id", jwt, GetUser(svc))
	app.Post("/api/users", jwt, admin, CreateUser(svc))
	app.Put("/api/users/:id", jwt, UpdateUser(svc))
	app.Delete("/api/users/:id", jwt, admin, TurnOffUser(svc))
}

// ListUsers returns all activated users.
// @Summary List users
// @Description Retrieve all activated users, served from the response cache
// @Tags users
// @Produce json
// @Success 200 {array} domain.User
// @Failure 401 {object} common.ProblemDetails
// @Router /api/users [get]
// @Security Bearer
func ListUsers(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := svc.ListCached(c.Context())
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SendJSONString(c, fiber.StatusOK, body)
	}
}

// FilterUsersByMoney returns the users whose account plus booklet money
// reaches the threshold.
// @Summary Filter users by total money
// @Description Retrieve activated users whose current account and booklet money sum to at least the threshold
// @Tags users
// @Produce json
// @Param miniMoney path number true "Minimum total money"
// @Success 200 {array} domain.User
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /api/users/filterMoney/{miniMoney} [get]
// @Security Bearer
func FilterUsersByMoney(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		minimum, err := strconv.ParseFloat(c.Params("miniMoney"), 64)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid threshold", "miniMoney must be a number")
		}
		body, err := svc.FilterByMinimumWealth(c.Context(), minimum)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SendJSONString(c, fiber.StatusOK, body)
	}
}

// GetUser returns one activated user.
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User
// @Success 204 "User absent or turned off"
// @Failure 401 {object} common.ProblemDetails
// @Router /api/users/{id} [get]
// @Security Bearer
func GetUser(svc *usersvc.Service) fiber.Handler {
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

// CreateUser registers a user.
// @Summary Create user
// @Description Register a user attached to a current account; the password is bcrypt-hashed
// @Tags users
// @Accept json
// @Produce json
// @Param request body usersvc.CreateInput true "User creation data"
// @Success 201 {object} domain.User
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /api/users [post]
// @Security Bearer
func CreateUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[usersvc.CreateInput](c)
		if input == nil {
			return err
		}
		if len(input.Password) > 72 {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", "Password too long")
		}
		u, violations, err := svc.Create(c.Context(), *input)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		if len(violations) > 0 {
			return common.ViolationsResponseJSON(c, violations)
		}
		raw, err := view.Render(u, view.GroupUser)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/users/%d", u.ID))
		return common.SendJSONString(c, fiber.StatusCreated, string(raw))
	}
}

// UpdateUser merges the provided fields onto an existing user.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body usersvc.UpdateInput true "User update data"
// @Success 201 {object} domain.User
// @Success 204 "User absent"
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /api/users/{id} [put]
// @Security Bearer
func UpdateUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c)
		if err != nil {
			return nil
		}
		input, err := common.BindAndValidate[usersvc.UpdateInput](c)
		if input == nil {
			return err
		}
		if input.Password != nil && len(*input.Password) > 72 {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", "Password too long")
		}
		u, violations, err := svc.Update(c.Context(), id, *input)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		if len(violations) > 0 {
			return common.ViolationsResponseJSON(c, violations)
		}
		raw, err := view.Render(u, view.GroupUser)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/users/%d", u.ID))
		return common.SendJSONString(c, fiber.StatusCreated, string(raw))
	}
}

// TurnOffUser soft-deletes a user.
// @Summary Turn off user
// @Tags users
// @Param id path int true "User ID"
// @Success 204 "Turned off or already absent"
// @Failure 403 {object} common.ProblemDetails
// @Router /api/users/{id} [delete]
// @Security Bearer
func TurnOffUser(svc *usersvc.Service) fiber.Handler {
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
